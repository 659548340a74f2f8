package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"polyCalc/internal/domain"
)

// Код ошибки PostgreSQL unique_violation.
const pqUniqueViolation = "23505"

// UserRepo реализует ports.IUserRepository для PostgreSQL.
type UserRepo struct {
	db  *DB
	log *slog.Logger
}

// NewUserRepo возвращает репозиторий пользователей.
func NewUserRepo(db *DB, log *slog.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// CreateUser сохраняет пользователя; конфликт по username/email — domain.ErrUserExists.
func (r *UserRepo) CreateUser(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrUserExists
		}
		r.log.Debug("CreateUser failed", "error", err)
		return err
	}
	return nil
}

// GetUserByUsername возвращает пользователя по имени; если нет — domain.ErrUserNotFound.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, username, email, password_hash, created_at, updated_at
		 FROM users WHERE username = $1`, username)
}

// GetUserByID возвращает пользователя по id; если нет — domain.ErrUserNotFound.
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, username, email, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`, id)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.log.Debug("getUser failed", "error", err)
		return nil, err
	}
	return &user, nil
}
