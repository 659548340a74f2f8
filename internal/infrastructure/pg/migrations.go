package pg

import (
	"context"
)

// Схема: users и calculations. inputs — JSONB (упорядоченный список чисел),
// result допускает NULL (не посчитан), type и user_id индексированы для выборок.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      VARCHAR(50)  NOT NULL UNIQUE,
		email         VARCHAR(120) NOT NULL UNIQUE,
		password_hash TEXT         NOT NULL,
		created_at    TIMESTAMPTZ  NOT NULL,
		updated_at    TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS calculations (
		id         UUID PRIMARY KEY,
		user_id    UUID         NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		type       VARCHAR(50)  NOT NULL,
		inputs     JSONB        NOT NULL,
		result     DOUBLE PRECISION,
		created_at TIMESTAMPTZ  NOT NULL,
		updated_at TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_user_id ON calculations (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_type ON calculations (type)`,
}

// Migrate создаёт таблицы и индексы, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	for _, q := range migrations {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
