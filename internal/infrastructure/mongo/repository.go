package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"polyCalc/internal/domain"
)

// calculationDoc — документ в коллекции calculations. UUID храним строками:
// с ними проще смотреть данные руками и не нужен кастомный кодек.
type calculationDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Type      string    `bson:"type"`
	Inputs    []float64 `bson:"inputs"`
	Result    *float64  `bson:"result,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// CalculationRepo реализует ports.ICalculationRepository для MongoDB.
type CalculationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(client *Client, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{client: client, log: log}
}

// SaveCalculation сохраняет вычисление в коллекцию.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	if _, err := r.client.Coll().InsertOne(ctx, toDoc(calc)); err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// ListCalculations возвращает вычисления пользователя (последние сначала).
func (r *CalculationRepo) ListCalculations(ctx context.Context, userID uuid.UUID) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{"user_id": userID.String()}, opts)
	if err != nil {
		r.log.Debug("ListCalculations failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		calc, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		list = append(list, *calc)
	}
	return list, nil
}

// GetCalculation возвращает вычисление по id; если документа нет — domain.ErrCalculationNotFound.
func (r *CalculationRepo) GetCalculation(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	var doc calculationDoc
	err := r.client.Coll().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCalculationNotFound
		}
		r.log.Debug("GetCalculation failed", "error", err)
		return nil, err
	}
	return fromDoc(doc)
}

// UpdateCalculation перезаписывает операнды, результат и updated_at.
func (r *CalculationRepo) UpdateCalculation(ctx context.Context, calc domain.Calculation) error {
	update := bson.M{"$set": bson.M{
		"inputs":     calc.Inputs,
		"result":     calc.Result,
		"updated_at": calc.UpdatedAt,
	}}
	res, err := r.client.Coll().UpdateOne(ctx, bson.M{"_id": calc.ID.String()}, update)
	if err != nil {
		r.log.Debug("UpdateCalculation failed", "error", err)
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}

// DeleteCalculation удаляет вычисление по id.
func (r *CalculationRepo) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	res, err := r.client.Coll().DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		r.log.Debug("DeleteCalculation failed", "error", err)
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}

// Ping проверяет доступность БД.
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func toDoc(calc domain.Calculation) calculationDoc {
	return calculationDoc{
		ID:        calc.ID.String(),
		UserID:    calc.UserID.String(),
		Type:      string(calc.Type),
		Inputs:    calc.Inputs,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
		UpdatedAt: calc.UpdatedAt,
	}
}

func fromDoc(d calculationDoc) (*domain.Calculation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}
	return &domain.Calculation{
		ID:        id,
		UserID:    userID,
		Type:      domain.CalculationType(d.Type),
		Inputs:    d.Inputs,
		Result:    d.Result,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
