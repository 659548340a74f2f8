package calculation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"polyCalc/internal/domain"
)

// Create — валидация через фабрику, расчёт (с проверкой кэша), сохранение в БД,
// запись результата в кэш и публикация события в брокер.
func (u *UseCase) Create(ctx context.Context, userID uuid.UUID, calculationType string, inputs []float64) (*domain.Calculation, error) {
	calc, err := domain.NewCalculation(calculationType, userID, inputs)
	if err != nil {
		return nil, err
	}

	key := cacheKey(calc.Type, calc.Inputs)
	if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
		calc.Result = &cached
	} else {
		result, err := calc.GetResult()
		if err != nil {
			return nil, err
		}
		calc.Result = &result
	}

	if err := u.repo.SaveCalculation(ctx, *calc); err != nil {
		return nil, err
	}
	u.log.Info("calculation saved", "id", calc.ID, "type", calc.Type, "result", *calc.Result)

	if err := u.cache.Set(ctx, key, *calc.Result); err != nil {
		return nil, err
	}

	u.publish(ctx, calc)

	return calc, nil
}

// List — вычисления пользователя (последние сначала, обвязка над репозиторием).
func (u *UseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.Calculation, error) {
	return u.repo.ListCalculations(ctx, userID)
}

// Get возвращает вычисление по id. Чужие вычисления не раскрываем:
// несовпадение владельца неотличимо от отсутствия записи.
func (u *UseCase) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Calculation, error) {
	calc, err := u.repo.GetCalculation(ctx, id)
	if err != nil {
		return nil, err
	}
	if calc.UserID != userID {
		return nil, domain.ErrCalculationNotFound
	}
	return calc, nil
}

// Update заменяет операнды (nil — оставить как есть), пересчитывает результат и
// сохраняет. Пересчёт идёт через GetResult, так что нулевой делитель, пришедший
// с частичным обновлением, отлавливается здесь до записи в БД.
func (u *UseCase) Update(ctx context.Context, userID, id uuid.UUID, inputs []float64) (*domain.Calculation, error) {
	calc, err := u.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if inputs != nil {
		calc.Inputs = inputs
	}
	result, err := calc.GetResult()
	if err != nil {
		return nil, err
	}
	calc.Result = &result
	calc.UpdatedAt = time.Now().UTC()

	if err := u.repo.UpdateCalculation(ctx, *calc); err != nil {
		return nil, err
	}
	u.log.Info("calculation updated", "id", calc.ID, "result", result)

	if err := u.cache.Set(ctx, cacheKey(calc.Type, calc.Inputs), result); err != nil {
		return nil, err
	}

	u.publish(ctx, calc)

	return calc, nil
}

// Delete удаляет вычисление пользователя (с той же проверкой владельца, что и Get).
func (u *UseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := u.Get(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.DeleteCalculation(ctx, id)
}

// HandleCalculationEvent вызывается консьюмером при получении сообщения из топика
// calculations: пишет вычисление в аналитическое хранилище.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error {
	if err := u.analytics.WriteCalculation(ctx, calc); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "id", calc.ID, "type", calc.Type, "result", calc.Result)
	return nil
}

// publish отправляет событие в брокер. Ошибка брокера не валит запрос:
// вычисление уже сохранено, аналитика догонит при повторной публикации.
func (u *UseCase) publish(ctx context.Context, calc *domain.Calculation) {
	value, err := json.Marshal(calc)
	if err != nil {
		u.log.Warn("event marshal", "id", calc.ID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(calc.ID.String()), value); err != nil {
		u.log.Warn("broker send", "id", calc.ID, "error", err)
		return
	}
	u.log.Info("calculation published", "id", calc.ID, "type", calc.Type)
}
