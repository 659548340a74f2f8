package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "polyCalc/internal/api/http"
	authctrl "polyCalc/internal/api/http/controllers/auth"
	calcctrl "polyCalc/internal/api/http/controllers/calculation"
	"polyCalc/internal/api/http/controllers/system"
	"polyCalc/internal/infrastructure/click"
	"polyCalc/internal/infrastructure/kafka"
	"polyCalc/internal/infrastructure/mongo"
	"polyCalc/internal/infrastructure/pg"
	"polyCalc/internal/infrastructure/redis"
	"polyCalc/internal/pkg/logger"
	"polyCalc/internal/ports"
	authUsecase "polyCalc/internal/usecase/auth"
	calcUsecase "polyCalc/internal/usecase/calculation"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (зависимости подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к хранилищам и брокеру, инициализирует зависимости,
// запускает консьюмера и HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	db, err := pg.New(&a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Хранилище вычислений выбирается конфигом; пользователи всегда в Postgres.
	var repo ports.ICalculationRepository
	switch a.cfg.RepoDriver {
	case "postgres":
		repo = pg.NewCalculationRepo(db, log)
	case "mongo":
		mcli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		defer func() { _ = mcli.Disconnect(context.Background()) }()
		repo = mongo.NewCalculationRepo(mcli, log)
	default:
		return fmt.Errorf("unknown repo driver %q", a.cfg.RepoDriver)
	}

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewCalculationWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.New(&a.cfg.Kafka).Producer()
	defer producer.Close()

	cache := redis.NewCache(rdb, log)
	tokens := redis.NewTokenStore(rdb, log)
	users := pg.NewUserRepo(db, log)

	calcUC := calcUsecase.New(repo, cache, producer, writer, log)
	authUC := authUsecase.New(users, tokens, a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, calcUC, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, rdb),
		authctrl.New(authUC, log),
		calcctrl.New(calcUC, authUC, log))

	slog.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"repo_driver", a.cfg.RepoDriver)

	return srv.Start(ctx)
}
