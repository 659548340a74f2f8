package app

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"polyCalc/internal/api/http"
	"polyCalc/internal/infrastructure/click"
	"polyCalc/internal/infrastructure/kafka"
	"polyCalc/internal/infrastructure/mongo"
	"polyCalc/internal/infrastructure/pg"
	"polyCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// AuthConfig — настройки JWT. Переменные: CALCULATOR_AUTH_SECRET, CALCULATOR_AUTH_TOKEN_TTL.
type AuthConfig struct {
	Secret   string        `envconfig:"SECRET" required:"true"`
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
// RepoDriver выбирает хранилище вычислений: postgres или mongo.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Auth       AuthConfig        `envconfig:"AUTH"`
	RepoDriver string            `envconfig:"REPO_DRIVER" default:"postgres"`
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
