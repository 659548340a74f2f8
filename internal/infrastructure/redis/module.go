package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config — настройки подключения к Redis. Переменные: CALCULATOR_REDIS_HOST,
// PORT, PASSWORD, DB. Один инстанс обслуживает и кэш результатов, и чёрный список токенов.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	if c == nil {
		return "localhost:6379"
	}
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Client — обёртка над redis.Client.
type Client struct {
	*redis.Client
}

// New подключается к Redis по конфигу и проверяет пингом (таймаут 5 секунд,
// чтобы недоступный Redis не подвешивал старт приложения).
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{Client: cli}, nil
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Ping проверяет соединение (для readyness).
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
