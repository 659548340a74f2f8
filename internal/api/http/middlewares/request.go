package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый запрос: метод, маршрут, статус, размер ответа,
// длительность и client IP. Маршрут берём шаблоном (/api/v1/calculations/:id),
// чтобы записи группировались по ручкам, а не по конкретным id.
func RequestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	slog.Info("http request",
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"bytes", c.Writer.Size(),
		"ip", c.ClientIP(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
