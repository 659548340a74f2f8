package system

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger — минимальный контракт готовности: обычно это репозиторий.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — служебные ручки liveness/readiness.
type Controller struct {
	deps []Pinger
}

// New возвращает системный контроллер; deps опрашиваются в readyness.
func New(deps ...Pinger) *Controller {
	return &Controller{deps: deps}
}

// RegisterRoutes регистрирует /liveness и /readyness.
func (ctrl *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", ctrl.liveness)
	r.GET("/readyness", ctrl.readyness)
}

func (ctrl *Controller) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctrl *Controller) readyness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	for _, d := range ctrl.deps {
		if err := d.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
