package calculation

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polyCalc/internal/api/http/middlewares"
	"polyCalc/internal/domain"
	"polyCalc/internal/ports"
)

// Controller — HTTP-ручки вычислений под /api/v1/calculations.
type Controller struct {
	uc   ports.ICalculationUseCase
	auth ports.IAuthUseCase
	log  *slog.Logger
}

// New возвращает контроллер вычислений.
func New(uc ports.ICalculationUseCase, auth ports.IAuthUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, auth: auth, log: log}
}

// RegisterRoutes регистрирует CRUD-маршруты; все под JWT-защитой.
func (ctrl *Controller) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/calculations", middlewares.Auth(ctrl.auth))
	g.POST("", ctrl.create)
	g.GET("", ctrl.list)
	g.GET("/:id", ctrl.get)
	g.PUT("/:id", ctrl.update)
	g.DELETE("/:id", ctrl.delete)
}

func (ctrl *Controller) create(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req CalculationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	calcType, inputs, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calc, err := ctrl.uc.Create(c.Request.Context(), userID, string(calcType), inputs)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	resp, err := NewCalculationResponse(*calc)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (ctrl *Controller) list(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	calcs, err := ctrl.uc.List(c.Request.Context(), userID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	resp := make([]CalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		item, err := NewCalculationResponse(calc)
		if err != nil {
			ctrl.respondError(c, err)
			return
		}
		resp = append(resp, item)
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) get(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculation id"})
		return
	}
	calc, err := ctrl.uc.Get(c.Request.Context(), userID, id)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	resp, err := NewCalculationResponse(*calc)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) update(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculation id"})
		return
	}
	var req CalculationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	inputs, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calc, err := ctrl.uc.Update(c.Request.Context(), userID, id, inputs)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	resp, err := NewCalculationResponse(*calc)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) delete(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculation id"})
		return
	}
	if err := ctrl.uc.Delete(c.Request.Context(), userID, id); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError переводит доменные ошибки в HTTP-статусы.
func (ctrl *Controller) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType),
		errors.Is(err, domain.ErrInvalidInputType),
		errors.Is(err, domain.ErrInsufficientOperands),
		errors.Is(err, domain.ErrDivisionByZero):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCalculationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "calculation not found"})
	default:
		ctrl.log.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
