package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"polyCalc/internal/domain"
	"polyCalc/internal/ports"
)

// Controller — ручки регистрации и входа под /api/v1/auth.
type Controller struct {
	uc  ports.IAuthUseCase
	log *slog.Logger
}

// New возвращает контроллер аутентификации.
func New(uc ports.IAuthUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes регистрирует маршруты; все публичные, logout сам проверяет токен.
func (ctrl *Controller) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/auth")
	g.POST("/register", ctrl.register)
	g.POST("/login", ctrl.login)
	g.POST("/logout", ctrl.logout)
}

func (ctrl *Controller) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := ctrl.uc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		ctrl.log.Error("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, RegisterResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

func (ctrl *Controller) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	token, err := ctrl.uc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		ctrl.log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (ctrl *Controller) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	if err := ctrl.uc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		ctrl.log.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
