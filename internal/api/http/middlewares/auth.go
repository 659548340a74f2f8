package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polyCalc/internal/ports"
)

const userIDKey = "user_id"

// Auth проверяет Bearer-токен и кладёт id пользователя в контекст запроса.
// Без валидного токена запрос завершается 401.
func Auth(auth ports.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		userID, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or revoked token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID достаёт id пользователя, положенный Auth. Второе значение false,
// если middleware не отработал (маршрут не под защитой).
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
