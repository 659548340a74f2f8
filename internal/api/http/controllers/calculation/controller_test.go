package calculation

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"polyCalc/internal/domain"
	"polyCalc/internal/mocks"
)

// setupRouter поднимает тестовый роутер с моками юзкейсов;
// Verify всегда пускает пользователя userID.
func setupRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *mocks.MockICalculationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	uc := mocks.NewMockICalculationUseCase(ctrl)
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().Verify(gomock.Any(), "valid-token").Return(userID, nil).AnyTimes()
	auth.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(uuid.Nil, domain.ErrInvalidToken).AnyTimes()

	r := gin.New()
	New(uc, auth, slog.Default()).RegisterRoutes(r)
	return r, uc
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestCreate_Created — валидный запрос создаёт вычисление и возвращает 201 с результатом.
func TestCreate_Created(t *testing.T) {
	userID := uuid.New()
	r, uc := setupRouter(t, userID)

	result := 5.0
	calc := &domain.Calculation{
		ID:     uuid.New(),
		UserID: userID,
		Type:   domain.TypeDivision,
		Inputs: []float64{60, 3, 4},
		Result: &result,
	}
	uc.EXPECT().
		Create(gomock.Any(), userID, "division", []float64{60, 3, 4}).
		Return(calc, nil)

	w := doRequest(r, http.MethodPost, "/api/v1/calculations", "valid-token",
		gin.H{"type": "Division", "inputs": []float64{60, 3, 4}})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, calc.ID, resp.ID)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 5.0, *resp.Result)
}

// TestCreate_ValidationErrors — ошибки схемы не доходят до юзкейса и дают 400.
func TestCreate_ValidationErrors(t *testing.T) {
	userID := uuid.New()
	r, _ := setupRouter(t, userID)

	tests := []struct {
		name string
		body gin.H
	}{
		{"неизвестный тип", gin.H{"type": "power", "inputs": []float64{2, 3}}},
		{"операнды не список", gin.H{"type": "addition", "inputs": "12"}},
		{"один операнд", gin.H{"type": "addition", "inputs": []float64{1}}},
		{"нулевой делитель", gin.H{"type": "division", "inputs": []float64{10, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/calculations", "valid-token", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// TestAuthRequired — без токена и с чужим токеном ручки закрыты.
func TestAuthRequired(t *testing.T) {
	r, _ := setupRouter(t, uuid.New())

	w := doRequest(r, http.MethodGet, "/api/v1/calculations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/calculations", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestGet_NotFound — чужое или несуществующее вычисление отдаёт 404.
func TestGet_NotFound(t *testing.T) {
	userID := uuid.New()
	r, uc := setupRouter(t, userID)

	id := uuid.New()
	uc.EXPECT().Get(gomock.Any(), userID, id).Return(nil, domain.ErrCalculationNotFound)

	w := doRequest(r, http.MethodGet, "/api/v1/calculations/"+id.String(), "valid-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestUpdate_DivisionByZeroFromDomain — ноль, пойманный пересчётом в домене, даёт 400.
func TestUpdate_DivisionByZeroFromDomain(t *testing.T) {
	userID := uuid.New()
	r, uc := setupRouter(t, userID)

	id := uuid.New()
	uc.EXPECT().
		Update(gomock.Any(), userID, id, []float64{10, 0}).
		Return(nil, domain.ErrDivisionByZero)

	w := doRequest(r, http.MethodPut, "/api/v1/calculations/"+id.String(), "valid-token",
		gin.H{"inputs": []float64{10, 0}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestDelete_NoContent — успешное удаление отдаёт 204 без тела.
func TestDelete_NoContent(t *testing.T) {
	userID := uuid.New()
	r, uc := setupRouter(t, userID)

	id := uuid.New()
	uc.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)

	w := doRequest(r, http.MethodDelete, "/api/v1/calculations/"+id.String(), "valid-token", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
