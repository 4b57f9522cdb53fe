package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func issueToken(t *testing.T, ts *jwt.TokenService, isAdmin bool) string {
	t.Helper()
	token, err := ts.Generate(&domain.Agent{
		ID:        uuid.New(),
		FirstName: "Ivan",
		LastName:  "Petrov",
		IsAdmin:   isAdmin,
	})
	assert.NoError(t, err)
	return token
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp["error"]
}

// TestAuthMiddleware тестирует проверку токена
func TestAuthMiddleware(t *testing.T) {
	tokenService := jwt.NewTokenService(testSecret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetAgentClaims(r.Context())
		assert.True(t, ok)
		assert.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(tokenService)(next)

	t.Run("валидный токен пропускается", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set(TokenHeader, issueToken(t, tokenService, false))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("отсутствие токена дает 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "access denied. no token provided.", errorBody(t, w))
	})

	t.Run("битый токен дает 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set(TokenHeader, "not-a-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid token.", errorBody(t, w))
	})

	t.Run("токен с чужим ключом дает 400", func(t *testing.T) {
		foreign := jwt.NewTokenService("another-secret")

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set(TokenHeader, issueToken(t, foreign, false))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid token.", errorBody(t, w))
	})
}

// TestAdminMiddleware тестирует проверку прав администратора
func TestAdminMiddleware(t *testing.T) {
	tokenService := jwt.NewTokenService(testSecret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(tokenService)(AdminMiddleware()(next))

	t.Run("администратор пропускается", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/orders/42", nil)
		req.Header.Set(TokenHeader, issueToken(t, tokenService, true))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("обычный агент получает 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/orders/42", nil)
		req.Header.Set(TokenHeader, issueToken(t, tokenService, false))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "access denied.", errorBody(t, w))
	})

	t.Run("без токена admin-проверка не достигается", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/orders/42", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
