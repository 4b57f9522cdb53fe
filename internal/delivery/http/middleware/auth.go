package middleware

import (
	"context"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/jwt"
)

// contextKey - тип для ключей контекста
type contextKey string

const (
	// AgentClaimsKey - ключ для сохранения claims агента в контексте
	AgentClaimsKey contextKey = "agent_claims"
)

// TokenHeader - заголовок, в котором клиент передает токен
const TokenHeader = "x-auth-token"

// AuthMiddleware проверяет наличие и валидность токена в заголовке x-auth-token
// Отсутствие заголовка и невалидный токен дают РАЗНЫЕ статусы (401 и 400) -
// клиенты завязаны на это различие, не выравнивать
func AuthMiddleware(tokenService *jwt.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				respondError(w, http.StatusUnauthorized, domain.ErrNoToken.Error())
				return
			}

			claims, err := tokenService.Verify(token)
			if err != nil {
				respondError(w, http.StatusBadRequest, domain.ErrInvalidToken.Error())
				return
			}

			// Добавляем claims в контекст
			ctx := context.WithValue(r.Context(), AgentClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware пропускает только агентов с флагом is_admin
// Флаг берется из токена как есть: отзыв прав не действует на уже выданные токены
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(AgentClaimsKey).(*jwt.Claims)
			if !ok {
				respondError(w, http.StatusUnauthorized, domain.ErrNoToken.Error())
				return
			}

			if !claims.IsAdmin {
				respondError(w, http.StatusForbidden, domain.ErrForbidden.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetAgentClaims извлекает claims агента из контекста
func GetAgentClaims(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(AgentClaimsKey).(*jwt.Claims)
	return claims, ok
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
