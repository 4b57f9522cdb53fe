package jwt

import (
	"fmt"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims содержит payload токена агента
// Флаг is_admin фиксируется в момент выдачи: снятие прав агента
// не отзывает ранее выданные токены
type Claims struct {
	AgentID uuid.UUID `json:"agent_id"`
	IsAdmin bool      `json:"is_admin"`
	Name    string    `json:"name"`
	jwt.RegisteredClaims
}

// TokenService управляет созданием и проверкой токенов
// Ключ подписи передается при создании и не меняется после старта процесса
type TokenService struct {
	secretKey string
}

// NewTokenService создает новый сервис для работы с токенами
func NewTokenService(secretKey string) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// Generate выдает подписанный токен агента
// Срок действия не задается: токен действителен, пока не сменится ключ подписи
func (ts *TokenService) Generate(agent *domain.Agent) (string, error) {
	claims := &Claims{
		AgentID: agent.ID,
		IsAdmin: agent.IsAdmin,
		Name:    agent.FullName(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ts.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify проверяет подпись токена и возвращает claims
// Битый, неподписанный или подписанный чужим ключом токен дает ошибку
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secretKey), nil
	})

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
