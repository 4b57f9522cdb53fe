package jwt

import (
	"testing"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testAgent(isAdmin bool) *domain.Agent {
	return &domain.Agent{
		ID:        uuid.New(),
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan.petrov@rental.com",
		IsAdmin:   isAdmin,
	}
}

// TestTokenService_GenerateAndVerify тестирует выдачу и проверку токена
func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret")
	agent := testAgent(true)

	token, err := ts.Generate(agent)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, agent.ID, claims.AgentID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "Ivan Petrov", claims.Name)

	// Срок действия намеренно не выставляется
	assert.Nil(t, claims.ExpiresAt)
}

// TestTokenService_Verify тестирует отказы проверки
func TestTokenService_Verify(t *testing.T) {
	ts := NewTokenService("test-secret")

	t.Run("битая строка", func(t *testing.T) {
		claims, err := ts.Verify("garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("пустая строка", func(t *testing.T) {
		claims, err := ts.Verify("")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("чужой ключ подписи", func(t *testing.T) {
		foreign := NewTokenService("another-secret")
		token, err := foreign.Generate(testAgent(false))
		assert.NoError(t, err)

		claims, err := ts.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
