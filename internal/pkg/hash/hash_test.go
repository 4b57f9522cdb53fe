package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// TestHashPassword тестирует хеширование и проверку пароля
func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "password123", hashed)

	assert.True(t, CheckPassword(hashed, "password123"))
	assert.False(t, CheckPassword(hashed, "wrongpassword"))
}

// TestHashPassword_Cost проверяет, что хеш выдается с ожидаемой стоимостью
func TestHashPassword_Cost(t *testing.T) {
	hashed, err := HashPassword("password123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	assert.NoError(t, err)
	assert.Equal(t, 12, cost)
}

// TestHashPassword_UniqueSalt проверяет, что одинаковые пароли дают разные хеши
func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("password123")
	assert.NoError(t, err)

	second, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestCheckPassword_InvalidHash проверяет поведение на битом хеше
func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "password123"))
}
