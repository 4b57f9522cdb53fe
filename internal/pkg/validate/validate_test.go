package validate

import (
	"errors"
	"testing"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Name  string `json:"name" validate:"required,min=10,max=150"`
	Email string `json:"email" validate:"required,min=10,max=150"`
	Code  string `json:"code" validate:"omitempty,len=8"`
}

// TestStruct тестирует валидацию request-структур
func TestStruct(t *testing.T) {
	tests := []struct {
		name            string
		request         testRequest
		expectedField   string
		expectedMessage string
	}{
		{
			name: "валидная структура",
			request: testRequest{
				Name:  "Ivan Petrov Jr",
				Email: "ivan@rental.com",
			},
		},
		{
			name:            "пропущенное поле",
			request:         testRequest{Email: "ivan@rental.com"},
			expectedField:   "name",
			expectedMessage: `"name" is required`,
		},
		{
			name: "слишком короткое значение",
			request: testRequest{
				Name:  "Ivan",
				Email: "ivan@rental.com",
			},
			expectedField:   "name",
			expectedMessage: `"name" length must be at least 10 characters long`,
		},
		{
			name: "неверная длина",
			request: testRequest{
				Name:  "Ivan Petrov Jr",
				Email: "ivan@rental.com",
				Code:  "123",
			},
			expectedField:   "code",
			expectedMessage: `"code" length must be 8 characters long`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.request)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *domain.ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.expectedField, validationErr.Field)
			assert.Equal(t, tt.expectedMessage, validationErr.Message)
		})
	}
}
