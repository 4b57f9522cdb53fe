package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Car - автомобиль, доступный для аренды
// ВАЖНО: автомобиль ОБЯЗАТЕЛЬНО приписан к существующей базе (BaseID)
type Car struct {
	ID                 uuid.UUID `json:"id"`
	BaseID             uuid.UUID `json:"base_id"`
	Mark               string    `json:"mark"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
	ProductionYear     string    `json:"production_year"` // Хранится строкой из 4 символов
	RentPrice          float64   `json:"rent_price"`
	Category           string    `json:"category"`
}

// NormalizeRegistrationNumber нормализует регистрационный номер
// (убирает пробелы, приводит к верхнему регистру)
func NormalizeRegistrationNumber(number string) string {
	return strings.ToUpper(strings.ReplaceAll(number, " ", ""))
}
