package domain

import "github.com/google/uuid"

// Base - прокатная база (филиал)
// На базу ссылаются агенты, механики и автомобили
type Base struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Region  string    `json:"region"`
	City    string    `json:"city"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
}
