package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mechanic - механик прокатной базы
type Mechanic struct {
	ID        uuid.UUID `json:"id"`
	BaseID    uuid.UUID `json:"base_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Salary    float64   `json:"salary"`
	HireDate  time.Time `json:"hire_date"`
}
