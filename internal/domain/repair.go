package domain

import (
	"time"

	"github.com/google/uuid"
)

// Repair - запись о ремонте автомобиля
// Механик и автомобиль должны существовать на момент создания записи
type Repair struct {
	ID         uuid.UUID `json:"id"`
	MechanicID uuid.UUID `json:"mechanic_id"`
	CarID      uuid.UUID `json:"car_id"`
	RepairDate time.Time `json:"repair_date"`
	Costs      float64   `json:"costs"`
}
