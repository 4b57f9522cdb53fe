package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order - активная аренда автомобиля
// Клиент и автомобиль должны существовать на момент создания заказа,
// ссылочная целостность проверяется в usecase-слое перед записью
type Order struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"client_id"`
	CarID         uuid.UUID `json:"car_id"`
	OrderDate     time.Time `json:"order_date"`
	RentStartDate time.Time `json:"rent_start_date"`
	RentEndDate   time.Time `json:"rent_end_date"`
}

// ArchivedOrder - исторический снимок удаленного заказа
// Создается ТОЛЬКО как побочный эффект удаления Order, напрямую через API не создается
type ArchivedOrder struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"client_id"`
	CarID         uuid.UUID `json:"car_id"`
	OrderDate     time.Time `json:"order_date"`
	RentStartDate time.Time `json:"rent_start_date"`
	RentEndDate   time.Time `json:"rent_end_date"`
	DeleteDate    time.Time `json:"delete_date"`
}

// Archive строит архивную запись заказа с меткой времени удаления
func (o *Order) Archive(deletedAt time.Time) *ArchivedOrder {
	return &ArchivedOrder{
		ClientID:      o.ClientID,
		CarID:         o.CarID,
		OrderDate:     o.OrderDate,
		RentStartDate: o.RentStartDate,
		RentEndDate:   o.RentEndDate,
		DeleteDate:    deletedAt,
	}
}
