package domain

import "github.com/google/uuid"

// Client - арендатор
// Клиенты не логинятся в систему, пароля у них нет
type Client struct {
	ID        uuid.UUID `json:"id"`
	CIN       string    `json:"cin"` // Номер национального удостоверения, ровно 8 символов
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
}
