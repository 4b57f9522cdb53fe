package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agent - сотрудник прокатной базы
// Агенты - единственные пользователи системы: только они логинятся и получают токен
type Agent struct {
	ID           uuid.UUID `json:"id"`
	BaseID       uuid.UUID `json:"base_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Salary       float64   `json:"salary"`
	HireDate     time.Time `json:"hire_date"`
	PasswordHash string    `json:"-"` // Никогда не возвращаем в JSON
	IsAdmin      bool      `json:"is_admin"`
}

// FullName возвращает полное имя агента
func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}
