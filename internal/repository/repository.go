package repository

import (
	"context"
	"time"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/google/uuid"
)

// AgentRepository определяет методы для работы с агентами
type AgentRepository interface {
	// Create создает нового агента
	Create(ctx context.Context, agent *domain.Agent) error

	// GetByID возвращает агента по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error)

	// GetByEmail возвращает агента по email
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)

	// List возвращает список агентов
	List(ctx context.Context) ([]*domain.Agent, error)
}

// BaseRepository определяет методы для работы с прокатными базами
type BaseRepository interface {
	Create(ctx context.Context, base *domain.Base) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Base, error)
	List(ctx context.Context) ([]*domain.Base, error)
	Update(ctx context.Context, base *domain.Base) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarRepository определяет методы для работы с автомобилями
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository определяет методы для работы с клиентами
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MechanicRepository определяет методы для работы с механиками
type MechanicRepository interface {
	Create(ctx context.Context, mechanic *domain.Mechanic) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	List(ctx context.Context) ([]*domain.Mechanic, error)
	Update(ctx context.Context, mechanic *domain.Mechanic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsContained проверяет, есть ли заказ, окно которого целиком
	// лежит внутри [start, end]. КЛЮЧЕВОЙ МЕТОД проверки занятости,
	// см. комментарий к реализации
	ExistsContained(ctx context.Context, start, end time.Time) (bool, error)
}

// ArchivedOrderRepository определяет методы для работы с архивом заказов
// Записи создаются только при удалении заказа и никогда не изменяются
type ArchivedOrderRepository interface {
	Create(ctx context.Context, order *domain.ArchivedOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedOrder, error)
	List(ctx context.Context) ([]*domain.ArchivedOrder, error)
}

// RepairRepository определяет методы для работы с записями о ремонте
type RepairRepository interface {
	Create(ctx context.Context, repair *domain.Repair) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	List(ctx context.Context) ([]*domain.Repair, error)
	Update(ctx context.Context, repair *domain.Repair) error
	Delete(ctx context.Context, id uuid.UUID) error
}
