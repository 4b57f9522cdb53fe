package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/pkg/validate"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
)

// OrderRequest - запрос на создание или изменение заказа
type OrderRequest struct {
	ClientID      uuid.UUID `json:"client_id" validate:"required"`
	CarID         uuid.UUID `json:"car_id" validate:"required"`
	OrderDate     time.Time `json:"order_date"`
	RentStartDate time.Time `json:"rent_start_date" validate:"required"`
	RentEndDate   time.Time `json:"rent_end_date" validate:"required"`
}

// Service содержит бизнес-логику жизненного цикла заказа
type Service struct {
	orderRepo    repository.OrderRepository
	archivedRepo repository.ArchivedOrderRepository
	clientRepo   repository.ClientRepository
	carRepo      repository.CarRepository
	logger       logger.Logger
}

// NewService создает новый экземпляр OrderService
func NewService(
	orderRepo repository.OrderRepository,
	archivedRepo repository.ArchivedOrderRepository,
	clientRepo repository.ClientRepository,
	carRepo repository.CarRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		archivedRepo: archivedRepo,
		clientRepo:   clientRepo,
		carRepo:      carRepo,
		logger:       logger,
	}
}

// Create создает новый заказ
// Порядок проверок фиксирован: форма запроса, клиент, автомобиль, занятость
func (s *Service) Create(ctx context.Context, req *OrderRequest) (*domain.Order, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if _, err := s.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	// Проверка занятости НЕ атомарна со вставкой: два конкурентных
	// запроса на одно окно могут оба пройти проверку
	busy, err := s.orderRepo.ExistsContained(ctx, req.RentStartDate, req.RentEndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check rent window: %w", err)
	}
	if busy {
		s.logger.Warn("Order rejected: window already taken", map[string]interface{}{
			"car_id":          req.CarID,
			"rent_start_date": req.RentStartDate,
			"rent_end_date":   req.RentEndDate,
		})
		return nil, domain.ErrCarAlreadyInRent
	}

	order := &domain.Order{
		ClientID:      req.ClientID,
		CarID:         req.CarID,
		OrderDate:     req.OrderDate,
		RentStartDate: req.RentStartDate,
		RentEndDate:   req.RentEndDate,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("Order created", map[string]interface{}{
		"order_id":  order.ID,
		"client_id": order.ClientID,
		"car_id":    order.CarID,
	})

	return order, nil
}

// GetByID возвращает заказ по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// List возвращает список заказов
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx)
}

// Update изменяет существующий заказ
// Занятость окна при изменении заново НЕ проверяется
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *OrderRequest) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if _, err := s.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	order.ClientID = req.ClientID
	order.CarID = req.CarID
	order.RentStartDate = req.RentStartDate
	order.RentEndDate = req.RentEndDate
	if !req.OrderDate.IsZero() {
		order.OrderDate = req.OrderDate
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info("Order updated", map[string]interface{}{
		"order_id": order.ID,
	})

	return order, nil
}

// Delete архивирует и удаляет заказ, возвращая исходные данные заказа
// Архивация и удаление - два отдельных запроса без транзакции: сбой между
// ними оставляет обе записи, сбой до архивации - ни одной
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	archived := order.Archive(time.Now())
	if err := s.archivedRepo.Create(ctx, archived); err != nil {
		s.logger.Error("Failed to archive order", map[string]interface{}{
			"order_id": order.ID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("failed to archive order: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete order after archiving", map[string]interface{}{
			"order_id":    order.ID,
			"archived_id": archived.ID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("Order archived and deleted", map[string]interface{}{
		"order_id":    order.ID,
		"archived_id": archived.ID,
	})

	return order, nil
}

// GetArchivedByID возвращает архивную запись по ID
func (s *Service) GetArchivedByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedOrder, error) {
	return s.archivedRepo.GetByID(ctx, id)
}

// ListArchived возвращает список архивных записей
func (s *Service) ListArchived(ctx context.Context) ([]*domain.ArchivedOrder, error) {
	return s.archivedRepo.List(ctx)
}
