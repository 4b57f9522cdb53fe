package repair

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

// RepairRequest - запрос на создание или изменение записи о ремонте
type RepairRequest struct {
	MechanicID uuid.UUID `json:"mechanic_id" validate:"required"`
	CarID      uuid.UUID `json:"car_id" validate:"required"`
	RepairDate time.Time `json:"repair_date" validate:"required"`
	Costs      float64   `json:"costs" validate:"gte=0"`
}

// Service содержит бизнес-логику работы с записями о ремонте
type Service struct {
	repairRepo   repository.RepairRepository
	mechanicRepo repository.MechanicRepository
	carRepo      repository.CarRepository
	logger       logger.Logger
}

// NewService создает новый экземпляр RepairService
func NewService(
	repairRepo repository.RepairRepository,
	mechanicRepo repository.MechanicRepository,
	carRepo repository.CarRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		repairRepo:   repairRepo,
		mechanicRepo: mechanicRepo,
		carRepo:      carRepo,
		logger:       logger,
	}
}

// Create создает новую запись о ремонте
// Механик и автомобиль должны существовать
func (s *Service) Create(ctx context.Context, req *RepairRequest) (*domain.Repair, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.mechanicRepo.GetByID(ctx, req.MechanicID); err != nil {
		if errors.Is(err, domain.ErrMechanicNotFound) {
			return nil, domain.ErrMechanicNotFound
		}
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}

	if _, err := s.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	repair := &domain.Repair{
		MechanicID: req.MechanicID,
		CarID:      req.CarID,
		RepairDate: req.RepairDate,
		Costs:      req.Costs,
	}

	if err := s.repairRepo.Create(ctx, repair); err != nil {
		s.logger.Error("Failed to create repair", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create repair: %w", err)
	}

	s.logger.Info("Repair created", map[string]interface{}{
		"repair_id": repair.ID,
		"car_id":    repair.CarID,
	})

	return repair, nil
}

// GetByID возвращает запись о ремонте по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	return s.repairRepo.GetByID(ctx, id)
}

// List возвращает список записей о ремонте
func (s *Service) List(ctx context.Context) ([]*domain.Repair, error) {
	return s.repairRepo.List(ctx)
}

// Update изменяет существующую запись о ремонте
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *RepairRequest) (*domain.Repair, error) {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.mechanicRepo.GetByID(ctx, req.MechanicID); err != nil {
		if errors.Is(err, domain.ErrMechanicNotFound) {
			return nil, domain.ErrMechanicNotFound
		}
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}

	if _, err := s.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	repair.MechanicID = req.MechanicID
	repair.CarID = req.CarID
	repair.RepairDate = req.RepairDate
	repair.Costs = req.Costs

	if err := s.repairRepo.Update(ctx, repair); err != nil {
		return nil, fmt.Errorf("failed to update repair: %w", err)
	}

	return repair, nil
}

// Delete удаляет запись о ремонте
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	repair, err := s.repairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repairRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete repair: %w", err)
	}

	s.logger.Info("Repair deleted", map[string]interface{}{
		"repair_id": id,
	})

	return repair, nil
}
