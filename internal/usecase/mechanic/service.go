package mechanic

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

// MechanicRequest - запрос на создание или изменение механика
type MechanicRequest struct {
	BaseID    uuid.UUID `json:"base_id"`
	FirstName string    `json:"first_name" validate:"required,min=5,max=150"`
	LastName  string    `json:"last_name" validate:"required,min=5,max=150"`
	Phone     string    `json:"phone" validate:"required,min=8,max=12"`
	Salary    float64   `json:"salary" validate:"required"`
	HireDate  time.Time `json:"hire_date"`
}

// Service содержит бизнес-логику работы с механиками
type Service struct {
	mechanicRepo repository.MechanicRepository
	baseRepo     repository.BaseRepository
	logger       logger.Logger
}

// NewService создает новый экземпляр MechanicService
func NewService(
	mechanicRepo repository.MechanicRepository,
	baseRepo repository.BaseRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		mechanicRepo: mechanicRepo,
		baseRepo:     baseRepo,
		logger:       logger,
	}
}

// Create создает нового механика
func (s *Service) Create(ctx context.Context, req *MechanicRequest) (*domain.Mechanic, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	// База не обязательна, но если указана - должна существовать
	if req.BaseID != uuid.Nil {
		if _, err := s.baseRepo.GetByID(ctx, req.BaseID); err != nil {
			if errors.Is(err, domain.ErrBaseNotFound) {
				return nil, domain.ErrInvalidBase
			}
			return nil, fmt.Errorf("failed to get base: %w", err)
		}
	}

	mechanic := &domain.Mechanic{
		BaseID:    req.BaseID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Salary:    req.Salary,
		HireDate:  req.HireDate,
	}

	if mechanic.HireDate.IsZero() {
		mechanic.HireDate = time.Now()
	}

	if err := s.mechanicRepo.Create(ctx, mechanic); err != nil {
		s.logger.Error("Failed to create mechanic", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create mechanic: %w", err)
	}

	s.logger.Info("Mechanic created", map[string]interface{}{
		"mechanic_id": mechanic.ID,
	})

	return mechanic, nil
}

// GetByID возвращает механика по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error) {
	return s.mechanicRepo.GetByID(ctx, id)
}

// List возвращает список механиков
func (s *Service) List(ctx context.Context) ([]*domain.Mechanic, error) {
	return s.mechanicRepo.List(ctx)
}

// Update изменяет существующего механика
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *MechanicRequest) (*domain.Mechanic, error) {
	mechanic, err := s.mechanicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if req.BaseID != uuid.Nil {
		if _, err := s.baseRepo.GetByID(ctx, req.BaseID); err != nil {
			if errors.Is(err, domain.ErrBaseNotFound) {
				return nil, domain.ErrInvalidBase
			}
			return nil, fmt.Errorf("failed to get base: %w", err)
		}
	}

	mechanic.BaseID = req.BaseID
	mechanic.FirstName = req.FirstName
	mechanic.LastName = req.LastName
	mechanic.Phone = req.Phone
	mechanic.Salary = req.Salary
	if !req.HireDate.IsZero() {
		mechanic.HireDate = req.HireDate
	}

	if err := s.mechanicRepo.Update(ctx, mechanic); err != nil {
		return nil, fmt.Errorf("failed to update mechanic: %w", err)
	}

	return mechanic, nil
}

// Delete удаляет механика
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error) {
	mechanic, err := s.mechanicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mechanicRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete mechanic: %w", err)
	}

	s.logger.Info("Mechanic deleted", map[string]interface{}{
		"mechanic_id": id,
	})

	return mechanic, nil
}
