package car

import (
	"context"
	"errors"
	"fmt"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/pkg/validate"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
)

// CarRequest - запрос на создание или изменение автомобиля
type CarRequest struct {
	BaseID             uuid.UUID `json:"base_id" validate:"required"`
	Mark               string    `json:"mark" validate:"required,min=5,max=100"`
	Model              string    `json:"model" validate:"required,min=5,max=100"`
	RegistrationNumber string    `json:"registration_number" validate:"required,min=3,max=30"`
	ProductionYear     string    `json:"production_year" validate:"required,len=4"`
	RentPrice          float64   `json:"rent_price" validate:"required"`
	Category           string    `json:"category" validate:"required,min=5,max=30"`
}

// Service содержит бизнес-логику работы с автомобилями
type Service struct {
	carRepo  repository.CarRepository
	baseRepo repository.BaseRepository
	logger   logger.Logger
}

// NewService создает новый экземпляр CarService
func NewService(
	carRepo repository.CarRepository,
	baseRepo repository.BaseRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		carRepo:  carRepo,
		baseRepo: baseRepo,
		logger:   logger,
	}
}

// Create создает новый автомобиль
// Автомобиль обязан ссылаться на существующую базу
func (s *Service) Create(ctx context.Context, req *CarRequest) (*domain.Car, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.baseRepo.GetByID(ctx, req.BaseID); err != nil {
		if errors.Is(err, domain.ErrBaseNotFound) {
			return nil, domain.ErrInvalidBase
		}
		return nil, fmt.Errorf("failed to get base: %w", err)
	}

	car := &domain.Car{
		BaseID:             req.BaseID,
		Mark:               req.Mark,
		Model:              req.Model,
		RegistrationNumber: req.RegistrationNumber,
		ProductionYear:     req.ProductionYear,
		RentPrice:          req.RentPrice,
		Category:           req.Category,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		s.logger.Error("Failed to create car", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	s.logger.Info("Car created", map[string]interface{}{
		"car_id":              car.ID,
		"registration_number": car.RegistrationNumber,
	})

	return car, nil
}

// GetByID возвращает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

// List возвращает список автомобилей
func (s *Service) List(ctx context.Context) ([]*domain.Car, error) {
	return s.carRepo.List(ctx)
}

// Update изменяет существующий автомобиль
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *CarRequest) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.baseRepo.GetByID(ctx, req.BaseID); err != nil {
		if errors.Is(err, domain.ErrBaseNotFound) {
			return nil, domain.ErrInvalidBase
		}
		return nil, fmt.Errorf("failed to get base: %w", err)
	}

	car.BaseID = req.BaseID
	car.Mark = req.Mark
	car.Model = req.Model
	car.RegistrationNumber = req.RegistrationNumber
	car.ProductionYear = req.ProductionYear
	car.RentPrice = req.RentPrice
	car.Category = req.Category

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	return car, nil
}

// Delete удаляет автомобиль
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete car: %w", err)
	}

	s.logger.Info("Car deleted", map[string]interface{}{
		"car_id": id,
	})

	return car, nil
}
