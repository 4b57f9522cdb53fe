package base

import (
	"context"
	"fmt"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/pkg/validate"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
)

// BaseRequest - запрос на создание или изменение прокатной базы
type BaseRequest struct {
	Name    string `json:"name" validate:"required,min=10,max=150"`
	Region  string `json:"region" validate:"required,min=5,max=100"`
	City    string `json:"city" validate:"required,min=5,max=100"`
	Address string `json:"address" validate:"required,min=20,max=255"`
	Phone   string `json:"phone" validate:"required,min=8,max=20"`
}

// Service содержит бизнес-логику работы с прокатными базами
type Service struct {
	baseRepo repository.BaseRepository
	logger   logger.Logger
}

// NewService создает новый экземпляр BaseService
func NewService(baseRepo repository.BaseRepository, logger logger.Logger) *Service {
	return &Service{
		baseRepo: baseRepo,
		logger:   logger,
	}
}

// Create создает новую базу
func (s *Service) Create(ctx context.Context, req *BaseRequest) (*domain.Base, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	base := &domain.Base{
		Name:    req.Name,
		Region:  req.Region,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := s.baseRepo.Create(ctx, base); err != nil {
		s.logger.Error("Failed to create base", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create base: %w", err)
	}

	s.logger.Info("Base created", map[string]interface{}{
		"base_id": base.ID,
	})

	return base, nil
}

// GetByID возвращает базу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Base, error) {
	return s.baseRepo.GetByID(ctx, id)
}

// List возвращает список баз
func (s *Service) List(ctx context.Context) ([]*domain.Base, error) {
	return s.baseRepo.List(ctx)
}

// Update изменяет существующую базу
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *BaseRequest) (*domain.Base, error) {
	base, err := s.baseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	base.Name = req.Name
	base.Region = req.Region
	base.City = req.City
	base.Address = req.Address
	base.Phone = req.Phone

	if err := s.baseRepo.Update(ctx, base); err != nil {
		return nil, fmt.Errorf("failed to update base: %w", err)
	}

	return base, nil
}

// Delete удаляет базу
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Base, error) {
	base, err := s.baseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.baseRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete base: %w", err)
	}

	s.logger.Info("Base deleted", map[string]interface{}{
		"base_id": id,
	})

	return base, nil
}
