package client

import (
	"context"
	"fmt"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/pkg/validate"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
)

// ClientRequest - запрос на создание или изменение клиента
type ClientRequest struct {
	CIN       string `json:"cin" validate:"required,len=8"`
	FirstName string `json:"first_name" validate:"required,min=10,max=150"`
	LastName  string `json:"last_name" validate:"required,min=10,max=150"`
	Phone     string `json:"phone" validate:"required,min=8,max=12"`
	Address   string `json:"address" validate:"required,min=30,max=150"`
}

// Service содержит бизнес-логику работы с клиентами
type Service struct {
	clientRepo repository.ClientRepository
	logger     logger.Logger
}

// NewService создает новый экземпляр ClientService
func NewService(clientRepo repository.ClientRepository, logger logger.Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *ClientRequest) (*domain.Client, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	client := &domain.Client{
		CIN:       req.CIN,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.Error("Failed to create client", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("Client created", map[string]interface{}{
		"client_id": client.ID,
	})

	return client, nil
}

// GetByID возвращает клиента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// List возвращает список клиентов
func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx)
}

// Update изменяет существующего клиента
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *ClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	client.CIN = req.CIN
	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Phone = req.Phone
	client.Address = req.Address

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	s.logger.Info("Client deleted", map[string]interface{}{
		"client_id": id,
	})

	return client, nil
}
