package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/hash"
	"github.com/frontandrew/rental/internal/pkg/jwt"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/pkg/validate"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
)

// LoginRequest - запрос на вход агента
type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=10,max=150"`
	Password string `json:"password" validate:"required,min=5,max=1024"`
}

// LoginResponse - ответ на вход
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest - запрос на регистрацию агента (только для администраторов)
type RegisterRequest struct {
	BaseID    uuid.UUID `json:"base_id"`
	FirstName string    `json:"first_name" validate:"required,min=10,max=150"`
	LastName  string    `json:"last_name" validate:"required,min=10,max=150"`
	Phone     string    `json:"phone" validate:"required,min=8,max=12"`
	Email     string    `json:"email" validate:"required,min=10,max=150"`
	Salary    float64   `json:"salary" validate:"required"`
	HireDate  time.Time `json:"hire_date"`
	Password  string    `json:"password" validate:"required,min=5,max=1024"`
	IsAdmin   bool      `json:"is_admin"`
}

// Service содержит бизнес-логику аутентификации агентов
type Service struct {
	agentRepo    repository.AgentRepository
	baseRepo     repository.BaseRepository
	tokenService *jwt.TokenService
	logger       logger.Logger
}

// NewService создает новый экземпляр AuthService
func NewService(
	agentRepo repository.AgentRepository,
	baseRepo repository.BaseRepository,
	tokenService *jwt.TokenService,
	logger logger.Logger,
) *Service {
	return &Service{
		agentRepo:    agentRepo,
		baseRepo:     baseRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login аутентифицирует агента и возвращает токен
// Несуществующий email и неверный пароль намеренно дают разные тексты
// ошибок при одинаковом статусе 400
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	agent, err := s.agentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			s.logger.Warn("Login failed: agent not found", map[string]interface{}{
				"email": req.Email,
			})
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	if !hash.CheckPassword(agent.PasswordHash, req.Password) {
		s.logger.Warn("Login failed: invalid password", map[string]interface{}{
			"agent_id": agent.ID,
		})
		return nil, domain.ErrInvalidPassword
	}

	token, err := s.tokenService.Generate(agent)
	if err != nil {
		s.logger.Error("Failed to generate token", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Agent logged in", map[string]interface{}{
		"agent_id": agent.ID,
	})

	return &LoginResponse{Token: token}, nil
}

// Register регистрирует нового агента
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.Agent, error) {
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

	existing, err := s.agentRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrAgentNotFound) {
		return nil, fmt.Errorf("failed to check existing agent: %w", err)
	}
	if existing != nil {
		s.logger.Warn("Agent already registered", map[string]interface{}{
			"email": req.Email,
		})
		return nil, domain.ErrAgentAlreadyExists
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	agent := &domain.Agent{
		BaseID:       req.BaseID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		PasswordHash: passwordHash,
		IsAdmin:      req.IsAdmin,
	}

	if agent.HireDate.IsZero() {
		agent.HireDate = time.Now()
	}

	if err := s.agentRepo.Create(ctx, agent); err != nil {
		s.logger.Error("Failed to create agent", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	s.logger.Info("Agent registered", map[string]interface{}{
		"agent_id": agent.ID,
		"email":    agent.Email,
	})

	// Не возвращаем password_hash
	agent.PasswordHash = ""

	return agent, nil
}

// GetAgentByID возвращает агента по ID
func (s *Service) GetAgentByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agent.PasswordHash = ""

	return agent, nil
}

// ListAgents возвращает список агентов
func (s *Service) ListAgents(ctx context.Context) ([]*domain.Agent, error) {
	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, agent := range agents {
		agent.PasswordHash = ""
	}

	return agents, nil
}
