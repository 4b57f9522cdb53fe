package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/auth"
	"github.com/google/uuid"
)

// AgentService определяет интерфейс для работы с агентами
type AgentService interface {
	Register(ctx context.Context, req *auth.RegisterRequest) (*domain.Agent, error)
	GetAgentByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error)
	ListAgents(ctx context.Context) ([]*domain.Agent, error)
}

// AgentHandler обрабатывает запросы связанные с агентами
type AgentHandler struct {
	agentService AgentService
	logger       logger.Logger
}

// NewAgentHandler создает новый handler
func NewAgentHandler(agentService AgentService, logger logger.Logger) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		logger:       logger,
	}
}

// List возвращает список агентов
// GET /api/agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agentService.ListAgents(r.Context())
	if err != nil {
		h.logger.Error("Failed to list agents", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get agents")
		return
	}

	// Пустой список отдаем как [], не null
	if agents == nil {
		agents = []*domain.Agent{}
	}

	respondJSON(w, http.StatusOK, agents)
}

// GetByID возвращает агента по ID
// GET /api/agents/{id}
func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	agent, err := h.agentService.GetAgentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrAgentNotFound.Error())
			return
		}
		h.logger.Error("Failed to get agent", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get agent")
		return
	}

	respondJSON(w, http.StatusOK, agent)
}

// Register регистрирует нового агента (только для администраторов)
// POST /api/agents
func (h *AgentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	agent, err := h.agentService.Register(r.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrInvalidBase):
			respondError(w, http.StatusBadRequest, domain.ErrInvalidBase.Error())
		case errors.Is(err, domain.ErrAgentAlreadyExists):
			respondError(w, http.StatusBadRequest, domain.ErrAgentAlreadyExists.Error())
		default:
			h.logger.Error("Failed to register agent", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to register agent")
		}
		return
	}

	respondJSON(w, http.StatusOK, agent)
}
