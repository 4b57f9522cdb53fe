package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/client"
	"github.com/google/uuid"
)

// ClientService определяет интерфейс для сервиса клиентов
type ClientService interface {
	Create(ctx context.Context, req *client.ClientRequest) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, req *client.ClientRequest) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

// ClientHandler обрабатывает запросы связанные с клиентами
type ClientHandler struct {
	clientService ClientService
	logger        logger.Logger
}

// NewClientHandler создает новый handler
func NewClientHandler(clientService ClientService, logger logger.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// List возвращает список клиентов
// GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list clients", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get clients")
		return
	}

	// Пустой список отдаем как [], не null
	if clients == nil {
		clients = []*domain.Client{}
	}

	respondJSON(w, http.StatusOK, clients)
}

// GetByID возвращает клиента по ID
// GET /api/clients/{id}
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrClientNotFound.Error())
			return
		}
		h.logger.Error("Failed to get client", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get client")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Create создает нового клиента
// POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req client.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.logger.Error("Failed to create client", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Update изменяет существующего клиента
// PUT /api/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req client.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.clientService.Update(r.Context(), id, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrClientNotFound):
			respondError(w, http.StatusNotFound, domain.ErrClientNotFound.Error())
		default:
			h.logger.Error("Failed to update client", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Delete удаляет клиента
// DELETE /api/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.clientService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrClientNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete client", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	respondJSON(w, http.StatusOK, c)
}
