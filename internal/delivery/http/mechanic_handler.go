package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/mechanic"
	"github.com/google/uuid"
)

// MechanicService определяет интерфейс для сервиса механиков
type MechanicService interface {
	Create(ctx context.Context, req *mechanic.MechanicRequest) (*domain.Mechanic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
	List(ctx context.Context) ([]*domain.Mechanic, error)
	Update(ctx context.Context, id uuid.UUID, req *mechanic.MechanicRequest) (*domain.Mechanic, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error)
}

// MechanicHandler обрабатывает запросы связанные с механиками
type MechanicHandler struct {
	mechanicService MechanicService
	logger          logger.Logger
}

// NewMechanicHandler создает новый handler
func NewMechanicHandler(mechanicService MechanicService, logger logger.Logger) *MechanicHandler {
	return &MechanicHandler{
		mechanicService: mechanicService,
		logger:          logger,
	}
}

// List возвращает список механиков
// GET /api/mechanics
func (h *MechanicHandler) List(w http.ResponseWriter, r *http.Request) {
	mechanics, err := h.mechanicService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list mechanics", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get mechanics")
		return
	}

	// Пустой список отдаем как [], не null
	if mechanics == nil {
		mechanics = []*domain.Mechanic{}
	}

	respondJSON(w, http.StatusOK, mechanics)
}

// GetByID возвращает механика по ID
// GET /api/mechanics/{id}
func (h *MechanicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	m, err := h.mechanicService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMechanicNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrMechanicNotFound.Error())
			return
		}
		h.logger.Error("Failed to get mechanic", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get mechanic")
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// Create создает нового механика
// POST /api/mechanics
func (h *MechanicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mechanic.MechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := h.mechanicService.Create(r.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrInvalidBase):
			respondError(w, http.StatusBadRequest, domain.ErrInvalidBase.Error())
		default:
			h.logger.Error("Failed to create mechanic", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create mechanic")
		}
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// Update изменяет существующего механика
// PUT /api/mechanics/{id}
func (h *MechanicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req mechanic.MechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := h.mechanicService.Update(r.Context(), id, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrMechanicNotFound):
			respondError(w, http.StatusNotFound, domain.ErrMechanicNotFound.Error())
		case errors.Is(err, domain.ErrInvalidBase):
			respondError(w, http.StatusBadRequest, domain.ErrInvalidBase.Error())
		default:
			h.logger.Error("Failed to update mechanic", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update mechanic")
		}
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// Delete удаляет механика
// DELETE /api/mechanics/{id}
func (h *MechanicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	m, err := h.mechanicService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMechanicNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrMechanicNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete mechanic", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete mechanic")
		return
	}

	respondJSON(w, http.StatusOK, m)
}
