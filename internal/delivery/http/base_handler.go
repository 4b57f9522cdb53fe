package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/base"
	"github.com/google/uuid"
)

// BaseService определяет интерфейс для сервиса прокатных баз
type BaseService interface {
	Create(ctx context.Context, req *base.BaseRequest) (*domain.Base, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Base, error)
	List(ctx context.Context) ([]*domain.Base, error)
	Update(ctx context.Context, id uuid.UUID, req *base.BaseRequest) (*domain.Base, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Base, error)
}

// BaseHandler обрабатывает запросы связанные с прокатными базами
type BaseHandler struct {
	baseService BaseService
	logger      logger.Logger
}

// NewBaseHandler создает новый handler
func NewBaseHandler(baseService BaseService, logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		baseService: baseService,
		logger:      logger,
	}
}

// List возвращает список баз
// GET /api/base
func (h *BaseHandler) List(w http.ResponseWriter, r *http.Request) {
	bases, err := h.baseService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list bases", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get bases")
		return
	}

	// Пустой список отдаем как [], не null
	if bases == nil {
		bases = []*domain.Base{}
	}

	respondJSON(w, http.StatusOK, bases)
}

// GetByID возвращает базу по ID
// GET /api/base/{id}
func (h *BaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	b, err := h.baseService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBaseNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrBaseNotFound.Error())
			return
		}
		h.logger.Error("Failed to get base", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get base")
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// Create создает новую базу
// POST /api/base
func (h *BaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req base.BaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.baseService.Create(r.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.logger.Error("Failed to create base", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to create base")
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// Update изменяет существующую базу
// PUT /api/base/{id}
func (h *BaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req base.BaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.baseService.Update(r.Context(), id, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrBaseNotFound):
			respondError(w, http.StatusNotFound, domain.ErrBaseNotFound.Error())
		default:
			h.logger.Error("Failed to update base", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update base")
		}
		return
	}

	respondJSON(w, http.StatusOK, b)
}

// Delete удаляет базу
// DELETE /api/base/{id}
func (h *BaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	b, err := h.baseService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBaseNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrBaseNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete base", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete base")
		return
	}

	respondJSON(w, http.StatusOK, b)
}
