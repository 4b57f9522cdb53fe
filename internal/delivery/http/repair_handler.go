package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/repair"
	"github.com/google/uuid"
)

// RepairService определяет интерфейс для сервиса ремонтов
type RepairService interface {
	Create(ctx context.Context, req *repair.RepairRequest) (*domain.Repair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
	List(ctx context.Context) ([]*domain.Repair, error)
	Update(ctx context.Context, id uuid.UUID, req *repair.RepairRequest) (*domain.Repair, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Repair, error)
}

// RepairHandler обрабатывает запросы связанные с ремонтами
type RepairHandler struct {
	repairService RepairService
	logger        logger.Logger
}

// NewRepairHandler создает новый handler
func NewRepairHandler(repairService RepairService, logger logger.Logger) *RepairHandler {
	return &RepairHandler{
		repairService: repairService,
		logger:        logger,
	}
}

// respondRepairError обрабатывает ошибки создания и обновления ремонта
func (h *RepairHandler) respondRepairError(w http.ResponseWriter, err error, action string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrMechanicNotFound):
		respondError(w, http.StatusBadRequest, domain.ErrMechanicNotFound.Error())
	case errors.Is(err, domain.ErrCarNotFound):
		respondError(w, http.StatusBadRequest, domain.ErrCarNotFound.Error())
	case errors.Is(err, domain.ErrRepairNotFound):
		respondError(w, http.StatusNotFound, domain.ErrRepairNotFound.Error())
	default:
		h.logger.Error("Failed to "+action+" repair", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to "+action+" repair")
	}
}

// List возвращает список ремонтов
// GET /api/repairs
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	repairs, err := h.repairService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list repairs", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get repairs")
		return
	}

	// Пустой список отдаем как [], не null
	if repairs == nil {
		repairs = []*domain.Repair{}
	}

	respondJSON(w, http.StatusOK, repairs)
}

// GetByID возвращает ремонт по ID
// GET /api/repairs/{id}
func (h *RepairHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	rep, err := h.repairService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRepairNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrRepairNotFound.Error())
			return
		}
		h.logger.Error("Failed to get repair", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get repair")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// Create создает новый ремонт
// POST /api/repairs
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req repair.RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.repairService.Create(r.Context(), &req)
	if err != nil {
		h.respondRepairError(w, err, "create")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// Update изменяет существующий ремонт
// PUT /api/repairs/{id}
func (h *RepairHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req repair.RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.repairService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondRepairError(w, err, "update")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// Delete удаляет ремонт
// DELETE /api/repairs/{id}
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	rep, err := h.repairService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRepairNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrRepairNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete repair", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete repair")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}
