package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/car"
	"github.com/google/uuid"
)

// CarService определяет интерфейс для сервиса автомобилей
type CarService interface {
	Create(ctx context.Context, req *car.CarRequest) (*domain.Car, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	Update(ctx context.Context, id uuid.UUID, req *car.CarRequest) (*domain.Car, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Car, error)
}

// CarHandler обрабатывает запросы связанные с автомобилями
type CarHandler struct {
	carService CarService
	logger     logger.Logger
}

// NewCarHandler создает новый handler
func NewCarHandler(carService CarService, logger logger.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     logger,
	}
}

// List возвращает список автомобилей
// GET /api/cars
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list cars", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get cars")
		return
	}

	// Пустой список отдаем как [], не null
	if cars == nil {
		cars = []*domain.Car{}
	}

	respondJSON(w, http.StatusOK, cars)
}

// GetByID возвращает автомобиль по ID
// GET /api/cars/{id}
func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.carService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrCarNotFound.Error())
			return
		}
		h.logger.Error("Failed to get car", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get car")
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Create создает новый автомобиль
// POST /api/cars
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req car.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.carService.Create(r.Context(), &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrInvalidBase):
			respondError(w, http.StatusBadRequest, domain.ErrInvalidBase.Error())
		default:
			h.logger.Error("Failed to create car", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create car")
		}
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Update изменяет существующий автомобиль
// PUT /api/cars/{id}
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req car.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.carService.Update(r.Context(), id, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, domain.ErrCarNotFound):
			respondError(w, http.StatusNotFound, domain.ErrCarNotFound.Error())
		case errors.Is(err, domain.ErrInvalidBase):
			respondError(w, http.StatusBadRequest, domain.ErrInvalidBase.Error())
		default:
			h.logger.Error("Failed to update car", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update car")
		}
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Delete удаляет автомобиль
// DELETE /api/cars/{id}
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.carService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrCarNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete car", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete car")
		return
	}

	respondJSON(w, http.StatusOK, c)
}
