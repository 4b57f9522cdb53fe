package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/order"
	"github.com/google/uuid"
)

// OrderService определяет интерфейс для сервиса заказов
type OrderService interface {
	Create(ctx context.Context, req *order.OrderRequest) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, id uuid.UUID, req *order.OrderRequest) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

// OrderHandler обрабатывает запросы связанные с заказами
type OrderHandler struct {
	orderService OrderService
	logger       logger.Logger
}

// NewOrderHandler создает новый handler
func NewOrderHandler(orderService OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List возвращает список заказов
// GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get orders")
		return
	}

	// Пустой список отдаем как [], не null
	if orders == nil {
		orders = []*domain.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetByID возвращает заказ по ID
// GET /api/orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	o, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrOrderNotFound.Error())
			return
		}
		h.logger.Error("Failed to get order", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

// Create создает новый заказ
// POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req order.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		h.respondOrderError(w, err, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

// Update изменяет существующий заказ
// PUT /api/orders/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req order.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		h.respondOrderError(w, err, "Failed to update order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

// Delete архивирует и удаляет заказ, возвращая исходный заказ
// DELETE /api/orders/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	o, err := h.orderService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrOrderNotFound.Error())
			return
		}
		h.logger.Error("Failed to delete order", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

// respondOrderError отображает ошибки жизненного цикла заказа на статусы:
// отсутствующий заказ - 404, все остальные ожидаемые отказы - 400
func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error, logMsg string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, domain.ErrOrderNotFound.Error())
	case errors.Is(err, domain.ErrClientNotFound):
		respondError(w, http.StatusBadRequest, domain.ErrClientNotFound.Error())
	case errors.Is(err, domain.ErrCarNotFound):
		respondError(w, http.StatusBadRequest, domain.ErrCarNotFound.Error())
	case errors.Is(err, domain.ErrCarAlreadyInRent):
		respondError(w, http.StatusBadRequest, domain.ErrCarAlreadyInRent.Error())
	default:
		h.logger.Error(logMsg, map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, logMsg)
	}
}
