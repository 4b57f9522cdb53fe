package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/google/uuid"
)

// ArchivedOrderService определяет интерфейс для чтения архива заказов
type ArchivedOrderService interface {
	GetArchivedByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedOrder, error)
	ListArchived(ctx context.Context) ([]*domain.ArchivedOrder, error)
}

// ArchivedOrderHandler обрабатывает запросы к архиву заказов
// Архив только читается: записи появляются при удалении заказов
type ArchivedOrderHandler struct {
	orderService ArchivedOrderService
	logger       logger.Logger
}

// NewArchivedOrderHandler создает новый handler
func NewArchivedOrderHandler(orderService ArchivedOrderService, logger logger.Logger) *ArchivedOrderHandler {
	return &ArchivedOrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List возвращает список архивных записей
// GET /api/archived_orders
func (h *ArchivedOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListArchived(r.Context())
	if err != nil {
		h.logger.Error("Failed to list archived orders", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get archived orders")
		return
	}

	// Пустой архив отдаем как [], не null
	if orders == nil {
		orders = []*domain.ArchivedOrder{}
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetByID возвращает архивную запись по ID
// GET /api/archived_orders/{id}
func (h *ArchivedOrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	o, err := h.orderService.GetArchivedByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrArchivedOrderNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrArchivedOrderNotFound.Error())
			return
		}
		h.logger.Error("Failed to get archived order", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get archived order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}
