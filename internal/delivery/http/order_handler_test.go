package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/order"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderService - мок для order service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *order.OrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]*domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id uuid.UUID, req *order.OrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// TestOrderHandler_Create тестирует создание заказа
func TestOrderHandler_Create(t *testing.T) {
	clientID := uuid.New()
	carID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockOrderService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное создание",
			requestBody: order.OrderRequest{
				ClientID:      clientID,
				CarID:         carID,
				RentStartDate: time.Date(2002, 12, 22, 0, 0, 0, 0, time.UTC),
				RentEndDate:   time.Date(2003, 1, 22, 0, 0, 0, 0, time.UTC),
			},
			mockSetup: func(m *MockOrderService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*order.OrderRequest")).
					Return(&domain.Order{
						ID:       uuid.New(),
						ClientID: clientID,
						CarID:    carID,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, clientID.String(), resp["client_id"])
				assert.Equal(t, carID.String(), resp["car_id"])
			},
		},
		{
			name: "окно аренды занято",
			requestBody: order.OrderRequest{
				ClientID:      clientID,
				CarID:         carID,
				RentStartDate: time.Date(2002, 12, 22, 0, 0, 0, 0, time.UTC),
				RentEndDate:   time.Date(2003, 1, 22, 0, 0, 0, 0, time.UTC),
			},
			mockSetup: func(m *MockOrderService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*order.OrderRequest")).
					Return(nil, domain.ErrCarAlreadyInRent)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "car already in rent.", resp["error"])
			},
		},
		{
			name: "несуществующий клиент",
			requestBody: order.OrderRequest{
				ClientID:      clientID,
				CarID:         carID,
				RentStartDate: time.Date(2002, 12, 22, 0, 0, 0, 0, time.UTC),
				RentEndDate:   time.Date(2003, 1, 22, 0, 0, 0, 0, time.UTC),
			},
			mockSetup: func(m *MockOrderService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*order.OrderRequest")).
					Return(nil, domain.ErrClientNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name:        "ошибка валидации",
			requestBody: order.OrderRequest{ClientID: clientID},
			mockSetup: func(m *MockOrderService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*order.OrderRequest")).
					Return(nil, domain.NewValidationError("car_id", `"car_id" is required`))
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, `"car_id" is required`, resp["error"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid json",
			mockSetup:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.mockSetup(mockService)

			log := logger.NewNoop()
			handler := NewOrderHandler(mockService, log)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestOrderHandler_Create_DateSerialization проверяет, что даты заказа
// попадают в ответ в формате RFC3339 и совпадают с переданными
func TestOrderHandler_Create_DateSerialization(t *testing.T) {
	clientID := uuid.New()
	carID := uuid.New()

	created := &domain.Order{
		ID:            uuid.New(),
		ClientID:      clientID,
		CarID:         carID,
		OrderDate:     time.Date(2002, 12, 1, 0, 0, 0, 0, time.UTC),
		RentStartDate: time.Date(2002, 12, 22, 0, 0, 0, 0, time.UTC),
		RentEndDate:   time.Date(2003, 1, 22, 0, 0, 0, 0, time.UTC),
	}

	mockService := new(MockOrderService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*order.OrderRequest")).
		Return(created, nil)

	log := logger.NewNoop()
	handler := NewOrderHandler(mockService, log)

	body, _ := json.Marshal(order.OrderRequest{
		ClientID:      clientID,
		CarID:         carID,
		OrderDate:     created.OrderDate,
		RentStartDate: created.RentStartDate,
		RentEndDate:   created.RentEndDate,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, clientID.String(), response["client_id"])
	assert.Equal(t, carID.String(), response["car_id"])
	assert.Equal(t, "2002-12-01T00:00:00Z", response["order_date"])
	assert.Equal(t, "2002-12-22T00:00:00Z", response["rent_start_date"])
	assert.Equal(t, "2003-01-22T00:00:00Z", response["rent_end_date"])

	mockService.AssertExpectations(t)
}

// TestOrderHandler_List тестирует список заказов
func TestOrderHandler_List(t *testing.T) {
	t.Run("непустой список", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("List", mock.Anything).
			Return([]*domain.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		log := logger.NewNoop()
		handler := NewOrderHandler(mockService, log)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)

		mockService.AssertExpectations(t)
	})

	t.Run("пустая таблица дает [], не null", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("List", mock.Anything).Return(nil, nil)

		log := logger.NewNoop()
		handler := NewOrderHandler(mockService, log)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())

		mockService.AssertExpectations(t)
	})
}

// TestOrderHandler_GetByID тестирует получение заказа по ID
func TestOrderHandler_GetByID(t *testing.T) {
	orderID := uuid.New()

	tests := []struct {
		name           string
		orderID        string
		mockSetup      func(*MockOrderService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:    "заказ найден",
			orderID: orderID.String(),
			mockSetup: func(m *MockOrderService) {
				m.On("GetByID", mock.Anything, orderID).
					Return(&domain.Order{ID: orderID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, orderID.String(), resp["id"])
			},
		},
		{
			name:    "заказ не найден",
			orderID: orderID.String(),
			mockSetup: func(m *MockOrderService) {
				m.On("GetByID", mock.Anything, orderID).
					Return(nil, domain.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "no order with the given id was found.", resp["error"])
			},
		},
		{
			name:           "невалидный id",
			orderID:        "not-a-uuid",
			mockSetup:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid id.", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.mockSetup(mockService)

			log := logger.NewNoop()
			handler := NewOrderHandler(mockService, log)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tt.orderID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.orderID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestOrderHandler_GetByID_RepeatedReads проверяет, что повторное чтение
// заказа возвращает байт-в-байт одинаковое тело
func TestOrderHandler_GetByID_RepeatedReads(t *testing.T) {
	orderID := uuid.New()

	stored := &domain.Order{
		ID:            orderID,
		ClientID:      uuid.New(),
		CarID:         uuid.New(),
		OrderDate:     time.Date(2002, 12, 1, 0, 0, 0, 0, time.UTC),
		RentStartDate: time.Date(2002, 12, 22, 0, 0, 0, 0, time.UTC),
		RentEndDate:   time.Date(2003, 1, 22, 0, 0, 0, 0, time.UTC),
	}

	mockService := new(MockOrderService)
	mockService.On("GetByID", mock.Anything, orderID).Return(stored, nil)

	log := logger.NewNoop()
	handler := NewOrderHandler(mockService, log)

	readOnce := func() []byte {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", orderID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		return w.Body.Bytes()
	}

	first := readOnce()
	second := readOnce()

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `"rent_start_date":"2002-12-22T00:00:00Z"`)
}

// TestOrderHandler_Delete тестирует удаление заказа
func TestOrderHandler_Delete(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()

	tests := []struct {
		name           string
		orderID        string
		mockSetup      func(*MockOrderService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:    "заказ удален",
			orderID: orderID.String(),
			mockSetup: func(m *MockOrderService) {
				m.On("Delete", mock.Anything, orderID).
					Return(&domain.Order{ID: orderID, ClientID: clientID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				// В ответе исходный заказ, без метки времени удаления
				assert.Equal(t, orderID.String(), resp["id"])
				assert.NotContains(t, resp, "delete_date")
			},
		},
		{
			name:    "заказ не найден",
			orderID: orderID.String(),
			mockSetup: func(m *MockOrderService) {
				m.On("Delete", mock.Anything, orderID).
					Return(nil, domain.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "no order with the given id was found.", resp["error"])
			},
		},
		{
			name:           "невалидный id",
			orderID:        "42",
			mockSetup:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid id.", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.mockSetup(mockService)

			log := logger.NewNoop()
			handler := NewOrderHandler(mockService, log)

			req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+tt.orderID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.orderID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}
