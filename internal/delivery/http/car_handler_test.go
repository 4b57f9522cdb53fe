package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/pkg/logger"
	"github.com/frontandrew/rental/internal/usecase/car"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCarService - мок для car service
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) Create(ctx context.Context, req *car.CarRequest) (*domain.Car, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) List(ctx context.Context) ([]*domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Car), args.Error(1)
}

func (m *MockCarService) Update(ctx context.Context, id uuid.UUID, req *car.CarRequest) (*domain.Car, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarService) Delete(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

// TestCarHandler_Create тестирует создание автомобиля
func TestCarHandler_Create(t *testing.T) {
	baseID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockCarService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное создание",
			requestBody: car.CarRequest{
				BaseID:             baseID,
				Mark:               "Toyota Motors",
				Model:              "Corolla Sedan",
				RegistrationNumber: "А123ВС777",
				ProductionYear:     "2002",
				RentPrice:          1500,
				Category:           "standard",
			},
			mockSetup: func(m *MockCarService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*car.CarRequest")).
					Return(&domain.Car{
						ID:                 uuid.New(),
						BaseID:             baseID,
						RegistrationNumber: "А123ВС777",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "А123ВС777", resp["registration_number"])
			},
		},
		{
			name: "несуществующая база",
			requestBody: car.CarRequest{
				BaseID:             baseID,
				Mark:               "Toyota Motors",
				Model:              "Corolla Sedan",
				RegistrationNumber: "А123ВС777",
				ProductionYear:     "2002",
				RentPrice:          1500,
				Category:           "standard",
			},
			mockSetup: func(m *MockCarService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*car.CarRequest")).
					Return(nil, domain.ErrInvalidBase)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid base id.", resp["error"])
			},
		},
		{
			name:        "ошибка валидации",
			requestBody: car.CarRequest{BaseID: baseID},
			mockSetup: func(m *MockCarService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*car.CarRequest")).
					Return(nil, domain.NewValidationError("mark", `"mark" is required`))
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, `"mark" is required`, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCarService)
			tt.mockSetup(mockService)

			log := logger.NewNoop()
			handler := NewCarHandler(mockService, log)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(body))
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

// TestCarHandler_GetByID тестирует получение автомобиля по ID
func TestCarHandler_GetByID(t *testing.T) {
	carID := uuid.New()

	tests := []struct {
		name           string
		carID          string
		mockSetup      func(*MockCarService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:  "автомобиль найден",
			carID: carID.String(),
			mockSetup: func(m *MockCarService) {
				m.On("GetByID", mock.Anything, carID).
					Return(&domain.Car{ID: carID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, carID.String(), resp["id"])
			},
		},
		{
			name:  "автомобиль не найден",
			carID: carID.String(),
			mockSetup: func(m *MockCarService) {
				m.On("GetByID", mock.Anything, carID).
					Return(nil, domain.ErrCarNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "no car with the given id was found", resp["error"])
			},
		},
		{
			name:           "невалидный id",
			carID:          "not-a-uuid",
			mockSetup:      func(m *MockCarService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid id.", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCarService)
			tt.mockSetup(mockService)

			log := logger.NewNoop()
			handler := NewCarHandler(mockService, log)

			req := httptest.NewRequest(http.MethodGet, "/api/cars/"+tt.carID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.carID)
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
