package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightnet/internal/domain"
	"github.com/Domenick1991/flightnet/internal/service/reservations"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchUseCase is a mock implementation of reservations.SearchUseCase
type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) FindRoutes(start, end string, maxStops int) ([]reservations.RouteView, error) {
	args := m.Called(start, end, maxStops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservations.RouteView), args.Error(1)
}

func (m *MockSearchUseCase) FindCheapestAvailableRoute(origin, dest string, seats int) (reservations.RouteView, bool) {
	args := m.Called(origin, dest, seats)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(reservations.RouteView), args.Bool(1)
}

func (m *MockSearchUseCase) AvailableSeats(origin, dest string) (int, error) {
	args := m.Called(origin, dest)
	return args.Int(0), args.Error(1)
}

func TestSearchHandler_findRoutes(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewSearchHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/routes?from=ATH&to=JFK&max_stops=1", nil)

	mockService.On("FindRoutes", "ATH", "JFK", 1).Return([]reservations.RouteView{{testFlight()}}, nil)

	handler.findRoutes(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []routeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Legs, 1)
	assert.Equal(t, "A3600", resp[0].Legs[0].Code)

	mockService.AssertExpectations(t)
}

func TestSearchHandler_findRoutes_negativeStops(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewSearchHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/routes?from=ATH&to=JFK&max_stops=-1", nil)

	mockService.On("FindRoutes", "ATH", "JFK", -1).Return(nil, domain.ErrInvalidInput)

	handler.findRoutes(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestSearchHandler_findCheapest_none(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewSearchHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/routes/cheapest?from=ATH&to=JFK&seats=500", nil)

	mockService.On("FindCheapestAvailableRoute", "ATH", "JFK", 500).Return(nil, false)

	handler.findCheapest(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestSearchHandler_availableSeats(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewSearchHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/seats?from=ATH&to=JFK", nil)

	mockService.On("AvailableSeats", "ATH", "JFK").Return(190, nil)

	handler.availableSeats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"from":"ATH","to":"JFK","available_seats":190}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestSearchHandler_availableSeats_noDirectFlight(t *testing.T) {
	mockService := &MockSearchUseCase{}
	handler := NewSearchHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/seats?from=LHR&to=ATH", nil)

	mockService.On("AvailableSeats", "LHR", "ATH").Return(0, domain.ErrNoDirectFlight)

	handler.availableSeats(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
