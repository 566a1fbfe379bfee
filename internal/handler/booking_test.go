package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, showID uint64, customerName string, seats []string) (*repository.Booking, error) {
	args := m.Called(ctx, showID, customerName, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Booking), args.Error(1)
}

func (m *mockBookingService) Get(ctx context.Context, id uint64) (*repository.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Booking), args.Error(1)
}

func (m *mockBookingService) ListByShow(ctx context.Context, showID uint64) ([]repository.Booking, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Booking), args.Error(1)
}

func (m *mockBookingService) Cancel(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func bookingCtx(e *echo.Echo, method, target, body, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramValue)
	return c, rec
}

func TestBookingHandlerCreate(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Create", mock.Anything, uint64(5), "Asha", []string{"A1", "A2"}).
		Return(&repository.Booking{ID: 555, ShowID: 5, Status: repository.BookingConfirmed}, nil)
	h := NewBookingHandler(svc)
	e := echo.New()

	c, rec := bookingCtx(e, http.MethodPost, "/api/shows/5/bookings",
		`{"customerName":"Asha","seats":["A1","A2"]}`, "5")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBookingHandlerCreateSeatTaken(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Create", mock.Anything, uint64(5), "Asha", []string{"A1"}).
		Return(nil, repository.ErrSeatTaken)
	h := NewBookingHandler(svc)
	e := echo.New()

	c, rec := bookingCtx(e, http.MethodPost, "/api/shows/5/bookings",
		`{"customerName":"Asha","seats":["A1"]}`, "5")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingHandlerCreateNoSeats(t *testing.T) {
	h := NewBookingHandler(new(mockBookingService))
	e := echo.New()

	c, rec := bookingCtx(e, http.MethodPost, "/api/shows/5/bookings",
		`{"customerName":"Asha","seats":["  "]}`, "5")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandlerGetNotFound(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Get", mock.Anything, uint64(9)).Return(nil, repository.ErrBookingNotFound)
	h := NewBookingHandler(svc)
	e := echo.New()

	c, rec := bookingCtx(e, http.MethodGet, "/api/bookings/9", "", "9")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandlerCancel(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Cancel", mock.Anything, uint64(555)).Return(nil)
	h := NewBookingHandler(svc)
	e := echo.New()

	c, rec := bookingCtx(e, http.MethodDelete, "/api/bookings/555", "", "555")
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
