package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/movie-show-booking/internal/repository"
)

type mockShowService struct {
	mock.Mock
}

func (m *mockShowService) Create(ctx context.Context, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error) {
	args := m.Called(ctx, movieID, theatreID, showTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowRow), args.Error(1)
}

func (m *mockShowService) Update(ctx context.Context, id, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error) {
	args := m.Called(ctx, id, movieID, theatreID, showTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowRow), args.Error(1)
}

func (m *mockShowService) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockShowService) Get(ctx context.Context, id uint64) (*repository.ShowRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowRow), args.Error(1)
}

func (m *mockShowService) List(ctx context.Context) ([]repository.ShowRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShowRow), args.Error(1)
}

func (m *mockShowService) Search(ctx context.Context, movieTitle, cityName string, date time.Time) ([]repository.ShowRow, error) {
	args := m.Called(ctx, movieTitle, cityName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShowRow), args.Error(1)
}

func newShowRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req, httptest.NewRecorder()
}

func TestShowHandlerSearchBadDate(t *testing.T) {
	h := NewShowHandler(new(mockShowService))
	e := echo.New()

	req, rec := newShowRequest(http.MethodGet, "/api/shows/search?movie=Dune&city=Pune&date=20-03-2026", "")
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowHandlerSearchMissingParams(t *testing.T) {
	h := NewShowHandler(new(mockShowService))
	e := echo.New()

	req, rec := newShowRequest(http.MethodGet, "/api/shows/search?movie=Dune", "")
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowHandlerSearchNoContent(t *testing.T) {
	svc := new(mockShowService)
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	svc.On("Search", mock.Anything, "Dune", "Pune", date).Return([]repository.ShowRow{}, nil)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodGet, "/api/shows/search?movie=Dune&city=Pune&date=2026-03-20", "")
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestShowHandlerSearchResults(t *testing.T) {
	svc := new(mockShowService)
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	svc.On("Search", mock.Anything, "Dune", "Pune", date).Return([]repository.ShowRow{
		{ShowID: 1, MovieTitle: "Dune", CityName: "Pune"},
	}, nil)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodGet, "/api/shows/search?movie=Dune&city=Pune&date=2026-03-20", "")
	require.NoError(t, h.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0]["movieTitle"])
	assert.Equal(t, "Pune", rows[0]["cityName"])
}

func TestShowHandlerCreate(t *testing.T) {
	svc := new(mockShowService)
	showTime := time.Date(2026, 3, 20, 18, 30, 0, 0, time.UTC)
	svc.On("Create", mock.Anything, uint64(1), uint64(2), showTime).
		Return(&repository.ShowRow{ShowID: 101, MovieTitle: "Dune"}, nil)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodPost, "/api/shows",
		`{"movieId":1,"theatreId":2,"showTime":"2026-03-20T18:30:00Z"}`)
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	// created shows respond 200, matching existing clients
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShowHandlerCreateMissingFields(t *testing.T) {
	h := NewShowHandler(new(mockShowService))
	e := echo.New()

	req, rec := newShowRequest(http.MethodPost, "/api/shows", `{"movieId":1}`)
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowHandlerUpdateConflict(t *testing.T) {
	svc := new(mockShowService)
	svc.On("Update", mock.Anything, uint64(5), uint64(1), uint64(2), mock.Anything).
		Return(nil, repository.ErrFutureBookings)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodPut, "/api/shows/5",
		`{"movieId":1,"theatreId":2,"showTime":"2026-03-20T18:30:00Z"}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestShowHandlerDelete(t *testing.T) {
	svc := new(mockShowService)
	svc.On("Delete", mock.Anything, uint64(5)).Return(nil)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodDelete, "/api/shows/5", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestShowHandlerDeleteForbidden(t *testing.T) {
	svc := new(mockShowService)
	svc.On("Delete", mock.Anything, uint64(5)).Return(repository.ErrForbidden)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodDelete, "/api/shows/5", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestShowHandlerGetNotFound(t *testing.T) {
	svc := new(mockShowService)
	svc.On("Get", mock.Anything, uint64(9)).Return(nil, repository.ErrShowNotFound)
	h := NewShowHandler(svc)
	e := echo.New()

	req, rec := newShowRequest(http.MethodGet, "/api/shows/9", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
