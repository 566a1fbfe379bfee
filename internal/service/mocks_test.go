package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cinebook/movie-show-booking/internal/queue"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

type mockShowStore struct {
	mock.Mock
}

func (m *mockShowStore) Create(ctx context.Context, s *repository.Show) error {
	args := m.Called(ctx, s)
	if s != nil && args.Error(0) == nil {
		s.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockShowStore) GetByID(ctx context.Context, id uint64) (*repository.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Show), args.Error(1)
}

func (m *mockShowStore) GetRow(ctx context.Context, id uint64) (*repository.ShowRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowRow), args.Error(1)
}

func (m *mockShowStore) ListRows(ctx context.Context) ([]repository.ShowRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShowRow), args.Error(1)
}

func (m *mockShowStore) FindByMovieCityAndDay(ctx context.Context, movieTitle, cityName string, dayStart, dayEnd time.Time) ([]repository.ShowRow, error) {
	args := m.Called(ctx, movieTitle, cityName, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShowRow), args.Error(1)
}

func (m *mockShowStore) UpdateGuarded(ctx context.Context, s *repository.Show, now time.Time) error {
	args := m.Called(ctx, s, now)
	return args.Error(0)
}

func (m *mockShowStore) DeleteGuarded(ctx context.Context, id uint64, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

type mockMovieStore struct {
	mock.Mock
}

func (m *mockMovieStore) GetByID(ctx context.Context, id uint64) (*repository.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Movie), args.Error(1)
}

type mockTheatreStore struct {
	mock.Mock
}

func (m *mockTheatreStore) GetByID(ctx context.Context, id uint64) (*repository.Theatre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Theatre), args.Error(1)
}

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) HasFutureBookings(ctx context.Context, showID uint64, now time.Time) (bool, error) {
	args := m.Called(ctx, showID, now)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingStore) Create(ctx context.Context, b *repository.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockBookingStore) GetByID(ctx context.Context, id uint64) (*repository.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Booking), args.Error(1)
}

func (m *mockBookingStore) ListByShow(ctx context.Context, showID uint64) ([]repository.Booking, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Booking), args.Error(1)
}

func (m *mockBookingStore) SeatTaken(ctx context.Context, showID uint64, seat string) (bool, error) {
	args := m.Called(ctx, showID, seat)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingStore) Cancel(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
