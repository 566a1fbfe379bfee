// Package service holds the business rules of the booking backend. Handlers
// call services; services call the storage interfaces below. Keeping the
// dependencies as interfaces lets the rules be tested without a database.
package service

import (
	"context"
	"time"

	"github.com/cinebook/movie-show-booking/internal/queue"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

// ShowStore is the persistence surface the show lifecycle needs.
type ShowStore interface {
	Create(ctx context.Context, s *repository.Show) error
	GetByID(ctx context.Context, id uint64) (*repository.Show, error)
	GetRow(ctx context.Context, id uint64) (*repository.ShowRow, error)
	ListRows(ctx context.Context) ([]repository.ShowRow, error)
	FindByMovieCityAndDay(ctx context.Context, movieTitle, cityName string, dayStart, dayEnd time.Time) ([]repository.ShowRow, error)
	UpdateGuarded(ctx context.Context, s *repository.Show, now time.Time) error
	DeleteGuarded(ctx context.Context, id uint64, now time.Time) error
}

// MovieStore resolves movie references.
type MovieStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Movie, error)
}

// TheatreStore resolves theatre references.
type TheatreStore interface {
	GetByID(ctx context.Context, id uint64) (*repository.Theatre, error)
}

// BookingGuard is the single existence check the show lifecycle needs from
// booking storage: "does this show have a booking for a future
// performance?".
type BookingGuard interface {
	HasFutureBookings(ctx context.Context, showID uint64, now time.Time) (bool, error)
}

// BookingStore is the full persistence surface for bookings.
type BookingStore interface {
	BookingGuard
	Create(ctx context.Context, b *repository.Booking) error
	GetByID(ctx context.Context, id uint64) (*repository.Booking, error)
	ListByShow(ctx context.Context, showID uint64) ([]repository.Booking, error)
	SeatTaken(ctx context.Context, showID uint64, seat string) (bool, error)
	Cancel(ctx context.Context, id uint64) error
}

// EventPublisher emits domain events after state changes. Implementations
// must be safe to fail: a publish error is logged, never surfaced.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// Clock abstracts "now" so the guard can be exercised deterministically in
// tests. Production uses UTCClock.
type Clock func() time.Time

// UTCClock returns the current instant in UTC.
func UTCClock() time.Time { return time.Now().UTC() }
