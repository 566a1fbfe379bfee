package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinebook/movie-show-booking/internal/queue"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

// BookingService places and cancels bookings against existing shows. Seat
// numbers are free-form strings; a seat held by a confirmed booking for the
// same show cannot be booked again until that booking is cancelled.
//
// Note the known race with the show lifecycle: a booking inserted here can
// arrive between the lifecycle's guard check and its mutation. The mutation
// side closes that window by re-checking the guard inside its write
// transaction.
type BookingService struct {
	bookings  BookingStore
	shows     ShowStore
	publisher EventPublisher
	now       Clock
}

// NewBookingService wires the booking flow. The publisher may be nil, in
// which case no events are emitted.
func NewBookingService(bookings BookingStore, shows ShowStore, publisher EventPublisher, now Clock) *BookingService {
	if now == nil {
		now = UTCClock
	}
	return &BookingService{bookings: bookings, shows: shows, publisher: publisher, now: now}
}

// Create places a confirmed booking for the show. It fails with
// ErrShowNotFound when the show does not exist and ErrSeatTaken when any
// requested seat is already held. On success a booking.confirmed event is
// published; publish failures are logged and ignored.
func (s *BookingService) Create(ctx context.Context, showID uint64, customerName string, seats []string) (*repository.Booking, error) {
	logrus.WithFields(logrus.Fields{
		"show_id": showID, "customer": customerName, "seats": len(seats),
	}).Info("placing booking")

	row, err := s.shows.GetRow(ctx, showID)
	if err != nil {
		return nil, err
	}
	for _, seat := range seats {
		taken, err := s.bookings.SeatTaken(ctx, showID, seat)
		if err != nil {
			return nil, err
		}
		if taken {
			logrus.WithFields(logrus.Fields{"show_id": showID, "seat": seat}).
				Warn("booking rejected: seat already booked")
			return nil, repository.ErrSeatTaken
		}
	}

	b := &repository.Booking{
		ShowID:       showID,
		CustomerName: customerName,
		BookingTime:  s.now(),
		Seats:        seats,
		Status:       repository.BookingConfirmed,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	logrus.WithField("booking_id", b.ID).Info("booking confirmed")

	if s.publisher != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:    b.ID,
			ShowID:       showID,
			MovieTitle:   row.MovieTitle,
			TheatreName:  row.TheatreName,
			CityName:     row.CityName,
			ShowTime:     row.ShowTime.UTC().Format(time.RFC3339),
			CustomerName: customerName,
			Seats:        seats,
			ConfirmedAt:  b.BookingTime.UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
			logrus.WithError(err).WithField("booking_id", b.ID).
				Warn("booking.confirmed publish failed; continuing")
		}
	}
	return b, nil
}

// Get returns one booking, or ErrBookingNotFound.
func (s *BookingService) Get(ctx context.Context, id uint64) (*repository.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// ListByShow returns all bookings for a show. The show must exist.
func (s *BookingService) ListByShow(ctx context.Context, showID uint64) ([]repository.Booking, error) {
	if _, err := s.shows.GetRow(ctx, showID); err != nil {
		return nil, err
	}
	return s.bookings.ListByShow(ctx, showID)
}

// Cancel marks a booking CANCELLED, releasing its seats.
func (s *BookingService) Cancel(ctx context.Context, id uint64) error {
	logrus.WithField("booking_id", id).Info("cancelling booking")
	return s.bookings.Cancel(ctx, id)
}
