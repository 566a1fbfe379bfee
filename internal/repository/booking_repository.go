package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Booking statuses.
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Booking records a customer's seats for one show. Seats live in the
// booking_seats table in insertion order.
type Booking struct {
	ID           uint64    `json:"id"`
	ShowID       uint64    `json:"showId"`
	CustomerName string    `json:"customerName"`
	BookingTime  time.Time `json:"bookingTime"`
	Seats        []string  `json:"seats"`
	Status       string    `json:"status"`
}

// BookingRepo provides persistence for bookings and the existence checks
// the show lifecycle depends on.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// HasFutureBookings reports whether any booking exists for the show whose
// associated show time is strictly after the given instant. This is the
// guard consulted before shows are updated or deleted; it is a targeted
// EXISTS query, not a scan over bookings.
func (r *BookingRepo) HasFutureBookings(ctx context.Context, showID uint64, now time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, qFutureBookings, showID, now.UTC()).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SeatTaken reports whether the given seat is already held by a confirmed
// booking for the show. Cancelled bookings release their seats.
func (r *BookingRepo) SeatTaken(ctx context.Context, showID uint64, seat string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM bookings b
		JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.show_id = ? AND bs.seat_number = ? AND b.status = ?
	)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, showID, seat, BookingConfirmed).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the booking and its seats in one transaction and populates
// the generated ID. BookingTime and Status must be set by the caller.
func (r *BookingRepo) Create(ctx context.Context, b *Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const qInsert = `INSERT INTO bookings (show_id, customer_name, booking_time, status) VALUES (?, ?, ?, ?)`
	var res sql.Result
	res, err = tx.ExecContext(ctx, qInsert, b.ShowID, b.CustomerName, b.BookingTime.UTC(), b.Status)
	if err != nil {
		return err
	}
	var id int64
	id, err = res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	if len(b.Seats) > 0 {
		// Single multi-row insert; position preserves the order seats were
		// requested in.
		q := `INSERT INTO booking_seats (booking_id, position, seat_number) VALUES `
		args := make([]any, 0, len(b.Seats)*3)
		for i, seat := range b.Seats {
			if i > 0 {
				q += ","
			}
			q += "(?, ?, ?)"
			args = append(args, b.ID, i, seat)
		}
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a booking with its seats, or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*Booking, error) {
	const q = `SELECT id, show_id, customer_name, booking_time, status FROM bookings WHERE id = ?`
	var b Booking
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.ShowID, &b.CustomerName, &b.BookingTime, &b.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	seats, err := r.seatsFor(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Seats = seats
	return &b, nil
}

// ListByShow returns all bookings for a show ordered by booking time.
func (r *BookingRepo) ListByShow(ctx context.Context, showID uint64) ([]Booking, error) {
	const q = `SELECT id, show_id, customer_name, booking_time, status
	           FROM bookings WHERE show_id = ? ORDER BY booking_time ASC`
	rows, err := r.db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.ShowID, &b.CustomerName, &b.BookingTime, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		seats, err := r.seatsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Seats = seats
	}
	return out, nil
}

// Cancel flips a confirmed booking to CANCELLED. Cancelling an already
// cancelled booking is a no-op; a missing booking yields ErrBookingNotFound.
func (r *BookingRepo) Cancel(ctx context.Context, id uint64) error {
	const q = `UPDATE bookings SET status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, BookingCancelled, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}
	}
	return nil
}

func (r *BookingRepo) seatsFor(ctx context.Context, bookingID uint64) ([]string, error) {
	const q = `SELECT seat_number FROM booking_seats WHERE booking_id = ? ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
