// Package repository contains data access logic for Show domain operations.
// A Show is a scheduled screening of one movie at one theatre. Updates and
// deletes are guarded: a show with bookings whose show time is still in the
// future must not change. The service layer evaluates the guard up front for
// its error ordering; the mutation methods here re-evaluate it inside the
// same transaction as the write, so a booking inserted between the two
// checks cannot slip past (check-then-act hardening).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// Show represents a show row. ShowTime is stored as UTC DATETIME; past
// values are accepted on insert.
type Show struct {
	ID        uint64    `json:"id"`
	MovieID   uint64    `json:"movieId"`
	TheatreID uint64    `json:"theatreId"`
	ShowTime  time.Time `json:"showTime"`
	Audit
}

// qFutureBookings is the targeted existence check behind the guard: does any
// booking reference this show while the show's own time is after the given
// instant? It deliberately ignores booking status, matching the rule that
// any booking for an upcoming performance blocks mutation.
const qFutureBookings = `SELECT EXISTS (
	SELECT 1 FROM bookings b
	JOIN shows s ON s.id = b.show_id
	WHERE b.show_id = ? AND s.show_time > ?
)`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the struct.
// Foreign keys must reference existing movie and theatre rows; the service
// layer resolves both before calling this.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	actor := auth.SubjectFrom(ctx)
	const qInsert = `INSERT INTO shows (movie_id, theatre_id, show_time, created_by, updated_by)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, s.MovieID, s.TheatreID, s.ShowTime.UTC(), actor, actor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	// Fetch the freshly inserted row to populate DB-default fields.
	const qSelect = `SELECT movie_id, theatre_id, show_time, created_by, created_at, updated_by, updated_at
	                 FROM shows WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(
		&s.MovieID, &s.TheatreID, &s.ShowTime,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt,
	)
}

// GetByID retrieves a show by its ID. It returns ErrShowNotFound if there is
// no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, movie_id, theatre_id, show_time, created_by, created_at, updated_by, updated_at
	           FROM shows WHERE id = ?`
	var s Show
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.MovieID, &s.TheatreID, &s.ShowTime,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateGuarded overwrites the show's movie, theatre and show time inside a
// single transaction that first re-runs the future-booking check against
// `now`. It returns ErrFutureBookings when the guard trips and
// ErrShowNotFound when the row vanished between the service's load and the
// write.
func (r *ShowRepo) UpdateGuarded(ctx context.Context, s *Show, now time.Time) error {
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

	var blocked bool
	if err = tx.QueryRowContext(ctx, qFutureBookings, s.ID, now.UTC()).Scan(&blocked); err != nil {
		return err
	}
	if blocked {
		err = ErrFutureBookings
		return err
	}

	const q = `UPDATE shows
	           SET movie_id = ?, theatre_id = ?, show_time = ?,
	               updated_by = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	var res sql.Result
	res, err = tx.ExecContext(ctx, q, s.MovieID, s.TheatreID, s.ShowTime.UTC(), auth.SubjectFrom(ctx), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err = tx.QueryRowContext(ctx, `SELECT 1 FROM shows WHERE id = ? LIMIT 1`, s.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = ErrShowNotFound
			}
			return err
		}
	}
	return nil
}

// DeleteGuarded removes a show and its dependent bookings inside a single
// transaction, re-running the future-booking check first. Bookings whose
// show time already passed are removed with the show so no orphan rows
// remain.
func (r *ShowRepo) DeleteGuarded(ctx context.Context, id uint64, now time.Time) error {
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

	var blocked bool
	if err = tx.QueryRowContext(ctx, qFutureBookings, id, now.UTC()).Scan(&blocked); err != nil {
		return err
	}
	if blocked {
		err = ErrFutureBookings
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE bs FROM booking_seats bs
		 JOIN bookings b ON b.id = bs.booking_id
		 WHERE b.show_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE show_id = ?`, id); err != nil {
		return err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrShowNotFound
		return err
	}
	return nil
}
