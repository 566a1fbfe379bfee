// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios: the not-found family
// maps to HTTP 404, ErrFutureBookings and friends map to 409, and
// ErrForbidden maps to 403.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Not-found sentinels, one per entity kind so callers can name the missing
// reference in responses.
var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheatreNotFound = errors.New("theatre not found")
	ErrCityNotFound    = errors.New("city not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrShowNotFound    = errors.New("show not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// ErrFutureBookings is returned when an update or delete of a show is
// blocked because at least one booking exists whose show time is still in
// the future. Handlers should translate this into an HTTP 409 response.
var ErrFutureBookings = errors.New("show has future bookings")

// ErrSeatTaken is returned when a booking requests a seat that is already
// booked for the same show.
var ErrSeatTaken = errors.New("seat already booked")

// ErrDuplicateName is returned when a unique name constraint is violated,
// e.g. creating a second city with the same name.
var ErrDuplicateName = errors.New("name already exists")

// ErrForbidden is returned when the caller attempts a mutation on a theatre
// owned by another partner.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a city that still has theatres.
var ErrConflict = errors.New("conflict")

// MySQL error numbers for constraint violations.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
)

// translateMySQL maps driver-level constraint errors onto the package
// sentinels; any other error is returned unchanged.
func translateMySQL(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDuplicateEntry:
			return ErrDuplicateName
		case mysqlErrRowIsReferenced:
			return ErrConflict
		}
	}
	return err
}
