package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinebook/movie-show-booking/internal/auth"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

// ShowService implements the show lifecycle: create, update, delete, get,
// list and search, enforcing the two business rules of this system:
// shows must reference an existing movie and theatre, and shows with
// future bookings cannot be updated or deleted.
//
// The future-booking guard is evaluated before the show itself is loaded,
// so a nonexistent id with future bookings (possible only through storage
// inconsistency) reports the guard failure, not the missing show. That
// ordering is preserved from the previous implementation of this API and
// callers may depend on it.
type ShowService struct {
	shows    ShowStore
	movies   MovieStore
	theatres TheatreStore
	guard    BookingGuard
	policy   Policy
	now      Clock
}

// NewShowService wires the lifecycle with its stores and policy. A nil
// clock defaults to UTCClock.
func NewShowService(shows ShowStore, movies MovieStore, theatres TheatreStore, guard BookingGuard, policy Policy, now Clock) *ShowService {
	if now == nil {
		now = UTCClock
	}
	return &ShowService{shows: shows, movies: movies, theatres: theatres, guard: guard, policy: policy, now: now}
}

// Create schedules a new show. It fails with ErrMovieNotFound or
// ErrTheatreNotFound when a reference does not resolve, and ErrForbidden
// when the actor may not mutate the theatre. Past show times are accepted;
// rescheduling history imports rely on that.
func (s *ShowService) Create(ctx context.Context, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error) {
	logrus.WithFields(logrus.Fields{
		"movie_id": movieID, "theatre_id": theatreID, "show_time": showTime,
	}).Info("creating show")

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	theatre, err := s.theatres.GetByID(ctx, theatreID)
	if err != nil {
		return nil, err
	}
	actor, _ := auth.ActorFrom(ctx)
	if err := s.policy.AllowMutate(actor, theatre); err != nil {
		logrus.WithFields(logrus.Fields{"actor": actor.Subject, "theatre_id": theatreID}).
			Warn("show create denied by policy")
		return nil, err
	}

	show := &repository.Show{MovieID: movie.ID, TheatreID: theatre.ID, ShowTime: showTime}
	if err := s.shows.Create(ctx, show); err != nil {
		return nil, err
	}
	logrus.WithField("show_id", show.ID).Info("show created")
	return s.shows.GetRow(ctx, show.ID)
}

// Update overwrites a show's movie, theatre and show time. The guard runs
// first against the current instant, not against the new show time, and
// yields ErrFutureBookings when any booking still points at an upcoming
// performance of this show.
func (s *ShowService) Update(ctx context.Context, id, movieID, theatreID uint64, showTime time.Time) (*repository.ShowRow, error) {
	logrus.WithField("show_id", id).Info("updating show")

	now := s.now()
	blocked, err := s.guard.HasFutureBookings(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if blocked {
		logrus.WithField("show_id", id).Warn("cannot update show: future bookings exist")
		return nil, repository.ErrFutureBookings
	}

	cur, err := s.shows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	actor, _ := auth.ActorFrom(ctx)
	// The actor must be allowed to mutate both the theatre the show is in
	// and the one it is moving to.
	curTheatre, err := s.theatres.GetByID(ctx, cur.TheatreID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AllowMutate(actor, curTheatre); err != nil {
		logrus.WithFields(logrus.Fields{"actor": actor.Subject, "show_id": id}).
			Warn("show update denied by policy")
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	theatre, err := s.theatres.GetByID(ctx, theatreID)
	if err != nil {
		return nil, err
	}
	if theatre.ID != curTheatre.ID {
		if err := s.policy.AllowMutate(actor, theatre); err != nil {
			return nil, err
		}
	}

	cur.MovieID = movie.ID
	cur.TheatreID = theatre.ID
	cur.ShowTime = showTime
	if err := s.shows.UpdateGuarded(ctx, cur, now); err != nil {
		return nil, err
	}
	logrus.WithField("show_id", id).Info("show updated")
	return s.shows.GetRow(ctx, id)
}

// Delete removes a show, subject to the same guard and ordering as Update.
func (s *ShowService) Delete(ctx context.Context, id uint64) error {
	logrus.WithField("show_id", id).Info("deleting show")

	now := s.now()
	blocked, err := s.guard.HasFutureBookings(ctx, id, now)
	if err != nil {
		return err
	}
	if blocked {
		logrus.WithField("show_id", id).Warn("cannot delete show: future bookings exist")
		return repository.ErrFutureBookings
	}

	cur, err := s.shows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	theatre, err := s.theatres.GetByID(ctx, cur.TheatreID)
	if err != nil {
		return err
	}
	actor, _ := auth.ActorFrom(ctx)
	if err := s.policy.AllowMutate(actor, theatre); err != nil {
		logrus.WithFields(logrus.Fields{"actor": actor.Subject, "show_id": id}).
			Warn("show delete denied by policy")
		return err
	}

	if err := s.shows.DeleteGuarded(ctx, id, now); err != nil {
		return err
	}
	logrus.WithField("show_id", id).Info("show deleted")
	return nil
}

// Get returns the projection of one show, or ErrShowNotFound.
func (s *ShowService) Get(ctx context.Context, id uint64) (*repository.ShowRow, error) {
	return s.shows.GetRow(ctx, id)
}

// List returns the projections of all shows.
func (s *ShowService) List(ctx context.Context) ([]repository.ShowRow, error) {
	return s.shows.ListRows(ctx)
}

// Search returns the shows for the given movie title and city name on the
// calendar day of `date`. Matching is case-insensitive on both strings; the
// day window is [00:00:00, 24:00:00) of that date in its own location. An
// empty result is not an error.
func (s *ShowService) Search(ctx context.Context, movieTitle, cityName string, date time.Time) ([]repository.ShowRow, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	logrus.WithFields(logrus.Fields{
		"movie": movieTitle, "city": cityName, "date": dayStart.Format("2006-01-02"),
	}).Info("searching shows")

	rows, err := s.shows.FindByMovieCityAndDay(ctx, movieTitle, cityName, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	logrus.WithField("count", len(rows)).Debug("show search finished")
	return rows, nil
}
