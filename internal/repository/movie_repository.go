package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// Movie represents a movie row. DurationMinutes is informational; shows do
// not derive an end time from it.
type Movie struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Language        string `json:"language"`
	Genre           string `json:"genre"`
	DurationMinutes uint32 `json:"durationInMinutes"`
	Audit
}

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Create inserts a new movie and populates the generated ID and audit
// fields on the given record.
func (r *MovieRepo) Create(ctx context.Context, m *Movie) error {
	actor := auth.SubjectFrom(ctx)
	const qInsert = `INSERT INTO movies (title, language, genre, duration_minutes, created_by, updated_by)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, m.Title, m.Language, m.Genre, m.DurationMinutes, actor, actor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT title, language, genre, duration_minutes, created_by, created_at, updated_by, updated_at
	                 FROM movies WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(
		&m.Title, &m.Language, &m.Genre, &m.DurationMinutes,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedBy, &m.UpdatedAt,
	)
}

// GetByID retrieves a movie by its ID. It returns ErrMovieNotFound if there
// is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*Movie, error) {
	const q = `SELECT id, title, language, genre, duration_minutes, created_by, created_at, updated_by, updated_at
	           FROM movies WHERE id = ?`
	var m Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Title, &m.Language, &m.Genre, &m.DurationMinutes,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedBy, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByTitle retrieves a movie by case-insensitive title match.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	const q = `SELECT id, title, language, genre, duration_minutes, created_by, created_at, updated_by, updated_at
	           FROM movies WHERE LOWER(title) = LOWER(?) LIMIT 1`
	var m Movie
	if err := r.db.QueryRowContext(ctx, q, title).Scan(
		&m.ID, &m.Title, &m.Language, &m.Genre, &m.DurationMinutes,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedBy, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns all movies ordered by id.
func (r *MovieRepo) List(ctx context.Context) ([]Movie, error) {
	const q = `SELECT id, title, language, genre, duration_minutes, created_by, created_at, updated_by, updated_at
	           FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Movie
	for rows.Next() {
		var m Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Language, &m.Genre, &m.DurationMinutes,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedBy, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites a movie's attributes. It returns ErrMovieNotFound when
// the row does not exist.
func (r *MovieRepo) Update(ctx context.Context, m *Movie) error {
	const q = `UPDATE movies
	           SET title = ?, language = ?, genre = ?, duration_minutes = ?,
	               updated_by = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		m.Title, m.Language, m.Genre, m.DurationMinutes,
		auth.SubjectFrom(ctx), m.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "no row" from "no change": the row may exist with
		// identical values.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ? LIMIT 1`, m.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a movie. Movies referenced by shows yield ErrConflict via
// the FK restriction.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
