package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// Theatre represents a theatre row. Every theatre sits in one city and is
// owned by one partner; both references are validated by the service layer
// before insertion and by FK constraints after it.
type Theatre struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CityID    uint64 `json:"cityId"`
	PartnerID uint64 `json:"partnerId"`
	Audit
}

// TheatreRepo manages persistence for theatres.
type TheatreRepo struct {
	db *sql.DB
}

// NewTheatreRepo constructs a TheatreRepo with the given DB handle.
func NewTheatreRepo(db *sql.DB) *TheatreRepo {
	return &TheatreRepo{db: db}
}

// Create inserts a new theatre and populates the generated ID and audit
// fields on the given record.
func (r *TheatreRepo) Create(ctx context.Context, t *Theatre) error {
	actor := auth.SubjectFrom(ctx)
	const qInsert = `INSERT INTO theatres (name, city_id, partner_id, created_by, updated_by)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, t.Name, t.CityID, t.PartnerID, actor, actor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	const qSelect = `SELECT name, city_id, partner_id, created_by, created_at, updated_by, updated_at
	                 FROM theatres WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, t.ID).Scan(
		&t.Name, &t.CityID, &t.PartnerID,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt,
	)
}

// GetByID retrieves a theatre by its ID, returning ErrTheatreNotFound when
// absent.
func (r *TheatreRepo) GetByID(ctx context.Context, id uint64) (*Theatre, error) {
	const q = `SELECT id, name, city_id, partner_id, created_by, created_at, updated_by, updated_at
	           FROM theatres WHERE id = ?`
	var t Theatre
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.Name, &t.CityID, &t.PartnerID,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheatreNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all theatres ordered by id.
func (r *TheatreRepo) List(ctx context.Context) ([]Theatre, error) {
	return r.list(ctx, `SELECT id, name, city_id, partner_id, created_by, created_at, updated_by, updated_at
	                    FROM theatres ORDER BY id`)
}

// ListByCity returns the theatres located in one city ordered by id.
func (r *TheatreRepo) ListByCity(ctx context.Context, cityID uint64) ([]Theatre, error) {
	return r.list(ctx, `SELECT id, name, city_id, partner_id, created_by, created_at, updated_by, updated_at
	                    FROM theatres WHERE city_id = ? ORDER BY id`, cityID)
}

func (r *TheatreRepo) list(ctx context.Context, q string, args ...any) ([]Theatre, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Theatre
	for rows.Next() {
		var t Theatre
		if err := rows.Scan(
			&t.ID, &t.Name, &t.CityID, &t.PartnerID,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites a theatre's attributes, returning ErrTheatreNotFound
// when the row does not exist.
func (r *TheatreRepo) Update(ctx context.Context, t *Theatre) error {
	const q = `UPDATE theatres
	           SET name = ?, city_id = ?, partner_id = ?,
	               updated_by = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.CityID, t.PartnerID, auth.SubjectFrom(ctx), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM theatres WHERE id = ? LIMIT 1`, t.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTheatreNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a theatre. Theatres that still run shows yield ErrConflict.
func (r *TheatreRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM theatres WHERE id = ?`, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTheatreNotFound
	}
	return nil
}
