package repository

// Partner is the organization that owns one or more theatres (PVR, INOX and
// the like). Mutations on a theatre's shows are authorized against its
// partner, so this repo is consulted by the policy layer as well as the
// partner CRUD handlers.

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// Partner represents a partner row. Its name is unique.
type Partner struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Audit
}

// PartnerRepo encapsulates all database queries related to partners.
type PartnerRepo struct {
	db *sql.DB
}

// NewPartnerRepo constructs a PartnerRepo with the provided DB handle.
func NewPartnerRepo(db *sql.DB) *PartnerRepo {
	return &PartnerRepo{db: db}
}

// Create inserts a new partner and populates the ID and audit fields.
// A duplicate name yields ErrDuplicateName.
func (r *PartnerRepo) Create(ctx context.Context, p *Partner) error {
	actor := auth.SubjectFrom(ctx)
	const qInsert = `INSERT INTO partners (name, created_by, updated_by) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, p.Name, actor, actor)
	if err != nil {
		return translateMySQL(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = `SELECT name, created_by, created_at, updated_by, updated_at FROM partners WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, p.ID).
		Scan(&p.Name, &p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt)
}

// GetByID fetches a partner by ID, returning ErrPartnerNotFound when absent.
func (r *PartnerRepo) GetByID(ctx context.Context, id uint64) (*Partner, error) {
	const q = `SELECT id, name, created_by, created_at, updated_by, updated_at FROM partners WHERE id = ?`
	var p Partner
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all partners ordered by id.
func (r *PartnerRepo) List(ctx context.Context) ([]Partner, error) {
	const q = `SELECT id, name, created_by, created_at, updated_by, updated_at FROM partners ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Partner
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedBy, &p.CreatedAt, &p.UpdatedBy, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateName renames a partner.
func (r *PartnerRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	const q = `UPDATE partners
	           SET name = ?, updated_by = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, auth.SubjectFrom(ctx), id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

// Delete removes a partner. Partners still owning theatres yield ErrConflict.
func (r *PartnerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = ?`, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPartnerNotFound
	}
	return nil
}
