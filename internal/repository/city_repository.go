// Package repository contains data access logic separated from HTTP handlers.
// This file defines the City model and repository methods for CRUD and lookup
// operations. A City groups the theatres located in it; its name is unique
// across the table.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/movie-show-booking/internal/auth"
)

// City represents a city row. Theatres reference cities by ID; a city with
// theatres cannot be deleted.
type City struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Audit
}

// CityRepo encapsulates all database queries related to cities.
type CityRepo struct {
	db *sql.DB
}

// NewCityRepo constructs a CityRepo with the provided DB handle. This allows
// dependency injection of the database in tests and at startup.
func NewCityRepo(db *sql.DB) *CityRepo {
	return &CityRepo{db: db}
}

// Create inserts a new city. On success the ID and audit fields are
// populated on the given record. A duplicate name yields ErrDuplicateName.
func (r *CityRepo) Create(ctx context.Context, c *City) error {
	actor := auth.SubjectFrom(ctx)
	const qInsert = `INSERT INTO cities (name, created_by, updated_by) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, c.Name, actor, actor)
	if err != nil {
		return translateMySQL(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	// Follow-up SELECT to populate DB-default timestamp fields.
	const qSelect = `SELECT name, created_by, created_at, updated_by, updated_at FROM cities WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, c.ID).
		Scan(&c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt)
}

// GetByID fetches a city by its ID. It returns ErrCityNotFound if no row is
// found.
func (r *CityRepo) GetByID(ctx context.Context, id uint64) (*City, error) {
	const q = `SELECT id, name, created_by, created_at, updated_by, updated_at FROM cities WHERE id = ?`
	var c City
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all cities ordered by id.
func (r *CityRepo) List(ctx context.Context) ([]City, error) {
	const q = `SELECT id, name, created_by, created_at, updated_by, updated_at FROM cities ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateName renames a city. It returns ErrCityNotFound when no row is
// affected and ErrDuplicateName when the new name is taken.
func (r *CityRepo) UpdateName(ctx context.Context, id uint64, name string) error {
	const q = `UPDATE cities
	           SET name = ?, updated_by = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, auth.SubjectFrom(ctx), id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCityNotFound
	}
	return nil
}

// Delete removes a city. Cities still referenced by theatres yield
// ErrConflict via the FK restriction.
func (r *CityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCityNotFound
	}
	return nil
}
