package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ShowRow is the external projection of a show: identifiers flattened into
// the movie, theatre and city attributes a caller actually wants to display.
// It mirrors the wire shape of the previous implementation of this API.
type ShowRow struct {
	ShowID      uint64    `json:"showId"`
	MovieTitle  string    `json:"movieTitle"`
	Language    string    `json:"language"`
	Genre       string    `json:"genre"`
	TheatreName string    `json:"theatreName"`
	CityName    string    `json:"cityName"`
	ShowTime    time.Time `json:"showTime"`
}

const qShowRow = `SELECT s.id, m.title, m.language, m.genre, t.name, c.name, s.show_time
	FROM shows s
	JOIN movies m   ON m.id = s.movie_id
	JOIN theatres t ON t.id = s.theatre_id
	JOIN cities c   ON c.id = t.city_id`

// GetRow returns the projection for a single show, or ErrShowNotFound.
func (r *ShowRepo) GetRow(ctx context.Context, id uint64) (*ShowRow, error) {
	var row ShowRow
	err := r.db.QueryRowContext(ctx, qShowRow+` WHERE s.id = ?`, id).Scan(
		&row.ShowID, &row.MovieTitle, &row.Language, &row.Genre,
		&row.TheatreName, &row.CityName, &row.ShowTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &row, nil
}

// ListRows returns the projection of every show ordered by show time.
func (r *ShowRepo) ListRows(ctx context.Context) ([]ShowRow, error) {
	return r.queryRows(ctx, qShowRow+` ORDER BY s.show_time ASC`)
}

// FindByMovieCityAndDay returns the shows whose movie title and theatre
// city match case-insensitively and whose show time falls inside
// [dayStart, dayEnd). Case folding is done in SQL so it is consistent for
// every caller regardless of process locale. An empty result is valid.
func (r *ShowRepo) FindByMovieCityAndDay(ctx context.Context, movieTitle, cityName string, dayStart, dayEnd time.Time) ([]ShowRow, error) {
	q := qShowRow + `
	WHERE LOWER(m.title) = LOWER(?)
	  AND LOWER(c.name) = LOWER(?)
	  AND s.show_time >= ? AND s.show_time < ?
	ORDER BY s.show_time ASC`
	return r.queryRows(ctx, q, movieTitle, cityName, dayStart.UTC(), dayEnd.UTC())
}

func (r *ShowRepo) queryRows(ctx context.Context, q string, args ...any) ([]ShowRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShowRow
	for rows.Next() {
		var row ShowRow
		if err := rows.Scan(
			&row.ShowID, &row.MovieTitle, &row.Language, &row.Genre,
			&row.TheatreName, &row.CityName, &row.ShowTime,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
