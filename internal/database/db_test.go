package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinebook/movie-show-booking/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "booking",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "booking",
	}

	assert.Equal(t,
		"booking@tcp(db.internal:3306)/booking?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))

	cfg.DBPass = "p@ss/word"
	assert.Equal(t,
		"booking:p%40ss%2Fword@tcp(db.internal:3306)/booking?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
