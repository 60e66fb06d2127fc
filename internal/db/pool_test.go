package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/sporttracker",
		ConnString(NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "sporttracker"}),
	)
	assert.Equal(t,
		"postgres://tracker:p%40ss@db:5433/sporttracker",
		ConnString(NewDBPoolParams{
			DBHost:     "db",
			DBPort:     "5433",
			DBName:     "sporttracker",
			DBUser:     "tracker",
			DBPassword: "p@ss",
		}),
	)
}
