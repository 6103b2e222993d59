package store

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with the schema applied. A
// single connection keeps every statement on the same in-memory instance.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(db))

	return db
}

// insertVenue writes a catalog row directly; the application has no venue
// write path, so tests seed the same way the seed tool does.
func insertVenue(t *testing.T, db *sql.DB, v Venue) int64 {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO venues (name, address, playground, fenced, quiet_zones, colors,
		                    smells, food_own, defined_duration, quiet, crowdedness,
		                    food_variey, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.Address, v.Playground, v.Fenced, v.QuietZones, v.Colors,
		v.Smells, v.FoodOwn, v.DefinedDuration, v.Quiet, v.Crowdedness,
		v.FoodVariety, v.PhotoURL,
	)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func venueNames(venues []Venue) []string {
	names := make([]string, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
	}
	return names
}
