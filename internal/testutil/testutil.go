// Package testutil provides shared helpers for the database-backed
// tests. Tests run against an in-memory SQLite database; the
// repository SQL sticks to the dialect subset shared with MySQL so
// the same statements run in both.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/bandstandhq/bandstand/internal/model"
	"github.com/bandstandhq/bandstand/internal/repository"
)

// SetupTestDB opens a fresh in-memory database with the full schema.
// The pool is pinned to a single connection so the in-memory database
// survives for the whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

const schema = `
CREATE TABLE genres (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE venues (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL,
    city                TEXT NOT NULL,
    state               TEXT NOT NULL,
    address             TEXT NOT NULL DEFAULT '',
    phone               TEXT NOT NULL DEFAULT '',
    image_link          TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    website             TEXT NOT NULL DEFAULT '',
    seeking_talent      INTEGER NOT NULL DEFAULT 0,
    seeking_description TEXT NOT NULL DEFAULT '',
    created_at          TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at          TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE artists (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL,
    city                TEXT NOT NULL,
    state               TEXT NOT NULL,
    phone               TEXT NOT NULL DEFAULT '',
    image_link          TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    website             TEXT NOT NULL DEFAULT '',
    seeking_venue       INTEGER NOT NULL DEFAULT 0,
    seeking_description TEXT NOT NULL DEFAULT '',
    created_at          TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at          TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE shows (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    artist_id  INTEGER NOT NULL REFERENCES artists (id),
    venue_id   INTEGER NOT NULL REFERENCES venues (id),
    start_time TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE venue_genre_table (
    genre_id INTEGER NOT NULL REFERENCES genres (id),
    venue_id INTEGER NOT NULL REFERENCES venues (id),
    PRIMARY KEY (genre_id, venue_id)
);

CREATE TABLE artist_genre_table (
    genre_id  INTEGER NOT NULL REFERENCES genres (id),
    artist_id INTEGER NOT NULL REFERENCES artists (id),
    PRIMARY KEY (genre_id, artist_id)
);
`

// CreateTestVenue inserts a venue with the given name, location and
// genres and returns its id.
func CreateTestVenue(t *testing.T, db *sql.DB, name, city, state string, genres ...string) uint64 {
	t.Helper()
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	v := model.Venue{Name: name, City: city, State: state, Phone: "1234567890"}
	if err := repo.Create(context.Background(), &v, genres); err != nil {
		t.Fatalf("Failed to create test venue: %v", err)
	}
	return v.ID
}

// CreateTestArtist inserts an artist with the given name and genres
// and returns its id.
func CreateTestArtist(t *testing.T, db *sql.DB, name string, genres ...string) uint64 {
	t.Helper()
	repo := repository.NewArtistRepo(db, repository.NewGenreRepo(db))
	a := model.Artist{Name: name, City: "San Francisco", State: "CA"}
	if err := repo.Create(context.Background(), &a, genres); err != nil {
		t.Fatalf("Failed to create test artist: %v", err)
	}
	return a.ID
}

// CreateTestShow inserts a show linking the given artist and venue at
// the stored-format start time and returns its id.
func CreateTestShow(t *testing.T, db *sql.DB, artistID, venueID uint64, startTime string) uint64 {
	t.Helper()
	repo := repository.NewShowRepo(db)
	s := model.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}
	if err := repo.Create(context.Background(), &s); err != nil {
		t.Fatalf("Failed to create test show: %v", err)
	}
	return s.ID
}
