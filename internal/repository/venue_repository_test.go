package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bandstandhq/bandstand/internal/model"
	"github.com/bandstandhq/bandstand/internal/repository"
	"github.com/bandstandhq/bandstand/internal/testutil"
)

func TestVenueCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	ctx := context.Background()

	v := model.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "1231231234",
		SeekingTalent:      true,
		SeekingDescription: "Looking for local artists.",
	}
	if err := repo.Create(ctx, &v, []string{"Jazz", "Folk"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.ID == 0 {
		t.Fatal("Create did not assign an ID")
	}
	if v.CreatedAt == "" || v.UpdatedAt == "" {
		t.Error("Create did not populate timestamps")
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != v.Name || got.City != v.City || got.State != v.State {
		t.Errorf("GetByID mismatch: %+v", got)
	}
	if !got.SeekingTalent {
		t.Error("seeking_talent not persisted")
	}

	genres, err := repo.GenreNames(ctx, v.ID)
	if err != nil {
		t.Fatalf("GenreNames returned error: %v", err)
	}
	// Alphabetical order regardless of submission order.
	if len(genres) != 2 || genres[0] != "Folk" || genres[1] != "Jazz" {
		t.Errorf("Unexpected genres %v", genres)
	}
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))

	if _, err := repo.GetByID(context.Background(), 999); !errors.Is(err, repository.ErrVenueNotFound) {
		t.Fatalf("Expected ErrVenueNotFound, got %v", err)
	}
}

func TestVenueSearchByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	ctx := context.Background()

	testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	testutil.CreateTestVenue(t, db, "The Dueling Pianos Bar", "New York City", "NY")

	for _, term := range []string{"hop", "Hop", "HOP"} {
		got, err := repo.SearchByName(ctx, term)
		if err != nil {
			t.Fatalf("SearchByName(%q) returned error: %v", term, err)
		}
		if len(got) != 1 || got[0].Name != "The Musical Hop" {
			t.Errorf("SearchByName(%q) = %v, want The Musical Hop", term, got)
		}
	}

	// An empty term matches every venue.
	all, err := repo.SearchByName(ctx, "")
	if err != nil {
		t.Fatalf("SearchByName(\"\") returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 venues for empty term, got %d", len(all))
	}

	none, err := repo.SearchByName(ctx, "warehouse")
	if err != nil {
		t.Fatalf("SearchByName returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no matches, got %v", none)
	}
}

func TestVenueUpdateRebuildsGenres(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	ctx := context.Background()

	id := testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA", "Jazz", "Folk")

	v, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	v.City = "Oakland"
	if err := repo.Update(ctx, v, []string{"Blues"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.City != "Oakland" {
		t.Errorf("Expected updated city, got %q", got.City)
	}

	// The genre set is cleared and rebuilt, not merged.
	genres, err := repo.GenreNames(ctx, id)
	if err != nil {
		t.Fatalf("GenreNames returned error: %v", err)
	}
	if len(genres) != 1 || genres[0] != "Blues" {
		t.Errorf("Expected genre set replaced with [Blues], got %v", genres)
	}

	// The orphaned genre rows themselves survive for reuse.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		t.Fatalf("count genres: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 genre rows, got %d", count)
	}
}

func TestVenueUpdateNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))

	v := model.Venue{ID: 999, Name: "Ghost Hall", City: "Nowhere", State: "CA"}
	if err := repo.Update(context.Background(), &v, nil); !errors.Is(err, repository.ErrVenueNotFound) {
		t.Fatalf("Expected ErrVenueNotFound, got %v", err)
	}
}

func TestVenueDeleteCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	ctx := context.Background()

	venueID := testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA", "Jazz")
	artistID := testutil.CreateTestArtist(t, db, "Guns N Petals", "Rock n Roll")
	testutil.CreateTestShow(t, db, artistID, venueID, "2030-05-01 19:30:00")
	testutil.CreateTestShow(t, db, artistID, venueID, "2020-06-01 20:00:00")

	if err := repo.Delete(ctx, venueID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := repo.GetByID(ctx, venueID); !errors.Is(err, repository.ErrVenueNotFound) {
		t.Fatalf("Expected venue gone, got %v", err)
	}
	var shows, links int
	if err := db.QueryRow(`SELECT COUNT(*) FROM shows WHERE venue_id = ?`, venueID).Scan(&shows); err != nil {
		t.Fatalf("count shows: %v", err)
	}
	if shows != 0 {
		t.Errorf("Expected shows cascaded, %d remain", shows)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM venue_genre_table WHERE venue_id = ?`, venueID).Scan(&links); err != nil {
		t.Fatalf("count genre links: %v", err)
	}
	if links != 0 {
		t.Errorf("Expected genre links cascaded, %d remain", links)
	}

	// The artist on the deleted shows is untouched.
	artists := repository.NewArtistRepo(db, repository.NewGenreRepo(db))
	if _, err := artists.GetByID(ctx, artistID); err != nil {
		t.Errorf("Expected artist to survive venue delete, got %v", err)
	}
}

func TestVenueDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))

	if err := repo.Delete(context.Background(), 999); !errors.Is(err, repository.ErrVenueNotFound) {
		t.Fatalf("Expected ErrVenueNotFound, got %v", err)
	}
}
