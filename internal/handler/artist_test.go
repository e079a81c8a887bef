package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bandstandhq/bandstand/internal/aggregate"
	"github.com/bandstandhq/bandstand/internal/repository"
	"github.com/bandstandhq/bandstand/internal/testutil"
)

func artistFormValues() url.Values {
	return url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"seeking_venue": {"Yes"},
		"genres":        {"Rock n Roll"},
	}
}

func TestCreateArtist(t *testing.T) {
	e, db := newTestServer(t)

	rec := postForm(e, "/artists/create", artistFormValues())
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d: %s", rec.Code, rec.Body.String())
	}

	repo := repository.NewArtistRepo(db, repository.NewGenreRepo(db))
	artists, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(artists) != 1 || artists[0].Name != "Guns N Petals" {
		t.Fatalf("Unexpected artists %v", artists)
	}
	if !artists[0].SeekingVenue {
		t.Error("Expected seeking_venue true")
	}
}

func TestCreateArtistValidation(t *testing.T) {
	e, db := newTestServer(t)

	values := artistFormValues()
	values.Del("genres")
	rec := postForm(e, "/artists/create", values)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM artists`).Scan(&count); err != nil {
		t.Fatalf("count artists: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no artists written, got %d", count)
	}
}

func TestListArtists(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestArtist(t, db, "Matt Quevedo")
	testutil.CreateTestArtist(t, db, "Guns N Petals")

	var body struct {
		Artists []struct {
			ID   uint64 `json:"id"`
			Name string `json:"name"`
		} `json:"artists"`
	}
	rec := getJSON(t, e, "/artists", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(body.Artists) != 2 {
		t.Fatalf("Expected 2 artists, got %d", len(body.Artists))
	}
	// Listing is ordered by name.
	if body.Artists[0].Name != "Guns N Petals" || body.Artists[1].Name != "Matt Quevedo" {
		t.Errorf("Unexpected order %v", body.Artists)
	}
}

func TestArtistDetail(t *testing.T) {
	e, db := newTestServer(t)

	venueID := testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artistID := testutil.CreateTestArtist(t, db, "Guns N Petals", "Rock n Roll")
	testutil.CreateTestShow(t, db, artistID, venueID, "2019-05-21 21:30:00")

	var page aggregate.ArtistPage
	rec := getJSON(t, e, "/artists/1", &page)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if page.Name != "Guns N Petals" {
		t.Errorf("Unexpected artist name %q", page.Name)
	}
	if len(page.Genres) != 1 || page.Genres[0] != "Rock n Roll" {
		t.Errorf("Unexpected genres %v", page.Genres)
	}
	if page.PastShowsCount != 1 || page.UpcomingShowsCount != 0 {
		t.Errorf("Expected 1 past / 0 upcoming, got %d / %d", page.PastShowsCount, page.UpcomingShowsCount)
	}
	if page.PastShows[0].VenueName != "The Musical Hop" {
		t.Errorf("Unexpected past show venue %q", page.PastShows[0].VenueName)
	}
}

func TestArtistDetailUnknownRedirects(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/artists/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}
}

func TestSearchArtists(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestArtist(t, db, "Guns N Petals")
	testutil.CreateTestArtist(t, db, "The Wild Sax Band")

	rec := postForm(e, "/artists/search", url.Values{"search_term": {"band"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int                      `json:"count"`
		Data  []aggregate.VenueSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || body.Data[0].Name != "The Wild Sax Band" {
		t.Errorf("Unexpected search result %+v", body)
	}
}

func TestUpdateArtist(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestArtist(t, db, "Guns N Petals", "Rock n Roll")

	values := artistFormValues()
	values.Set("name", "Guns N Roses")
	rec := postForm(e, "/artists/1/edit", values)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/artists/1" {
		t.Errorf("Expected redirect to /artists/1, got %q", loc)
	}

	repo := repository.NewArtistRepo(db, repository.NewGenreRepo(db))
	a, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if a.Name != "Guns N Roses" {
		t.Errorf("Expected updated name, got %q", a.Name)
	}
}

func TestDeleteArtist(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestArtist(t, db, "Guns N Petals")

	req := httptest.NewRequest(http.MethodDelete, "/artists/1/delete", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Deleted bool   `json:"deleted"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Deleted || body.URL != "/artists" {
		t.Errorf("Unexpected delete response %+v", body)
	}
}
