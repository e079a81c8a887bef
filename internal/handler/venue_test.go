package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bandstandhq/bandstand/internal/aggregate"
	"github.com/bandstandhq/bandstand/internal/repository"
	"github.com/bandstandhq/bandstand/internal/testutil"
)

func venueFormValues() url.Values {
	return url.Values{
		"name":           {"The Musical Hop"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"seeking_talent": {"Yes"},
		"genres":         {"Jazz", "Folk"},
	}
}

func TestCreateVenue(t *testing.T) {
	e, db := newTestServer(t)

	rec := postForm(e, "/venues/create", venueFormValues())
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}

	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	venues, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(venues) != 1 {
		t.Fatalf("Expected 1 venue, got %d", len(venues))
	}
	if venues[0].Phone != "1231231234" {
		t.Errorf("Expected digits-only phone persisted, got %q", venues[0].Phone)
	}
}

func TestCreateVenueValidation(t *testing.T) {
	e, db := newTestServer(t)

	values := venueFormValues()
	values.Set("name", "")
	values.Set("state", "ZZ")
	rec := postForm(e, "/venues/create", values)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	fields := make(map[string]bool)
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	if !fields["name"] || !fields["state"] {
		t.Errorf("Expected errors on name and state, got %v", body.Errors)
	}

	// A rejected form writes nothing.
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		t.Fatalf("count venues: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no venues written, got %d", count)
	}
}

func TestVenueDetail(t *testing.T) {
	e, db := newTestServer(t)

	venueID := testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA", "Jazz", "Folk")
	artistID := testutil.CreateTestArtist(t, db, "Guns N Petals")
	testutil.CreateTestShow(t, db, artistID, venueID, "2019-05-21 21:30:00")
	testutil.CreateTestShow(t, db, artistID, venueID, "2030-05-01 19:30:00")

	var page aggregate.VenuePage
	rec := getJSON(t, e, "/venues/1", &page)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if page.Name != "The Musical Hop" {
		t.Errorf("Unexpected venue name %q", page.Name)
	}
	if page.Phone != "123-456-7890" {
		t.Errorf("Expected display-formatted phone, got %q", page.Phone)
	}
	if len(page.Genres) != 2 || page.Genres[0] != "Folk" || page.Genres[1] != "Jazz" {
		t.Errorf("Unexpected genres %v", page.Genres)
	}
	if page.PastShowsCount != 1 || page.UpcomingShowsCount != 1 {
		t.Errorf("Expected 1 past / 1 upcoming, got %d / %d", page.PastShowsCount, page.UpcomingShowsCount)
	}
	if page.UpcomingShows[0].StartTime != "2030-05-01T19:30:00Z" {
		t.Errorf("Expected RFC3339 start time, got %q", page.UpcomingShows[0].StartTime)
	}
}

func TestVenueDetailUnknownRedirects(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/venues/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}
}

func TestListVenuesGrouped(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestVenue(t, db, "The Dueling Pianos Bar", "New York City", "NY")
	testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA")

	var body struct {
		Areas []aggregate.CityGroup `json:"areas"`
	}
	rec := getJSON(t, e, "/venues", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(body.Areas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(body.Areas))
	}
	// CA sorts ahead of NY.
	if body.Areas[0].State != "CA" || body.Areas[1].State != "NY" {
		t.Errorf("Expected CA before NY, got %s then %s", body.Areas[0].State, body.Areas[1].State)
	}
}

func TestSearchVenues(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	testutil.CreateTestVenue(t, db, "The Dueling Pianos Bar", "New York City", "NY")

	rec := postForm(e, "/venues/search", url.Values{"search_term": {"HOP"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Count      int                      `json:"count"`
		Data       []aggregate.VenueSummary `json:"data"`
		SearchTerm string                   `json:"search_term"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || len(body.Data) != 1 {
		t.Fatalf("Expected 1 match, got count=%d data=%v", body.Count, body.Data)
	}
	if body.Data[0].Name != "The Musical Hop" {
		t.Errorf("Unexpected match %q", body.Data[0].Name)
	}
	if body.SearchTerm != "HOP" {
		t.Errorf("Expected echoed search term, got %q", body.SearchTerm)
	}
}

func TestUpdateVenue(t *testing.T) {
	e, db := newTestServer(t)

	testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA", "Jazz", "Folk")

	values := venueFormValues()
	values.Set("city", "Oakland")
	values["genres"] = []string{"Blues"}
	rec := postForm(e, "/venues/1/edit", values)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/venues/1" {
		t.Errorf("Expected redirect to /venues/1, got %q", loc)
	}

	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	v, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if v.City != "Oakland" {
		t.Errorf("Expected updated city, got %q", v.City)
	}
	genres, err := repo.GenreNames(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenreNames returned error: %v", err)
	}
	if len(genres) != 1 || genres[0] != "Blues" {
		t.Errorf("Expected genre set replaced, got %v", genres)
	}
}

func TestDeleteVenue(t *testing.T) {
	e, db := newTestServer(t)

	venueID := testutil.CreateTestVenue(t, db, "The Musical Hop", "San Francisco", "CA", "Jazz")
	artistID := testutil.CreateTestArtist(t, db, "Guns N Petals")
	testutil.CreateTestShow(t, db, artistID, venueID, "2030-05-01 19:30:00")

	req := httptest.NewRequest(http.MethodDelete, "/venues/1/delete", nil)
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
	if !body.Deleted || body.URL != "/venues" {
		t.Errorf("Unexpected delete response %+v", body)
	}

	repo := repository.NewVenueRepo(db, repository.NewGenreRepo(db))
	if _, err := repo.GetByID(context.Background(), venueID); !errors.Is(err, repository.ErrVenueNotFound) {
		t.Errorf("Expected venue gone, got %v", err)
	}
}

func TestNewVenueFormChoices(t *testing.T) {
	e, _ := newTestServer(t)

	var body struct {
		States []string `json:"states"`
		Genres []string `json:"genres"`
	}
	rec := getJSON(t, e, "/venues/create", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(body.States) == 0 || len(body.Genres) == 0 {
		t.Errorf("Expected non-empty choice lists, got %d states, %d genres", len(body.States), len(body.Genres))
	}
}
