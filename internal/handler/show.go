package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandstandhq/bandstand/internal/aggregate"
	"github.com/bandstandhq/bandstand/internal/form"
	"github.com/bandstandhq/bandstand/internal/repository"
)

// ListShows handles GET /shows and returns every show joined with its
// venue and artist, ordered by start time.
func (h *Handler) ListShows(c echo.Context) error {
	listings, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrMissingRelated) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}
	shows, err := aggregate.BuildShowList(listings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"shows": shows})
}

// NewShowForm handles GET /shows/create and returns the id/name pairs
// the booking form offers for both sides of the show.
func (h *Handler) NewShowForm(c echo.Context) error {
	ctx := c.Request().Context()
	artists, err := h.Artists.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load artists"})
	}
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load venues"})
	}
	type entry struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	artistEntries := make([]entry, 0, len(artists))
	for _, a := range artists {
		artistEntries = append(artistEntries, entry{ID: a.ID, Name: a.Name})
	}
	venueEntries := make([]entry, 0, len(venues))
	for _, v := range venues {
		venueEntries = append(venueEntries, entry{ID: v.ID, Name: v.Name})
	}
	return c.JSON(http.StatusOK, map[string]any{"artists": artistEntries, "venues": venueEntries})
}

// CreateShow handles POST /shows/create. There is no field-level
// validation beyond type coercion; a failing insert (for example an
// unknown artist or venue id) answers the generic listing notice.
func (h *Handler) CreateShow(c echo.Context) error {
	var f form.ShowForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	s, err := f.Model()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.Shows.Create(c.Request().Context(), &s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "An error occurred. Show could not be listed.",
		})
	}
	return c.Redirect(http.StatusFound, "/")
}
