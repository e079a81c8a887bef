package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bandstandhq/bandstand/internal/aggregate"
	"github.com/bandstandhq/bandstand/internal/form"
	"github.com/bandstandhq/bandstand/internal/repository"
)

// ListVenues handles GET /venues and returns all venues grouped by
// city/state, each annotated with its upcoming show count.
func (h *Handler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load venues"})
	}
	startTimes := make(map[uint64][]string, len(venues))
	for _, v := range venues {
		times, err := h.Shows.StartTimesForVenue(ctx, v.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
		}
		startTimes[v.ID] = times
	}
	areas, err := aggregate.GroupVenuesByLocation(venues, startTimes, now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"areas": areas})
}

// SearchVenues handles POST /venues/search. The search_term form
// field is matched case-insensitively anywhere in the venue name; an
// empty term matches everything.
func (h *Handler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.TrimSpace(c.FormValue("search_term"))
	venues, err := h.Venues.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "search failed"})
	}
	entries := make([]aggregate.VenueSummary, 0, len(venues))
	for _, v := range venues {
		times, err := h.Shows.StartTimesForVenue(ctx, v.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
		}
		n, err := aggregate.CountUpcoming(times, now())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		entries = append(entries, aggregate.VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
	}
	results := aggregate.ShapeSearch(entries)
	return c.JSON(http.StatusOK, map[string]any{
		"count":       results.Count,
		"data":        results.Data,
		"search_term": term,
	})
}

// ShowVenue handles GET /venues/:id and returns the venue detail
// payload with its shows partitioned into past and upcoming. An
// unknown id redirects home instead of erroring.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load venue"})
	}
	genres, err := h.Venues.GenreNames(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load genres"})
	}
	shows, err := h.Shows.ListForVenue(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMissingRelated) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}
	page, err := aggregate.BuildVenuePage(v, genres, shows, now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, page)
}

// NewVenueForm handles GET /venues/create and returns the choice
// lists the creation form is rendered from.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"states": form.StateChoices,
		"genres": form.GenreChoices,
	})
}

// CreateVenue handles POST /venues/create. Validation failure answers
// the field errors without attempting a write; persistence failure
// answers a notice naming the venue.
func (h *Handler) CreateVenue(c echo.Context) error {
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if errs := f.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}
	v := f.Model()
	if err := h.Venues.Create(c.Request().Context(), &v, f.Genres); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name),
		})
	}
	return c.Redirect(http.StatusFound, "/")
}

// EditVenueForm handles GET /venues/:id/edit and returns the current
// values alongside the choice lists. Unknown ids redirect home.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load venue"})
	}
	genres, err := h.Venues.GenreNames(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load genres"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"venue": map[string]any{
			"id":                  v.ID,
			"name":                v.Name,
			"genres":              genres,
			"address":             v.Address,
			"city":                v.City,
			"state":               v.State,
			"phone":               aggregate.FormatPhone(v.Phone),
			"website":             v.Website,
			"facebook_link":       v.FacebookLink,
			"seeking_talent":      v.SeekingTalent,
			"seeking_description": v.SeekingDescription,
			"image_link":          v.ImageLink,
		},
		"states": form.StateChoices,
		"genres": form.GenreChoices,
	})
}

// UpdateVenue handles POST /venues/:id/edit. The scalar fields are
// fully replaced and the genre set is cleared and rebuilt.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if errs := f.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}
	v := f.Model()
	v.ID = id
	if err := h.Venues.Update(c.Request().Context(), &v, f.Genres); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name),
		})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue handles DELETE /venues/:id/delete. The delete cascades
// to the venue's shows and genre links; on success the response tells
// the caller where to navigate next.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load venue"})
	}
	if err := h.Venues.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred deleting venue %s.", v.Name),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true, "url": "/venues"})
}
