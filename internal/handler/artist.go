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

// ListArtists handles GET /artists and returns id/name pairs ordered
// by name ascending.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load artists"})
	}
	type entry struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	entries := make([]entry, 0, len(artists))
	for _, a := range artists {
		entries = append(entries, entry{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, map[string]any{"artists": entries})
}

// SearchArtists handles POST /artists/search, the artist mirror of
// the venue search.
func (h *Handler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.TrimSpace(c.FormValue("search_term"))
	artists, err := h.Artists.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "search failed"})
	}
	entries := make([]aggregate.VenueSummary, 0, len(artists))
	for _, a := range artists {
		times, err := h.Shows.StartTimesForArtist(ctx, a.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
		}
		n, err := aggregate.CountUpcoming(times, now())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		entries = append(entries, aggregate.VenueSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: n})
	}
	results := aggregate.ShapeSearch(entries)
	return c.JSON(http.StatusOK, map[string]any{
		"count":       results.Count,
		"data":        results.Data,
		"search_term": term,
	})
}

// ShowArtist handles GET /artists/:id. Unknown ids redirect home.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load artist"})
	}
	genres, err := h.Artists.GenreNames(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load genres"})
	}
	shows, err := h.Shows.ListForArtist(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMissingRelated) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}
	page, err := aggregate.BuildArtistPage(a, genres, shows, now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, page)
}

// NewArtistForm handles GET /artists/create.
func (h *Handler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"states": form.StateChoices,
		"genres": form.GenreChoices,
	})
}

// CreateArtist handles POST /artists/create.
func (h *Handler) CreateArtist(c echo.Context) error {
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if errs := f.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}
	a := f.Model()
	if err := h.Artists.Create(c.Request().Context(), &a, f.Genres); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name),
		})
	}
	return c.Redirect(http.StatusFound, "/")
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load artist"})
	}
	genres, err := h.Artists.GenreNames(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load genres"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"artist": map[string]any{
			"id":                  a.ID,
			"name":                a.Name,
			"genres":              genres,
			"city":                a.City,
			"state":               a.State,
			"phone":               aggregate.FormatPhone(a.Phone),
			"website":             a.Website,
			"facebook_link":       a.FacebookLink,
			"seeking_venue":       a.SeekingVenue,
			"seeking_description": a.SeekingDescription,
			"image_link":          a.ImageLink,
		},
		"states": form.StateChoices,
		"genres": form.GenreChoices,
	})
}

// UpdateArtist handles POST /artists/:id/edit.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if errs := f.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}
	a := f.Model()
	a.ID = id
	if err := h.Artists.Update(c.Request().Context(), &a, f.Genres); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name),
		})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist handles DELETE /artists/:id/delete.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load artist"})
	}
	if err := h.Artists.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("An error occurred deleting artist %s.", a.Name),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true, "url": "/artists"})
}
