// Package handler contains the HTTP handlers. Handlers are thin
// orchestration: bind and validate input, call the repositories and
// the aggregation layer, and answer with a page payload, a redirect
// or an error. Persistence failures never propagate past this layer.
package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bandstandhq/bandstand/internal/repository"
)

// Handler bundles the repositories behind the public routes.
type Handler struct {
	Venues  *repository.VenueRepo
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	Genres  *repository.GenreRepo
}

// New constructs a Handler and panics if any dependency is nil.
func New(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo, genres *repository.GenreRepo) *Handler {
	if venues == nil || artists == nil || shows == nil || genres == nil {
		panic("nil repository passed to handler.New")
	}
	return &Handler{Venues: venues, Artists: artists, Shows: shows, Genres: genres}
}

// Home answers the index route. Not-found redirects land here.
func (h *Handler) Home(c echo.Context) error {
	return c.JSON(200, map[string]string{"message": "bandstand booking directory"})
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// now is the single evaluation instant used for past/upcoming
// partitioning within one request. Stored times are UTC.
func now() time.Time {
	return time.Now().UTC()
}
