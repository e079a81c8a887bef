// Package router defines how HTTP routes are registered for the
// service. All routes are public; the rate limiter guards the
// mutating ones.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bandstandhq/bandstand/internal/handler"
)

// RegisterRoutes registers every route on the provided Echo instance.
// limit is applied to the create, edit and delete endpoints; pass a
// passthrough middleware to disable limiting.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)

	// Venues
	e.GET("/venues", h.ListVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue, limit)
	e.GET("/venues/:id", h.ShowVenue)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.UpdateVenue, limit)
	e.DELETE("/venues/:id/delete", h.DeleteVenue, limit)

	// Artists mirror the venue routes.
	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist, limit)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.UpdateArtist, limit)
	e.DELETE("/artists/:id/delete", h.DeleteArtist, limit)

	// Shows are create-only.
	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow, limit)
}
