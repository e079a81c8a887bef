// Package repository defines error values that are reused across the
// entity repositories. These sentinel values allow higher layers such
// as handlers to distinguish between failure scenarios: a missing row
// redirects to a safe default view, while a data-integrity problem
// fails the request with a diagnostic instead of crashing.
package repository

import "errors"

// ErrVenueNotFound indicates that a venue id has no matching row.
// Callers must treat this as "not found", not as a hard error.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound indicates that an artist id has no matching row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrGenreIntegrity is returned when more than one genre row carries
// the same name. The name column is unique so this should never
// happen; when it does the request must fail loudly rather than pick
// a row arbitrarily.
var ErrGenreIntegrity = errors.New("duplicate genre rows")

// ErrMissingRelated is returned when a show references an artist or
// venue that no longer exists. Deletes cascade to dependent shows, so
// this state is unreachable through the application's own write paths.
var ErrMissingRelated = errors.New("show references missing related entity")
