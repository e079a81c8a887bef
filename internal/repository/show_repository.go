package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bandstandhq/bandstand/internal/model"
)

// ShowRepo manages persistence for shows. Shows are create-only; the
// cascade in the venue/artist delete paths is the only way a show row
// disappears.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// VenueShow is a show row joined with its performing artist, as
// listed on a venue page.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// ArtistShow is a show row joined with its hosting venue, as listed
// on an artist page.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

// ShowListing is a show row joined with both parents for the global
// shows listing.
type ShowListing struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// Create inserts a new show and assigns the generated ID back to the
// struct. Referential integrity is enforced by the store: an unknown
// artist_id or venue_id fails the insert with a constraint violation.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return r.db.QueryRowContext(ctx, `SELECT created_at FROM shows WHERE id = ?`, s.ID).Scan(&s.CreatedAt)
}

// ListForVenue returns the shows scheduled at a venue together with
// the counterpart artist's name and image link. A show whose artist
// row is gone yields ErrMissingRelated instead of a nil dereference
// downstream.
func (r *ShowRepo) ListForVenue(ctx context.Context, venueID uint64) ([]VenueShow, error) {
	const q = `SELECT s.id, s.artist_id, a.name, a.image_link, s.start_time
               FROM shows s
               LEFT JOIN artists a ON a.id = s.artist_id
               WHERE s.venue_id = ?`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueShow
	for rows.Next() {
		var (
			showID      uint64
			vs          VenueShow
			name, image sql.NullString
		)
		if err := rows.Scan(&showID, &vs.ArtistID, &name, &image, &vs.StartTime); err != nil {
			return nil, err
		}
		if !name.Valid {
			return nil, fmt.Errorf("%w: show %d, artist %d", ErrMissingRelated, showID, vs.ArtistID)
		}
		vs.ArtistName = name.String
		vs.ArtistImageLink = image.String
		result = append(result, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListForArtist returns the shows an artist plays together with the
// counterpart venue's name and image link.
func (r *ShowRepo) ListForArtist(ctx context.Context, artistID uint64) ([]ArtistShow, error) {
	const q = `SELECT s.id, s.venue_id, v.name, v.image_link, s.start_time
               FROM shows s
               LEFT JOIN venues v ON v.id = s.venue_id
               WHERE s.artist_id = ?`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistShow
	for rows.Next() {
		var (
			showID      uint64
			as          ArtistShow
			name, image sql.NullString
		)
		if err := rows.Scan(&showID, &as.VenueID, &name, &image, &as.StartTime); err != nil {
			return nil, err
		}
		if !name.Valid {
			return nil, fmt.Errorf("%w: show %d, venue %d", ErrMissingRelated, showID, as.VenueID)
		}
		as.VenueName = name.String
		as.VenueImageLink = image.String
		result = append(result, as)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAll returns every show joined with both parents for the global
// shows listing, ordered by start time ascending.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.id, s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
               FROM shows s
               LEFT JOIN venues v  ON v.id = s.venue_id
               LEFT JOIN artists a ON a.id = s.artist_id
               ORDER BY s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ShowListing
	for rows.Next() {
		var (
			showID                       uint64
			sl                           ShowListing
			venueName, artistName, image sql.NullString
		)
		if err := rows.Scan(&showID, &sl.VenueID, &venueName, &sl.ArtistID, &artistName, &image, &sl.StartTime); err != nil {
			return nil, err
		}
		if !venueName.Valid || !artistName.Valid {
			return nil, fmt.Errorf("%w: show %d", ErrMissingRelated, showID)
		}
		sl.VenueName = venueName.String
		sl.ArtistName = artistName.String
		sl.ArtistImageLink = image.String
		result = append(result, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// StartTimesForVenue returns only the start times of a venue's shows.
// The browse and search pages need just the upcoming count, so this
// skips the artist join entirely.
func (r *ShowRepo) StartTimesForVenue(ctx context.Context, venueID uint64) ([]string, error) {
	return r.startTimes(ctx, `SELECT start_time FROM shows WHERE venue_id = ?`, venueID)
}

// StartTimesForArtist returns only the start times of an artist's shows.
func (r *ShowRepo) StartTimesForArtist(ctx context.Context, artistID uint64) ([]string, error) {
	return r.startTimes(ctx, `SELECT start_time FROM shows WHERE artist_id = ?`, artistID)
}

func (r *ShowRepo) startTimes(ctx context.Context, q string, id uint64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return times, nil
}
