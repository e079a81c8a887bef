package aggregate

import (
	"time"

	"github.com/bandstandhq/bandstand/internal/model"
	"github.com/bandstandhq/bandstand/internal/repository"
)

// ShowAtVenue is one row of a venue page's show tables.
type ShowAtVenue struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowByArtist is one row of an artist page's show tables.
type ShowByArtist struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowListing is one row of the global shows listing.
type ShowListing struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the full detail payload of one venue.
type VenuePage struct {
	ID                 uint64        `json:"id"`
	Name               string        `json:"name"`
	Genres             []string      `json:"genres"`
	Address            string        `json:"address"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Phone              string        `json:"phone"`
	Website            string        `json:"website"`
	FacebookLink       string        `json:"facebook_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	ImageLink          string        `json:"image_link"`
	PastShows          []ShowAtVenue `json:"past_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShows      []ShowAtVenue `json:"upcoming_shows"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// ArtistPage is the full detail payload of one artist.
type ArtistPage struct {
	ID                 uint64         `json:"id"`
	Name               string         `json:"name"`
	Genres             []string       `json:"genres"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	Phone              string         `json:"phone"`
	Website            string         `json:"website"`
	FacebookLink       string         `json:"facebook_link"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	ImageLink          string         `json:"image_link"`
	PastShows          []ShowByArtist `json:"past_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShows      []ShowByArtist `json:"upcoming_shows"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

// BuildVenuePage shapes a venue row, its genre names and its joined
// shows into the detail payload, with the phone display-formatted and
// the shows partitioned around now.
func BuildVenuePage(v *model.Venue, genres []string, shows []repository.VenueShow, now time.Time) (*VenuePage, error) {
	past, upcoming, err := PartitionByStart(shows, func(s repository.VenueShow) string { return s.StartTime }, now)
	if err != nil {
		return nil, err
	}
	pastViews, err := venueShowViews(past)
	if err != nil {
		return nil, err
	}
	upcomingViews, err := venueShowViews(upcoming)
	if err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []string{}
	}
	return &VenuePage{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              FormatPhone(v.Phone),
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          pastViews,
		PastShowsCount:     len(pastViews),
		UpcomingShows:      upcomingViews,
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

// BuildArtistPage is the artist-side counterpart of BuildVenuePage.
func BuildArtistPage(a *model.Artist, genres []string, shows []repository.ArtistShow, now time.Time) (*ArtistPage, error) {
	past, upcoming, err := PartitionByStart(shows, func(s repository.ArtistShow) string { return s.StartTime }, now)
	if err != nil {
		return nil, err
	}
	pastViews, err := artistShowViews(past)
	if err != nil {
		return nil, err
	}
	upcomingViews, err := artistShowViews(upcoming)
	if err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []string{}
	}
	return &ArtistPage{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              FormatPhone(a.Phone),
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          pastViews,
		PastShowsCount:     len(pastViews),
		UpcomingShows:      upcomingViews,
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

// BuildShowList shapes the joined show rows of the global listing.
func BuildShowList(listings []repository.ShowListing) ([]ShowListing, error) {
	result := make([]ShowListing, 0, len(listings))
	for _, l := range listings {
		start, err := FormatStartTime(l.StartTime)
		if err != nil {
			return nil, err
		}
		result = append(result, ShowListing{
			VenueID:         l.VenueID,
			VenueName:       l.VenueName,
			ArtistID:        l.ArtistID,
			ArtistName:      l.ArtistName,
			ArtistImageLink: l.ArtistImageLink,
			StartTime:       start,
		})
	}
	return result, nil
}

func venueShowViews(shows []repository.VenueShow) ([]ShowAtVenue, error) {
	views := make([]ShowAtVenue, 0, len(shows))
	for _, s := range shows {
		start, err := FormatStartTime(s.StartTime)
		if err != nil {
			return nil, err
		}
		views = append(views, ShowAtVenue{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       start,
		})
	}
	return views, nil
}

func artistShowViews(shows []repository.ArtistShow) ([]ShowByArtist, error) {
	views := make([]ShowByArtist, 0, len(shows))
	for _, s := range shows {
		start, err := FormatStartTime(s.StartTime)
		if err != nil {
			return nil, err
		}
		views = append(views, ShowByArtist{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      start,
		})
	}
	return views, nil
}
