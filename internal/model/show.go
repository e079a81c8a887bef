package model

// TimeLayout is the storage format for every timestamp column. All
// stored times are UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Show is the join entity for a scheduled performance of an artist at
// a venue.  Shows are immutable once created; there is no update
// path, only create and the cascade that removes them together with
// their parent venue or artist.
// NOTE: StartTime is stored in DB format "2006-01-02 15:04:05" (UTC).
//
// Fields:
//  ID        - primary key identifier.
//  ArtistID  - required foreign key to the performing artist.
//  VenueID   - required foreign key to the hosting venue.
//  StartTime - when the performance starts, DB format UTC.
//  CreatedAt - row creation timestamp.
type Show struct {
	ID        uint64 // shows.id
	ArtistID  uint64 // shows.artist_id
	VenueID   uint64 // shows.venue_id
	StartTime string // shows.start_time ("2006-01-02 15:04:05" UTC)
	CreatedAt string // shows.created_at
}
