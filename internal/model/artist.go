package model

// Artist represents a performer that plays shows at venues.  An
// artist owns a one-to-many relationship to Show and a many-to-many
// relationship to Genre.  The shape mirrors Venue except that an
// artist has no street address and seeks a venue rather than talent.
//
// Fields:
//  ID                 - primary key identifier.
//  Name               - artist name.
//  City               - home city.
//  State              - two-letter state code.
//  Phone              - 10 digit phone number, unformatted.
//  ImageLink          - URL of the artist image.
//  FacebookLink       - URL of the artist Facebook page.
//  Website            - URL of the artist website.
//  SeekingVenue       - whether the artist is looking for venues to play.
//  SeekingDescription - free-form text shown when seeking a venue.
//  CreatedAt          - row creation timestamp ("2006-01-02 15:04:05" UTC).
//  UpdatedAt          - last update timestamp, same format.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	Website            string // artists.website
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description
	CreatedAt          string // artists.created_at
	UpdatedAt          string // artists.updated_at
}
