package model

// Venue represents a place that hosts shows.  A venue owns a
// one-to-many relationship to Show and a many-to-many relationship
// to Genre.  The phone number is stored digits-only; display
// formatting happens in the aggregation layer.  This struct
// corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 - primary key identifier.
//  Name               - venue name.
//  City               - city the venue is located in.
//  State              - two-letter state code.
//  Address            - street address.
//  Phone              - 10 digit phone number, unformatted.
//  ImageLink          - URL of the venue image.
//  FacebookLink       - URL of the venue Facebook page.
//  Website            - URL of the venue website.
//  SeekingTalent      - whether the venue is looking for artists.
//  SeekingDescription - free-form text shown when seeking talent.
//  CreatedAt          - row creation timestamp ("2006-01-02 15:04:05" UTC).
//  UpdatedAt          - last update timestamp, same format.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	Website            string // venues.website
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
	CreatedAt          string // venues.created_at
	UpdatedAt          string // venues.updated_at
}
