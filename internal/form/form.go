// Package form holds the typed request forms and their validation.
// Each form is bound from urlencoded fields, validated into a list of
// per-field errors, and converted into a model struct with the input
// coercions applied: trimmed strings, digits-only phone numbers and
// Yes/No toggles mapped to booleans.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bandstandhq/bandstand/internal/model"
)

// FieldError is a single validation failure on a named form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full validation outcome of a form. An empty list
// means the form is valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// StripPhone removes every non-digit character from a phone number.
// Phones are persisted digits-only and re-formatted at display time.
func StripPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// YesNo maps the "Yes"/"No" toggle fields to a boolean. Anything but
// "Yes" is false, matching the form's submit values.
func YesNo(s string) bool {
	return s == "Yes"
}

// VenueForm carries the fields of the venue create and edit forms.
type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Website            string   `form:"website"`
	FacebookLink       string   `form:"facebook_link"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

// Validate checks the declared constraints and returns the field
// errors. A non-empty result means no write may be attempted.
func (f *VenueForm) Validate() Errors {
	var errs Errors
	errs = append(errs, requireFields(f.Name, f.City, f.State)...)
	errs = append(errs, validateState(f.State)...)
	errs = append(errs, validatePhone(f.Phone)...)
	errs = append(errs, validateGenres(f.Genres)...)
	return errs
}

// Model converts the validated form into a venue row with all input
// coercions applied.
func (f *VenueForm) Model() model.Venue {
	return model.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              StripPhone(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		Website:            strings.TrimSpace(f.Website),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		SeekingTalent:      YesNo(f.SeekingTalent),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

// ArtistForm carries the fields of the artist create and edit forms.
// It mirrors VenueForm without the street address and with the
// seeking toggle inverted to the artist's side.
type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Website            string   `form:"website"`
	FacebookLink       string   `form:"facebook_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

// Validate checks the declared constraints and returns the field errors.
func (f *ArtistForm) Validate() Errors {
	var errs Errors
	errs = append(errs, requireFields(f.Name, f.City, f.State)...)
	errs = append(errs, validateState(f.State)...)
	errs = append(errs, validatePhone(f.Phone)...)
	errs = append(errs, validateGenres(f.Genres)...)
	return errs
}

// Model converts the validated form into an artist row.
func (f *ArtistForm) Model() model.Artist {
	return model.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              StripPhone(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		Website:            strings.TrimSpace(f.Website),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		SeekingVenue:       YesNo(f.SeekingVenue),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

// ShowForm carries the fields of the show create form. Shows have no
// field-level validation beyond type coercion.
type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// Model coerces the form into a show row. Start times are accepted as
// RFC3339 or the storage layout and normalized to UTC storage format.
func (f *ShowForm) Model() (model.Show, error) {
	artistID, err := strconv.ParseUint(strings.TrimSpace(f.ArtistID), 10, 64)
	if err != nil {
		return model.Show{}, fmt.Errorf("invalid artist_id: %w", err)
	}
	venueID, err := strconv.ParseUint(strings.TrimSpace(f.VenueID), 10, 64)
	if err != nil {
		return model.Show{}, fmt.Errorf("invalid venue_id: %w", err)
	}
	raw := strings.TrimSpace(f.StartTime)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse(model.TimeLayout, raw)
	}
	if err != nil {
		return model.Show{}, fmt.Errorf("invalid start_time: %w", err)
	}
	return model.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: t.UTC().Format(model.TimeLayout),
	}, nil
}

func requireFields(name, city, state string) Errors {
	var errs Errors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(city) == "" {
		errs = append(errs, FieldError{Field: "city", Message: "is required"})
	}
	if strings.TrimSpace(state) == "" {
		errs = append(errs, FieldError{Field: "state", Message: "is required"})
	}
	return errs
}

func validateState(state string) Errors {
	if state == "" || ValidState(state) {
		return nil
	}
	return Errors{{Field: "state", Message: "must be a two-letter state code"}}
}

func validatePhone(phone string) Errors {
	digits := StripPhone(phone)
	if digits == "" || len(digits) == 10 {
		return nil
	}
	return Errors{{Field: "phone", Message: "must contain exactly 10 digits"}}
}

func validateGenres(genres []string) Errors {
	if len(genres) == 0 {
		return Errors{{Field: "genres", Message: "select at least one genre"}}
	}
	for _, g := range genres {
		if !ValidGenre(g) {
			return Errors{{Field: "genres", Message: "unknown genre " + strconv.Quote(g)}}
		}
	}
	return nil
}
