package form

// StateChoices is the enumerated set of two-letter state codes the
// venue and artist forms accept.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// GenreChoices is the fixed list of genres offered on the create and
// edit forms. New genre rows are only ever created from this list.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B", "Reggae",
	"Rock n Roll", "Soul", "Other",
}

var stateSet = toSet(StateChoices)
var genreSet = toSet(GenreChoices)

func toSet(list []string) map[string]struct{} {
	s := make(map[string]struct{}, len(list))
	for _, v := range list {
		s[v] = struct{}{}
	}
	return s
}

// ValidState reports whether code is one of the enumerated state codes.
func ValidState(code string) bool {
	_, ok := stateSet[code]
	return ok
}

// ValidGenre reports whether name is one of the offered genres.
func ValidGenre(name string) bool {
	_, ok := genreSet[name]
	return ok
}
