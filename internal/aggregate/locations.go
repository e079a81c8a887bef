package aggregate

import (
	"sort"
	"time"

	"github.com/bandstandhq/bandstand/internal/model"
)

// VenueSummary is one venue inside a city/state group or a search
// result list.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup is the venues of one distinct (city, state) pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// GroupVenuesByLocation partitions venues by exact (city, state)
// equality. Groups are sorted by (state, city) ascending; venues keep
// the order they had in the input, which carries no ordering promise
// of its own. startTimes maps a venue id to the stored start times of
// its shows, used to annotate each venue with its upcoming count.
func GroupVenuesByLocation(venues []model.Venue, startTimes map[uint64][]string, now time.Time) ([]CityGroup, error) {
	type location struct {
		city, state string
	}
	seen := make(map[location]struct{})
	var locations []location
	for _, v := range venues {
		l := location{city: v.City, state: v.State}
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			locations = append(locations, l)
		}
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].state != locations[j].state {
			return locations[i].state < locations[j].state
		}
		return locations[i].city < locations[j].city
	})

	groups := make([]CityGroup, 0, len(locations))
	for _, l := range locations {
		g := CityGroup{City: l.city, State: l.state, Venues: []VenueSummary{}}
		for _, v := range venues {
			if v.City != l.city || v.State != l.state {
				continue
			}
			n, err := CountUpcoming(startTimes[v.ID], now)
			if err != nil {
				return nil, err
			}
			g.Venues = append(g.Venues, VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
		}
		groups = append(groups, g)
	}
	return groups, nil
}
