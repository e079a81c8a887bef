// Package aggregate derives view-ready shapes from raw query results:
// venues grouped by location, shows partitioned into past and
// upcoming, and search result envelopes. Everything here is a pure,
// side-effect-free transform; the repositories have already fetched
// whatever rows are needed.
package aggregate

import (
	"fmt"
	"time"

	"github.com/bandstandhq/bandstand/internal/model"
)

func parseStored(s string) (time.Time, error) {
	t, err := time.Parse(model.TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored start time %q: %w", s, err)
	}
	return t, nil
}

// FormatStartTime converts a stored start time into the RFC3339 UTC
// string carried in page payloads.
func FormatStartTime(stored string) (string, error) {
	t, err := parseStored(stored)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// FormatPhone renders a 10 digit stored phone number as XXX-XXX-XXXX.
// Anything that is not exactly 10 digits is returned untouched.
func FormatPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
}

// CountUpcoming counts the start times strictly after now. A show
// starting exactly at now is neither past nor upcoming.
func CountUpcoming(startTimes []string, now time.Time) (int, error) {
	n := 0
	for _, s := range startTimes {
		t, err := parseStored(s)
		if err != nil {
			return 0, err
		}
		if t.After(now) {
			n++
		}
	}
	return n, nil
}

// PartitionByStart splits shows into past and upcoming around now
// using strict comparisons in both directions, so an entry starting
// exactly at now lands in neither bucket. startOf extracts the stored
// start time from an entry. Input order is preserved within each
// bucket.
func PartitionByStart[S any](shows []S, startOf func(S) string, now time.Time) (past, upcoming []S, err error) {
	for _, s := range shows {
		t, err := parseStored(startOf(s))
		if err != nil {
			return nil, nil, err
		}
		switch {
		case t.Before(now):
			past = append(past, s)
		case t.After(now):
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming, nil
}
