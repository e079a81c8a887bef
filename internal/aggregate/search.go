package aggregate

// SearchResults is the envelope around a name search: the match count
// and one summary per match.
type SearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// ShapeSearch wraps search summaries into the result envelope. The
// venue and artist searches share the summary shape (id, name,
// upcoming count).
func ShapeSearch(entries []VenueSummary) SearchResults {
	if entries == nil {
		entries = []VenueSummary{}
	}
	return SearchResults{Count: len(entries), Data: entries}
}
