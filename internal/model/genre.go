package model

// Genre is a shared tag referenced by venues and artists through the
// venue_genre_table and artist_genre_table join tables.  Genres are
// created lazily the first time a listing references a new name and
// are never updated afterwards.  Rows referenced by nothing may
// persist as orphans.
//
// Fields:
//  ID   - primary key identifier.
//  Name - genre name, unique and matched case-sensitively.
type Genre struct {
	ID   uint64 // genres.id
	Name string // genres.name
}
