// Package repository contains the data access layer. This file holds
// the venue repository: lookups by id and name pattern, and the
// transactional create/update/delete paths that keep the genre join
// table and dependent shows consistent with the venue row.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bandstandhq/bandstand/internal/model"
)

const venueCols = `id, name, city, state, address, phone, image_link, facebook_link, website,
	seeking_talent, seeking_description, created_at, updated_at`

// VenueRepo manages persistence for venues and their genre links.
type VenueRepo struct {
	db     *sql.DB
	genres *GenreRepo
}

// NewVenueRepo constructs a VenueRepo with the given DB handle and
// genre repository for lazy genre creation.
func NewVenueRepo(db *sql.DB, genres *GenreRepo) *VenueRepo {
	return &VenueRepo{db: db, genres: genres}
}

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories.
func (r *VenueRepo) DB() *sql.DB {
	return r.db
}

func scanVenue(rows interface{ Scan(...any) error }) (model.Venue, error) {
	var v model.Venue
	err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// GetByID retrieves a venue by its ID. It returns ErrVenueNotFound if
// there is no matching row.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListAll returns every venue. No ordering is applied; the grouping
// logic downstream must not assume one.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	return r.list(ctx, `SELECT `+venueCols+` FROM venues`)
}

// SearchByName returns venues whose name contains the term,
// case-insensitively. An empty term matches all rows.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE LOWER(name) LIKE ?`
	return r.list(ctx, q, "%"+strings.ToLower(term)+"%")
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GenreNames returns the names of the genres linked to a venue,
// ordered alphabetically.
func (r *VenueRepo) GenreNames(ctx context.Context, venueID uint64) ([]string, error) {
	const q = `SELECT g.name
               FROM genres g
               JOIN venue_genre_table vg ON vg.genre_id = g.id
               WHERE vg.venue_id = ?
               ORDER BY g.name ASC`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Create inserts a new venue together with its genre links in one
// transaction and assigns the generated ID back to the struct. Genres
// are reused by exact name match and created lazily otherwise.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue, genreNames []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, website,
                 seeking_talent, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	if err = r.linkGenres(ctx, tx, v.ID, genreNames); err != nil {
		return err
	}
	// Fetch the DB-default timestamps back onto the struct.
	err = tx.QueryRowContext(ctx, `SELECT created_at, updated_at FROM venues WHERE id = ?`, v.ID).
		Scan(&v.CreatedAt, &v.UpdatedAt)
	return err
}

// Update fully replaces the venue's scalar fields and rebuilds its
// genre set from scratch, all in one transaction. It returns
// ErrVenueNotFound when the id has no row.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue, genreNames []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}

	const q = `UPDATE venues
               SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
                   facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?,
                   updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	if _, err = tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription, v.ID); err != nil {
		return err
	}

	// Clear and rebuild the genre set on every edit.
	if _, err = tx.ExecContext(ctx, `DELETE FROM venue_genre_table WHERE venue_id = ?`, v.ID); err != nil {
		return err
	}
	err = r.linkGenres(ctx, tx, v.ID, genreNames)
	return err
}

// Delete removes a venue and cascades to its shows and genre links so
// no dangling foreign keys remain. The whole cleanup runs in a single
// transaction. It returns ErrVenueNotFound when the id has no row.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrVenueNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venue_genre_table WHERE venue_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	return err
}

func (r *VenueRepo) linkGenres(ctx context.Context, tx *sql.Tx, venueID uint64, names []string) error {
	for _, name := range names {
		g, err := r.genres.UpsertTx(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO venue_genre_table (genre_id, venue_id) VALUES (?, ?)`, g.ID, venueID); err != nil {
			return err
		}
	}
	return nil
}
