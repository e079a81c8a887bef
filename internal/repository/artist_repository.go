package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bandstandhq/bandstand/internal/model"
)

const artistCols = `id, name, city, state, phone, image_link, facebook_link, website,
	seeking_venue, seeking_description, created_at, updated_at`

// ArtistRepo manages persistence for artists and their genre links.
// It mirrors VenueRepo except that artists carry no street address
// and the browse listing is ordered by name.
type ArtistRepo struct {
	db     *sql.DB
	genres *GenreRepo
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle and
// genre repository.
func NewArtistRepo(db *sql.DB, genres *GenreRepo) *ArtistRepo {
	return &ArtistRepo{db: db, genres: genres}
}

func scanArtist(rows interface{ Scan(...any) error }) (model.Artist, error) {
	var a model.Artist
	err := rows.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID retrieves an artist by its ID. It returns ErrArtistNotFound
// if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll returns every artist ordered by name ascending.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	return r.list(ctx, `SELECT `+artistCols+` FROM artists ORDER BY name ASC`)
}

// SearchByName returns artists whose name contains the term,
// case-insensitively. An empty term matches all rows.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE LOWER(name) LIKE ?`
	return r.list(ctx, q, "%"+strings.ToLower(term)+"%")
}

func (r *ArtistRepo) list(ctx context.Context, q string, args ...any) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GenreNames returns the names of the genres linked to an artist,
// ordered alphabetically.
func (r *ArtistRepo) GenreNames(ctx context.Context, artistID uint64) ([]string, error) {
	const q = `SELECT g.name
               FROM genres g
               JOIN artist_genre_table ag ON ag.genre_id = g.id
               WHERE ag.artist_id = ?
               ORDER BY g.name ASC`
	rows, err := r.db.QueryContext(ctx, q, artistID)
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

// Create inserts a new artist together with its genre links in one
// transaction and assigns the generated ID back to the struct.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist, genreNames []string) error {
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

	const q = `INSERT INTO artists (name, city, state, phone, image_link, facebook_link, website,
                 seeking_venue, seeking_description)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	if err = r.linkGenres(ctx, tx, a.ID, genreNames); err != nil {
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT created_at, updated_at FROM artists WHERE id = ?`, a.ID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	return err
}

// Update fully replaces the artist's scalar fields and rebuilds its
// genre set from scratch, all in one transaction. It returns
// ErrArtistNotFound when the id has no row.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist, genreNames []string) error {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}

	const q = `UPDATE artists
               SET name = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
                   website = ?, seeking_venue = ?, seeking_description = ?,
                   updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	if _, err = tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM artist_genre_table WHERE artist_id = ?`, a.ID); err != nil {
		return err
	}
	err = r.linkGenres(ctx, tx, a.ID, genreNames)
	return err
}

// Delete removes an artist and cascades to its shows and genre links
// in a single transaction. It returns ErrArtistNotFound when the id
// has no row.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrArtistNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artist_genre_table WHERE artist_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	return err
}

func (r *ArtistRepo) linkGenres(ctx context.Context, tx *sql.Tx, artistID uint64, names []string) error {
	for _, name := range names {
		g, err := r.genres.UpsertTx(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO artist_genre_table (genre_id, artist_id) VALUES (?, ?)`, g.ID, artistID); err != nil {
			return err
		}
	}
	return nil
}
