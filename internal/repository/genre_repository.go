package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bandstandhq/bandstand/internal/model"
)

// GenreRepo manages persistence for the shared genre tags.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the given DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// UpsertTx returns the genre with the given name, creating it when no
// row matches.  The lookup is an exact, case-sensitive match; no
// normalization is applied beyond what the caller already trimmed.
// It runs on the provided transaction so genre creation commits or
// rolls back together with the listing that references it.  More than
// one matching row is a data-integrity error and fails loudly.
func (r *GenreRepo) UpsertTx(ctx context.Context, tx *sql.Tx, name string) (*model.Genre, error) {
	const q = `SELECT id, name FROM genres WHERE name = ?`
	rows, err := tx.QueryContext(ctx, q, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var matches []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		matches = append(matches, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		// fall through to create
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q has %d rows", ErrGenreIntegrity, name, len(matches))
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO genres (name) VALUES (?)`, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Genre{ID: uint64(id), Name: name}, nil
}

// ListNames returns all genre names ordered alphabetically.  Used to
// populate the choice lists of the create forms.
func (r *GenreRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM genres ORDER BY name ASC`)
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
