package database

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates all tables needed by the application.
// Safe to call multiple times - every statement uses IF NOT EXISTS.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// genres.name is binary-collated so the lazy genre dedup matches
// case-sensitively, the same way the write path compares names.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id   BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) COLLATE utf8mb4_bin NOT NULL,
		UNIQUE KEY uq_genres_name (name)
	)`,

	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(120) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(2)   NOT NULL,
		address             VARCHAR(120) NOT NULL DEFAULT '',
		phone               VARCHAR(10)  NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(120) NOT NULL DEFAULT '',
		seeking_talent      TINYINT(1)   NOT NULL DEFAULT 0,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name                VARCHAR(120) NOT NULL,
		city                VARCHAR(120) NOT NULL,
		state               VARCHAR(2)   NOT NULL,
		phone               VARCHAR(10)  NOT NULL DEFAULT '',
		image_link          VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
		website             VARCHAR(120) NOT NULL DEFAULT '',
		seeking_venue       TINYINT(1)   NOT NULL DEFAULT 0,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS shows (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		artist_id  BIGINT UNSIGNED NOT NULL,
		venue_id   BIGINT UNSIGNED NOT NULL,
		start_time DATETIME NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id),
		CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues (id)
	)`,

	`CREATE TABLE IF NOT EXISTS venue_genre_table (
		genre_id BIGINT UNSIGNED NOT NULL,
		venue_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (genre_id, venue_id),
		CONSTRAINT fk_vg_genre FOREIGN KEY (genre_id) REFERENCES genres (id),
		CONSTRAINT fk_vg_venue FOREIGN KEY (venue_id) REFERENCES venues (id)
	)`,

	`CREATE TABLE IF NOT EXISTS artist_genre_table (
		genre_id  BIGINT UNSIGNED NOT NULL,
		artist_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (genre_id, artist_id),
		CONSTRAINT fk_ag_genre  FOREIGN KEY (genre_id)  REFERENCES genres (id),
		CONSTRAINT fk_ag_artist FOREIGN KEY (artist_id) REFERENCES artists (id)
	)`,
}
