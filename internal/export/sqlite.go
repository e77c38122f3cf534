package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/yvinc/203-proj1/internal/analysis"
)

const schema = `
CREATE TABLE IF NOT EXISTS tracks (
	playlist_id      TEXT    NOT NULL,
	position         INTEGER NOT NULL,
	id               TEXT    NOT NULL,
	track_name       TEXT    NOT NULL,
	danceability     REAL,
	energy           REAL,
	"key"            INTEGER,
	loudness         REAL,
	mode             INTEGER,
	speechiness      REAL,
	acousticness     REAL,
	instrumentalness REAL,
	liveness         REAL,
	valence          REAL,
	tempo            REAL,
	duration_ms      INTEGER,
	time_signature   INTEGER,
	genres           TEXT    NOT NULL DEFAULT '',
	is_pop           INTEGER NOT NULL DEFAULT 0,
	is_rap           INTEGER NOT NULL DEFAULT 0,
	is_dance         INTEGER NOT NULL DEFAULT 0,
	is_country       INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (playlist_id, position)
);

CREATE TABLE IF NOT EXISTS track_artists (
	playlist_id  TEXT    NOT NULL,
	position     INTEGER NOT NULL,
	artist_index INTEGER NOT NULL,
	artist_id    TEXT    NOT NULL,
	artist_name  TEXT    NOT NULL,
	PRIMARY KEY (playlist_id, position, artist_index)
);

CREATE INDEX IF NOT EXISTS idx_track_artists_artist ON track_artists(artist_id);
`

// SQLite writes rows into the database at path, creating the schema if
// needed. Existing rows for playlistID are replaced.
func SQLite(ctx context.Context, path, playlistID string, rows []analysis.Row) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return WriteSQLite(ctx, db, playlistID, rows)
}

// WriteSQLite writes rows into an open database.
func WriteSQLite(ctx context.Context, db *sql.DB, playlistID string, rows []analysis.Row) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM track_artists WHERE playlist_id = ?`, playlistID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tracks WHERE playlist_id = ?`, playlistID); err != nil {
			return err
		}

		trackStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tracks (
				playlist_id, position, id, track_name,
				danceability, energy, "key", loudness, mode, speechiness,
				acousticness, instrumentalness, liveness, valence, tempo,
				duration_ms, time_signature, genres,
				is_pop, is_rap, is_dance, is_country
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer trackStmt.Close()

		artistStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO track_artists (playlist_id, position, artist_index, artist_id, artist_name)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer artistStmt.Close()

		for pos, r := range rows {
			if _, err := trackStmt.ExecContext(ctx,
				playlistID, pos, r.ID, r.TrackName,
				r.Danceability, r.Energy, r.Key, r.Loudness, r.Mode, r.Speechiness,
				r.Acousticness, r.Instrumentalness, r.Liveness, r.Valence, r.Tempo,
				r.DurationMS, r.TimeSignature, strings.Join(r.Genres, ListSeparator),
				r.IsPop, r.IsRap, r.IsDance, r.IsCountry,
			); err != nil {
				return fmt.Errorf("failed to insert track %s: %w", r.ID, err)
			}

			for i, id := range r.ArtistIDs {
				name := ""
				if i < len(r.ArtistNames) {
					name = r.ArtistNames[i]
				}
				if _, err := artistStmt.ExecContext(ctx, playlistID, pos, i, id, name); err != nil {
					return fmt.Errorf("failed to insert artist %s: %w", id, err)
				}
			}
		}
		return nil
	})
}

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
