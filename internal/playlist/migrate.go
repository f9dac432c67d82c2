package playlist

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutoMigrate runs after the catalogue migration so playlist_songs can
// reference songs by id. song_id deliberately carries no foreign key:
// a song deleted from the catalogue leaves a dangling member that the
// resolve join silently skips.
func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          owner_id    uuid NOT NULL,
          name        TEXT NOT NULL,
          description TEXT NOT NULL DEFAULT '',
          is_public   BOOLEAN NOT NULL DEFAULT FALSE,
          cover_url   TEXT NOT NULL DEFAULT '',
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("migrate playlists: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_playlists_owner ON playlists (owner_id)
    `); err != nil {
		return err
	}

	// The primary key doubles as the dedup guard for membership.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_songs (
          playlist_id uuid NOT NULL REFERENCES playlists (id) ON DELETE CASCADE,
          song_id     uuid NOT NULL,
          position    INT NOT NULL,
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          PRIMARY KEY (playlist_id, song_id)
      )
    `); err != nil {
		log.Printf("migrate playlist_songs: %v", err)
		return err
	}

	return nil
}
