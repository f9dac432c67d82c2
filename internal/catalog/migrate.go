package catalog

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		log.Printf("migrate catalog: pgcrypto: %v", err)
		return err
	}

	// duration_raw keeps textual durations from older imports until the
	// seeder's normalization pass folds them into duration.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          title        TEXT NOT NULL,
          artist       TEXT NOT NULL,
          album        TEXT NOT NULL DEFAULT '',
          year         INT,
          duration     INT,
          duration_raw TEXT NOT NULL DEFAULT '',
          cover_url    TEXT NOT NULL DEFAULT '',
          genre        TEXT NOT NULL DEFAULT '',
          source       TEXT NOT NULL DEFAULT '',
          created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("migrate catalog: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE INDEX IF NOT EXISTS idx_songs_title ON songs (title)
    `); err != nil {
		return err
	}

	return nil
}
