package auth

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		log.Printf("migrate auth: pgcrypto: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS users (
          id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          email      TEXT UNIQUE NOT NULL,
          password   TEXT NOT NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("migrate auth: %v", err)
		return err
	}

	return nil
}
