package catalog

import (
	"context"
	"fmt"
	"strings"
)

// SeedSong is a seed candidate. Duration is deliberately loose: the
// source lists carry "M:SS" strings, plain second counts, and numbers.
type SeedSong struct {
	Title    string
	Artist   string
	Album    string
	Duration any
	Genre    string
	CoverURL string
}

// SeedResult reports what a seeding run did. Warnings list entries whose
// duration could not be parsed; those candidates are still inserted,
// with an unknown duration.
type SeedResult struct {
	Scanned  int // legacy rows considered by the normalization pass
	Migrated int // legacy rows whose duration was converted
	Inserted int
	Skipped  int // candidates already present by (artist, title)
	Warnings []string
}

// seedKey builds the duplicate-suppression key for a candidate.
func seedKey(artist, title string) string {
	return strings.ToLower(artist) + "::" + strings.ToLower(title)
}

// Seed is the idempotent catalogue import. It first folds legacy textual
// durations into the integer column, then inserts candidates whose
// (artist, title) pair is not already present. Running it twice against
// the same store inserts each pair at most once.
func Seed(ctx context.Context, db DB, candidates []SeedSong) (SeedResult, error) {
	var res SeedResult

	if err := normalizeDurations(ctx, db, &res); err != nil {
		return res, fmt.Errorf("normalize durations: %w", err)
	}

	titles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		titles = append(titles, c.Title)
	}

	existing, err := existingSeedKeys(ctx, db, titles)
	if err != nil {
		return res, fmt.Errorf("load existing keys: %w", err)
	}

	for _, c := range candidates {
		key := seedKey(c.Artist, c.Title)
		if _, ok := existing[key]; ok {
			res.Skipped++
			continue
		}

		var duration *int
		if secs, ok := ParseDuration(c.Duration); ok {
			duration = &secs
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("unparseable duration for %s - %s: %v", c.Artist, c.Title, c.Duration))
		}

		_, err := db.Exec(ctx, `
			INSERT INTO songs (title, artist, album, duration, genre, cover_url, source)
			VALUES ($1, $2, $3, $4, $5, $6, 'catalog')
		`, c.Title, c.Artist, c.Album, duration, c.Genre, c.CoverURL)
		if err != nil {
			return res, fmt.Errorf("insert %s - %s: %w", c.Artist, c.Title, err)
		}

		existing[key] = struct{}{}
		res.Inserted++
	}

	return res, nil
}

// normalizeDurations converts rows whose duration survived an old import
// as text. Rows that fail to parse are left untouched and reported.
func normalizeDurations(ctx context.Context, db DB, res *SeedResult) error {
	rows, err := db.Query(ctx, `
		SELECT id, artist, title, duration_raw
		FROM songs
		WHERE duration IS NULL AND duration_raw <> ''
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type legacy struct {
		id, artist, title, raw string
	}
	var pending []legacy
	for rows.Next() {
		var l legacy
		if err := rows.Scan(&l.id, &l.artist, &l.title, &l.raw); err != nil {
			return err
		}
		pending = append(pending, l)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	res.Scanned = len(pending)
	for _, l := range pending {
		secs, ok := ParseDuration(l.raw)
		if !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("unparseable legacy duration for %s - %s: %q", l.artist, l.title, l.raw))
			continue
		}
		if _, err := db.Exec(ctx, `
			UPDATE songs
			SET duration = $2, duration_raw = '', updated_at = now()
			WHERE id = $1
		`, l.id, secs); err != nil {
			return err
		}
		res.Migrated++
	}
	return nil
}

// existingSeedKeys loads the dedup keys of catalogue-sourced rows that
// share a title with any candidate. Rows predating the source tag count
// as catalogue rows.
func existingSeedKeys(ctx context.Context, db DB, titles []string) (map[string]struct{}, error) {
	keys := map[string]struct{}{}
	if len(titles) == 0 {
		return keys, nil
	}

	rows, err := db.Query(ctx, `
		SELECT artist, title
		FROM songs
		WHERE (source = 'catalog' OR source = '') AND title = ANY($1)
	`, titles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var artist, title string
		if err := rows.Scan(&artist, &title); err != nil {
			return nil, err
		}
		keys[seedKey(artist, title)] = struct{}{}
	}
	return keys, rows.Err()
}
