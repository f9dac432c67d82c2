package playlist

import (
	"context"

	"github.com/jackc/pgx/v5"

	"hoot-music-api/internal/catalog"
)

// shape computes the derived view fields from already-resolved member
// songs. A song with no known duration counts as zero seconds.
func shape(p Playlist, songs []catalog.Song) View {
	total := 0
	for _, s := range songs {
		if s.Duration != nil {
			total += *s.Duration
		}
	}
	return View{
		Playlist:      p,
		Songs:         songs,
		TrackCount:    len(songs),
		TotalDuration: total,
	}
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// resolveSongs expands a playlist's membership into full song records,
// title ascending. A member whose song row has been removed out-of-band
// simply drops out of the join.
func resolveSongs(ctx context.Context, q queryer, playlistID string) ([]catalog.Song, error) {
	rows, err := q.Query(ctx, `
		SELECT s.id, s.title, s.artist, s.album, s.year, s.duration,
		       s.cover_url, s.genre, s.source, s.created_at, s.updated_at
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1
		ORDER BY s.title ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []catalog.Song{}
	for rows.Next() {
		var sn catalog.Song
		if err := rows.Scan(
			&sn.ID,
			&sn.Title,
			&sn.Artist,
			&sn.Album,
			&sn.Year,
			&sn.Duration,
			&sn.CoverURL,
			&sn.Genre,
			&sn.Source,
			&sn.CreatedAt,
			&sn.UpdatedAt,
		); err != nil {
			return nil, err
		}
		songs = append(songs, sn)
	}
	return songs, rows.Err()
}
