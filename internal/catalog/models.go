package catalog

import (
	"time"
)

// Song is a catalogue entry. The catalogue is read-only from the API:
// rows are created by the seeding batch and never mutated or deleted
// through HTTP.
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Duration  *int      `json:"duration,omitempty"` // whole seconds
	CoverURL  string    `json:"coverUrl,omitempty"`
	Genre     string    `json:"genre,omitempty"`
	Source    string    `json:"source,omitempty"` // "catalog" for seeded rows
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const songColumns = `id, title, artist, album, year, duration, cover_url, genre, source, created_at, updated_at`
