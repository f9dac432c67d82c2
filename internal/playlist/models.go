package playlist

import (
	"time"

	"hoot-music-api/internal/catalog"
)

// Playlist is the stored record. Membership is modelled separately in
// the playlist_songs table; responses always carry it resolved (see
// View).
type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CoverURL    string    `json:"coverUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// View is a playlist as returned to callers: membership resolved to
// full song records (title ascending) plus the derived stats. The
// derived fields are recomputed on every response, never stored.
type View struct {
	Playlist
	Songs         []catalog.Song `json:"songs"`
	TrackCount    int            `json:"trackCount"`
	TotalDuration int            `json:"totalDuration"`
}

const playlistColumns = `id, owner_id, name, description, is_public, cover_url, created_at, updated_at`
