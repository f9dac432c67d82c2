package playlist

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var httpURLRe = regexp.MustCompile(`(?i)^https?://.+`)

// isHTTPURL accepts the empty string or an http(s) URL. This is the one
// place coverUrl is validated; the schema carries no duplicate check.
func isHTTPURL(v string) bool {
	return v == "" || httpURLRe.MatchString(v)
}

func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// currentUserID reads the identity the bearer middleware resolved.
func currentUserID(r *http.Request) string {
	return r.Header.Get("X-User-Id")
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getPlaylist(ctx context.Context, q rowQuerier, id string) (Playlist, error) {
	var p Playlist
	err := q.QueryRow(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.IsPublic,
		&p.CoverURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// requireOwned is the single ownership gate every playlist operation
// goes through: malformed id, missing playlist, and non-owner caller
// are each rejected here. On failure it has already written the
// response and reports ok=false.
func requireOwned(ctx context.Context, w http.ResponseWriter, q rowQuerier, playlistID, userID string) (Playlist, bool) {
	if !validID(playlistID) {
		writeError(w, http.StatusBadRequest, "invalid playlist id")
		return Playlist{}, false
	}

	p, err := getPlaylist(ctx, q, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "playlist not found")
		return Playlist{}, false
	}
	if err != nil {
		log.Printf("playlist: fetch playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return Playlist{}, false
	}

	if p.OwnerID != userID {
		writeError(w, http.StatusForbidden, "forbidden")
		return Playlist{}, false
	}
	return p, true
}
