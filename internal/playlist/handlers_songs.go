package playlist

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// handleAddSong appends a catalogue song to a playlist. Adding a song
// that is already a member is a no-op that still returns the shaped
// playlist, and only a real insert bumps updated_at.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validID(body.SongID) {
		writeError(w, http.StatusBadRequest, "invalid songId")
		return
	}

	p, ok := requireOwned(ctx, w, s.db, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	// The song must exist in the catalogue at add time. References can
	// dangle afterwards; the resolve join just drops them.
	var songID string
	err := s.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, body.SongID).Scan(&songID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusBadRequest, "invalid songId")
		return
	}
	if err != nil {
		log.Printf("playlist: add song lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	tag, err := s.db.Exec(ctx, `
		INSERT INTO playlist_songs (playlist_id, song_id, position)
		VALUES ($1, $2, COALESCE((SELECT MAX(position) + 1 FROM playlist_songs WHERE playlist_id = $1), 0))
		ON CONFLICT (playlist_id, song_id) DO NOTHING
	`, p.ID, songID)
	if err != nil {
		log.Printf("playlist: add song insert: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if tag.RowsAffected() > 0 {
		if _, err := s.db.Exec(ctx, `UPDATE playlists SET updated_at = now() WHERE id = $1`, p.ID); err != nil {
			log.Printf("playlist: add song touch: %v", err)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
	}

	songs, err := resolveSongs(ctx, s.db, p.ID)
	if err != nil {
		log.Printf("playlist: add song resolve: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, shape(p, songs))
}

// handleRemoveSong detaches a song from a playlist. Removing a song
// that is not a member succeeds without touching updated_at.
func (s *Server) handleRemoveSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	songID := chi.URLParam(r, "songId")
	if !validID(songID) {
		writeError(w, http.StatusBadRequest, "invalid songId")
		return
	}

	p, ok := requireOwned(ctx, w, s.db, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	tag, err := s.db.Exec(ctx, `
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
	`, p.ID, songID)
	if err != nil {
		log.Printf("playlist: remove song: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if tag.RowsAffected() > 0 {
		if _, err := s.db.Exec(ctx, `UPDATE playlists SET updated_at = now() WHERE id = $1`, p.ID); err != nil {
			log.Printf("playlist: remove song touch: %v", err)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
	}

	songs, err := resolveSongs(ctx, s.db, p.ID)
	if err != nil {
		log.Printf("playlist: remove song resolve: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, shape(p, songs))
}
