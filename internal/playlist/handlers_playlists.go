package playlist

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"hoot-music-api/internal/catalog"
)

// handleListPlaylists returns the caller's playlists, most recently
// updated first, each with membership resolved.
func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		log.Printf("playlist: list playlists: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var p Playlist
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Description,
			&p.IsPublic,
			&p.CoverURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			log.Printf("playlist: list playlists scan: %v", err)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("playlist: list playlists rows: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	views := []View{}
	for _, p := range playlists {
		songs, err := resolveSongs(ctx, s.db, p.ID)
		if err != nil {
			log.Printf("playlist: list playlists resolve: %v", err)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		views = append(views, shape(p, songs))
	}

	writeJSON(w, http.StatusOK, views)
}

// handleCreatePlaylist creates an empty playlist owned by the caller.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := currentUserID(r)
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPublic    bool   `json:"isPublic"`
		CoverURL    string `json:"coverUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)
	body.CoverURL = strings.TrimSpace(body.CoverURL)

	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !isHTTPURL(body.CoverURL) {
		writeError(w, http.StatusBadRequest, "coverUrl must be an http(s) URL")
		return
	}

	var p Playlist
	err := s.db.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description, is_public, cover_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+playlistColumns+`
	`, ownerID, body.Name, body.Description, body.IsPublic, body.CoverURL).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.IsPublic,
		&p.CoverURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		log.Printf("playlist: create playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	// Membership is empty by construction.
	writeJSON(w, http.StatusCreated, shape(p, []catalog.Song{}))
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	p, ok := requireOwned(ctx, w, s.db, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	songs, err := resolveSongs(ctx, s.db, p.ID)
	if err != nil {
		log.Printf("playlist: get playlist resolve: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, shape(p, songs))
}

// handlePatchPlaylist applies a partial metadata update. Only fields
// present in the body change; owner is immutable.
func (s *Server) handlePatchPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsPublic    *bool   `json:"isPublic"`
		CoverURL    *string `json:"coverUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		log.Printf("playlist: patch begin tx: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer tx.Rollback(ctx)

	p, ok := requireOwned(ctx, w, tx, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		p.Name = name
	}
	if body.Description != nil {
		p.Description = strings.TrimSpace(*body.Description)
	}
	if body.IsPublic != nil {
		p.IsPublic = *body.IsPublic
	}
	if body.CoverURL != nil {
		cover := strings.TrimSpace(*body.CoverURL)
		if !isHTTPURL(cover) {
			writeError(w, http.StatusBadRequest, "coverUrl must be an http(s) URL")
			return
		}
		p.CoverURL = cover
	}

	_, err = tx.Exec(ctx, `
		UPDATE playlists
		SET name = $2,
			description = $3,
			is_public = $4,
			cover_url = $5,
			updated_at = now()
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.IsPublic, p.CoverURL)
	if err != nil {
		log.Printf("playlist: patch update: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("playlist: patch commit: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	songs, err := resolveSongs(ctx, s.db, p.ID)
	if err != nil {
		log.Printf("playlist: patch resolve: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, shape(p, songs))
}

// handlePatchCover updates only the cover image URL.
func (s *Server) handlePatchCover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		CoverURL string `json:"coverUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	cover := strings.TrimSpace(body.CoverURL)
	if !isHTTPURL(cover) {
		writeError(w, http.StatusBadRequest, "coverUrl must be an http(s) URL")
		return
	}

	p, ok := requireOwned(ctx, w, s.db, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE playlists
		SET cover_url = $2, updated_at = now()
		WHERE id = $1
	`, p.ID, cover); err != nil {
		log.Printf("playlist: patch cover: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	p.CoverURL = cover

	songs, err := resolveSongs(ctx, s.db, p.ID)
	if err != nil {
		log.Printf("playlist: patch cover resolve: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, shape(p, songs))
}

// handleDeletePlaylist removes the record outright; embedded membership
// rows go with it.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		log.Printf("playlist: delete begin tx: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer tx.Rollback(ctx)

	p, ok := requireOwned(ctx, w, tx, chi.URLParam(r, "id"), userID)
	if !ok {
		return
	}

	if _, err := tx.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, p.ID); err != nil {
		log.Printf("playlist: delete exec: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("playlist: delete commit: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
