package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// searchLimit caps every catalogue listing; there is no pagination.
const searchLimit = 200

func (s *Server) handleSearchSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	source := strings.TrimSpace(r.URL.Query().Get("source"))
	if len(q) > 200 {
		writeError(w, http.StatusBadRequest, "search term is too long")
		return
	}

	if payload, ok := s.cacheGet(ctx, q, source); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	sql := `SELECT ` + songColumns + ` FROM songs`
	var (
		where []string
		args  []any
	)
	if source != "" {
		args = append(args, source)
		where = append(where, fmt.Sprintf("source = $%d", len(args)))
	}
	if q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(title ILIKE $%d ESCAPE '\' OR artist ILIKE $%d ESCAPE '\' OR album ILIKE $%d ESCAPE '\')`,
			n, n, n,
		))
	}
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY title ASC LIMIT %d", searchLimit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		log.Printf("catalog: search songs: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var sn Song
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
			log.Printf("catalog: search songs scan: %v", err)
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}
		songs = append(songs, sn)
	}
	if err := rows.Err(); err != nil {
		log.Printf("catalog: search songs rows: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	if payload, err := json.Marshal(songs); err == nil {
		s.cacheSet(ctx, q, source, payload)
	}

	writeJSON(w, http.StatusOK, songs)
}

// escapeLike neutralizes LIKE metacharacters so the search term matches
// literally.
func escapeLike(term string) string {
	rep := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return rep.Replace(term)
}
