package playlist

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the playlist handlers use. It allows
// a mock to be injected for testing.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Server struct {
	db DB
}

func NewServer(db DB) *Server {
	return &Server{db: db}
}

// Router is mounted at /playlists, behind the bearer middleware.
func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/", s.handleListPlaylists)
	r.Post("/", s.handleCreatePlaylist)
	r.Get("/{id}", s.handleGetPlaylist)
	r.Patch("/{id}", s.handlePatchPlaylist)
	r.Patch("/{id}/cover", s.handlePatchCover)
	r.Delete("/{id}", s.handleDeletePlaylist)

	r.Post("/{id}/songs", s.handleAddSong)
	r.Delete("/{id}/songs/{songId}", s.handleRemoveSong)

	return r
}
