package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// DB is the subset of pgxpool.Pool the catalogue uses. It allows a mock
// to be injected for testing.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Server struct {
	db  DB
	rdb *redis.Client
}

// NewServer wires the catalogue handlers. rdb may be nil; the search
// cache is then disabled.
func NewServer(db DB, rdb *redis.Client) *Server {
	return &Server{
		db:  db,
		rdb: rdb,
	}
}

// Router is mounted at /songs.
func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/", s.handleSearchSongs)

	// Seeded data only; see handleCatalogReadOnly.
	r.Post("/", s.handleCatalogReadOnly)
	r.Put("/{id}", s.handleCatalogReadOnly)
	r.Patch("/{id}", s.handleCatalogReadOnly)
	r.Delete("/{id}", s.handleCatalogReadOnly)

	return r
}

func (s *Server) handleCatalogReadOnly(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "catalogue is read-only")
}
