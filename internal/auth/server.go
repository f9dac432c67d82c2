package auth

import (
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	db         DBOps
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewServer(db DBOps, jwtSecret []byte, accessTTL, refreshTTL time.Duration) *Server {
	return &Server{
		db:         db,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Router is mounted at /auth. Register, login and refresh are open;
// /me sits behind the bearer middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Post("/refresh", s.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(Middleware(s.jwtSecret))
		r.Get("/me", s.handleMe)
	})

	return r
}
