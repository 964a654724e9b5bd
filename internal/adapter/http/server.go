package adapthttp

import (
	"net/http"

	"healthlog/internal/app"
	"healthlog/internal/logging"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth      *app.AuthService
	users     *app.UserService
	moods     *app.MoodService
	water     *app.WaterService
	pedometer *app.PedometerService
	log       logging.Logger
	oidc      *OIDCConfig
}

// New creates a Server wired to the given application services.
func New(
	auth *app.AuthService,
	users *app.UserService,
	moods *app.MoodService,
	water *app.WaterService,
	pedometer *app.PedometerService,
	log logging.Logger,
) *Server {
	return &Server{
		auth:      auth,
		users:     users,
		moods:     moods,
		water:     water,
		pedometer: pedometer,
		log:       log,
	}
}

// WithOIDC enables single sign-on through an OpenID Connect provider.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	s.oidc = cfg
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("POST /users/login", s.handleLogin)
	mux.HandleFunc("POST /users/register", s.handleRegister)
	mux.HandleFunc("GET /users/sso/login", s.handleSSOLogin)
	mux.HandleFunc("GET /users/sso/callback", s.handleSSOCallback)

	mux.Handle("GET /users/{user_id}", s.guard(http.HandlerFunc(s.handleGetUser)))
	mux.Handle("PUT /users/{user_id}", s.guard(http.HandlerFunc(s.handleUpdateUser)))
	mux.Handle("DELETE /users/{user_id}", s.guard(http.HandlerFunc(s.handleDeleteUser)))

	registerEntryRoutes(s, mux, "moods", s.moods)
	registerEntryRoutes(s, mux, "water_intake", s.water)
	registerEntryRoutes(s, mux, "pedometer_entries", s.pedometer)

	return s.loggingMiddleware(withNoCache(mux))
}
