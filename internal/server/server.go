package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"fxledger/internal/handler"
	"fxledger/internal/middleware"
	"fxledger/internal/rates"
	"fxledger/internal/store"
)

type Server struct {
	db           *sql.DB
	authH        *handler.AuthHandler
	convertH     *handler.ConvertHandler
	recordH      *handler.RecordHandler
	ratesH       *handler.RatesHandler
	sessionStore *store.SessionStore
	userStore    *store.UserStore
	logger       *slog.Logger
}

func New(db *sql.DB, ratesClient *rates.Client, logger *slog.Logger) *Server {
	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	recordStore := store.NewRecordStore(db)

	return &Server{
		db:           db,
		authH:        handler.NewAuthHandler(userStore, sessionStore, logger.With("component", "auth")),
		convertH:     handler.NewConvertHandler(recordStore, ratesClient, logger.With("component", "convert")),
		recordH:      handler.NewRecordHandler(recordStore, logger.With("component", "records")),
		ratesH:       handler.NewRatesHandler(ratesClient, logger.With("component", "rates")),
		sessionStore: sessionStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Public routes (no auth required)
	mux.HandleFunc("POST /signup", s.authH.Signup)
	mux.HandleFunc("POST /login", s.authH.Login)
	mux.HandleFunc("GET /rate", s.ratesH.GetRate)
	mux.HandleFunc("GET /currencies", s.ratesH.Currencies)
	mux.HandleFunc("GET /trends", s.ratesH.Trends)
	mux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — each wrapped with RequireAuth
	requireAuth := middleware.RequireAuth(s.sessionStore, s.userStore)
	mux.Handle("DELETE /login", requireAuth(http.HandlerFunc(s.authH.Logout)))
	mux.Handle("POST /convert", requireAuth(http.HandlerFunc(s.convertH.Convert)))
	mux.Handle("GET /records", requireAuth(http.HandlerFunc(s.recordH.List)))
	mux.Handle("DELETE /records/{id}", requireAuth(http.HandlerFunc(s.recordH.Delete)))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.logger.Error("health check", "error", err)
		http.Error(w, `{"status":"unhealthy"}`, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
