// Package server wires the HTTP server: router, middleware, routes, and the
// dependency graph behind them.
//
// This is the composition root — the one place that knows how everything
// fits together. main.go stays minimal (read config, build logger, start),
// and each layer below receives only the interfaces it needs:
//
//	New() creates: sqlite.DB → services → handlers → routes
//
// Keeping the wiring out of main also makes integration tests cheap: a test
// can build a full Server over an in-memory database and drive it through
// httptest without starting a listener.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/notekeeper/internal/auth"
	"github.com/sakif/notekeeper/internal/config"
	"github.com/sakif/notekeeper/internal/handler"
	"github.com/sakif/notekeeper/internal/middleware"
	sqliteRepo "github.com/sakif/notekeeper/internal/repository/sqlite"
	"github.com/sakif/notekeeper/internal/service"
)

// Server owns the router and the resources behind it. The database
// connection belongs to the Server and is closed during shutdown — skipping
// that can leave the SQLite WAL unflushed.
type Server struct {
	router *chi.Mux
	config *config.Server
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain and registers all routes.
func New(cfg *config.Server, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// Handler exposes the router so tests can mount the whole server on an
// httptest.Server without touching the network stack.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures middleware and registers every endpoint.
//
// ROUTE TABLE:
//
//	POST   /auth/signup      → register, returns user + token
//	POST   /auth/login       → authenticate, returns user + token
//	GET    /auth/profile     → current user (bearer token required)
//	GET    /note/notes       → list notes (bearer token required)
//	POST   /note/notes       → create note (bearer token required)
//	PUT    /note/notes/{id}  → update note (bearer token required)
//	DELETE /note/notes/{id}  → delete note (bearer token required)
//
// Middleware order matters — it runs in registration order: request ID,
// real IP, panic recovery, then request logging.
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	tokens, err := auth.NewTokenService(s.config.JWTSecret, s.config.TokenTTL)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	noteService := service.NewNoteService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	noteHandler := handler.NewNoteHandler(noteService, s.logger)

	requireAuth := auth.Middleware(tokens)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/profile", authHandler.HandleProfile)
		})
	})

	s.router.Route("/note", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/notes", noteHandler.HandleList)
		r.Post("/notes", noteHandler.HandleCreate)
		r.Put("/notes/{id}", noteHandler.HandleUpdate)
		r.Delete("/notes/{id}", noteHandler.HandleDelete)
	})

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
