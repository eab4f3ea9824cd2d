// ABOUTME: Reference REST backend for the dashboard built on chi
// ABOUTME: Wires middleware, CORS, bearer auth and the resource routes

// Package api serves the REST endpoints the dashboard consumes.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/K25anjali/local-Konnect/internal/auth"
	"github.com/K25anjali/local-Konnect/internal/store"
)

// Config holds API server configuration.
type Config struct {
	Addr           string
	AllowedOrigins []string
	RequestTimeout time.Duration
	TokenTTL       time.Duration
}

// Server is the REST backend.
type Server struct {
	cfg        Config
	store      *store.SQLiteStore
	issuer     *auth.JWTIssuer
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a server over st that signs tokens with issuer.
func New(cfg Config, st *store.SQLiteStore, issuer *auth.JWTIssuer) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	s := &Server{
		cfg:    cfg,
		store:  st,
		issuer: issuer,
		logger: slog.Default().With("component", "api"),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/users/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.BearerMiddleware(s.store, s.issuer))

		r.Get("/api/users/me", s.handleGetMe)
		r.Put("/api/users/me", s.handleUpdateMe)
		r.Get("/api/stats", s.handleStats)

		r.Route("/api/roles", func(r chi.Router) {
			r.Get("/", s.handleListRoles)
			r.Post("/", s.handleCreateRole)
			r.Put("/{id}", s.handleUpdateRole)
			r.Delete("/{id}", s.handleDeleteRole)
		})

		r.Route("/api/admin-team", func(r chi.Router) {
			r.Get("/", s.handleListTeam)
			r.Post("/", s.handleCreateTeamMember)
			r.Put("/{id}", s.handleUpdateTeamMember)
			r.Delete("/{id}", s.handleDeleteTeamMember)
		})

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Post("/", s.handleCreateCategory)
			r.Put("/{id}", s.handleUpdateCategory)
			r.Delete("/{id}", s.handleDeleteCategory)
		})

		r.Get("/api/bookings", s.handleListBookings)
		r.Get("/api/tasks", s.handleListTasks)
		r.Get("/api/invoices", s.handleListInvoices)

		r.Get("/api/community", s.handleListMembers)
		r.Delete("/api/community/{id}", s.handleDeleteMember)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})

	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
