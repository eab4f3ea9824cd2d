// ABOUTME: serve and api commands: run the dashboard and the REST backend
// ABOUTME: Both stop gracefully when the command context is cancelled

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/K25anjali/local-Konnect/internal/api"
	"github.com/K25anjali/local-Konnect/internal/auth"
	"github.com/K25anjali/local-Konnect/internal/store"
	"github.com/K25anjali/local-Konnect/internal/webadmin"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBanner()

			cfg, path, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Logging)

			statusLine("Config", path)
			statusLine("HTTP", cfg.Server.HTTPAddr)
			statusLine("API", cfg.API.BaseURL)
			fmt.Println()

			admin, err := webadmin.New(webadmin.Config{
				APIBaseURL:   cfg.API.BaseURL,
				CookieSecure: cfg.WebAdmin.CookieSecure,
			})
			if err != nil {
				return fmt.Errorf("creating dashboard: %w", err)
			}
			defer admin.Close()

			logger.Info("starting dashboard", "http_addr", cfg.Server.HTTPAddr, "api", cfg.API.BaseURL)
			return listen(cmd.Context(), cfg.Server.HTTPAddr, admin.Handler())
		},
	}
}

func newAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Start the REST backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBanner()

			cfg, path, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateAPI(); err != nil {
				return fmt.Errorf("validating config: %w", err)
			}
			logger := setupLogger(cfg.Logging)

			statusLine("Config", path)
			statusLine("HTTP", cfg.API.HTTPAddr)
			statusLine("Database", cfg.Database.Path)
			fmt.Println()

			st, err := store.NewSQLiteStore(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer st.Close()

			if cfg.API.Seed {
				if err := st.Seed(cmd.Context()); err != nil {
					return fmt.Errorf("seeding database: %w", err)
				}
			}

			issuer, err := auth.NewJWTIssuer([]byte(cfg.Auth.JWTSecret))
			if err != nil {
				return fmt.Errorf("creating token issuer: %w", err)
			}

			srv := api.New(api.Config{
				Addr:           cfg.API.HTTPAddr,
				AllowedOrigins: cfg.API.AllowedOrigins,
				RequestTimeout: cfg.API.RequestTimeout,
				TokenTTL:       cfg.Auth.TokenTTL,
			}, st, issuer)

			logger.Info("starting api", "http_addr", cfg.API.HTTPAddr, "database", cfg.Database.Path)
			return srv.Run(cmd.Context())
		},
	}
}

// listen serves h on addr until ctx is cancelled.
func listen(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
