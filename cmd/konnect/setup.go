// ABOUTME: init and bootstrap commands: write a config file and create the first admin
// ABOUTME: bootstrap writes straight to the database, the API need not be running

package main

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/K25anjali/local-Konnect/internal/auth"
	"github.com/K25anjali/local-Konnect/internal/config"
	"github.com/K25anjali/local-Konnect/internal/store"
)

func newInitCmd() *cobra.Command {
	var force, genSecret bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.ResolvePath(cfgFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.Default()
			if genSecret {
				secretBytes := make([]byte, 32)
				if _, err := rand.Read(secretBytes); err != nil {
					return fmt.Errorf("generating JWT secret: %w", err)
				}
				cfg.Auth.JWTSecret = base64.StdEncoding.EncodeToString(secretBytes)
			}

			if err := cfg.Save(path); err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("  ✓ Created config: %s\n", path)
			if !genSecret {
				color.New(color.FgYellow).Println("  Set KONNECT_JWT_SECRET (32+ bytes) before running `konnect api`.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().BoolVar(&genSecret, "generate-secret", false, "write a random JWT secret into the file")
	return cmd
}

func newBootstrapCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the first admin user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return errors.New("display name cannot be empty or whitespace only")
			}
			if len(name) > 100 {
				return errors.New("display name exceeds maximum length of 100 characters")
			}

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}

			st, err := store.NewSQLiteStore(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer st.Close()

			color.New(color.FgGreen).Printf("  ✓ Database: %s\n", cfg.Database.Path)

			user := &store.User{
				Email:        strings.TrimSpace(email),
				FullName:     name,
				Role:         "admin",
				PasswordHash: hash,
			}
			if err := st.CreateUser(cmd.Context(), user); err != nil {
				if errors.Is(err, store.ErrEmailExists) {
					return fmt.Errorf("bootstrap already complete: %s exists", user.Email)
				}
				return fmt.Errorf("creating user: %w", err)
			}

			color.New(color.FgGreen).Printf("  ✓ Created admin user: %s <%s>\n", user.FullName, user.Email)
			fmt.Println()
			fmt.Print("  Sign in at ")
			color.New(color.FgCyan).Printf("http://%s/auth/sign-in\n", cfg.Server.HTTPAddr)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVarP(&name, "name", "n", "", "admin display name")
	cmd.Flags().StringVar(&password, "password", "", "admin password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
