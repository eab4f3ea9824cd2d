// ABOUTME: Entry point for konnect: the admin dashboard, its REST backend and CLI helpers
// ABOUTME: Commands are cobra subcommands sharing the --config flag

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/K25anjali/local-Konnect/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const banner = `
  _                 _   _  __                            _
 | | ___   ___ __ _| | | |/ /___  _ __  _ __   ___  ___| |_
 | |/ _ \ / __/ _' | | | ' // _ \| '_ \| '_ \ / _ \/ __| __|
 | | (_) | (_| (_| | | | . \ (_) | | | | | | |  __/ (__| |_
 |_|\___/ \___\__,_|_| |_|\_\___/|_| |_|_| |_|\___|\___|\__|
`

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "konnect",
		Short:         "Local Konnect admin dashboard",
		Long:          "konnect serves the Local Konnect admin dashboard and the REST backend it talks to.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default $"+config.EnvConfigPath+" or ~/.config/konnect/config.yaml)")

	root.AddCommand(
		newServeCmd(),
		newAPICmd(),
		newInitCmd(),
		newBootstrapCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newRolesCmd(),
		newRoutesCmd(),
	)
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config named by --config or the default locations.
func loadConfig() (*config.Config, string, error) {
	path := config.ResolvePath(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

func printBanner() {
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)
}

// statusLine prints one "▶ label: value" startup line.
func statusLine(label, value string) {
	color.New(color.FgGreen).Print("    ▶ ")
	fmt.Printf("%-10s %s\n", label+":", value)
}
