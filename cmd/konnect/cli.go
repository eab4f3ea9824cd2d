// ABOUTME: Client-side commands: login, logout, roles and routes
// ABOUTME: The CLI token lives in a credentials file under the user's config directory

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/K25anjali/local-Konnect/internal/client"
	"github.com/K25anjali/local-Konnect/internal/config"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/routes"
	"github.com/K25anjali/local-Konnect/internal/session"
	"github.com/K25anjali/local-Konnect/internal/webadmin"
)

// apiBaseURL returns the configured API URL, falling back to the default
// when no config file exists.
func apiBaseURL() string {
	cfg, _, err := loadConfig()
	if err != nil {
		return config.Default().API.BaseURL
	}
	return cfg.API.BaseURL
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the token for later commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Print("Password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			form := resources.SignInForm{Email: strings.TrimSpace(email), Password: password}
			if errs := resources.Validate(form); errs != nil {
				return errors.New(errs.First("email", "password"))
			}

			c := client.New(apiBaseURL(), session.Session{})
			res, err := c.Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				if msg := client.MessageOf(err); msg != "" {
					return errors.New(msg)
				}
				return err
			}

			fs := session.NewFileStore(session.DefaultStorePath())
			if err := fs.Set(session.TokenKey, res.Token); err != nil {
				return fmt.Errorf("saving token: %w", err)
			}
			color.New(color.FgGreen).Printf("  ✓ Signed in as %s\n", res.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(_ *cobra.Command, _ []string) error {
			fs := session.NewFileStore(session.DefaultStorePath())
			if err := fs.Delete(session.TokenKey); err != nil {
				return fmt.Errorf("removing token: %w", err)
			}
			color.New(color.FgGreen).Println("  ✓ Signed out")
			return nil
		},
	}
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List roles and their permissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gate, err := session.Boot(session.NewFileStore(session.DefaultStorePath()))
			if err != nil {
				return err
			}
			if gate.State() != session.Authenticated {
				return errors.New("not signed in (run `konnect login`)")
			}

			svc := resources.New(client.New(apiBaseURL(), gate.Session()))
			roles, err := svc.Roles.List(cmd.Context())
			if err != nil {
				if errors.Is(err, client.ErrUnauthorized) {
					return errors.New("stored token was rejected (run `konnect login`)")
				}
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ROLE\tDESCRIPTION\tPERMISSIONS")
			for _, r := range roles {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Title, r.Description, strings.Join(r.Permissions, ","))
			}
			return tw.Flush()
		},
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the dashboard's page table",
		RunE: func(_ *cobra.Command, _ []string) error {
			admin, err := webadmin.New(webadmin.Config{APIBaseURL: apiBaseURL()})
			if err != nil {
				return err
			}
			defer admin.Close()

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ADDRESS\tPAGE")
			for _, r := range routes.Flatten(admin.Routes()) {
				fmt.Fprintf(tw, "%s\t%s\n", r.Address, r.Name)
			}
			return tw.Flush()
		},
	}
}
