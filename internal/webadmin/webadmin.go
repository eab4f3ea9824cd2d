// ABOUTME: Dashboard web UI: route registration, session gate and shell state
// ABOUTME: Every page in the route tree is mounted behind the gate middleware

package webadmin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/K25anjali/local-Konnect/internal/client"
	"github.com/K25anjali/local-Konnect/internal/dedupe"
	"github.com/K25anjali/local-Konnect/internal/nav"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/routes"
	"github.com/K25anjali/local-Konnect/internal/session"
)

const (
	// CSRFCookieName is the name of the CSRF token cookie
	CSRFCookieName = "konnect_csrf"

	// ShellCookieName identifies the browser's navigation shell
	ShellCookieName = "konnect_shell"

	// FlashCookieName carries a one-shot toast across a redirect
	FlashCookieName = "konnect_flash"

	// TokenCookieMaxAge bounds how long the browser keeps the credential token
	TokenCookieMaxAge = 7 * 24 * time.Hour

	// SubmissionWindow is how long an identical create form is treated as a resubmission
	SubmissionWindow = 3 * time.Second
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	gateContextKey     contextKey = "session_gate"
	csrfContextKey     contextKey = "csrf_token"
	shellContextKey    contextKey = "shell_id"
	locationContextKey contextKey = "page_location"
	submitContextKey   contextKey = "submission_key"
)

// Config holds dashboard configuration
type Config struct {
	// APIBaseURL is where the REST backend is reached
	APIBaseURL string

	// CookieSecure marks cookies Secure regardless of the request scheme
	CookieSecure bool

	// HTTPClient overrides the client used for API calls
	HTTPClient *http.Client
}

// Admin serves the dashboard
type Admin struct {
	config      Config
	client      *client.Client
	templates   map[string]*template.Template
	shells      *nav.Shells
	submissions *dedupe.Cache
	tree        routes.Tree
	faqs        []faqEntry
	logger      *slog.Logger
}

// New creates the dashboard handler
func New(cfg Config) (*Admin, error) {
	if cfg.APIBaseURL == "" {
		return nil, errors.New("webadmin: api base url is required")
	}

	var opts []client.Option
	if cfg.HTTPClient != nil {
		opts = append(opts, client.WithHTTPClient(cfg.HTTPClient))
	}

	faqs, err := loadFAQs()
	if err != nil {
		return nil, fmt.Errorf("loading faqs: %w", err)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	a := &Admin{
		config:      cfg,
		client:      client.New(cfg.APIBaseURL, session.Session{}, opts...),
		templates:   templates,
		shells:      nav.NewShells(),
		submissions: dedupe.New(SubmissionWindow, 1024),
		faqs:        faqs,
		logger:      slog.Default().With("component", "webadmin"),
	}
	a.tree = a.Routes()
	return a, nil
}

// Close releases background resources
func (a *Admin) Close() {
	a.submissions.Close()
}

// Handler returns the dashboard mux wrapped in request logging
func (a *Admin) Handler() http.Handler {
	mux := http.NewServeMux()
	a.RegisterRoutes(mux)
	return a.logRequests(mux)
}

// RegisterRoutes registers every page of the route tree and the form actions
func (a *Admin) RegisterRoutes(mux *http.ServeMux) {
	mounted := map[string]string{"/": "not found"}
	for _, route := range routes.Flatten(a.tree) {
		if !strings.HasPrefix(route.Address, "/") {
			a.logger.Warn("skipping page with relative address", "page", route.Name, "address", route.Address)
			continue
		}
		if first, ok := mounted[route.Address]; ok {
			a.logger.Warn("skipping page with duplicate address",
				"page", route.Name, "address", route.Address, "mounted", first)
			continue
		}
		mounted[route.Address] = route.Name
		mux.Handle("GET "+route.Address, a.gated(route.Page))
	}

	// Unknown addresses still pass through the gate so "/" and bare areas redirect
	mux.Handle("GET /", a.gated(http.HandlerFunc(a.handleNotFound)))

	mux.Handle("POST "+session.SignInAddress, a.gated(a.requireCSRF(a.handleSignIn)))
	mux.Handle("POST /admin/sign-out", a.gated(http.HandlerFunc(a.handleSignOut)))
	mux.Handle("POST /admin/nav/toggle", a.gated(a.requireCSRF(a.handleNavToggle)))

	mux.Handle("POST /admin/roles", a.gated(a.requireCSRF(a.once(a.handleRoleSave))))
	mux.Handle("POST /admin/roles/{id}", a.gated(a.requireCSRF(a.handleRoleSave)))
	mux.Handle("POST /admin/roles/{id}/delete", a.gated(a.requireCSRF(a.handleRoleDelete)))

	mux.Handle("POST /admin/team", a.gated(a.requireCSRF(a.once(a.handleTeamSave))))
	mux.Handle("POST /admin/team/{id}", a.gated(a.requireCSRF(a.handleTeamSave)))
	mux.Handle("POST /admin/team/{id}/delete", a.gated(a.requireCSRF(a.handleTeamDelete)))

	mux.Handle("POST /admin/categories", a.gated(a.requireCSRF(a.once(a.handleCategorySave))))
	mux.Handle("POST /admin/categories/{id}", a.gated(a.requireCSRF(a.handleCategorySave)))
	mux.Handle("POST /admin/categories/{id}/delete", a.gated(a.requireCSRF(a.handleCategoryDelete)))

	mux.Handle("POST /admin/community/{id}/delete", a.gated(a.requireCSRF(a.handleMemberDelete)))
	mux.Handle("POST /admin/profile", a.gated(a.requireCSRF(a.handleProfileSave)))

	a.logger.Info("dashboard routes registered", "pages", len(mounted)-1)
}

// gated boots the session gate from the request cookies and applies its
// redirect decision before next runs.
func (a *Admin) gated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gate, err := session.Boot(session.CookieSource{Request: r})
		if err != nil {
			a.logger.Warn("session boot failed", "error", err)
		}

		if to, ok := gate.Redirect(r.URL.Path); ok {
			http.Redirect(w, r, to, http.StatusSeeOther)
			return
		}

		r, _ = a.ensureCSRFToken(w, r)
		if gate.State() == session.Authenticated {
			r = a.ensureShell(w, r)
		}

		ctx := context.WithValue(r.Context(), gateContextKey, gate)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// once drops a create form that repeats one from the same shell inside
// SubmissionWindow, sending the browser back to the listing instead.
func (a *Admin) once(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		key := dedupe.SubmissionKey(getShellID(r), r.URL.Path, r.PostForm, "csrf_token")
		if a.submissions.Record(key) {
			a.logger.Info("duplicate submission dropped", "path", r.URL.Path)
			http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(context.WithValue(r.Context(), submitContextKey, key)))
		if rec.status >= http.StatusBadRequest {
			a.submissions.Forget(key)
		}
	}
}

// forgetSubmission lets a failed create be retried at once
func (a *Admin) forgetSubmission(r *http.Request) {
	if key, ok := r.Context().Value(submitContextKey).(string); ok {
		a.submissions.Forget(key)
	}
}

// getSession returns the session booted for this request
func getSession(r *http.Request) session.Session {
	gate, _ := r.Context().Value(gateContextKey).(*session.Gate)
	if gate == nil {
		return session.Session{}
	}
	return gate.Session()
}

// services returns the resource services acting as the request's session
func (a *Admin) services(r *http.Request) *resources.Services {
	return resources.New(a.client.WithSession(getSession(r)))
}

// ensureShell makes sure the browser has a shell ID and its state is mounted
func (a *Admin) ensureShell(w http.ResponseWriter, r *http.Request) *http.Request {
	id := ""
	if cookie, err := r.Cookie(ShellCookieName); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		var err error
		id, err = generateSecureToken(16)
		if err != nil {
			a.logger.Error("failed to generate shell id", "error", err)
			return r
		}
		http.SetCookie(w, &http.Cookie{
			Name:     ShellCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   a.secure(r),
			SameSite: http.SameSiteLaxMode,
		})
	}

	a.shells.Mount(id)
	return r.WithContext(context.WithValue(r.Context(), shellContextKey, id))
}

// getShellID retrieves the shell ID from the request context
func getShellID(r *http.Request) string {
	id, _ := r.Context().Value(shellContextKey).(string)
	return id
}

// expansion returns the expansion state of the request's shell, or nil
func (a *Admin) expansion(r *http.Request) *nav.Expansion {
	id := getShellID(r)
	if id == "" {
		return nil
	}
	return a.shells.Mount(id)
}

// endSession clears the credential and unmounts the shell
func (a *Admin) endSession(w http.ResponseWriter, r *http.Request) {
	if id := getShellID(r); id != "" {
		a.shells.Unmount(id)
	}
	for _, name := range []string{session.TokenKey, ShellCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}

func (a *Admin) secure(r *http.Request) bool {
	return a.config.CookieSecure || r.TLS != nil
}

// logRequests logs one line per request
func (a *Admin) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		a.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// generateSecureToken generates a cryptographically secure random token
func generateSecureToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
