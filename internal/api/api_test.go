// ABOUTME: Tests for the REST backend against a real SQLite store
// ABOUTME: Drives the server through the dashboard's client and resource services

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K25anjali/local-Konnect/internal/auth"
	"github.com/K25anjali/local-Konnect/internal/client"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/session"
	"github.com/K25anjali/local-Konnect/internal/store"
)

var testSecret = []byte("konnect-api-test-secret-32bytes!")

const (
	testEmail    = "admin@konnect.test"
	testPassword = "correct-horse"
)

type testEnv struct {
	store  *store.SQLiteStore
	server *httptest.Server
	client *client.Client
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(context.Background(), &store.User{
		Email: testEmail, FullName: "Admin", Role: "admin", PasswordHash: hash,
	}))

	issuer, err := auth.NewJWTIssuer(testSecret)
	require.NoError(t, err)

	srv := New(Config{TokenTTL: time.Hour}, st, issuer)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{store: st, server: ts, client: client.New(ts.URL, session.Session{})}
}

func (e *testEnv) signIn(t *testing.T) *resources.Services {
	t.Helper()
	res, err := e.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	return resources.New(e.client.WithSession(session.New(res.Token)))
}

func TestHealthz(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	res, err := env.client.Login(ctx, "ADMIN@konnect.test", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, testEmail, res.User.Email)
	assert.Equal(t, "admin", res.User.Role)

	_, err = env.client.Login(ctx, testEmail, "wrong-password")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, invalidCredentials, client.MessageOf(err))

	_, err = env.client.Login(ctx, "nobody@konnect.test", testPassword)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, invalidCredentials, client.MessageOf(err))

	_, err = env.client.Login(ctx, "not-an-email", testPassword)
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Equal(t, "Invalid email format", client.MessageOf(err))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestServer(t)

	_, err := resources.New(env.client).Roles.List(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	bad := resources.New(env.client.WithSession(session.New("forged")))
	_, err = bad.Reports.Bookings(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestRoles_CRUD(t *testing.T) {
	env := setupTestServer(t)
	svc := env.signIn(t)
	ctx := context.Background()

	roles, err := svc.Roles.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)

	created, err := svc.Roles.Create(ctx, resources.RoleForm{Title: "Support", Description: "Helps", Permissions: []string{"read"}})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.Roles.Update(ctx, created.ID, resources.RoleForm{Title: "Support", Description: "Helps", Permissions: []string{"read", "update"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "update"}, updated.Permissions)

	_, err = svc.Roles.Create(ctx, resources.RoleForm{Description: "x", Permissions: []string{"read"}})
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Equal(t, "Role name is required", client.MessageOf(err))

	require.NoError(t, svc.Roles.Delete(ctx, created.ID))
	err = svc.Roles.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestTeam_DuplicateEmail(t *testing.T) {
	env := setupTestServer(t)
	svc := env.signIn(t)
	ctx := context.Background()

	form := resources.TeamForm{FullName: "Ravi", Email: "ravi@konnect.test", Phone: "98765", Role: "Support"}
	_, err := svc.Team.Create(ctx, form)
	require.NoError(t, err)

	_, err = svc.Team.Create(ctx, form)
	assert.ErrorIs(t, err, client.ErrInvalid)

	members, err := svc.Team.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestCategories_DefaultStatus(t *testing.T) {
	env := setupTestServer(t)
	svc := env.signIn(t)
	ctx := context.Background()

	cat, err := svc.Categories.Create(ctx, resources.CategoryForm{Name: "Plumbing"})
	require.NoError(t, err)
	assert.Equal(t, "Active", cat.Status)

	cat, err = svc.Categories.Update(ctx, cat.ID, resources.CategoryForm{Name: "Plumbing", Status: "Inactive"})
	require.NoError(t, err)
	assert.Equal(t, "Inactive", cat.Status)

	_, err = svc.Categories.Update(ctx, "missing", resources.CategoryForm{Name: "x", Status: "Active"})
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestReportsAndCommunity(t *testing.T) {
	env := setupTestServer(t)
	require.NoError(t, env.store.Seed(context.Background()))
	svc := env.signIn(t)
	ctx := context.Background()

	bookings, err := svc.Reports.Bookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 5)

	tasks, err := svc.Reports.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	invoices, err := svc.Reports.Invoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 5)
	assert.Equal(t, int64(5000), invoices[0].Amount)

	members, err := svc.Community.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	require.NoError(t, svc.Community.Delete(ctx, members[0].ID))

	stats, err := svc.Reports.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Members)
	assert.Equal(t, 1, stats.Users)
}

func TestProfile(t *testing.T) {
	env := setupTestServer(t)
	svc := env.signIn(t)
	ctx := context.Background()

	p, err := svc.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testEmail, p.Email)

	p, err = svc.Profile.Update(ctx, resources.ProfileForm{FullName: "Anjali", Organization: "Local Konnect"})
	require.NoError(t, err)
	assert.Equal(t, "Anjali", p.FullName)

	_, err = svc.Profile.Update(ctx, resources.ProfileForm{})
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Equal(t, "Name is required", client.MessageOf(err))
}

func TestUnknownRoute(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.server.URL + "/api/nothing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
