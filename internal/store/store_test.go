// ABOUTME: Tests for the SQLite store
// ABOUTME: Covers users, roles, team, categories, reports, community and seeding

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestNewSQLiteStore_CreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "konnect.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestUsers_CreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := &User{Email: "ada@example.com", FullName: "Ada", Role: "admin", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())

	byEmail, err := store.GetUserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	n, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &User{Email: "a@b.co", FullName: "A", Role: "admin", PasswordHash: "h"}))
	err := store.CreateUser(ctx, &User{Email: "A@B.co", FullName: "B", Role: "admin", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUsers_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.UpdateUserProfile(context.Background(), &User{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_UpdateProfile(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := &User{Email: "a@b.co", FullName: "A", Role: "admin", PasswordHash: "h"}
	require.NoError(t, store.CreateUser(ctx, user))

	user.FullName = "Anjali"
	user.Organization = "Local Konnect"
	user.Location = "Delhi"
	require.NoError(t, store.UpdateUserProfile(ctx, user))

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anjali", got.FullName)
	assert.Equal(t, "Local Konnect", got.Organization)
	assert.Equal(t, "Delhi", got.Location)
}

func TestRoles_CRUD(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	role := &Role{Title: "Editor", Description: "Edits", Permissions: []string{PermRead, PermUpdate}}
	require.NoError(t, store.CreateRole(ctx, role))
	require.NoError(t, store.CreateRole(ctx, &Role{Title: "Viewer", Description: "Reads"}))

	roles, err := store.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Editor", roles[0].Title)
	assert.Equal(t, []string{PermRead, PermUpdate}, roles[0].Permissions)
	assert.Empty(t, roles[1].Permissions)

	role.Title = "Senior Editor"
	role.Permissions = []string{PermCreate}
	require.NoError(t, store.UpdateRole(ctx, role))

	got, err := store.GetRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Editor", got.Title)
	assert.Equal(t, []string{PermCreate}, got.Permissions)

	require.NoError(t, store.DeleteRole(ctx, role.ID))
	_, err = store.GetRole(ctx, role.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteRole(ctx, role.ID), ErrNotFound)
}

func TestValidPermission(t *testing.T) {
	for _, p := range Permissions {
		assert.True(t, ValidPermission(p), p)
	}
	assert.False(t, ValidPermission("admin"))
}

func TestTeam_CRUD(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	m := &TeamMember{FullName: "Ravi", Email: "ravi@example.com", Phone: "98765", Role: "Support"}
	require.NoError(t, store.CreateTeamMember(ctx, m))

	dup := &TeamMember{FullName: "Other", Email: "RAVI@example.com", Phone: "1", Role: "Support"}
	assert.ErrorIs(t, store.CreateTeamMember(ctx, dup), ErrEmailExists)

	m.Phone = "11111"
	require.NoError(t, store.UpdateTeamMember(ctx, m))

	members, err := store.ListTeamMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "11111", members[0].Phone)

	require.NoError(t, store.DeleteTeamMember(ctx, m.ID))
	_, err = store.GetTeamMember(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories_CRUD(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c := &Category{Name: "Plumbing"}
	require.NoError(t, store.CreateCategory(ctx, c))
	assert.Equal(t, CategoryActive, c.Status)

	c.Status = CategoryInactive
	require.NoError(t, store.UpdateCategory(ctx, c))

	got, err := store.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, CategoryInactive, got.Status)

	c.Status = "Archived"
	assert.ErrorIs(t, store.UpdateCategory(ctx, c), ErrInvalidStatus)
	assert.ErrorIs(t, store.CreateCategory(ctx, &Category{Name: "x", Status: "Archived"}), ErrInvalidStatus)

	require.NoError(t, store.DeleteCategory(ctx, c.ID))
	cats, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestInvoices_RejectUnknownStatus(t *testing.T) {
	store := setupTestStore(t)
	err := store.CreateInvoice(context.Background(), &Invoice{Number: "INV9", Status: "Void"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCommunity_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	m := &Member{Name: "Neha", Role: "Admin", Posts: 15}
	require.NoError(t, store.CreateMember(ctx, m))
	require.NoError(t, store.DeleteMember(ctx, m.ID))
	assert.ErrorIs(t, store.DeleteMember(ctx, m.ID), ErrNotFound)
}

func TestSeed(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 5)
	assert.Equal(t, "Booking 1", bookings[0].Task)
	assert.Equal(t, "Booking 5", bookings[4].Task)

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 10)
	assert.True(t, tasks[0].CompletedAt.Before(tasks[9].CompletedAt))

	invoices, err := store.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 5)
	assert.Equal(t, "INV001", invoices[0].Number)
	assert.Equal(t, InvoicePaid, invoices[0].Status)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Users)
	assert.Equal(t, 3, st.Members)
	assert.Equal(t, 3, st.Categories)
	assert.Equal(t, 2, st.Roles)
}

func TestSeed_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateMember(ctx, &Member{Name: "Only", Role: "User"}))
	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.Seed(ctx))

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1, "non-empty tables are left alone")

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 5)
}
