// ABOUTME: Tests for form validation and the typed resource services
// ABOUTME: Services run against an httptest backend returning envelopes

package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K25anjali/local-Konnect/internal/client"
	"github.com/K25anjali/local-Konnect/internal/session"
)

func TestValidate_SignIn(t *testing.T) {
	tests := []struct {
		name string
		form SignInForm
		want FieldErrors
	}{
		{"valid", SignInForm{Email: "a@b.co", Password: "password1"}, nil},
		{"empty", SignInForm{}, FieldErrors{"email": "Email is required", "password": "Password is required"}},
		{"bad email", SignInForm{Email: "nope", Password: "password1"}, FieldErrors{"email": "Invalid email format"}},
		{"short password", SignInForm{Email: "a@b.co", Password: "short"}, FieldErrors{"password": "Password must be at least 8 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.form))
		})
	}
}

func TestValidate_Role(t *testing.T) {
	errs := Validate(RoleForm{})
	assert.Equal(t, "Role name is required", errs["title"])
	assert.Equal(t, "Description is required", errs["description"])
	assert.Equal(t, "At least one permission is required", errs["userPermissions"])

	errs = Validate(RoleForm{Title: "x", Description: "y", Permissions: []string{"read", "fly"}})
	assert.Equal(t, FieldErrors{"userPermissions": "Unknown permission"}, errs)

	assert.Nil(t, Validate(RoleForm{Title: "x", Description: "y", Permissions: []string{"read"}}))
}

func TestValidate_Team(t *testing.T) {
	errs := Validate(TeamForm{Email: "bad"})
	assert.Equal(t, "Name is required", errs["fullName"])
	assert.Equal(t, "Invalid email", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "User type is required", errs["role"])
}

func TestValidate_Category(t *testing.T) {
	assert.Equal(t, FieldErrors{"name": "Name is required"}, Validate(CategoryForm{Status: "Active"}))
	assert.Equal(t, FieldErrors{"status": "Status must be Active or Inactive"}, Validate(CategoryForm{Name: "x", Status: "Gone"}))
}

func TestFieldErrors_First(t *testing.T) {
	fe := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "first", fe.First("a", "b"))
	assert.Equal(t, "second", fe.First("b"))
	assert.Equal(t, "", FieldErrors{}.First())
}

func newServices(t *testing.T, handler http.HandlerFunc) *Services {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL, session.New("tok")))
}

func TestRoles_List(t *testing.T) {
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RolesPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"roles":[{"_id":"r1","title":"Admin","description":"All","userPermissions":["read","block"]}]}`))
	})

	roles, err := svc.Roles.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Admin", roles[0].Title)
	assert.True(t, roles[0].HasPermission("block"))
	assert.False(t, roles[0].HasPermission("delete"))
}

func TestRoles_Update(t *testing.T) {
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/roles/r1", r.URL.Path)
		var form RoleForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, []string{"read"}, form.Permissions)
		_, _ = w.Write([]byte(`{"role":{"_id":"r1","title":"Viewer","userPermissions":["read"]}}`))
	})

	role, err := svc.Roles.Update(context.Background(), "r1", RoleForm{Title: "Viewer", Description: "d", Permissions: []string{"read"}})
	require.NoError(t, err)
	assert.Equal(t, "Viewer", role.Title)
}

func TestTeam_CreateConflict(t *testing.T) {
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"email already exists"}`))
	})

	_, err := svc.Team.Create(context.Background(), TeamForm{FullName: "A", Email: "a@b.co", Phone: "1", Role: "Admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Equal(t, "email already exists", client.MessageOf(err))
}

func TestReports_NotFound(t *testing.T) {
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	bookings, err := svc.Reports.Bookings(context.Background())
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.Empty(t, bookings)
}

func TestCommunity_Delete(t *testing.T) {
	var gotPath string
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	})

	require.NoError(t, svc.Community.Delete(context.Background(), "m7"))
	assert.Equal(t, "/api/community/m7", gotPath)
}

func TestProfile_Update(t *testing.T) {
	svc := newServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, ProfilePath, r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","fullName":"Anjali","location":"Delhi"}}`))
	})

	p, err := svc.Profile.Update(context.Background(), ProfileForm{FullName: "Anjali", Location: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, "Delhi", p.Location)
}
