// ABOUTME: Typed services over the REST client, one per dashboard resource
// ABOUTME: Each call unwraps the backend's response envelope

package resources

import (
	"context"

	"github.com/K25anjali/local-Konnect/internal/client"
)

// Resource paths on the backend.
const (
	RolesPath      = "/api/roles/"
	RolePath       = "/api/roles/:id"
	TeamPath       = "/api/admin-team/"
	TeamMemberPath = "/api/admin-team/:id"
	CategoriesPath = "/api/categories/"
	CategoryPath   = "/api/categories/:id"
	BookingsPath   = "/api/bookings/"
	TasksPath      = "/api/tasks/"
	InvoicesPath   = "/api/invoices/"
	CommunityPath  = "/api/community/"
	MemberPath     = "/api/community/:id"
	ProfilePath    = "/api/users/me"
	StatsPath      = "/api/stats"
)

// Services bundles every resource service for one client.
type Services struct {
	Roles      *Roles
	Team       *Team
	Categories *Categories
	Reports    *Reports
	Community  *Community
	Profile    *ProfileService
}

// New returns the services backed by c.
func New(c *client.Client) *Services {
	return &Services{
		Roles:      &Roles{c: c},
		Team:       &Team{c: c},
		Categories: &Categories{c: c},
		Reports:    &Reports{c: c},
		Community:  &Community{c: c},
		Profile:    &ProfileService{c: c},
	}
}

// Roles manages roles and permissions.
type Roles struct{ c *client.Client }

func (s *Roles) List(ctx context.Context) ([]Role, error) {
	var env struct {
		Roles []Role `json:"roles"`
	}
	err := s.c.FetchInto(ctx, RolesPath, nil, &env)
	return env.Roles, err
}

func (s *Roles) Create(ctx context.Context, form RoleForm) (*Role, error) {
	var env struct {
		Role Role `json:"role"`
	}
	if err := s.c.CreateInto(ctx, RolesPath, form, &env); err != nil {
		return nil, err
	}
	return &env.Role, nil
}

func (s *Roles) Update(ctx context.Context, id string, form RoleForm) (*Role, error) {
	var env struct {
		Role Role `json:"role"`
	}
	if err := s.c.UpdateInto(ctx, RolePath, id, form, &env); err != nil {
		return nil, err
	}
	return &env.Role, nil
}

func (s *Roles) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, RolePath, id)
	return err
}

// Team manages admin team members.
type Team struct{ c *client.Client }

func (s *Team) List(ctx context.Context) ([]TeamMember, error) {
	var env struct {
		Users []TeamMember `json:"users"`
	}
	err := s.c.FetchInto(ctx, TeamPath, nil, &env)
	return env.Users, err
}

func (s *Team) Create(ctx context.Context, form TeamForm) (*TeamMember, error) {
	var env struct {
		User TeamMember `json:"user"`
	}
	if err := s.c.CreateInto(ctx, TeamPath, form, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (s *Team) Update(ctx context.Context, id string, form TeamForm) (*TeamMember, error) {
	var env struct {
		User TeamMember `json:"user"`
	}
	if err := s.c.UpdateInto(ctx, TeamMemberPath, id, form, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (s *Team) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, TeamMemberPath, id)
	return err
}

// Categories manages service categories.
type Categories struct{ c *client.Client }

func (s *Categories) List(ctx context.Context) ([]Category, error) {
	var env struct {
		Categories []Category `json:"categories"`
	}
	err := s.c.FetchInto(ctx, CategoriesPath, nil, &env)
	return env.Categories, err
}

func (s *Categories) Create(ctx context.Context, form CategoryForm) (*Category, error) {
	var env struct {
		Category Category `json:"category"`
	}
	if err := s.c.CreateInto(ctx, CategoriesPath, form, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (s *Categories) Update(ctx context.Context, id string, form CategoryForm) (*Category, error) {
	var env struct {
		Category Category `json:"category"`
	}
	if err := s.c.UpdateInto(ctx, CategoryPath, id, form, &env); err != nil {
		return nil, err
	}
	return &env.Category, nil
}

func (s *Categories) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, CategoryPath, id)
	return err
}

// Reports reads the read-only report listings.
type Reports struct{ c *client.Client }

func (s *Reports) Bookings(ctx context.Context) ([]Booking, error) {
	var env struct {
		Bookings []Booking `json:"bookings"`
	}
	err := s.c.FetchInto(ctx, BookingsPath, nil, &env)
	return env.Bookings, err
}

func (s *Reports) Tasks(ctx context.Context) ([]Task, error) {
	var env struct {
		Tasks []Task `json:"tasks"`
	}
	err := s.c.FetchInto(ctx, TasksPath, nil, &env)
	return env.Tasks, err
}

func (s *Reports) Invoices(ctx context.Context) ([]Invoice, error) {
	var env struct {
		Invoices []Invoice `json:"invoices"`
	}
	err := s.c.FetchInto(ctx, InvoicesPath, nil, &env)
	return env.Invoices, err
}

// Stats returns the dashboard counters.
func (s *Reports) Stats(ctx context.Context) (*Stats, error) {
	var env struct {
		Stats Stats `json:"stats"`
	}
	if err := s.c.FetchInto(ctx, StatsPath, nil, &env); err != nil {
		return nil, err
	}
	return &env.Stats, nil
}

// Community manages community members.
type Community struct{ c *client.Client }

func (s *Community) List(ctx context.Context) ([]Member, error) {
	var env struct {
		Members []Member `json:"members"`
	}
	err := s.c.FetchInto(ctx, CommunityPath, nil, &env)
	return env.Members, err
}

func (s *Community) Delete(ctx context.Context, id string) error {
	_, err := s.c.Delete(ctx, MemberPath, id)
	return err
}

// ProfileService reads and edits the signed-in user.
type ProfileService struct{ c *client.Client }

func (s *ProfileService) Get(ctx context.Context) (*Profile, error) {
	var env struct {
		User Profile `json:"user"`
	}
	if err := s.c.FetchInto(ctx, ProfilePath, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (s *ProfileService) Update(ctx context.Context, form ProfileForm) (*Profile, error) {
	var env struct {
		User Profile `json:"user"`
	}
	// The profile endpoint has no :id; the token identifies the user.
	if err := s.c.UpdateInto(ctx, ProfilePath, "", form, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}
