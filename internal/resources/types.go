// ABOUTME: Resource values as the dashboard sees them on the wire
// ABOUTME: Field names follow the backend's JSON envelopes

package resources

import "time"

// Role is a named set of permissions.
type Role struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Permissions []string `json:"userPermissions"`
}

// HasPermission reports whether the role grants p.
func (r Role) HasPermission(p string) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Permissions lists every assignable permission in display order.
var Permissions = []string{"create", "read", "update", "delete", "block", "unblock"}

// TeamMember is an admin team entry.
type TeamMember struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Category is a service category.
type Category struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CategoryStatuses lists the allowed category states.
var CategoryStatuses = []string{"Active", "Inactive"}

// Booking is a row of the booking report.
type Booking struct {
	ID       string `json:"_id"`
	Task     string `json:"task"`
	State    string `json:"state"`
	City     string `json:"city"`
	Locality string `json:"locality"`
	Status   string `json:"status"`
}

// Task is a row of the completed task report.
type Task struct {
	ID          string    `json:"_id"`
	Task        string    `json:"task"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Locality    string    `json:"locality"`
	CompletedAt time.Time `json:"completedAt"`
}

// Invoice is a row of the invoice list.
type Invoice struct {
	ID       string `json:"_id"`
	Number   string `json:"invoiceNumber"`
	Customer string `json:"customer"`
	Date     string `json:"date"`
	DueDate  string `json:"dueDate"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

// Member is a community member.
type Member struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Posts int    `json:"posts"`
}

// Profile is the signed-in user.
type Profile struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Stats are the row counts shown on the dashboard home page.
type Stats struct {
	Users      int `json:"users"`
	Roles      int `json:"roles"`
	Team       int `json:"team"`
	Categories int `json:"categories"`
	Bookings   int `json:"bookings"`
	Tasks      int `json:"tasks"`
	Invoices   int `json:"invoices"`
	Members    int `json:"members"`
}
