// ABOUTME: Data types and sentinel errors for the dashboard backend store
// ABOUTME: JSON tags match the REST envelopes served to the dashboard

package store

import (
	"errors"
	"slices"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an email is already taken
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidStatus is returned when a status value is not allowed for the entity
var ErrInvalidStatus = errors.New("invalid status")

// User is an account that can sign in to the dashboard.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Organization string    `json:"organization,omitempty"`
	Location     string    `json:"location,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Permission names assignable to a role.
const (
	PermCreate  = "create"
	PermRead    = "read"
	PermUpdate  = "update"
	PermDelete  = "delete"
	PermBlock   = "block"
	PermUnblock = "unblock"
)

// Permissions lists every assignable permission in display order.
var Permissions = []string{PermCreate, PermRead, PermUpdate, PermDelete, PermBlock, PermUnblock}

// ValidPermission reports whether p is an assignable permission.
func ValidPermission(p string) bool {
	return slices.Contains(Permissions, p)
}

// Role is a named set of permissions.
type Role struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Permissions []string  `json:"userPermissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TeamMember is an admin team entry.
type TeamMember struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryStatus is the state of a service category.
type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "Active"
	CategoryInactive CategoryStatus = "Inactive"
)

// Valid reports whether s is a known category status.
func (s CategoryStatus) Valid() bool {
	return s == CategoryActive || s == CategoryInactive
}

// Category is a service category.
type Category struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Status    CategoryStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Booking is a row of the booking report.
type Booking struct {
	ID       string `json:"_id"`
	Task     string `json:"task"`
	State    string `json:"state"`
	City     string `json:"city"`
	Locality string `json:"locality"`
	Status   string `json:"status"` // Active, Completed, Pending, Scheduled
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

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// Invoice is a row of the invoice list. Amount is in whole rupees.
type Invoice struct {
	ID       string        `json:"_id"`
	Number   string        `json:"invoiceNumber"`
	Customer string        `json:"customer"`
	Date     string        `json:"date"`    // YYYY-MM-DD
	DueDate  string        `json:"dueDate"` // YYYY-MM-DD
	Amount   int64         `json:"amount"`
	Status   InvoiceStatus `json:"status"`
}

// Member is a community member.
type Member struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Posts int    `json:"posts"`
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
