// ABOUTME: Demo data for a fresh database
// ABOUTME: Each table is seeded only while it is empty

package store

import (
	"context"
	"fmt"
	"time"
)

var seedBookings = []Booking{
	{Task: "Booking 1", State: "Delhi", City: "New Delhi", Locality: "Connaught Place", Status: "Active"},
	{Task: "Booking 2", State: "Maharashtra", City: "Mumbai", Locality: "Bandra", Status: "Completed"},
	{Task: "Booking 3", State: "Karnataka", City: "Bangalore", Locality: "Indiranagar", Status: "Pending"},
	{Task: "Booking 4", State: "West Bengal", City: "Kolkata", Locality: "Salt Lake", Status: "Scheduled"},
	{Task: "Booking 5", State: "Tamil Nadu", City: "Chennai", Locality: "T Nagar", Status: "Active"},
}

var seedTasks = []Task{
	{Task: "Task 1", State: "Delhi", City: "New Delhi", Locality: "Connaught Place"},
	{Task: "Task 2", State: "Maharashtra", City: "Mumbai", Locality: "Bandra"},
	{Task: "Task 3", State: "Karnataka", City: "Bangalore", Locality: "Indiranagar"},
	{Task: "Task 4", State: "West Bengal", City: "Kolkata", Locality: "Salt Lake"},
	{Task: "Task 5", State: "Tamil Nadu", City: "Chennai", Locality: "T Nagar"},
	{Task: "Task 6", State: "UP", City: "Lucknow", Locality: "Hazratganj"},
	{Task: "Task 7", State: "Gujarat", City: "Ahmedabad", Locality: "Navrangpura"},
	{Task: "Task 8", State: "Punjab", City: "Chandigarh", Locality: "Sector 17"},
	{Task: "Task 9", State: "Rajasthan", City: "Jaipur", Locality: "Malviya Nagar"},
	{Task: "Task 10", State: "Bihar", City: "Patna", Locality: "Kankarbagh"},
}

var seedInvoices = []Invoice{
	{Number: "INV001", Customer: "Akash Kumar", Date: "2024-02-10", DueDate: "2024-02-20", Amount: 5000, Status: InvoicePaid},
	{Number: "INV002", Customer: "Rahul Sharma", Date: "2024-02-08", DueDate: "2024-02-18", Amount: 7000, Status: InvoicePending},
	{Number: "INV003", Customer: "Priya Singh", Date: "2024-02-05", DueDate: "2024-02-15", Amount: 9000, Status: InvoiceOverdue},
	{Number: "INV004", Customer: "Suresh Mehta", Date: "2024-02-03", DueDate: "2024-02-13", Amount: 6500, Status: InvoicePaid},
	{Number: "INV005", Customer: "Anjali Verma", Date: "2024-01-28", DueDate: "2024-02-07", Amount: 8000, Status: InvoicePending},
}

var seedMembers = []Member{
	{Name: "Akash Kumar", Role: "User", Posts: 12},
	{Name: "Ravi Sharma", Role: "Moderator", Posts: 8},
	{Name: "Neha Singh", Role: "Admin", Posts: 15},
}

var seedCategories = []Category{
	{Name: "Plumbing", Status: CategoryActive},
	{Name: "Electrical", Status: CategoryActive},
	{Name: "Carpentry", Status: CategoryInactive},
}

var seedRoles = []Role{
	{Title: "Admin", Description: "Full access to the dashboard", Permissions: []string{PermCreate, PermRead, PermUpdate, PermDelete, PermBlock, PermUnblock}},
	{Title: "Support", Description: "Reads and updates bookings", Permissions: []string{PermRead, PermUpdate}},
}

// Seed inserts demo rows into every empty table. Existing data is never touched.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	steps := []struct {
		table  string
		insert func() error
	}{
		{"roles", func() error {
			for _, r := range seedRoles {
				if err := s.CreateRole(ctx, &r); err != nil {
					return err
				}
			}
			return nil
		}},
		{"categories", func() error {
			for _, c := range seedCategories {
				if err := s.CreateCategory(ctx, &c); err != nil {
					return err
				}
			}
			return nil
		}},
		{"bookings", func() error {
			for _, b := range seedBookings {
				if err := s.CreateBooking(ctx, &b); err != nil {
					return err
				}
			}
			return nil
		}},
		{"tasks", func() error {
			day := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
			for i, t := range seedTasks {
				t.CompletedAt = day.AddDate(0, 0, i)
				if err := s.CreateTask(ctx, &t); err != nil {
					return err
				}
			}
			return nil
		}},
		{"invoices", func() error {
			for _, inv := range seedInvoices {
				if err := s.CreateInvoice(ctx, &inv); err != nil {
					return err
				}
			}
			return nil
		}},
		{"community_members", func() error {
			for _, m := range seedMembers {
				if err := s.CreateMember(ctx, &m); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, step := range steps {
		n, err := s.count(ctx, step.table)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := step.insert(); err != nil {
			return fmt.Errorf("seeding %s: %w", step.table, err)
		}
		s.logger.Info("seeded table", "table", step.table)
	}
	return nil
}
