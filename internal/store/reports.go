// ABOUTME: Report rows for bookings, completed tasks and invoices
// ABOUTME: Rows are append-only; listings return insertion order

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateBooking inserts a booking row.
func (s *SQLiteStore) CreateBooking(ctx context.Context, b *Booking) error {
	if b.ID == "" {
		b.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (id, task, state, city, locality, status) VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.Task, b.State, b.City, b.Locality, b.Status)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

// ListBookings returns every booking.
func (s *SQLiteStore) ListBookings(ctx context.Context) ([]*Booking, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, task, state, city, locality, status FROM bookings ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Task, &b.State, &b.City, &b.Locality, &b.Status); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// CreateTask inserts a completed task row.
func (s *SQLiteStore) CreateTask(ctx context.Context, t *Task) error {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.CompletedAt.IsZero() {
		t.CompletedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, task, state, city, locality, completed_at) VALUES (?, ?, ?, ?, ?, ?)
	`, t.ID, t.Task, t.State, t.City, t.Locality, formatTime(t.CompletedAt))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// ListTasks returns every completed task.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, task, state, city, locality, completed_at FROM tasks ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []*Task
	for rows.Next() {
		var t Task
		var completedAt string
		if err := rows.Scan(&t.ID, &t.Task, &t.State, &t.City, &t.Locality, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.CompletedAt = parseTime(completedAt)
		out = append(out, &t)
	}
	return out, rows.Err()
}

// CreateInvoice inserts an invoice.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, inv *Invoice) error {
	switch inv.Status {
	case InvoicePaid, InvoicePending, InvoiceOverdue:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, inv.Status)
	}
	if inv.ID == "" {
		inv.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (id, number, customer, date, due_date, amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, inv.ID, inv.Number, inv.Customer, inv.Date, inv.DueDate, inv.Amount, inv.Status)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

// ListInvoices returns every invoice.
func (s *SQLiteStore) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, customer, date, due_date, amount, status FROM invoices ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var out []*Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.Customer, &inv.Date, &inv.DueDate, &inv.Amount, &inv.Status); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
