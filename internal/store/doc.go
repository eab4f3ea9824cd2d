// Package store provides persistent storage for the reference REST backend
// using SQLite.
//
// # Data Models
//
//   - User: an account that can sign in to the dashboard
//   - Role: a named set of permissions (create, read, update, delete, block, unblock)
//   - TeamMember: an admin team entry with a role
//   - Category: a service category, Active or Inactive
//   - Booking, Task, Invoice: report rows
//   - Member: a community member
//
// SQLiteStore implements every operation in a single struct. Listings return
// rows in insertion order.
//
// # Errors
//
// Lookups of unknown IDs return ErrNotFound. Duplicate emails return
// ErrEmailExists. Both are matched with errors.Is.
//
// # Seeding
//
// Seed fills empty report, category and community tables with demo rows so a
// fresh database renders populated pages.
package store
