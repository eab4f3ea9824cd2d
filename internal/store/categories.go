// ABOUTME: Service category store methods
// ABOUTME: Status is restricted to Active or Inactive

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateCategory inserts a category. An empty status defaults to Active.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *Category) error {
	if c.Status == "" {
		c.Status = CategoryActive
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	if c.ID == "" {
		c.ID = newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, status, created_at) VALUES (?, ?, ?, ?)
	`, c.ID, c.Name, c.Status, formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category by ID
func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*Category, error) {
	var c Category
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, status, created_at FROM categories WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Status, &createdAt)
	if err != nil {
		return nil, scanErr(err, "category")
	}
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

// ListCategories returns every category in creation order.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, created_at FROM categories ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*Category
	for rows.Next() {
		var c Category
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// UpdateCategory replaces the name and status of a category.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, c *Category) error {
	if !c.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, status = ? WHERE id = ?
	`, c.Name, c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return requireAffected(result)
}

// DeleteCategory removes a category.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "categories", id)
}
