// ABOUTME: Role entity store methods for the roles and permissions page
// ABOUTME: Permissions are stored as a JSON array

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CreateRole inserts a role.
func (s *SQLiteStore) CreateRole(ctx context.Context, role *Role) error {
	if role.ID == "" {
		role.ID = newID()
	}
	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now()
	}
	perms, err := encodePermissions(role.Permissions)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO roles (id, title, description, permissions, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, role.ID, role.Title, role.Description, perms, formatTime(role.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting role: %w", err)
	}

	s.logger.Debug("created role", "id", role.ID, "title", role.Title)
	return nil
}

// GetRole retrieves a role by ID
func (s *SQLiteStore) GetRole(ctx context.Context, id string) (*Role, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, permissions, created_at FROM roles WHERE id = ?
	`, id)
	return scanRole(row)
}

// ListRoles returns every role in creation order.
func (s *SQLiteStore) ListRoles(ctx context.Context) ([]*Role, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, permissions, created_at FROM roles ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []*Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// UpdateRole replaces the title, description and permissions of a role.
func (s *SQLiteStore) UpdateRole(ctx context.Context, role *Role) error {
	perms, err := encodePermissions(role.Permissions)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE roles SET title = ?, description = ?, permissions = ? WHERE id = ?
	`, role.Title, role.Description, perms, role.ID)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	return requireAffected(result)
}

// DeleteRole removes a role.
func (s *SQLiteStore) DeleteRole(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "roles", id)
}

func encodePermissions(perms []string) (string, error) {
	if perms == nil {
		perms = []string{}
	}
	data, err := json.Marshal(perms)
	if err != nil {
		return "", fmt.Errorf("encoding permissions: %w", err)
	}
	return string(data), nil
}

func scanRole(row rowScanner) (*Role, error) {
	var r Role
	var perms, createdAt string
	if err := row.Scan(&r.ID, &r.Title, &r.Description, &perms, &createdAt); err != nil {
		return nil, scanErr(err, "role")
	}
	if err := json.Unmarshal([]byte(perms), &r.Permissions); err != nil {
		return nil, fmt.Errorf("decoding permissions of role %s: %w", r.ID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}
