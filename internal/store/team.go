// ABOUTME: Admin team member store methods
// ABOUTME: Member emails are unique case-insensitively

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateTeamMember inserts a team member.
func (s *SQLiteStore) CreateTeamMember(ctx context.Context, m *TeamMember) error {
	if m.ID == "" {
		m.ID = newID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_members (id, full_name, email, phone, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.FullName, m.Email, m.Phone, m.Role, formatTime(m.CreatedAt))
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting team member: %w", err)
	}

	s.logger.Debug("created team member", "id", m.ID, "email", m.Email)
	return nil
}

// GetTeamMember retrieves a team member by ID
func (s *SQLiteStore) GetTeamMember(ctx context.Context, id string) (*TeamMember, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone, role, created_at FROM team_members WHERE id = ?
	`, id)
	return scanTeamMember(row)
}

// ListTeamMembers returns every team member in creation order.
func (s *SQLiteStore) ListTeamMembers(ctx context.Context) ([]*TeamMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, email, phone, role, created_at FROM team_members ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	var members []*TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateTeamMember replaces the fields of a team member.
func (s *SQLiteStore) UpdateTeamMember(ctx context.Context, m *TeamMember) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE team_members SET full_name = ?, email = ?, phone = ?, role = ? WHERE id = ?
	`, m.FullName, m.Email, m.Phone, m.Role, m.ID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("updating team member: %w", err)
	}
	return requireAffected(result)
}

// DeleteTeamMember removes a team member.
func (s *SQLiteStore) DeleteTeamMember(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "team_members", id)
}

func scanTeamMember(row rowScanner) (*TeamMember, error) {
	var m TeamMember
	var createdAt string
	if err := row.Scan(&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Role, &createdAt); err != nil {
		return nil, scanErr(err, "team member")
	}
	m.CreatedAt = parseTime(createdAt)
	return &m, nil
}
