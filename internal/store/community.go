// ABOUTME: Community member store methods
// ABOUTME: Members can be listed and removed from the community page

package store

import (
	"context"
	"fmt"
)

// CreateMember inserts a community member.
func (s *SQLiteStore) CreateMember(ctx context.Context, m *Member) error {
	if m.ID == "" {
		m.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO community_members (id, name, role, posts) VALUES (?, ?, ?, ?)
	`, m.ID, m.Name, m.Role, m.Posts)
	if err != nil {
		return fmt.Errorf("inserting community member: %w", err)
	}
	return nil
}

// ListMembers returns every community member.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]*Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, posts FROM community_members ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("listing community members: %w", err)
	}
	defer rows.Close()

	var out []*Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Posts); err != nil {
			return nil, fmt.Errorf("scanning community member: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// DeleteMember removes a community member.
func (s *SQLiteStore) DeleteMember(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "community_members", id)
}
