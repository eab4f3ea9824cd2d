// ABOUTME: User accounts for dashboard sign-in
// ABOUTME: Emails are unique case-insensitively; passwords are stored as bcrypt hashes

package store

import (
	"context"
	"fmt"
	"time"
)

const userColumns = `id, email, full_name, phone, role, organization, location, password_hash, created_at`

// CreateUser inserts a new user. ID and CreatedAt are filled in when empty.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.ID,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.Organization,
		user.Location,
		user.PasswordHash,
		formatTime(user.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Debug("created user", "id", user.ID, "email", user.Email)
	return nil
}

// GetUser retrieves a user by ID
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by email, ignoring case
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// UpdateUserProfile updates the editable profile fields of a user.
func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, user *User) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users SET full_name = ?, phone = ?, organization = ?, location = ?
		WHERE id = ?
	`, user.FullName, user.Phone, user.Organization, user.Location, user.ID)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return requireAffected(result)
}

// CountUsers returns the number of users, used to decide whether bootstrap is needed.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	return s.count(ctx, "users")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	var createdAt string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Phone,
		&u.Role,
		&u.Organization,
		&u.Location,
		&u.PasswordHash,
		&createdAt,
	)
	if err != nil {
		return nil, scanErr(err, "user")
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}
