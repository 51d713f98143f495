// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. Rows are created and maintained by the
// account-management tooling; this service only reads them during login.
type User struct {
	ID           uint      // Numeric identifier, unique per account.
	Email        string    // Login identifier, unique and case-sensitive as stored.
	PasswordHash string    // bcrypt hash. Never serialized and never logged.
	Name         string    // Display name.
	Role         Role      // Role label carried into the session token.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PublicUser is the safe projection of a User returned to clients.
// It deliberately has no way to carry the password hash.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}
