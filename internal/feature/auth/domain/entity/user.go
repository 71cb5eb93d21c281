// Package entity defines the domain entities for the auth feature.
package entity

import (
	"strings"
	"time"
)

// User represents a registered principal.
// Username is a case-insensitive, normalized projection of the email fixed
// at creation time; it is never recomputed afterwards.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the normalized login handle, derived from the email.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address with only the domain part lowercased.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the salted bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// FirstName and LastName are display name fields.
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time

	// LastLogin is set on every successful login, best-effort.
	LastLogin *time.Time
}

// Public returns the user without credential material.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: u.LastLogin,
	}
}

// PublicUser is the principal shape exposed to request handlers.
// It deliberately has no password field.
type PublicUser struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// FullName joins the trimmed first and last names.
func (u *PublicUser) FullName() string {
	return strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName)
}
