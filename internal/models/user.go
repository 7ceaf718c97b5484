// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role values assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account in the directory.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"uniqueIndex;not null" json:"username"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	Password           string    `gorm:"not null" json:"-"`
	FullName           string    `json:"full_name"`
	ProfilePic         string    `json:"profile_pic"`
	Bio                string    `json:"bio"`
	Genre              []string  `gorm:"serializer:json" json:"genre"`
	Facebook           string    `json:"facebook"`
	Twitter            string    `json:"twitter"`
	Instagram          string    `json:"instagram"`
	Github             string    `json:"github"`
	Role               string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	LoggedInWithGoogle bool      `json:"logged_in_with_google"`
	EmailVerified      bool      `json:"email_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Summary is the reduced projection of a user that is safe to return to
// parties other than the account owner or an admin.
type Summary struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	ProfilePic string    `json:"profile_pic"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summarize converts a user into its reduced projection.
func (u *User) Summarize() Summary {
	return Summary{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfilePic: u.ProfilePic,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

// Caller is the authenticated identity resolved from a bearer token.
// Role is re-read from the users table on every request, never from the
// token, so role changes take effect on the next request.
type Caller struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
