// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account. Its role is chosen at registration and never changes.
type User struct {
	ID           int64      // Generated numeric identity.
	FirstName    string     // Used to greet the user in notifications.
	LastName     string     // Optional family name.
	Username     string     // Display handle.
	Email        string     // Unique login identifier and notification address.
	Photo        string     // Optional avatar URL.
	PasswordHash string     // bcrypt hash; never leaves the service layer.
	Role         Role       // organization or consumer.
	IsVerified   bool       // Whether the email address was confirmed.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	LastLoginAt  *time.Time // Last successful login, nil when the user never logged in.
}

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UserID int64
	Role   Role
}
