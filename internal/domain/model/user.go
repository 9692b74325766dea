package model

import "time"

// User represents a staff member or customer account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}

// Actor is the authenticated identity attached to a request. The coordinator
// never authenticates; it only authorizes by role.
type Actor struct {
	UserID int64
	Name   string
	Email  string
	Role   Role
}

// RegisteredUser is the outcome of a successful registration.
type RegisteredUser struct {
	User             *User
	Token            string
	NotificationSent bool
}
