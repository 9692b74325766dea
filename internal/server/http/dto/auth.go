package dto

import "time"

// RegisterRequest describes account creation payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest describes credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the issued token together with the account and the
// welcome notification outcome.
type AuthResponse struct {
	Token            string       `json:"token"`
	User             UserResponse `json:"user"`
	NotificationSent bool         `json:"notification_sent,omitempty"`
}
