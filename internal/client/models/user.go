// Package models defines the wire types exchanged with the jobdesk backend:
// users and sessions, the CV document, companies, recommendations and
// auto-apply requests.
package models

import "time"

// Role is the user's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID       string `json:"id" yaml:"id"`
	Email    string `json:"email" yaml:"email"`
	FullName string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Role     Role   `json:"role" yaml:"role"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

// AuthResponse is returned by the signup and login endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the signup request body. Role is always RoleUser.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role     Role   `json:"role" validate:"eq=user"`
}

// Session is the authenticated identity held by the client.
type Session struct {
	User  *User
	Token string
}

// IsAuthenticated reports whether both token and user are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session user has the admin role.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == RoleAdmin
}

// TokenInfo is informational data decoded from the access token.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}
