package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role classifies what a user is allowed to do.
type Role string

const (
	RoleParticipant Role = "PARTICIPANT"
	RoleManager     Role = "MANAGER"
	RoleAdmin       Role = "ADMIN"
)

// ParseRole maps a case-insensitive role name to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleParticipant:
		return RoleParticipant, nil
	case RoleManager:
		return RoleManager, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

// User represents an account in the system. Email is the business key
// used as the token subject; the role is fixed at registration.
type User struct {
	UserID       string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// FullName returns the display name used in event responses.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
