package dto

import (
	"time"

	"github.com/oclock/event_backend/internal/core/domain"
)

// RegisterRequest carries the fields accepted at registration. Role is
// optional and defaults to participant.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// ProfileRequest carries a partial profile update. Pointers distinguish
// omitted fields from zero values.
type ProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UpdatePasswordRequest carries a password change for the current user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ProfileResponse is the public view of a user; it never exposes the
// password hash.
type ProfileResponse struct {
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdDate"`
	LastLoginAt *time.Time `json:"lastLoginDate,omitempty"`
}

// ToProfileResponse converts a domain.User to its public profile view.
func ToProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// ToProfileResponseSlice converts a slice of domain users.
func ToProfileResponseSlice(users []domain.User) []ProfileResponse {
	out := make([]ProfileResponse, len(users))
	for i := range users {
		out[i] = ToProfileResponse(&users[i])
	}
	return out
}
