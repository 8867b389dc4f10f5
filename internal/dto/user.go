package dto

import (
	"time"

	"fintracker/internal/core/domain"
)

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is the payload for updating a user. Nil fields are left
// unchanged; a non-empty Password is re-hashed.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

// UserResponse is the API representation of a user. The password hash is
// never exposed.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
