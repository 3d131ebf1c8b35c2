package transport

import (
	"time"

	"github.com/Skotchmaster/shop/internal/models"
)

type CategoryRequest struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"    validate:"required,min=3,max=60"`
	Version uint   `json:"version"`
}

type ProductRequest struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"       validate:"required,min=3,max=60"`
	Description string  `json:"description" validate:"max=1024"`
	Price       float64 `json:"price"       validate:"gt=0"`
	CategoryID  uint    `json:"category_id" validate:"required"`
	Version     uint    `json:"version"`
}

// RegisterRequest accepts a role field for compatibility; it is ignored.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=3,max=64,max_bytes=72"`
	Role     string `json:"role"`
}

type UserRequest struct {
	ID       uint   `json:"id"`
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=3,max=64,max_bytes=72"`
	Role     string `json:"role"     validate:"required,oneof=employee manager"`
	Version  uint   `json:"version"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the only outbound shape of a user. Password is always
// empty.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Version  uint   `json:"version"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Version:  u.Version,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
