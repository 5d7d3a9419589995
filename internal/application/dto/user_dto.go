package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100,personname"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100" sanitize:"-"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER"`
}

// UpdateUserRequest entrada de PUT /users/:id.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100,personname"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100" sanitize:"-"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest entrada de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=100" sanitize:"-"`
}

// LoginResponse token de sesión y usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// SessionResponse principal de la sesión actual.
type SessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
