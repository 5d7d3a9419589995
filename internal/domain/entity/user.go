package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// User representa una cuenta del back-office.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, MANAGER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
