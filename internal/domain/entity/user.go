package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleEmpleado      = "Empleado"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdministrador || role == RoleEmpleado
}

// User representa un usuario del sistema. Nunca se borra físicamente; IsActive=false lo desactiva.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Administrador, Empleado
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
