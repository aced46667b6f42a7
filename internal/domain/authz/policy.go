// Package authz centraliza qué puede hacer cada rol. Los handlers y middlewares piden
// permisos, nunca comparan el string del rol directamente.
package authz

import "github.com/jhoicas/inventario-system/internal/domain/entity"

// Permission capacidad atómica que un rol puede tener.
type Permission string

const (
	ProductsRead      Permission = "products:read"
	ProductsWrite     Permission = "products:write"
	ProductsReport    Permission = "products:report"
	NotificationsRead Permission = "notifications:read"
	ReportsRead       Permission = "reports:read"
)

// Authorizer decide si un rol tiene un permiso.
type Authorizer interface {
	Can(role string, perm Permission) bool
}

// Policy tabla estática rol → permisos.
type Policy map[string]map[Permission]bool

// DefaultPolicy política de la aplicación.
func DefaultPolicy() Policy {
	return Policy{
		entity.RoleAdministrador: {
			ProductsRead:      true,
			ProductsWrite:     true,
			ProductsReport:    true,
			NotificationsRead: true,
			ReportsRead:       true,
		},
		entity.RoleEmpleado: {
			ProductsRead:   true,
			ProductsReport: true,
		},
	}
}

// Can implementa Authorizer. Un rol desconocido no tiene permisos.
func (p Policy) Can(role string, perm Permission) bool {
	perms, ok := p[role]
	if !ok {
		return false
	}
	return perms[perm]
}
