package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-system/internal/domain/authz"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

func TestDefaultPolicy(t *testing.T) {
	p := authz.DefaultPolicy()

	cases := []struct {
		role string
		perm authz.Permission
		want bool
	}{
		{entity.RoleAdministrador, authz.ProductsWrite, true},
		{entity.RoleAdministrador, authz.NotificationsRead, true},
		{entity.RoleAdministrador, authz.ReportsRead, true},
		{entity.RoleEmpleado, authz.ProductsRead, true},
		{entity.RoleEmpleado, authz.ProductsReport, true},
		{entity.RoleEmpleado, authz.ProductsWrite, false},
		{entity.RoleEmpleado, authz.NotificationsRead, false},
		{entity.RoleEmpleado, authz.ReportsRead, false},
		{"admin", authz.ProductsRead, false},
		{"", authz.ProductsRead, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Can(tc.role, tc.perm), "%s / %s", tc.role, tc.perm)
	}
}
