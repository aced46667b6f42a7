package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-system/internal/domain/authz"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	apphttp "github.com/jhoicas/inventario-system/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-system/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "user@test.com"
)

var testJWT = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "InventarioSystem-test",
	Audience:   "InventarioSystemClients-test",
	ExpMinutes: 60,
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(perm authz.Permission) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWT),
		apphttp.RequirePermission(authz.DefaultPolicy(), perm),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWT, testUserID, testEmail, role)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El administrador tiene el permiso → HTTP 200.
func TestRequirePermission_AdminAccedeEscrituraProductos(t *testing.T) {
	app := buildTestApp(authz.ProductsWrite)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"administrador debe poder escribir productos")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdministrador, body["role"])
}

// Caso 1b: el empleado puede reportar falta de stock.
func TestRequirePermission_EmpleadoPuedeReportar(t *testing.T) {
	app := buildTestApp(authz.ProductsReport)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmpleado))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: El empleado no puede escribir productos → HTTP 403 Forbidden.
func TestRequirePermission_EmpleadoBloqueadoEnEscritura(t *testing.T) {
	app := buildTestApp(authz.ProductsWrite)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmpleado))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
	assert.Contains(t, string(body), `"success":false`)
}

// Caso 2b: rol desconocido no tiene permisos.
func TestRequirePermission_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(authz.ProductsRead)
	resp := doRequest(t, app, tokenForRole(t, "vendedor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequirePermission_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(authz.ProductsRead)
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(authz.ProductsRead)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(authz.ProductsRead)

	for _, header := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer"} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "INVALID_TOKEN", header)
	}
}

// Caso 6: token firmado para otra audiencia → 401.
func TestAuthMiddleware_AudienciaIncorrecta_Retorna401(t *testing.T) {
	other := testJWT
	other.Audience = "otra-app"
	tok, _, err := pkgjwt.Generate(other, testUserID, testEmail, entity.RoleAdministrador)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(authz.ProductsRead), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWT), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleEmpleado))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, entity.RoleEmpleado, body["role"])
}
