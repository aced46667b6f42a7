package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventario-system/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "inventario-test",
	Audience:   "inventario-clients",
	ExpMinutes: 60,
}

func TestGenerateAndParse(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(testCfg, "u-1", "ana@example.com", "Empleado")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp, 5*time.Second)

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Empleado", claims.Role)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
}

func TestGenerate_JTIUnico(t *testing.T) {
	a, _, err := pkgjwt.Generate(testCfg, "u-1", "a@example.com", "Empleado")
	require.NoError(t, err)
	b, _, err := pkgjwt.Generate(testCfg, "u-1", "a@example.com", "Empleado")
	require.NoError(t, err)

	ca, err := pkgjwt.Parse(testCfg, a)
	require.NoError(t, err)
	cb, err := pkgjwt.Parse(testCfg, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestParse_Rechazos(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testCfg, "u-1", "a@example.com", "Administrador")
	require.NoError(t, err)

	otroSecret := testCfg
	otroSecret.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(otroSecret, tok)
	assert.Error(t, err, "secret incorrecto")

	otroIssuer := testCfg
	otroIssuer.Issuer = "otro-emisor"
	_, err = pkgjwt.Parse(otroIssuer, tok)
	assert.Error(t, err, "issuer incorrecto")

	otraAudiencia := testCfg
	otraAudiencia.Audience = "otra-audiencia"
	_, err = pkgjwt.Parse(otraAudiencia, tok)
	assert.Error(t, err, "audience incorrecta")

	_, err = pkgjwt.Parse(testCfg, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	expired := testCfg
	expired.ExpMinutes = -1
	tok, _, err := pkgjwt.Generate(expired, "u-1", "a@example.com", "Administrador")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestSecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate(pkgjwt.Config{}, "u", "e", "r")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
	_, err = pkgjwt.Parse(pkgjwt.Config{}, "x")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}
