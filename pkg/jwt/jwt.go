package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySecret se devuelve si no hay clave de firma configurada.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Config parámetros de firma y validación.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que el middleware de permisos decida sin consultar la DB.
// RegisteredClaims.ID es el jti (UUID único por token).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "Administrador" | "Empleado"
}

// Generate firma un token HS256 con userID, email, role y un jti único.
// Devuelve también el instante de expiración.
func Generate(cfg Config, userID, email, role string) (string, time.Time, error) {
	if cfg.Secret == "" {
		return "", time.Time{}, ErrEmptySecret
	}
	now := time.Now()
	exp := now.Add(time.Duration(cfg.ExpMinutes) * time.Minute)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, exp, nil
}

// Parse valida firma, issuer, audience y expiración (sin tolerancia de reloj) y devuelve los claims.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
