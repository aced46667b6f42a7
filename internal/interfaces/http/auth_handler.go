package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/auth"
	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// AuthHandler maneja registro, login y validación de token.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	val *Validator
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, val *Validator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, val: val, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, role"
// @Success      200   {object}  dto.Envelope{data=dto.AuthResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if valid, err := h.val.parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "Usuario registrado exitosamente")
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.AuthResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if valid, err := h.val.parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "Login exitoso")
}

// Validate godoc
// @Summary      Validar token
// @Description  Verifica firma, issuer, audience y expiración. data es true o false.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateTokenRequest  true  "token"
// @Success      200   {object}  dto.Envelope{data=bool}
// @Router       /api/auth/validate [post]
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateTokenRequest
	if valid, err := h.val.parseAndValidate(c, &in); !valid {
		return err
	}
	if h.uc.ValidateToken(in.Token) {
		return ok(c, fiber.StatusOK, true, "Token válido")
	}
	return ok(c, fiber.StatusOK, false, "Token inválido o expirado")
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      401  {object}  dto.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}
