package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

const msgInternal = "Error interno del servidor"

// errorMapping status HTTP y código de máquina para un error de dominio.
type errorMapping struct {
	err     error
	status  int
	code    string
	message string // vacío: se usa err.Error()
}

// domainErrors orden de evaluación con errors.Is; el primero que coincide gana.
var domainErrors = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "Datos inválidos"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", "El email ya está registrado"},
	{domain.ErrUsernameAlreadyExists, fiber.StatusConflict, "USERNAME_EXISTS", "El nombre de usuario ya está registrado"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Email o contraseña incorrectos"},
	{domain.ErrUserInactive, fiber.StatusForbidden, "USER_INACTIVE", "El usuario está desactivado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "No autorizado"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "No tiene permisos para realizar esta acción"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "NOT_FOUND", "Producto no encontrado"},
	{domain.ErrNotificationNotFound, fiber.StatusNotFound, "NOT_FOUND", "Notificación no encontrada"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", "Usuario no encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrReportGeneration, fiber.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte"},
}

// writeError traduce err al envelope. Lo no mapeado es un 500 genérico y solo se detalla en el log.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			if m.status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg(msg)
			}
			return c.Status(m.status).JSON(dto.Fail(m.code, msg))
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", msgInternal))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "Cuerpo de la petición inválido"))
}

func ok(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(dto.OK(data, message))
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, errores devueltos por middlewares
// y pánicos recuperados salen con el mismo envelope.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error de fiber")
				msg = msgInternal
			}
			return c.Status(fe.Code).JSON(dto.Fail(codeForStatus(fe.Code), msg))
		}
		return writeError(c, log, err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "ERROR"
}
