package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrNotificationNotFound  = errors.New("notificación no encontrada")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUserInactive          = errors.New("usuario desactivado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrReportGeneration      = errors.New("no se pudo generar el reporte")
)
