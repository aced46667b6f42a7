package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/application/usecase"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// NotificationHandler notificaciones del usuario autenticado.
type NotificationHandler struct {
	uc  *usecase.NotificationUseCase
	log *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Mis notificaciones
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NotificationResponse}
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Unread godoc
// @Summary      Mis notificaciones no leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NotificationResponse}
// @Router       /api/notifications/unread [get]
func (h *NotificationHandler) Unread(c *fiber.Ctx) error {
	out, err := h.uc.ListUnreadByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// UnreadCount godoc
// @Summary      Conteo de no leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.UnreadCountResponse}
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.uc.UnreadCount(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, dto.UnreadCountResponse{Count: n}, "")
}

// MarkAsRead godoc
// @Summary      Marcar como leída
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.Envelope{data=dto.NotificationResponse}
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/notifications/{id}/mark-read [put]
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	out, err := h.uc.MarkAsRead(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "Notificación marcada como leída")
}

// MarkAllAsRead godoc
// @Summary      Marcar todas como leídas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/notifications/mark-all-read [put]
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllAsRead(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, nil, "Todas las notificaciones marcadas como leídas")
}
