package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// FanOutResult resultado de notificar a todos los administradores activos.
type FanOutResult struct {
	Recipients int
	Delivered  int
	Failed     int
}

// NotificationUseCase notificaciones por usuario y fan-out a administradores.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, userRepo repository.UserRepository, log *logger.Logger) *NotificationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &NotificationUseCase{repo: repo, userRepo: userRepo, log: log.Named("notifications")}
}

// ListByUser todas las notificaciones dirigidas a userID.
func (uc *NotificationUseCase) ListByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// ListUnreadByUser notificaciones no leídas de userID.
func (uc *NotificationUseCase) ListUnreadByUser(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListUnreadByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// UnreadCount número de no leídas de userID.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return uc.repo.CountUnreadByUser(ctx, userID)
}

// MarkAsRead marca una notificación propia como leída.
// ErrNotificationNotFound si no existe; ErrForbidden si pertenece a otro usuario (no se modifica).
func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, notificationID, userID string) (*dto.NotificationResponse, error) {
	if !isValidID(notificationID) {
		return nil, domain.ErrNotificationNotFound
	}
	n, err := uc.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotificationNotFound
	}
	if n.UserID != userID {
		return nil, domain.ErrForbidden
	}
	updated, err := uc.repo.MarkAsRead(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotificationNotFound
	}
	out := toNotificationResponse(updated)
	return &out, nil
}

// MarkAllAsRead marca todas las de userID como leídas. Cero filas afectadas también es éxito.
func (uc *NotificationUseCase) MarkAllAsRead(ctx context.Context, userID string) error {
	affected, err := uc.repo.MarkAllAsReadByUser(ctx, userID)
	if err != nil {
		return err
	}
	uc.log.Debug().Str("user_id", userID).Int64("affected", affected).Msg("notificaciones marcadas como leídas")
	return nil
}

// Create persiste una notificación no leída para userID.
func (uc *NotificationUseCase) Create(ctx context.Context, userID, message, notifType string) (*entity.Notification, error) {
	if notifType == "" {
		notifType = entity.NotificationInfo
	}
	if !entity.ValidNotificationType(notifType) || message == "" {
		return nil, domain.ErrInvalidInput
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// NotifyAdministrators crea una notificación por cada administrador activo.
// Es best-effort: el fallo de un destinatario se registra y no impide a los demás.
// Solo devuelve error si no se pudo obtener la lista de administradores.
func (uc *NotificationUseCase) NotifyAdministrators(ctx context.Context, message, notifType string) (FanOutResult, error) {
	admins, err := uc.userRepo.ListActiveByRole(ctx, entity.RoleAdministrador)
	if err != nil {
		return FanOutResult{}, err
	}
	res := FanOutResult{Recipients: len(admins)}
	for _, admin := range admins {
		if _, err := uc.Create(ctx, admin.ID, message, notifType); err != nil {
			res.Failed++
			uc.log.Warn().Err(err).Str("user_id", admin.ID).Msg("no se pudo notificar al administrador")
			continue
		}
		res.Delivered++
	}
	return res, nil
}

func toNotificationResponses(list []*entity.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
