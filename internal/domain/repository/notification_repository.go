package repository

import (
	"context"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification (DIP).
// Los listados se devuelven del más reciente al más antiguo.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, id string) (*entity.Notification, error)
	// MarkAllAsReadByUser marca todas como leídas en una sola sentencia; devuelve filas afectadas.
	MarkAllAsReadByUser(ctx context.Context, userID string) (int64, error)
}
