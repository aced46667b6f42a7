package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, user_id, message, type, is_read, created_at`

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste la notificación; si el destinatario no existe devuelve ErrUserNotFound.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, n.ID, n.UserID, n.Message, n.Type, n.IsRead, n.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		if isMissingRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *NotificationRepo) ListUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 AND NOT is_read ORDER BY created_at DESC`, userID)
}

func (r *NotificationRepo) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkAsRead es idempotente; devuelve nil si la notificación no existe.
func (r *NotificationRepo) MarkAsRead(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 RETURNING `+notificationColumns, id))
	if err != nil {
		if isMissingRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) MarkAllAsReadByUser(ctx context.Context, userID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
