package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo notificaciones en memoria.
type NotificationRepo struct {
	s *Store
}

// NewNotificationRepository construye el repositorio sobre el Store.
func NewNotificationRepository(s *Store) *NotificationRepo {
	return &NotificationRepo{s: s}
}

// Create exige que el destinatario exista (equivalente a la FK en PostgreSQL).
func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[n.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.seq++
	r.s.notifications[n.ID] = &notificationRow{n: *n, seq: r.s.seq}
	return nil
}

func (r *NotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	n := row.n
	return &n, nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string) ([]*entity.Notification, error) {
	return r.list(func(n *entity.Notification) bool { return n.UserID == userID }), nil
}

func (r *NotificationRepo) ListUnreadByUser(_ context.Context, userID string) ([]*entity.Notification, error) {
	return r.list(func(n *entity.Notification) bool { return n.UserID == userID && !n.IsRead }), nil
}

func (r *NotificationRepo) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	list, _ := r.ListUnreadByUser(ctx, userID)
	return len(list), nil
}

func (r *NotificationRepo) MarkAsRead(_ context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	row.n.IsRead = true
	n := row.n
	return &n, nil
}

func (r *NotificationRepo) MarkAllAsReadByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var affected int64
	for _, row := range r.s.notifications {
		if row.n.UserID == userID && !row.n.IsRead {
			row.n.IsRead = true
			affected++
		}
	}
	return affected, nil
}

// list más recientes primero; a igual CreatedAt decide el orden de inserción.
func (r *NotificationRepo) list(keep func(*entity.Notification) bool) []*entity.Notification {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := make([]*notificationRow, 0)
	for _, row := range r.s.notifications {
		if keep(&row.n) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].n.CreatedAt.Equal(rows[j].n.CreatedAt) {
			return rows[i].n.CreatedAt.After(rows[j].n.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]*entity.Notification, 0, len(rows))
	for _, row := range rows {
		n := row.n
		out = append(out, &n)
	}
	return out
}
