package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "Info"
	NotificationWarning = "Warning"
	NotificationError   = "Error"
)

// ValidNotificationType informa si t es un tipo de notificación conocido.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationError:
		return true
	}
	return false
}

// Notification aviso dirigido a un único usuario. Se borra en cascada con el usuario.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}
