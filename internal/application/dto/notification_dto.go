package dto

import "time"

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse conteo de no leídas.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
