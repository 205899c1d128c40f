package api

// NotificationActor — кто вызвал уведомление
type NotificationActor struct {
	ID        int64   `json:"id"`
	Pseudo    string  `json:"pseudo"`
	AvatarURL *string `json:"avatar_url"`
}

// Notification представляет одно уведомление
type Notification struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Body      *string            `json:"body"`
	Data      map[string]any     `json:"data"`
	ImageURL  *string            `json:"image_url"`
	IsRead    bool               `json:"is_read"`
	CreatedAt string             `json:"created_at"`
	Actor     *NotificationActor `json:"actor,omitempty"`
}

// NotificationsResponse — страница списка уведомлений
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Pages         int            `json:"pages"`
	CurrentPage   int            `json:"current_page"`
	HasNext       bool           `json:"has_next"`
}

// CountResponse — ответ мутаций, возвращающих число затронутых записей
// (read-all, clear)
type CountResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// NotificationsUnreadResponse — ответ GET /api/notifications/unread-count
type NotificationsUnreadResponse struct {
	Unread int `json:"unread"`
}

// FcmTokenRequest — тело PUT /api/notifications/fcm-token
type FcmTokenRequest struct {
	Token string `json:"token"`
}
