package api

// LastMessage — превью последнего сообщения в диалоге
type LastMessage struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	SentByMe  bool   `json:"sent_by_me"`
	SentAt    string `json:"sent_at"`
	IsRead    bool   `json:"is_read"`
	IsRequest bool   `json:"is_request"`
}

// Conversation — диалог с одним собеседником
type Conversation struct {
	Partner     User        `json:"partner"`
	LastMessage LastMessage `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
}

// ConversationsResponse — страница списка диалогов
type ConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
	Total         int            `json:"total"`
	Pages         int            `json:"pages"`
	CurrentPage   int            `json:"current_page"`
	HasNext       bool           `json:"has_next"`
}

// ThreadMessage — сообщение внутри переписки с конкретным собеседником
type ThreadMessage struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	SentByMe    bool   `json:"sent_by_me"`
	SentAt      string `json:"sent_at"`
	IsRead      bool   `json:"is_read"`
	MessageType string `json:"message_type"`
}

// ThreadResponse — ответ GET /api/messages/with/{partnerID}
type ThreadResponse struct {
	Partner     UserPublic      `json:"partner"`
	Messages    []ThreadMessage `json:"messages"`
	Total       int             `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
	HasMore     bool            `json:"has_more"`
}

// MessageRequestEntry — входящий запрос на переписку от не-друга
type MessageRequestEntry struct {
	Sender      UserPublic `json:"sender"`
	LastMessage string     `json:"last_message"`
	SentAt      string     `json:"sent_at"`
	UnreadCount int        `json:"unread_count"`
}

// MessageRequestsResponse — ответ GET /api/messages/requests
type MessageRequestsResponse struct {
	Requests []MessageRequestEntry `json:"requests"`
}

// SendMessageRequest — тело POST /api/messages/send/{recipientID}
type SendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

// SendMessageResponse — ответ на отправку сообщения
type SendMessageResponse struct {
	Message string        `json:"message"`
	Data    ThreadMessage `json:"data"`
}

// DeleteMessageRequestBody — тело DELETE /api/messages/requests/{senderID}
type DeleteMessageRequestBody struct {
	Block bool `json:"block"`
}

// MarkReadResponse — ответ POST /api/messages/read/{partnerID}
type MarkReadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// UnreadCountResponse — ответ GET /api/messages/unread-count
type UnreadCountResponse struct {
	TotalUnread    int `json:"total_unread"`
	RequestsUnread int `json:"requests_unread"`
	DirectUnread   int `json:"direct_unread"`
}
