package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// MessagesService оборачивает эндпоинты /api/messages
type MessagesService struct {
	client *transport.Client
}

// Conversations возвращает страницу списка диалогов
func (s *MessagesService) Conversations(ctx context.Context, page int) (*api.ConversationsResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var resp api.ConversationsResponse
	if err := s.client.Get(ctx, "/api/messages/conversations", params, &resp); err != nil {
		return nil, fmt.Errorf("conversations request failed: %w", err)
	}
	return &resp, nil
}

// Requests возвращает входящие запросы на переписку от не-друзей
func (s *MessagesService) Requests(ctx context.Context) (*api.MessageRequestsResponse, error) {
	var resp api.MessageRequestsResponse
	if err := s.client.Get(ctx, "/api/messages/requests", nil, &resp); err != nil {
		return nil, fmt.Errorf("message requests request failed: %w", err)
	}
	return &resp, nil
}

// Thread возвращает страницу переписки с конкретным собеседником
func (s *MessagesService) Thread(ctx context.Context, partnerID int64, page int) (*api.ThreadResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var resp api.ThreadResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/api/messages/with/%d", partnerID), params, &resp); err != nil {
		return nil, fmt.Errorf("thread request failed: %w", err)
	}
	return &resp, nil
}

// Send отправляет сообщение. msgType по умолчанию text.
func (s *MessagesService) Send(ctx context.Context, recipientID int64, content, msgType string) (*api.SendMessageResponse, error) {
	if msgType == "" {
		msgType = "text"
	}
	req := api.SendMessageRequest{Content: content, Type: msgType}

	var resp api.SendMessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/messages/send/%d", recipientID), req, &resp); err != nil {
		return nil, fmt.Errorf("send message request failed: %w", err)
	}
	return &resp, nil
}

// AcceptRequest принимает запрос на переписку
func (s *MessagesService) AcceptRequest(ctx context.Context, senderID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/messages/requests/%d/accept", senderID), nil, &resp); err != nil {
		return nil, fmt.Errorf("accept message request failed: %w", err)
	}
	return &resp, nil
}

// DeleteRequest удаляет запрос на переписку, опционально блокируя отправителя
func (s *MessagesService) DeleteRequest(ctx context.Context, senderID int64, block bool) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	body := api.DeleteMessageRequestBody{Block: block}
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/messages/requests/%d", senderID), body, &resp); err != nil {
		return nil, fmt.Errorf("delete message request failed: %w", err)
	}
	return &resp, nil
}

// DeleteMessage удаляет одно сообщение
func (s *MessagesService) DeleteMessage(ctx context.Context, messageID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/messages/%d", messageID), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete message failed: %w", err)
	}
	return &resp, nil
}

// MarkRead помечает прочитанными все сообщения от собеседника
func (s *MessagesService) MarkRead(ctx context.Context, partnerID int64) (*api.MarkReadResponse, error) {
	var resp api.MarkReadResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/messages/read/%d", partnerID), nil, &resp); err != nil {
		return nil, fmt.Errorf("mark read request failed: %w", err)
	}
	return &resp, nil
}

// UnreadCount возвращает счетчики непрочитанных сообщений
func (s *MessagesService) UnreadCount(ctx context.Context) (*api.UnreadCountResponse, error) {
	var resp api.UnreadCountResponse
	if err := s.client.Get(ctx, "/api/messages/unread-count", nil, &resp); err != nil {
		return nil, fmt.Errorf("unread count request failed: %w", err)
	}
	return &resp, nil
}
