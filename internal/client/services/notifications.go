package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// NotificationsService оборачивает эндпоинты /api/notifications
type NotificationsService struct {
	client *transport.Client
}

// List возвращает страницу уведомлений
func (s *NotificationsService) List(ctx context.Context, page int, unreadOnly bool) (*api.NotificationsResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("unread_only", strconv.FormatBool(unreadOnly))

	var resp api.NotificationsResponse
	if err := s.client.Get(ctx, "/api/notifications/", params, &resp); err != nil {
		return nil, fmt.Errorf("list notifications request failed: %w", err)
	}
	return &resp, nil
}

// MarkRead помечает уведомление прочитанным
func (s *NotificationsService) MarkRead(ctx context.Context, notifID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/notifications/%d/read", notifID), nil, &resp); err != nil {
		return nil, fmt.Errorf("mark notification read failed: %w", err)
	}
	return &resp, nil
}

// MarkAllRead помечает все уведомления прочитанными
func (s *NotificationsService) MarkAllRead(ctx context.Context) (*api.CountResponse, error) {
	var resp api.CountResponse
	if err := s.client.Post(ctx, "/api/notifications/read-all", nil, &resp); err != nil {
		return nil, fmt.Errorf("mark all read failed: %w", err)
	}
	return &resp, nil
}

// Delete удаляет уведомление
func (s *NotificationsService) Delete(ctx context.Context, notifID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/notifications/%d", notifID), nil, &resp); err != nil {
		return nil, fmt.Errorf("delete notification failed: %w", err)
	}
	return &resp, nil
}

// ClearAll удаляет все уведомления
func (s *NotificationsService) ClearAll(ctx context.Context) (*api.CountResponse, error) {
	var resp api.CountResponse
	if err := s.client.Delete(ctx, "/api/notifications/clear", nil, &resp); err != nil {
		return nil, fmt.Errorf("clear notifications failed: %w", err)
	}
	return &resp, nil
}

// UnreadCount возвращает число непрочитанных уведомлений
func (s *NotificationsService) UnreadCount(ctx context.Context) (*api.NotificationsUnreadResponse, error) {
	var resp api.NotificationsUnreadResponse
	if err := s.client.Get(ctx, "/api/notifications/unread-count", nil, &resp); err != nil {
		return nil, fmt.Errorf("notifications unread count failed: %w", err)
	}
	return &resp, nil
}

// UpdateFcmToken регистрирует push-токен устройства
func (s *NotificationsService) UpdateFcmToken(ctx context.Context, token string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Put(ctx, "/api/notifications/fcm-token", api.FcmTokenRequest{Token: token}, &resp); err != nil {
		return nil, fmt.Errorf("update fcm token failed: %w", err)
	}
	return &resp, nil
}
