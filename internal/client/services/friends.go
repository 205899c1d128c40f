package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// FriendsService оборачивает эндпоинты /api/friends
type FriendsService struct {
	client *transport.Client
}

// List возвращает страницу списка друзей
func (s *FriendsService) List(ctx context.Context, page, perPage int) (*api.FriendsResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	var resp api.FriendsResponse
	if err := s.client.Get(ctx, "/api/friends/", params, &resp); err != nil {
		return nil, fmt.Errorf("list friends request failed: %w", err)
	}
	return &resp, nil
}

// Requests возвращает входящие и исходящие заявки в друзья
func (s *FriendsService) Requests(ctx context.Context) (*api.FriendRequestsResponse, error) {
	var resp api.FriendRequestsResponse
	if err := s.client.Get(ctx, "/api/friends/requests", nil, &resp); err != nil {
		return nil, fmt.Errorf("friend requests request failed: %w", err)
	}
	return &resp, nil
}

// SendRequest отправляет заявку в друзья пользователю
func (s *FriendsService) SendRequest(ctx context.Context, userID int64) (*api.SendFriendRequestResponse, error) {
	var resp api.SendFriendRequestResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/friends/request/%d", userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("send friend request failed: %w", err)
	}
	return &resp, nil
}

// AcceptRequest принимает входящую заявку
func (s *FriendsService) AcceptRequest(ctx context.Context, friendshipID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/friends/request/%d/accept", friendshipID), nil, &resp); err != nil {
		return nil, fmt.Errorf("accept friend request failed: %w", err)
	}
	return &resp, nil
}

// RejectRequest отклоняет входящую заявку
func (s *FriendsService) RejectRequest(ctx context.Context, friendshipID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/friends/request/%d/reject", friendshipID), nil, &resp); err != nil {
		return nil, fmt.Errorf("reject friend request failed: %w", err)
	}
	return &resp, nil
}

// CancelRequest отзывает исходящую заявку
func (s *FriendsService) CancelRequest(ctx context.Context, friendshipID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/friends/request/%d/cancel", friendshipID), nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel friend request failed: %w", err)
	}
	return &resp, nil
}

// Remove удаляет пользователя из друзей
func (s *FriendsService) Remove(ctx context.Context, friendID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/friends/%d", friendID), nil, &resp); err != nil {
		return nil, fmt.Errorf("remove friend request failed: %w", err)
	}
	return &resp, nil
}

// Block блокирует пользователя
func (s *FriendsService) Block(ctx context.Context, userID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/api/friends/block/%d", userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("block user request failed: %w", err)
	}
	return &resp, nil
}

// Unblock разблокирует пользователя
func (s *FriendsService) Unblock(ctx context.Context, userID int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := s.client.Delete(ctx, fmt.Sprintf("/api/friends/block/%d", userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("unblock user request failed: %w", err)
	}
	return &resp, nil
}

// Blocked возвращает черный список
func (s *FriendsService) Blocked(ctx context.Context) (*api.BlockedResponse, error) {
	var resp api.BlockedResponse
	if err := s.client.Get(ctx, "/api/friends/blocked", nil, &resp); err != nil {
		return nil, fmt.Errorf("blocked list request failed: %w", err)
	}
	return &resp, nil
}

// Status возвращает статус дружбы с пользователем
func (s *FriendsService) Status(ctx context.Context, userID int64) (*api.FriendStatusResponse, error) {
	var resp api.FriendStatusResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/api/friends/status/%d", userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("friend status request failed: %w", err)
	}
	return &resp, nil
}
