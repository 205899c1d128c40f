package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// UsersService оборачивает эндпоинты /api/users
type UsersService struct {
	client *transport.Client
}

// Get возвращает чужой профиль со статусом дружбы
func (s *UsersService) Get(ctx context.Context, userID int64) (*api.GetUserResponse, error) {
	var resp api.GetUserResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/api/users/%d", userID), nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile частично обновляет профиль текущего пользователя
func (s *UsersService) UpdateProfile(ctx context.Context, patch api.UserPatch) (*api.UpdateProfileResponse, error) {
	var resp api.UpdateProfileResponse
	if err := s.client.Put(ctx, "/api/users/profile", patch, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// UploadAvatar загружает аватар (multipart, поле file)
func (s *UsersService) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*api.UploadAvatarResponse, error) {
	var resp api.UploadAvatarResponse
	if err := s.client.PostMultipart(ctx, "/api/users/profile/avatar", "file", fileName, file, &resp); err != nil {
		return nil, fmt.Errorf("upload avatar request failed: %w", err)
	}
	return &resp, nil
}

// Search ищет пользователей. userType и city опциональны и
// не попадают в query string, если пусты.
func (s *UsersService) Search(ctx context.Context, query, userType, city string, page int) (*api.SearchUsersResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	if userType != "" {
		params.Set("type", userType)
	}
	if city != "" {
		params.Set("city", city)
	}

	var resp api.SearchUsersResponse
	if err := s.client.Get(ctx, "/api/users/search", params, &resp); err != nil {
		return nil, fmt.Errorf("search users request failed: %w", err)
	}
	return &resp, nil
}

// Activities возвращает активности пользователя
func (s *UsersService) Activities(ctx context.Context, userID int64, page int, includePast bool) (*api.UserActivitiesResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("include_past", strconv.FormatBool(includePast))

	var resp api.UserActivitiesResponse
	if err := s.client.Get(ctx, fmt.Sprintf("/api/users/%d/activities", userID), params, &resp); err != nil {
		return nil, fmt.Errorf("user activities request failed: %w", err)
	}
	return &resp, nil
}

// Deactivate временно деактивирует аккаунт
func (s *UsersService) Deactivate(ctx context.Context, password string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	req := api.DeactivateAccountRequest{Password: password}
	if err := s.client.Post(ctx, "/api/users/deactivate", req, &resp); err != nil {
		return nil, fmt.Errorf("deactivate account request failed: %w", err)
	}
	return &resp, nil
}

// Delete безвозвратно удаляет аккаунт
func (s *UsersService) Delete(ctx context.Context, password, confirmation string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	req := api.DeleteAccountRequest{Password: password, Confirmation: confirmation}
	if err := s.client.Delete(ctx, "/api/users/delete", req, &resp); err != nil {
		return nil, fmt.Errorf("delete account request failed: %w", err)
	}
	return &resp, nil
}
