package services

import (
	"context"
	"fmt"

	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

// AuthService оборачивает эндпоинты /api/auth
type AuthService struct {
	client *transport.Client
}

// Register создает новый аккаунт, ответ эквивалентен свежему логину
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := s.client.Post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию по email и паролю
func (s *AuthService) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := s.client.Post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует сессию на сервере
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me возвращает профиль текущего пользователя
func (s *AuthService) Me(ctx context.Context) (*api.User, error) {
	var resp api.MeResponse
	if err := s.client.Get(ctx, "/api/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp.User, nil
}

// ChangePassword ротирует пароль аккаунта
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*api.MessageResponse, error) {
	req := api.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}
	var resp api.MessageResponse
	if err := s.client.Post(ctx, "/api/auth/change-password", req, &resp); err != nil {
		return nil, fmt.Errorf("change password request failed: %w", err)
	}
	return &resp, nil
}

// CheckEmail проверяет доступность email при регистрации
func (s *AuthService) CheckEmail(ctx context.Context, email string) (*api.AvailabilityResponse, error) {
	var resp api.AvailabilityResponse
	if err := s.client.Post(ctx, "/api/auth/check-email", api.CheckEmailRequest{Email: email}, &resp); err != nil {
		return nil, fmt.Errorf("check email request failed: %w", err)
	}
	return &resp, nil
}

// CheckPseudo проверяет доступность псевдонима при регистрации
func (s *AuthService) CheckPseudo(ctx context.Context, pseudo string) (*api.AvailabilityResponse, error) {
	var resp api.AvailabilityResponse
	if err := s.client.Post(ctx, "/api/auth/check-pseudo", api.CheckPseudoRequest{Pseudo: pseudo}, &resp); err != nil {
		return nil, fmt.Errorf("check pseudo request failed: %w", err)
	}
	return &resp, nil
}
