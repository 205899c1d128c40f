// Package memory содержит CredentialStore в памяти процесса.
// Используется в тестах и для эфемерных сессий без файла на диске.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/gocial-client/internal/client/storage"
	"github.com/iudanet/gocial-client/pkg/api"
)

// Store хранит credentials в памяти. Потокобезопасен.
type Store struct {
	mu           sync.Mutex
	accessToken  *string
	refreshToken *string
	user         *api.User
	clientID     string
}

// Compile-time check that Store implements CredentialStore
var _ storage.CredentialStore = (*Store)(nil)

// New создает пустое хранилище
func New() *Store {
	return &Store{}
}

func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = &token
	return nil
}

func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken == nil {
		return "", storage.ErrNotFound
	}
	return *s.accessToken, nil
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refreshToken == nil {
		return "", storage.ErrNotFound
	}
	return *s.refreshToken, nil
}

func (s *Store) SetUser(ctx context.Context, user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	return nil
}

func (s *Store) User(ctx context.Context) (*api.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, storage.ErrNotFound
	}
	u := *s.user
	return &u, nil
}

func (s *Store) SaveSession(ctx context.Context, accessToken, refreshToken string, user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = &accessToken
	s.refreshToken = &refreshToken
	u := *user
	s.user = &u
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = nil
	s.refreshToken = nil
	s.user = nil
	return nil
}

func (s *Store) ClientID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clientID == "" {
		s.clientID = uuid.New().String()
	}
	return s.clientID, nil
}

// SetRefreshToken выставляет refresh token напрямую (тестовый хелпер)
func (s *Store) SetRefreshToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshToken = &token
	return nil
}
