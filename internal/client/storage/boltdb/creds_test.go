package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gocial-client/internal/client/storage"
	"github.com/iudanet/gocial-client/pkg/api"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s, dbPath
}

func testUser() *api.User {
	pseudo := "alice"
	return &api.User{
		ID:       7,
		Email:    "alice@example.com",
		UserType: api.UserTypePerson,
		Pseudo:   &pseudo,
		Language: "fr",
	}
}

// TestStorage_SessionRoundTrip проверяет, что все три ключа сессии
// читаются обратно теми же значениями
func TestStorage_SessionRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	user := testUser()
	require.NoError(t, s.SaveSession(ctx, "access-1", "refresh-1", user))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-1", access)

	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)

	stored, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

// TestStorage_NotFound проверяет сигнальную ошибку пустого хранилища
func TestStorage_NotFound(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	_, err := s.AccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.RefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.User(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// TestStorage_SetAccessToken проверяет перезапись access token
// (refresh flow трогает только его)
func TestStorage_SetAccessToken(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "access-1", "refresh-1", testUser()))
	require.NoError(t, s.SetAccessToken(ctx, "access-2"))

	access, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", access)

	// Refresh token не изменился
	refresh, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)
}

// TestStorage_Clear проверяет атомарную очистку всех трех ключей
func TestStorage_Clear(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, "access-1", "refresh-1", testUser()))
	require.NoError(t, s.Clear(ctx))

	_, err := s.AccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.RefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.User(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Повторная очистка пустого хранилища не ошибка
	assert.NoError(t, s.Clear(ctx))
}

// TestStorage_ClientID проверяет, что идентификатор установки
// генерируется один раз и переживает переоткрытие базы и Clear
func TestStorage_ClientID(t *testing.T) {
	s, dbPath := newTestStorage(t)
	ctx := context.Background()

	id1, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	// Clear сессии не трогает client id
	require.NoError(t, s.Clear(ctx))
	id3, err := s.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id1, id3)

	// Переоткрываем базу
	require.NoError(t, s.Close())
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		_ = reopened.Close()
	}()

	id4, err := reopened.ClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id1, id4)
}
