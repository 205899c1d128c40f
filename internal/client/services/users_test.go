package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gocial-client/pkg/api"
)

// TestUsers_Search: пустые опциональные фильтры не попадают в query
func TestUsers_Search(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/search", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "bob", query.Get("q"))
		assert.Equal(t, "1", query.Get("page"))
		assert.False(t, query.Has("type"))
		assert.False(t, query.Has("city"))
		_ = json.NewEncoder(w).Encode(api.SearchUsersResponse{})
	})

	_, err := svcs.Users.Search(context.Background(), "bob", "", "", 1)
	require.NoError(t, err)
}

// TestUsers_SearchWithFilters: заполненные фильтры отправляются
func TestUsers_SearchWithFilters(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "pro", query.Get("type"))
		assert.Equal(t, "Paris", query.Get("city"))
		_ = json.NewEncoder(w).Encode(api.SearchUsersResponse{})
	})

	_, err := svcs.Users.Search(context.Background(), "bob", "pro", "Paris", 1)
	require.NoError(t, err)
}

// TestUsers_UpdateProfile: nil-поля patch не сериализуются в тело PUT
func TestUsers_UpdateProfile(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/profile", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"city":"Lyon"}`, string(body))

		_ = json.NewEncoder(w).Encode(api.UpdateProfileResponse{Message: "ok"})
	})

	city := "Lyon"
	_, err := svcs.Users.UpdateProfile(context.Background(), api.UserPatch{City: &city})
	require.NoError(t, err)
}

// TestUsers_UploadAvatar проверяет multipart загрузку с полем file
func TestUsers_UploadAvatar(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile/avatar", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "avatar.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		_ = json.NewEncoder(w).Encode(api.UploadAvatarResponse{Message: "ok"})
	})

	_, err := svcs.Users.UploadAvatar(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
}
