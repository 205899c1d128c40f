package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gocial-client/internal/client/storage/memory"
	"github.com/iudanet/gocial-client/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	creds := memory.New()
	client := NewClient("http://localhost:5000", 15*time.Second, creds)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:5000", client.BaseURL())
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
}

// TestClient_BearerInjection проверяет, что access token из хранилища
// попадает в заголовок Authorization каждого запроса
func TestClient_BearerInjection(t *testing.T) {
	creds := memory.New()
	require.NoError(t, creds.SetAccessToken(context.Background(), "token-123"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, creds)

	var resp api.MessageResponse
	err := client.Get(context.Background(), "/api/auth/me", nil, &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

// TestClient_NoToken проверяет, что отсутствие токена не ошибка:
// запрос уходит неаутентифицированным
func TestClient_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, memory.New())

	var resp api.MessageResponse
	err := client.Post(context.Background(), "/api/auth/login", api.LoginRequest{Email: "a@b.c"}, &resp)
	require.NoError(t, err)
}

// TestClient_ClientIDHeader проверяет передачу идентификатора установки
func TestClient_ClientIDHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "install-42", r.Header.Get("X-Client-ID"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, memory.New(), WithClientID("install-42"))

	err := client.Get(context.Background(), "/api/activities/", nil, nil)
	require.NoError(t, err)
}

// TestClient_HTTPError проверяет типизацию не-2xx ответов
func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "activity not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, memory.New())

	err := client.Get(context.Background(), "/api/activities/99", nil, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "activity not found", httpErr.ServerMessage())
	assert.Contains(t, err.Error(), "404")
}

// TestClient_NetworkError проверяет типизацию транспортных сбоев
func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже мертв

	client := NewClient(server.URL, time.Second, memory.New())

	err := client.Get(context.Background(), "/api/activities/", nil, nil)
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

// TestClient_QueryEncoding проверяет сборку query string
func TestClient_QueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/search", r.URL.Path)
		assert.Equal(t, "bob", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, memory.New())

	params := url.Values{}
	params.Set("q", "bob")
	params.Set("page", "1")
	err := client.Get(context.Background(), "/api/users/search", params, nil)
	require.NoError(t, err)
}

// TestClient_DecodeError проверяет ошибку разбора некорректного JSON
func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 15*time.Second, memory.New())

	var resp api.MessageResponse
	err := client.Get(context.Background(), "/api/auth/me", nil, &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
