package state

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gocial-client/pkg/api"
)

func threadResponse() api.ThreadResponse {
	pseudo := "bob"
	return api.ThreadResponse{
		Partner: api.UserPublic{ID: 3, Pseudo: &pseudo},
		Messages: []api.ThreadMessage{
			{ID: 10, Content: "Salut !", SentByMe: false, MessageType: "text"},
		},
	}
}

// TestInbox_Fetch загружает диалоги и счетчик непрочитанных
func TestInbox_Fetch(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/messages/conversations":
			_ = json.NewEncoder(w).Encode(api.ConversationsResponse{
				Conversations: []api.Conversation{
					{Partner: api.User{ID: 3}, UnreadCount: 2},
				},
			})
		case "/api/messages/unread-count":
			_ = json.NewEncoder(w).Encode(api.UnreadCountResponse{TotalUnread: 2})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	inbox := NewInbox(svcs.Messages, nil, nil)
	inbox.Fetch(context.Background())

	snap := inbox.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Conversations, 1)
	assert.Equal(t, 2, snap.Unread)
}

// TestInbox_FetchUnreadBestEffort: падение счетчика не ломает
// основной список, ошибка уходит в Reporter
func TestInbox_FetchUnreadBestEffort(t *testing.T) {
	var reported atomic.Int32
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/messages/unread-count" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(api.ConversationsResponse{
			Conversations: []api.Conversation{{Partner: api.User{ID: 3}}},
		})
	})

	inbox := NewInbox(svcs.Messages, nil, func(op string, err error) {
		reported.Add(1)
		assert.Equal(t, "fetch_unread_count", op)
	})
	inbox.Fetch(context.Background())

	snap := inbox.Snapshot()
	assert.Empty(t, snap.Err)
	assert.Len(t, snap.Conversations, 1)
	assert.Equal(t, int32(1), reported.Load())
}

// TestThread_Fetch загружает переписку с собеседником
func TestThread_Fetch(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages/with/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(threadResponse())
	})

	thread := NewThread(svcs.Messages, 3, nil, nil)
	thread.Fetch(context.Background())

	snap := thread.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Partner)
	assert.Equal(t, int64(3), snap.Partner.ID)
	require.Len(t, snap.Messages, 1)
}

// TestThread_SendOptimistic: успешная отправка замещает временную
// запись серверной (с id и timestamp)
func TestThread_SendOptimistic(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/messages/send/3" {
			var req api.SendMessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Ça marche", req.Content)
			assert.Equal(t, "text", req.Type)

			_ = json.NewEncoder(w).Encode(api.SendMessageResponse{
				Message: "sent",
				Data: api.ThreadMessage{
					ID: 11, Content: req.Content, SentByMe: true,
					SentAt: "2026-08-29T12:00:00Z", MessageType: "text",
				},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(threadResponse())
	})

	thread := NewThread(svcs.Messages, 3, nil, nil)
	thread.Fetch(context.Background())
	thread.Send(context.Background(), "Ça marche")

	snap := thread.Snapshot()
	require.Len(t, snap.Messages, 2)
	last := snap.Messages[1]
	assert.Equal(t, int64(11), last.ID)
	assert.Equal(t, "Ça marche", last.Content)
	assert.True(t, last.SentByMe)
	assert.NotEmpty(t, last.SentAt)
}

// TestThread_SendFailureRefetch: отказ отправки снимает оптимистичную
// запись полным refetch
func TestThread_SendFailureRefetch(t *testing.T) {
	var reported atomic.Int32
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/messages/send/3" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(threadResponse())
	})

	thread := NewThread(svcs.Messages, 3, nil, func(op string, err error) {
		reported.Add(1)
		assert.Equal(t, "send_message", op)
	})
	thread.Fetch(context.Background())
	thread.Send(context.Background(), "Ça marche")

	snap := thread.Snapshot()
	// Временное сообщение исчезло, остался серверный список
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, int64(10), snap.Messages[0].ID)
	assert.Equal(t, int32(1), reported.Load())
}
