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

func testNotifications() []api.Notification {
	return []api.Notification{
		{ID: 1, Type: "friend_request", Title: "Nouvelle demande d'ami", IsRead: false},
		{ID: 2, Type: "activity_like", Title: "Quelqu'un aime votre activité", IsRead: false},
		{ID: 3, Type: "message", Title: "Nouveau message", IsRead: true},
	}
}

// TestNotifications_Fetch проверяет загрузку и подсчет непрочитанных
func TestNotifications_Fetch(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "false", r.URL.Query().Get("unread_only"))
		_ = json.NewEncoder(w).Encode(api.NotificationsResponse{Notifications: testNotifications()})
	})

	store := NewNotifications(svcs.Notifications, nil, nil)
	store.Fetch(context.Background())

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	assert.Len(t, snap.Notifications, 3)
	assert.Equal(t, 2, snap.Unread)
}

// TestNotifications_MarkReadOptimistic: счетчик и флаг меняются сразу,
// без отката при успехе
func TestNotifications_MarkReadOptimistic(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/notifications/1/read" {
			assert.Equal(t, http.MethodPost, r.Method)
			_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "ok"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.NotificationsResponse{Notifications: testNotifications()})
	})

	store := NewNotifications(svcs.Notifications, nil, nil)
	store.Fetch(context.Background())
	store.MarkRead(context.Background(), 1)

	snap := store.Snapshot()
	assert.True(t, snap.Notifications[0].IsRead)
	assert.Equal(t, 1, snap.Unread)
}

// TestNotifications_MarkReadFailure: оптимистичный патч не откатывается,
// ошибка уходит в Reporter
func TestNotifications_MarkReadFailure(t *testing.T) {
	var reported atomic.Int32
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/notifications/1/read" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(api.NotificationsResponse{Notifications: testNotifications()})
	})

	store := NewNotifications(svcs.Notifications, nil, func(op string, err error) {
		reported.Add(1)
		assert.Equal(t, "mark_notification_read", op)
		assert.Error(t, err)
	})
	store.Fetch(context.Background())
	store.MarkRead(context.Background(), 1)

	snap := store.Snapshot()
	// Патч остается, расхождение снимет следующий Fetch
	assert.True(t, snap.Notifications[0].IsRead)
	assert.Equal(t, 1, snap.Unread)
	assert.Equal(t, int32(1), reported.Load())
}

// TestNotifications_MarkAllRead обнуляет счетчик
func TestNotifications_MarkAllRead(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/notifications/read-all" {
			_ = json.NewEncoder(w).Encode(api.CountResponse{Message: "ok", Count: 2})
			return
		}
		_ = json.NewEncoder(w).Encode(api.NotificationsResponse{Notifications: testNotifications()})
	})

	store := NewNotifications(svcs.Notifications, nil, nil)
	store.Fetch(context.Background())
	store.MarkAllRead(context.Background())

	snap := store.Snapshot()
	assert.Equal(t, 0, snap.Unread)
	for _, notif := range snap.Notifications {
		assert.True(t, notif.IsRead)
	}
}

// TestNotifications_Delete убирает уведомление из списка только после
// подтверждения сервера
func TestNotifications_Delete(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/notifications/2" {
			assert.Equal(t, http.MethodDelete, r.Method)
			_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "deleted"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.NotificationsResponse{Notifications: testNotifications()})
	})

	store := NewNotifications(svcs.Notifications, nil, nil)
	store.Fetch(context.Background())
	store.Delete(context.Background(), 2)

	snap := store.Snapshot()
	require.Len(t, snap.Notifications, 2)
	for _, notif := range snap.Notifications {
		assert.NotEqual(t, int64(2), notif.ID)
	}
}
