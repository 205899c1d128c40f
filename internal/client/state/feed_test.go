package state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/internal/client/storage/memory"
	"github.com/iudanet/gocial-client/internal/client/transport"
	"github.com/iudanet/gocial-client/pkg/api"
)

func newTestServices(t *testing.T, handler http.HandlerFunc) *services.Services {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := transport.NewClient(server.URL, 15*time.Second, memory.New())
	return services.New(client)
}

func feedActivities() []api.Activity {
	return []api.Activity{
		{ID: 7, Title: "Football", IsLiked: false, LikesCount: 2},
		{ID: 8, Title: "Cinéma", IsLiked: true, LikesCount: 9},
		{ID: 9, Title: "Randonnée", IsLiked: false, LikesCount: 5},
	}
}

// TestFeed_Fetch проверяет загрузку ленты и выбор топа по лайкам
func TestFeed_Fetch(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.ActivitiesResponse{Activities: feedActivities()})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil)
	assert.True(t, feed.Snapshot().Loading)

	feed.Fetch(context.Background())

	snap := feed.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Refreshing)
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Activities, 3)
	require.Len(t, snap.Top, 3)
	// Топ отсортирован по убыванию лайков
	assert.Equal(t, int64(8), snap.Top[0].ID)
	assert.Equal(t, int64(9), snap.Top[1].ID)
}

// TestFeed_FetchError: ошибка сервера попадает в Err, loading снимается
func TestFeed_FetchError(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "database unavailable"})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil)
	feed.Fetch(context.Background())

	snap := feed.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "database unavailable", snap.Err)
	assert.Empty(t, snap.Activities)
}

// TestFeed_FetchErrorFallback: без сообщения сервера показывается
// локализованный fallback
func TestFeed_FetchErrorFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // транспортная ошибка, не HTTP

	client := transport.NewClient(server.URL, time.Second, memory.New())
	feed := NewFeed(services.New(client).Activities, services.ActivityFilters{}, nil)
	feed.Fetch(context.Background())

	assert.Equal(t, "Impossible de charger les activités.", feed.Snapshot().Err)
}

// TestFeed_Refresh держит текущие данные на экране и поднимает
// refreshing вместо loading
func TestFeed_Refresh(t *testing.T) {
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.ActivitiesResponse{Activities: feedActivities()})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil)
	feed.Fetch(context.Background())
	feed.Refresh(context.Background())

	snap := feed.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Refreshing)
	assert.Len(t, snap.Activities, 3)
}

// TestFeed_ToggleLikeOptimistic: лайк применяется к локальному состоянию
// сразу, до ответа сервера
func TestFeed_ToggleLikeOptimistic(t *testing.T) {
	var likeCalled atomic.Bool
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/activities/7/like" {
			likeCalled.Store(true)
			assert.Equal(t, http.MethodPost, r.Method)
			_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "liked"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.ActivitiesResponse{Activities: feedActivities()})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil)
	feed.Fetch(context.Background())

	feed.ToggleLike(context.Background(), 7)

	snap := feed.Snapshot()
	assert.True(t, likeCalled.Load())
	assert.True(t, snap.Activities[0].IsLiked)
	assert.Equal(t, 3, snap.Activities[0].LikesCount)
}

// TestFeed_ToggleLikeResync: при отказе сервера store не откатывает
// патч вручную, а перечитывает список и возвращается к серверной правде
func TestFeed_ToggleLikeResync(t *testing.T) {
	var reported atomic.Int32
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/activities/7/like" {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "like failed"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.ActivitiesResponse{Activities: feedActivities()})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil,
		WithFeedReporter(func(op string, err error) {
			reported.Add(1)
			assert.Equal(t, "toggle_like", op)
		}))
	feed.Fetch(context.Background())

	feed.ToggleLike(context.Background(), 7)

	snap := feed.Snapshot()
	// Серверная правда восстановлена
	assert.False(t, snap.Activities[0].IsLiked)
	assert.Equal(t, 2, snap.Activities[0].LikesCount)
	assert.Equal(t, int32(1), reported.Load())
}

// TestFeed_ToggleLikeUnknownID: лайк несуществующей активности — no-op
func TestFeed_ToggleLikeUnknownID(t *testing.T) {
	var likeCalls atomic.Int32
	svcs := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/activities/99/like" {
			likeCalls.Add(1)
		}
		_ = json.NewEncoder(w).Encode(api.ActivitiesResponse{Activities: feedActivities()})
	})

	feed := NewFeed(svcs.Activities, services.ActivityFilters{}, nil)
	feed.Fetch(context.Background())

	feed.ToggleLike(context.Background(), 99)
	assert.Equal(t, int32(0), likeCalls.Load())
}
