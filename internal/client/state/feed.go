package state

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/pkg/api"
)

const feedErrFallback = "Impossible de charger les activités."

// Feed держит ленту активностей: основной список и топ-3 по лайкам
// для карусели. Лайки мутируются оптимистично; при ошибке сети store
// не откатывает патч вручную, а перечитывает список целиком,
// синхронизируясь с серверной правдой.
type Feed struct {
	mu         sync.Mutex
	svc        *services.ActivitiesService
	filters    services.ActivityFilters
	rep        reporter
	activities []api.Activity
	top        []api.Activity
	loading    bool
	refreshing bool
	err        string
}

// FeedSnapshot — согласованный срез состояния ленты
type FeedSnapshot struct {
	Activities []api.Activity
	Top        []api.Activity
	Loading    bool
	Refreshing bool
	Err        string
}

// FeedOption настраивает Feed
type FeedOption func(*Feed)

// WithFeedReporter подключает observability hook
func WithFeedReporter(fn Reporter) FeedOption {
	return func(f *Feed) {
		f.rep.fn = fn
	}
}

// NewFeed создает ленту с фиксированными фильтрами
func NewFeed(svc *services.ActivitiesService, filters services.ActivityFilters, logger *slog.Logger, opts ...FeedOption) *Feed {
	f := &Feed{
		svc:     svc,
		filters: filters,
		rep:     newReporter(logger, nil),
		loading: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch загружает ленту с полноэкранным loading состоянием
func (f *Feed) Fetch(ctx context.Context) {
	f.fetch(ctx, false)
}

// Refresh перечитывает ленту под pull-to-refresh: флаг refreshing
// вместо loading, текущие данные остаются на экране.
func (f *Feed) Refresh(ctx context.Context) {
	f.fetch(ctx, true)
}

func (f *Feed) fetch(ctx context.Context, isRefresh bool) {
	f.mu.Lock()
	if isRefresh {
		f.refreshing = true
	} else {
		f.loading = true
	}
	f.err = ""
	f.mu.Unlock()

	resp, err := f.svc.List(ctx, f.filters)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.refreshing = false

	if err != nil {
		f.err = userMessage(err, feedErrFallback)
		return
	}

	f.activities = resp.Activities
	f.top = topByLikes(resp.Activities, 3)
}

// ToggleLike оптимистично переключает лайк в обоих списках и шлет
// соответствующий запрос. При отказе сервера — полный refetch вместо
// точечного отката.
func (f *Feed) ToggleLike(ctx context.Context, activityID int64) {
	f.mu.Lock()
	var wasLiked, found bool
	for i := range f.activities {
		if f.activities[i].ID == activityID {
			wasLiked = f.activities[i].IsLiked
			found = true
			break
		}
	}
	if !found {
		f.mu.Unlock()
		return
	}
	toggleLike(f.activities, activityID)
	toggleLike(f.top, activityID)
	f.mu.Unlock()

	var err error
	if wasLiked {
		_, err = f.svc.Unlike(ctx, activityID)
	} else {
		_, err = f.svc.Like(ctx, activityID)
	}
	if err != nil {
		f.rep.report(ctx, "toggle_like", err)
		// Ресинхронизация с сервером вместо ручного отката
		f.fetch(ctx, false)
	}
}

// Snapshot возвращает копию текущего состояния
func (f *Feed) Snapshot() FeedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FeedSnapshot{
		Activities: append([]api.Activity(nil), f.activities...),
		Top:        append([]api.Activity(nil), f.top...),
		Loading:    f.loading,
		Refreshing: f.refreshing,
		Err:        f.err,
	}
}

// toggleLike применяет оптимистичный патч лайка к списку на месте
func toggleLike(list []api.Activity, activityID int64) {
	for i := range list {
		if list[i].ID != activityID {
			continue
		}
		if list[i].IsLiked {
			list[i].IsLiked = false
			if list[i].LikesCount > 0 {
				list[i].LikesCount--
			}
		} else {
			list[i].IsLiked = true
			list[i].LikesCount++
		}
	}
}

// topByLikes возвращает n активностей с наибольшим числом лайков
func topByLikes(list []api.Activity, n int) []api.Activity {
	sorted := append([]api.Activity(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LikesCount > sorted[j].LikesCount
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
