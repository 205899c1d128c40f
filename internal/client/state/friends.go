package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/pkg/api"
)

const friendsErrFallback = "Impossible de charger les amis."

const friendsPerPage = 30

// Friends держит список друзей, входящие заявки и черный список.
// Мутации best-effort: ошибка не показывается пользователю,
// а уходит в Reporter.
type Friends struct {
	mu       sync.Mutex
	svc      *services.FriendsService
	rep      reporter
	friends  []api.FriendEntry
	requests []api.FriendRequestEntry
	blocked  []api.BlockedEntry
	loading  bool
	err      string
}

// FriendsSnapshot — согласованный срез состояния
type FriendsSnapshot struct {
	Friends  []api.FriendEntry
	Requests []api.FriendRequestEntry
	Blocked  []api.BlockedEntry
	Loading  bool
	Err      string
}

// NewFriends создает store друзей
func NewFriends(svc *services.FriendsService, logger *slog.Logger, onError Reporter) *Friends {
	return &Friends{
		svc:     svc,
		rep:     newReporter(logger, onError),
		loading: true,
	}
}

// Fetch загружает все три списка. Ошибка основного списка попадает
// в err, заявки и черный список подтягиваются best-effort.
func (f *Friends) Fetch(ctx context.Context) {
	f.mu.Lock()
	f.loading = true
	f.err = ""
	f.mu.Unlock()

	resp, err := f.svc.List(ctx, 1, friendsPerPage)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.err = userMessage(err, friendsErrFallback)
	} else {
		f.friends = resp.Friends
	}
	f.mu.Unlock()

	f.fetchRequests(ctx)
	f.fetchBlocked(ctx)
}

func (f *Friends) fetchRequests(ctx context.Context) {
	resp, err := f.svc.Requests(ctx)
	if err != nil {
		f.rep.report(ctx, "fetch_friend_requests", err)
		return
	}
	f.mu.Lock()
	f.requests = resp.Received
	f.mu.Unlock()
}

func (f *Friends) fetchBlocked(ctx context.Context) {
	resp, err := f.svc.Blocked(ctx)
	if err != nil {
		f.rep.report(ctx, "fetch_blocked", err)
		return
	}
	f.mu.Lock()
	f.blocked = resp.Blocked
	f.mu.Unlock()
}

// refetchFriends перечитывает только список друзей, без заявок
func (f *Friends) refetchFriends(ctx context.Context) {
	resp, err := f.svc.List(ctx, 1, friendsPerPage)
	if err != nil {
		f.rep.report(ctx, "refetch_friends", err)
		return
	}
	f.mu.Lock()
	f.friends = resp.Friends
	f.mu.Unlock()
}

// Accept принимает заявку, убирает ее из списка и перечитывает друзей
func (f *Friends) Accept(ctx context.Context, friendshipID int64) {
	if _, err := f.svc.AcceptRequest(ctx, friendshipID); err != nil {
		f.rep.report(ctx, "accept_friend_request", err)
		return
	}

	f.mu.Lock()
	f.requests = dropRequest(f.requests, friendshipID)
	f.mu.Unlock()

	f.refetchFriends(ctx)
}

// Reject отклоняет заявку и убирает ее из списка
func (f *Friends) Reject(ctx context.Context, friendshipID int64) {
	if _, err := f.svc.RejectRequest(ctx, friendshipID); err != nil {
		f.rep.report(ctx, "reject_friend_request", err)
		return
	}

	f.mu.Lock()
	f.requests = dropRequest(f.requests, friendshipID)
	f.mu.Unlock()
}

// Remove удаляет из друзей
func (f *Friends) Remove(ctx context.Context, friendshipID int64) {
	if _, err := f.svc.Remove(ctx, friendshipID); err != nil {
		f.rep.report(ctx, "remove_friend", err)
		return
	}

	f.mu.Lock()
	kept := f.friends[:0]
	for _, fr := range f.friends {
		if fr.FriendshipID != friendshipID {
			kept = append(kept, fr)
		}
	}
	f.friends = kept
	f.mu.Unlock()
}

// Block блокирует пользователя и перечитывает затронутые списки
func (f *Friends) Block(ctx context.Context, userID int64) {
	if _, err := f.svc.Block(ctx, userID); err != nil {
		f.rep.report(ctx, "block_user", err)
		return
	}

	f.fetchBlocked(ctx)
	f.refetchFriends(ctx)
}

// Unblock разблокирует пользователя
func (f *Friends) Unblock(ctx context.Context, userID int64) {
	if _, err := f.svc.Unblock(ctx, userID); err != nil {
		f.rep.report(ctx, "unblock_user", err)
		return
	}

	f.mu.Lock()
	kept := f.blocked[:0]
	for _, b := range f.blocked {
		if b.User.ID != userID {
			kept = append(kept, b)
		}
	}
	f.blocked = kept
	f.mu.Unlock()
}

// SendRequest отправляет заявку в друзья и перечитывает заявки
func (f *Friends) SendRequest(ctx context.Context, userID int64) {
	if _, err := f.svc.SendRequest(ctx, userID); err != nil {
		f.rep.report(ctx, "send_friend_request", err)
		return
	}

	f.fetchRequests(ctx)
}

// Snapshot возвращает копию текущего состояния
func (f *Friends) Snapshot() FriendsSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FriendsSnapshot{
		Friends:  append([]api.FriendEntry(nil), f.friends...),
		Requests: append([]api.FriendRequestEntry(nil), f.requests...),
		Blocked:  append([]api.BlockedEntry(nil), f.blocked...),
		Loading:  f.loading,
		Err:      f.err,
	}
}

func dropRequest(list []api.FriendRequestEntry, friendshipID int64) []api.FriendRequestEntry {
	kept := list[:0]
	for _, r := range list {
		if r.FriendshipID != friendshipID {
			kept = append(kept, r)
		}
	}
	return kept
}
