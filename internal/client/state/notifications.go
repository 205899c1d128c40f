package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/pkg/api"
)

const notificationsErrFallback = "Impossible de charger les notifications."

// Notifications держит список уведомлений и счетчик непрочитанных.
// Mark-read мутации оптимистичны и не откатываются: расхождение
// со счетчиком сервера исчезнет при следующем Fetch.
type Notifications struct {
	mu            sync.Mutex
	svc           *services.NotificationsService
	rep           reporter
	notifications []api.Notification
	unread        int
	loading       bool
	err           string
}

// NotificationsSnapshot — согласованный срез состояния
type NotificationsSnapshot struct {
	Notifications []api.Notification
	Unread        int
	Loading       bool
	Err           string
}

// NewNotifications создает store уведомлений
func NewNotifications(svc *services.NotificationsService, logger *slog.Logger, onError Reporter) *Notifications {
	return &Notifications{
		svc:     svc,
		rep:     newReporter(logger, onError),
		loading: true,
	}
}

// Fetch загружает первую страницу уведомлений
func (n *Notifications) Fetch(ctx context.Context) {
	n.mu.Lock()
	n.loading = true
	n.err = ""
	n.mu.Unlock()

	resp, err := n.svc.List(ctx, 1, false)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.loading = false
	if err != nil {
		n.err = userMessage(err, notificationsErrFallback)
		return
	}

	n.notifications = resp.Notifications
	unread := 0
	for _, notif := range resp.Notifications {
		if !notif.IsRead {
			unread++
		}
	}
	n.unread = unread
}

// MarkRead оптимистично помечает уведомление прочитанным
func (n *Notifications) MarkRead(ctx context.Context, notifID int64) {
	n.mu.Lock()
	for i := range n.notifications {
		if n.notifications[i].ID == notifID && !n.notifications[i].IsRead {
			n.notifications[i].IsRead = true
			if n.unread > 0 {
				n.unread--
			}
		}
	}
	n.mu.Unlock()

	if _, err := n.svc.MarkRead(ctx, notifID); err != nil {
		n.rep.report(ctx, "mark_notification_read", err)
	}
}

// MarkAllRead оптимистично помечает все уведомления прочитанными
func (n *Notifications) MarkAllRead(ctx context.Context) {
	n.mu.Lock()
	for i := range n.notifications {
		n.notifications[i].IsRead = true
	}
	n.unread = 0
	n.mu.Unlock()

	if _, err := n.svc.MarkAllRead(ctx); err != nil {
		n.rep.report(ctx, "mark_all_notifications_read", err)
	}
}

// Delete удаляет уведомление из списка
func (n *Notifications) Delete(ctx context.Context, notifID int64) {
	if _, err := n.svc.Delete(ctx, notifID); err != nil {
		n.rep.report(ctx, "delete_notification", err)
		return
	}

	n.mu.Lock()
	kept := n.notifications[:0]
	for _, notif := range n.notifications {
		if notif.ID != notifID {
			kept = append(kept, notif)
		}
	}
	n.notifications = kept
	n.mu.Unlock()
}

// Snapshot возвращает копию текущего состояния
func (n *Notifications) Snapshot() NotificationsSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return NotificationsSnapshot{
		Notifications: append([]api.Notification(nil), n.notifications...),
		Unread:        n.unread,
		Loading:       n.loading,
		Err:           n.err,
	}
}
