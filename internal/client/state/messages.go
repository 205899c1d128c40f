package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/pkg/api"
)

const (
	inboxErrFallback  = "Impossible de charger les conversations."
	threadErrFallback = "Impossible de charger les messages."
)

// Inbox держит список диалогов и счетчик непрочитанных
type Inbox struct {
	mu            sync.Mutex
	svc           *services.MessagesService
	rep           reporter
	conversations []api.Conversation
	unread        int
	loading       bool
	err           string
}

// InboxSnapshot — согласованный срез состояния
type InboxSnapshot struct {
	Conversations []api.Conversation
	Unread        int
	Loading       bool
	Err           string
}

// NewInbox создает store диалогов
func NewInbox(svc *services.MessagesService, logger *slog.Logger, onError Reporter) *Inbox {
	return &Inbox{
		svc:     svc,
		rep:     newReporter(logger, onError),
		loading: true,
	}
}

// Fetch загружает диалоги и счетчик непрочитанных (счетчик best-effort)
func (in *Inbox) Fetch(ctx context.Context) {
	in.mu.Lock()
	in.loading = true
	in.err = ""
	in.mu.Unlock()

	resp, err := in.svc.Conversations(ctx, 1)

	in.mu.Lock()
	in.loading = false
	if err != nil {
		in.err = userMessage(err, inboxErrFallback)
	} else {
		in.conversations = resp.Conversations
	}
	in.mu.Unlock()

	in.fetchUnread(ctx)
}

func (in *Inbox) fetchUnread(ctx context.Context) {
	resp, err := in.svc.UnreadCount(ctx)
	if err != nil {
		in.rep.report(ctx, "fetch_unread_count", err)
		return
	}
	in.mu.Lock()
	in.unread = resp.TotalUnread
	in.mu.Unlock()
}

// Send отправляет сообщение и перечитывает диалоги
func (in *Inbox) Send(ctx context.Context, recipientID int64, content string) {
	if _, err := in.svc.Send(ctx, recipientID, content, "text"); err != nil {
		in.rep.report(ctx, "send_message", err)
		return
	}

	resp, err := in.svc.Conversations(ctx, 1)
	if err != nil {
		in.rep.report(ctx, "refetch_conversations", err)
		return
	}
	in.mu.Lock()
	in.conversations = resp.Conversations
	in.mu.Unlock()
}

// MarkRead помечает переписку прочитанной и обновляет счетчик
func (in *Inbox) MarkRead(ctx context.Context, partnerID int64) {
	if _, err := in.svc.MarkRead(ctx, partnerID); err != nil {
		in.rep.report(ctx, "mark_read", err)
		return
	}
	in.fetchUnread(ctx)
}

// Snapshot возвращает копию текущего состояния
func (in *Inbox) Snapshot() InboxSnapshot {
	in.mu.Lock()
	defer in.mu.Unlock()
	return InboxSnapshot{
		Conversations: append([]api.Conversation(nil), in.conversations...),
		Unread:        in.unread,
		Loading:       in.loading,
		Err:           in.err,
	}
}

// Thread держит переписку с одним собеседником
type Thread struct {
	mu        sync.Mutex
	svc       *services.MessagesService
	rep       reporter
	partnerID int64
	partner   *api.UserPublic
	messages  []api.ThreadMessage
	loading   bool
	err       string
}

// ThreadSnapshot — согласованный срез состояния переписки
type ThreadSnapshot struct {
	Partner  *api.UserPublic
	Messages []api.ThreadMessage
	Loading  bool
	Err      string
}

// NewThread создает store переписки с собеседником
func NewThread(svc *services.MessagesService, partnerID int64, logger *slog.Logger, onError Reporter) *Thread {
	return &Thread{
		svc:       svc,
		rep:       newReporter(logger, onError),
		partnerID: partnerID,
		loading:   true,
	}
}

// Fetch загружает переписку
func (t *Thread) Fetch(ctx context.Context) {
	t.mu.Lock()
	t.loading = true
	t.err = ""
	t.mu.Unlock()

	resp, err := t.svc.Thread(ctx, t.partnerID, 1)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		t.err = userMessage(err, threadErrFallback)
		return
	}
	partner := resp.Partner
	t.partner = &partner
	t.messages = resp.Messages
}

// Send оптимистично добавляет сообщение в конец переписки.
// Успешный ответ замещает временную запись серверной, отказ приводит
// к полному refetch.
func (t *Thread) Send(ctx context.Context, content string) {
	pending := api.ThreadMessage{
		Content:     content,
		SentByMe:    true,
		MessageType: "text",
	}

	t.mu.Lock()
	t.messages = append(t.messages, pending)
	idx := len(t.messages) - 1
	t.mu.Unlock()

	resp, err := t.svc.Send(ctx, t.partnerID, content, "text")
	if err != nil {
		t.rep.report(ctx, "send_message", err)
		t.Fetch(ctx)
		return
	}

	t.mu.Lock()
	if idx < len(t.messages) {
		t.messages[idx] = resp.Data
	}
	t.mu.Unlock()
}

// Snapshot возвращает копию текущего состояния
func (t *Thread) Snapshot() ThreadSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := ThreadSnapshot{
		Messages: append([]api.ThreadMessage(nil), t.messages...),
		Loading:  t.loading,
		Err:      t.err,
	}
	if t.partner != nil {
		partner := *t.partner
		snap.Partner = &partner
	}
	return snap
}
