// Package state адаптирует ресурсные сервисы к потреблению UI-слоем.
// Каждый store повторяет машину состояний хуков мобильного клиента:
// loading=true -> fetch -> {данные, loading=false} | {err, loading=false},
// с отдельным флагом refreshing для pull-to-refresh.
//
// Каждый store владеет собственной копией списков; общего
// нормализованного кэша нет, одна и та же сущность может разойтись
// между store'ами до ближайшего refetch.
package state

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/gocial-client/internal/client/transport"
)

// userMessage приводит ошибку к строке для показа пользователю:
// сообщение сервера, если оно есть, иначе локализованный fallback.
func userMessage(err error, fallback string) string {
	var httpErr *transport.HTTPError
	if errors.As(err, &httpErr) {
		if msg := httpErr.ServerMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// Reporter получает ошибки best-effort операций, которые store
// не показывает пользователю (accept/reject заявок, mark-read и т.п.).
// Мобильный клиент их молча глотал; здесь они уходят в observability
// hook. Никаких повторов за этим не следует.
type Reporter func(op string, err error)

// reporter логирует и пробрасывает ошибку в пользовательский hook
type reporter struct {
	logger *slog.Logger
	fn     Reporter
}

func newReporter(logger *slog.Logger, fn Reporter) reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return reporter{logger: logger, fn: fn}
}

func (r reporter) report(ctx context.Context, op string, err error) {
	r.logger.WarnContext(ctx, "best-effort operation failed", "op", op, "error", err)
	if r.fn != nil {
		r.fn(op, err)
	}
}
