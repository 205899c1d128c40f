package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gocial-client/internal/client/session"
)

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "feed":
		return c.runFeed(ctx, args)
	case "like":
		return c.runLike(ctx, args)
	case "friends":
		return c.runFriends(ctx)
	case "messages":
		return c.runMessages(ctx)
	case "send":
		return c.runSend(ctx, args)
	case "notifications":
		return c.runNotifications(ctx)
	case "search":
		return c.runSearch(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireAuth восстанавливает сессию и проверяет, что она активна
func (c *Cli) requireAuth(ctx context.Context) error {
	if c.session.State() == session.StateUnknown {
		c.session.Restore(ctx)
	}
	if !c.session.IsAuthenticated() {
		return errNotAuthenticated
	}
	return nil
}
