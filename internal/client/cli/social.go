package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/gocial-client/internal/client/state"
)

func (c *Cli) runFriends(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	friends := state.NewFriends(c.services.Friends, c.logger, nil)
	friends.Fetch(ctx)

	snap := friends.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	c.io.Printf("--- Friends (%d) ---\n", len(snap.Friends))
	for _, f := range snap.Friends {
		c.io.Printf("[%d] %s (since %s)\n", f.FriendshipID, displayName(f.User.Pseudo, f.User.FirstName), f.Since)
	}

	if len(snap.Requests) > 0 {
		c.io.Println()
		c.io.Printf("--- Pending requests (%d) ---\n", len(snap.Requests))
		for _, r := range snap.Requests {
			c.io.Printf("[%d] %s (requested %s)\n", r.FriendshipID, displayName(r.User.Pseudo, r.User.FirstName), r.RequestedAt)
		}
	}

	if len(snap.Blocked) > 0 {
		c.io.Println()
		c.io.Printf("--- Blocked (%d) ---\n", len(snap.Blocked))
		for _, b := range snap.Blocked {
			c.io.Printf("[%d] %s\n", b.User.ID, displayName(b.User.Pseudo, b.User.FirstName))
		}
	}

	return nil
}

func (c *Cli) runMessages(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	inbox := state.NewInbox(c.services.Messages, c.logger, nil)
	inbox.Fetch(ctx)

	snap := inbox.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	c.io.Printf("--- Conversations (%d unread) ---\n", snap.Unread)
	for _, conv := range snap.Conversations {
		preview := conv.LastMessage.Content
		if len(preview) > 40 {
			preview = preview[:40] + "…"
		}
		unread := ""
		if conv.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d)", conv.UnreadCount)
		}
		c.io.Printf("[%d] %s%s: %s\n", conv.Partner.ID, displayName(conv.Partner.Pseudo, conv.Partner.FirstName), unread, preview)
	}

	return nil
}

func (c *Cli) runSend(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: gocial send <user-id> <message>")
	}

	partnerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	content := strings.Join(args[1:], " ")

	thread := state.NewThread(c.services.Messages, partnerID, c.logger, nil)
	thread.Fetch(ctx)
	if snap := thread.Snapshot(); snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	thread.Send(ctx, content)

	snap := thread.Snapshot()
	if len(snap.Messages) == 0 {
		return fmt.Errorf("message was not delivered")
	}
	last := snap.Messages[len(snap.Messages)-1]
	if !last.SentByMe || last.Content != content {
		return fmt.Errorf("message was not delivered")
	}

	c.io.Printf("✓ Sent to %s\n", displayName(snap.Partner.Pseudo, snap.Partner.FirstName))
	return nil
}

func (c *Cli) runNotifications(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	notifs := state.NewNotifications(c.services.Notifications, c.logger, nil)
	notifs.Fetch(ctx)

	snap := notifs.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	c.io.Printf("--- Notifications (%d unread) ---\n", snap.Unread)
	for _, n := range snap.Notifications {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		c.io.Printf("[%d] %s %s\n", n.ID, mark, n.Title)
	}

	return nil
}

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gocial search <query>")
	}

	query := strings.Join(args, " ")
	resp, err := c.services.Users.Search(ctx, query, "", "", 1)
	if err != nil {
		return err
	}

	c.io.Printf("--- Users matching %q (%d) ---\n", query, resp.Total)
	for _, u := range resp.Users {
		city := ""
		if u.City != nil {
			city = ", " + *u.City
		}
		c.io.Printf("[%d] %s%s\n", u.ID, displayName(u.Pseudo, u.FirstName), city)
	}

	return nil
}

// displayName выбирает имя для показа: псевдоним, иначе имя, иначе заглушка
func displayName(pseudo, firstName *string) string {
	if pseudo != nil && *pseudo != "" {
		return *pseudo
	}
	if firstName != nil && *firstName != "" {
		return *firstName
	}
	return "(anonyme)"
}
