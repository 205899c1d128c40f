package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/internal/client/state"
	"github.com/iudanet/gocial-client/pkg/api"
)

func (c *Cli) runFeed(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	filters := services.ActivityFilters{}
	if len(args) > 0 && args[0] == "visio" {
		filters.Type = api.ActivityVisio
	}

	feed := state.NewFeed(c.services.Activities, filters, c.logger)
	feed.Fetch(ctx)

	snap := feed.Snapshot()
	if snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	if len(snap.Top) > 0 {
		c.io.Println("--- Top activities ---")
		for _, a := range snap.Top {
			c.printActivity(a)
		}
		c.io.Println()
	}

	c.io.Printf("--- Feed (%d) ---\n", len(snap.Activities))
	for _, a := range snap.Activities {
		c.printActivity(a)
	}
	return nil
}

func (c *Cli) runLike(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gocial like <activity-id>")
	}

	activityID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid activity id: %w", err)
	}

	feed := state.NewFeed(c.services.Activities, services.ActivityFilters{}, c.logger)
	feed.Fetch(ctx)
	if snap := feed.Snapshot(); snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	feed.ToggleLike(ctx, activityID)

	for _, a := range feed.Snapshot().Activities {
		if a.ID == activityID {
			if a.IsLiked {
				c.io.Printf("✓ Liked activity %d (%d likes)\n", a.ID, a.LikesCount)
			} else {
				c.io.Printf("✓ Unliked activity %d (%d likes)\n", a.ID, a.LikesCount)
			}
			return nil
		}
	}

	return fmt.Errorf("activity %d not found in feed", activityID)
}

func (c *Cli) printActivity(a api.Activity) {
	likeMark := " "
	if a.IsLiked {
		likeMark = "♥"
	}
	city := ""
	if a.City != nil {
		city = " @ " + *a.City
	}
	c.io.Printf("[%d] %s %s%s — %s, %d/%d participants, %d likes\n",
		a.ID, likeMark, a.Title, city, a.Date, a.CurrentParticipants, a.MaxParticipants, a.LikesCount)
}
