package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	state := c.session.Restore(ctx)
	c.io.Printf("Status: %s\n", state)

	if !c.session.IsAuthenticated() {
		c.io.Println()
		c.io.Println("Run 'gocial login' to authenticate.")
		return nil
	}

	if user := c.session.User(); user != nil {
		c.io.Printf("Email: %s\n", user.Email)
		if user.Pseudo != nil {
			c.io.Printf("Pseudo: %s\n", *user.Pseudo)
		}
	}

	// Срок действия токена — информационно, protected запросы сами
	// обновят его через refresh flow
	if expiresAt, err := c.session.TokenExpiry(ctx); err == nil {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Access token expired (will refresh on next request)")
		}
	}

	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	// Best-effort обновление профиля перед показом
	c.session.RefreshUser(ctx)

	user := c.session.User()
	if user == nil {
		return errNotAuthenticated
	}

	c.io.Printf("ID:    %d\n", user.ID)
	c.io.Printf("Email: %s\n", user.Email)
	c.io.Printf("Type:  %s\n", user.UserType)
	if user.Pseudo != nil {
		c.io.Printf("Pseudo: %s\n", *user.Pseudo)
	}
	if user.City != nil {
		c.io.Printf("City:  %s\n", *user.City)
	}
	if user.IsPremium {
		c.io.Println("Premium: yes")
	}
	return nil
}
