package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gocial-client/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, api.LoginRequest{Email: email, Password: password}); err != nil {
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.io.Println("✓ Login successful!")
	if user != nil && user.Pseudo != nil {
		c.io.Printf("Welcome back, %s\n", *user.Pseudo)
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")
	return nil
}
