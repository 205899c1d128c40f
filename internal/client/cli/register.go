package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gocial-client/internal/validation"
	"github.com/iudanet/gocial-client/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	pseudo, err := c.io.ReadInput("Pseudo: ")
	if err != nil {
		return fmt.Errorf("failed to read pseudo: %w", err)
	}
	if err := validation.ValidatePseudo(pseudo); err != nil {
		return fmt.Errorf("invalid pseudo: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	userType, err := c.io.ReadInput("Account type (person/pro/asso) [person]: ")
	if err != nil {
		return fmt.Errorf("failed to read account type: %w", err)
	}
	if userType == "" {
		userType = string(api.UserTypePerson)
	}

	// Проверяем доступность до создания аккаунта
	if avail, err := c.services.Auth.CheckEmail(ctx, email); err == nil && !avail.Available {
		reason := "email is not available"
		if avail.Reason != nil {
			reason = *avail.Reason
		}
		return fmt.Errorf("%s", reason)
	}
	if avail, err := c.services.Auth.CheckPseudo(ctx, pseudo); err == nil && !avail.Available {
		reason := "pseudo is not available"
		if avail.Reason != nil {
			reason = *avail.Reason
		}
		return fmt.Errorf("%s", reason)
	}

	c.io.Println()
	c.io.Println("Creating account...")

	req := api.RegisterRequest{
		Email:    email,
		Password: password,
		Pseudo:   pseudo,
		UserType: api.UserType(userType),
	}
	if err := c.session.Register(ctx, req); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("Signed in as %s\n", email)
	return nil
}
