// Package cli реализует команды терминального клиента Gocial.
// Команды потребляют session.Controller и state-store'ы ровно так,
// как это делали бы экраны мобильного приложения.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/iudanet/gocial-client/internal/client/iocli"
	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/internal/client/session"
)

// Cli связывает команды с зависимостями
type Cli struct {
	io       iocli.IO
	services *services.Services
	session  *session.Controller
	logger   *slog.Logger
}

// New создает Cli
func New(io iocli.IO, svcs *services.Services, sess *session.Controller, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:       io,
		services: svcs,
		session:  sess,
		logger:   logger,
	}
}

// PrintUsage выводит список команд
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: gocial [flags] <command> [args]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register           Create a new account")
	c.io.Println("  login              Sign in")
	c.io.Println("  logout             Sign out")
	c.io.Println("  status             Show session status")
	c.io.Println("  whoami             Show current profile")
	c.io.Println("  feed [visio]       Show the activity feed")
	c.io.Println("  like <id>          Toggle like on an activity")
	c.io.Println("  friends            Show friends, requests and blocked users")
	c.io.Println("  messages           Show conversations")
	c.io.Println("  send <id> <text>   Send a message to a user")
	c.io.Println("  notifications      Show notifications")
	c.io.Println("  search <query>     Search users")
}

// errNotAuthenticated возвращается командами, требующими сессии
var errNotAuthenticated = fmt.Errorf("not authenticated, run 'gocial login' first")
