// Package session владеет состоянием аутентификации процесса.
// Controller — единственный писатель user/state; навигационный слой
// (здесь — CLI) только читает их, чтобы решить, какой набор команд
// доступен.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gocial-client/internal/client/services"
	"github.com/iudanet/gocial-client/internal/client/storage"
	"github.com/iudanet/gocial-client/pkg/api"
)

// State — состояние сессии
type State int

const (
	// StateUnknown — начальное состояние до Restore
	StateUnknown State = iota
	// StateAuthenticated — активная сессия
	StateAuthenticated
	// StateUnauthenticated — сессии нет
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Controller реализует машину состояний сессии:
// unknown -> authenticated | unauthenticated (однократно через Restore),
// дальше переходы через Login/Register/Logout.
type Controller struct {
	mu     sync.RWMutex
	auth   *services.AuthService
	creds  storage.CredentialStore
	logger *slog.Logger
	user   *api.User
	state  State
}

// NewController создает контроллер в состоянии unknown
func NewController(auth *services.AuthService, creds storage.CredentialStore, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		auth:   auth,
		creds:  creds,
		logger: logger,
		state:  StateUnknown,
	}
}

// Restore выполняет однократный переход из unknown при старте процесса:
// читает сохраненный access token и, если он есть, спрашивает сервер
// "кто я". Любой сбой (нет токена, токен протух, сеть) схлопывается в
// unauthenticated с очисткой credentials (fail-closed).
func (c *Controller) Restore(ctx context.Context) State {
	_, err := c.creds.AccessToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.WarnContext(ctx, "failed to read stored token", "error", err)
		}
		c.setUnauthenticated()
		return StateUnauthenticated
	}

	user, err := c.auth.Me(ctx)
	if err != nil {
		c.logger.InfoContext(ctx, "session restore failed, clearing credentials", "error", err)
		if clearErr := c.creds.Clear(ctx); clearErr != nil {
			c.logger.WarnContext(ctx, "failed to clear credentials", "error", clearErr)
		}
		c.setUnauthenticated()
		return StateUnauthenticated
	}

	c.mu.Lock()
	c.user = user
	c.state = StateAuthenticated
	c.mu.Unlock()

	return StateAuthenticated
}

// Login создает сессию. Ошибка эндпоинта пробрасывается как есть,
// локальных повторов нет.
func (c *Controller) Login(ctx context.Context, req api.LoginRequest) error {
	resp, err := c.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	return c.startSession(ctx, resp)
}

// Register создает аккаунт; результат эквивалентен свежему логину
func (c *Controller) Register(ctx context.Context, req api.RegisterRequest) error {
	resp, err := c.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	return c.startSession(ctx, resp)
}

// startSession сохраняет все три ключа и переводит контроллер
// в authenticated
func (c *Controller) startSession(ctx context.Context, resp *api.AuthResponse) error {
	if err := c.creds.SaveSession(ctx, resp.AccessToken, resp.RefreshToken, &resp.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.mu.Lock()
	user := resp.User
	c.user = &user
	c.state = StateAuthenticated
	c.mu.Unlock()

	return nil
}

// Logout завершает сессию. Серверный вызов best-effort: его ошибка
// глотается, локальный teardown обязан пройти в любом случае.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		// Сервер может быть недоступен, это не причина остаться в сессии
		c.logger.InfoContext(ctx, "remote logout failed", "error", err)
	}

	if err := c.creds.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	c.setUnauthenticated()
	return nil
}

// RefreshUser перечитывает профиль с сервера и перезаписывает копии
// в памяти и в хранилище. Ошибки глотаются: это фоновая синхронизация,
// а не критичный для корректности путь.
func (c *Controller) RefreshUser(ctx context.Context) {
	user, err := c.auth.Me(ctx)
	if err != nil {
		c.logger.DebugContext(ctx, "refresh user failed", "error", err)
		return
	}

	if err := c.creds.SetUser(ctx, user); err != nil {
		c.logger.WarnContext(ctx, "failed to persist user", "error", err)
	}

	c.mu.Lock()
	if c.state == StateAuthenticated {
		c.user = user
	}
	c.mu.Unlock()
}

// ApplyUserPatch синхронно накладывает частичное обновление на user
// в памяти. Ни хранилище, ни сервер не затрагиваются — вызывающий сам
// отвечает за services.Users.UpdateProfile с тем же patch.
func (c *Controller) ApplyUserPatch(patch api.UserPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	patch.Apply(c.user)
}

// User возвращает копию текущего пользователя или nil
func (c *Controller) User() *api.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// State возвращает текущее состояние сессии
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsAuthenticated сообщает, активна ли сессия
func (c *Controller) IsAuthenticated() bool {
	return c.State() == StateAuthenticated
}

// TokenExpiry возвращает срок действия сохраненного access token.
// Токен разбирается без проверки подписи: секрет знает только сервер,
// клиенту нужен лишь exp claim для отображения статуса.
func (c *Controller) TokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := c.creds.AccessToken(ctx)
	if err != nil {
		return time.Time{}, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("access token has no expiration claim")
	}

	return exp.Time, nil
}

func (c *Controller) setUnauthenticated() {
	c.mu.Lock()
	c.user = nil
	c.state = StateUnauthenticated
	c.mu.Unlock()
}
