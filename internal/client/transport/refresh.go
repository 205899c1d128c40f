package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/iudanet/gocial-client/internal/client/storage"
	"github.com/iudanet/gocial-client/pkg/api"
)

// refreshPath — эндпоинт обмена refresh token на новый access token
const refreshPath = "/api/auth/refresh"

// errNoRefreshToken: обновляться нечем, исходный 401 отдается вызывающему
var errNoRefreshToken = errors.New("no refresh token stored")

type refreshResult struct {
	token string
	err   error
}

// refresher — явная машина состояний refresh flow: idle либо один
// запрос в полете плюс очередь ожидающих. Гарантирует не более одного
// вызова /api/auth/refresh на процесс независимо от числа запросов,
// одновременно получивших 401.
type refresher struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan refreshResult
}

// refreshAccessToken возвращает новый access token, выполняя refresh
// или дожидаясь уже идущего. Каждый ожидающий получает результат
// единственного вызова в порядке постановки в очередь.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	c.refresh.mu.Lock()
	if c.refresh.inFlight {
		// Refresh уже идет — встаем в очередь
		ch := make(chan refreshResult, 1)
		c.refresh.waiters = append(c.refresh.waiters, ch)
		c.refresh.mu.Unlock()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", &NetworkError{Err: ctx.Err()}
		}
	}
	c.refresh.inFlight = true
	c.refresh.mu.Unlock()

	token, err := c.doRefresh(ctx)

	c.refresh.mu.Lock()
	waiters := c.refresh.waiters
	c.refresh.waiters = nil
	c.refresh.inFlight = false
	c.refresh.mu.Unlock()

	// Раздаем результат всем в порядке очереди
	for _, ch := range waiters {
		ch <- refreshResult{token: token, err: err}
	}

	return token, err
}

// doRefresh выполняет единственный вызов refresh эндпоинта.
// Refresh token передается как bearer credential. При ошибке вызова
// все сохраненные credentials очищаются (сессия мертва).
func (c *Client) doRefresh(ctx context.Context) (string, error) {
	refreshToken, err := c.creds.RefreshToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", errNoRefreshToken
		}
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}

	c.logger.DebugContext(ctx, "refreshing access token")

	status, respBody, err := c.send(ctx, "POST", refreshPath, nil, nil, "", refreshToken)
	if err != nil {
		c.clearCredentials(ctx)
		return "", &AuthExpiredError{Err: err}
	}

	if status < 200 || status >= 300 {
		// Refresh token отвергнут — чистим все и выходим из сессии
		c.clearCredentials(ctx)
		return "", &AuthExpiredError{Err: &HTTPError{Status: status, Body: respBody}}
	}

	var resp api.RefreshResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("refresh response missing access_token")
	}

	if err := c.creds.SetAccessToken(ctx, resp.AccessToken); err != nil {
		return "", fmt.Errorf("failed to save access token: %w", err)
	}

	return resp.AccessToken, nil
}

// clearCredentials забывает сессию после провалившегося refresh
func (c *Client) clearCredentials(ctx context.Context) {
	if err := c.creds.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "failed to clear credentials", "error", err)
	}
}
