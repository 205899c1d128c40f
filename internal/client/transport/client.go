package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/gocial-client/internal/client/storage"
)

// Client представляет HTTP клиент для взаимодействия с Gocial API.
// Перед каждым запросом читает access token из CredentialStore и, если он
// есть, выставляет заголовок Authorization. На 401 один раз прозрачно
// обновляет токен и повторяет запрос (см. refresh.go).
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	creds      storage.CredentialStore
	logger     *slog.Logger
	refresh    refresher
}

// Option настраивает Client
type Option func(*Client)

// WithClientID attaches a stable install identifier to every request
func WithClientID(id string) Option {
	return func(c *Client) {
		c.clientID = id
	}
}

// WithLogger sets the logger (default slog.Default)
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying http.Client (tests)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, timeout time.Duration, creds storage.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		creds:   creds,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL возвращает базовый адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get выполняет GET запрос. query может быть nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, result)
}

// Post выполняет POST запрос с JSON телом (body может быть nil)
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, result)
}

// Put выполняет PUT запрос с JSON телом
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, result)
}

// Delete выполняет DELETE запрос. body может быть nil —
// часть эндпоинтов (messages/requests, users/delete) шлет тело и в DELETE.
func (c *Client) Delete(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, body, result)
}

// Do выполняет запрос с JSON телом и разбирает JSON ответ в result.
// NetworkError при транспортном сбое, HTTPError при не-2xx ответе,
// прозрачный одноразовый refresh на 401.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyBytes []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyBytes = data
	}

	contentType := ""
	if body != nil {
		contentType = "application/json"
	}

	return c.roundTrip(ctx, method, path, query, bodyBytes, contentType, result)
}

// PostMultipart отправляет один файл как multipart/form-data
// (загрузка аватара)
func (c *Client) PostMultipart(
	ctx context.Context,
	path, fieldName, fileName string,
	file io.Reader,
	result any,
) error {
	// Буферизуем тело целиком: оно должно быть воспроизводимо
	// для повтора после refresh.
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.roundTrip(ctx, http.MethodPost, path, nil, buf.Bytes(), writer.FormDataContentType(), result)
}

// roundTrip отправляет запрос и обрабатывает 401 через refresh flow.
// Повтор возможен только один раз на запрос (one-shot флаг retried).
func (c *Client) roundTrip(
	ctx context.Context,
	method, path string,
	query url.Values,
	body []byte,
	contentType string,
	result any,
) error {
	token := c.currentAccessToken(ctx)

	status, respBody, err := c.send(ctx, method, path, query, body, contentType, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		httpErr := &HTTPError{Status: status, Body: respBody}

		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil {
			if errors.Is(refreshErr, errNoRefreshToken) {
				// Нечем обновляться — отдаем исходный 401
				return &AuthExpiredError{Err: httpErr}
			}
			return refreshErr
		}

		c.logger.DebugContext(ctx, "replaying request after token refresh",
			"method", method, "path", path)

		// Повторяем исходный запрос ровно один раз
		status, respBody, err = c.send(ctx, method, path, query, body, contentType, newToken)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return &HTTPError{Status: status, Body: respBody}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// send выполняет один HTTP запрос и возвращает статус и тело
func (c *Client) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	body []byte,
	contentType, token string,
) (int, []byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: err}
	}

	return resp.StatusCode, respBody, nil
}

// currentAccessToken читает access token из хранилища.
// Отсутствие токена не ошибка: запрос уходит неаутентифицированным.
func (c *Client) currentAccessToken(ctx context.Context) string {
	token, err := c.creds.AccessToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.WarnContext(ctx, "failed to read access token", "error", err)
		}
		return ""
	}
	return token
}
