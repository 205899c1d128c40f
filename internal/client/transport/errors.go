package transport

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/gocial-client/pkg/api"
)

// NetworkError means the transport layer never got a response from the
// server (connection failure, timeout, canceled context).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError means the server responded with a non-2xx status
// (after the one-shot refresh-and-replay, if it applied).
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	if msg := e.ServerMessage(); msg != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, msg)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ServerMessage извлекает человекочитаемое сообщение из тела ошибки,
// если бэкенд прислал стандартный ErrorResponse.
func (e *HTTPError) ServerMessage() string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(e.Body, &errResp); err != nil {
		return ""
	}
	return errResp.Text()
}

// AuthExpiredError means the refresh flow is exhausted: either no refresh
// token was stored, or the refresh call itself failed. The wrapped error
// carries the cause (for the missing-token case it is the original 401).
type AuthExpiredError struct {
	Err error
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("session expired: %v", e.Err)
}

func (e *AuthExpiredError) Unwrap() error {
	return e.Err
}
