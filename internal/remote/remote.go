// Package remote wraps the HTTP services that own the back-office data. Each
// client is a pure I/O adapter: JSON request/response with context, no
// retries, failures classified by apperror.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"insurance-backoffice/internal/apperror"

	"go.uber.org/zap"
)

// client carries what every service client needs for a call.
type client struct {
	service string
	base    string
	http    *http.Client
	log     *zap.Logger
}

func newClient(service, base string, httpClient *http.Client, log *zap.Logger) client {
	return client{service: service, base: base, http: httpClient, log: log}
}

// errorBody is the generic failure shape the services return.
type errorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// do performs one JSON call. A nil in sends no body; a nil out discards the
// response body. Non-2xx statuses become *apperror.RemoteError.
func (c client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: marshal request: %w", c.service, op, err)
		}
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", c.service, op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("remote call failed", zap.String("service", c.service), zap.String("op", op), zap.Error(err))
		return &apperror.RemoteError{Service: c.service, Op: op, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Warn("remote call rejected",
			zap.String("service", c.service),
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return &apperror.RemoteError{Service: c.service, Op: op, Status: resp.StatusCode, Message: eb.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperror.RemoteError{Service: c.service, Op: op, Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}
