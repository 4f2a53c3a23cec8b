// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package client provides the HTTP client for the admin permission API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/retr0h/partnerctl/internal/config"
)

const (
	tracerName = "partnerctl-client"

	defaultBackoff = 200 * time.Millisecond
	maxBackoff     = 2 * time.Second
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	appConfig config.Config,
	opts ...Option,
) *Client {
	c := &Client{
		logger:    logger,
		appConfig: appConfig,
		baseURL:   strings.TrimRight(appConfig.API.Client.URL, "/"),
		backoff:   defaultBackoff,
		base:      http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{
		Transport: &authTransport{
			base:       c.base,
			authHeader: "Bearer " + appConfig.API.Client.Security.BearerToken,
			logger:     logger,
		},
	}

	return c
}

// WithTransport replaces the underlying round tripper.
func WithTransport(
	base http.RoundTripper,
) Option {
	return func(c *Client) {
		c.base = base
	}
}

// WithBackoff sets the initial delay between retries.
func WithBackoff(
	d time.Duration,
) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *authTransport) RoundTrip(
	req *http.Request,
) (*http.Response, error) {
	req.Header.Set("Authorization", t.authHeader)
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, newRequestID())
	}
	injectTraceContext(req)

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Debug("http request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("request_id", req.Header.Get(requestIDHeader)),
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return nil, err
	}

	t.logger.Debug("http response",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", req.Header.Get(requestIDHeader)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return resp, nil
}

// partnerPath renders /partners/{partnerId}<suffix> with the identifier
// escaped as a path segment.
func partnerPath(
	partnerID string,
	suffix string,
) (string, error) {
	param, err := runtime.StyleParamWithLocation(
		"simple",
		false,
		"partnerId",
		runtime.ParamLocationPath,
		partnerID,
	)
	if err != nil {
		return "", fmt.Errorf("encoding partnerId: %w", err)
	}

	return "/partners/" + param + suffix, nil
}

// do sends one request and decodes a 2xx body into out. Idempotent
// requests are retried on transport errors and 5xx responses.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	out any,
) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.appConfig.API.Client.Retries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx, attempt); err != nil {
				return lastErr
			}
			c.logger.Debug("retrying request",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("attempt", attempt+1),
				slog.String("error", lastErr.Error()),
			)
		}

		status, data, err := c.send(ctx, method, path, payload)
		if err != nil {
			lastErr = fmt.Errorf("%s %s: %w", method, path, err)
			if ctx.Err() != nil {
				return lastErr
			}
			continue
		}

		if status >= 500 {
			lastErr = newResponseError(status, data)
			continue
		}

		if status < 200 || status > 299 {
			return newResponseError(status, data)
		}

		if out != nil && len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decoding %s %s response: %w", method, path, err)
			}
		}

		return nil
	}

	return lastErr
}

func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	payload []byte,
) (int, []byte, error) {
	if timeout := c.appConfig.API.Client.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, data, nil
}

func (c *Client) wait(
	ctx context.Context,
	attempt int,
) error {
	var delay time.Duration
	if c.backoff > 0 {
		delay = c.backoff << (attempt - 1)
		if delay > maxBackoff || delay <= 0 {
			delay = maxBackoff
		}
	}

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
