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

package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/retr0h/partnerctl/internal/config"
	"github.com/retr0h/partnerctl/internal/permission"
)

// requestIDHeader carries a per-request identifier for server-side log
// correlation.
const requestIDHeader = "X-Request-ID"

// Compile-time check that Client satisfies permission.Service.
var _ permission.Service = (*Client)(nil)

// Client talks to the admin permission API.
type Client struct {
	logger     *slog.Logger
	appConfig  config.Config
	baseURL    string
	backoff    time.Duration
	base       http.RoundTripper
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// authTransport injects the bearer token, request id and trace context
// into every request.
type authTransport struct {
	base       http.RoundTripper
	authHeader string
	logger     *slog.Logger
}

// applyTemplateRequest is the body of the role template endpoint.
type applyTemplateRequest struct {
	TemplateKey string `json:"templateKey"`
}

// errorResponse is the error body returned by the admin API.
type errorResponse struct {
	Error string `json:"error"`
}
