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

package permission

import (
	"context"
	"log/slog"
	"sync"
)

// Editor owns the session of the partner currently being edited. Opening a
// partner always starts a fresh session and abandons the previous one.
type Editor struct {
	logger  *slog.Logger
	service Service
	opts    []Option

	mu      sync.Mutex
	current *Session
}

// NewEditor creates an Editor whose sessions share the given options.
func NewEditor(
	logger *slog.Logger,
	service Service,
	opts ...Option,
) *Editor {
	return &Editor{
		logger:  logger,
		service: service,
		opts:    opts,
	}
}

// Open closes the current session and loads a new one for partnerID. The
// new session becomes current even when the load fails, so the caller can
// retry with Load.
func (e *Editor) Open(
	ctx context.Context,
	partnerID string,
) (*Session, error) {
	if partnerID == "" {
		return nil, ErrEmptyPartnerID
	}

	session := NewSession(e.logger, e.service, e.opts...)

	e.mu.Lock()
	if e.current != nil {
		e.current.Close()
	}
	e.current = session
	e.mu.Unlock()

	e.logger.Debug("opening partner permissions",
		slog.String("partner_id", partnerID),
	)

	if err := session.Load(ctx, partnerID); err != nil {
		return session, err
	}

	return session, nil
}

// Current returns the open session, or nil.
func (e *Editor) Current() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.current
}

// Close abandons the open session, if any.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		e.current.Close()
		e.current = nil
	}
}
