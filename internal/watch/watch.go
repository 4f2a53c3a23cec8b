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

// Package watch polls a partner's permissions and reports server-side
// changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/retr0h/partnerctl/internal/permission"
)

// DefaultInterval applies when no interval is configured.
const DefaultInterval = 30 * time.Second

// ChangeFunc receives the difference between two consecutive polls.
type ChangeFunc func(
	partnerID string,
	changes permission.Changes,
	current permission.Map,
)

// Watcher periodically fetches one partner's permissions. The first poll
// records a baseline; later polls that differ call OnChange.
type Watcher struct {
	logger   *slog.Logger
	service  permission.Service
	interval time.Duration
	onChange ChangeFunc

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	partnerID  string
	last       permission.Map
	haveLast   bool
	generation uint64
}

// New creates a Watcher for partnerID. Nothing runs until Start.
func New(
	logger *slog.Logger,
	service permission.Service,
	partnerID string,
	interval time.Duration,
	onChange ChangeFunc,
) *Watcher {
	if interval < time.Second {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		logger:    logger,
		service:   service,
		interval:  interval,
		onChange:  onChange,
		partnerID: partnerID,
		ctx:       ctx,
		cancel:    cancel,
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}

// Start schedules polling without blocking.
func (w *Watcher) Start() {
	spec := fmt.Sprintf("@every %s", w.interval)
	if _, err := w.cron.AddFunc(spec, w.tick); err != nil {
		w.logger.Error("failed to schedule permission poll",
			slog.String("schedule", spec),
			slog.String("error", err.Error()),
		)
		return
	}

	w.logger.Info("watching partner permissions",
		slog.String("partner_id", w.PartnerID()),
		slog.Duration("interval", w.interval),
	)

	w.cron.Start()
}

// Stop cancels in-flight polls and waits for them, bounded by ctx.
func (w *Watcher) Stop(
	ctx context.Context,
) {
	w.cancel()
	done := w.cron.Stop()

	select {
	case <-done.Done():
	case <-ctx.Done():
		w.logger.Warn("permission watcher did not stop in time")
	}
}

// Retarget switches the watched partner. A poll still in flight for the
// previous partner is discarded and the next poll records a new baseline.
func (w *Watcher) Retarget(
	partnerID string,
) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.partnerID = partnerID
	w.last = nil
	w.haveLast = false
	w.generation++
}

// PartnerID returns the watched partner.
func (w *Watcher) PartnerID() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.partnerID
}

// Poll fetches once and reports a change against the previous poll.
func (w *Watcher) Poll(
	ctx context.Context,
) error {
	w.mu.Lock()
	partnerID := w.partnerID
	gen := w.generation
	w.mu.Unlock()

	resp, err := w.service.GetPartnerPermissions(ctx, partnerID)
	if err != nil {
		return fmt.Errorf("polling permissions for partner %q: %w", partnerID, err)
	}

	current := permission.Map{}
	if resp != nil {
		current = resp.Permissions.Clone()
	}

	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return permission.ErrStale
	}

	if !w.haveLast {
		w.last = current
		w.haveLast = true
		w.mu.Unlock()
		return nil
	}

	if w.last.Equal(current) {
		w.mu.Unlock()
		return nil
	}

	changes := current.Diff(w.last)
	w.last = current
	w.mu.Unlock()

	w.logger.Debug("partner permissions changed",
		slog.String("partner_id", partnerID),
		slog.Int("granted", len(changes.Granted)),
		slog.Int("revoked", len(changes.Revoked)),
	)

	if w.onChange != nil {
		w.onChange(partnerID, changes, current.Clone())
	}

	return nil
}

func (w *Watcher) tick() {
	ctx, cancel := context.WithTimeout(w.ctx, w.interval)
	defer cancel()

	if err := w.Poll(ctx); err != nil && w.ctx.Err() == nil {
		w.logger.Warn("permission poll failed",
			slog.String("partner_id", w.PartnerID()),
			slog.String("error", err.Error()),
		)
	}
}
