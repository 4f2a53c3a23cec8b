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
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "partnerctl-permission"

// Session holds one partner's permission edits in memory.
//
// The mutex is never held across a service call. While a call is in flight
// every mutating operation is rejected with ErrBusy.
type Session struct {
	logger   *slog.Logger
	service  Service
	recorder ChangeRecorder
	now      func() time.Time

	mu           sync.Mutex
	partnerID    string
	original     Map
	working      Map
	roleTemplate string
	loaded       bool
	loading      bool
	closed       bool
	generation   uint64
	status       Status
	message      string
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder records every successful save.
func WithRecorder(
	recorder ChangeRecorder,
) Option {
	return func(s *Session) {
		s.recorder = recorder
	}
}

// WithClock overrides the clock used for change records.
func WithClock(
	now func() time.Time,
) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates an empty session. Nothing is loaded until Load.
func NewSession(
	logger *slog.Logger,
	service Service,
	opts ...Option,
) *Session {
	s := &Session{
		logger:   logger,
		service:  service,
		now:      time.Now,
		original: Map{},
		working:  Map{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches the partner's permissions and makes them both the original
// and the working copy. On failure the session keeps its previous state.
func (s *Session) Load(
	ctx context.Context,
	partnerID string,
) error {
	if partnerID == "" {
		return ErrEmptyPartnerID
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "permission.load")
	defer span.End()
	span.SetAttributes(attribute.String("partner.id", partnerID))

	s.mu.Lock()
	if err := s.checkIdleLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.partnerID != partnerID {
		s.generation++
	}
	gen := s.beginLocked("loading permissions")
	s.mu.Unlock()

	resp, err := s.service.GetPartnerPermissions(ctx, partnerID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finishLocked(gen) {
		return ErrStale
	}

	if err != nil {
		s.failLocked(span, "load", partnerID, err)
		return fmt.Errorf("loading permissions for partner %q: %w", partnerID, err)
	}

	if resp == nil {
		resp = &PartnerPermissions{}
	}

	s.partnerID = partnerID
	s.original = resp.Permissions.Clone()
	s.working = resp.Permissions.Clone()
	s.roleTemplate = resp.RoleTemplate
	s.loaded = true
	s.succeedLocked("permissions loaded")

	s.logger.Debug("permissions loaded",
		slog.String("partner_id", partnerID),
		slog.String("role_template", s.roleTemplate),
		slog.Int("keys", len(s.original)),
	)

	return nil
}

// Toggle flips one working grant. It never calls the service.
func (s *Session) Toggle(
	key Key,
) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReadyLocked(); err != nil {
		return err
	}

	s.working.Toggle(key)

	s.logger.Debug("permission toggled",
		slog.String("partner_id", s.partnerID),
		slog.String("key", key),
		slog.Bool("granted", s.working.Granted(key)),
	)

	return nil
}

// ApplyTemplate applies a role template on the server and reloads the
// resulting map. The server decides what a template grants; nothing is
// simulated locally. On failure neither copy changes.
func (s *Session) ApplyTemplate(
	ctx context.Context,
	templateKey string,
) error {
	if templateKey == "" {
		return ErrEmptyTemplateKey
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "permission.apply_template")
	defer span.End()

	s.mu.Lock()
	if err := s.checkReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	partnerID := s.partnerID
	gen := s.beginLocked("applying role template")
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("partner.id", partnerID),
		attribute.String("template.key", templateKey),
	)

	resp, err := s.applyAndFetch(ctx, partnerID, templateKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finishLocked(gen) {
		return ErrStale
	}

	if err != nil {
		s.failLocked(span, "apply template", partnerID, err)
		return err
	}

	s.original = resp.Permissions.Clone()
	s.working = resp.Permissions.Clone()
	s.roleTemplate = templateKey
	s.succeedLocked("role template applied")

	s.logger.Info("role template applied",
		slog.String("partner_id", partnerID),
		slog.String("role_template", templateKey),
	)

	return nil
}

func (s *Session) applyAndFetch(
	ctx context.Context,
	partnerID string,
	templateKey string,
) (*PartnerPermissions, error) {
	if err := s.service.ApplyRoleTemplate(ctx, partnerID, templateKey); err != nil {
		return nil, fmt.Errorf("applying template %q to partner %q: %w", templateKey, partnerID, err)
	}

	resp, err := s.service.GetPartnerPermissions(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("reloading permissions for partner %q: %w", partnerID, err)
	}

	if resp == nil {
		resp = &PartnerPermissions{}
	}

	return resp, nil
}

// Save persists the complete working map. It is rejected with ErrNotDirty,
// without a service call, when there is nothing to persist. A failed save
// keeps the working edits.
func (s *Session) Save(
	ctx context.Context,
) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "permission.save")
	defer span.End()

	s.mu.Lock()
	if err := s.checkReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.working.Equal(s.original) {
		s.mu.Unlock()
		return ErrNotDirty
	}

	partnerID := s.partnerID
	update := PartnerPermissions{
		Permissions:  s.working.Clone(),
		RoleTemplate: s.roleTemplate,
	}
	changes := s.working.Diff(s.original)
	gen := s.beginLocked("saving permissions")
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("partner.id", partnerID),
		attribute.Int("changes.granted", len(changes.Granted)),
		attribute.Int("changes.revoked", len(changes.Revoked)),
	)

	err := s.service.UpdatePartnerPermissions(ctx, partnerID, update)

	s.mu.Lock()
	if s.finishLocked(gen) {
		s.mu.Unlock()
		return ErrStale
	}

	if err != nil {
		s.failLocked(span, "save", partnerID, err)
		s.mu.Unlock()
		return fmt.Errorf("saving permissions for partner %q: %w", partnerID, err)
	}

	s.original = update.Permissions.Clone()
	s.succeedLocked("permissions saved")
	recorder := s.recorder
	s.mu.Unlock()

	s.logger.Info("permissions saved",
		slog.String("partner_id", partnerID),
		slog.Int("granted", len(changes.Granted)),
		slog.Int("revoked", len(changes.Revoked)),
	)

	if recorder != nil {
		record := ChangeRecord{
			ID:           uuid.New().String(),
			PartnerID:    partnerID,
			RoleTemplate: update.RoleTemplate,
			Granted:      changes.Granted,
			Revoked:      changes.Revoked,
			SavedAt:      s.now().UTC(),
		}
		if err := recorder.Record(ctx, record); err != nil {
			s.logger.Warn("failed to record permission change",
				slog.String("partner_id", partnerID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

// Reset discards working edits. It never calls the service.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReadyLocked(); err != nil {
		return err
	}

	s.working = s.original.Clone()

	return nil
}

// Close abandons the session. Calls still in flight are discarded when
// they complete.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.generation++
}

// PartnerID returns the loaded partner, or "" before the first load.
func (s *Session) PartnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.partnerID
}

// Working returns a copy of the working map.
func (s *Session) Working() Map {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.working.Clone()
}

// Original returns a copy of the last persisted map.
func (s *Session) Original() Map {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.original.Clone()
}

// RoleTemplate returns the template label last reported or applied.
func (s *Session) RoleTemplate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roleTemplate
}

// Dirty reports whether the working map differs from the original.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.working.Equal(s.original)
}

// Changes lists what a save would grant and revoke.
func (s *Session) Changes() Changes {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.working.Diff(s.original)
}

// Loading reports whether a remote call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Status returns the status of the latest remote call and its message.
func (s *Session) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status, s.message
}

func (s *Session) checkIdleLocked() error {
	if s.closed {
		return ErrClosed
	}
	if s.loading {
		return ErrBusy
	}

	return nil
}

func (s *Session) checkReadyLocked() error {
	if err := s.checkIdleLocked(); err != nil {
		return err
	}
	if !s.loaded {
		return ErrNotLoaded
	}

	return nil
}

func (s *Session) beginLocked(
	message string,
) uint64 {
	s.loading = true
	s.status = StatusLoading
	s.message = message

	return s.generation
}

// finishLocked clears the in-flight gate and reports whether the result of
// the call started at gen must be discarded.
func (s *Session) finishLocked(
	gen uint64,
) bool {
	s.loading = false

	return s.closed || gen != s.generation
}

func (s *Session) succeedLocked(
	message string,
) {
	s.status = StatusSuccess
	s.message = message
}

func (s *Session) failLocked(
	span trace.Span,
	operation string,
	partnerID string,
	err error,
) {
	s.status = StatusError
	s.message = fmt.Sprintf("%s failed: %s", operation, err.Error())

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.logger.Error("permission call failed",
		slog.String("operation", operation),
		slog.String("partner_id", partnerID),
		slog.String("error", err.Error()),
	)
}
