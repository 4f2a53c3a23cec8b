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

// Package cache decorates a permission service with a redis-backed role
// template cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/retr0h/partnerctl/internal/permission"
)

// TemplatesKey is the redis key holding the role template catalog.
const TemplatesKey = "partnerctl:role-templates"

// DefaultTTL applies when no TTL is configured.
const DefaultTTL = 10 * time.Minute

// Compile-time check that TemplateService satisfies permission.Service.
var _ permission.Service = (*TemplateService)(nil)

// TemplateService caches GetRoleTemplates and passes every other call
// through. Redis failures fall back to the wrapped service.
type TemplateService struct {
	permission.Service

	logger *slog.Logger
	rdb    redis.UniversalClient
	ttl    time.Duration
}

// New wraps next with a role template cache stored in rdb.
func New(
	logger *slog.Logger,
	next permission.Service,
	rdb redis.UniversalClient,
	ttl time.Duration,
) *TemplateService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TemplateService{
		Service: next,
		logger:  logger,
		rdb:     rdb,
		ttl:     ttl,
	}
}

// GetRoleTemplates returns the cached catalog, fetching and storing it on a
// miss.
func (s *TemplateService) GetRoleTemplates(
	ctx context.Context,
) ([]permission.RoleTemplate, error) {
	templates, err := s.cached(ctx)
	switch {
	case err == nil:
		s.logger.Debug("role template cache hit",
			slog.Int("templates", len(templates)),
		)
		return templates, nil
	case errors.Is(err, redis.Nil):
		s.logger.Debug("role template cache miss")
	default:
		s.logger.Warn("role template cache unavailable",
			slog.String("error", err.Error()),
		)
	}

	templates, err = s.Service.GetRoleTemplates(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, templates); err != nil {
		s.logger.Warn("failed to cache role templates",
			slog.String("error", err.Error()),
		)
	}

	return templates, nil
}

// Invalidate drops the cached catalog.
func (s *TemplateService) Invalidate(
	ctx context.Context,
) error {
	if err := s.rdb.Del(ctx, TemplatesKey).Err(); err != nil {
		return fmt.Errorf("invalidating role templates: %w", err)
	}

	return nil
}

func (s *TemplateService) cached(
	ctx context.Context,
) ([]permission.RoleTemplate, error) {
	data, err := s.rdb.Get(ctx, TemplatesKey).Bytes()
	if err != nil {
		return nil, err
	}

	var templates []permission.RoleTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("decoding cached role templates: %w", err)
	}

	return templates, nil
}

func (s *TemplateService) store(
	ctx context.Context,
	templates []permission.RoleTemplate,
) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("encoding role templates: %w", err)
	}

	return s.rdb.Set(ctx, TemplatesKey, data, s.ttl).Err()
}
