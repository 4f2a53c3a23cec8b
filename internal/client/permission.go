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
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/retr0h/partnerctl/internal/permission"
)

// GetPartnerPermissions fetches a partner's permission map and role template.
func (c *Client) GetPartnerPermissions(
	ctx context.Context,
	partnerID string,
) (*permission.PartnerPermissions, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "client.get_partner_permissions")
	defer span.End()
	span.SetAttributes(attribute.String("partner.id", partnerID))

	path, err := partnerPath(partnerID, "/permissions")
	if err != nil {
		return nil, err
	}

	var resp permission.PartnerPermissions
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, recordError(span, err)
	}

	if resp.Permissions == nil {
		resp.Permissions = permission.Map{}
	}

	return &resp, nil
}

// ApplyRoleTemplate asks the server to apply a role template to a partner.
func (c *Client) ApplyRoleTemplate(
	ctx context.Context,
	partnerID string,
	templateKey string,
) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "client.apply_role_template")
	defer span.End()
	span.SetAttributes(
		attribute.String("partner.id", partnerID),
		attribute.String("template.key", templateKey),
	)

	path, err := partnerPath(partnerID, "/permissions/role-template")
	if err != nil {
		return err
	}

	body := applyTemplateRequest{TemplateKey: templateKey}
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return recordError(span, err)
	}

	return nil
}

// UpdatePartnerPermissions overwrites a partner's full permission map.
func (c *Client) UpdatePartnerPermissions(
	ctx context.Context,
	partnerID string,
	update permission.PartnerPermissions,
) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "client.update_partner_permissions")
	defer span.End()
	span.SetAttributes(
		attribute.String("partner.id", partnerID),
		attribute.Int("permissions.count", len(update.Permissions)),
	)

	path, err := partnerPath(partnerID, "/permissions")
	if err != nil {
		return err
	}

	if update.Permissions == nil {
		update.Permissions = permission.Map{}
	}

	if err := c.do(ctx, http.MethodPut, path, update, nil); err != nil {
		return recordError(span, err)
	}

	return nil
}

// GetRoleTemplates lists the role template catalog.
func (c *Client) GetRoleTemplates(
	ctx context.Context,
) ([]permission.RoleTemplate, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "client.get_role_templates")
	defer span.End()

	templates := []permission.RoleTemplate{}
	if err := c.do(ctx, http.MethodGet, "/role-templates", nil, &templates); err != nil {
		return nil, recordError(span, err)
	}

	return templates, nil
}

func recordError(
	span trace.Span,
	err error,
) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return fmt.Errorf("admin api: %w", err)
}
