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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/journal"
	"github.com/retr0h/partnerctl/internal/menu"
	"github.com/retr0h/partnerctl/internal/permission"
)

// permissionsView is the --json shape of a partner's permissions.
type permissionsView struct {
	PartnerID    string             `json:"partnerId"`
	RoleTemplate string             `json:"roleTemplate"`
	Permissions  permission.Map     `json:"permissions"`
	Changes      permission.Changes `json:"changes"`
	Unlisted     []permission.Key   `json:"unlisted"`
}

func loadRegistry() *menu.Registry {
	if appConfig.Menu.File == "" {
		return menu.Default()
	}

	registry, err := menu.Load(appFs, appConfig.Menu.File)
	if err != nil {
		cli.LogFatal(logger, "failed to load menu registry", err, "menu.file", appConfig.Menu.File)
	}

	return registry
}

// sessionOptions wires the change journal when one is configured. The
// returned func closes it.
func sessionOptions(
	ctx context.Context,
) ([]permission.Option, func()) {
	if appConfig.Journal.File == "" {
		return nil, func() {}
	}

	recorder := journal.NewFileRecorder(appFs, appConfig.Journal.File)
	if err := recorder.Open(ctx); err != nil {
		logger.Warn("change journal disabled",
			slog.String("journal.file", appConfig.Journal.File),
			slog.String("error", err.Error()),
		)
		return nil, func() {}
	}

	return []permission.Option{permission.WithRecorder(recorder)}, func() {
		if err := recorder.Close(context.Background()); err != nil {
			logger.Warn("failed to close change journal", slog.String("error", err.Error()))
		}
	}
}

// loadSession loads partnerID into a new session or exits.
func loadSession(
	ctx context.Context,
	partnerID string,
	opts ...permission.Option,
) *permission.Session {
	session := permission.NewSession(logger, service, opts...)
	if err := session.Load(ctx, partnerID); err != nil {
		cli.HandleError(err, logger)
		cli.LogFatal(logger, "failed to load partner permissions", err, "partner_id", partnerID)
	}

	return session
}

func newPermissionsView(
	session *permission.Session,
	registry *menu.Registry,
) permissionsView {
	working := session.Working()

	return permissionsView{
		PartnerID:    session.PartnerID(),
		RoleTemplate: session.RoleTemplate(),
		Permissions:  working,
		Changes:      session.Changes(),
		Unlisted:     registry.Unknown(working),
	}
}

// displayPermissions prints the session's working grants grouped by menu
// section, narrowed by query.
func displayPermissions(
	session *permission.Session,
	registry *menu.Registry,
	query string,
) {
	if jsonOutput {
		printJSON(newPermissionsView(session, registry))
		return
	}

	working := session.Working()
	status, message := session.Status()

	fmt.Println()
	cli.PrintKV(
		"Partner", session.PartnerID(),
		"Template", session.RoleTemplate(),
		"Status", status.String(),
	)
	if message != "" {
		cli.PrintKV("Message", message)
	}
	if session.Dirty() {
		cli.PrintChanges(session.Changes())
	}

	unknown := registry.Unknown(working)
	if query != "" {
		unknown = nil
	}

	cli.PrintCompactTable(cli.BuildPermissionSections(
		menu.Filter(registry.Sections(), query),
		unknown,
		working,
		session.Original(),
	))
}

func printJSON(
	v any,
) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cli.LogFatal(logger, "failed to encode json", err)
	}

	fmt.Println(string(data))
}

func mustPartnerID(
	cmd *cobra.Command,
) string {
	partnerID, _ := cmd.Flags().GetString("partner-id")
	if partnerID == "" {
		cli.LogFatal(logger, "invalid flags", permission.ErrEmptyPartnerID)
	}

	return partnerID
}
