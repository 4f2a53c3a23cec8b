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
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/permission"
	"github.com/retr0h/partnerctl/internal/validation"
)

// clientPartnerPermissionsSetCmd represents the clientPartnerPermissionsSet command.
var clientPartnerPermissionsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Grant or revoke individual permissions",
	Long: `Grant or revoke individual permissions and save the partner's full
permission map. Keys already in the requested state are left alone; when
nothing changes no save is sent.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		partnerID := mustPartnerID(cmd)
		grant, _ := cmd.Flags().GetStringSlice("grant")
		revoke, _ := cmd.Flags().GetStringSlice("revoke")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if len(grant) == 0 && len(revoke) == 0 {
			cli.LogFatal(logger, "invalid flags", fmt.Errorf("at least one --grant or --revoke is required"))
		}

		requested, err := requestedGrants(grant, revoke)
		if err != nil {
			cli.LogFatal(logger, "invalid flags", err)
		}

		registry := loadRegistry()
		for _, key := range requested.Keys() {
			if _, ok := registry.Lookup(key); !ok {
				logger.Warn("permission is not used by any menu item", slog.String("key", key))
			}
		}

		opts, closeJournal := sessionOptions(ctx)
		defer closeJournal()

		session := loadSession(ctx, partnerID, opts...)
		working := session.Working()
		for _, key := range requested.Keys() {
			if working.Granted(key) == requested.Granted(key) {
				continue
			}
			if err := session.Toggle(key); err != nil {
				cli.LogFatal(logger, "failed to toggle permission", err, "key", key)
			}
		}

		if dryRun || !session.Dirty() {
			displayPermissions(session, registry, "")
			return
		}

		if err := session.Save(ctx); err != nil && !errors.Is(err, permission.ErrNotDirty) {
			cli.HandleError(err, logger)
			cli.LogFatal(logger, "failed to save permissions", err, "partner_id", partnerID)
		}

		displayPermissions(session, registry, "")
	},
}

// requestedGrants merges --grant and --revoke into one map. A key may not
// appear in both.
func requestedGrants(
	grant []string,
	revoke []string,
) (permission.Map, error) {
	requested := permission.Map{}

	for _, key := range grant {
		if !validation.IsPermissionKey(key) {
			return nil, fmt.Errorf("invalid permission key %q", key)
		}
		requested[key] = permission.Grant{Granted: true}
	}

	for _, key := range revoke {
		if !validation.IsPermissionKey(key) {
			return nil, fmt.Errorf("invalid permission key %q", key)
		}
		if _, ok := requested[key]; ok {
			return nil, fmt.Errorf("permission %q is both granted and revoked", key)
		}
		requested[key] = permission.Grant{Granted: false}
	}

	return requested, nil
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsSetCmd)

	clientPartnerPermissionsSetCmd.PersistentFlags().
		StringSlice("grant", []string{}, "Permission keys to grant")
	clientPartnerPermissionsSetCmd.PersistentFlags().
		StringSlice("revoke", []string{}, "Permission keys to revoke")
	clientPartnerPermissionsSetCmd.PersistentFlags().
		Bool("dry-run", false, "Show the resulting changes without saving")
}
