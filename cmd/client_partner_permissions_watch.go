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
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/permission"
	"github.com/retr0h/partnerctl/internal/watch"
)

// Compile-time check that the watcher can be run as a Lifecycle.
var _ cli.Lifecycle = (*watch.Watcher)(nil)

// changeEvent is the --json shape of a detected change.
type changeEvent struct {
	PartnerID  string             `json:"partnerId"`
	Changes    permission.Changes `json:"changes"`
	ObservedAt time.Time          `json:"observedAt"`
}

// clientPartnerPermissionsWatchCmd represents the clientPartnerPermissionsWatch command.
var clientPartnerPermissionsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report permission changes made on the server",
	Long: `Poll a partner's permissions and print every grant and revoke made on
the server until interrupted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		partnerID := mustPartnerID(cmd)

		w := watch.New(
			logger,
			service,
			partnerID,
			appConfig.Watch.Interval,
			func(partnerID string, changes permission.Changes, _ permission.Map) {
				if jsonOutput {
					printJSON(changeEvent{
						PartnerID:  partnerID,
						Changes:    changes,
						ObservedAt: time.Now().UTC(),
					})
					return
				}

				fmt.Println()
				cli.PrintKV("Partner", partnerID, "Observed", time.Now().Format(time.Kitchen))
				cli.PrintChanges(changes)
			},
		)

		if err := w.Poll(ctx); err != nil {
			cli.HandleError(err, logger)
			cli.LogFatal(logger, "failed to load partner permissions", err, "partner_id", partnerID)
		}

		cli.Run(ctx, w)
	},
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsWatchCmd)

	clientPartnerPermissionsWatchCmd.PersistentFlags().
		Duration("interval", 30*time.Second, "Time between polls")

	_ = viper.BindPFlag("watch.interval", clientPartnerPermissionsWatchCmd.PersistentFlags().Lookup("interval"))
}
