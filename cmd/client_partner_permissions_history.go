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

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/journal"
)

// clientPartnerPermissionsHistoryCmd represents the clientPartnerPermissionsHistory command.
var clientPartnerPermissionsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved permission changes from the local journal",
	Run: func(cmd *cobra.Command, _ []string) {
		partnerID := mustPartnerID(cmd)

		if appConfig.Journal.File == "" {
			cli.LogFatal(logger, "journal not configured", fmt.Errorf("journal.file is empty"))
		}

		records, err := journal.ReadFile(appFs, appConfig.Journal.File, partnerID)
		if err != nil {
			cli.LogFatal(logger, "failed to read journal", err, "journal.file", appConfig.Journal.File)
		}

		if jsonOutput {
			printJSON(records)
			return
		}

		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []string{
				rec.SavedAt.Local().Format(time.RFC3339),
				rec.RoleTemplate,
				cli.FormatList(rec.Granted),
				cli.FormatList(rec.Revoked),
				rec.ID,
			})
		}

		cli.PrintStyledTable([]cli.Section{{
			Title:   "History",
			Headers: []string{"SAVED", "TEMPLATE", "GRANTED", "REVOKED", "ID"},
			Rows:    rows,
		}})
	},
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsHistoryCmd)
}
