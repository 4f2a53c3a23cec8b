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
	"github.com/spf13/cobra"

	"github.com/retr0h/partnerctl/internal/cli"
)

// clientRoleTemplatesListCmd represents the clientRoleTemplatesList command.
var clientRoleTemplatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List role templates",
	Long: `List the role templates that can be applied to a partner. Results are
cached in redis when cache.redis.addr is configured.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		refresh, _ := cmd.Flags().GetBool("refresh")

		if refresh && templateCache != nil {
			if err := templateCache.Invalidate(ctx); err != nil {
				logger.Warn("failed to invalidate role template cache")
			}
		}

		templates, err := service.GetRoleTemplates(ctx)
		if err != nil {
			cli.HandleError(err, logger)
			cli.LogFatal(logger, "failed to list role templates", err)
		}

		if jsonOutput {
			printJSON(templates)
			return
		}

		cli.PrintStyledTable([]cli.Section{cli.BuildTemplateSection(templates)})
	},
}

func init() {
	clientRoleTemplatesCmd.AddCommand(clientRoleTemplatesListCmd)

	clientRoleTemplatesListCmd.PersistentFlags().
		Bool("refresh", false, "Bypass the role template cache")
}
