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

// clientPartnerPermissionsApplyCmd represents the clientPartnerPermissionsApply command.
var clientPartnerPermissionsApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a role template to a partner",
	Long: `Apply a role template on the server and show the partner's resulting
permissions. The server decides what the template grants.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		partnerID := mustPartnerID(cmd)
		templateKey, _ := cmd.Flags().GetString("template")

		registry := loadRegistry()
		session := loadSession(ctx, partnerID)

		if err := session.ApplyTemplate(ctx, templateKey); err != nil {
			cli.HandleError(err, logger)
			cli.LogFatal(logger, "failed to apply role template", err,
				"partner_id", partnerID,
				"template", templateKey,
			)
		}

		displayPermissions(session, registry, "")
	},
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsApplyCmd)

	clientPartnerPermissionsApplyCmd.PersistentFlags().
		StringP("template", "t", "", "Role template key")

	_ = clientPartnerPermissionsApplyCmd.MarkPersistentFlagRequired("template")
}
