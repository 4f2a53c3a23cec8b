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
)

// clientPartnerPermissionsGetCmd represents the clientPartnerPermissionsGet command.
var clientPartnerPermissionsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a partner's permissions",
	Long: `Show every menu permission of a partner grouped by menu section.
Grants stored on the server that no menu item uses are listed as unlisted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		partnerID := mustPartnerID(cmd)
		query, _ := cmd.Flags().GetString("query")

		registry := loadRegistry()
		session := loadSession(ctx, partnerID)

		displayPermissions(session, registry, query)
	},
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsGetCmd)

	clientPartnerPermissionsGetCmd.PersistentFlags().
		StringP("query", "q", "", "Only show menu items whose label or description matches")
}
