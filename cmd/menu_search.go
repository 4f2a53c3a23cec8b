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
	"github.com/retr0h/partnerctl/internal/menu"
)

// menuSearchCmd represents the menuSearch command.
var menuSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search menu items by label or description",
	Run: func(cmd *cobra.Command, _ []string) {
		query, _ := cmd.Flags().GetString("query")

		sections := menu.Filter(loadRegistry().Sections(), query)

		if jsonOutput {
			printJSON(sections)
			return
		}

		cli.PrintCompactTable(cli.BuildMenuSections(sections))
	},
}

func init() {
	menuCmd.AddCommand(menuSearchCmd)

	menuSearchCmd.PersistentFlags().
		StringP("query", "q", "", "Case-insensitive text to match")
}
