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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/menu"
	"github.com/retr0h/partnerctl/internal/permission"
)

// clientPartnerPermissionsEditCmd represents the clientPartnerPermissionsEdit command.
var clientPartnerPermissionsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a partner's permissions interactively",
	Long: `Open an editing session for a partner. Commands are read from stdin one
per line; type help for the list. Edits stay local until save.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		partnerID := mustPartnerID(cmd)

		registry := loadRegistry()
		opts, closeJournal := sessionOptions(ctx)
		defer closeJournal()

		editor := permission.NewEditor(logger, service, opts...)
		defer editor.Close()

		if _, err := editor.Open(ctx, partnerID); err != nil {
			cli.HandleError(err, logger)
			cli.LogFatal(logger, "failed to load partner permissions", err, "partner_id", partnerID)
		}

		shell := cli.NewShell(os.Stdin, os.Stdout, "partnerctl> ")
		registerEditCommands(shell, editor, registry)

		if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			cli.LogFatal(logger, "edit session failed", err)
		}

		if session := editor.Current(); session != nil && session.Dirty() {
			logger.Warn("discarding unsaved changes")
			cli.PrintChanges(session.Changes())
		}
	},
}

func registerEditCommands(
	shell *cli.Shell,
	editor *permission.Editor,
	registry *menu.Registry,
) {
	current := editor.Current

	shell.Handle("open", cli.ShellCommand{
		Usage: "open <partner>",
		Help:  "switch to another partner, discarding unsaved edits",
		Args:  1,
		Run: func(ctx context.Context, args []string) error {
			if _, err := editor.Open(ctx, args[0]); err != nil {
				return err
			}
			displayPermissions(current(), registry, "")
			return nil
		},
	})
	shell.Handle("toggle", cli.ShellCommand{
		Usage: "toggle <key>",
		Help:  "flip one grant",
		Args:  1,
		Run: func(_ context.Context, args []string) error {
			session := current()
			if err := session.Toggle(args[0]); err != nil {
				return err
			}
			if _, ok := registry.Lookup(args[0]); !ok {
				fmt.Println(cli.DimStyle.Render("  note: no menu item uses " + args[0]))
			}
			cli.PrintKV(args[0], cli.FormatGrant(session.Working().Granted(args[0])))
			return nil
		},
	})
	shell.Handle("apply", cli.ShellCommand{
		Usage: "apply <template>",
		Help:  "apply a role template on the server",
		Args:  1,
		Run: func(ctx context.Context, args []string) error {
			if err := current().ApplyTemplate(ctx, args[0]); err != nil {
				return err
			}
			displayPermissions(current(), registry, "")
			return nil
		},
	})
	shell.Handle("save", cli.ShellCommand{
		Usage: "save",
		Help:  "persist the working permissions",
		Run: func(ctx context.Context, _ []string) error {
			if err := current().Save(ctx); err != nil {
				return err
			}
			_, message := current().Status()
			fmt.Println(message)
			return nil
		},
	})
	shell.Handle("reset", cli.ShellCommand{
		Usage: "reset",
		Help:  "discard unsaved edits",
		Run: func(_ context.Context, _ []string) error {
			return current().Reset()
		},
	})
	shell.Handle("diff", cli.ShellCommand{
		Usage: "diff",
		Help:  "show what save would grant and revoke",
		Run: func(_ context.Context, _ []string) error {
			cli.PrintChanges(current().Changes())
			return nil
		},
	})
	shell.Handle("status", cli.ShellCommand{
		Usage: "status",
		Help:  "show the last operation status",
		Run: func(_ context.Context, _ []string) error {
			session := current()
			status, message := session.Status()
			cli.PrintKV(
				"Partner", session.PartnerID(),
				"Template", session.RoleTemplate(),
				"Dirty", fmt.Sprintf("%t", session.Dirty()),
			)
			cli.PrintKV("Status", status.String(), "Message", message)
			return nil
		},
	})
	shell.Handle("show", cli.ShellCommand{
		Usage: "show [query]",
		Help:  "list permissions, optionally filtered",
		Args:  cli.AnyArgs,
		Run: func(_ context.Context, args []string) error {
			displayPermissions(current(), registry, strings.Join(args, " "))
			return nil
		},
	})
	shell.Handle("search", cli.ShellCommand{
		Usage: "search <query>",
		Help:  "search menu items by label or description",
		Args:  cli.AnyArgs,
		Run: func(_ context.Context, args []string) error {
			cli.PrintCompactTable(cli.BuildMenuSections(
				menu.Filter(registry.Sections(), strings.Join(args, " ")),
			))
			return nil
		},
	})
	shell.Handle("templates", cli.ShellCommand{
		Usage: "templates",
		Help:  "list role templates",
		Run: func(ctx context.Context, _ []string) error {
			templates, err := service.GetRoleTemplates(ctx)
			if err != nil {
				return err
			}
			cli.PrintCompactTable([]cli.Section{cli.BuildTemplateSection(templates)})
			return nil
		},
	})
	shell.Handle("quit", cli.ShellCommand{
		Usage: "quit",
		Help:  "leave the editor",
		Run: func(_ context.Context, _ []string) error {
			return cli.ErrQuit
		},
	})
}

func init() {
	clientPartnerPermissionsCmd.AddCommand(clientPartnerPermissionsEditCmd)
}
