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

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrQuit ends Shell.Run without an error.
var ErrQuit = errors.New("quit")

// AnyArgs accepts any number of arguments.
const AnyArgs = -1

// ShellCommand is one command of an interactive Shell.
type ShellCommand struct {
	// Usage is shown by help, e.g. "toggle <key>".
	Usage string
	// Help is a one-line description.
	Help string
	// Args is the exact argument count, or AnyArgs.
	Args int
	// Run executes the command.
	Run func(ctx context.Context, args []string) error
}

// Shell reads whitespace-separated commands line by line and dispatches
// them. Command errors are printed and the loop continues.
type Shell struct {
	in       io.Reader
	out      io.Writer
	prompt   string
	commands map[string]ShellCommand
}

// NewShell creates a Shell reading from in and writing to out.
func NewShell(
	in io.Reader,
	out io.Writer,
	prompt string,
) *Shell {
	return &Shell{
		in:       in,
		out:      out,
		prompt:   prompt,
		commands: make(map[string]ShellCommand),
	}
}

// Handle registers cmd under name.
func (s *Shell) Handle(
	name string,
	cmd ShellCommand,
) {
	s.commands[name] = cmd
}

// Run processes commands until input ends, ctx is cancelled, or a command
// returns ErrQuit.
func (s *Shell) Run(
	ctx context.Context,
) error {
	scanner := bufio.NewScanner(s.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(s.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name, args := fields[0], fields[1:]
		if name == "help" {
			s.printHelp()
			continue
		}

		cmd, ok := s.commands[name]
		if !ok {
			_, _ = fmt.Fprintf(s.out, "unknown command %q, try help\n", name)
			continue
		}

		if cmd.Args != AnyArgs && len(args) != cmd.Args {
			_, _ = fmt.Fprintf(s.out, "usage: %s\n", cmd.Usage)
			continue
		}

		if err := cmd.Run(ctx, args); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			_, _ = fmt.Fprintf(s.out, "error: %s\n", err)
		}
	}
}

func (s *Shell) printHelp() {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := s.commands[name]
		_, _ = fmt.Fprintf(s.out, "  %-20s %s\n", cmd.Usage, cmd.Help)
	}
}
