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

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/partnerctl/internal/cli"
)

type ShellPublicTestSuite struct {
	suite.Suite
}

func TestShellPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ShellPublicTestSuite))
}

func (suite *ShellPublicTestSuite) newShell(
	input string,
	out *bytes.Buffer,
	calls *[]string,
) *cli.Shell {
	sh := cli.NewShell(strings.NewReader(input), out, "> ")
	sh.Handle("toggle", cli.ShellCommand{
		Usage: "toggle <key>",
		Help:  "flip a grant",
		Args:  1,
		Run: func(_ context.Context, args []string) error {
			*calls = append(*calls, "toggle "+args[0])
			return nil
		},
	})
	sh.Handle("search", cli.ShellCommand{
		Usage: "search [query]",
		Help:  "filter menu items",
		Args:  cli.AnyArgs,
		Run: func(_ context.Context, args []string) error {
			*calls = append(*calls, "search "+strings.Join(args, " "))
			return nil
		},
	})
	sh.Handle("save", cli.ShellCommand{
		Usage: "save",
		Help:  "persist edits",
		Run: func(_ context.Context, _ []string) error {
			return errors.New("nothing to save")
		},
	})
	sh.Handle("quit", cli.ShellCommand{
		Usage: "quit",
		Help:  "leave",
		Run: func(_ context.Context, _ []string) error {
			return cli.ErrQuit
		},
	})

	return sh
}

func (suite *ShellPublicTestSuite) TestRun() {
	tests := []struct {
		name      string
		input     string
		wantCalls []string
		wantOut   []string
	}{
		{
			name:      "when commands are dispatched in order",
			input:     "toggle a\n\nsearch order view\ntoggle b\n",
			wantCalls: []string{"toggle a", "search order view", "toggle b"},
		},
		{
			name:      "when quit stops reading",
			input:     "toggle a\nquit\ntoggle b\n",
			wantCalls: []string{"toggle a"},
		},
		{
			name:      "when command is unknown",
			input:     "frobnicate\n",
			wantCalls: []string{},
			wantOut:   []string{`unknown command "frobnicate"`},
		},
		{
			name:      "when argument count is wrong",
			input:     "toggle\ntoggle a b\n",
			wantCalls: []string{},
			wantOut:   []string{"usage: toggle <key>"},
		},
		{
			name:      "when command fails the loop continues",
			input:     "save\ntoggle a\n",
			wantCalls: []string{"toggle a"},
			wantOut:   []string{"error: nothing to save"},
		},
		{
			name:      "when help is requested",
			input:     "help\n",
			wantCalls: []string{},
			wantOut:   []string{"toggle <key>", "flip a grant", "search [query]"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var out bytes.Buffer
			calls := []string{}

			err := suite.newShell(tc.input, &out, &calls).Run(context.Background())

			suite.NoError(err)
			suite.Equal(tc.wantCalls, calls)
			for _, want := range tc.wantOut {
				suite.Contains(out.String(), want)
			}
		})
	}
}

func (suite *ShellPublicTestSuite) TestRunCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	calls := []string{}

	err := suite.newShell("toggle a\n", &out, &calls).Run(ctx)

	suite.ErrorIs(err, context.Canceled)
	suite.Empty(calls)
}
