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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/client"
	"github.com/retr0h/partnerctl/internal/menu"
	"github.com/retr0h/partnerctl/internal/permission"
)

type UITestSuite struct {
	suite.Suite
}

func TestUITestSuite(t *testing.T) {
	suite.Run(t, new(UITestSuite))
}

func captureStdout(
	fn func(),
) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	os.Stdout = old

	return string(out)
}

func (suite *UITestSuite) TestFormatList() {
	tests := []struct {
		name string
		list []string
		want string
	}{
		{
			name: "when list is empty returns None",
			list: []string{},
			want: "None",
		},
		{
			name: "when list has items joins them",
			list: []string{"orders.view", "orders.edit"},
			want: "orders.view, orders.edit",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.FormatList(tc.list))
		})
	}
}

func (suite *UITestSuite) TestHandleAuthError() {
	tests := []struct {
		name      string
		err       error
		wantInLog []string
	}{
		{
			name:      "when error is not a response error logs unknown error",
			err:       errors.New("boom"),
			wantInLog: []string{"unknown error", "code=0"},
		},
		{
			name: "when response error is wrapped logs message",
			err: fmt.Errorf("admin api: %w", &client.ResponseError{
				StatusCode: http.StatusForbidden,
				Message:    "insufficient permissions",
			}),
			wantInLog: []string{"insufficient permissions", "code=403"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			cli.HandleAuthError(tc.err, logger)

			for _, want := range tc.wantInLog {
				assert.Contains(suite.T(), buf.String(), want)
			}
		})
	}
}

func (suite *UITestSuite) TestHandleError() {
	tests := []struct {
		name      string
		err       error
		wantInLog string
	}{
		{
			name:      "when unauthorized routes to auth error",
			err:       &client.ResponseError{StatusCode: http.StatusUnauthorized, Message: "token expired"},
			wantInLog: "authorization error",
		},
		{
			name:      "when other error logs request failure",
			err:       &client.ResponseError{StatusCode: http.StatusInternalServerError, Message: "db down"},
			wantInLog: "request failed",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			cli.HandleError(tc.err, logger)

			assert.Contains(suite.T(), buf.String(), tc.wantInLog)
		})
	}
}

func (suite *UITestSuite) TestPrintKV() {
	tests := []struct {
		name       string
		pairs      []string
		wantOutput bool
	}{
		{
			name:       "when valid pairs prints output",
			pairs:      []string{"Partner", "P1"},
			wantOutput: true,
		},
		{
			name:       "when multiple pairs prints all",
			pairs:      []string{"Partner", "P1", "Template", "basic"},
			wantOutput: true,
		},
		{
			name:       "when odd number of pairs prints nothing",
			pairs:      []string{"Partner"},
			wantOutput: false,
		},
		{
			name:       "when empty prints nothing",
			pairs:      []string{},
			wantOutput: false,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output := captureStdout(func() {
				cli.PrintKV(tc.pairs...)
			})

			if tc.wantOutput {
				assert.NotEmpty(suite.T(), output)
			} else {
				assert.Empty(suite.T(), output)
			}
		})
	}
}

func (suite *UITestSuite) TestPrintCompactTable() {
	tests := []struct {
		name     string
		sections []cli.Section
		want     []string
	}{
		{
			name: "when section has title headers and rows",
			sections: []cli.Section{
				{
					Title:   "Orders",
					Headers: []string{"permission", "granted"},
					Rows:    [][]string{{"orders.view", "yes"}, {"orders.edit", "no"}},
				},
			},
			want: []string{"Orders", "PERMISSION", "GRANTED", "orders.view", "orders.edit"},
		},
		{
			name: "when cell is too wide truncates it",
			sections: []cli.Section{
				{
					Headers: []string{"description", "x"},
					Rows:    [][]string{{string(bytes.Repeat([]byte("a"), 80)), "1"}},
				},
			},
			want: []string{"…"},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			output := captureStdout(func() {
				cli.PrintCompactTable(tc.sections)
			})

			for _, want := range tc.want {
				assert.Contains(suite.T(), output, want)
			}
		})
	}
}

func (suite *UITestSuite) TestBuildPermissionSections() {
	menuSections := []menu.Section{
		{
			Section: "Orders",
			Items: []menu.Item{
				{RequiredPermission: "orders.view", Label: "Orders"},
				{RequiredPermission: "orders.edit", Label: "Manage orders"},
			},
		},
	}
	working := permission.Map{
		"orders.view":  {Granted: true},
		"orders.edit":  {Granted: true},
		"legacy.stock": {Granted: true},
	}
	original := permission.Map{
		"orders.view":  {Granted: true},
		"legacy.stock": {Granted: true},
	}

	got := cli.BuildPermissionSections(
		menuSections,
		[]permission.Key{"legacy.stock"},
		working,
		original,
	)

	suite.Require().Len(got, 2)
	suite.Equal("Orders", got[0].Title)
	suite.Equal([][]string{
		{"orders.view", "Orders", "yes", ""},
		{"orders.edit", "Manage orders", "yes", "*"},
	}, got[0].Rows)
	suite.Equal("Unlisted", got[1].Title)
	suite.Equal([][]string{{"legacy.stock", "", "yes", ""}}, got[1].Rows)
}

func (suite *UITestSuite) TestBuildTemplateSection() {
	got := cli.BuildTemplateSection([]permission.RoleTemplate{
		{
			Key:   "basic",
			Label: "Basic",
			Permissions: permission.Map{
				"orders.view": {Granted: true},
				"users.view":  {Granted: true},
				"users.edit":  {Granted: false},
			},
		},
		{
			Key:   "none",
			Label: "No access",
		},
	})

	suite.Equal([][]string{
		{"basic", "Basic", "orders.view, users.view"},
		{"none", "No access", "None"},
	}, got.Rows)
}

func (suite *UITestSuite) TestBuildMenuSections() {
	got := cli.BuildMenuSections(menu.Filter(menu.Default().Sections(), "partner permissions"))

	suite.Require().Len(got, 1)
	suite.Equal([][]string{
		{"partners.permissions", "Partner permissions", "Grant partners access to back-office menus"},
	}, got[0].Rows)
}

func (suite *UITestSuite) TestCalculateColumnWidths() {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		padding int
		want    []int
	}{
		{
			name:    "when headers are widest",
			headers: []string{"PERMISSION", "GRANTED"},
			rows:    [][]string{{"a", "yes"}},
			padding: 1,
			want:    []int{12, 9},
		},
		{
			name:    "when multi-line cell uses longest line",
			headers: []string{"ID"},
			rows:    [][]string{{"short\na-much-longer-line"}},
			padding: 0,
			want:    []int{18},
		},
		{
			name:    "when rows have extra cells ignores them",
			headers: []string{"A"},
			rows:    [][]string{{"x", "ignored"}},
			padding: 0,
			want:    []int{1},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.CalculateColumnWidths(tc.headers, tc.rows, tc.padding))
		})
	}
}

func (suite *UITestSuite) TestFitColumnWidths() {
	tests := []struct {
		name      string
		widths    []int
		termWidth int
		want      []int
	}{
		{
			name:      "when table fits leaves widths alone",
			widths:    []int{10, 20},
			termWidth: 120,
			want:      []int{10, 20},
		},
		{
			name:      "when table overflows scales down",
			widths:    []int{100, 100},
			termWidth: 110,
			want:      []int{51, 51},
		},
		{
			name:      "when scaling would go too narrow clamps to minimum",
			widths:    []int{4, 200},
			termWidth: 50,
			want:      []int{8, 43},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.want, cli.FitColumnWidths(tc.widths, tc.termWidth))
		})
	}
}

func (suite *UITestSuite) TestPrintStyledTable() {
	output := captureStdout(func() {
		cli.PrintStyledTable([]cli.Section{{
			Title:   "History",
			Headers: []string{"SAVED", "GRANTED"},
			Rows:    [][]string{{"2026-02-21T10:30:00Z", "orders.view"}},
		}})
	})

	assert.Contains(suite.T(), output, "History")
	assert.Contains(suite.T(), output, "orders.view")
}
