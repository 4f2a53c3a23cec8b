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
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 120

// minColWidth is the narrowest a shrunk column may become.
const minColWidth = 8

// PrintStyledTable renders bordered tables sized to the terminal.
func PrintStyledTable(
	sections []Section,
) {
	re := lipgloss.NewRenderer(os.Stdout)

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = defaultTermWidth
	}

	headerStyle := re.NewStyle().Foreground(White).Bold(true).Align(lipgloss.Center)
	cellStyle := re.NewStyle().PaddingLeft(1)
	oddRowStyle := cellStyle.Foreground(Gray)
	evenRowStyle := cellStyle.Foreground(LightGray)
	borderStyle := re.NewStyle().Foreground(Purple)
	paddingStyle := re.NewStyle().Padding(0, 2)
	titleStyle := re.NewStyle().Bold(true).Foreground(Purple).PaddingLeft(2).PaddingTop(1)

	for _, section := range sections {
		widths := FitColumnWidths(
			CalculateColumnWidths(section.Headers, section.Rows, 1),
			termWidth,
		)

		if section.Title != "" {
			fmt.Println(titleStyle.Render(section.Title + ":"))
		}

		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(
				row int,
				col int,
			) lipgloss.Style {
				style := evenRowStyle
				if row%2 != 0 {
					style = oddRowStyle
				}
				if col < len(widths) {
					style = style.Width(widths[col])
				}

				return style
			})

		styledHeaders := make([]string, len(section.Headers))
		for i, header := range section.Headers {
			styledHeaders[i] = headerStyle.Render(header)
		}
		t.Headers(styledHeaders...)
		t.Rows(section.Rows...)

		fmt.Println(paddingStyle.Render(t.String()))
	}
}

// CalculateColumnWidths sizes each column to its widest line plus padding
// on both sides.
func CalculateColumnWidths(
	headers []string,
	rows [][]string,
	padding int,
) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			for _, line := range strings.Split(cell, "\n") {
				if n := lipgloss.Width(line); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	for i := range widths {
		widths[i] += padding * 2
	}

	return widths
}

// FitColumnWidths shrinks widths proportionally when the table, including
// borders, would overflow termWidth. No column drops below minColWidth.
func FitColumnWidths(
	widths []int,
	termWidth int,
) []int {
	total := len(widths) * 3
	for _, w := range widths {
		total += w
	}

	available := termWidth - 4
	if total <= available || total == 0 {
		return widths
	}

	scale := float64(available) / float64(total)
	fitted := make([]int, len(widths))
	for i, w := range widths {
		fitted[i] = int(float64(w) * scale)
		if fitted[i] < minColWidth {
			fitted[i] = minColWidth
		}
	}

	return fitted
}
