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

package menu

import "strings"

// Filter returns the sections whose items match query, case-insensitively,
// on label or description. Sections with no matching item are dropped. An
// empty or blank query returns every section in its original order. The
// result never shares slices with sections.
func Filter(
	sections []Section,
	query string,
) []Section {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]Section, 0, len(sections))
	for _, section := range sections {
		items := make([]Item, 0, len(section.Items))
		for _, item := range section.Items {
			if q == "" || matches(item, q) {
				items = append(items, item)
			}
		}

		if len(items) == 0 && q != "" {
			continue
		}

		result = append(result, Section{
			Section: section.Section,
			Items:   items,
		})
	}

	return result
}

func matches(
	item Item,
	query string,
) bool {
	return strings.Contains(strings.ToLower(item.Label), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}
