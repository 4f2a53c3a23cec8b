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
	"github.com/retr0h/partnerctl/internal/menu"
	"github.com/retr0h/partnerctl/internal/permission"
)

// permissionHeaders are the columns of a permission table.
var permissionHeaders = []string{"PERMISSION", "LABEL", "GRANTED", "CHANGED"}

// BuildPermissionSections renders working grants grouped by menu section.
// Keys granted or changed in working but absent from the menu are listed
// under "Unlisted". CHANGED marks grants that differ from original.
func BuildPermissionSections(
	menuSections []menu.Section,
	unknown []permission.Key,
	working permission.Map,
	original permission.Map,
) []Section {
	sections := make([]Section, 0, len(menuSections)+1)
	for _, ms := range menuSections {
		rows := make([][]string, 0, len(ms.Items))
		for _, item := range ms.Items {
			rows = append(rows, permissionRow(
				item.RequiredPermission,
				item.Label,
				working,
				original,
			))
		}

		sections = append(sections, Section{
			Title:   ms.Section,
			Headers: permissionHeaders,
			Rows:    rows,
		})
	}

	if len(unknown) > 0 {
		rows := make([][]string, 0, len(unknown))
		for _, key := range unknown {
			rows = append(rows, permissionRow(key, "", working, original))
		}

		sections = append(sections, Section{
			Title:   "Unlisted",
			Headers: permissionHeaders,
			Rows:    rows,
		})
	}

	return sections
}

func permissionRow(
	key permission.Key,
	label string,
	working permission.Map,
	original permission.Map,
) []string {
	changed := ""
	if working.Granted(key) != original.Granted(key) {
		changed = "*"
	}

	return []string{key, label, FormatGrant(working.Granted(key)), changed}
}

// FormatGrant renders a grant flag.
func FormatGrant(
	granted bool,
) string {
	if granted {
		return "yes"
	}

	return "no"
}

// BuildMenuSections renders menu items without grant state.
func BuildMenuSections(
	menuSections []menu.Section,
) []Section {
	sections := make([]Section, 0, len(menuSections))
	for _, ms := range menuSections {
		rows := make([][]string, 0, len(ms.Items))
		for _, item := range ms.Items {
			rows = append(rows, []string{item.RequiredPermission, item.Label, item.Description})
		}

		sections = append(sections, Section{
			Title:   ms.Section,
			Headers: []string{"PERMISSION", "LABEL", "DESCRIPTION"},
			Rows:    rows,
		})
	}

	return sections
}

// BuildTemplateSection renders the role template catalog.
func BuildTemplateSection(
	templates []permission.RoleTemplate,
) Section {
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		granted := []string{}
		for _, key := range t.Permissions.Keys() {
			if t.Permissions.Granted(key) {
				granted = append(granted, key)
			}
		}

		rows = append(rows, []string{t.Key, t.Label, FormatList(granted)})
	}

	return Section{
		Title:   "Role Templates",
		Headers: []string{"KEY", "LABEL", "GRANTS"},
		Rows:    rows,
	}
}

// PrintChanges prints what a save would grant and revoke.
func PrintChanges(
	changes permission.Changes,
) {
	PrintKV(
		"Granted", FormatList(changes.Granted),
		"Revoked", FormatList(changes.Revoked),
	)
}
