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

// Package menu holds the catalog of permission-bearing menu items and the
// search used to narrow it.
package menu

import "github.com/retr0h/partnerctl/internal/permission"

// Item is a unit of back-office functionality gated by one permission key.
type Item struct {
	RequiredPermission permission.Key `yaml:"requiredPermission" json:"requiredPermission" validate:"required,permission_key"`
	Label              string         `yaml:"label"              json:"label"              validate:"required"`
	Description        string         `yaml:"description"        json:"description"`
}

// Section groups items for display. Order is significant for display only.
type Section struct {
	Section string `yaml:"section" json:"section" validate:"required"`
	Items   []Item `yaml:"items"   json:"items"   validate:"required,min=1,dive"`
}

// document is the on-disk registry layout.
type document struct {
	Sections []Section `yaml:"sections" validate:"required,min=1,dive"`
}
