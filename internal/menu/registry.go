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

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/retr0h/partnerctl/internal/permission"
	"github.com/retr0h/partnerctl/internal/validation"
)

//go:embed default.yaml
var defaultRegistry []byte

// Registry is a read-only catalog of menu sections. It is safe for
// concurrent reads once constructed.
type Registry struct {
	sections []Section
	byKey    map[permission.Key]Item
}

// Default returns the built-in back-office menu.
func Default() *Registry {
	r, err := Parse(defaultRegistry)
	if err != nil {
		panic(fmt.Sprintf("embedded menu registry is invalid: %s", err))
	}

	return r
}

// Load reads and parses a registry file.
func Load(
	appFs afero.Fs,
	path string,
) (*Registry, error) {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return nil, fmt.Errorf("reading menu registry %q: %w", path, err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("menu registry %q: %w", path, err)
	}

	return r, nil
}

// Parse builds a registry from YAML. Every item needs a well-formed
// permission key and a label, and a key may appear only once.
func Parse(
	data []byte,
) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	if errMsg, ok := validation.Struct(doc); !ok {
		return nil, fmt.Errorf("validation: %s", errMsg)
	}

	byKey := make(map[permission.Key]Item)
	for _, section := range doc.Sections {
		for _, item := range section.Items {
			if _, dup := byKey[item.RequiredPermission]; dup {
				return nil, fmt.Errorf(
					"duplicate permission key %q in section %q",
					item.RequiredPermission,
					section.Section,
				)
			}
			byKey[item.RequiredPermission] = item
		}
	}

	return &Registry{
		sections: doc.Sections,
		byKey:    byKey,
	}, nil
}

// Sections returns the sections in registry order.
func (r *Registry) Sections() []Section {
	return Filter(r.sections, "")
}

// Lookup returns the item gated by key.
func (r *Registry) Lookup(
	key permission.Key,
) (Item, bool) {
	item, ok := r.byKey[key]
	return item, ok
}

// Keys returns every permission key in the registry, sorted.
func (r *Registry) Keys() []permission.Key {
	keys := make([]permission.Key, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Unknown returns the keys of m that no menu item is gated by, sorted.
func (r *Registry) Unknown(
	m permission.Map,
) []permission.Key {
	unknown := []permission.Key{}
	for _, k := range m.Keys() {
		if _, ok := r.byKey[k]; !ok {
			unknown = append(unknown, k)
		}
	}

	return unknown
}
