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

// Package permission holds a partner's permission grants while they are being
// edited: the last-persisted map, the working copy, and the calls that move
// one into the other.
package permission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Key identifies a grant, e.g. "orders.view". It matches the
// RequiredPermission of a menu item.
type Key = string

// Grant is the state of a single permission key.
//
// The backend may attach extra metadata to a grant. It is kept in Extra and
// sent back unchanged on save, but only Granted takes part in comparisons.
type Grant struct {
	Granted bool
	Extra   map[string]json.RawMessage
}

// MarshalJSON encodes the grant as an object, re-emitting passthrough fields.
func (g Grant) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(g.Extra)+1)
	for k, v := range g.Extra {
		out[k] = v
	}

	out["granted"] = json.RawMessage(fmt.Sprintf("%t", g.Granted))

	return json.Marshal(out)
}

// UnmarshalJSON decodes a grant object. A bare boolean is accepted as well.
func (g *Grant) UnmarshalJSON(
	data []byte,
) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")) {
		*g = Grant{Granted: bytes.Equal(trimmed, []byte("true"))}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding grant: %w", err)
	}

	var grant Grant
	if v, ok := raw["granted"]; ok {
		if err := json.Unmarshal(v, &grant.Granted); err != nil {
			return fmt.Errorf("decoding granted flag: %w", err)
		}
		delete(raw, "granted")
	}

	if len(raw) > 0 {
		grant.Extra = raw
	}

	*g = grant

	return nil
}

func (g Grant) clone() Grant {
	if g.Extra == nil {
		return Grant{Granted: g.Granted}
	}

	extra := make(map[string]json.RawMessage, len(g.Extra))
	for k, v := range g.Extra {
		extra[k] = append(json.RawMessage(nil), v...)
	}

	return Grant{Granted: g.Granted, Extra: extra}
}

// Map maps permission keys to grants. A missing key is not granted.
type Map map[Key]Grant

// Clone returns an independent deep copy. The result is never nil.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, g := range m {
		out[k] = g.clone()
	}

	return out
}

// Granted reports whether key is granted. Absent keys are not.
func (m Map) Granted(
	key Key,
) bool {
	return m[key].Granted
}

// Toggle flips the grant for key. An absent key becomes granted.
func (m Map) Toggle(
	key Key,
) {
	g := m[key]
	g.Granted = !g.Granted
	m[key] = g
}

// Equal compares effective grants key by key, ignoring insertion order and
// passthrough metadata. An absent key equals an explicit false.
func (m Map) Equal(
	other Map,
) bool {
	for k, g := range m {
		if g.Granted != other[k].Granted {
			return false
		}
	}

	for k, g := range other {
		if g.Granted != m[k].Granted {
			return false
		}
	}

	return true
}

// Keys returns every key present in the map, sorted.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Diff reports the keys granted and revoked in m relative to base.
func (m Map) Diff(
	base Map,
) Changes {
	changes := Changes{
		Granted: []Key{},
		Revoked: []Key{},
	}

	seen := make(map[Key]struct{}, len(m)+len(base))
	for k := range m {
		seen[k] = struct{}{}
	}
	for k := range base {
		seen[k] = struct{}{}
	}

	for k := range seen {
		now, before := m.Granted(k), base.Granted(k)
		switch {
		case now && !before:
			changes.Granted = append(changes.Granted, k)
		case !now && before:
			changes.Revoked = append(changes.Revoked, k)
		}
	}

	sort.Strings(changes.Granted)
	sort.Strings(changes.Revoked)

	return changes
}

// Changes lists grant transitions between two maps.
type Changes struct {
	Granted []Key `json:"granted"`
	Revoked []Key `json:"revoked"`
}

// Empty reports whether there are no transitions.
func (c Changes) Empty() bool {
	return len(c.Granted) == 0 && len(c.Revoked) == 0
}

// PartnerPermissions is the payload exchanged with the permission service.
type PartnerPermissions struct {
	Permissions  Map    `json:"permissions"`
	RoleTemplate string `json:"roleTemplate"`
}

// RoleTemplate is a named, server-defined preset of grants.
type RoleTemplate struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Permissions Map    `json:"permissions"`
}

// ChangeRecord describes one successful save.
type ChangeRecord struct {
	ID           string    `json:"id"`
	PartnerID    string    `json:"partnerId"`
	RoleTemplate string    `json:"roleTemplate"`
	Granted      []Key     `json:"granted"`
	Revoked      []Key     `json:"revoked"`
	SavedAt      time.Time `json:"savedAt"`
}

// Service is the remote permission store.
type Service interface {
	// GetPartnerPermissions fetches the partner's stored map and template label.
	GetPartnerPermissions(
		ctx context.Context,
		partnerID string,
	) (*PartnerPermissions, error)
	// ApplyRoleTemplate applies a template server-side. Callers must reload.
	ApplyRoleTemplate(
		ctx context.Context,
		partnerID string,
		templateKey string,
	) error
	// UpdatePartnerPermissions overwrites the partner's stored map.
	UpdatePartnerPermissions(
		ctx context.Context,
		partnerID string,
		update PartnerPermissions,
	) error
	// GetRoleTemplates returns the template catalog.
	GetRoleTemplates(
		ctx context.Context,
	) ([]RoleTemplate, error)
}

// ChangeRecorder receives a record of every successful save.
type ChangeRecorder interface {
	Record(
		ctx context.Context,
		record ChangeRecord,
	) error
}
