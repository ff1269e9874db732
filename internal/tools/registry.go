// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tools

import (
	"p4mcp/internal/p4"
)

// Descriptor describes one callable tool for discovery responses.
type Descriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// DecodeFunc turns a tool-call argument bag into a typed p4 command.
// Missing optional fields take their documented defaults; missing
// required fields degrade to empty values rather than failing, so a
// sloppy client still gets a well-formed command.
type DecodeFunc func(args map[string]interface{}) p4.Command

type entry struct {
	desc   Descriptor
	decode DecodeFunc
}

// Registry is the catalog of tools the server exposes. It is populated
// once at construction and read-only afterward, so lookups need no
// locking. List preserves registration order.
type Registry struct {
	order   []string
	entries map[string]entry
}

// NewRegistry creates a registry with the full Perforce tool catalog.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	registerP4Tools(r)
	return r
}

// register adds a tool. Later registrations under the same name replace
// the entry without disturbing the original position.
func (r *Registry) register(desc Descriptor, decode DecodeFunc) {
	if _, exists := r.entries[desc.Name]; !exists {
		r.order = append(r.order, desc.Name)
	}
	r.entries[desc.Name] = entry{desc: desc, decode: decode}
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.entries[name].desc)
	}
	return descs
}

// Contains reports whether a tool with the given name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Decode builds the typed command for a registered tool from its
// argument bag. The second return is false for unknown tools.
func (r *Registry) Decode(name string, args map[string]interface{}) (p4.Command, bool) {
	e, ok := r.entries[name]
	if !ok {
		return p4.Command{}, false
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return e.decode(args), true
}
