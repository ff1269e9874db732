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
	"testing"

	"github.com/xeipuuv/gojsonschema"
)

// Every published inputSchema must be a loadable JSON Schema, and the
// documented example calls must validate against it.
func TestInputSchemasAreValidJSONSchema(t *testing.T) {
	for _, desc := range NewRegistry().List() {
		t.Run(desc.Name, func(t *testing.T) {
			loader := gojsonschema.NewGoLoader(desc.InputSchema)
			if _, err := gojsonschema.NewSchema(loader); err != nil {
				t.Fatalf("schema for %s does not load: %v", desc.Name, err)
			}
		})
	}
}

func TestExampleArgumentsValidate(t *testing.T) {
	examples := map[string]map[string]interface{}{
		"p4_status":  {"path": "//depot/main/..."},
		"p4_sync":    {"path": "//depot/main/...", "force": true},
		"p4_edit":    {"files": []interface{}{"a.txt"}},
		"p4_add":     {"files": []interface{}{"new.go"}},
		"p4_submit":  {"description": "fix crash", "files": []interface{}{"a.txt"}},
		"p4_revert":  {"files": []interface{}{"a.txt"}},
		"p4_opened":  {"changelist": "12345"},
		"p4_changes": {"max": 5, "path": "//depot/dev/..."},
	}
	for _, desc := range NewRegistry().List() {
		example, ok := examples[desc.Name]
		if !ok {
			t.Fatalf("no example arguments for %s", desc.Name)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(desc.InputSchema))
		if err != nil {
			t.Fatalf("schema for %s does not load: %v", desc.Name, err)
		}
		result, err := schema.Validate(gojsonschema.NewGoLoader(example))
		if err != nil {
			t.Fatalf("validation of %s failed: %v", desc.Name, err)
		}
		if !result.Valid() {
			t.Fatalf("example arguments for %s do not validate: %v", desc.Name, result.Errors())
		}
	}
}
