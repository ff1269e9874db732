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

// Defaults applied when a caller omits optional arguments.
const (
	DefaultSyncPath   = "..."
	DefaultChangesMax = 10
)

// registerP4Tools registers the Perforce tool catalog. Registration
// order here is the order tools/list reports.
func registerP4Tools(r *Registry) {
	r.register(Descriptor{
		Name:        "p4_status",
		Description: "Get Perforce workspace status",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Optional path to check status for",
				},
			},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Status(stringArg(args, "path", ""))
	})

	r.register(Descriptor{
		Name:        "p4_sync",
		Description: "Sync files from Perforce depot",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to sync (e.g., //depot/main/...)",
				},
				"force": map[string]interface{}{
					"type":        "boolean",
					"description": "Force sync (overwrite local changes)",
				},
			},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Sync(stringArg(args, "path", DefaultSyncPath), boolArg(args, "force", false))
	})

	r.register(Descriptor{
		Name:        "p4_edit",
		Description: "Open file(s) for edit in Perforce",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"files": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Files to open for edit",
				},
			},
			"required": []string{"files"},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Edit(stringListArg(args, "files"))
	})

	r.register(Descriptor{
		Name:        "p4_add",
		Description: "Add new file(s) to Perforce",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"files": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Files to add",
				},
			},
			"required": []string{"files"},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Add(stringListArg(args, "files"))
	})

	r.register(Descriptor{
		Name:        "p4_submit",
		Description: "Submit changes to Perforce",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Change description",
				},
				"files": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional specific files to submit",
				},
			},
			"required": []string{"description"},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Submit(stringArg(args, "description", ""), stringListArg(args, "files"))
	})

	r.register(Descriptor{
		Name:        "p4_revert",
		Description: "Revert files in Perforce",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"files": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Files to revert",
				},
			},
			"required": []string{"files"},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Revert(stringListArg(args, "files"))
	})

	r.register(Descriptor{
		Name:        "p4_opened",
		Description: "List files opened for edit",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"changelist": map[string]interface{}{
					"type":        "string",
					"description": "Optional changelist number",
				},
			},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Opened(stringArg(args, "changelist", ""))
	})

	r.register(Descriptor{
		Name:        "p4_changes",
		Description: "List recent changes",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"max": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of changes to return",
					"default":     DefaultChangesMax,
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Optional path to filter changes",
				},
			},
		},
	}, func(args map[string]interface{}) p4.Command {
		return p4.Changes(intArg(args, "max", DefaultChangesMax), stringArg(args, "path", ""))
	})
}
