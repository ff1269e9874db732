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

import "encoding/json"

// Typed accessors for the untyped argument bag a tool call carries.
// Values of the wrong type count as absent.

func stringArg(args map[string]interface{}, key, fallback string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return fallback
}

func boolArg(args map[string]interface{}, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

// intArg reads an integer argument. encoding/json delivers numbers as
// float64, but int and json.Number show up from hand-built maps.
func intArg(args map[string]interface{}, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}

// stringListArg reads an array-of-string argument. It returns nil when
// the key is absent or not an array, which callers use to distinguish
// "not supplied" from an explicitly empty list. Non-string elements are
// skipped.
func stringListArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		if typed, ok := args[key].([]string); ok {
			return typed
		}
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}
