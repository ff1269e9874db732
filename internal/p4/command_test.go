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

package p4

import (
	"reflect"
	"testing"
)

func TestInvocationArguments(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want []string
	}{
		{"status without path", Status(""), []string{"opened"}},
		{"status with path", Status("//depot/main/..."), []string{"opened", "//depot/main/..."}},
		{"sync", Sync("//depot/main/...", false), []string{"sync", "//depot/main/..."}},
		{"sync forced", Sync("//depot/main/...", true), []string{"sync", "-f", "//depot/main/..."}},
		{"edit", Edit([]string{"a.txt", "b.cpp"}), []string{"edit", "a.txt", "b.cpp"}},
		{"edit empty", Edit(nil), []string{"edit"}},
		{"add", Add([]string{"new.go"}), []string{"add", "new.go"}},
		{"submit all opened", Submit("fix bug", nil), []string{"submit", "-d", "fix bug"}},
		{"submit specific files", Submit("fix bug", []string{"a.txt"}), []string{"submit", "-d", "fix bug", "a.txt"}},
		{"revert", Revert([]string{"a.txt"}), []string{"revert", "a.txt"}},
		{"opened default changelist", Opened(""), []string{"opened"}},
		{"opened with changelist", Opened("12345"), []string{"opened", "-c", "12345"}},
		{"changes", Changes(10, ""), []string{"changes", "-m", "10"}},
		{"changes with path", Changes(25, "//depot/dev/..."), []string{"changes", "-m", "25", "//depot/dev/..."}},
		{"changes zero max", Changes(0, ""), []string{"changes", "-m", "0"}},
		{"info", Info(), []string{"info"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := tc.cmd.Invocation()
			if inv.Program != "p4" {
				t.Fatalf("expected program p4, got %q", inv.Program)
			}
			if !reflect.DeepEqual(inv.Args, tc.want) {
				t.Fatalf("got args %v, want %v", inv.Args, tc.want)
			}
		})
	}
}

func TestInvocationIsDeterministic(t *testing.T) {
	cmd := Submit("fix race in sync path", []string{"x.go", "y.go"})
	first := cmd.Invocation()
	second := cmd.Invocation()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("invocation differs between calls: %v vs %v", first, second)
	}
}
