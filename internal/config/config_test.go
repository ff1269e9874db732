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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MockMode {
		t.Fatal("mock mode must default to off")
	}
	if cfg.P4Binary != "p4" {
		t.Fatalf("expected default binary p4, got %q", cfg.P4Binary)
	}
	if cfg.CommandTimeout() != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", cfg.CommandTimeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"mock_mode": true, "p4_binary": "/opt/perforce/bin/p4", "timeout_seconds": 5}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.MockMode {
		t.Fatal("expected mock mode from file")
	}
	if cfg.P4Binary != "/opt/perforce/bin/p4" {
		t.Fatalf("unexpected binary %q", cfg.P4Binary)
	}
	if cfg.CommandTimeout() != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.CommandTimeout())
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvMockMode, "1")
	t.Setenv(EnvBinary, "/usr/local/bin/p4")
	t.Setenv(EnvTimeout, "120")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.MockMode {
		t.Fatal("expected mock mode from environment")
	}
	if cfg.P4Binary != "/usr/local/bin/p4" {
		t.Fatalf("unexpected binary %q", cfg.P4Binary)
	}
	if cfg.TimeoutSeconds != 120 {
		t.Fatalf("unexpected timeout %d", cfg.TimeoutSeconds)
	}
}

func TestToggleParsing(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"anything", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
	}
	for _, tc := range cases {
		if got := parseToggle(tc.value); got != tc.want {
			t.Fatalf("parseToggle(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
