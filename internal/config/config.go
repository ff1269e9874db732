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
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized on top of the config file.
const (
	EnvMockMode = "P4_MOCK_MODE"
	EnvBinary   = "P4_BINARY"
	EnvTimeout  = "P4MCP_TIMEOUT_SECONDS"
)

// Config represents the application configuration. The mock/real
// choice is resolved here exactly once; nothing else reads the
// environment after startup.
type Config struct {
	MockMode       bool   `json:"mock_mode"`
	P4Binary       string `json:"p4_binary,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		MockMode:       false,
		P4Binary:       "p4",
		TimeoutSeconds: 30,
	}
}

// Load builds the configuration in layers: defaults, then an optional
// JSON config file, then a .env file if present, then real environment
// variables. Later layers win.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// A missing .env is not an error.
	_ = godotenv.Load()
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if value, exists := os.LookupEnv(EnvMockMode); exists {
		c.MockMode = parseToggle(value)
	}
	if value, exists := os.LookupEnv(EnvBinary); exists && value != "" {
		c.P4Binary = value
	}
	if value, exists := os.LookupEnv(EnvTimeout); exists {
		if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
			c.TimeoutSeconds = seconds
		}
	}
}

// parseToggle treats presence as enabled unless the value explicitly
// says otherwise, so `P4_MOCK_MODE=1` and a bare `P4_MOCK_MODE=` both
// switch the mock backend on.
func parseToggle(value string) bool {
	switch value {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

// CommandTimeout returns the per-command deadline; zero disables it.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
