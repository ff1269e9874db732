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
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// MockRunner answers every command with deterministic canned text that
// embeds the supplied parameters verbatim. It never touches the
// filesystem and never spawns a process, which makes it safe for tests
// and for running the server without a Perforce installation.
type MockRunner struct {
	logger zerolog.Logger
}

// NewMockRunner creates a mock runner.
func NewMockRunner(logger zerolog.Logger) *MockRunner {
	return &MockRunner{logger: logger}
}

// Run synthesizes output for the command. It fails only when the
// context is already done.
func (r *MockRunner) Run(ctx context.Context, c Command) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.logger.Debug().Str("op", string(c.Op)).Msg("mock executing p4 command")

	switch c.Op {
	case OpStatus:
		pathInfo := c.Path
		if pathInfo == "" {
			pathInfo = "current directory"
		}
		return fmt.Sprintf("Mock P4 Status for %s:\n"+
			"//depot/main/file1.txt#1 - edit default change (text)\n"+
			"//depot/main/file2.cpp#2 - add default change (text)\n"+
			"... (mock data)", pathInfo), nil

	case OpSync:
		forceFlag := ""
		if c.Force {
			forceFlag = " (forced)"
		}
		return fmt.Sprintf("Mock P4 Sync%s:\n"+
			"//depot/main/%s#1 - updating /local/workspace/file1.txt\n"+
			"//depot/main/%s#2 - updating /local/workspace/file2.cpp\n"+
			"... synced 15 files", forceFlag, c.Path, c.Path), nil

	case OpEdit:
		return fmt.Sprintf("Mock P4 Edit:\n"+
			"Files opened for edit:\n%s\n"+
			"... %d file(s) opened for edit",
			strings.Join(c.Files, ", "), len(c.Files)), nil

	case OpAdd:
		return fmt.Sprintf("Mock P4 Add:\n"+
			"Files opened for add:\n%s\n"+
			"... %d file(s) opened for add",
			strings.Join(c.Files, ", "), len(c.Files)), nil

	case OpSubmit:
		fileInfo := "All opened files"
		if c.Files != nil {
			fileInfo = "Specific files: " + strings.Join(c.Files, ", ")
		}
		return fmt.Sprintf("Mock P4 Submit:\n"+
			"Change description: %s\n"+
			"Files: %s\n"+
			"Change 12345 submitted successfully", c.Description, fileInfo), nil

	case OpRevert:
		return fmt.Sprintf("Mock P4 Revert:\n"+
			"Files reverted:\n%s\n"+
			"... %d file(s) reverted",
			strings.Join(c.Files, ", "), len(c.Files)), nil

	case OpOpened:
		clInfo := ""
		if c.Changelist != "" {
			clInfo = " in changelist " + c.Changelist
		}
		return fmt.Sprintf("Mock P4 Opened%s:\n"+
			"//depot/main/file1.txt#1 - edit default change (text)\n"+
			"//depot/main/file2.cpp#2 - add default change (text)\n"+
			"//depot/main/file3.h#1 - edit change 12346 (text)", clInfo), nil

	case OpChanges:
		pathInfo := ""
		if c.Path != "" {
			pathInfo = " for path " + c.Path
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Mock P4 Changes (max: %d)%s:\n", c.Max, pathInfo)
		for i := 0; i < c.Max && i < 5; i++ {
			fmt.Fprintf(&b, "Change %d on 2024/01/%d by user@workspace 'Sample change description %d'\n",
				12350-i, 15+i, i+1)
		}
		return b.String(), nil

	case OpInfo:
		return "Mock P4 Info:\n" +
			"User name: testuser\n" +
			"Client name: test-client\n" +
			"Client host: test-host\n" +
			"Client root: /workspace/p4/test-client\n" +
			"Current directory: /workspace/p4/test-client/main\n" +
			"Peer address: ssl:perforce.example.com:1666\n" +
			"Client address: 192.168.1.100\n" +
			"Server address: perforce.example.com:1666\n" +
			"Server root: /opt/perforce/depot\n" +
			"Server date: 2024/01/15 12:30:45 -0800 PST\n" +
			"Server uptime: 15:32:18\n" +
			"Server version: P4D/LINUX26X86_64/2023.1/2553040 (2023/06/15)\n" +
			"ServerID: perforce-server\n" +
			"Case Handling: insensitive", nil
	}

	return "", fmt.Errorf("unsupported operation: %s", c.Op)
}
