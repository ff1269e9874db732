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
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"p4mcp/internal/errors"
)

// Runner executes a Command and returns the textual result. Exactly one
// implementation is bound for the lifetime of the server.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands against the real p4 binary.
type ExecRunner struct {
	binary  string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewExecRunner creates a runner that spawns binary for each command.
// An empty binary falls back to "p4" on PATH. A zero timeout disables
// the per-command deadline.
func NewExecRunner(binary string, timeout time.Duration, logger zerolog.Logger) *ExecRunner {
	if binary == "" {
		binary = Program
	}
	return &ExecRunner{binary: binary, timeout: timeout, logger: logger}
}

// Run spawns the binary with the command's argument vector, captures
// stdout and stderr separately and waits for completion.
func (r *ExecRunner) Run(ctx context.Context, c Command) (string, error) {
	inv := c.Invocation()
	r.logger.Debug().Str("binary", r.binary).Strs("args", inv.Args).Msg("executing p4 command")

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.binary, inv.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", errors.Wrap(errors.CodeSpawn, "cannot start "+r.binary, err)
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.Wrap(errors.CodeCommandFailed, "p4 command timed out", err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.New(errors.CodeCommandFailed, "p4 command failed: "+msg)
	}

	return stdout.String(), nil
}
