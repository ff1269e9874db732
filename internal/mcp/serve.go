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

package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"p4mcp/internal/errors"
)

// maxFrameBytes caps the size of a single request line.
const maxFrameBytes = 10 * 1024 * 1024

// Serve runs the read/dispatch pump until in reaches end of input. A
// producer goroutine decodes frames and hands them through an ordered
// queue to the consumer, which dispatches serially and flushes each
// response before pulling the next frame. Lines that do not decode are
// logged and skipped; only a real read or write failure ends the pump
// with an error.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	q := newQueue()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(q.in)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(nil, maxFrameBytes)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			msg, err := DecodeMessage(line)
			if err != nil {
				s.logger.Warn().Err(err).Msg("dropping undecodable frame")
				continue
			}
			select {
			case q.in <- msg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrap(errors.CodeTransport, "reading input stream", err)
		}
		return nil
	})

	g.Go(func() error {
		w := bufio.NewWriter(out)
		for msg := range q.out {
			resp := s.Handle(ctx, msg)
			data, err := json.Marshal(resp)
			if err != nil {
				// Responses are built from plain values; this does not
				// happen in practice. Keep the loop alive regardless.
				s.logger.Error().Err(err).Str("id", msg.ID).Msg("cannot marshal response")
				continue
			}
			data = append(data, '\n')
			if _, err := w.Write(data); err != nil {
				return errors.Wrap(errors.CodeTransport, "writing response", err)
			}
			if err := w.Flush(); err != nil {
				return errors.Wrap(errors.CodeTransport, "flushing response", err)
			}
		}
		return nil
	})

	return g.Wait()
}

// DecodeMessage parses one frame and checks the envelope: a supported
// method, a correlation id, and params where the method requires them.
// Anything else is a decode error and the frame is dropped without a
// reply, since no usable correlation id is guaranteed.
func DecodeMessage(line []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		return Message{}, errors.Wrap(errors.CodeDecode, "malformed frame", err)
	}

	switch msg.Method {
	case MethodInitialize, MethodCallTool:
		if len(msg.Params) == 0 {
			return Message{}, errors.New(errors.CodeDecode, fmt.Sprintf("%s requires params", msg.Method))
		}
	case MethodListTools, MethodPing:
	default:
		return Message{}, errors.New(errors.CodeDecode, "unsupported method: "+msg.Method)
	}

	if msg.ID == "" {
		return Message{}, errors.New(errors.CodeDecode, "frame has no id")
	}
	return msg, nil
}
