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
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"p4mcp/internal/errors"
	"p4mcp/internal/p4"
	"p4mcp/internal/tools"
)

// Server routes decoded request frames to the tool registry and the
// bound runner. It holds no per-request state: registry and runner are
// fixed at construction and every call is handled independently, with
// no required ordering between initialize and the other methods.
type Server struct {
	registry *tools.Registry
	runner   p4.Runner
	logger   zerolog.Logger
}

// NewServer creates a dispatcher over the given registry and runner.
func NewServer(registry *tools.Registry, runner p4.Runner, logger zerolog.Logger) *Server {
	return &Server{registry: registry, runner: runner, logger: logger}
}

// Handle processes one request and always produces exactly one
// response carrying the request's correlation id. Failures become
// error responses, never panics or dropped replies.
func (s *Server) Handle(ctx context.Context, msg Message) Response {
	s.logger.Debug().Str("method", msg.Method).Str("id", msg.ID).Msg("handling message")

	switch msg.Method {
	case MethodInitialize:
		return s.handleInitialize(msg)
	case MethodListTools:
		return Response{ID: msg.ID, Result: ListToolsResult{Tools: s.registry.List()}}
	case MethodCallTool:
		return s.handleCallTool(ctx, msg)
	case MethodPing:
		return Response{ID: msg.ID}
	}

	return Response{ID: msg.ID, Error: &Error{
		Code:    CodeMethodNotFound,
		Message: "Unknown method: " + msg.Method,
	}}
}

func (s *Server) handleInitialize(msg Message) Response {
	var params InitializeParams
	if err := json.Unmarshal(msg.Params, &params); err == nil {
		s.logger.Info().
			Str("client", params.ClientInfo.Name).
			Str("version", params.ClientInfo.Version).
			Msg("client initialized")
	}

	return Response{ID: msg.ID, Result: InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools: &ListChangedCapability{ListChanged: false},
		},
		ServerInfo: ServerInfo{Name: ServerName, Version: ServerVersion},
	}}
}

func (s *Server) handleCallTool(ctx context.Context, msg Message) Response {
	var params CallToolParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return Response{ID: msg.ID, Error: &Error{
			Code:    CodeInvalidParams,
			Message: "Invalid tool call parameters",
			Data:    err.Error(),
		}}
	}

	if !s.registry.Contains(params.Name) {
		return Response{ID: msg.ID, Error: &Error{
			Code:    CodeInvalidParams,
			Message: "Unknown tool: " + params.Name,
		}}
	}

	cmd, _ := s.registry.Decode(params.Name, params.Arguments)
	text, err := s.runner.Run(ctx, cmd)
	if err != nil {
		s.logger.Error().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		respErr := &Error{Code: CodeInternalError, Message: err.Error()}
		if code := errors.CodeOf(err); code != "" {
			respErr.Data = string(code)
		}
		return Response{ID: msg.ID, Error: respErr}
	}

	return Response{ID: msg.ID, Result: CallToolResult{
		Content: []Content{TextContent(text)},
	}}
}
