package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/freelodev/freelo-mcp/freelo"
)

// Name is the server name announced during the MCP handshake.
const Name = "freelo-mcp"

// Server exposes the Freelo read API as MCP tools over stdio.
type Server struct {
	api    freelo.API
	logger zerolog.Logger
	mcp    *mcp.Server
}

// New creates an MCP server wrapping the given Freelo API and registers
// all tools on it.
func New(api freelo.API, version string, logger zerolog.Logger) *Server {
	s := &Server{
		api:    api,
		logger: logger,
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version,
	}, nil)
	s.registerTools()

	return s
}

// Run serves MCP over stdio until the context is canceled or the client
// disconnects. Stdout carries the protocol; logging goes to stderr.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Str("server", Name).Msg("Starting MCP server on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// errorEnvelope is the JSON shape returned for every failed tool call.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// jsonResult renders v as indented JSON tool content.
func (s *Server) jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s.errorResult("encode", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// errorResult shapes err into the failure envelope with IsError set.
// Failures stay tool results, never protocol errors, so one bad call
// cannot take the session down.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn().Err(err).Str("tool", tool).Msg("Tool call failed")

	payload, _ := json.Marshal(errorEnvelope{Success: false, Error: err.Error()})
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		IsError: true,
	}
}
