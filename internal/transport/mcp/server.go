package mcp

import (
	"context"
	"io"
	"strings"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
)

type dispatcher interface {
	core.CmdDispatcher
	Describe(name string) string
}

// Server exposes every registered command as an MCP tool over stdio. A tool
// call is dispatched exactly like a typed line "<tool> <args>".
type Server struct {
	dispatcher dispatcher
	mcp        *server.MCPServer
	in         io.Reader
	out        io.Writer
}

func NewServer(d dispatcher, in io.Reader, out io.Writer) *Server {
	s := &Server{
		dispatcher: d,
		mcp:        server.NewMCPServer(core.TermName, core.TermVersion, server.WithToolCapabilities(false)),
		in:         in,
		out:        out,
	}

	for _, name := range d.Commands() {
		desc := d.Describe(name)
		if desc == "" {
			desc = "Run the " + name + " command"
		}
		tool := mcpproto.NewTool(name,
			mcpproto.WithDescription(desc),
			mcpproto.WithString("args", mcpproto.Description("Space separated command arguments")),
		)
		s.mcp.AddTool(tool, s.handle(name))
	}
	return s
}

func (s *Server) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
		line := strings.TrimSpace(name + " " + req.GetString("args", ""))
		res := s.dispatcher.Dispatch(ctx, line)
		log.FromCtx(ctx).Debug().Str("label", res.Label).Msg("mcp tool call")
		return mcpproto.NewToolResultText(res.Output), nil
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Strs("tools", s.dispatcher.Commands()).Msg("serving commands over MCP stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}
