package mcpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/service"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// SourceMCP tags calls that arrive over MCP
const SourceMCP = "mcp"

// ServerName is the implementation name announced to MCP clients
const ServerName = "content-toolbox"

// Server exposes registry tools over the Model Context Protocol
type Server struct {
	registry *service.Registry
	server   *mcp.Server
}

// NewServer registers every registry tool under its bare operation name
func NewServer(registry *service.Registry, version string) *Server {
	s := &Server{
		registry: registry,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}

	for _, tool := range registry.Tools() {
		s.server.AddTool(&mcp.Tool{
			Name:        tool.Operation(),
			Description: tool.Description,
			Annotations: &mcp.ToolAnnotations{Title: tool.Name},
			InputSchema: InputSchema(tool),
		}, s.handler(tool.ID))
	}

	return s
}

// MCP returns the underlying SDK server
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// RunStdio serves MCP over stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler serves MCP over streamable HTTP
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

func (s *Server) handler(toolID string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := map[string]any{}
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := sonic.Unmarshal(req.Params.Arguments, &params); err != nil {
				return errorResult(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
			}
		}

		result, err := s.registry.Execute(ctx, toolID, params, &types.Context{Source: SourceMCP})
		if err != nil && result == nil {
			return nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
			IsError: !result.Success,
		}, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// InputSchema builds the JSON schema object for a tool's parameters
func InputSchema(tool types.Tool) map[string]any {
	properties := map[string]any{}
	required := []string{}

	for _, p := range tool.Parameters {
		prop := map[string]any{
			"type":        schemaType(p.Type),
			"description": p.Description,
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func schemaType(t string) string {
	switch t {
	case "string", "number", "integer", "boolean", "array", "object":
		return t
	default:
		return "string"
	}
}
