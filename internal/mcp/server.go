// Package mcp implements the MCP JSON-RPC surface: request dispatch, tool
// definitions, and the handlers that bridge tool calls to the events
// service.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"msevents-mcp/pkg/events"
	"msevents-mcp/pkg/logging"
)

// serverName and serverVersion identify this server to MCP clients.
const (
	serverName      = "msevents-mcp"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// Server handles MCP protocol requests.
type Server struct {
	service       *events.Service
	defaultLocale string
	logger        zerolog.Logger
}

// NewServer creates a new MCP server. defaultLocale is used by tool calls
// that omit a locale argument; empty means events.DefaultLocale.
func NewServer(service *events.Service, defaultLocale string) *Server {
	if defaultLocale == "" {
		defaultLocale = events.DefaultLocale
	}
	return &Server{
		service:       service,
		defaultLocale: defaultLocale,
		logger:        logging.NewLogger("mcp-server"),
	}
}

// HandleRequest processes an MCP request and returns a response.
// Returns nil for notifications (requests without ID); they don't require
// responses.
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return s.handleToolsList(req.ID)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  json.RawMessage(`"pong"`),
		}
	}

	// Unknown method: notifications (no ID) don't get a response.
	if req.ID == nil {
		return nil
	}
	return s.errorResponse(req.ID, MethodNotFound, "Method not found")
}

func (s *Server) handleInitialize(id any) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
	return s.resultResponse(id, result)
}

func (s *Server) handleToolsList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"tools": getAllTools(),
	})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, InvalidParams, "Invalid parameters")
	}

	s.logger.Debug().Str("tool", params.Name).Msg("Tool call")

	switch params.Name {
	case "search_events":
		return s.handleSearchEvents(ctx, req.ID, params.Arguments)
	case "get_event_details":
		return s.handleGetEventDetails(ctx, req.ID, params.Arguments)
	case "list_filters":
		return s.handleListFilters(ctx, req.ID, params.Arguments)
	case "get_event_stats":
		return s.handleGetEventStats(ctx, req.ID, params.Arguments)
	default:
		return s.errorResponse(req.ID, InvalidParams, "Unknown tool: "+params.Name)
	}
}

// resultResponse marshals result into a success response.
func (s *Server) resultResponse(id any, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

// textResponse wraps a tool's JSON document as MCP text content.
func (s *Server) textResponse(id any, text string) *Response {
	return s.resultResponse(id, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": text,
			},
		},
		"isError": false,
	})
}

func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}
