package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool handlers. Each unmarshals its arguments, applies defaults, and wraps
// the service's JSON document as MCP text content. A fetch failure (retries
// exhausted) is the only path that surfaces as a protocol-level error.

func (s *Server) handleSearchEvents(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Filters string `json:"filters"`
		Query   string `json:"query"`
		Locale  string `json:"locale"`
	}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Locale == "" {
		args.Locale = s.defaultLocale
	}

	result, err := s.service.Search(ctx, args.Filters, args.Query, args.Locale)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to search events: %v", err))
	}
	return s.textResponse(id, result)
}

func (s *Server) handleGetEventDetails(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		EventID string `json:"event_id"`
		Locale  string `json:"locale"`
	}
	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}
	if args.EventID == "" {
		return s.errorResponse(id, InvalidParams, "event_id is required")
	}
	if args.Locale == "" {
		args.Locale = s.defaultLocale
	}

	result, err := s.service.EventDetails(ctx, args.EventID, args.Locale)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get event details: %v", err))
	}
	return s.textResponse(id, result)
}

func (s *Server) handleListFilters(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Locale string `json:"locale"`
	}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Locale == "" {
		args.Locale = s.defaultLocale
	}

	result, err := s.service.ListFilters(ctx, args.Locale)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to list filters: %v", err))
	}
	return s.textResponse(id, result)
}

func (s *Server) handleGetEventStats(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Filters string `json:"filters"`
		Locale  string `json:"locale"`
	}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Locale == "" {
		args.Locale = s.defaultLocale
	}

	result, err := s.service.EventStats(ctx, args.Filters, args.Locale)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to get event stats: %v", err))
	}
	return s.textResponse(id, result)
}
