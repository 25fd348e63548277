// Command msevents-mcp is an MCP server exposing the Microsoft Events API
// over stdio. Only protocol JSON goes to stdout; all logging goes to
// stderr.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"msevents-mcp/internal/mcp"
	"msevents-mcp/pkg/config"
	"msevents-mcp/pkg/events"
	"msevents-mcp/pkg/logging"
	"msevents-mcp/pkg/metrics"
	"msevents-mcp/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr, logger)
	}

	client := events.NewClient(events.Config{
		APIURL: cfg.APIURL,
		Retry: events.RetryConfig{
			MaxAttempts:    cfg.MaxRetries,
			InitialBackoff: cfg.RetryBackoff,
		},
	})
	service := events.NewService(client, store.New())
	server := mcp.NewServer(service, cfg.Locale)

	logger.Info().
		Str("api_url", cfg.APIURL).
		Str("locale", cfg.Locale).
		Msg("Events MCP server ready")

	run(server, os.Stdin, os.Stdout)
}

// run drives the stdio JSON-RPC loop. MCP clients expect compact JSON, one
// response per line; notifications (requests without an ID) get none.
func run(server *mcp.Server, in io.Reader, out io.Writer) {
	ctx := context.Background()
	decoder := json.NewDecoder(bufio.NewReader(in))
	encoder := json.NewEncoder(out)

	for {
		var request mcp.Request
		if err := decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return
			}
			// The decoder cannot resync after a syntax error; report it
			// and stop rather than spin on the same broken input.
			sendError(encoder, 0, mcp.ParseError, "Failed to parse request")
			return
		}

		response := server.HandleRequest(ctx, &request)
		if request.ID == nil || response == nil {
			continue
		}
		if err := encoder.Encode(response); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode response: %v\n", err)
		}
	}
}

func sendError(encoder *json.Encoder, id any, code int, message string) {
	response := mcp.Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &mcp.ErrorObject{
			Code:    code,
			Message: message,
		},
	}
	if err := encoder.Encode(&response); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode error response: %v\n", err)
	}
}
