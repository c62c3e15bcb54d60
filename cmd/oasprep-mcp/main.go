// Command oasprep-mcp serves the oasprep preprocessing tools over MCP stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ooapi/oasprep/internal/mcpserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "oasprep-mcp: %v\n", err)
		os.Exit(1)
	}
}
