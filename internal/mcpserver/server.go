// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasprep preprocessing as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ooapi/oasprep"
)

const serverInstructions = `oasprep MCP server: prepares OpenAPI documents for documentation renderers.

Tools:
- preprocess: flattens allOf request bodies (merge, flatten) and optionally adds synthesized response examples (flatten-examples). Renderer aliases: scalar=merge, zudoku=flatten, spotlight=flatten-examples.
- example: synthesizes a representative example value for one schema reference.

Every call parses its spec afresh; nothing is cached between calls. Documents are returned inline as JSON unless an output path is given.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasprep", Version: oasprep.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "preprocess",
		Description: "Prepare an OpenAPI document for a documentation renderer. target selects the mode: merge (or scalar) replaces allOf request bodies with merged objects; flatten (or zudoku) registers flattened request bodies as components named from path and method; flatten-examples (or spotlight, the default) also adds synthesized examples to responses lacking one. Returns statistics and, when output is empty, the transformed document as JSON.",
	}, handlePreprocess)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "example",
		Description: "Synthesize a representative example value for the schema at a local reference such as #/components/schemas/Pet. Recursive schemas are unrolled at most once near the root. Returns the example as JSON text.",
	}, handleExample)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
