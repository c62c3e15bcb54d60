package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ooapi/oasprep/parser"
	"github.com/ooapi/oasprep/resolver"
	"github.com/ooapi/oasprep/synth"
)

type exampleInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document containing the schema"`
	Ref  string    `json:"ref"  jsonschema:"Local reference of the schema\\, e.g. #/components/schemas/Pet"`
}

type exampleOutput struct {
	Ref     string `json:"ref"`
	Empty   bool   `json:"empty"`
	Example string `json:"example"`
}

func handleExample(_ context.Context, _ *mcp.CallToolRequest, input exampleInput) (*mcp.CallToolResult, exampleOutput, error) {
	parsed, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), exampleOutput{}, nil
	}

	if _, err := resolver.Lookup(input.Ref, parsed.Data); err != nil {
		return errResult(err), exampleOutput{}, nil
	}

	value := synth.New(parsed.Data).ExampleForRef(input.Ref)
	data, err := parser.MarshalJSON(value)
	if err != nil {
		return errResult(err), exampleOutput{}, nil
	}

	return nil, exampleOutput{
		Ref:     input.Ref,
		Empty:   synth.IsEmpty(value),
		Example: string(data),
	}, nil
}
