package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ooapi/oasprep/adapter"
	"github.com/ooapi/oasprep/parser"
)

type preprocessInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OAS document to preprocess"`
	Target     string    `json:"target,omitempty"      jsonschema:"Mode or renderer: merge\\, flatten\\, flatten-examples\\, scalar\\, zudoku or spotlight (default flatten-examples)"`
	AnyOfTitle string    `json:"anyof_title,omitempty" jsonschema:"Title for an untitled first option of a hoisted anyOf (default: With courseOfferingId)"`
	MediaType  string    `json:"media_type,omitempty"  jsonschema:"Request body media type to flatten (default application/json)"`
	Output     string    `json:"output,omitempty"      jsonschema:"File path to write the transformed document; the extension selects JSON or YAML. If omitted the document is returned inline."`
}

type exampleStats struct {
	Total      int `json:"total"`
	HadExample int `json:"had_example"`
	NoSchema   int `json:"no_schema"`
	Failed     int `json:"failed"`
	Added      int `json:"added"`
}

type exampleFailure struct {
	Location  string `json:"location"`
	Schema    string `json:"schema"`
	Generated any    `json:"generated"`
}

type preprocessOutput struct {
	Mode       string           `json:"mode"`
	Version    string           `json:"version,omitempty"`
	Flattened  int              `json:"flattened"`
	Registered []string         `json:"registered,omitempty"`
	Collisions []string         `json:"collisions,omitempty"`
	Examples   *exampleStats    `json:"examples,omitempty"`
	Failures   []exampleFailure `json:"failures,omitempty"`
	WrittenTo  string           `json:"written_to,omitempty"`
	Document   string           `json:"document,omitempty"`
}

func handlePreprocess(_ context.Context, _ *mcp.CallToolRequest, input preprocessInput) (*mcp.CallToolResult, preprocessOutput, error) {
	parsed, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), preprocessOutput{}, nil
	}

	opts := []adapter.Option{adapter.WithDocument(parsed.Data)}
	if input.Target != "" {
		opts = append(opts, adapter.WithMode(adapter.Mode(input.Target)))
	}
	if input.AnyOfTitle != "" {
		opts = append(opts, adapter.WithAnyOfTitle(input.AnyOfTitle))
	}
	if input.MediaType != "" {
		opts = append(opts, adapter.WithMediaType(input.MediaType))
	}

	result, err := adapter.ApplyWithOptions(opts...)
	if err != nil {
		return errResult(err), preprocessOutput{}, nil
	}

	output := preprocessOutput{
		Mode:       result.Mode.String(),
		Version:    parsed.Version,
		Flattened:  result.Flattened,
		Registered: result.Registered,
		Collisions: result.Collisions,
	}
	if result.Mode == adapter.ModeFlattenExamples {
		output.Examples = &exampleStats{
			Total:      result.Examples.Total,
			HadExample: result.Examples.HadExample,
			NoSchema:   result.Examples.NoSchema,
			Failed:     result.Examples.Failed,
			Added:      result.Examples.Added,
		}
		for _, f := range result.Failures {
			output.Failures = append(output.Failures, exampleFailure{
				Location:  f.Location,
				Schema:    f.Schema,
				Generated: f.Generated,
			})
		}
	}

	if input.Output != "" {
		if err := parser.WriteFile(input.Output, result.Document); err != nil {
			return errResult(err), preprocessOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := parser.MarshalJSON(result.Document)
	if err != nil {
		return errResult(err), preprocessOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}
