package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExample(t *testing.T) {
	result, output, err := handleExample(context.Background(), &mcp.CallToolRequest{}, exampleInput{
		Spec: specInput{Content: enrollmentOAS},
		Ref:  "#/components/schemas/Base",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "#/components/schemas/Base", output.Ref)
	assert.False(t, output.Empty)
	assert.JSONEq(t, baseExample, output.Example)
}

func TestHandleExample_EmptyResult(t *testing.T) {
	result, output, err := handleExample(context.Background(), &mcp.CallToolRequest{}, exampleInput{
		Spec: specInput{Content: enrollmentOAS},
		Ref:  "#/components/schemas/Opaque",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Empty)
	assert.Equal(t, "null", output.Example)
}

func TestHandleExample_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   exampleInput
		wantMsg string
	}{
		{
			name:    "missing schema",
			input:   exampleInput{Spec: specInput{Content: enrollmentOAS}, Ref: "#/components/schemas/Nope"},
			wantMsg: "missing key",
		},
		{
			name:    "external reference",
			input:   exampleInput{Spec: specInput{Content: enrollmentOAS}, Ref: "other.yaml#/Base"},
			wantMsg: "other.yaml",
		},
		{
			name:    "no spec",
			input:   exampleInput{Ref: "#/components/schemas/Base"},
			wantMsg: "exactly one of file or content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleExample(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.wantMsg)
		})
	}
}
