package adapter

import (
	"fmt"
	"strings"

	"github.com/ooapi/oasprep/internal/maputil"
	"github.com/ooapi/oasprep/resolver"
	"github.com/ooapi/oasprep/synth"
)

// MaxRecordedFailures is the number of failed generations kept in Result.Failures.
const MaxRecordedFailures = 5

// ExampleStats counts response content entries seen by the example pass.
type ExampleStats struct {
	// Total is the number of content entries visited
	Total int
	// HadExample counts entries that already carried example or examples
	HadExample int
	// NoSchema counts entries without a schema
	NoSchema int
	// Failed counts entries whose synthesized example was empty
	Failed int
	// Added counts entries that received a synthesized example
	Added int
}

// ExampleFailure describes one response for which no example could be generated.
type ExampleFailure struct {
	// Location is "METHOD path (status)"
	Location string
	// Schema is the schema's $ref, or "inline"
	Schema string
	// Generated is the empty value that was produced
	Generated any
}

// String formats the failure on one line.
func (f ExampleFailure) String() string {
	return fmt.Sprintf("%s: schema %s generated %v", f.Location, f.Schema, f.Generated)
}

// addResponseExamples synthesizes examples for response content entries
// that have none.
func (r *run) addResponseExamples() {
	gen := synth.New(r.doc)
	stats := &r.result.Examples

	eachOperation(r.doc, func(path, method string, op map[string]any) {
		responses, ok := op["responses"].(map[string]any)
		if !ok {
			return
		}
		for _, status := range maputil.SortedKeys(responses) {
			response, ok := responses[status].(map[string]any)
			if !ok {
				continue
			}
			content, ok := response["content"].(map[string]any)
			if !ok {
				continue
			}
			for _, mediaType := range maputil.SortedKeys(content) {
				entry, ok := content[mediaType].(map[string]any)
				if !ok {
					continue
				}
				stats.Total++

				if hasExample(entry) {
					stats.HadExample++
					continue
				}
				s := entry["schema"]
				if s == nil {
					stats.NoSchema++
					continue
				}

				generated := gen.Example(s)
				if synth.IsEmpty(generated) {
					stats.Failed++
					failure := ExampleFailure{
						Location:  fmt.Sprintf("%s %s (%s)", strings.ToUpper(method), path, status),
						Schema:    schemaLabel(s),
						Generated: generated,
					}
					if len(r.result.Failures) < MaxRecordedFailures {
						r.result.Failures = append(r.result.Failures, failure)
					}
					r.log.Debug("could not synthesize response example",
						"location", failure.Location, "mediaType", mediaType, "schema", failure.Schema)
					continue
				}

				entry["example"] = generated
				stats.Added++
			}
		}
	})
}

// hasExample reports whether entry carries a non-null example or examples.
func hasExample(entry map[string]any) bool {
	return entry["example"] != nil || entry["examples"] != nil
}

func schemaLabel(s any) string {
	if ref := resolver.Target(s); ref != "" {
		return ref
	}
	return "inline"
}
