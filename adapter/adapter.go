package adapter

import (
	"fmt"

	"github.com/ooapi/oasprep/composer"
	"github.com/ooapi/oasprep/internal/maputil"
	"github.com/ooapi/oasprep/internal/naming"
	"github.com/ooapi/oasprep/oaserrors"
	"github.com/ooapi/oasprep/parser"
)

// DefaultMediaType is the request body media type that is flattened.
const DefaultMediaType = "application/json"

// SchemaRefPrefix prefixes references to registered components.
const SchemaRefPrefix = "#/components/schemas/"

// Adapter applies one preprocessing mode to documents.
type Adapter struct {
	// Mode is the preprocessing to apply. Renderer aliases are accepted.
	Mode Mode
	// AnyOfTitle is given to an untitled first option of a hoisted anyOf.
	// Empty leaves such options untitled. New sets composer.DefaultAnyOfTitle.
	AnyOfTitle string
	// MediaType selects the request body content entry to flatten.
	// Defaults to DefaultMediaType when empty.
	MediaType string
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates an Adapter for mode with default settings.
func New(mode Mode) *Adapter {
	return &Adapter{
		Mode:       mode,
		AnyOfTitle: composer.DefaultAnyOfTitle,
		MediaType:  DefaultMediaType,
	}
}

// Result contains the outcome of an Apply call.
type Result struct {
	// Document is the preprocessed document (the same map passed to Apply)
	Document map[string]any
	// SourcePath is the path of the source file, when the document was parsed by ApplyWithOptions
	SourcePath string
	// SourceFormat is the format of the source file, when parsed by ApplyWithOptions
	SourceFormat parser.SourceFormat
	// Mode is the canonical mode that was applied
	Mode Mode
	// Flattened is the number of request body schemas rewritten
	Flattened int
	// Registered lists the component names registered, in registration order
	Registered []string
	// Collisions lists component names that were overwritten, once per overwrite
	Collisions []string
	// Examples holds the response example statistics (ModeFlattenExamples only)
	Examples ExampleStats
	// Failures holds the first MaxRecordedFailures failed example generations
	Failures []ExampleFailure
	// Stats contains statistical information about the document after preprocessing
	Stats parser.DocumentStats
}

// HasChanges returns true if the document was modified.
func (r *Result) HasChanges() bool {
	return r.Flattened > 0 || r.Examples.Added > 0
}

// Apply preprocesses doc in place. It fails only when doc is nil or the mode
// is unknown, returning an *oaserrors.ConfigError.
func (a *Adapter) Apply(doc map[string]any) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "document is nil"}
	}
	mode, err := ParseMode(string(a.Mode))
	if err != nil {
		return nil, fmt.Errorf("adapter: %w", err)
	}

	log := parser.LoggerOrNop(a.Logger).With("mode", mode.String())
	result := &Result{Document: doc, Mode: mode}

	r := &run{
		adapter:    a,
		doc:        doc,
		mode:       mode,
		log:        log,
		result:     result,
		registered: make(map[string]bool),
	}
	if mode.flattens() {
		r.schemas = ensureSchemas(doc)
	}
	r.rewriteRequestBodies()
	if mode == ModeFlattenExamples {
		r.addResponseExamples()
	}

	result.Stats = parser.GetDocumentStats(doc)
	log.Info("preprocessed document",
		"flattened", result.Flattened,
		"registered", len(result.Registered),
		"collisions", len(result.Collisions),
		"examplesAdded", result.Examples.Added,
		"examplesFailed", result.Examples.Failed,
	)
	return result, nil
}

// run holds the state of one Apply call.
type run struct {
	adapter    *Adapter
	doc        map[string]any
	mode       Mode
	log        parser.Logger
	result     *Result
	schemas    map[string]any
	registered map[string]bool
}

// ensureSchemas returns components.schemas, creating missing levels.
func ensureSchemas(doc map[string]any) map[string]any {
	components, ok := doc["components"].(map[string]any)
	if !ok {
		components = make(map[string]any)
		doc["components"] = components
	}
	schemas, ok := components["schemas"].(map[string]any)
	if !ok {
		schemas = make(map[string]any)
		components["schemas"] = schemas
	}
	return schemas
}

// eachOperation calls fn for every object-valued entry of every path item,
// in sorted order over snapshots of the keys.
func eachOperation(doc map[string]any, fn func(path, method string, op map[string]any)) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, path := range maputil.SortedKeys(paths) {
		item, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range maputil.SortedKeys(item) {
			if op, ok := item[method].(map[string]any); ok {
				fn(path, method, op)
			}
		}
	}
}

func (r *run) mediaType() string {
	if r.adapter.MediaType != "" {
		return r.adapter.MediaType
	}
	return DefaultMediaType
}

// requestBodyEntry returns the content entry of op's request body for the
// configured media type, and its schema object.
func (r *run) requestBodyEntry(op map[string]any) (map[string]any, map[string]any, bool) {
	body, ok := op["requestBody"].(map[string]any)
	if !ok {
		return nil, nil, false
	}
	content, ok := body["content"].(map[string]any)
	if !ok {
		return nil, nil, false
	}
	entry, ok := content[r.mediaType()].(map[string]any)
	if !ok {
		return nil, nil, false
	}
	s, ok := entry["schema"].(map[string]any)
	if !ok {
		return nil, nil, false
	}
	return entry, s, true
}

func (r *run) rewriteRequestBodies() {
	opts := []composer.Option{
		composer.WithAnyOfTitle(r.adapter.AnyOfTitle),
		composer.WithLogger(r.log),
	}

	eachOperation(r.doc, func(path, method string, op map[string]any) {
		entry, s, ok := r.requestBodyEntry(op)
		if !ok {
			return
		}
		flattened := composer.Flatten(s, r.doc, r.mode.composerMode(), opts...)
		if flattened == nil {
			return
		}

		r.result.Flattened++
		if !r.mode.flattens() {
			entry["schema"] = flattened
			r.log.Debug("merged request body", "path", path, "method", method)
			return
		}

		name := naming.RequestSchemaName(path, method)
		if _, exists := r.schemas[name]; exists {
			r.log.Warn("overwriting component schema",
				"component", name, "path", path, "method", method)
			r.result.Collisions = append(r.result.Collisions, name)
		}
		r.schemas[name] = flattened
		entry["schema"] = map[string]any{"$ref": SchemaRefPrefix + name}
		if !r.registered[name] {
			r.registered[name] = true
			r.result.Registered = append(r.result.Registered, name)
		}
		r.log.Debug("registered flattened request body",
			"path", path, "method", method, "component", name)
	})
}
