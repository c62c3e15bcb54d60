package composer

import (
	"maps"
	"slices"

	"github.com/ooapi/oasprep/parser"
	"github.com/ooapi/oasprep/resolver"
	"github.com/ooapi/oasprep/schema"
)

// Mode selects the output shape of Flatten.
type Mode int

const (
	// MergedProperties produces a single object with merged properties
	MergedProperties Mode = iota
	// FlatAllOf produces a one-level allOf of references plus one inline object
	FlatAllOf
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case MergedProperties:
		return "merged-properties"
	case FlatAllOf:
		return "flat-allof"
	default:
		return "unknown"
	}
}

// DefaultAnyOfTitle is assigned to an untitled first option of a hoisted anyOf.
const DefaultAnyOfTitle = "With courseOfferingId"

// Option configures a Flatten call.
type Option func(*config)

type config struct {
	anyOfTitle string
	logger     parser.Logger
}

// WithAnyOfTitle overrides DefaultAnyOfTitle. An empty title leaves hoisted
// anyOf options untitled.
func WithAnyOfTitle(title string) Option {
	return func(cfg *config) {
		cfg.anyOfTitle = title
	}
}

// WithLogger sets a logger for debug output about unresolved references.
func WithLogger(l parser.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// Flatten rewrites the allOf composition of s using the given mode and
// returns the new schema, or nil when s has no allOf. References are resolved
// against root. Neither s nor root is modified.
func Flatten(s, root map[string]any, mode Mode, opts ...Option) map[string]any {
	outer := schema.Schema(s)
	if s == nil || !outer.HasAllOf() {
		return nil
	}

	cfg := &config{anyOfTitle: DefaultAnyOfTitle}
	for _, opt := range opts {
		opt(cfg)
	}

	f := &flattener{
		root:       root,
		mode:       mode,
		cfg:        cfg,
		log:        parser.LoggerOrNop(cfg.logger),
		properties: make(map[string]any),
		required:   make(map[string]struct{}),
	}
	if mode == MergedProperties {
		f.addRequired(outer.Required())
	}
	for _, item := range outer.AllOf() {
		f.addItem(item)
	}

	if mode == FlatAllOf {
		return f.flatResult(s)
	}
	return f.mergedResult()
}

// flattener accumulates the members of one allOf composition.
type flattener struct {
	root map[string]any
	mode Mode
	cfg  *config
	log  parser.Logger

	retained   []any
	properties map[string]any
	required   map[string]struct{}
	anyOf      []any
}

// addItem handles one member of the outer allOf.
func (f *flattener) addItem(item any) {
	it, ok := schema.From(item)
	if !ok {
		return
	}

	ref := it.Ref()
	if ref == "" {
		if props, ok := it.Properties(); ok {
			maps.Copy(f.properties, props)
		}
		return
	}

	target, ok := f.resolve(ref)
	if !ok {
		if f.mode == FlatAllOf {
			f.retained = append(f.retained, item)
		}
		return
	}

	if target.HasAllOf() {
		for _, sub := range target.AllOf() {
			f.addNested(sub)
		}
		return
	}

	if f.mode == FlatAllOf {
		f.retained = append(f.retained, item)
		return
	}
	if props, ok := target.Properties(); ok {
		maps.Copy(f.properties, props)
		f.addRequired(target.Required())
	}
}

// addNested handles one member of a referenced schema's allOf.
func (f *flattener) addNested(sub any) {
	s, ok := schema.From(sub)
	if !ok {
		return
	}

	if ref := s.Ref(); ref != "" {
		if f.mode == FlatAllOf {
			f.retained = append(f.retained, sub)
		} else if target, ok := f.resolve(ref); ok {
			if props, ok := target.Properties(); ok {
				maps.Copy(f.properties, props)
			}
			f.addRequired(target.Required())
		}
	} else if props, ok := s.Properties(); ok {
		maps.Copy(f.properties, props)
	}

	if options := s.AnyOf(); len(options) > 0 {
		f.hoistAnyOf(options)
	}
}

// hoistAnyOf records options as the result's anyOf. A later hoist replaces
// an earlier one.
func (f *flattener) hoistAnyOf(options []any) {
	hoisted := slices.Clone(options)
	if first, ok := hoisted[0].(map[string]any); ok && f.cfg.anyOfTitle != "" {
		if _, titled := schema.Schema(first).Title(); !titled {
			titledCopy := maps.Clone(first)
			titledCopy["title"] = f.cfg.anyOfTitle
			hoisted[0] = titledCopy
		}
	}
	f.anyOf = hoisted
}

func (f *flattener) resolve(ref string) (schema.Schema, bool) {
	target, ok := resolver.ResolveSchema(ref, f.root)
	if !ok {
		_, err := resolver.Lookup(ref, f.root)
		f.log.Debug("skipping unresolved reference", "ref", ref, "mode", f.mode.String(), "error", err)
		return nil, false
	}
	return schema.Schema(target), true
}

func (f *flattener) addRequired(names []string) {
	for _, name := range names {
		f.required[name] = struct{}{}
	}
}

func (f *flattener) mergedResult() map[string]any {
	result := map[string]any{
		"type":       "object",
		"properties": f.properties,
	}
	if len(f.required) > 0 {
		names := slices.Sorted(maps.Keys(f.required))
		required := make([]any, len(names))
		for i, name := range names {
			required[i] = name
		}
		result["required"] = required
	}
	if f.anyOf != nil {
		result["anyOf"] = f.anyOf
	}
	return result
}

func (f *flattener) flatResult(outer map[string]any) map[string]any {
	inline := map[string]any{
		"type":       "object",
		"properties": f.properties,
	}
	if f.anyOf != nil {
		inline["anyOf"] = f.anyOf
	}

	result := map[string]any{
		"type":  "object",
		"allOf": append(f.retained, inline),
	}
	if len(schema.Schema(outer).Required()) > 0 {
		result["required"] = outer["required"]
	}
	return result
}
