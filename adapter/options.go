package adapter

import (
	"fmt"

	"github.com/ooapi/oasprep/composer"
	"github.com/ooapi/oasprep/oaserrors"
	"github.com/ooapi/oasprep/parser"
)

// Option is a function that configures an apply operation
type Option func(*applyConfig) error

// applyConfig holds configuration for an apply operation
type applyConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	document map[string]any

	mode       Mode
	anyOfTitle string
	mediaType  string
	logger     parser.Logger
}

// ApplyWithOptions preprocesses a document using functional options.
// The mode defaults to ModeFlattenExamples.
//
// Example:
//
//	result, err := adapter.ApplyWithOptions(
//	    adapter.WithFilePath("openapi.yaml"),
//	    adapter.WithMode(adapter.ModeMerge),
//	)
func ApplyWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("adapter: invalid options: %w", err)
	}

	a := &Adapter{
		Mode:       cfg.mode,
		AnyOfTitle: cfg.anyOfTitle,
		MediaType:  cfg.mediaType,
		Logger:     cfg.logger,
	}

	if cfg.filePath == nil {
		return a.Apply(cfg.document)
	}

	p := &parser.Parser{Logger: cfg.logger}
	parsed, err := p.Parse(*cfg.filePath)
	if err != nil {
		return nil, fmt.Errorf("adapter: %w", err)
	}
	result, err := a.Apply(parsed.Data)
	if err != nil {
		return nil, err
	}
	result.SourcePath = parsed.SourcePath
	result.SourceFormat = parsed.SourceFormat
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*applyConfig, error) {
	cfg := &applyConfig{
		mode:       ModeFlattenExamples,
		anyOfTitle: composer.DefaultAnyOfTitle,
		mediaType:  DefaultMediaType,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.document != nil {
		sources++
	}

	if sources == 0 {
		return nil, &oaserrors.ConfigError{Message: "no input source specified: use WithFilePath or WithDocument"}
	}
	if sources > 1 {
		return nil, &oaserrors.ConfigError{Message: "multiple input sources specified: use only one of WithFilePath or WithDocument"}
	}

	return cfg, nil
}

// WithFilePath specifies a file to parse and preprocess
func WithFilePath(path string) Option {
	return func(cfg *applyConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file path", Message: "cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already decoded document to preprocess in place
func WithDocument(doc map[string]any) Option {
	return func(cfg *applyConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithMode sets the preprocessing mode. Renderer aliases are accepted.
func WithMode(mode Mode) Option {
	return func(cfg *applyConfig) error {
		m, err := ParseMode(string(mode))
		if err != nil {
			return err
		}
		cfg.mode = m
		return nil
	}
}

// WithAnyOfTitle sets the title given to an untitled first option of a
// hoisted anyOf. Default: composer.DefaultAnyOfTitle
func WithAnyOfTitle(title string) Option {
	return func(cfg *applyConfig) error {
		cfg.anyOfTitle = title
		return nil
	}
}

// WithMediaType selects the request body media type to flatten.
// Default: "application/json"
func WithMediaType(mediaType string) Option {
	return func(cfg *applyConfig) error {
		if mediaType == "" {
			return &oaserrors.ConfigError{Option: "media type", Message: "cannot be empty"}
		}
		cfg.mediaType = mediaType
		return nil
	}
}

// WithLogger sets a structured logger for parsing and preprocessing.
// By default, no logging is performed.
func WithLogger(l parser.Logger) Option {
	return func(cfg *applyConfig) error {
		cfg.logger = l
		return nil
	}
}
