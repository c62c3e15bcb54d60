// oasprep prepares OpenAPI documents for documentation renderers.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/ooapi/oasprep"
	"github.com/ooapi/oasprep/adapter"
	"github.com/ooapi/oasprep/composer"
	"github.com/ooapi/oasprep/internal/cliutil"
	"github.com/ooapi/oasprep/parser"
)

const programName = "oasprep"

// cliOptions describes oasprep flags and positional arguments.
type cliOptions struct {
	Target     string `short:"t" long:"target" description:"Preprocessing mode or target renderer" choice:"merge" choice:"flatten" choice:"flatten-examples" choice:"scalar" choice:"zudoku" choice:"spotlight" default:"flatten-examples"`
	AnyOfTitle string `long:"anyof-title" description:"Title given to an untitled first option of a hoisted anyOf (empty disables)" default:"With courseOfferingId"`
	MediaType  string `long:"media-type" description:"Request body media type to flatten" default:"application/json"`
	Verbose    bool   `short:"v" long:"verbose" description:"Write debug logs to stderr"`
	Version    bool   `long:"version" description:"Print version information and exit"`

	Args struct {
		Input  string `positional-arg-name:"INPUT" description:"OpenAPI document to read (.json, .yaml or .yml)"`
		Output string `positional-arg-name:"OUTPUT" description:"Path to write; the extension selects JSON or YAML"`
	} `positional-args:"yes"`
}

// usageError reports wrong positional arguments.
type usageError struct {
	message string
}

func (e *usageError) Error() string {
	return e.message
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	runner := &cliRunner{stdout: stdout, stderr: stderr}
	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	opts := &cliOptions{}
	p := flags.NewParser(opts, flags.HelpFlag)
	p.Name = programName
	p.Usage = "[OPTIONS] INPUT OUTPUT"
	p.LongDescription = "Flattens allOf request bodies and adds synthesized response examples so\n" +
		"documentation renderers (scalar, zudoku, spotlight) can display the document."

	rest, err := p.ParseArgs(args)
	if err == nil {
		err = runner.execute(opts, rest)
	}
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			cliutil.Writef(runner.stdout, "%s\n", err)
			return 0
		}
		cliutil.Writef(runner.stderr, "%s\n", err)
		return 2
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		cliutil.Writef(runner.stderr, "Error: %s\n\n", usageErr.message)
		p.WriteHelp(runner.stderr)
		return 2
	}

	cliutil.Writef(runner.stderr, "Error: %v\n", err)
	return 1
}

// execute validates positional arguments and runs the preprocessing.
func (runner *cliRunner) execute(opts *cliOptions, rest []string) error {
	if opts.Version {
		cliutil.Writef(runner.stdout, "%s %s\n", programName, oasprep.Version())
		return nil
	}
	if len(rest) > 0 {
		return &usageError{message: fmt.Sprintf("unexpected arguments: %v", rest)}
	}
	if opts.Args.Input == "" || opts.Args.Output == "" {
		return &usageError{message: "INPUT and OUTPUT are required"}
	}

	mode, err := adapter.ParseMode(opts.Target)
	if err != nil {
		return err
	}
	return runner.preprocess(opts, mode)
}

// newLogger returns a text logger on stderr at debug level when verbose,
// otherwise at warn level.
func (runner *cliRunner) newLogger(verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler))
}

// preprocess reads the input, applies the mode and writes the output.
func (runner *cliRunner) preprocess(opts *cliOptions, mode adapter.Mode) error {
	startTime := time.Now()
	logger := runner.newLogger(opts.Verbose)

	p := &parser.Parser{Logger: logger}
	parsed, err := p.Parse(opts.Args.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	a := adapter.New(mode)
	a.AnyOfTitle = opts.AnyOfTitle
	a.MediaType = opts.MediaType
	a.Logger = logger

	result, err := a.Apply(parsed.Data)
	if err != nil {
		return fmt.Errorf("preprocessing: %w", err)
	}

	if err := parser.WriteFile(opts.Args.Output, result.Document); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	runner.printSummary(opts, parsed, result, time.Since(startTime))
	return nil
}

func (runner *cliRunner) printSummary(opts *cliOptions, parsed *parser.ParseResult, result *adapter.Result, totalTime time.Duration) {
	w := runner.stdout

	cliutil.WriteHeader(w, "OpenAPI Renderer Preprocessor")
	cliutil.Writef(w, "oasprep version: %s\n", oasprep.Version())
	cliutil.Writef(w, "Specification: %s\n", parsed.SourcePath)
	if parsed.Version != "" {
		cliutil.Writef(w, "OAS Version: %s\n", parsed.Version)
	}
	cliutil.Writef(w, "Mode: %s\n", result.Mode)
	cliutil.Writef(w, "Paths: %d\n", result.Stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", result.Stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", result.Stats.SchemaCount)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	cliutil.Writef(w, "Request bodies flattened: %d\n", result.Flattened)
	cliutil.WriteList(w, "Components registered", result.Registered)
	cliutil.WriteList(w, "Components overwritten", result.Collisions)

	if result.Mode == adapter.ModeFlattenExamples {
		stats := result.Examples
		cliutil.Writef(w, "\nResponse analysis:\n")
		cliutil.Writef(w, "  Total responses with content: %d\n", stats.Total)
		cliutil.Writef(w, "  Already had examples: %d\n", stats.HadExample)
		cliutil.Writef(w, "  No schema: %d\n", stats.NoSchema)
		cliutil.Writef(w, "  Generated empty (failed): %d\n", stats.Failed)
		cliutil.Writef(w, "  Added examples: %d\n", stats.Added)

		if len(result.Failures) > 0 {
			cliutil.Writef(w, "\nFirst %d failed generations:\n", len(result.Failures))
			for _, f := range result.Failures {
				cliutil.Writef(w, "  - %s\n", f.Location)
				cliutil.Writef(w, "    Schema: %s\n", f.Schema)
				cliutil.Writef(w, "    Generated: %s\n", compactJSON(f.Generated))
			}
		}
	}

	if opts.AnyOfTitle != composer.DefaultAnyOfTitle {
		cliutil.Writef(w, "\nanyOf title: %q\n", opts.AnyOfTitle)
	}
	if !result.HasChanges() {
		cliutil.Writef(w, "\n✓ No changes needed\n")
	}
	cliutil.Writef(w, "\n✓ Output written to: %s\n", opts.Args.Output)
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
