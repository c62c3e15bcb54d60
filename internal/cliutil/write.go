// Package cliutil provides utilities for CLI output.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteHeader writes title underlined with '=' followed by a blank line.
func WriteHeader(w io.Writer, title string) {
	Writef(w, "%s\n%s\n\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
}

// WriteList writes "heading (n):" and one indented bullet per item.
// Nothing is written for an empty list.
func WriteList(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	Writef(w, "%s (%d):\n", heading, len(items))
	for _, item := range items {
		Writef(w, "  - %s\n", item)
	}
}
