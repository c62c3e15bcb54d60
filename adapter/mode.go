package adapter

import (
	"strings"

	"github.com/ooapi/oasprep/composer"
	"github.com/ooapi/oasprep/oaserrors"
)

// Mode selects the preprocessing applied to a document.
type Mode string

const (
	// ModeMerge replaces composed request bodies with merged objects
	ModeMerge Mode = "merge"
	// ModeFlatten registers flattened request bodies as named components
	ModeFlatten Mode = "flatten"
	// ModeFlattenExamples flattens and then adds synthesized response examples
	ModeFlattenExamples Mode = "flatten-examples"
)

// rendererAliases maps renderer names to the mode they need.
var rendererAliases = map[string]Mode{
	"scalar":    ModeMerge,
	"zudoku":    ModeFlatten,
	"spotlight": ModeFlattenExamples,
}

// ModeNames returns every accepted mode name, canonical names first.
func ModeNames() []string {
	return []string{
		string(ModeMerge), string(ModeFlatten), string(ModeFlattenExamples),
		"scalar", "zudoku", "spotlight",
	}
}

// ParseMode returns the mode named by s. Canonical names and renderer
// aliases are accepted, case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch m := Mode(name); m {
	case ModeMerge, ModeFlatten, ModeFlattenExamples:
		return m, nil
	}
	if m, ok := rendererAliases[name]; ok {
		return m, nil
	}
	return "", &oaserrors.ConfigError{
		Option:  "mode",
		Value:   s,
		Message: "unknown mode; valid values: " + strings.Join(ModeNames(), ", "),
	}
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	return string(m)
}

// flattens reports whether the mode registers named components.
func (m Mode) flattens() bool {
	return m == ModeFlatten || m == ModeFlattenExamples
}

// composerMode returns the flattening shape used by the mode.
func (m Mode) composerMode() composer.Mode {
	if m.flattens() {
		return composer.FlatAllOf
	}
	return composer.MergedProperties
}
