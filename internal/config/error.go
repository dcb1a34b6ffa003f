package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every *ConfigError under errors.Is.
var ErrInvalid = errors.New("invalid config")

// ConfigError reports everything wrong with a config file at once.
type ConfigError struct {
	Path    string   // empty when the config did not come from a file
	Missing []string // unresolved ${VAR} references, "NAME" or "NAME: message"
	Errors  []string // messages from Validate
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	b.WriteString("invalid config")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "\n  - environment variable not set: %s", m)
	}
	for _, msg := range e.Errors {
		fmt.Fprintf(&b, "\n  - %s", msg)
	}
	return b.String()
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalid
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
