package config

import (
	"errors"
	"fmt"
	"slices"

	"jpath/internal/diagfmt"
	"jpath/internal/logging"
	"jpath/internal/trace"
)

// ValidationError is one rejected setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

var (
	colorModes = []string{"auto", "on", "off"}
	formats    = []string{"pretty", "json", "short"}
)

// Validate reports every invalid field, joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, value any, msg string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Message: msg})
	}

	if !slices.Contains(colorModes, c.Color) {
		bad("color", c.Color, "expected auto|on|off")
	}
	if !slices.Contains(formats, c.Format) {
		bad("format", c.Format, "expected pretty|json|short")
	}
	if _, err := diagfmt.ParsePathMode(c.PathMode); err != nil {
		bad("path_mode", c.PathMode, "expected auto|absolute|relative|basename")
	}
	if c.MaxDiagnostics < 0 || c.MaxDiagnostics > 65535 {
		bad("max_diagnostics", c.MaxDiagnostics, "must be in [0, 65535]")
	}
	if c.Context < 0 || c.Context > 10 {
		bad("context", c.Context, "must be in [0, 10]")
	}
	if c.Jobs < 0 {
		bad("jobs", c.Jobs, "must not be negative")
	}
	if !logging.ValidLevel(c.LogLevel) {
		bad("log_level", c.LogLevel, "expected debug|info|warn|error")
	}
	if _, err := trace.ParseLevel(c.TraceLevel); err != nil {
		bad("trace_level", c.TraceLevel, "expected off|phase|detail|debug")
	}
	return errors.Join(errs...)
}
