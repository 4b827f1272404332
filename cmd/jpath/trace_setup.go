package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"jpath/internal/trace"
)

// setupTracing builds the tracer from --trace, --trace-mode and the resolved
// trace level. A trace file without a level traces phases.
func setupTracing(flags *pflag.FlagSet, levelStr string, stderr io.Writer) (trace.Tracer, error) {
	output, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		if output == "" {
			return trace.Nop, nil
		}
		level = trace.LevelPhase
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
	}
	if output == "" || output == "-" {
		cfg.Output = stderr
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	return tracer, nil
}
