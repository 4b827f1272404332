// Package config loads jpath settings from jpath.toml or .jpath.yaml,
// environment variables and command-line flags.
package config

// Config is the resolved configuration. Zero values of the file layer mean
// "not set"; Default fills them.
type Config struct {
	Color          string `toml:"color" yaml:"color"` // auto|on|off
	MaxDiagnostics int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	Format         string `toml:"format" yaml:"format"` // pretty|json|short
	PathMode       string `toml:"path_mode" yaml:"path_mode"`
	Context        int    `toml:"context" yaml:"context"` // строк контекста в pretty-выводе
	Jobs           int    `toml:"jobs" yaml:"jobs"`       // 0 = GOMAXPROCS
	Cache          bool   `toml:"cache" yaml:"cache"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	TraceLevel     string `toml:"trace_level" yaml:"trace_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Color:          "auto",
		MaxDiagnostics: 100,
		Format:         "pretty",
		PathMode:       "auto",
		Context:        0,
		Jobs:           0,
		Cache:          false,
		LogLevel:       "warn",
		TraceLevel:     "off",
	}
}

// fileConfig mirrors Config with pointers so that a key missing from a
// file keeps the lower layer's value.
type fileConfig struct {
	Color          *string `toml:"color" yaml:"color"`
	MaxDiagnostics *int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	Format         *string `toml:"format" yaml:"format"`
	PathMode       *string `toml:"path_mode" yaml:"path_mode"`
	Context        *int    `toml:"context" yaml:"context"`
	Jobs           *int    `toml:"jobs" yaml:"jobs"`
	Cache          *bool   `toml:"cache" yaml:"cache"`
	LogLevel       *string `toml:"log_level" yaml:"log_level"`
	TraceLevel     *string `toml:"trace_level" yaml:"trace_level"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (fc *fileConfig) applyTo(cfg *Config) {
	setIf(&cfg.Color, fc.Color)
	setIf(&cfg.MaxDiagnostics, fc.MaxDiagnostics)
	setIf(&cfg.Format, fc.Format)
	setIf(&cfg.PathMode, fc.PathMode)
	setIf(&cfg.Context, fc.Context)
	setIf(&cfg.Jobs, fc.Jobs)
	setIf(&cfg.Cache, fc.Cache)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.TraceLevel, fc.TraceLevel)
}
