package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const envPrefix = "JPATH_"

type LoadOptions struct {
	// WorkingDir is where discovery starts; "" means the process cwd.
	WorkingDir string
	// ExplicitPath comes from --config and disables discovery.
	ExplicitPath string
	IgnoreEnv    bool
}

type LoadResult struct {
	Config *Config
	// Path of the file that was read, "" when none.
	Path string
}

// Load resolves the configuration. Precedence, highest first: environment
// (JPATH_*), config file, defaults. Flags are applied later by the caller.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := Default()
	res := &LoadResult{Config: cfg}

	path := opts.ExplicitPath
	if path == "" {
		found, ok, err := Find(opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		res.Path = path
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg, os.LookupEnv); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", displayPath(path), err)
	}
	return res, nil
}

func displayPath(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}

func loadFile(path string, cfg *Config) error {
	// #nosec G304 -- path comes from discovery or --config
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &fc)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: unsupported config format (expected .toml, .yaml or .yml)", path)
	}
	fc.applyTo(cfg)
	return nil
}

// applyEnv reads JPATH_<KEY> for every config key.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(envPrefix + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("COLOR", &cfg.Color)
	str("FORMAT", &cfg.Format)
	str("PATH_MODE", &cfg.PathMode)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("TRACE_LEVEL", &cfg.TraceLevel)
	for key, dst := range map[string]*int{
		"MAX_DIAGNOSTICS": &cfg.MaxDiagnostics,
		"CONTEXT":         &cfg.Context,
		"JOBS":            &cfg.Jobs,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	if v, ok := lookup(envPrefix + "CACHE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCACHE: %w", envPrefix, err)
		}
		cfg.Cache = b
	}
	return nil
}
