package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jpath/internal/config"
	"jpath/internal/diagfmt"
	"jpath/internal/logging"
	"jpath/internal/observ"
	"jpath/internal/prof"
	"jpath/internal/trace"
)

// app holds the state resolved once per invocation by the root pre-run.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg     *config.Config
	quiet   bool
	timings bool
	logger  *log.Logger
	timer   *observ.Timer
	tracer  trace.Tracer
	span    *trace.Span
	prof    *prof.Session
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "jpath",
		Short: "JSONPath query checker",
		Long: `jpath parses JSONPath queries and explains syntax errors: the position where
parsing got farthest, what was expected there and what was being parsed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to collect (0 = unlimited)")
	flags.String("config", "", "path to jpath.toml or .jpath.yaml")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("trace", "", "trace output file (- for stderr, *.ndjson for NDJSON)")
	flags.String("trace-level", "off", "trace level (off|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both); ring is dumped on failure")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.String("memprofile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")

	root.AddCommand(newTokenizeCmd(a))
	root.AddCommand(newParseCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads the config, applies flag overrides and puts the logger and the
// tracer into the command context.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	loaded, err := config.Load(config.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := loaded.Config

	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("max-diagnostics") {
		cfg.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("trace-level") {
		cfg.TraceLevel, _ = flags.GetString("trace-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.quiet, _ = flags.GetBool("quiet")
	a.timings, _ = flags.GetBool("timings")
	if a.timings {
		a.timer = observ.NewTimer()
	}

	a.logger = logging.NewWithWriter(a.stderr, cfg.LogLevel)
	ctx := logging.WithLogger(cmd.Context(), a.logger)
	if loaded.Path != "" {
		a.logger.Debug("loaded config", logging.FieldConfig, loaded.Path)
	}

	var profOpts prof.Options
	profOpts.CPU, _ = flags.GetString("cpuprofile")
	profOpts.Mem, _ = flags.GetString("memprofile")
	profOpts.Trace, _ = flags.GetString("runtime-trace")
	if profOpts.Enabled() {
		session, err := prof.Start(profOpts)
		if err != nil {
			return err
		}
		a.prof = session
	}

	tracer, err := setupTracing(flags, cfg.TraceLevel, a.stderr)
	if err != nil {
		return err
	}
	a.tracer = tracer
	ctx = trace.WithTracer(ctx, tracer)
	a.span = trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0)
	cmd.SetContext(a.span.Context(ctx))
	return nil
}

// finish closes the driver span, the tracer and the profilers, then prints timings.
func (a *app) finish(err error) {
	if a.span != nil {
		detail := "ok"
		if err != nil {
			detail = "error"
		}
		a.span.End(detail)
	}
	if a.tracer != nil {
		if err != nil {
			if dumpErr := trace.Dump(a.tracer, a.stderr, trace.FormatText); dumpErr != nil {
				a.logger.Warn("trace dump failed", logging.FieldError, dumpErr)
			}
		}
		if closeErr := a.tracer.Close(); closeErr != nil {
			a.logger.Warn("trace close failed", logging.FieldError, closeErr)
		}
	}
	if err := a.prof.Stop(); err != nil {
		fmt.Fprintf(a.stderr, "jpath: %v\n", err)
	}
	if a.timer != nil {
		fmt.Fprint(a.stderr, a.timer.Summary())
	}
}

// useColor решает, красить ли вывод в w.
func (a *app) useColor(w io.Writer) bool {
	switch a.cfg.Color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) prettyOpts() diagfmt.PrettyOpts {
	return a.prettyOptsFor(a.stderr)
}

func (a *app) prettyOptsFor(w io.Writer) diagfmt.PrettyOpts {
	mode, _ := diagfmt.ParsePathMode(a.cfg.PathMode)
	return diagfmt.PrettyOpts{
		Color:     a.useColor(w),
		Context:   int8(a.cfg.Context),
		PathMode:  mode,
		ShowNotes: true,
	}
}
