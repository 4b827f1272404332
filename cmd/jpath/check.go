package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jpath/internal/diagfmt"
	"jpath/internal/driver"
	"jpath/internal/logging"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <path>... | -e <query>",
		Short: "Check query files and report syntax errors",
		Long: `Check parses every query in the given files and in the *.jsonpath files under
the given directories. It exits with status 1 when any query fails to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args)
		},
	}
	cmd.Flags().String("format", "", "output format (pretty|json|short); default from config")
	cmd.Flags().StringP("expr", "e", "", "check this query instead of files")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	cmd.Flags().Bool("clear-cache", false, "drop cached check results before running")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("jobs") {
		a.cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("cache") {
		a.cfg.Cache, _ = flags.GetBool("cache")
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	expr, _ := flags.GetString("expr")
	exprSet := flags.Changed("expr")
	if exprSet == (len(args) > 0) {
		return errors.New("check needs paths or -e, not both")
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: a.cfg.MaxDiagnostics,
		Jobs:           a.cfg.Jobs,
		Timer:          a.timer,
	}
	clearCache, _ := flags.GetBool("clear-cache")
	useCache := a.cfg.Cache && !exprSet
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache("jpath")
		switch {
		case err != nil && clearCache:
			return fmt.Errorf("clear cache: %w", err)
		case err != nil:
			a.logger.Warn("disk cache disabled", logging.FieldError, err)
		default:
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				a.logger.Info("disk cache cleared", logging.FieldCache, cache.Dir())
			}
			if useCache {
				opts.Cache = cache
				a.logger.Debug("disk cache", logging.FieldCache, cache.Dir())
			}
		}
	}

	var (
		res *driver.CheckResult
		err error
	)
	switch {
	case exprSet:
		res = driver.CheckExpr(cmd.Context(), expr, opts)
	case len(args) == 1:
		res, err = driver.Check(cmd.Context(), args[0], opts)
	default:
		res, err = driver.CheckPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	done := a.timer.Track("render")
	renderErr := a.renderCheck(res)
	done(a.cfg.Format)
	if renderErr != nil {
		return renderErr
	}

	stats := res.Stats()
	a.logger.Info("check finished",
		logging.FieldFiles, stats.Files,
		logging.FieldQueries, stats.Queries,
		logging.FieldFailed, stats.Failed,
		logging.FieldCached, stats.Cached,
	)
	if res.HasErrors() {
		return errQueriesFailed
	}
	return nil
}

func (a *app) renderCheck(res *driver.CheckResult) error {
	bag := res.Bag()
	mode, _ := diagfmt.ParsePathMode(a.cfg.PathMode)
	switch a.cfg.Format {
	case "json":
		return diagfmt.JSON(a.stdout, bag, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         mode,
			IncludeNotes:     true,
		})
	case "short":
		return diagfmt.Short(a.stdout, bag, res.FileSet)
	}
	diagfmt.Pretty(a.stdout, bag, res.FileSet, a.prettyOptsFor(a.stdout))
	if a.quiet {
		return nil
	}
	return diagfmt.Summary(a.stdout, res.Stats(), a.useColor(a.stdout))
}
