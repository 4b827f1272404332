package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jpath/internal/diagfmt"
	"jpath/internal/driver"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.jsonpath> | -e <query>",
		Short: "Parse queries and print their syntax trees",
		Long: `Parse reads one query per line (blank lines and lines starting with # are
skipped) and prints the syntax tree of every query that parses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().StringP("expr", "e", "", "parse this query instead of a file")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	exprSet := cmd.Flags().Changed("expr")
	if exprSet == (len(args) == 1) {
		return errors.New("parse needs exactly one of a file or -e")
	}

	done := a.timer.Track("parse")
	var result *driver.ParseResult
	if exprSet {
		result = driver.ParseExpr(cmd.Context(), expr, a.cfg.MaxDiagnostics)
	} else {
		result, err = driver.Parse(cmd.Context(), args[0], a.cfg.MaxDiagnostics)
		if err != nil {
			done("error")
			return fmt.Errorf("parsing failed: %w", err)
		}
	}
	done(fmt.Sprintf("%d queries", len(result.Queries)))

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(a.stderr, result.Bag, result.FileSet, a.prettyOpts())
	}

	failed := 0
	for _, pq := range result.Queries {
		if pq.Query == nil {
			failed++
			continue
		}
		if format == "json" {
			if err := diagfmt.FormatASTJSON(a.stdout, pq.Query); err != nil {
				return err
			}
			continue
		}
		if !a.quiet {
			fmt.Fprintf(a.stdout, "== line %d: %s ==\n", pq.Line.Line, pq.Query.String())
		}
		if err := diagfmt.FormatASTPretty(a.stdout, pq.Query, result.FileSet); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errQueriesFailed
	}
	return nil
}
