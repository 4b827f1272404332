package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jpath/internal/diagfmt"
	"jpath/internal/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.jsonpath>",
		Short: "Print the tokens of a query file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokenize(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (a *app) runTokenize(cmd *cobra.Command, path string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	done := a.timer.Track("tokenize")
	result, err := driver.Tokenize(path, a.cfg.MaxDiagnostics)
	if err != nil {
		done("error")
		return fmt.Errorf("tokenization failed: %w", err)
	}
	done(fmt.Sprintf("%d tokens", len(result.Tokens)))

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(a.stderr, result.Bag, result.FileSet, a.prettyOpts())
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(a.stdout, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(a.stdout, result.Tokens, result.FileSet)
}
