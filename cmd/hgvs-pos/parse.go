package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
	"github.com/VariantEffect/hgvs-patterns/internal/output"
)

func newParseCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <position>...",
		Short: "Parse position strings and print their fields",
		Example: `  hgvs-pos parse 76 88+1 -14 "*6"
  hgvs-pos parse "*6-22"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, *verbose)
		},
	}
}

func runParse(args []string, verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	writer := output.NewTabWriter(os.Stdout)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	invalid := 0
	for _, arg := range args {
		pos, err := hgvs.ParsePosition(arg)
		if err != nil {
			invalid++
			logger.Warn("invalid position", zap.String("input", arg), zap.Error(err))
		}
		if err := writer.Write(&output.Report{Input: arg, Pos: pos, Err: err}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d positions invalid", invalid, len(args))
	}
	return nil
}
