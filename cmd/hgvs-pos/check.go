package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
	"github.com/VariantEffect/hgvs-patterns/internal/output"
)

func newCheckCmd(verbose *bool) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a file of positions in parallel",
		Long:  "Reads one position per line and validates each against the grammar using a worker pool. Reports per-line validity and exits non-zero if any line is invalid.",
		Example: `  hgvs-pos check positions.txt
  cat positions.txt | hgvs-pos check -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			if !cmd.Flags().Changed("workers") {
				workers = viper.GetInt("check.workers")
			}
			return runCheck(path, workers, *verbose)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")

	return cmd
}

func runCheck(path string, workers int, verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	items := make(chan hgvs.WorkItem, 64)
	var scanErr error

	go func() {
		defer close(items)
		scanner := bufio.NewScanner(reader)
		seq := 0
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			items <- hgvs.WorkItem{Seq: seq, Input: line, Extra: lineNum}
			seq++
		}
		scanErr = scanner.Err()
	}()

	writer := output.NewTabWriter(os.Stdout)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	results := hgvs.ParallelParse(items, workers)

	total, invalid := 0, 0
	if err := hgvs.OrderedCollect(results, func(r hgvs.WorkResult) error {
		total++
		if r.Err != nil {
			invalid++
			logger.Warn("invalid position",
				zap.String("input", r.Input),
				zap.Int("line", r.Extra.(int)),
				zap.Error(r.Err))
		}
		return writer.Write(&output.Report{Input: r.Input, Pos: r.Pos, Err: r.Err})
	}); err != nil {
		return err
	}

	if scanErr != nil {
		return fmt.Errorf("read input: %w", scanErr)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "checked %d positions (%d valid, %d invalid)\n", total, total-invalid, invalid)
	if invalid > 0 {
		return fmt.Errorf("%d invalid positions", invalid)
	}
	return nil
}
