package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort positions from a file or stdin in transcript order",
		Long:  "Reads one position per line (blank lines and # comments are skipped), sorts them in transcript order, and prints the sorted notation.",
		Example: `  hgvs-pos sort positions.txt
  printf '*5\n-3\n100\n100-2\n100+2\n' | hgvs-pos sort`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runSort(path)
		},
	}
}

// positionRecord pairs the source line with its parsed position so the
// original spelling is preserved in output.
type positionRecord struct {
	input string
	pos   *hgvs.VariantPosition
}

func runSort(path string) error {
	records, err := readPositions(path)
	if err != nil {
		return err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].pos.Less(records[j].pos)
	})

	w := bufio.NewWriter(os.Stdout)
	for _, r := range records {
		fmt.Fprintln(w, r.input)
	}
	return w.Flush()
}

// readPositions reads and parses one position per line from a file, or
// stdin when path is "-". Parsing fails on the first invalid line.
func readPositions(path string) ([]positionRecord, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var records []positionRecord
	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos, err := hgvs.ParsePosition(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, positionRecord{input: line, pos: pos})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}
