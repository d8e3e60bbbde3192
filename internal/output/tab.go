// Package output provides position report formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

// Report holds the outcome of parsing one position string.
type Report struct {
	Input string
	Pos   *hgvs.VariantPosition
	Err   error
}

// TabWriter writes position reports in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Input",
			"Valid",
			"Position",
			"Intronic_offset",
			"UTR",
			"UTR_offset",
			"Extended",
			"Error",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single report row.
func (tw *TabWriter) Write(r *Report) error {
	values := []string{r.Input, "NO", "-", "-", "-", "-", "-", "-"}

	if r.Err != nil {
		values[7] = r.Err.Error()
	} else {
		p := r.Pos
		values[1] = "YES"
		if p.Position != nil {
			values[2] = fmt.Sprintf("%d", *p.Position)
		}
		if p.IntronicOffset != nil {
			values[3] = fmt.Sprintf("%d", *p.IntronicOffset)
		}
		if p.UTRSide != hgvs.UTRNone {
			values[4] = p.UTRSide.String()
		}
		if p.UTROffset != nil {
			values[5] = fmt.Sprintf("%d", *p.UTROffset)
		}
		if p.IsExtended() {
			values[6] = "YES"
		} else {
			values[6] = "NO"
		}
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
