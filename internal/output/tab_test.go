package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

func parseReport(t *testing.T, input string) *Report {
	t.Helper()
	pos, err := hgvs.ParsePosition(input)
	return &Report{Input: input, Pos: pos, Err: err}
}

func TestTabWriterHeader(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Flush())

	line := strings.TrimSuffix(buf.String(), "\n")
	cols := strings.Split(line, "\t")
	assert.Equal(t, "#Input", cols[0])
	assert.Len(t, cols, 8)
}

func TestTabWriterRows(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(parseReport(t, "88+7")))
	require.NoError(t, tw.Write(parseReport(t, "*6")))
	require.NoError(t, tw.Write(parseReport(t, "76")))
	require.NoError(t, tw.Write(parseReport(t, "bogus")))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	intronic := strings.Split(lines[1], "\t")
	assert.Equal(t, []string{"88+7", "YES", "88", "7", "-", "-", "YES", "-"}, intronic)

	utr := strings.Split(lines[2], "\t")
	assert.Equal(t, []string{"*6", "YES", "-", "-", "3p", "6", "YES", "-"}, utr)

	simple := strings.Split(lines[3], "\t")
	assert.Equal(t, []string{"76", "YES", "76", "-", "-", "-", "NO", "-"}, simple)

	invalid := strings.Split(lines[4], "\t")
	assert.Equal(t, "bogus", invalid[0])
	assert.Equal(t, "NO", invalid[1])
	assert.Contains(t, invalid[7], "invalid variant position")
}
