package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func makeRecords(t *testing.T, inputs ...string) []Record {
	t.Helper()
	records := make([]Record, len(inputs))
	for i, input := range inputs {
		pos, err := hgvs.ParsePosition(input)
		require.NoError(t, err, "ParsePosition(%q)", input)
		records[i] = Record{Input: input, Pos: pos}
	}
	return records
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndListPositions(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WritePositions(makeRecords(t, "*5", "-3", "100", "100-2", "100+2")))

	records, err := s.ListPositions()
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Listing returns transcript order, including the intronic tie-break.
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Input
	}
	assert.Equal(t, []string{"-3", "100-2", "100", "100+2", "*5"}, got)
}

func TestListRebuildsFields(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WritePositions(makeRecords(t, "88-7", "-12", "*6+4", "76")))

	records, err := s.ListPositions()
	require.NoError(t, err)
	require.Len(t, records, 4)

	byInput := make(map[string]*hgvs.VariantPosition, len(records))
	for _, r := range records {
		byInput[r.Input] = r.Pos
	}

	intronic := byInput["88-7"]
	require.NotNil(t, intronic.Position)
	require.NotNil(t, intronic.IntronicOffset)
	assert.Equal(t, 88, *intronic.Position)
	assert.Equal(t, -7, *intronic.IntronicOffset)
	assert.Equal(t, hgvs.UTRNone, intronic.UTRSide)

	utr := byInput["-12"]
	assert.Nil(t, utr.Position)
	assert.Equal(t, hgvs.FivePrimeUTR, utr.UTRSide)
	require.NotNil(t, utr.UTROffset)
	assert.Equal(t, 12, *utr.UTROffset)

	utrIntron := byInput["*6+4"]
	assert.Equal(t, hgvs.ThreePrimeUTR, utrIntron.UTRSide)
	require.NotNil(t, utrIntron.IntronicOffset)
	assert.Equal(t, 4, *utrIntron.IntronicOffset)

	simple := byInput["76"]
	require.NotNil(t, simple.Position)
	assert.Equal(t, 76, *simple.Position)
	assert.False(t, simple.IsExtended())
}

func TestWriteDeduplicates(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WritePositions(makeRecords(t, "88+1", "88+1", "76")))
	require.NoError(t, s.WritePositions(makeRecords(t, "88+1", "*3")))

	records, err := s.ListPositions()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestCountExtended(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WritePositions(makeRecords(t, "76", "88+1", "-12", "100")))

	n, err := s.CountExtended()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestClear(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WritePositions(makeRecords(t, "76", "88+1")))
	require.NoError(t, s.Clear())

	records, err := s.ListPositions()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteEmpty(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.WritePositions(nil))
}
