package hgvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, s string) *VariantPosition {
	t.Helper()
	p, err := ParsePosition(s)
	require.NoError(t, err, "ParsePosition(%q)", s)
	return p
}

func TestLess_UTRSideDominates(t *testing.T) {
	// 5' UTR < non-UTR < 3' UTR, regardless of the numeric fields.
	tests := []struct {
		a, b string
	}{
		{"-12", "5"},
		{"-1", "1"},
		{"-1000", "1"},
		{"5", "*3"},
		{"1000000", "*1"},
		{"-12", "*3"},
		{"-1", "*1000"},
		{"-3+5", "1"},
		{"88+1", "*1"},
	}
	for _, tt := range tests {
		a := mustPosition(t, tt.a)
		b := mustPosition(t, tt.b)
		assert.True(t, a.Less(b), "%s < %s", tt.a, tt.b)
		assert.False(t, b.Less(a), "!(%s < %s)", tt.b, tt.a)
	}
}

func TestLess_SameRegion(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"5", "6"},
		{"99", "100"},
		{"-12", "-13"}, // UTR offsets compare numerically within a side
		{"*3", "*4"},
		{"*3+1", "*4"},
	}
	for _, tt := range tests {
		a := mustPosition(t, tt.a)
		b := mustPosition(t, tt.b)
		assert.True(t, a.Less(b), "%s < %s", tt.a, tt.b)
		assert.False(t, b.Less(a), "!(%s < %s)", tt.b, tt.a)
	}
}

func TestLess_IntronicTieBreak(t *testing.T) {
	// The bare boundary sorts strictly between negative and positive
	// offsets anchored at the same coordinate.
	chain := []string{"88-7", "88-1", "88", "88+1", "88+7"}
	for i := range chain {
		for j := range chain {
			a := mustPosition(t, chain[i])
			b := mustPosition(t, chain[j])
			assert.Equal(t, i < j, a.Less(b), "%s < %s", chain[i], chain[j])
		}
	}

	// Same rule inside a UTR.
	utrChain := []string{"*6-22", "*6", "*6+4"}
	for i := range utrChain {
		for j := range utrChain {
			a := mustPosition(t, utrChain[i])
			b := mustPosition(t, utrChain[j])
			assert.Equal(t, i < j, a.Less(b), "%s < %s", utrChain[i], utrChain[j])
		}
	}
}

func TestEqual(t *testing.T) {
	inputs := []string{"76", "88+7", "88-7", "-12", "*12", "*6-22"}

	// Reflexivity: parsing the same string twice gives equal values.
	for _, s := range inputs {
		a := mustPosition(t, s)
		b := mustPosition(t, s)
		assert.True(t, a.Equal(b), "%s == %s", s, s)
		assert.True(t, b.Equal(a), "symmetry for %s", s)
		assert.False(t, a.Less(b), "!(%s < %s)", s, s)
	}

	// Distinct inputs are pairwise unequal.
	for i, si := range inputs {
		for j, sj := range inputs {
			if i == j {
				continue
			}
			assert.False(t, mustPosition(t, si).Equal(mustPosition(t, sj)), "%s != %s", si, sj)
		}
	}

	// An absent field is not equal to a present zero-adjacent value.
	boundary := mustPosition(t, "88")
	intronic := mustPosition(t, "88+1")
	assert.False(t, boundary.Equal(intronic))
}

func TestDerivedOperators(t *testing.T) {
	a := mustPosition(t, "88-7")
	b := mustPosition(t, "88")
	c := mustPosition(t, "88")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, b.Compare(c))

	assert.True(t, a.LessOrEqual(b))
	assert.True(t, b.LessOrEqual(c))
	assert.False(t, b.LessOrEqual(a))

	assert.True(t, b.Greater(a))
	assert.False(t, a.Greater(b))
	assert.False(t, b.Greater(c))

	assert.True(t, b.GreaterOrEqual(a))
	assert.True(t, b.GreaterOrEqual(c))
	assert.False(t, a.GreaterOrEqual(b))
}

func TestSortPositions(t *testing.T) {
	inputs := []string{"*5", "-3", "100", "100-2", "100+2"}
	want := []string{"-3", "100-2", "100", "100+2", "*5"}

	positions := make([]*VariantPosition, len(inputs))
	for i, s := range inputs {
		positions[i] = mustPosition(t, s)
	}

	SortPositions(positions)

	got := make([]string, len(positions))
	for i, p := range positions {
		got[i] = p.String()
	}
	assert.Equal(t, want, got)
}

func TestOrderTransitivity(t *testing.T) {
	// Every pair from a mixed set must be consistently ordered.
	inputs := []string{
		"-1", "-3", "-22", "-22+4",
		"1", "88-7", "88", "88+7", "100",
		"*1", "*6-22", "*6", "*6+4", "*12",
	}
	positions := make([]*VariantPosition, len(inputs))
	for i, s := range inputs {
		positions[i] = mustPosition(t, s)
	}

	for i := range positions {
		for j := range positions {
			a, b := positions[i], positions[j]
			if i == j {
				assert.True(t, a.Equal(b))
				continue
			}
			// Exactly one of a<b, b<a holds for distinct positions.
			assert.NotEqual(t, a.Less(b), b.Less(a), "%s vs %s", inputs[i], inputs[j])
			assert.False(t, a.Equal(b), "%s != %s", inputs[i], inputs[j])
		}
	}

	// The listed inputs are already in transcript order.
	for i := 0; i+1 < len(positions); i++ {
		assert.True(t, positions[i].Less(positions[i+1]), "%s < %s", inputs[i], inputs[i+1])
	}
}

func TestLess_NilOffsetAgainstSigned(t *testing.T) {
	boundary := &VariantPosition{Position: intp(88)}
	negative := &VariantPosition{Position: intp(88), IntronicOffset: intp(-7)}
	positive := &VariantPosition{Position: intp(88), IntronicOffset: intp(7)}

	assert.True(t, negative.Less(boundary))
	assert.False(t, boundary.Less(negative))
	assert.True(t, boundary.Less(positive))
	assert.False(t, positive.Less(boundary))
}
