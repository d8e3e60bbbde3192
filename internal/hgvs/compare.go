package hgvs

import "sort"

// Equal reports whether two positions have pairwise equal fields.
// Absent fields compare equal only to absent fields.
func (p *VariantPosition) Equal(other *VariantPosition) bool {
	return eqIntPtr(p.Position, other.Position) &&
		eqIntPtr(p.IntronicOffset, other.IntronicOffset) &&
		p.UTRSide == other.UTRSide &&
		eqIntPtr(p.UTROffset, other.UTROffset)
}

// Less reports whether p sorts strictly before other in transcript order.
//
// UTR side dominates: 5' UTR < non-UTR < 3' UTR. Within the same side the
// primary coordinate (UTR offset for UTR positions, position otherwise)
// is compared numerically, with intronic offsets breaking ties. An absent
// intronic offset sits exactly at the exon boundary, between the negative
// and positive offsets anchored there.
func (p *VariantPosition) Less(other *VariantPosition) bool {
	if p.UTRSide != other.UTRSide {
		return p.UTRSide == FivePrimeUTR || other.UTRSide == ThreePrimeUTR
	}
	if p.UTRSide != UTRNone {
		if *p.UTROffset != *other.UTROffset {
			return *p.UTROffset < *other.UTROffset
		}
		return intronLess(p.IntronicOffset, other.IntronicOffset)
	}
	if *p.Position != *other.Position {
		return *p.Position < *other.Position
	}
	return intronLess(p.IntronicOffset, other.IntronicOffset)
}

// intronLess compares intronic offsets of two positions whose other
// fields are equal. A nil offset is the bare exon boundary: greater than
// any negative offset and less than any positive one.
func intronLess(a, b *int) bool {
	switch {
	case eqIntPtr(a, b):
		return false
	case a == nil:
		return *b > 0
	case b == nil:
		return *a < 0
	default:
		return *a < *b
	}
}

// Compare returns -1 if p < other, 0 if p == other, and 1 otherwise.
// It is composed from Less and Equal rather than reimplemented.
func (p *VariantPosition) Compare(other *VariantPosition) int {
	switch {
	case p.Less(other):
		return -1
	case p.Equal(other):
		return 0
	default:
		return 1
	}
}

// LessOrEqual reports whether p sorts before or equal to other.
func (p *VariantPosition) LessOrEqual(other *VariantPosition) bool {
	return p.Less(other) || p.Equal(other)
}

// Greater reports whether p sorts strictly after other.
func (p *VariantPosition) Greater(other *VariantPosition) bool {
	return !p.Less(other) && !p.Equal(other)
}

// GreaterOrEqual reports whether p sorts after or equal to other.
func (p *VariantPosition) GreaterOrEqual(other *VariantPosition) bool {
	return !p.Less(other)
}

// SortPositions sorts positions in place by transcript order.
func SortPositions(positions []*VariantPosition) {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
