// Package hgvs provides parsing, classification, and ordering of
// HGVS-style transcript position notation.
package hgvs

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UTRSide identifies which untranslated region a position falls in.
type UTRSide int

const (
	UTRNone UTRSide = iota
	FivePrimeUTR
	ThreePrimeUTR
)

// String returns the conventional short name for the UTR side.
func (s UTRSide) String() string {
	switch s {
	case FivePrimeUTR:
		return "5p"
	case ThreePrimeUTR:
		return "3p"
	default:
		return ""
	}
}

// VariantPosition holds a parsed transcript position, including the
// extended intronic and UTR syntax.
//
// A VariantPosition is built by ParsePosition and must not be modified
// afterwards. Absent fields are nil (or UTRNone for the side), so a
// present offset of any sign is distinguishable from "not applicable".
type VariantPosition struct {
	// Position is the transcript coordinate, or the exon boundary
	// coordinate for intronic positions. Nil for UTR positions.
	Position *int

	// IntronicOffset is the signed distance into the intron from the
	// nearest exon boundary. Positive offsets count into the intron
	// from the 5' exon, negative offsets count back from the 3' exon.
	// Nil for non-intronic positions. Never zero.
	IntronicOffset *int

	// UTRSide is FivePrimeUTR for "-" positions, ThreePrimeUTR for "*"
	// positions, UTRNone otherwise.
	UTRSide UTRSide

	// UTROffset is the distance into the UTR. Nil for non-UTR positions.
	UTROffset *int
}

// positionShape identifies which grammar alternative matched.
type positionShape int

const (
	shapeSimple positionShape = iota
	shapeIntronic
	shapeUTR
	shapeUTRIntronic
)

// One anchored pattern per grammar shape, tried in fixed order so at most
// one can claim a given input. The shared numeric token [1-9][0-9]*
// excludes leading zeros and a bare zero (positions are 1-based).
var (
	reSimple      = regexp.MustCompile(`^([1-9][0-9]*)$`)
	reIntronic    = regexp.MustCompile(`^([1-9][0-9]*)([+-])([1-9][0-9]*)$`)
	reUTR         = regexp.MustCompile(`^([*-])([1-9][0-9]*)$`)
	reUTRIntronic = regexp.MustCompile(`^([*-])([1-9][0-9]*)([+-])([1-9][0-9]*)$`)
)

// positionMatch holds the shape tag and raw captures for one matched input.
type positionMatch struct {
	shape  positionShape
	groups []string
}

// matchPosition matches the whole input against the four grammar shapes.
func matchPosition(input string) (positionMatch, bool) {
	if m := reSimple.FindStringSubmatch(input); m != nil {
		return positionMatch{shape: shapeSimple, groups: m[1:]}, true
	}
	if m := reIntronic.FindStringSubmatch(input); m != nil {
		return positionMatch{shape: shapeIntronic, groups: m[1:]}, true
	}
	if m := reUTR.FindStringSubmatch(input); m != nil {
		return positionMatch{shape: shapeUTR, groups: m[1:]}, true
	}
	if m := reUTRIntronic.FindStringSubmatch(input); m != nil {
		return positionMatch{shape: shapeUTRIntronic, groups: m[1:]}, true
	}
	return positionMatch{}, false
}

// ParsePosition parses a transcript position string such as "76", "88+1",
// "89-2", "-14", "*6" or "*6-22" into a VariantPosition.
// Inputs that do not fully match the grammar fail with a *SyntaxError.
func ParsePosition(input string) (*VariantPosition, error) {
	m, ok := matchPosition(input)
	if !ok {
		return nil, &SyntaxError{Input: input}
	}
	return derivePosition(input, m)
}

// derivePosition converts raw captures into a populated VariantPosition.
// The shape switch is exhaustive for matchPosition output; an unknown
// shape is a programming defect, not bad input.
func derivePosition(input string, m positionMatch) (*VariantPosition, error) {
	p := &VariantPosition{}

	switch m.shape {
	case shapeSimple:
		n, err := parseCoordinate(input, m.groups[0])
		if err != nil {
			return nil, err
		}
		p.Position = &n

	case shapeIntronic:
		n, err := parseCoordinate(input, m.groups[0])
		if err != nil {
			return nil, err
		}
		off, err := parseOffset(input, m.groups[1], m.groups[2])
		if err != nil {
			return nil, err
		}
		p.Position = &n
		p.IntronicOffset = &off

	case shapeUTR:
		p.UTRSide = utrSideFor(m.groups[0])
		n, err := parseCoordinate(input, m.groups[1])
		if err != nil {
			return nil, err
		}
		p.UTROffset = &n

	case shapeUTRIntronic:
		p.UTRSide = utrSideFor(m.groups[0])
		n, err := parseCoordinate(input, m.groups[1])
		if err != nil {
			return nil, err
		}
		off, err := parseOffset(input, m.groups[2], m.groups[3])
		if err != nil {
			return nil, err
		}
		p.UTROffset = &n
		p.IntronicOffset = &off

	default:
		panic(fmt.Sprintf("hgvs: unknown position shape %d for %q", m.shape, input))
	}

	return p, nil
}

// utrSideFor maps the leading UTR symbol to its side.
func utrSideFor(symbol string) UTRSide {
	switch symbol {
	case "-":
		return FivePrimeUTR
	case "*":
		return ThreePrimeUTR
	default:
		panic(fmt.Sprintf("hgvs: unknown UTR symbol %q", symbol))
	}
}

// parseCoordinate converts a captured digit run to an int. The grammar
// already guarantees digits; only values too large for int can fail.
func parseCoordinate(input, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &SyntaxError{Input: input}
	}
	return n, nil
}

// parseOffset converts a sign token plus digit run into a signed offset.
func parseOffset(input, sign, digits string) (int, error) {
	n, err := parseCoordinate(input, digits)
	if err != nil {
		return 0, err
	}
	if sign == "-" {
		n = -n
	}
	return n, nil
}

// IsUTR reports whether the position falls in a UTR.
func (p *VariantPosition) IsUTR() bool {
	return p.UTRSide != UTRNone
}

// IsIntronic reports whether the position falls in an intron.
func (p *VariantPosition) IsIntronic() bool {
	return p.IntronicOffset != nil
}

// IsExtended reports whether the position used anything beyond the
// plain integer shape.
func (p *VariantPosition) IsExtended() bool {
	return p.IsUTR() || p.IsIntronic()
}

// ErrExtendedAdjacency is returned by IsAdjacent when either position
// uses the extended syntax. Adjacency across intron and UTR boundaries
// is an unresolved contract and is never approximated.
var ErrExtendedAdjacency = errors.New("adjacency is not defined for intronic or UTR positions")

// IsAdjacent reports whether two positions describe neighboring bases in
// sequence space. It is defined only when neither position is extended;
// otherwise it fails with ErrExtendedAdjacency.
//
// Because a VariantPosition carries no sequence length information, the
// last base of a transcript and the first base of the 3' UTR are not
// reported as adjacent.
func (p *VariantPosition) IsAdjacent(other *VariantPosition) (bool, error) {
	if p.IsExtended() || other.IsExtended() {
		return false, ErrExtendedAdjacency
	}
	d := *p.Position - *other.Position
	return d == 1 || d == -1, nil
}

// String reconstructs the notation for the position.
func (p *VariantPosition) String() string {
	var sb strings.Builder
	switch p.UTRSide {
	case FivePrimeUTR:
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(*p.UTROffset))
	case ThreePrimeUTR:
		sb.WriteByte('*')
		sb.WriteString(strconv.Itoa(*p.UTROffset))
	default:
		sb.WriteString(strconv.Itoa(*p.Position))
	}
	if p.IntronicOffset != nil {
		if *p.IntronicOffset > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(*p.IntronicOffset))
	}
	return sb.String()
}
