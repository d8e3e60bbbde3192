package hgvs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ProteinEventType identifies the kind of protein variant event.
type ProteinEventType int

const (
	ProteinSubstitution ProteinEventType = iota
	ProteinSynonymous
	ProteinDeletion
	ProteinDuplication
	ProteinInsertion
	ProteinDelIns
)

// String returns a short name for the event type.
func (t ProteinEventType) String() string {
	switch t {
	case ProteinSubstitution:
		return "substitution"
	case ProteinSynonymous:
		return "synonymous"
	case ProteinDeletion:
		return "deletion"
	case ProteinDuplication:
		return "duplication"
	case ProteinInsertion:
		return "insertion"
	case ProteinDelIns:
		return "delins"
	default:
		return "unknown"
	}
}

// ProteinPosition is an amino acid residue and its 1-based position,
// e.g. Gly12.
type ProteinPosition struct {
	AminoAcid string // three-letter code, or "Ter"
	Number    int
}

func (p ProteinPosition) String() string {
	return fmt.Sprintf("%s%d", p.AminoAcid, p.Number)
}

// ProteinVariant holds a single parsed protein variant event.
type ProteinVariant struct {
	Type  ProteinEventType
	Start *ProteinPosition // nil only for bare synonymous ("=" / "(=)")
	End   *ProteinPosition // set for ranged del/dup/ins/delins
	Alt   string           // substitution target residue, or "=" for Xaa123=
	Seq   []string         // inserted residues for ins/delins
}

// Three-letter amino acid codes recognized in protein variants.
// Ambiguous codes such as Xaa and Glx are excluded.
var aminoAcidCodes = []string{
	"Ala", "Arg", "Asn", "Asp", "Cys", "Gln", "Glu", "Gly", "His", "Ile",
	"Leu", "Lys", "Met", "Phe", "Pro", "Ser", "Thr", "Trp", "Tyr", "Val",
	"Ter",
}

// Patterns per protein event kind, built from the shared amino acid
// alternation and the same no-leading-zero numeric token used for
// transcript positions.
var (
	aaToken   = "(?:" + strings.Join(aminoAcidCodes, "|") + ")"
	aaPosTok  = aaToken + `[1-9][0-9]*`
	reProSub  = regexp.MustCompile(`^(` + aaPosTok + `)(` + aaToken + `|=)$`)
	reProSyn  = regexp.MustCompile(`^(?:=|\(=\))$`)
	reProDel  = regexp.MustCompile(`^(?:(?:(` + aaPosTok + `)_(` + aaPosTok + `))|(` + aaPosTok + `))del$`)
	reProDup  = regexp.MustCompile(`^(?:(?:(` + aaPosTok + `)_(` + aaPosTok + `))|(` + aaPosTok + `))dup$`)
	reProIns  = regexp.MustCompile(`^(` + aaPosTok + `)_(` + aaPosTok + `)ins(` + aaToken + `+)$`)
	reProDeli = regexp.MustCompile(`^(?:(?:(` + aaPosTok + `)_(` + aaPosTok + `))|(` + aaPosTok + `))delins(` + aaToken + `+)$`)
	reAAPos   = regexp.MustCompile(`^(` + aaToken + `)([1-9][0-9]*)$`)
	reAASplit = regexp.MustCompile(aaToken)
)

// ParseProteinVariant parses a single protein variant description with
// its "p." prefix, e.g. "p.Gly12Cys", "p.Trp24del", "p.Cys28delinsTrpVal".
func ParseProteinVariant(input string) (*ProteinVariant, error) {
	body, ok := strings.CutPrefix(input, "p.")
	if !ok {
		return nil, &SyntaxError{Input: input}
	}
	v, err := parseProteinEvent(body)
	if err != nil {
		return nil, &SyntaxError{Input: input}
	}
	return v, nil
}

// ParseProteinMulti parses a protein multi-variant such as
// "p.[Gly12Cys;Trp24del]" into its constituent events.
func ParseProteinMulti(input string) ([]*ProteinVariant, error) {
	body, ok := strings.CutPrefix(input, "p.[")
	if !ok || !strings.HasSuffix(body, "]") {
		return nil, &SyntaxError{Input: input}
	}
	body = strings.TrimSuffix(body, "]")

	parts := strings.Split(body, ";")
	if len(parts) < 2 {
		return nil, &SyntaxError{Input: input}
	}

	variants := make([]*ProteinVariant, 0, len(parts))
	for _, part := range parts {
		v, err := parseProteinEvent(part)
		if err != nil {
			return nil, &SyntaxError{Input: input}
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// parseProteinEvent matches one event body against the per-kind patterns
// in fixed order.
func parseProteinEvent(body string) (*ProteinVariant, error) {
	if reProSyn.MatchString(body) {
		return &ProteinVariant{Type: ProteinSynonymous}, nil
	}

	if m := reProSub.FindStringSubmatch(body); m != nil {
		start, err := parseAAPos(m[1])
		if err != nil {
			return nil, err
		}
		typ := ProteinSubstitution
		if m[2] == "=" {
			typ = ProteinSynonymous
		}
		return &ProteinVariant{Type: typ, Start: start, Alt: m[2]}, nil
	}

	if v, ok, err := parseProteinSpan(body, reProDel, ProteinDeletion); ok {
		return v, err
	}
	if v, ok, err := parseProteinSpan(body, reProDup, ProteinDuplication); ok {
		return v, err
	}

	if m := reProIns.FindStringSubmatch(body); m != nil {
		start, err := parseAAPos(m[1])
		if err != nil {
			return nil, err
		}
		end, err := parseAAPos(m[2])
		if err != nil {
			return nil, err
		}
		return &ProteinVariant{
			Type:  ProteinInsertion,
			Start: start,
			End:   end,
			Seq:   reAASplit.FindAllString(m[3], -1),
		}, nil
	}

	if m := reProDeli.FindStringSubmatch(body); m != nil {
		v := &ProteinVariant{Type: ProteinDelIns, Seq: reAASplit.FindAllString(m[4], -1)}
		if m[3] != "" {
			start, err := parseAAPos(m[3])
			if err != nil {
				return nil, err
			}
			v.Start = start
		} else {
			start, err := parseAAPos(m[1])
			if err != nil {
				return nil, err
			}
			end, err := parseAAPos(m[2])
			if err != nil {
				return nil, err
			}
			v.Start, v.End = start, end
		}
		return v, nil
	}

	return nil, &SyntaxError{Input: body}
}

// parseProteinSpan handles the shared single-residue / ranged grammar of
// deletions and duplications. The second return value reports whether the
// pattern claimed the input at all.
func parseProteinSpan(body string, re *regexp.Regexp, typ ProteinEventType) (*ProteinVariant, bool, error) {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil, false, nil
	}

	v := &ProteinVariant{Type: typ}
	if m[3] != "" {
		start, err := parseAAPos(m[3])
		if err != nil {
			return nil, true, err
		}
		v.Start = start
	} else {
		start, err := parseAAPos(m[1])
		if err != nil {
			return nil, true, err
		}
		end, err := parseAAPos(m[2])
		if err != nil {
			return nil, true, err
		}
		v.Start, v.End = start, end
	}
	return v, true, nil
}

// parseAAPos splits an amino-acid-plus-position token like "Gly12".
func parseAAPos(token string) (*ProteinPosition, error) {
	m := reAAPos.FindStringSubmatch(token)
	if m == nil {
		return nil, &SyntaxError{Input: token}
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, &SyntaxError{Input: token}
	}
	return &ProteinPosition{AminoAcid: m[1], Number: n}, nil
}
