package engine

import "strings"

// Strategy is one positional way of reading a value once a label cell has
// been found. Institutional forms put the value inline after a colon, in
// the cell to the right, or in the cell below; nothing else was observed.
type Strategy int

const (
	// StrategySameCell splits the label cell on ':' or '=' and normalizes
	// the remainder.
	StrategySameCell Strategy = iota
	// StrategyRightCell normalizes the next cell in the same row.
	StrategyRightCell
	// StrategyBelowCell normalizes the cell directly beneath the label.
	StrategyBelowCell
)

func (s Strategy) String() string {
	switch s {
	case StrategySameCell:
		return "same-cell"
	case StrategyRightCell:
		return "right-cell"
	case StrategyBelowCell:
		return "below-cell"
	}
	return "unknown"
}

// defaultStrategies is the order that covers every observed form layout.
var defaultStrategies = []Strategy{StrategySameCell, StrategyRightCell, StrategyBelowCell}

// FieldSpec describes one target scalar field: what labels announce it, how
// its value is cleaned, and which positional strategies to try. Specs are
// built once per record kind and shared read-only.
type FieldSpec struct {
	// Name is the canonical field name in the assembled record.
	Name string
	// Synonyms are the label keywords, matched case-insensitively as
	// substrings of a candidate cell.
	Synonyms []string
	// Normalize cleans a candidate value; defaults to NormalizeText.
	Normalize Normalizer
	// Strategies overrides the default same/right/below order.
	Strategies []Strategy
}

func (f *FieldSpec) strategies() []Strategy {
	if len(f.Strategies) > 0 {
		return f.Strategies
	}
	return defaultStrategies
}

func (f *FieldSpec) normalizer() Normalizer {
	if f.Normalize != nil {
		return f.Normalize
	}
	return NormalizeText
}

// matchesLabel reports whether the upper-cased cell text contains one of the
// field's synonyms.
func (f *FieldSpec) matchesLabel(upper string) bool {
	for _, syn := range f.Synonyms {
		if strings.Contains(upper, strings.ToUpper(syn)) {
			return true
		}
	}
	return false
}

// isHeaderLiteral reports whether a candidate value is just the field's own
// label repeated (a column header bleeding into the value position).
func (f *FieldSpec) isHeaderLiteral(raw string) bool {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for _, syn := range f.Synonyms {
		if upper == strings.ToUpper(syn) {
			return true
		}
	}
	return false
}

// clean runs header-literal rejection then the field's normalizer.
func (f *FieldSpec) clean(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" || f.isHeaderLiteral(raw) {
		return "", false
	}
	return f.normalizer()(raw)
}

// LabeledField is the runtime result of locating one FieldSpec.
type LabeledField struct {
	Name     string
	Raw      string
	Value    string
	Row, Col int
	Strategy Strategy
	Found    bool
}
