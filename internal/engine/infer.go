package engine

import (
	"regexp"
	"strings"
)

// Draft is the mutable working record: located fields plus extracted rows,
// before inference and assembly. Provenance tracks how each field got its
// value ("label:right-cell", "inferred:email-domain", "default").
type Draft struct {
	Kind       string
	Source     string
	Fields     map[string]string
	Rows       []Row
	Provenance map[string]string
}

// setField records a value with its provenance, never overwriting.
func (d *Draft) setField(name, value, provenance string) {
	if d.Fields == nil {
		d.Fields = make(map[string]string)
	}
	if d.Provenance == nil {
		d.Provenance = make(map[string]string)
	}
	if d.Fields[name] != "" {
		return
	}
	d.Fields[name] = value
	d.Provenance[name] = provenance
}

// InferenceStep is one named fallback strategy for a missing field.
type InferenceStep struct {
	Name  string
	Infer func(d *Draft) (string, bool)
}

// Chain backfills one field. Steps run in declaration order and the first
// success wins; a field already resolved by label location is left alone.
// Defaults are not part of the chain, they apply at assembly.
type Chain struct {
	Field string
	Steps []InferenceStep
}

// Apply runs the chain against the draft. Reports whether a step fired.
func (c *Chain) Apply(d *Draft) bool {
	if d.Fields[c.Field] != "" {
		return false
	}
	for _, step := range c.Steps {
		if value, ok := step.Infer(d); ok && value != "" {
			d.setField(c.Field, value, "inferred:"+step.Name)
			return true
		}
	}
	return false
}

// ApplyChains runs every chain once, in order. Order matters: a later
// chain may key off a field an earlier chain just filled.
func ApplyChains(d *Draft, chains []Chain) {
	for i := range chains {
		chains[i].Apply(d)
	}
}

// KeywordRule maps trigger keywords to a resolved value. Rules are ordered,
// the first rule with a hit wins.
type KeywordRule struct {
	Keywords []string
	Value    string
}

// FirstKeywordMatch scans text for the ordered rule set, case-insensitive
// containment.
func FirstKeywordMatch(text string, rules []KeywordRule) (string, bool) {
	upper := strings.ToUpper(text)
	if upper == "" {
		return "", false
	}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(kw)) {
				return rule.Value, true
			}
		}
	}
	return "", false
}

// FieldKeywordStep infers from the text of another already-resolved field.
func FieldKeywordStep(name, sourceField string, rules []KeywordRule) InferenceStep {
	return InferenceStep{
		Name: name,
		Infer: func(d *Draft) (string, bool) {
			return FirstKeywordMatch(d.Fields[sourceField], rules)
		},
	}
}

// FilenameKeywordStep infers from the source filename.
func FilenameKeywordStep(name string, rules []KeywordRule) InferenceStep {
	return InferenceStep{
		Name: name,
		Infer: func(d *Draft) (string, bool) {
			return FirstKeywordMatch(d.Source, rules)
		},
	}
}

var reEmailToken = regexp.MustCompile(`[^A-Z0-9]+`)

// EmailKeywordStep infers from the local part of an email field. Keywords
// shorter than three characters must match a whole token of the local part
// so a two-letter code can't fire inside an unrelated surname.
func EmailKeywordStep(name, emailField string, rules []KeywordRule) InferenceStep {
	return InferenceStep{
		Name: name,
		Infer: func(d *Draft) (string, bool) {
			email := d.Fields[emailField]
			at := strings.IndexByte(email, '@')
			if at <= 0 {
				return "", false
			}
			local := strings.ToUpper(email[:at])
			tokens := reEmailToken.Split(local, -1)
			for _, rule := range rules {
				for _, kw := range rule.Keywords {
					upperKw := strings.ToUpper(kw)
					if len(upperKw) >= 3 && strings.Contains(local, upperKw) {
						return rule.Value, true
					}
					for _, tok := range tokens {
						if tok == upperKw {
							return rule.Value, true
						}
					}
				}
			}
			return "", false
		},
	}
}

// CopyFieldStep copies another field's resolved value verbatim.
func CopyFieldStep(name, sourceField string) InferenceStep {
	return InferenceStep{
		Name: name,
		Infer: func(d *Draft) (string, bool) {
			v := d.Fields[sourceField]
			return v, v != ""
		},
	}
}
