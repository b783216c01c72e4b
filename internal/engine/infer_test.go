package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deptRules() []KeywordRule {
	return []KeywordRule{
		{Keywords: []string{"BSCS", "COMPUTER SCIENCE"}, Value: "Computer Studies"},
		{Keywords: []string{"BSIT", "INFORMATION TECHNOLOGY"}, Value: "Computer Studies"},
		{Keywords: []string{"BSBA"}, Value: "Business Administration"},
	}
}

func TestChainLeavesResolvedFieldAlone(t *testing.T) {
	d := &Draft{Fields: map[string]string{"department": "Registrar"}}
	c := Chain{Field: "department", Steps: []InferenceStep{
		{Name: "always", Infer: func(*Draft) (string, bool) { return "wrong", true }},
	}}

	assert.False(t, c.Apply(d))
	assert.Equal(t, "Registrar", d.Fields["department"])
}

func TestChainFirstSuccessWins(t *testing.T) {
	calls := 0
	d := &Draft{Fields: map[string]string{}}
	c := Chain{Field: "department", Steps: []InferenceStep{
		{Name: "miss", Infer: func(*Draft) (string, bool) { return "", false }},
		{Name: "hit", Infer: func(*Draft) (string, bool) { return "Computer Studies", true }},
		{Name: "never", Infer: func(*Draft) (string, bool) { calls++; return "late", true }},
	}}

	require.True(t, c.Apply(d))
	assert.Equal(t, "Computer Studies", d.Fields["department"])
	assert.Equal(t, "inferred:hit", d.Provenance["department"])
	assert.Zero(t, calls)
}

func TestApplyChainsLaterChainSeesEarlierResult(t *testing.T) {
	d := &Draft{Fields: map[string]string{"program": "BSCS"}}
	chains := []Chain{
		{Field: "department", Steps: []InferenceStep{
			FieldKeywordStep("program-keywords", "program", deptRules()),
		}},
		{Field: "office", Steps: []InferenceStep{
			FieldKeywordStep("department-keywords", "department", []KeywordRule{
				{Keywords: []string{"COMPUTER STUDIES"}, Value: "CS Building 2F"},
			}),
		}},
	}

	ApplyChains(d, chains)
	assert.Equal(t, "Computer Studies", d.Fields["department"])
	assert.Equal(t, "CS Building 2F", d.Fields["office"])
}

func TestFirstKeywordMatchRuleOrder(t *testing.T) {
	got, ok := FirstKeywordMatch("BSCS and BSBA joint offering", deptRules())
	require.True(t, ok)
	assert.Equal(t, "Computer Studies", got)

	_, ok = FirstKeywordMatch("unrelated", deptRules())
	assert.False(t, ok)
}

func TestFilenameKeywordStep(t *testing.T) {
	d := &Draft{Source: "bsit-2a-cor-2024.xlsx", Fields: map[string]string{}}
	step := FilenameKeywordStep("filename", deptRules())

	got, ok := step.Infer(d)
	require.True(t, ok)
	assert.Equal(t, "Computer Studies", got)
}

func TestEmailKeywordStep(t *testing.T) {
	rules := []KeywordRule{
		{Keywords: []string{"CS"}, Value: "Computer Studies"},
		{Keywords: []string{"REGISTRAR"}, Value: "Registrar"},
	}
	step := EmailKeywordStep("email-local", "email", rules)

	// Two-letter code matches only as a whole token.
	d := &Draft{Fields: map[string]string{"email": "cs.dept@school.edu.ph"}}
	got, ok := step.Infer(d)
	require.True(t, ok)
	assert.Equal(t, "Computer Studies", got)

	d = &Draft{Fields: map[string]string{"email": "jcsmith@school.edu.ph"}}
	_, ok = step.Infer(d)
	assert.False(t, ok)

	// Longer keywords may match inside a token.
	d = &Draft{Fields: map[string]string{"email": "subregistrar@school.edu.ph"}}
	got, ok = step.Infer(d)
	require.True(t, ok)
	assert.Equal(t, "Registrar", got)

	d = &Draft{Fields: map[string]string{"email": ""}}
	_, ok = step.Infer(d)
	assert.False(t, ok)
}

func TestCopyFieldStep(t *testing.T) {
	d := &Draft{Fields: map[string]string{"program": "BSIT"}}
	step := CopyFieldStep("copy-program", "program")

	got, ok := step.Infer(d)
	require.True(t, ok)
	assert.Equal(t, "BSIT", got)

	_, ok = CopyFieldStep("copy-missing", "ghost").Infer(d)
	assert.False(t, ok)
}
