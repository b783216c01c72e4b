package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

func TestValidateRecordAcceptsExtractedRecord(t *testing.T) {
	cfg, _ := ForKind(constants.KindSchedule)
	rec, err := cfg.Extract(grid.New(corSheetRows()), "bsit-2a-cor.xlsx")
	require.NoError(t, err)

	assert.NoError(t, ValidateRecord(rec))
}

func TestValidateRecordRejectsUnknownField(t *testing.T) {
	cfg, _ := ForKind(constants.KindSchedule)
	rec, err := cfg.Extract(grid.New(corSheetRows()), "bsit-2a-cor.xlsx")
	require.NoError(t, err)

	rec.Fields["favorite_color"] = "blue"
	assert.Error(t, ValidateRecord(rec))
}

func TestValidateRecordRejectsMissingIdentity(t *testing.T) {
	rec := &engine.Record{
		Kind:    string(constants.KindSchedule),
		Source:  "cor.xlsx",
		Fields:  map[string]string{FieldSemester: "1st Semester"},
		Rows:    nil,
		Summary: map[string]string{},
	}
	assert.Error(t, ValidateRecord(rec))
}

func TestValidateRecordRejectsEmptyFieldValue(t *testing.T) {
	rec := &engine.Record{
		Kind:    string(constants.KindTeaching),
		Source:  "profile.xlsx",
		Fields:  map[string]string{FieldName: ""},
		Summary: map[string]string{},
	}
	assert.Error(t, ValidateRecord(rec))
}

func TestValidateRecordUnknownKind(t *testing.T) {
	rec := &engine.Record{Kind: "MYSTERY", Source: "x.xlsx"}
	err := ValidateRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema")
}

func TestEveryKindHasASchema(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := recordSchemas[k]
		assert.True(t, ok, k)
	}
}
