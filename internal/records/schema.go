package records

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
)

// recordSchemas holds one compiled JSON Schema per record kind. The
// schemas are derived from the configurations themselves, so a field added
// to a configuration is automatically legal in its records.
var recordSchemas = func() map[constants.RecordKind]*jsonschema.Schema {
	out := make(map[constants.RecordKind]*jsonschema.Schema, len(kindConfigs))
	for kind, cfg := range kindConfigs {
		raw, err := json.Marshal(buildRecordSchema(cfg))
		if err != nil {
			panic(fmt.Sprintf("marshal %s record schema: %v", kind, err))
		}
		out[kind] = jsonschema.MustCompileString(string(kind)+".schema.json", string(raw))
	}
	return out
}()

// MarshalRecord renders the record in the same document shape the schema
// validates, for storage on the extract job row.
func MarshalRecord(rec *engine.Record) (json.RawMessage, error) {
	return json.Marshal(recordDocument(rec))
}

// ValidateRecord checks an assembled record against its kind's schema
// before anything persists it: only configured fields, non-empty scalar
// values, at least one identity field present.
func ValidateRecord(rec *engine.Record) error {
	schema, ok := recordSchemas[constants.RecordKind(rec.Kind)]
	if !ok {
		return fmt.Errorf("no schema for record kind %q", rec.Kind)
	}
	if err := schema.Validate(recordDocument(rec)); err != nil {
		return fmt.Errorf("%s record from %q failed validation: %w", rec.Kind, rec.Source, err)
	}
	return nil
}

func buildRecordSchema(cfg *engine.Config) map[string]any {
	fieldProps := make(map[string]any, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fieldProps[f.Name] = map[string]any{"type": "string", "minLength": 1}
	}

	identity := make([]any, 0, len(cfg.Identity))
	for _, f := range cfg.Identity {
		identity = append(identity, map[string]any{"required": []any{f}})
	}

	fieldsSchema := map[string]any{
		"type":                 "object",
		"properties":           fieldProps,
		"additionalProperties": false,
	}
	if len(identity) > 0 {
		fieldsSchema["anyOf"] = identity
	}

	rowProps := make(map[string]any)
	if cfg.Table != nil {
		for _, role := range cfg.Table.Roles {
			rowProps[role.Name] = map[string]any{"type": "string"}
		}
	}
	if cfg.Timetable != nil {
		for _, role := range []string{engine.RoleDay, engine.RoleTimeStart, engine.RoleTimeEnd, engine.RoleSubject, engine.RoleSection} {
			rowProps[role] = map[string]any{"type": "string"}
		}
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"kind":   map[string]any{"const": cfg.Kind},
			"source": map[string]any{"type": "string", "minLength": 1},
			"fields": fieldsSchema,
			"rows": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"properties":           rowProps,
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"kind", "source", "fields", "rows", "summary"},
		"additionalProperties": false,
	}
}

// recordDocument converts a record into the plain JSON shapes the
// validator understands.
func recordDocument(rec *engine.Record) map[string]any {
	fields := make(map[string]any, len(rec.Fields))
	for k, v := range rec.Fields {
		fields[k] = v
	}
	rows := make([]any, len(rec.Rows))
	for i, row := range rec.Rows {
		m := make(map[string]any, len(row))
		for k, v := range row {
			m[k] = v
		}
		rows[i] = m
	}
	summary := make(map[string]any, len(rec.Summary))
	for k, v := range rec.Summary {
		summary[k] = v
	}
	return map[string]any{
		"kind":    rec.Kind,
		"source":  rec.Source,
		"fields":  fields,
		"rows":    rows,
		"summary": summary,
	}
}
