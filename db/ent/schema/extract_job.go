package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/db/ent/schema/utils"
)

// ExtractJob is the status trail for one extraction attempt on a sheet.
type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.ExtensionNames()...)),
		field.String("sheet_name").Optional().Nillable(),
		// Set once detection names a record family.
		field.String("record_kind").Optional().Nillable().
			Validate(utils.EnumValidator(constants.RecordKindNames()...)),
		field.String("status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.JobStatusNames()...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("record_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", SourceFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
	}
}
