package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// GradeEntry is one subject row on a grade report. The grade stays a
// string because INC, DRP and similar marks are valid values.
type GradeEntry struct{ ent.Schema }

func (GradeEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "grade_entries"},
	}
}

func (GradeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("report_id", uuid.UUID{}),
		field.String("code").NotEmpty(),
		field.String("title").Optional(),
		field.Float("units").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,1)"}),
		field.String("final_grade").Optional(),
		field.String("remarks").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (GradeEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE report (FK: grade_entries.report_id)
		edge.From("report", GradeReport.Type).
			Ref("entries").
			Field("report_id").
			Required().
			Unique(),
	}
}

func (GradeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "code"),
	}
}
