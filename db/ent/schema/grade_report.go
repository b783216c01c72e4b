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

// GradeReport is one term's grade sheet for a student.
type GradeReport struct{ ent.Schema }

func (GradeReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "grade_reports"},
	}
}

func (GradeReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("student_id", uuid.UUID{}),
		// Stored as plain strings, empty when the sheet names no term, so
		// the composite index below can still dedupe re-extractions.
		field.String("semester").Optional(),
		field.String("school_year").Optional(),
		field.Float("gwa").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(3,2)"}),
		field.String("record_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (GradeReport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE student (FK: grade_reports.student_id)
		edge.From("student", Student.Type).
			Ref("grades").
			Field("student_id").
			Required().
			Unique(),
		// ONE report -> MANY entries
		edge.To("entries", GradeEntry.Type),
	}
}

func (GradeReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "semester", "school_year").Unique(),
	}
}
