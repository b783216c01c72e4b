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

// SubjectEntry is one enrolled-subject row from a registration sheet.
// A subject that meets on several days produces one entry per day.
type SubjectEntry struct{ ent.Schema }

func (SubjectEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subject_entries"},
	}
}

func (SubjectEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("student_id", uuid.UUID{}),
		field.String("code").NotEmpty(),
		field.String("title").Optional(),
		field.Float("units").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,1)"}),
		field.String("room").Optional(),
		field.String("day").Optional(),
		field.String("time_start").Optional(),
		field.String("time_end").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (SubjectEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE student (FK: subject_entries.student_id)
		edge.From("student", Student.Type).
			Ref("subjects").
			Field("student_id").
			Required().
			Unique(),
	}
}

func (SubjectEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "code"),
	}
}
