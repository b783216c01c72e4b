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

type Student struct{ ent.Schema }

func (Student) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "students"},
	}
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Registrar sheets occasionally omit the student number; identity
		// then falls back to the name, so the column stays nullable.
		field.String("student_no").Optional().Nillable(),
		field.String("name").NotEmpty(),
		field.String("program").Optional(),
		field.String("year_level").Optional(),
		field.String("section").Optional(),
		field.String("semester").Optional(),
		field.String("school_year").Optional(),
		field.String("adviser").Optional(),
		field.String("record_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Student) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subjects", SubjectEntry.Type),
		edge.To("grades", GradeReport.Type),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_no").Unique(),
		index.Fields("name"),
		index.Fields("program", "year_level"),
	}
}
