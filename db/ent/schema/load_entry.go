package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LoadEntry is one timetable slot from a faculty schedule sheet.
type LoadEntry struct{ ent.Schema }

func (LoadEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "load_entries"},
	}
}

func (LoadEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("personnel_id", uuid.UUID{}),
		field.String("day").NotEmpty(),
		field.String("time_start").NotEmpty(),
		// Lone time readings leave the slot end open.
		field.String("time_end").Optional(),
		field.String("subject").Optional(),
		field.String("section").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (LoadEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE personnel (FK: load_entries.personnel_id)
		edge.From("personnel", Personnel.Type).
			Ref("loads").
			Field("personnel_id").
			Required().
			Unique(),
	}
}

func (LoadEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("personnel_id", "day"),
	}
}
