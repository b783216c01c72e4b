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
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/db/ent/schema/utils"
)

// Personnel covers both teaching and non-teaching staff; the variant
// column records which profile family the row came from.
type Personnel struct{ ent.Schema }

func (Personnel) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "personnel"},
	}
}

func (Personnel) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("variant").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.KindTeaching),
				string(constants.KindNonTeaching),
			)),
		field.String("position").Optional(),
		field.String("department").Optional().
			Validate(utils.EnumValidator(constants.DepartmentNames()...)),
		field.String("email").Optional(),
		field.String("phone").Optional(),
		field.String("sss_no").Optional(),
		field.String("philhealth_no").Optional(),
		field.String("birthdate").Optional(),
		field.String("address").Optional(),
		field.String("employment").Optional(),
		field.String("record_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Personnel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("loads", LoadEntry.Type),
	}
}

func (Personnel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "variant").Unique(),
		index.Fields("department"),
		index.Fields("email"),
	}
}
