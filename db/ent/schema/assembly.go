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

// Assembly is a legislative constituency; voters and import jobs belong to exactly one.
type Assembly struct{ ent.Schema }

func (Assembly) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "assemblies"},
	}
}

func (Assembly) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Int("number").Default(0),
		field.String("state").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Assembly) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("voters", Voter.Type),
		edge.To("import_jobs", ImportJob.Type),
	}
}

func (Assembly) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("number"),
	}
}
