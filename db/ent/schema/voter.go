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

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/db/ent/schema/utils"
)

// Voter is the canonical elector record, keyed by the roll's EPIC string. Writing a
// record with an existing EPIC is an update, never a second insert.
type Voter struct{ ent.Schema }

func (Voter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "voters"},
	}
}

func (Voter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("epic").NotEmpty().Unique(),
		field.UUID("assembly_id", uuid.UUID{}),
		field.UUID("import_job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").Default(constants.UnknownName),
		field.String("relative_name").Default(""),
		field.String("relation_type").Default(constants.RelationFather).
			Validate(utils.EnumValidator(constants.RelationTypes...)),
		// 0 means unknown; plausible ages are 18..115 and enforced upstream.
		field.Int("age").Default(0),
		field.String("gender").Default(constants.GenderMale).
			Validate(utils.EnumValidator(constants.GenderMale, constants.GenderFemale)),
		field.String("house_number").Default(""),
		field.Int("booth_number").Default(0),
		field.String("village").Default(""),
		field.String("area").Default(""),
		field.Int("family_size").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Voter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assembly", Assembly.Type).
			Ref("voters").
			Field("assembly_id").
			Unique().
			Required(),
		edge.From("import_job", ImportJob.Type).
			Ref("voters").
			Field("import_job_id").
			Unique(),
	}
}

func (Voter) Indexes() []ent.Index {
	return []ent.Index{
		// household grouping: (assembly, village, house number)
		index.Fields("assembly_id", "village", "house_number"),
		index.Fields("booth_number"),
	}
}
