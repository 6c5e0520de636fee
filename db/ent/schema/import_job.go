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

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/db/ent/schema/utils"
)

// ImportJob is one submitted voter-roll PDF ingestion request. The orchestrator owns
// all state transitions; updated_at doubles as the staleness signal for crash recovery.
type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_jobs"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("assembly_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Int("booth_number").Optional().Nillable(),
		field.String("booth_name").Optional().Nillable(),
		field.String("common_address").Optional().Nillable(),
		field.Int("expected_count").Optional().Nillable(),
		field.Int("start_page").Optional().Nillable(),
		field.Int("end_page").Optional().Nillable(),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0),
		field.Int("total_voters").Default(0),
		field.String("logs").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("added_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ImportJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assembly", Assembly.Type).
			Ref("import_jobs").
			Field("assembly_id").
			Unique().
			Required(),
		edge.To("voters", Voter.Type),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "added_at"),
		index.Fields("assembly_id"),
	}
}
