// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssembliesColumns holds the columns for the "assemblies" table.
	AssembliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "number", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssembliesTable holds the schema information for the "assemblies" table.
	AssembliesTable = &schema.Table{
		Name:       "assemblies",
		Columns:    AssembliesColumns,
		PrimaryKey: []*schema.Column{AssembliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assembly_number",
				Unique:  false,
				Columns: []*schema.Column{AssembliesColumns[2]},
			},
		},
	}
	// ImportJobsColumns holds the columns for the "import_jobs" table.
	ImportJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "booth_number", Type: field.TypeInt, Nullable: true},
		{Name: "booth_name", Type: field.TypeString, Nullable: true},
		{Name: "common_address", Type: field.TypeString, Nullable: true},
		{Name: "expected_count", Type: field.TypeInt, Nullable: true},
		{Name: "start_page", Type: field.TypeInt, Nullable: true},
		{Name: "end_page", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "total_voters", Type: field.TypeInt, Default: 0},
		{Name: "logs", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "assembly_id", Type: field.TypeUUID},
	}
	// ImportJobsTable holds the schema information for the "import_jobs" table.
	ImportJobsTable = &schema.Table{
		Name:       "import_jobs",
		Columns:    ImportJobsColumns,
		PrimaryKey: []*schema.Column{ImportJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_jobs_assemblies_import_jobs",
				Columns:    []*schema.Column{ImportJobsColumns[17]},
				RefColumns: []*schema.Column{AssembliesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_status_added_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobsColumns[9], ImportJobsColumns[14]},
			},
			{
				Name:    "importjob_assembly_id",
				Unique:  false,
				Columns: []*schema.Column{ImportJobsColumns[17]},
			},
		},
	}
	// VotersColumns holds the columns for the "voters" table.
	VotersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "epic", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: "Unknown"},
		{Name: "relative_name", Type: field.TypeString, Default: ""},
		{Name: "relation_type", Type: field.TypeString, Default: "Father"},
		{Name: "age", Type: field.TypeInt, Default: 0},
		{Name: "gender", Type: field.TypeString, Default: "M"},
		{Name: "house_number", Type: field.TypeString, Default: ""},
		{Name: "booth_number", Type: field.TypeInt, Default: 0},
		{Name: "village", Type: field.TypeString, Default: ""},
		{Name: "area", Type: field.TypeString, Default: ""},
		{Name: "family_size", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assembly_id", Type: field.TypeUUID},
		{Name: "import_job_id", Type: field.TypeUUID, Nullable: true},
	}
	// VotersTable holds the schema information for the "voters" table.
	VotersTable = &schema.Table{
		Name:       "voters",
		Columns:    VotersColumns,
		PrimaryKey: []*schema.Column{VotersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "voters_assemblies_voters",
				Columns:    []*schema.Column{VotersColumns[14]},
				RefColumns: []*schema.Column{AssembliesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "voters_import_jobs_voters",
				Columns:    []*schema.Column{VotersColumns[15]},
				RefColumns: []*schema.Column{ImportJobsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "voter_assembly_id_village_house_number",
				Unique:  false,
				Columns: []*schema.Column{VotersColumns[14], VotersColumns[9], VotersColumns[7]},
			},
			{
				Name:    "voter_booth_number",
				Unique:  false,
				Columns: []*schema.Column{VotersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssembliesTable,
		ImportJobsTable,
		VotersTable,
	}
)

func init() {
	AssembliesTable.Annotation = &entsql.Annotation{
		Table: "assemblies",
	}
	ImportJobsTable.ForeignKeys[0].RefTable = AssembliesTable
	ImportJobsTable.Annotation = &entsql.Annotation{
		Table: "import_jobs",
	}
	VotersTable.ForeignKeys[0].RefTable = AssembliesTable
	VotersTable.ForeignKeys[1].RefTable = ImportJobsTable
	VotersTable.Annotation = &entsql.Annotation{
		Table: "voters",
	}
}
