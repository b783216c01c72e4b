// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "sheet_name", Type: field.TypeString, Nullable: true},
		{Name: "record_kind", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "record_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_source_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[10]},
				RefColumns: []*schema.Column{SourceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[4], ExtractJobsColumns[5]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[10]},
			},
		},
	}
	// GradeEntriesColumns holds the columns for the "grade_entries" table.
	GradeEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "units", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(4,1)"}},
		{Name: "final_grade", Type: field.TypeString, Nullable: true},
		{Name: "remarks", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// GradeEntriesTable holds the schema information for the "grade_entries" table.
	GradeEntriesTable = &schema.Table{
		Name:       "grade_entries",
		Columns:    GradeEntriesColumns,
		PrimaryKey: []*schema.Column{GradeEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grade_entries_grade_reports_entries",
				Columns:    []*schema.Column{GradeEntriesColumns[7]},
				RefColumns: []*schema.Column{GradeReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gradeentry_report_id_code",
				Unique:  false,
				Columns: []*schema.Column{GradeEntriesColumns[7], GradeEntriesColumns[1]},
			},
		},
	}
	// GradeReportsColumns holds the columns for the "grade_reports" table.
	GradeReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "semester", Type: field.TypeString, Nullable: true},
		{Name: "school_year", Type: field.TypeString, Nullable: true},
		{Name: "gwa", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(3,2)"}},
		{Name: "record_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeUUID},
	}
	// GradeReportsTable holds the schema information for the "grade_reports" table.
	GradeReportsTable = &schema.Table{
		Name:       "grade_reports",
		Columns:    GradeReportsColumns,
		PrimaryKey: []*schema.Column{GradeReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grade_reports_students_grades",
				Columns:    []*schema.Column{GradeReportsColumns[7]},
				RefColumns: []*schema.Column{StudentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gradereport_student_id_semester_school_year",
				Unique:  true,
				Columns: []*schema.Column{GradeReportsColumns[7], GradeReportsColumns[1], GradeReportsColumns[2]},
			},
		},
	}
	// LoadEntriesColumns holds the columns for the "load_entries" table.
	LoadEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeString},
		{Name: "time_start", Type: field.TypeString},
		{Name: "time_end", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "section", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "personnel_id", Type: field.TypeUUID},
	}
	// LoadEntriesTable holds the schema information for the "load_entries" table.
	LoadEntriesTable = &schema.Table{
		Name:       "load_entries",
		Columns:    LoadEntriesColumns,
		PrimaryKey: []*schema.Column{LoadEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "load_entries_personnel_loads",
				Columns:    []*schema.Column{LoadEntriesColumns[7]},
				RefColumns: []*schema.Column{PersonnelColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "loadentry_personnel_id_day",
				Unique:  false,
				Columns: []*schema.Column{LoadEntriesColumns[7], LoadEntriesColumns[1]},
			},
		},
	}
	// PersonnelColumns holds the columns for the "personnel" table.
	PersonnelColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString},
		{Name: "position", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "sss_no", Type: field.TypeString, Nullable: true},
		{Name: "philhealth_no", Type: field.TypeString, Nullable: true},
		{Name: "birthdate", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "employment", Type: field.TypeString, Nullable: true},
		{Name: "record_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PersonnelTable holds the schema information for the "personnel" table.
	PersonnelTable = &schema.Table{
		Name:       "personnel",
		Columns:    PersonnelColumns,
		PrimaryKey: []*schema.Column{PersonnelColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "personnel_name_variant",
				Unique:  true,
				Columns: []*schema.Column{PersonnelColumns[1], PersonnelColumns[2]},
			},
			{
				Name:    "personnel_department",
				Unique:  false,
				Columns: []*schema.Column{PersonnelColumns[4]},
			},
			{
				Name:    "personnel_email",
				Unique:  false,
				Columns: []*schema.Column{PersonnelColumns[5]},
			},
		},
	}
	// SourceFilesColumns holds the columns for the "source_files" table.
	SourceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// SourceFilesTable holds the schema information for the "source_files" table.
	SourceFilesTable = &schema.Table{
		Name:       "source_files",
		Columns:    SourceFilesColumns,
		PrimaryKey: []*schema.Column{SourceFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourcefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourceFilesColumns[2]},
			},
			{
				Name:    "sourcefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[6]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "student_no", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "program", Type: field.TypeString, Nullable: true},
		{Name: "year_level", Type: field.TypeString, Nullable: true},
		{Name: "section", Type: field.TypeString, Nullable: true},
		{Name: "semester", Type: field.TypeString, Nullable: true},
		{Name: "school_year", Type: field.TypeString, Nullable: true},
		{Name: "adviser", Type: field.TypeString, Nullable: true},
		{Name: "record_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_student_no",
				Unique:  true,
				Columns: []*schema.Column{StudentsColumns[1]},
			},
			{
				Name:    "student_name",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[2]},
			},
			{
				Name:    "student_program_year_level",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[3], StudentsColumns[4]},
			},
		},
	}
	// SubjectEntriesColumns holds the columns for the "subject_entries" table.
	SubjectEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "units", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(4,1)"}},
		{Name: "room", Type: field.TypeString, Nullable: true},
		{Name: "day", Type: field.TypeString, Nullable: true},
		{Name: "time_start", Type: field.TypeString, Nullable: true},
		{Name: "time_end", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeUUID},
	}
	// SubjectEntriesTable holds the schema information for the "subject_entries" table.
	SubjectEntriesTable = &schema.Table{
		Name:       "subject_entries",
		Columns:    SubjectEntriesColumns,
		PrimaryKey: []*schema.Column{SubjectEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subject_entries_students_subjects",
				Columns:    []*schema.Column{SubjectEntriesColumns[9]},
				RefColumns: []*schema.Column{StudentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subjectentry_student_id_code",
				Unique:  false,
				Columns: []*schema.Column{SubjectEntriesColumns[9], SubjectEntriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobsTable,
		GradeEntriesTable,
		GradeReportsTable,
		LoadEntriesTable,
		PersonnelTable,
		SourceFilesTable,
		StudentsTable,
		SubjectEntriesTable,
	}
)

func init() {
	ExtractJobsTable.ForeignKeys[0].RefTable = SourceFilesTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	GradeEntriesTable.ForeignKeys[0].RefTable = GradeReportsTable
	GradeEntriesTable.Annotation = &entsql.Annotation{
		Table: "grade_entries",
	}
	GradeReportsTable.ForeignKeys[0].RefTable = StudentsTable
	GradeReportsTable.Annotation = &entsql.Annotation{
		Table: "grade_reports",
	}
	LoadEntriesTable.ForeignKeys[0].RefTable = PersonnelTable
	LoadEntriesTable.Annotation = &entsql.Annotation{
		Table: "load_entries",
	}
	PersonnelTable.Annotation = &entsql.Annotation{
		Table: "personnel",
	}
	SourceFilesTable.Annotation = &entsql.Annotation{
		Table: "source_files",
	}
	StudentsTable.Annotation = &entsql.Annotation{
		Table: "students",
	}
	SubjectEntriesTable.ForeignKeys[0].RefTable = StudentsTable
	SubjectEntriesTable.Annotation = &entsql.Annotation{
		Table: "subject_entries",
	}
}
