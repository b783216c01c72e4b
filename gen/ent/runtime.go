// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/db/ent/schema"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/extractjob"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/sourcefile"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[2].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescRecordKind is the schema descriptor for record_kind field.
	extractjobDescRecordKind := extractjobFields[4].Descriptor()
	// extractjob.RecordKindValidator is a validator for the "record_kind" field. It is called by the builders before save.
	extractjob.RecordKindValidator = extractjobDescRecordKind.Validators[0].(func(string) error)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[5].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[6].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	gradeentryFields := schema.GradeEntry{}.Fields()
	_ = gradeentryFields
	// gradeentryDescCode is the schema descriptor for code field.
	gradeentryDescCode := gradeentryFields[2].Descriptor()
	// gradeentry.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	gradeentry.CodeValidator = gradeentryDescCode.Validators[0].(func(string) error)
	// gradeentryDescCreatedAt is the schema descriptor for created_at field.
	gradeentryDescCreatedAt := gradeentryFields[7].Descriptor()
	// gradeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	gradeentry.DefaultCreatedAt = gradeentryDescCreatedAt.Default.(func() time.Time)
	// gradeentryDescID is the schema descriptor for id field.
	gradeentryDescID := gradeentryFields[0].Descriptor()
	// gradeentry.DefaultID holds the default value on creation for the id field.
	gradeentry.DefaultID = gradeentryDescID.Default.(func() uuid.UUID)
	gradereportFields := schema.GradeReport{}.Fields()
	_ = gradereportFields
	// gradereportDescCreatedAt is the schema descriptor for created_at field.
	gradereportDescCreatedAt := gradereportFields[6].Descriptor()
	// gradereport.DefaultCreatedAt holds the default value on creation for the created_at field.
	gradereport.DefaultCreatedAt = gradereportDescCreatedAt.Default.(func() time.Time)
	// gradereportDescUpdatedAt is the schema descriptor for updated_at field.
	gradereportDescUpdatedAt := gradereportFields[7].Descriptor()
	// gradereport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gradereport.DefaultUpdatedAt = gradereportDescUpdatedAt.Default.(func() time.Time)
	// gradereport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gradereport.UpdateDefaultUpdatedAt = gradereportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gradereportDescID is the schema descriptor for id field.
	gradereportDescID := gradereportFields[0].Descriptor()
	// gradereport.DefaultID holds the default value on creation for the id field.
	gradereport.DefaultID = gradereportDescID.Default.(func() uuid.UUID)
	loadentryFields := schema.LoadEntry{}.Fields()
	_ = loadentryFields
	// loadentryDescDay is the schema descriptor for day field.
	loadentryDescDay := loadentryFields[2].Descriptor()
	// loadentry.DayValidator is a validator for the "day" field. It is called by the builders before save.
	loadentry.DayValidator = loadentryDescDay.Validators[0].(func(string) error)
	// loadentryDescTimeStart is the schema descriptor for time_start field.
	loadentryDescTimeStart := loadentryFields[3].Descriptor()
	// loadentry.TimeStartValidator is a validator for the "time_start" field. It is called by the builders before save.
	loadentry.TimeStartValidator = loadentryDescTimeStart.Validators[0].(func(string) error)
	// loadentryDescCreatedAt is the schema descriptor for created_at field.
	loadentryDescCreatedAt := loadentryFields[7].Descriptor()
	// loadentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	loadentry.DefaultCreatedAt = loadentryDescCreatedAt.Default.(func() time.Time)
	// loadentryDescID is the schema descriptor for id field.
	loadentryDescID := loadentryFields[0].Descriptor()
	// loadentry.DefaultID holds the default value on creation for the id field.
	loadentry.DefaultID = loadentryDescID.Default.(func() uuid.UUID)
	personnelFields := schema.Personnel{}.Fields()
	_ = personnelFields
	// personnelDescName is the schema descriptor for name field.
	personnelDescName := personnelFields[1].Descriptor()
	// personnel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	personnel.NameValidator = personnelDescName.Validators[0].(func(string) error)
	// personnelDescVariant is the schema descriptor for variant field.
	personnelDescVariant := personnelFields[2].Descriptor()
	// personnel.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	personnel.VariantValidator = func() func(string) error {
		validators := personnelDescVariant.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(variant string) error {
			for _, fn := range fns {
				if err := fn(variant); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personnelDescDepartment is the schema descriptor for department field.
	personnelDescDepartment := personnelFields[4].Descriptor()
	// personnel.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	personnel.DepartmentValidator = personnelDescDepartment.Validators[0].(func(string) error)
	// personnelDescCreatedAt is the schema descriptor for created_at field.
	personnelDescCreatedAt := personnelFields[13].Descriptor()
	// personnel.DefaultCreatedAt holds the default value on creation for the created_at field.
	personnel.DefaultCreatedAt = personnelDescCreatedAt.Default.(func() time.Time)
	// personnelDescUpdatedAt is the schema descriptor for updated_at field.
	personnelDescUpdatedAt := personnelFields[14].Descriptor()
	// personnel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	personnel.DefaultUpdatedAt = personnelDescUpdatedAt.Default.(func() time.Time)
	// personnel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	personnel.UpdateDefaultUpdatedAt = personnelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personnelDescID is the schema descriptor for id field.
	personnelDescID := personnelFields[0].Descriptor()
	// personnel.DefaultID holds the default value on creation for the id field.
	personnel.DefaultID = personnelDescID.Default.(func() uuid.UUID)
	sourcefileFields := schema.SourceFile{}.Fields()
	_ = sourcefileFields
	// sourcefileDescSourcePath is the schema descriptor for source_path field.
	sourcefileDescSourcePath := sourcefileFields[1].Descriptor()
	// sourcefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	sourcefile.SourcePathValidator = sourcefileDescSourcePath.Validators[0].(func(string) error)
	// sourcefileDescContentHash is the schema descriptor for content_hash field.
	sourcefileDescContentHash := sourcefileFields[2].Descriptor()
	// sourcefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sourcefile.ContentHashValidator = sourcefileDescContentHash.Validators[0].(func([]byte) error)
	// sourcefileDescFilename is the schema descriptor for filename field.
	sourcefileDescFilename := sourcefileFields[3].Descriptor()
	// sourcefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourcefile.FilenameValidator = sourcefileDescFilename.Validators[0].(func(string) error)
	// sourcefileDescFileExt is the schema descriptor for file_ext field.
	sourcefileDescFileExt := sourcefileFields[4].Descriptor()
	// sourcefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	sourcefile.FileExtValidator = sourcefileDescFileExt.Validators[0].(func(string) error)
	// sourcefileDescFileSize is the schema descriptor for file_size field.
	sourcefileDescFileSize := sourcefileFields[5].Descriptor()
	// sourcefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourcefile.FileSizeValidator = sourcefileDescFileSize.Validators[0].(func(int) error)
	// sourcefileDescUploadedAt is the schema descriptor for uploaded_at field.
	sourcefileDescUploadedAt := sourcefileFields[6].Descriptor()
	// sourcefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourcefile.DefaultUploadedAt = sourcefileDescUploadedAt.Default.(func() time.Time)
	// sourcefileDescID is the schema descriptor for id field.
	sourcefileDescID := sourcefileFields[0].Descriptor()
	// sourcefile.DefaultID holds the default value on creation for the id field.
	sourcefile.DefaultID = sourcefileDescID.Default.(func() uuid.UUID)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[2].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[10].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
	// studentDescUpdatedAt is the schema descriptor for updated_at field.
	studentDescUpdatedAt := studentFields[11].Descriptor()
	// student.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	student.DefaultUpdatedAt = studentDescUpdatedAt.Default.(func() time.Time)
	// student.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	student.UpdateDefaultUpdatedAt = studentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studentDescID is the schema descriptor for id field.
	studentDescID := studentFields[0].Descriptor()
	// student.DefaultID holds the default value on creation for the id field.
	student.DefaultID = studentDescID.Default.(func() uuid.UUID)
	subjectentryFields := schema.SubjectEntry{}.Fields()
	_ = subjectentryFields
	// subjectentryDescCode is the schema descriptor for code field.
	subjectentryDescCode := subjectentryFields[2].Descriptor()
	// subjectentry.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	subjectentry.CodeValidator = subjectentryDescCode.Validators[0].(func(string) error)
	// subjectentryDescCreatedAt is the schema descriptor for created_at field.
	subjectentryDescCreatedAt := subjectentryFields[9].Descriptor()
	// subjectentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	subjectentry.DefaultCreatedAt = subjectentryDescCreatedAt.Default.(func() time.Time)
	// subjectentryDescID is the schema descriptor for id field.
	subjectentryDescID := subjectentryFields[0].Descriptor()
	// subjectentry.DefaultID holds the default value on creation for the id field.
	subjectentry.DefaultID = subjectentryDescID.Default.(func() uuid.UUID)
}
