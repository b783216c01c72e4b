package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
)

type fakeStudents struct {
	students []*entity.Student
}

func (f *fakeStudents) GetByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) FindByStudentNo(context.Context, string) (*entity.Student, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) FindByName(context.Context, string) (*entity.Student, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) SearchByName(context.Context, string) ([]*entity.Student, error) {
	return nil, nil
}

func (f *fakeStudents) List(context.Context) ([]*entity.Student, error) {
	return f.students, nil
}

func (f *fakeStudents) Upsert(context.Context, *repository.UpsertStudentRequest) (*entity.Student, error) {
	return nil, nil
}

func (f *fakeStudents) ReplaceSubjects(context.Context, uuid.UUID, []*entity.SubjectEntry) error {
	return nil
}

func (f *fakeStudents) SubjectsFor(context.Context, uuid.UUID) ([]*entity.SubjectEntry, error) {
	return nil, nil
}

type fakePersonnel struct {
	people       []*entity.Personnel
	byDepartment map[string][]*entity.Personnel
	listedAll    bool
	filtered     string
}

func (f *fakePersonnel) GetByID(context.Context, uuid.UUID) (*entity.Personnel, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnel) FindByName(context.Context, string) (*entity.Personnel, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnel) SearchByName(context.Context, string) ([]*entity.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnel) List(context.Context) ([]*entity.Personnel, error) {
	f.listedAll = true
	return f.people, nil
}

func (f *fakePersonnel) ListByDepartment(_ context.Context, department string) ([]*entity.Personnel, error) {
	f.filtered = department
	return f.byDepartment[department], nil
}

func (f *fakePersonnel) Upsert(context.Context, *repository.UpsertPersonnelRequest) (*entity.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnel) ReplaceLoads(context.Context, uuid.UUID, []*entity.LoadEntry) error {
	return nil
}

func (f *fakePersonnel) LoadsFor(context.Context, uuid.UUID) ([]*entity.LoadEntry, error) {
	return nil, nil
}

type fakeGrades struct {
	reports []*entity.GradeReport
	entries map[uuid.UUID][]*entity.GradeEntry
}

func (f *fakeGrades) UpsertReport(context.Context, *repository.UpsertGradeReportRequest) (*entity.GradeReport, error) {
	return nil, nil
}

func (f *fakeGrades) ReplaceEntries(context.Context, uuid.UUID, []*entity.GradeEntry) error {
	return nil
}

func (f *fakeGrades) ReportsFor(_ context.Context, studentID uuid.UUID) ([]*entity.GradeReport, error) {
	var out []*entity.GradeReport
	for _, r := range f.reports {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGrades) EntriesFor(_ context.Context, reportID uuid.UUID) ([]*entity.GradeEntry, error) {
	return f.entries[reportID], nil
}

func sheetRows(t *testing.T, b []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExportStudentsXLSX(t *testing.T) {
	students := &fakeStudents{students: []*entity.Student{
		{ID: uuid.New(), StudentNo: "2021-00123", Name: "Dela Cruz, Juan", Program: "BSIT", YearLevel: "2", Section: "A"},
		{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria", Program: "BSCS", YearLevel: "3", Section: "B"},
	}}
	svc := NewService(students, &fakePersonnel{}, &fakeGrades{}, nil)

	b, err := svc.ExportStudentsXLSX(context.Background())
	require.NoError(t, err)

	rows := sheetRows(t, b, "Students")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Student No", "Name", "Program", "Year Level", "Section", "Semester", "School Year", "Adviser"}, rows[0])
	assert.Equal(t, "2021-00123", rows[1][0])
	assert.Equal(t, "Dela Cruz, Juan", rows[1][1])
	assert.Equal(t, "BSIT", rows[1][2])
	assert.Equal(t, "Santos, Maria", rows[2][1])
}

func TestExportPersonnelXLSXAll(t *testing.T) {
	personnel := &fakePersonnel{people: []*entity.Personnel{
		{ID: uuid.New(), Name: "Reyes, Ana Marie", Variant: "TEACHING", Position: "Instructor I", Department: "Computer Studies"},
	}}
	svc := NewService(&fakeStudents{}, personnel, &fakeGrades{}, nil)

	b, err := svc.ExportPersonnelXLSX(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, personnel.listedAll)

	rows := sheetRows(t, b, "Personnel")
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Reyes, Ana Marie", rows[1][0])
	assert.Equal(t, "TEACHING", rows[1][1])
}

func TestExportPersonnelXLSXByDepartment(t *testing.T) {
	personnel := &fakePersonnel{
		byDepartment: map[string][]*entity.Personnel{
			"Computer Studies": {
				{ID: uuid.New(), Name: "Cruz, Roberto", Variant: "TEACHING", Department: "Computer Studies"},
			},
		},
	}
	svc := NewService(&fakeStudents{}, personnel, &fakeGrades{}, nil)

	b, err := svc.ExportPersonnelXLSX(context.Background(), "Computer Studies")
	require.NoError(t, err)
	assert.Equal(t, "Computer Studies", personnel.filtered)
	assert.False(t, personnel.listedAll)

	rows := sheetRows(t, b, "Personnel")
	require.Len(t, rows, 2)
	assert.Equal(t, "Cruz, Roberto", rows[1][0])
}

func TestExportGradesXLSX(t *testing.T) {
	maria := &entity.Student{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria"}
	gwa := 1.75
	units := 3.0
	rep := &entity.GradeReport{ID: uuid.New(), StudentID: maria.ID, Semester: "1st Semester", SchoolYear: "2024-2025", GWA: &gwa}
	grades := &fakeGrades{
		reports: []*entity.GradeReport{rep},
		entries: map[uuid.UUID][]*entity.GradeEntry{
			rep.ID: {
				{Code: "CS 301", Title: "Algorithms", Units: &units, FinalGrade: "1.50", Remarks: "PASSED"},
				{Code: "CS 302", Title: "Operating Systems", Units: &units, FinalGrade: "2.00", Remarks: "PASSED"},
			},
		},
	}
	svc := NewService(&fakeStudents{students: []*entity.Student{maria}}, &fakePersonnel{}, grades, nil)

	b, err := svc.ExportGradesXLSX(context.Background(), maria.ID)
	require.NoError(t, err)

	rows := sheetRows(t, b, "Grades")
	require.Len(t, rows, 4) // header, two subjects, GWA trailer
	assert.Equal(t, "Semester", rows[0][0])
	assert.Equal(t, "CS 301", rows[1][2])
	assert.Equal(t, "1.50", rows[1][5])
	assert.Equal(t, "CS 302", rows[2][2])

	require.GreaterOrEqual(t, len(rows[3]), 6)
	assert.Equal(t, "GWA", rows[3][2])
	assert.Equal(t, "1.75", rows[3][5])
}

func TestExportGradesXLSXUnknownStudent(t *testing.T) {
	svc := NewService(&fakeStudents{}, &fakePersonnel{}, &fakeGrades{}, nil)

	_, err := svc.ExportGradesXLSX(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get student")
}
