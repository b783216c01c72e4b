package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/workbook"
)

type fakeFiles struct {
	rows map[uuid.UUID]*ent.SourceFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	if row, ok := f.rows[id]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeFiles) GetByHash(context.Context, []byte) (*ent.SourceFile, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeFiles) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.SourceFile, error) {
	return nil, nil
}

func (f *fakeFiles) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.SourceFile, bool, error) {
	return nil, false, nil
}

type fakeJobs struct {
	trail map[uuid.UUID][]constants.JobStatus
	notes map[uuid.UUID]string
	docs  map[uuid.UUID]json.RawMessage
	texts map[uuid.UUID]string
	kinds map[uuid.UUID]constants.RecordKind
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		trail: map[uuid.UUID][]constants.JobStatus{},
		notes: map[uuid.UUID]string{},
		docs:  map[uuid.UUID]json.RawMessage{},
		texts: map[uuid.UUID]string{},
		kinds: map[uuid.UUID]constants.RecordKind{},
	}
}

func (f *fakeJobs) Start(_ context.Context, fileID uuid.UUID, format, _ string, status constants.JobStatus) (*ent.ExtractJob, error) {
	id := uuid.New()
	f.trail[id] = append(f.trail[id], status)
	return &ent.ExtractJob{ID: id, FileID: fileID, Format: format}, nil
}

func (f *fakeJobs) MarkRunning(_ context.Context, jobID uuid.UUID) error {
	f.trail[jobID] = append(f.trail[jobID], constants.JobStatusRunning)
	return nil
}

func (f *fakeJobs) MarkExtracted(_ context.Context, jobID uuid.UUID, kind constants.RecordKind, doc json.RawMessage, text string) error {
	f.trail[jobID] = append(f.trail[jobID], constants.JobStatusExtracted)
	f.kinds[jobID] = kind
	f.docs[jobID] = doc
	f.texts[jobID] = text
	return nil
}

func (f *fakeJobs) MarkPersisted(_ context.Context, jobID uuid.UUID) error {
	f.trail[jobID] = append(f.trail[jobID], constants.JobStatusPersisted)
	return nil
}

func (f *fakeJobs) MarkSkipped(_ context.Context, jobID uuid.UUID, reason string) error {
	f.trail[jobID] = append(f.trail[jobID], constants.JobStatusSkipped)
	f.notes[jobID] = reason
	return nil
}

func (f *fakeJobs) MarkFailed(_ context.Context, jobID uuid.UUID, message string) error {
	f.trail[jobID] = append(f.trail[jobID], constants.JobStatusFailed)
	f.notes[jobID] = message
	return nil
}

func (f *fakeJobs) ListRecent(context.Context, int) ([]*ent.ExtractJob, error) {
	return nil, nil
}

type fakeStudents struct {
	students []*entity.Student
	upserts  []*repository.UpsertStudentRequest
	replaced map[uuid.UUID][]*entity.SubjectEntry
}

func newFakeStudents(seed ...*entity.Student) *fakeStudents {
	return &fakeStudents{students: seed, replaced: map[uuid.UUID][]*entity.SubjectEntry{}}
}

func (f *fakeStudents) GetByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) FindByStudentNo(_ context.Context, no string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.StudentNo == no {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) FindByName(_ context.Context, name string) (*entity.Student, error) {
	for _, s := range f.students {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudents) SearchByName(_ context.Context, q string) ([]*entity.Student, error) {
	var out []*entity.Student
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudents) List(context.Context) ([]*entity.Student, error) {
	return f.students, nil
}

func (f *fakeStudents) Upsert(_ context.Context, req *repository.UpsertStudentRequest) (*entity.Student, error) {
	f.upserts = append(f.upserts, req)
	for _, s := range f.students {
		if req.StudentNo != "" && s.StudentNo == req.StudentNo {
			return s, nil
		}
	}
	s := &entity.Student{ID: uuid.New(), StudentNo: req.StudentNo, Name: req.Name}
	f.students = append(f.students, s)
	return s, nil
}

func (f *fakeStudents) ReplaceSubjects(_ context.Context, studentID uuid.UUID, rows []*entity.SubjectEntry) error {
	f.replaced[studentID] = rows
	return nil
}

func (f *fakeStudents) SubjectsFor(_ context.Context, studentID uuid.UUID) ([]*entity.SubjectEntry, error) {
	return f.replaced[studentID], nil
}

type fakePersonnel struct {
	people   []*entity.Personnel
	upserts  []*repository.UpsertPersonnelRequest
	replaced map[uuid.UUID][]*entity.LoadEntry
}

func newFakePersonnel(seed ...*entity.Personnel) *fakePersonnel {
	return &fakePersonnel{people: seed, replaced: map[uuid.UUID][]*entity.LoadEntry{}}
}

func (f *fakePersonnel) GetByID(_ context.Context, id uuid.UUID) (*entity.Personnel, error) {
	for _, p := range f.people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnel) FindByName(_ context.Context, name string) (*entity.Personnel, error) {
	for _, p := range f.people {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnel) SearchByName(_ context.Context, q string) ([]*entity.Personnel, error) {
	var out []*entity.Personnel
	for _, p := range f.people {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnel) List(context.Context) ([]*entity.Personnel, error) {
	return f.people, nil
}

func (f *fakePersonnel) ListByDepartment(_ context.Context, dep string) ([]*entity.Personnel, error) {
	var out []*entity.Personnel
	for _, p := range f.people {
		if p.Department == dep {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnel) Upsert(_ context.Context, req *repository.UpsertPersonnelRequest) (*entity.Personnel, error) {
	f.upserts = append(f.upserts, req)
	for _, p := range f.people {
		if strings.EqualFold(p.Name, req.Name) && p.Variant == req.Variant {
			return p, nil
		}
	}
	p := &entity.Personnel{ID: uuid.New(), Name: req.Name, Variant: req.Variant, Department: req.Department}
	f.people = append(f.people, p)
	return p, nil
}

func (f *fakePersonnel) ReplaceLoads(_ context.Context, personnelID uuid.UUID, slots []*entity.LoadEntry) error {
	f.replaced[personnelID] = slots
	return nil
}

func (f *fakePersonnel) LoadsFor(_ context.Context, personnelID uuid.UUID) ([]*entity.LoadEntry, error) {
	return f.replaced[personnelID], nil
}

type fakeGrades struct {
	reports  []*entity.GradeReport
	upserts  []*repository.UpsertGradeReportRequest
	replaced map[uuid.UUID][]*entity.GradeEntry
}

func newFakeGrades() *fakeGrades {
	return &fakeGrades{replaced: map[uuid.UUID][]*entity.GradeEntry{}}
}

func (f *fakeGrades) UpsertReport(_ context.Context, req *repository.UpsertGradeReportRequest) (*entity.GradeReport, error) {
	f.upserts = append(f.upserts, req)
	rep := &entity.GradeReport{ID: uuid.New(), StudentID: req.StudentID, Semester: req.Semester, SchoolYear: req.SchoolYear, GWA: req.GWA}
	f.reports = append(f.reports, rep)
	return rep, nil
}

func (f *fakeGrades) ReplaceEntries(_ context.Context, reportID uuid.UUID, rows []*entity.GradeEntry) error {
	f.replaced[reportID] = rows
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
	return f.replaced[reportID], nil
}

type testEnv struct {
	proc      *Processor
	files     *fakeFiles
	jobs      *fakeJobs
	students  *fakeStudents
	personnel *fakePersonnel
	grades    *fakeGrades
}

func newTestEnv(students *fakeStudents, personnel *fakePersonnel) *testEnv {
	if students == nil {
		students = newFakeStudents()
	}
	if personnel == nil {
		personnel = newFakePersonnel()
	}
	env := &testEnv{
		files:     &fakeFiles{rows: map[uuid.UUID]*ent.SourceFile{}},
		jobs:      newFakeJobs(),
		students:  students,
		personnel: personnel,
		grades:    newFakeGrades(),
	}
	env.proc = NewProcessor(nil, env.files, env.jobs, env.students, env.personnel, env.grades)
	return env
}

func xlsxFile(name string) *ent.SourceFile {
	return &ent.SourceFile{ID: uuid.New(), SourcePath: "/drop/" + name, Filename: name, FileExt: "xlsx"}
}

func corSheet() workbook.Sheet {
	return workbook.Sheet{Name: "COR", Grid: grid.New([][]string{
		{"COLEGIO DE SAN PEDRO"},
		{"CERTIFICATE OF REGISTRATION"},
		{"Student No.", "2021-00123", "", "Semester", "1st Semester"},
		{"Student Name", "DELA CRUZ, JUAN", "", "School Year", "2024-2025"},
		{"Course", "Bachelor of Science in Information Technology", "", "Year Level", "2nd Year"},
		{"Section", "2 - A"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Day", "Time Start", "Time End", "Room"},
		{"IT 201", "Data Structures", "3", "MWF", "8:00 AM", "9:00 AM", "204"},
		{"IT 202", "Web Development", "3", "TTH", "10:00 AM", "12:00 PM", "CL1"},
		{"GE 105", "Purposive Communication", "3", "MWF", "10:00 AM", "11:00 AM", "301"},
		{"TOTAL UNITS", "", "9"},
	})}
}

func gradesSheet() workbook.Sheet {
	return workbook.Sheet{Name: "Grades", Grid: grid.New([][]string{
		{"REPORT OF GRADES"},
		{"Student Name:", "SANTOS, MARIA"},
		{"Student No:", "2020-01411"},
		{""},
		{"Subject Code", "Descriptive Title", "Units", "Final Grade", "Remarks"},
		{"CS 301", "Algorithms", "3", "1.50", "Passed"},
		{"CS 302", "Operating Systems", "3", "2.00", "Passed"},
		{"NSTP 101", "Civic Welfare Training", "3", "INC", "Incomplete"},
	})}
}

func loadSheet() workbook.Sheet {
	return workbook.Sheet{Name: "Load", Grid: grid.New([][]string{
		{"FACULTY SCHEDULE"},
		{"Name:", "CRUZ, ROBERTO"},
		{"Department:", "Computer Studies"},
		{""},
		{"7:30 - 9:00", "CS 101"},
		{"Time", "Monday", "Tuesday", "Wednesday"},
		{"7:30 - 9:00", "BSCS 1-A", "", "BSCS 1-A"},
		{"1:00 - 2:30", "", "BSIT 2-B", ""},
	})}
}

func TestProcessSheetPersistsScheduleRecord(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("bsit-2a-cor.xlsx")

	out := env.proc.processSheet(context.Background(), file, corSheet())

	assert.Equal(t, constants.JobStatusPersisted, out.Status)
	assert.Equal(t, constants.KindSchedule, out.Kind)
	assert.Empty(t, out.Err)

	require.Len(t, env.students.upserts, 1)
	up := env.students.upserts[0]
	assert.Equal(t, "Dela Cruz, Juan", up.Name)
	assert.Equal(t, "2021-00123", up.StudentNo)
	assert.Equal(t, "BSIT", up.Program)
	assert.Equal(t, "1st Semester", up.Semester)
	assert.Equal(t, "2024-2025", up.SchoolYear)
	assert.Contains(t, up.RecordText, "CERTIFICATE OF REGISTRATION")

	require.Len(t, env.students.students, 1)
	rows := env.students.replaced[env.students.students[0].ID]
	require.Len(t, rows, 3)
	assert.Equal(t, "IT 201", rows[0].Code)
	assert.Equal(t, "Data Structures", rows[0].Title)
	assert.Equal(t, "MWF", rows[0].Day)
	assert.Equal(t, "8:00 AM", rows[0].TimeStart)
	require.NotNil(t, rows[0].Units)
	assert.InDelta(t, 3.0, *rows[0].Units, 0.001)

	// full audit trail on the job row
	assert.Equal(t, []constants.JobStatus{
		constants.JobStatusQueued,
		constants.JobStatusRunning,
		constants.JobStatusExtracted,
		constants.JobStatusPersisted,
	}, env.jobs.trail[out.JobID])
	assert.Equal(t, constants.KindSchedule, env.jobs.kinds[out.JobID])
	assert.NotEmpty(t, env.jobs.docs[out.JobID])
	assert.NotEmpty(t, env.jobs.texts[out.JobID])
}

func TestProcessSheetSkipsUnrecognizedSheet(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("notes.xlsx")
	sheet := workbook.Sheet{Name: "Sheet1", Grid: grid.New([][]string{
		{"annual fiesta committee"},
		{"snacks", "budget"},
	})}

	out := env.proc.processSheet(context.Background(), file, sheet)

	assert.Equal(t, constants.JobStatusSkipped, out.Status)
	assert.Equal(t, "no record family detected", out.Err)
	assert.Empty(t, env.students.upserts)
	assert.Equal(t, []constants.JobStatus{
		constants.JobStatusQueued,
		constants.JobStatusRunning,
		constants.JobStatusSkipped,
	}, env.jobs.trail[out.JobID])
}

func TestProcessSheetSkipsSheetWithoutIdentity(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("santos.xlsx")
	sheet := workbook.Sheet{Name: "Grades", Grid: grid.New([][]string{
		{"REPORT OF GRADES"},
		{"Subject Code", "Descriptive Title", "Units", "Final Grade", "Remarks"},
		{"CS 301", "Algorithms", "3", "1.50", "Passed"},
	})}

	out := env.proc.processSheet(context.Background(), file, sheet)

	assert.Equal(t, constants.JobStatusSkipped, out.Status)
	assert.Equal(t, constants.KindGrades, out.Kind)
	assert.Contains(t, out.Err, "no identity field resolved")
	assert.Empty(t, env.grades.upserts)
}

func TestProcessSheetSkipsGradesWithoutStudent(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("santos-grades.xlsx")

	out := env.proc.processSheet(context.Background(), file, gradesSheet())

	assert.Equal(t, constants.JobStatusSkipped, out.Status)
	assert.Contains(t, out.Err, "student not found")
	assert.Empty(t, env.grades.upserts)
	assert.Empty(t, env.students.upserts)

	assert.Equal(t, []constants.JobStatus{
		constants.JobStatusQueued,
		constants.JobStatusRunning,
		constants.JobStatusExtracted,
		constants.JobStatusSkipped,
	}, env.jobs.trail[out.JobID])
	// the extracted record stays on the job row for a later retry
	assert.NotEmpty(t, env.jobs.docs[out.JobID])
}

func TestProcessSheetPersistsGradesForKnownStudent(t *testing.T) {
	maria := &entity.Student{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria"}
	env := newTestEnv(newFakeStudents(maria), nil)
	file := xlsxFile("santos-grades.xlsx")

	out := env.proc.processSheet(context.Background(), file, gradesSheet())

	assert.Equal(t, constants.JobStatusPersisted, out.Status)
	assert.Equal(t, constants.KindGrades, out.Kind)

	require.Len(t, env.grades.upserts, 1)
	rep := env.grades.upserts[0]
	assert.Equal(t, maria.ID, rep.StudentID)
	require.NotNil(t, rep.GWA)
	assert.InDelta(t, 1.75, *rep.GWA, 0.001)

	require.Len(t, env.grades.reports, 1)
	entries := env.grades.replaced[env.grades.reports[0].ID]
	require.Len(t, entries, 3)
	assert.Equal(t, "CS 301", entries[0].Code)
	assert.Equal(t, "1.50", entries[0].FinalGrade)
	assert.Equal(t, "INC", entries[2].FinalGrade)

	// grade sheets never create students
	assert.Empty(t, env.students.upserts)
}

func TestProcessSheetPersistsTeachingProfile(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("faculty-ccs-reyes.xlsx")
	sheet := workbook.Sheet{Name: "Profile", Grid: grid.New([][]string{
		{"TEACHING PERSONNEL PROFILE"},
		{"Name:", "REYES, ANA MARIE"},
		{"Position:", "Instructor I"},
		{"Email:", "anamarie.reyes@school.edu.ph"},
		{"Contact No:", "0917-123-4567"},
		{"SSS No:", "3456789012"},
		{"PhilHealth No:", "123456789012"},
		{"Date of Birth:", "03/14/1990"},
		{"Employment Status:", "Full-Time"},
	})}

	out := env.proc.processSheet(context.Background(), file, sheet)

	assert.Equal(t, constants.JobStatusPersisted, out.Status)
	assert.Equal(t, constants.KindTeaching, out.Kind)

	require.Len(t, env.personnel.upserts, 1)
	up := env.personnel.upserts[0]
	assert.Equal(t, "Reyes, Ana Marie", up.Name)
	assert.Equal(t, string(constants.KindTeaching), up.Variant)
	assert.Equal(t, "Instructor I", up.Position)
	assert.Equal(t, string(constants.ComputerStudies), up.Department)
	assert.Equal(t, "anamarie.reyes@school.edu.ph", up.Email)
	assert.Equal(t, "09171234567", up.Phone)
	assert.Equal(t, "Full-Time", up.Employment)
}

func TestProcessSheetCreatesStubForUnknownTimetableName(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("cruz-load.xlsx")

	out := env.proc.processSheet(context.Background(), file, loadSheet())

	assert.Equal(t, constants.JobStatusPersisted, out.Status)
	assert.Equal(t, constants.KindPersonnelSchedule, out.Kind)

	// nobody named Cruz yet, so a stub teaching row anchors the slots
	require.Len(t, env.personnel.upserts, 1)
	assert.Equal(t, "Cruz, Roberto", env.personnel.upserts[0].Name)
	assert.Equal(t, string(constants.KindTeaching), env.personnel.upserts[0].Variant)
	assert.Equal(t, "Computer Studies", env.personnel.upserts[0].Department)

	require.Len(t, env.personnel.people, 1)
	slots := env.personnel.replaced[env.personnel.people[0].ID]
	require.Len(t, slots, 3)
	assert.Equal(t, "Monday", slots[0].Day)
	assert.Equal(t, "CS 101", slots[0].Subject)
	assert.Equal(t, "7:30 AM", slots[0].TimeStart)
	assert.Equal(t, "1:00 PM", slots[2].TimeStart)
	assert.Equal(t, "TBA-1:00 PM", slots[2].Subject)
}

func TestProcessSheetAttachesTimetableToExistingStaff(t *testing.T) {
	registrar := &entity.Personnel{ID: uuid.New(), Name: "Cruz, Roberto", Variant: string(constants.KindNonTeaching)}
	env := newTestEnv(nil, newFakePersonnel(registrar))
	file := xlsxFile("cruz-load.xlsx")

	out := env.proc.processSheet(context.Background(), file, loadSheet())

	assert.Equal(t, constants.JobStatusPersisted, out.Status)
	// no duplicate row is created for the other variant
	assert.Empty(t, env.personnel.upserts)
	assert.Len(t, env.personnel.replaced[registrar.ID], 3)
}

func TestProcessFileUnknownFile(t *testing.T) {
	env := newTestEnv(nil, nil)

	_, err := env.proc.ProcessFile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get file")
}

func TestProcessFileLoadFailureLeavesTrail(t *testing.T) {
	env := newTestEnv(nil, nil)
	file := xlsxFile("gone.xlsx")
	file.SourcePath = "/nonexistent/gone.xlsx"
	env.files.rows[file.ID] = file

	res, err := env.proc.ProcessFile(context.Background(), file.ID)
	require.Error(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, constants.JobStatusFailed, res.Outcomes[0].Status)
	assert.Equal(t, 0, res.Persisted())

	trail := env.jobs.trail[res.Outcomes[0].JobID]
	require.NotEmpty(t, trail)
	assert.Equal(t, constants.JobStatusFailed, trail[len(trail)-1])
	assert.Contains(t, env.jobs.notes[res.Outcomes[0].JobID], "load workbook")
}

func TestParseDecimal(t *testing.T) {
	assert.Nil(t, parseDecimal(""))
	assert.Nil(t, parseDecimal("three"))

	v := parseDecimal("1.75")
	require.NotNil(t, v)
	assert.InDelta(t, 1.75, *v, 0.0001)
}
