package query

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
)

type fakeStudentRepo struct {
	students []*entity.Student
	subjects map[uuid.UUID][]*entity.SubjectEntry
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudentRepo) FindByStudentNo(_ context.Context, no string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.StudentNo == no {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudentRepo) FindByName(_ context.Context, name string) (*entity.Student, error) {
	for _, s := range f.students {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeStudentRepo) SearchByName(_ context.Context, q string) ([]*entity.Student, error) {
	var out []*entity.Student
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) List(context.Context) ([]*entity.Student, error) {
	return f.students, nil
}

func (f *fakeStudentRepo) Upsert(context.Context, *repository.UpsertStudentRequest) (*entity.Student, error) {
	return nil, nil
}

func (f *fakeStudentRepo) ReplaceSubjects(context.Context, uuid.UUID, []*entity.SubjectEntry) error {
	return nil
}

func (f *fakeStudentRepo) SubjectsFor(_ context.Context, id uuid.UUID) ([]*entity.SubjectEntry, error) {
	return f.subjects[id], nil
}

type fakePersonnelRepo struct {
	people []*entity.Personnel
	loads  map[uuid.UUID][]*entity.LoadEntry
}

func (f *fakePersonnelRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Personnel, error) {
	for _, p := range f.people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnelRepo) FindByName(_ context.Context, name string) (*entity.Personnel, error) {
	for _, p := range f.people {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakePersonnelRepo) SearchByName(_ context.Context, q string) ([]*entity.Personnel, error) {
	var out []*entity.Personnel
	for _, p := range f.people {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnelRepo) List(context.Context) ([]*entity.Personnel, error) {
	return f.people, nil
}

func (f *fakePersonnelRepo) ListByDepartment(context.Context, string) ([]*entity.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnelRepo) Upsert(context.Context, *repository.UpsertPersonnelRequest) (*entity.Personnel, error) {
	return nil, nil
}

func (f *fakePersonnelRepo) ReplaceLoads(context.Context, uuid.UUID, []*entity.LoadEntry) error {
	return nil
}

func (f *fakePersonnelRepo) LoadsFor(_ context.Context, id uuid.UUID) ([]*entity.LoadEntry, error) {
	return f.loads[id], nil
}

type fakeGradeRepo struct {
	reports []*entity.GradeReport
	entries map[uuid.UUID][]*entity.GradeEntry
}

func (f *fakeGradeRepo) UpsertReport(context.Context, *repository.UpsertGradeReportRequest) (*entity.GradeReport, error) {
	return nil, nil
}

func (f *fakeGradeRepo) ReplaceEntries(context.Context, uuid.UUID, []*entity.GradeEntry) error {
	return nil
}

func (f *fakeGradeRepo) ReportsFor(_ context.Context, studentID uuid.UUID) ([]*entity.GradeReport, error) {
	var out []*entity.GradeReport
	for _, r := range f.reports {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) EntriesFor(_ context.Context, reportID uuid.UUID) ([]*entity.GradeEntry, error) {
	return f.entries[reportID], nil
}

func newTestRouter(students *fakeStudentRepo, personnel *fakePersonnelRepo, grades *fakeGradeRepo) *Router {
	if students == nil {
		students = &fakeStudentRepo{subjects: map[uuid.UUID][]*entity.SubjectEntry{}}
	}
	if personnel == nil {
		personnel = &fakePersonnelRepo{loads: map[uuid.UUID][]*entity.LoadEntry{}}
	}
	if grades == nil {
		grades = &fakeGradeRepo{entries: map[uuid.UUID][]*entity.GradeEntry{}}
	}
	return NewRouter(students, personnel, grades, nil)
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"What are the grades of Maria Santos?", IntentGrades},
		{"What is the GWA of 2020-01411?", IntentGrades},
		{"Show the class schedule of Dela Cruz", IntentSchedule},
		{"What room is IT 201 in?", IntentSchedule},
		{"Who is the instructor of CS 101?", IntentPersonnel},
		{"email of Reyes", IntentPersonnel},
		{"hello there", IntentUnknown},
		// a tie resolves in registry order, grades first
		{"grades and schedule of Maria", IntentGrades},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.question))
		})
	}
}

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		question string
		want     string
		isNo     bool
	}{
		{"What is the GWA of 2020-01411?", "2020-01411", true},
		{"lookup 202001411", "202001411", true},
		{"What are the grades of Maria Santos?", "maria santos", false},
		{"schedule of sir Roberto Cruz", "roberto cruz", false},
		{"Show me the schedule", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			got, isNo := ExtractSubject(tt.question)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isNo, isNo)
		})
	}
}

func TestSubjectQueries(t *testing.T) {
	assert.Equal(t, []string{"maria"}, subjectQueries("maria"))
	assert.Equal(t, []string{"maria santos", "maria", "santos"}, subjectQueries("maria santos"))
	// short connectives stay out of the retry list
	assert.Equal(t, []string{"juan de vera", "juan", "vera"}, subjectQueries("juan de vera"))
}

func TestAskNeedsSubject(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	ans, err := r.Ask(context.Background(), "Show me the schedule")
	require.NoError(t, err)
	assert.False(t, ans.Matched)
	assert.Equal(t, "Please name the student or staff member the question is about.", ans.Text)
}

func TestAskGradesByStudentNoUsesStoredText(t *testing.T) {
	maria := &entity.Student{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria"}
	stored := "REPORT OF GRADES\nGWA : 1.75"
	grades := &fakeGradeRepo{
		reports: []*entity.GradeReport{{ID: uuid.New(), StudentID: maria.ID, RecordText: stored}},
		entries: map[uuid.UUID][]*entity.GradeEntry{},
	}
	r := newTestRouter(&fakeStudentRepo{students: []*entity.Student{maria}}, nil, grades)

	ans, err := r.Ask(context.Background(), "What is the GWA of 2020-01411?")
	require.NoError(t, err)
	assert.Equal(t, IntentGrades, ans.Intent)
	assert.Equal(t, "2020-01411", ans.Subject)
	assert.True(t, ans.Matched)
	assert.Equal(t, stored, ans.Text)
}

func TestAskGradesRendersWhenNoStoredText(t *testing.T) {
	maria := &entity.Student{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria"}
	gwa := 1.75
	rep := &entity.GradeReport{ID: uuid.New(), StudentID: maria.ID, Semester: "1st Semester", SchoolYear: "2024-2025", GWA: &gwa}
	units := 3.0
	grades := &fakeGradeRepo{
		reports: []*entity.GradeReport{rep},
		entries: map[uuid.UUID][]*entity.GradeEntry{
			rep.ID: {
				{Code: "CS 301", Title: "Algorithms", Units: &units, FinalGrade: "1.50", Remarks: "PASSED"},
			},
		},
	}
	r := newTestRouter(&fakeStudentRepo{students: []*entity.Student{maria}}, nil, grades)

	ans, err := r.Ask(context.Background(), "grades of 2020-01411")
	require.NoError(t, err)
	assert.True(t, ans.Matched)
	assert.Contains(t, ans.Text, "REPORT OF GRADES")
	assert.Contains(t, ans.Text, "CS 301 | Algorithms | 3 | 1.50 | PASSED")
	assert.Contains(t, ans.Text, "GWA : 1.75")
}

func TestAskGradesNoneOnFile(t *testing.T) {
	maria := &entity.Student{ID: uuid.New(), StudentNo: "2020-01411", Name: "Santos, Maria"}
	r := newTestRouter(&fakeStudentRepo{students: []*entity.Student{maria}}, nil, nil)

	ans, err := r.Ask(context.Background(), "grades of 2020-01411")
	require.NoError(t, err)
	assert.False(t, ans.Matched)
	assert.Equal(t, "No grades on file for Santos, Maria.", ans.Text)
}

func TestAskScheduleMatchesGivenNameFirstOrder(t *testing.T) {
	// The row stores "Santos, Maria"; the question says "Maria Santos".
	maria := &entity.Student{ID: uuid.New(), Name: "Santos, Maria", RecordText: "STORED COR TEXT"}
	r := newTestRouter(&fakeStudentRepo{students: []*entity.Student{maria}}, nil, nil)

	ans, err := r.Ask(context.Background(), "What is the schedule of Maria Santos?")
	require.NoError(t, err)
	assert.Equal(t, IntentSchedule, ans.Intent)
	assert.True(t, ans.Matched)
	assert.Equal(t, "STORED COR TEXT", ans.Text)
}

func TestAskScheduleRendersWhenNoStoredText(t *testing.T) {
	juan := &entity.Student{ID: uuid.New(), StudentNo: "2021-00123", Name: "Dela Cruz, Juan", Program: "BSIT"}
	units := 3.0
	students := &fakeStudentRepo{
		students: []*entity.Student{juan},
		subjects: map[uuid.UUID][]*entity.SubjectEntry{
			juan.ID: {
				{Code: "IT 201", Title: "Data Structures", Units: &units, Day: "MWF", TimeStart: "8:00 AM", TimeEnd: "9:00 AM", Room: "204"},
			},
		},
	}
	r := newTestRouter(students, nil, nil)

	ans, err := r.Ask(context.Background(), "schedule of dela cruz")
	require.NoError(t, err)
	assert.True(t, ans.Matched)
	assert.Contains(t, ans.Text, "CERTIFICATE OF REGISTRATION")
	assert.Contains(t, ans.Text, "IT 201 | Data Structures | 3 | MWF | 8:00 AM | 9:00 AM | 204")
}

func TestAskScheduleUnknownStudent(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	ans, err := r.Ask(context.Background(), "schedule of juan")
	require.NoError(t, err)
	assert.False(t, ans.Matched)
	assert.Equal(t, `No student record found for "juan".`, ans.Text)
}

func TestAskPersonnelLoadRendersTimetable(t *testing.T) {
	cruz := &entity.Personnel{ID: uuid.New(), Name: "Cruz, Roberto", Variant: "TEACHING", Department: "Computer Studies"}
	personnel := &fakePersonnelRepo{
		people: []*entity.Personnel{cruz},
		loads: map[uuid.UUID][]*entity.LoadEntry{
			cruz.ID: {
				{Day: "Monday", TimeStart: "7:30 AM", TimeEnd: "9:00 AM", Subject: "CS 101", Section: "BSCS 1-A"},
			},
		},
	}
	r := newTestRouter(nil, personnel, nil)

	ans, err := r.Ask(context.Background(), "What is the load of Cruz?")
	require.NoError(t, err)
	assert.Equal(t, IntentPersonnel, ans.Intent)
	assert.True(t, ans.Matched)
	assert.Contains(t, ans.Text, "FACULTY SCHEDULE")
	assert.Contains(t, ans.Text, "Monday | 7:30 AM | 9:00 AM | CS 101 | BSCS 1-A")
}

func TestAskPersonnelPrefersStoredProfile(t *testing.T) {
	reyes := &entity.Personnel{ID: uuid.New(), Name: "Reyes, Ana Marie", Variant: "TEACHING", RecordText: "STORED PROFILE"}
	r := newTestRouter(nil, &fakePersonnelRepo{people: []*entity.Personnel{reyes}}, nil)

	ans, err := r.Ask(context.Background(), "email of Reyes")
	require.NoError(t, err)
	assert.True(t, ans.Matched)
	assert.Equal(t, "STORED PROFILE", ans.Text)
}

func TestAskPersonnelUnknownName(t *testing.T) {
	r := newTestRouter(nil, nil, nil)

	ans, err := r.Ask(context.Background(), "email of nobody")
	require.NoError(t, err)
	assert.False(t, ans.Matched)
	assert.Equal(t, `No personnel record found for "nobody".`, ans.Text)
}

func TestAskWithoutIntentTriesStudentThenPersonnel(t *testing.T) {
	juan := &entity.Student{ID: uuid.New(), Name: "Dela Cruz, Juan"}
	reyes := &entity.Personnel{ID: uuid.New(), Name: "Reyes, Ana Marie", Variant: "TEACHING"}
	r := newTestRouter(
		&fakeStudentRepo{students: []*entity.Student{juan}},
		&fakePersonnelRepo{people: []*entity.Personnel{reyes}},
		nil,
	)

	ans, err := r.Ask(context.Background(), "dela cruz")
	require.NoError(t, err)
	assert.True(t, ans.Matched)
	assert.Contains(t, ans.Text, "STUDENT RECORD")

	ans, err = r.Ask(context.Background(), "ana marie reyes")
	require.NoError(t, err)
	assert.True(t, ans.Matched)
	assert.Contains(t, ans.Text, "PERSONNEL RECORD")
}

func TestWantsLoads(t *testing.T) {
	assert.True(t, wantsLoads("teaching load of cruz"))
	assert.True(t, wantsLoads("What classes does Reyes handle?"))
	assert.False(t, wantsLoads("email of cruz"))
}
