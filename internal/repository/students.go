package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	entstudent "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	entsubject "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

// UpsertStudentRequest carries the scalar fields of a registration record.
// Empty values leave the stored column untouched on update, so a grade
// sheet never blanks out what a registration sheet filled in.
type UpsertStudentRequest struct {
	StudentNo  string
	Name       string
	Program    string
	YearLevel  string
	Section    string
	Semester   string
	SchoolYear string
	Adviser    string
	RecordText string
}

type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindByStudentNo(ctx context.Context, studentNo string) (*entity.Student, error)
	FindByName(ctx context.Context, name string) (*entity.Student, error)
	SearchByName(ctx context.Context, q string) ([]*entity.Student, error)
	List(ctx context.Context) ([]*entity.Student, error)
	Upsert(ctx context.Context, req *UpsertStudentRequest) (*entity.Student, error)
	ReplaceSubjects(ctx context.Context, studentID uuid.UUID, rows []*entity.SubjectEntry) error
	SubjectsFor(ctx context.Context, studentID uuid.UUID) ([]*entity.SubjectEntry, error)
}

type studentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStudentRepository(client *ent.Client, logger *slog.Logger) StudentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &studentRepository{
		client: client,
		logger: logger,
	}
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	row, err := r.client.Student.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToStudent(row), nil
}

func (r *studentRepository) FindByStudentNo(ctx context.Context, studentNo string) (*entity.Student, error) {
	row, err := r.client.Student.Query().
		Where(entstudent.StudentNo(studentNo)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToStudent(row), nil
}

// FindByName matches the full name case-insensitively and returns the
// oldest row when several students share it.
func (r *studentRepository) FindByName(ctx context.Context, name string) (*entity.Student, error) {
	row, err := r.client.Student.Query().
		Where(entstudent.NameEqualFold(name)).
		Order(entstudent.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToStudent(row), nil
}

func (r *studentRepository) SearchByName(ctx context.Context, q string) ([]*entity.Student, error) {
	rows, err := r.client.Student.Query().
		Where(entstudent.NameContainsFold(q)).
		Order(entstudent.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search students", "query", q, "error", err)
		return nil, err
	}
	return toStudents(rows), nil
}

func (r *studentRepository) List(ctx context.Context) ([]*entity.Student, error) {
	rows, err := r.client.Student.Query().Order(entstudent.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list students", "error", err)
		return nil, err
	}
	return toStudents(rows), nil
}

func (r *studentRepository) Upsert(ctx context.Context, req *UpsertStudentRequest) (*entity.Student, error) {
	existing, err := r.findForUpsert(ctx, req)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("student lookup failed", "student_no", req.StudentNo, "name", req.Name, "error", err)
		return nil, err
	}

	if existing == nil {
		row, err := r.client.Student.Create().
			SetName(req.Name).
			SetNillableStudentNo(nilIfEmpty(req.StudentNo)).
			SetNillableProgram(nilIfEmpty(req.Program)).
			SetNillableYearLevel(nilIfEmpty(req.YearLevel)).
			SetNillableSection(nilIfEmpty(req.Section)).
			SetNillableSemester(nilIfEmpty(req.Semester)).
			SetNillableSchoolYear(nilIfEmpty(req.SchoolYear)).
			SetNillableAdviser(nilIfEmpty(req.Adviser)).
			SetNillableRecordText(nilIfEmpty(req.RecordText)).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create student", "student_no", req.StudentNo, "name", req.Name, "error", err)
			return nil, err
		}
		r.logger.Info("student created", "student_id", row.ID, "student_no", req.StudentNo, "name", req.Name)
		return utils.ToStudent(row), nil
	}

	upd := r.client.Student.UpdateOneID(existing.ID).
		SetNillableStudentNo(nilIfEmpty(req.StudentNo)).
		SetNillableProgram(nilIfEmpty(req.Program)).
		SetNillableYearLevel(nilIfEmpty(req.YearLevel)).
		SetNillableSection(nilIfEmpty(req.Section)).
		SetNillableSemester(nilIfEmpty(req.Semester)).
		SetNillableSchoolYear(nilIfEmpty(req.SchoolYear)).
		SetNillableAdviser(nilIfEmpty(req.Adviser)).
		SetNillableRecordText(nilIfEmpty(req.RecordText))
	if req.Name != "" {
		upd = upd.SetName(req.Name)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update student", "student_id", existing.ID, "error", err)
		return nil, err
	}
	return utils.ToStudent(row), nil
}

// findForUpsert prefers the student number; name is the fallback key.
func (r *studentRepository) findForUpsert(ctx context.Context, req *UpsertStudentRequest) (*entity.Student, error) {
	if req.StudentNo != "" {
		s, err := r.FindByStudentNo(ctx, req.StudentNo)
		if err == nil {
			return s, nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}
	if req.Name == "" {
		return nil, nil
	}
	s, err := r.FindByName(ctx, req.Name)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) ReplaceSubjects(ctx context.Context, studentID uuid.UUID, rows []*entity.SubjectEntry) error {
	if _, err := r.client.SubjectEntry.Delete().
		Where(entsubject.StudentID(studentID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear subject entries", "student_id", studentID, "error", err)
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	bulk := make([]*ent.SubjectEntryCreate, len(rows))
	for i, row := range rows {
		bulk[i] = r.client.SubjectEntry.Create().
			SetStudentID(studentID).
			SetCode(row.Code).
			SetTitle(row.Title).
			SetNillableUnits(row.Units).
			SetRoom(row.Room).
			SetDay(row.Day).
			SetTimeStart(row.TimeStart).
			SetTimeEnd(row.TimeEnd)
	}
	if _, err := r.client.SubjectEntry.CreateBulk(bulk...).Save(ctx); err != nil {
		r.logger.Error("failed to insert subject entries", "student_id", studentID, "count", len(rows), "error", err)
		return err
	}
	return nil
}

func (r *studentRepository) SubjectsFor(ctx context.Context, studentID uuid.UUID) ([]*entity.SubjectEntry, error) {
	rows, err := r.client.SubjectEntry.Query().
		Where(entsubject.StudentID(studentID)).
		Order(entsubject.ByCreatedAt(), entsubject.ByCode()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list subject entries", "student_id", studentID, "error", err)
		return nil, err
	}
	result := make([]*entity.SubjectEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSubjectEntry(row)
	}
	return result, nil
}

func toStudents(rows []*ent.Student) []*entity.Student {
	result := make([]*entity.Student, len(rows))
	for i, row := range rows {
		result[i] = utils.ToStudent(row)
	}
	return result
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
