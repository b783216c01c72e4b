package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/engine"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/records"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/workbook"
)

// ErrStudentNotFound marks a grades sheet whose student has no row yet.
// Grade sheets never create students; the sheet is skipped, not failed,
// and picks up once a registration sheet for the student arrives.
var ErrStudentNotFound = errors.New("student not found for grades record")

func (p *Processor) processSheet(ctx context.Context, file *ent.SourceFile, sheet workbook.Sheet) SheetOutcome {
	out := SheetOutcome{Sheet: sheet.Name}

	job, err := p.jobs.Start(ctx, file.ID, file.FileExt, sheet.Name, constants.JobStatusQueued)
	if err != nil {
		out.Status = constants.JobStatusFailed
		out.Err = err.Error()
		return out
	}
	out.JobID = job.ID
	_ = p.jobs.MarkRunning(ctx, job.ID)

	kind, ok := records.DetectKind(sheet.Grid, file.Filename)
	if !ok {
		// Cover pages and summary tabs land here; not an error.
		out.Status = constants.JobStatusSkipped
		out.Err = "no record family detected"
		_ = p.jobs.MarkSkipped(ctx, job.ID, out.Err)
		return out
	}
	out.Kind = kind

	cfg, ok := records.ForKind(kind)
	if !ok {
		out.Status = constants.JobStatusFailed
		out.Err = fmt.Sprintf("no extraction config for kind %s", kind)
		_ = p.jobs.MarkFailed(ctx, job.ID, out.Err)
		return out
	}

	rec, err := cfg.Extract(sheet.Grid, file.Filename)
	if err != nil {
		if errors.Is(err, engine.ErrNoIdentity) {
			out.Status = constants.JobStatusSkipped
			out.Err = err.Error()
			_ = p.jobs.MarkSkipped(ctx, job.ID, out.Err)
		} else {
			out.Status = constants.JobStatusFailed
			out.Err = err.Error()
			_ = p.jobs.MarkFailed(ctx, job.ID, out.Err)
		}
		return out
	}

	if err := records.ValidateRecord(rec); err != nil {
		out.Status = constants.JobStatusFailed
		out.Err = fmt.Sprintf("validate record: %v", err)
		_ = p.jobs.MarkFailed(ctx, job.ID, out.Err)
		return out
	}

	doc, err := records.MarshalRecord(rec)
	if err != nil {
		out.Status = constants.JobStatusFailed
		out.Err = fmt.Sprintf("marshal record: %v", err)
		_ = p.jobs.MarkFailed(ctx, job.ID, out.Err)
		return out
	}
	if err := p.jobs.MarkExtracted(ctx, job.ID, kind, doc, rec.Text); err != nil {
		out.Status = constants.JobStatusFailed
		out.Err = err.Error()
		return out
	}

	if err := p.persistRecord(ctx, kind, rec); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			out.Status = constants.JobStatusSkipped
			out.Err = err.Error()
			_ = p.jobs.MarkSkipped(ctx, job.ID, out.Err)
		} else {
			out.Status = constants.JobStatusFailed
			out.Err = err.Error()
			_ = p.jobs.MarkFailed(ctx, job.ID, out.Err)
		}
		return out
	}

	if err := p.jobs.MarkPersisted(ctx, job.ID); err != nil {
		out.Status = constants.JobStatusFailed
		out.Err = err.Error()
		return out
	}
	out.Status = constants.JobStatusPersisted
	return out
}

func (p *Processor) persistRecord(ctx context.Context, kind constants.RecordKind, rec *engine.Record) error {
	switch kind {
	case constants.KindSchedule:
		return p.persistSchedule(ctx, rec)
	case constants.KindGrades:
		return p.persistGrades(ctx, rec)
	case constants.KindTeaching, constants.KindNonTeaching:
		return p.persistProfile(ctx, kind, rec)
	case constants.KindPersonnelSchedule:
		return p.persistPersonnelSchedule(ctx, rec)
	default:
		return fmt.Errorf("no persistence for record kind %q", kind)
	}
}

func (p *Processor) persistSchedule(ctx context.Context, rec *engine.Record) error {
	student, err := p.students.Upsert(ctx, &repository.UpsertStudentRequest{
		StudentNo:  rec.Field(records.FieldStudentNo),
		Name:       rec.Field(records.FieldStudentName),
		Program:    rec.Field(records.FieldProgram),
		YearLevel:  rec.Field(records.FieldYearLevel),
		Section:    rec.Field(records.FieldSection),
		Semester:   rec.Field(records.FieldSemester),
		SchoolYear: rec.Field(records.FieldSchoolYear),
		Adviser:    rec.Field(records.FieldAdviser),
		RecordText: rec.Text,
	})
	if err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}

	rows := make([]*entity.SubjectEntry, 0, len(rec.Rows))
	for _, row := range rec.Rows {
		rows = append(rows, &entity.SubjectEntry{
			Code:      row[records.RoleCode],
			Title:     row[records.RoleTitle],
			Units:     parseDecimal(row[records.RoleUnits]),
			Room:      row[records.RoleRoom],
			Day:       row[engine.RoleDay],
			TimeStart: row[engine.RoleTimeStart],
			TimeEnd:   row[engine.RoleTimeEnd],
		})
	}
	if err := p.students.ReplaceSubjects(ctx, student.ID, rows); err != nil {
		return fmt.Errorf("replace subjects: %w", err)
	}
	return nil
}

func (p *Processor) persistGrades(ctx context.Context, rec *engine.Record) error {
	student, err := p.lookupStudent(ctx, rec)
	if err != nil {
		return err
	}

	// The computed summary beats a labeled GWA cell when both exist.
	gwa := rec.Summary[records.SummaryGWA]
	if gwa == "" {
		gwa = rec.Field(records.FieldGWA)
	}
	report, err := p.grades.UpsertReport(ctx, &repository.UpsertGradeReportRequest{
		StudentID:  student.ID,
		Semester:   rec.Field(records.FieldSemester),
		SchoolYear: rec.Field(records.FieldSchoolYear),
		GWA:        parseDecimal(gwa),
		RecordText: rec.Text,
	})
	if err != nil {
		return fmt.Errorf("upsert grade report: %w", err)
	}

	rows := make([]*entity.GradeEntry, 0, len(rec.Rows))
	for _, row := range rec.Rows {
		rows = append(rows, &entity.GradeEntry{
			Code:       row[records.RoleCode],
			Title:      row[records.RoleTitle],
			Units:      parseDecimal(row[records.RoleUnits]),
			FinalGrade: row[records.RoleFinalGrade],
			Remarks:    row[records.RoleRemarks],
		})
	}
	if err := p.grades.ReplaceEntries(ctx, report.ID, rows); err != nil {
		return fmt.Errorf("replace grade entries: %w", err)
	}
	return nil
}

// lookupStudent resolves the student a grades record references, by
// student number first and display name second.
func (p *Processor) lookupStudent(ctx context.Context, rec *engine.Record) (*entity.Student, error) {
	if no := rec.Field(records.FieldStudentNo); no != "" {
		s, err := p.students.FindByStudentNo(ctx, no)
		if err == nil {
			return s, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("find student by number: %w", err)
		}
	}
	if name := rec.Field(records.FieldStudentName); name != "" {
		s, err := p.students.FindByName(ctx, name)
		if err == nil {
			return s, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("find student by name: %w", err)
		}
	}
	ident := rec.Field(records.FieldStudentNo)
	if ident == "" {
		ident = rec.Field(records.FieldStudentName)
	}
	return nil, fmt.Errorf("%w: %q", ErrStudentNotFound, ident)
}

func (p *Processor) persistProfile(ctx context.Context, kind constants.RecordKind, rec *engine.Record) error {
	_, err := p.personnel.Upsert(ctx, &repository.UpsertPersonnelRequest{
		Name:         rec.Field(records.FieldName),
		Variant:      string(kind),
		Position:     rec.Field(records.FieldPosition),
		Department:   rec.Field(records.FieldDepartment),
		Email:        rec.Field(records.FieldEmail),
		Phone:        rec.Field(records.FieldPhone),
		SSSNo:        rec.Field(records.FieldSSS),
		PhilHealthNo: rec.Field(records.FieldPhilHealth),
		Birthdate:    rec.Field(records.FieldBirthdate),
		Address:      rec.Field(records.FieldAddress),
		Employment:   rec.Field(records.FieldEmployment),
		RecordText:   rec.Text,
	})
	if err != nil {
		return fmt.Errorf("upsert personnel: %w", err)
	}
	return nil
}

func (p *Processor) persistPersonnelSchedule(ctx context.Context, rec *engine.Record) error {
	// The timetable attaches to whoever carries the name, whatever the
	// variant. Only when nobody does is a stub teaching row created.
	per, err := p.personnel.FindByName(ctx, rec.Field(records.FieldName))
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("find personnel: %w", err)
		}
		per, err = p.personnel.Upsert(ctx, &repository.UpsertPersonnelRequest{
			Name:       rec.Field(records.FieldName),
			Variant:    string(constants.KindTeaching),
			Department: rec.Field(records.FieldDepartment),
		})
		if err != nil {
			return fmt.Errorf("create personnel: %w", err)
		}
	}

	slots := make([]*entity.LoadEntry, 0, len(rec.Rows))
	for _, row := range rec.Rows {
		slots = append(slots, &entity.LoadEntry{
			Day:       row[engine.RoleDay],
			TimeStart: row[engine.RoleTimeStart],
			TimeEnd:   row[engine.RoleTimeEnd],
			Subject:   row[engine.RoleSubject],
			Section:   row[engine.RoleSection],
		})
	}
	if err := p.personnel.ReplaceLoads(ctx, per.ID, slots); err != nil {
		return fmt.Errorf("replace load entries: %w", err)
	}
	return nil
}

func parseDecimal(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
