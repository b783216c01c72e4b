package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	entgrade "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	entreport "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

// UpsertGradeReportRequest carries the header fields of a grade sheet.
// One report exists per student and term; re-extraction overwrites it.
type UpsertGradeReportRequest struct {
	StudentID  uuid.UUID
	Semester   string
	SchoolYear string
	GWA        *float64
	RecordText string
}

type GradeRepository interface {
	UpsertReport(ctx context.Context, req *UpsertGradeReportRequest) (*entity.GradeReport, error)
	ReplaceEntries(ctx context.Context, reportID uuid.UUID, rows []*entity.GradeEntry) error
	ReportsFor(ctx context.Context, studentID uuid.UUID) ([]*entity.GradeReport, error)
	EntriesFor(ctx context.Context, reportID uuid.UUID) ([]*entity.GradeEntry, error)
}

type gradeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGradeRepository(client *ent.Client, logger *slog.Logger) GradeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &gradeRepository{
		client: client,
		logger: logger,
	}
}

func (r *gradeRepository) UpsertReport(ctx context.Context, req *UpsertGradeReportRequest) (*entity.GradeReport, error) {
	existing, err := r.client.GradeReport.Query().
		Where(
			entreport.StudentID(req.StudentID),
			entreport.Semester(req.Semester),
			entreport.SchoolYear(req.SchoolYear),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("grade report lookup failed", "student_id", req.StudentID, "error", err)
		return nil, err
	}

	if ent.IsNotFound(err) {
		row, err := r.client.GradeReport.Create().
			SetStudentID(req.StudentID).
			SetSemester(req.Semester).
			SetSchoolYear(req.SchoolYear).
			SetNillableGwa(req.GWA).
			SetNillableRecordText(nilIfEmpty(req.RecordText)).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create grade report", "student_id", req.StudentID, "error", err)
			return nil, err
		}
		r.logger.Info("grade report created", "report_id", row.ID, "student_id", req.StudentID,
			"semester", req.Semester, "school_year", req.SchoolYear)
		return utils.ToGradeReport(row), nil
	}

	row, err := r.client.GradeReport.UpdateOneID(existing.ID).
		SetNillableGwa(req.GWA).
		SetNillableRecordText(nilIfEmpty(req.RecordText)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update grade report", "report_id", existing.ID, "error", err)
		return nil, err
	}
	return utils.ToGradeReport(row), nil
}

func (r *gradeRepository) ReplaceEntries(ctx context.Context, reportID uuid.UUID, rows []*entity.GradeEntry) error {
	if _, err := r.client.GradeEntry.Delete().
		Where(entgrade.ReportID(reportID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear grade entries", "report_id", reportID, "error", err)
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	bulk := make([]*ent.GradeEntryCreate, len(rows))
	for i, row := range rows {
		bulk[i] = r.client.GradeEntry.Create().
			SetReportID(reportID).
			SetCode(row.Code).
			SetTitle(row.Title).
			SetNillableUnits(row.Units).
			SetFinalGrade(row.FinalGrade).
			SetRemarks(row.Remarks)
	}
	if _, err := r.client.GradeEntry.CreateBulk(bulk...).Save(ctx); err != nil {
		r.logger.Error("failed to insert grade entries", "report_id", reportID, "count", len(rows), "error", err)
		return err
	}
	return nil
}

func (r *gradeRepository) ReportsFor(ctx context.Context, studentID uuid.UUID) ([]*entity.GradeReport, error) {
	rows, err := r.client.GradeReport.Query().
		Where(entreport.StudentID(studentID)).
		Order(entreport.BySchoolYear(), entreport.BySemester()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list grade reports", "student_id", studentID, "error", err)
		return nil, err
	}
	result := make([]*entity.GradeReport, len(rows))
	for i, row := range rows {
		result[i] = utils.ToGradeReport(row)
	}
	return result, nil
}

func (r *gradeRepository) EntriesFor(ctx context.Context, reportID uuid.UUID) ([]*entity.GradeEntry, error) {
	rows, err := r.client.GradeEntry.Query().
		Where(entgrade.ReportID(reportID)).
		Order(entgrade.ByCreatedAt(), entgrade.ByCode()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list grade entries", "report_id", reportID, "error", err)
		return nil, err
	}
	result := make([]*entity.GradeEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToGradeEntry(row)
	}
	return result, nil
}
