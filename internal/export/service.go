package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	studentsRepo  repository.StudentRepository
	personnelRepo repository.PersonnelRepository
	gradesRepo    repository.GradeRepository
	logger        *slog.Logger
}

func NewService(students repository.StudentRepository, personnel repository.PersonnelRepository, grades repository.GradeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{studentsRepo: students, personnelRepo: personnel, gradesRepo: grades, logger: logger}
}

// ExportStudentsXLSX returns an XLSX workbook (as bytes) listing every student.
func (s *Service) ExportStudentsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	students, err := s.studentsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Students"
	if err := prepareSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Student No",
		"Name",
		"Program",
		"Year Level",
		"Section",
		"Semester",
		"School Year",
		"Adviser",
	})

	row := 2
	for _, st := range students {
		write := cellWriter(f, sheet, row)
		write(1, st.StudentNo)
		write(2, st.Name)
		write(3, st.Program)
		write(4, st.YearLevel)
		write(5, st.Section)
		write(6, st.Semester)
		write(7, st.SchoolYear)
		write(8, st.Adviser)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // student no
	_ = f.SetColWidth(sheet, "B", "B", 32) // name
	_ = f.SetColWidth(sheet, "C", "C", 36) // program
	_ = f.SetColWidth(sheet, "D", "E", 12) // year level, section
	_ = f.SetColWidth(sheet, "F", "G", 14) // term
	_ = f.SetColWidth(sheet, "H", "H", 28) // adviser

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.students.ok",
		"rows", len(students),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportPersonnelXLSX returns an XLSX workbook (as bytes) listing personnel.
// An empty department exports everyone.
func (s *Service) ExportPersonnelXLSX(ctx context.Context, department string) ([]byte, error) {
	start := time.Now()

	var (
		people []*entity.Personnel
		err    error
	)
	if department == "" {
		people, err = s.personnelRepo.List(ctx)
	} else {
		people, err = s.personnelRepo.ListByDepartment(ctx, department)
	}
	if err != nil {
		return nil, fmt.Errorf("query personnel: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Personnel"
	if err := prepareSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Name",
		"Variant",
		"Position",
		"Department",
		"Email",
		"Phone",
		"Employment Status",
	})

	row := 2
	for _, p := range people {
		write := cellWriter(f, sheet, row)
		write(1, p.Name)
		write(2, p.Variant)
		write(3, p.Position)
		write(4, p.Department)
		write(5, p.Email)
		write(6, p.Phone)
		write(7, p.Employment)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "B", 16) // variant
	_ = f.SetColWidth(sheet, "C", "D", 28) // position, department
	_ = f.SetColWidth(sheet, "E", "E", 30) // email
	_ = f.SetColWidth(sheet, "F", "G", 18) // phone, employment

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.personnel.ok",
		"department", department,
		"rows", len(people),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportGradesXLSX returns an XLSX workbook (as bytes) with every grade
// report on file for the student, one row per subject and a GWA row
// closing each term block.
func (s *Service) ExportGradesXLSX(ctx context.Context, studentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	student, err := s.studentsRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	reports, err := s.gradesRepo.ReportsFor(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("query grade reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Grades"
	if err := prepareSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Semester",
		"School Year",
		"Subject Code",
		"Title",
		"Units",
		"Final Grade",
		"Remarks",
	})

	row := 2
	entryCount := 0
	for _, rep := range reports {
		entries, err := s.gradesRepo.EntriesFor(ctx, rep.ID)
		if err != nil {
			return nil, fmt.Errorf("query grade entries: %w", err)
		}
		for _, e := range entries {
			write := cellWriter(f, sheet, row)
			write(1, rep.Semester)
			write(2, rep.SchoolYear)
			write(3, e.Code)
			write(4, e.Title)
			write(5, utils.FloatString(e.Units))
			write(6, e.FinalGrade)
			write(7, e.Remarks)
			row++
			entryCount++
		}
		if rep.GWA != nil {
			write := cellWriter(f, sheet, row)
			write(1, rep.Semester)
			write(2, rep.SchoolYear)
			write(3, "GWA")
			write(6, utils.GradeString(rep.GWA))
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 14) // term
	_ = f.SetColWidth(sheet, "C", "C", 14) // code
	_ = f.SetColWidth(sheet, "D", "D", 40) // title
	_ = f.SetColWidth(sheet, "E", "G", 12) // units, grade, remarks

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.grades.ok",
		"student_id", studentID.String(),
		"student", student.Name,
		"reports", len(reports),
		"rows", entryCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func prepareSheet(f *excelize.File, sheet string) error {
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	return nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func cellWriter(f *excelize.File, sheet string, row int) func(col int, v any) {
	return func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
