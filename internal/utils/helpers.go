package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	instsyspb "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// FloatString renders an optional numeric column without trailing zeros,
// empty when unset.
func FloatString(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// GradeString renders a GWA with the two decimals the registrar prints.
func GradeString(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func ToStudent(e *ent.Student) *entity.Student {
	return &entity.Student{
		ID:         e.ID,
		StudentNo:  strOrEmpty(e.StudentNo),
		Name:       e.Name,
		Program:    e.Program,
		YearLevel:  e.YearLevel,
		Section:    e.Section,
		Semester:   e.Semester,
		SchoolYear: e.SchoolYear,
		Adviser:    e.Adviser,
		RecordText: e.RecordText,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToSubjectEntry(e *ent.SubjectEntry) *entity.SubjectEntry {
	return &entity.SubjectEntry{
		ID:        e.ID,
		StudentID: e.StudentID,
		Code:      e.Code,
		Title:     e.Title,
		Units:     e.Units,
		Room:      e.Room,
		Day:       e.Day,
		TimeStart: e.TimeStart,
		TimeEnd:   e.TimeEnd,
		CreatedAt: e.CreatedAt,
	}
}

func ToPersonnel(e *ent.Personnel) *entity.Personnel {
	return &entity.Personnel{
		ID:           e.ID,
		Name:         e.Name,
		Variant:      e.Variant,
		Position:     e.Position,
		Department:   e.Department,
		Email:        e.Email,
		Phone:        e.Phone,
		SSSNo:        e.SssNo,
		PhilHealthNo: e.PhilhealthNo,
		Birthdate:    e.Birthdate,
		Address:      e.Address,
		Employment:   e.Employment,
		RecordText:   e.RecordText,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToLoadEntry(e *ent.LoadEntry) *entity.LoadEntry {
	return &entity.LoadEntry{
		ID:          e.ID,
		PersonnelID: e.PersonnelID,
		Day:         e.Day,
		TimeStart:   e.TimeStart,
		TimeEnd:     e.TimeEnd,
		Subject:     e.Subject,
		Section:     e.Section,
		CreatedAt:   e.CreatedAt,
	}
}

func ToGradeReport(e *ent.GradeReport) *entity.GradeReport {
	return &entity.GradeReport{
		ID:         e.ID,
		StudentID:  e.StudentID,
		Semester:   e.Semester,
		SchoolYear: e.SchoolYear,
		GWA:        e.Gwa,
		RecordText: e.RecordText,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToGradeEntry(e *ent.GradeEntry) *entity.GradeEntry {
	return &entity.GradeEntry{
		ID:         e.ID,
		ReportID:   e.ReportID,
		Code:       e.Code,
		Title:      e.Title,
		Units:      e.Units,
		FinalGrade: e.FinalGrade,
		Remarks:    e.Remarks,
		CreatedAt:  e.CreatedAt,
	}
}

func ToSourceFile(e *ent.SourceFile) *entity.SourceFile {
	return &entity.SourceFile{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		FileID:        e.FileID,
		Format:        e.Format,
		SheetName:     e.SheetName,
		RecordKind:    e.RecordKind,
		Status:        e.Status,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		ErrorMessage:  e.ErrorMessage,
		ExtractedJSON: e.ExtractedJSON,
		RecordText:    e.RecordText,
	}
}

func ToPBStudent(s *entity.Student) *instsyspb.Student {
	return &instsyspb.Student{
		Id:         s.ID.String(),
		StudentNo:  s.StudentNo,
		Name:       s.Name,
		Program:    s.Program,
		YearLevel:  s.YearLevel,
		Section:    s.Section,
		Semester:   s.Semester,
		SchoolYear: s.SchoolYear,
		Adviser:    s.Adviser,
		RecordText: s.RecordText,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSubjectEntry(s *entity.SubjectEntry) *instsyspb.SubjectEntry {
	return &instsyspb.SubjectEntry{
		Code:      s.Code,
		Title:     s.Title,
		Units:     FloatString(s.Units),
		Room:      s.Room,
		Day:       s.Day,
		TimeStart: s.TimeStart,
		TimeEnd:   s.TimeEnd,
	}
}

func ToPBPersonnel(p *entity.Personnel) *instsyspb.Personnel {
	return &instsyspb.Personnel{
		Id:           p.ID.String(),
		Name:         p.Name,
		Variant:      p.Variant,
		Position:     p.Position,
		Department:   p.Department,
		Email:        p.Email,
		Phone:        p.Phone,
		SssNo:        p.SSSNo,
		PhilhealthNo: p.PhilHealthNo,
		Birthdate:    p.Birthdate,
		Address:      p.Address,
		Employment:   p.Employment,
		RecordText:   p.RecordText,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLoadEntry(l *entity.LoadEntry) *instsyspb.LoadEntry {
	return &instsyspb.LoadEntry{
		Day:       l.Day,
		TimeStart: l.TimeStart,
		TimeEnd:   l.TimeEnd,
		Subject:   l.Subject,
		Section:   l.Section,
	}
}

func ToPBGradeReport(r *entity.GradeReport, entries []*entity.GradeEntry) *instsyspb.GradeReport {
	out := &instsyspb.GradeReport{
		Id:         r.ID.String(),
		StudentId:  r.StudentID.String(),
		Semester:   r.Semester,
		SchoolYear: r.SchoolYear,
		Gwa:        GradeString(r.GWA),
		RecordText: r.RecordText,
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, &instsyspb.GradeEntry{
			Code:       e.Code,
			Title:      e.Title,
			Units:      FloatString(e.Units),
			FinalGrade: e.FinalGrade,
			Remarks:    e.Remarks,
		})
	}
	return out
}

func ToPBExtractJob(j *entity.ExtractJob) *instsyspb.ExtractJob {
	out := &instsyspb.ExtractJob{
		Id:           j.ID.String(),
		FileId:       j.FileID.String(),
		Format:       j.Format,
		SheetName:    strOrEmpty(j.SheetName),
		RecordKind:   strOrEmpty(j.RecordKind),
		Status:       strOrEmpty(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}
