package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	instsyspb "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/export"
)

type ExportServer struct {
	instsyspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportStudents(ctx context.Context, _ *instsyspb.ExportStudentsRequest) (*instsyspb.ExportResponse, error) {
	xlsx, err := s.svc.ExportStudentsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.students.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export students: %v", err)
	}
	return &instsyspb.ExportResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportPersonnel(ctx context.Context, req *instsyspb.ExportPersonnelRequest) (*instsyspb.ExportResponse, error) {
	department := strings.TrimSpace(req.GetDepartment())
	xlsx, err := s.svc.ExportPersonnelXLSX(ctx, department)
	if err != nil {
		s.logger.Error("export.personnel.failed", "department", department, "err", err)
		return nil, status.Errorf(codes.Internal, "export personnel: %v", err)
	}
	return &instsyspb.ExportResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportGrades(ctx context.Context, req *instsyspb.ExportGradesRequest) (*instsyspb.ExportResponse, error) {
	sid := strings.TrimSpace(req.GetStudentId())
	validator := common.NewValidator().Field("student_id", sid, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	studentID, _ := uuid.Parse(sid)

	xlsx, err := s.svc.ExportGradesXLSX(ctx, studentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "student not found")
		}
		s.logger.Error("export.grades.failed", "student_id", sid, "err", err)
		return nil, status.Errorf(codes.Internal, "export grades: %v", err)
	}
	return &instsyspb.ExportResponse{Xlsx: xlsx}, nil
}
