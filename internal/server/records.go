package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	instsyspb "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

type RecordsServer struct {
	instsyspb.UnimplementedRecordsServiceServer
	studentRepo   repository.StudentRepository
	personnelRepo repository.PersonnelRepository
	gradeRepo     repository.GradeRepository
	jobRepo       repository.ExtractJobRepository
	logger        *slog.Logger
}

func NewRecordsServer(students repository.StudentRepository, personnel repository.PersonnelRepository, grades repository.GradeRepository, jobs repository.ExtractJobRepository, logger *slog.Logger) *RecordsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordsServer{
		studentRepo:   students,
		personnelRepo: personnel,
		gradeRepo:     grades,
		jobRepo:       jobs,
		logger:        logger,
	}
}

// GetStudent resolves by id, student number, or name, in that order.
func (s *RecordsServer) GetStudent(ctx context.Context, req *instsyspb.GetStudentRequest) (*instsyspb.GetStudentResponse, error) {
	var (
		student *entity.Student
		err     error
	)
	switch {
	case strings.TrimSpace(req.GetId()) != "":
		id, perr := uuid.Parse(strings.TrimSpace(req.GetId()))
		if perr != nil {
			return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
		}
		student, err = s.studentRepo.GetByID(ctx, id)
	case strings.TrimSpace(req.GetStudentNo()) != "":
		student, err = s.studentRepo.FindByStudentNo(ctx, strings.TrimSpace(req.GetStudentNo()))
	case strings.TrimSpace(req.GetName()) != "":
		student, err = s.studentRepo.FindByName(ctx, strings.TrimSpace(req.GetName()))
	default:
		return nil, status.Error(codes.InvalidArgument, "one of id, student_no or name is required")
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "student not found")
		}
		s.logger.Error("failed to get student", "error", err)
		return nil, status.Errorf(codes.Internal, "get student: %v", err)
	}

	subjects, err := s.studentRepo.SubjectsFor(ctx, student.ID)
	if err != nil {
		s.logger.Error("failed to load subjects", "student_id", student.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "load subjects: %v", err)
	}

	out := &instsyspb.GetStudentResponse{Student: utils.ToPBStudent(student)}
	for _, sub := range subjects {
		out.Subjects = append(out.Subjects, utils.ToPBSubjectEntry(sub))
	}
	return out, nil
}

func (s *RecordsServer) ListStudents(ctx context.Context, _ *instsyspb.ListStudentsRequest) (*instsyspb.ListStudentsResponse, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list students", "error", err)
		return nil, status.Errorf(codes.Internal, "list students: %v", err)
	}
	out := make([]*instsyspb.Student, 0, len(students))
	for _, st := range students {
		out = append(out, utils.ToPBStudent(st))
	}
	return &instsyspb.ListStudentsResponse{Students: out}, nil
}

func (s *RecordsServer) SearchStudents(ctx context.Context, req *instsyspb.SearchStudentsRequest) (*instsyspb.SearchStudentsResponse, error) {
	q := strings.TrimSpace(req.GetQuery())
	if q == "" {
		return nil, status.Error(codes.InvalidArgument, "query is required")
	}
	students, err := s.studentRepo.SearchByName(ctx, q)
	if err != nil {
		s.logger.Error("failed to search students", "query", q, "error", err)
		return nil, status.Errorf(codes.Internal, "search students: %v", err)
	}
	out := make([]*instsyspb.Student, 0, len(students))
	for _, st := range students {
		out = append(out, utils.ToPBStudent(st))
	}
	return &instsyspb.SearchStudentsResponse{Students: out}, nil
}

func (s *RecordsServer) GetStudentGrades(ctx context.Context, req *instsyspb.GetStudentGradesRequest) (*instsyspb.GetStudentGradesResponse, error) {
	sid := strings.TrimSpace(req.GetStudentId())
	validator := common.NewValidator().Field("student_id", sid, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	studentID, _ := uuid.Parse(sid)

	reports, err := s.gradeRepo.ReportsFor(ctx, studentID)
	if err != nil {
		s.logger.Error("failed to list grade reports", "student_id", studentID, "error", err)
		return nil, status.Errorf(codes.Internal, "list grade reports: %v", err)
	}

	out := make([]*instsyspb.GradeReport, 0, len(reports))
	for _, rep := range reports {
		entries, err := s.gradeRepo.EntriesFor(ctx, rep.ID)
		if err != nil {
			s.logger.Error("failed to list grade entries", "report_id", rep.ID, "error", err)
			return nil, status.Errorf(codes.Internal, "list grade entries: %v", err)
		}
		out = append(out, utils.ToPBGradeReport(rep, entries))
	}
	return &instsyspb.GetStudentGradesResponse{Reports: out}, nil
}

// GetPersonnel resolves by id or name.
func (s *RecordsServer) GetPersonnel(ctx context.Context, req *instsyspb.GetPersonnelRequest) (*instsyspb.GetPersonnelResponse, error) {
	var (
		person *entity.Personnel
		err    error
	)
	switch {
	case strings.TrimSpace(req.GetId()) != "":
		id, perr := uuid.Parse(strings.TrimSpace(req.GetId()))
		if perr != nil {
			return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
		}
		person, err = s.personnelRepo.GetByID(ctx, id)
	case strings.TrimSpace(req.GetName()) != "":
		person, err = s.personnelRepo.FindByName(ctx, strings.TrimSpace(req.GetName()))
	default:
		return nil, status.Error(codes.InvalidArgument, "one of id or name is required")
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "personnel not found")
		}
		s.logger.Error("failed to get personnel", "error", err)
		return nil, status.Errorf(codes.Internal, "get personnel: %v", err)
	}

	loads, err := s.personnelRepo.LoadsFor(ctx, person.ID)
	if err != nil {
		s.logger.Error("failed to load timetable", "personnel_id", person.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "load timetable: %v", err)
	}

	out := &instsyspb.GetPersonnelResponse{Personnel: utils.ToPBPersonnel(person)}
	for _, l := range loads {
		out.Loads = append(out.Loads, utils.ToPBLoadEntry(l))
	}
	return out, nil
}

func (s *RecordsServer) ListPersonnel(ctx context.Context, req *instsyspb.ListPersonnelRequest) (*instsyspb.ListPersonnelResponse, error) {
	var (
		people []*entity.Personnel
		err    error
	)
	if dep := strings.TrimSpace(req.GetDepartment()); dep != "" {
		people, err = s.personnelRepo.ListByDepartment(ctx, dep)
	} else {
		people, err = s.personnelRepo.List(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list personnel", "error", err)
		return nil, status.Errorf(codes.Internal, "list personnel: %v", err)
	}
	out := make([]*instsyspb.Personnel, 0, len(people))
	for _, p := range people {
		out = append(out, utils.ToPBPersonnel(p))
	}
	return &instsyspb.ListPersonnelResponse{Personnel: out}, nil
}

func (s *RecordsServer) ListJobs(ctx context.Context, req *instsyspb.ListJobsRequest) (*instsyspb.ListJobsResponse, error) {
	jobs, err := s.jobRepo.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	out := make([]*instsyspb.ExtractJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBExtractJob(utils.ToExtractJob(j)))
	}
	return &instsyspb.ListJobsResponse{Jobs: out}, nil
}
