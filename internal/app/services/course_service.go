package services

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
	"github.com/rs/zerolog"
)

// CourseService defines the course, offering and enrollment operations
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (any, error)
	Update(ctx context.Context, courseID any, req *dto.UpdateCourseRequest) error
	Delete(ctx context.Context, courseID any) error
	OpenOffering(ctx context.Context, req *dto.OpenOfferingRequest) (any, error)
	Catalog(ctx context.Context, programID, term any) ([]procedures.Row, error)
	Enroll(ctx context.Context, req *dto.EnrollRequest) error
	Drop(ctx context.Context, req *dto.DropRequest) error
	StudentSchedule(ctx context.Context, studentID, term any) ([]procedures.Row, error)
	AcademicCourses(ctx context.Context, academicID, term any) ([]procedures.Row, error)
	EnrolledStudents(ctx context.Context, offeringID any) ([]procedures.Row, error)
	GenerateSessions(ctx context.Context, req *dto.GenerateSessionsRequest) (int64, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (any, error) {
	return s.courseRepo.Create(ctx, req)
}

func (s *courseServiceImpl) Update(ctx context.Context, courseID any, req *dto.UpdateCourseRequest) error {
	return s.courseRepo.Update(ctx, courseID, req)
}

func (s *courseServiceImpl) Delete(ctx context.Context, courseID any) error {
	return s.courseRepo.Delete(ctx, courseID)
}

func (s *courseServiceImpl) OpenOffering(ctx context.Context, req *dto.OpenOfferingRequest) (any, error) {
	return s.courseRepo.OpenOffering(ctx, req)
}

func (s *courseServiceImpl) Catalog(ctx context.Context, programID, term any) ([]procedures.Row, error) {
	return s.courseRepo.Catalog(ctx, programID, term)
}

func (s *courseServiceImpl) Enroll(ctx context.Context, req *dto.EnrollRequest) error {
	return s.courseRepo.Enroll(ctx, req)
}

func (s *courseServiceImpl) Drop(ctx context.Context, req *dto.DropRequest) error {
	return s.courseRepo.Drop(ctx, req)
}

func (s *courseServiceImpl) StudentSchedule(ctx context.Context, studentID, term any) ([]procedures.Row, error) {
	return s.courseRepo.StudentSchedule(ctx, studentID, term)
}

// AcademicCourses lists the offerings an academic teaches. When that call
// fails the whole catalog for the term is returned instead.
func (s *courseServiceImpl) AcademicCourses(ctx context.Context, academicID, term any) ([]procedures.Row, error) {
	rows, err := s.courseRepo.AcademicCourses(ctx, academicID, term)
	if err == nil {
		return rows, nil
	}

	s.logger.Warn().Err(err).
		Interface("academicID", academicID).
		Msg("Academic courses lookup failed, falling back to catalog")

	return s.courseRepo.Catalog(ctx, nil, term)
}

func (s *courseServiceImpl) EnrolledStudents(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.courseRepo.EnrolledStudents(ctx, offeringID)
}

func (s *courseServiceImpl) GenerateSessions(ctx context.Context, req *dto.GenerateSessionsRequest) (int64, error) {
	return s.courseRepo.GenerateSessions(ctx, req)
}
