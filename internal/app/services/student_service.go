package services

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
)

// StudentService handles student and academic registration
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// RegisterStudent creates a student and returns its id
func (s *StudentService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (any, error) {
	return s.studentRepo.RegisterStudent(ctx, req)
}

// RegisterAcademic creates an academic and returns its id
func (s *StudentService) RegisterAcademic(ctx context.Context, req *dto.RegisterAcademicRequest) (any, error) {
	return s.studentRepo.RegisterAcademic(ctx, req)
}

// AssignAdvisor sets a student's advisor
func (s *StudentService) AssignAdvisor(ctx context.Context, req *dto.AssignAdvisorRequest) error {
	return s.studentRepo.AssignAdvisor(ctx, req)
}

// ListByDepartment lists the students of a department
func (s *StudentService) ListByDepartment(ctx context.Context, departmentID any) ([]procedures.Row, error) {
	return s.studentRepo.ListByDepartment(ctx, departmentID)
}
