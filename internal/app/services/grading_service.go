package services

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
)

// GradingService handles grade components and grades
type GradingService struct {
	gradingRepo *repositories.GradingRepository
}

// NewGradingService creates a new GradingService
func NewGradingService(gradingRepo *repositories.GradingRepository) *GradingService {
	return &GradingService{gradingRepo: gradingRepo}
}

// DefineComponent adds a grade component and returns its id
func (s *GradingService) DefineComponent(ctx context.Context, req *dto.DefineComponentRequest) (any, error) {
	return s.gradingRepo.DefineComponent(ctx, req)
}

// RecordGrade stores a score
func (s *GradingService) RecordGrade(ctx context.Context, req *dto.RecordGradeRequest) error {
	return s.gradingRepo.RecordGrade(ctx, req)
}

// GradeBook returns an offering's grade book
func (s *GradingService) GradeBook(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.gradingRepo.GradeBook(ctx, offeringID)
}

// Transcript returns a student's transcript
func (s *GradingService) Transcript(ctx context.Context, studentID any) ([]procedures.Row, error) {
	return s.gradingRepo.Transcript(ctx, studentID)
}

// ApproveFinalGrades finalizes an offering's grades
func (s *GradingService) ApproveFinalGrades(ctx context.Context, req *dto.ApproveGradesRequest) error {
	return s.gradingRepo.ApproveFinalGrades(ctx, req)
}

// Components lists an offering's grade components
func (s *GradingService) Components(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.gradingRepo.Components(ctx, offeringID)
}

// StudentGrades lists every student's component scores in an offering
func (s *GradingService) StudentGrades(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.gradingRepo.StudentGrades(ctx, offeringID)
}
