package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
)

// GradingRepository calls the grade component and grade procedures
type GradingRepository struct {
	exec Executor
}

// NewGradingRepository creates a new grading repository
func NewGradingRepository(exec Executor) *GradingRepository {
	return &GradingRepository{exec: exec}
}

// DefineComponent adds a grade component and returns its ComponentID.
// IsMandatory is true unless the client sent false.
func (r *GradingRepository) DefineComponent(ctx context.Context, req *dto.DefineComponentRequest) (any, error) {
	call := procedures.New(ProcDefineGradeComponent).
		In("OfferingID", procedures.Int, req.OfferingID).
		In("ComponentName", procedures.NVarChar(50), req.ComponentName).
		In("WeightPercent", procedures.Decimal(5, 2), req.WeightPercent).
		In("IsMandatory", procedures.Bit, !req.IsMandatory.IsFalse()).
		Out("ComponentID", procedures.Int)
	return output(ctx, r.exec, call, "ComponentID")
}

// RecordGrade stores a score
func (r *GradingRepository) RecordGrade(ctx context.Context, req *dto.RecordGradeRequest) error {
	call := procedures.New(ProcRecordGrade).
		In("EnrollmentID", procedures.Int, req.EnrollmentID).
		In("ComponentID", procedures.Int, req.ComponentID).
		In("Score", procedures.Decimal(5, 2), req.Score).
		In("GradedBy", procedures.Int, req.GradedBy)
	return run(ctx, r.exec, call)
}

// GradeBook returns the grade book of an offering
func (r *GradingRepository) GradeBook(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetGradeBook).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// Transcript returns a student's transcript
func (r *GradingRepository) Transcript(ctx context.Context, studentID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetStudentTranscript).
		In("StudentID", procedures.Int, studentID)
	return recordset(ctx, r.exec, call)
}

// ApproveFinalGrades finalizes the grades of an offering
func (r *GradingRepository) ApproveFinalGrades(ctx context.Context, req *dto.ApproveGradesRequest) error {
	call := procedures.New(ProcApproveFinalGrades).
		In("OfferingID", procedures.Int, req.OfferingID).
		In("AcademicID", procedures.Int, req.AcademicID)
	return run(ctx, r.exec, call)
}

// Components lists the grade components of an offering
func (r *GradingRepository) Components(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetGradeComponents).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// StudentGrades lists every student's component scores in an offering
func (r *GradingRepository) StudentGrades(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetStudentGrades).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}
