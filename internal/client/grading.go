package client

import (
	"context"
	"net/http"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/shopspring/decimal"
)

// DefineComponent adds a grade component and returns its id
func (c *Client) DefineComponent(ctx context.Context, offeringID int64, name string, weight decimal.Decimal, mandatory bool) (*int64, error) {
	var componentID *int64
	err := c.fetch(ctx, http.MethodPost, "/grading/component", nil, dto.DefineComponentRequest{
		OfferingID:    dto.NewParam(offeringID),
		ComponentName: dto.NewParam(name),
		WeightPercent: dto.NewParam(weight),
		IsMandatory:   dto.NewParam(mandatory),
	}, "componentId", &componentID)
	return componentID, err
}

// RecordGrade stores a score
func (c *Client) RecordGrade(ctx context.Context, enrollmentID, componentID int64, score float64, gradedBy int64) error {
	return c.fetch(ctx, http.MethodPost, "/grading/record", nil, dto.RecordGradeRequest{
		EnrollmentID: dto.NewParam(enrollmentID),
		ComponentID:  dto.NewParam(componentID),
		Score:        dto.NewParam(score),
		GradedBy:     dto.NewParam(gradedBy),
	}, "", nil)
}

// GradeBook returns the gradebook rows of an offering
func (c *Client) GradeBook(ctx context.Context, offeringID int64) ([]models.EnrolledStudent, error) {
	gradebook := []models.EnrolledStudent{}
	err := c.fetch(ctx, http.MethodGet, "/grading/gradebook/"+id(offeringID), nil, nil, "gradebook", &gradebook)
	return gradebook, err
}

// Transcript returns a student's transcript
func (c *Client) Transcript(ctx context.Context, studentID int64) ([]models.TranscriptEntry, error) {
	transcript := []models.TranscriptEntry{}
	err := c.fetch(ctx, http.MethodGet, "/grading/transcript/"+id(studentID), nil, nil, "transcript", &transcript)
	return transcript, err
}

// ApproveFinalGrades finalizes the grades of an offering
func (c *Client) ApproveFinalGrades(ctx context.Context, offeringID, academicID int64) error {
	return c.fetch(ctx, http.MethodPost, "/grading/approve", nil, dto.ApproveGradesRequest{
		OfferingID: dto.NewParam(offeringID),
		AcademicID: dto.NewParam(academicID),
	}, "", nil)
}

// Components lists the grade components of an offering
func (c *Client) Components(ctx context.Context, offeringID int64) ([]models.GradeComponent, error) {
	components := []models.GradeComponent{}
	err := c.fetch(ctx, http.MethodGet, "/grading/components/"+id(offeringID), nil, nil, "components", &components)
	return components, err
}

// StudentGrades lists every (enrollment, component) score of an offering
func (c *Client) StudentGrades(ctx context.Context, offeringID int64) ([]models.StudentGrade, error) {
	grades := []models.StudentGrade{}
	err := c.fetch(ctx, http.MethodGet, "/grading/student-grades/"+id(offeringID), nil, nil, "grades", &grades)
	return grades, err
}
