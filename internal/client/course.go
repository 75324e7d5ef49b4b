package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
)

// CreateCourse adds a course and returns its id
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*int64, error) {
	var courseID *int64
	err := c.fetch(ctx, http.MethodPost, "/course", nil, req, "courseId", &courseID)
	return courseID, err
}

// UpdateCourse changes a course
func (c *Client) UpdateCourse(ctx context.Context, courseID int64, req dto.UpdateCourseRequest) error {
	return c.fetch(ctx, http.MethodPut, "/course/"+id(courseID), nil, req, "", nil)
}

// DeleteCourse removes a course
func (c *Client) DeleteCourse(ctx context.Context, courseID int64) error {
	return c.fetch(ctx, http.MethodDelete, "/course/"+id(courseID), nil, nil, "", nil)
}

// OpenOffering opens a section and returns its id
func (c *Client) OpenOffering(ctx context.Context, req dto.OpenOfferingRequest) (*int64, error) {
	var offeringID *int64
	err := c.fetch(ctx, http.MethodPost, "/course/offering", nil, req, "offeringId", &offeringID)
	return offeringID, err
}

// Catalog lists offerings. A nil program and an empty term are not sent.
func (c *Client) Catalog(ctx context.Context, programID *int64, term string) ([]models.CourseOffering, error) {
	query := url.Values{}
	if programID != nil && *programID != 0 {
		query.Set("programId", id(*programID))
	}
	if term != "" {
		query.Set("term", term)
	}
	courses := []models.CourseOffering{}
	err := c.fetch(ctx, http.MethodGet, "/course/catalog", query, nil, "courses", &courses)
	return courses, err
}

// Enroll enrolls a student in an offering
func (c *Client) Enroll(ctx context.Context, offeringID, studentID int64) error {
	return c.fetch(ctx, http.MethodPost, "/course/enroll", nil, dto.EnrollRequest{
		OfferingID: dto.NewParam(offeringID),
		StudentID:  dto.NewParam(studentID),
	}, "", nil)
}

// Drop drops an enrollment. An empty reason is sent as null.
func (c *Client) Drop(ctx context.Context, enrollmentID int64, reason string) error {
	req := dto.DropRequest{EnrollmentID: dto.NewParam(enrollmentID)}
	if reason != "" {
		req.Reason = dto.NewParam(reason)
	}
	return c.fetch(ctx, http.MethodPost, "/course/drop", nil, req, "", nil)
}

// Schedule lists a student's enrolled offerings in a term
func (c *Client) Schedule(ctx context.Context, studentID int64, term string) ([]models.CourseOffering, error) {
	query := url.Values{"term": {term}}
	schedule := []models.CourseOffering{}
	err := c.fetch(ctx, http.MethodGet, "/course/schedule/"+id(studentID), query, nil, "schedule", &schedule)
	return schedule, err
}

// AcademicCourses lists the offerings taught by an academic
func (c *Client) AcademicCourses(ctx context.Context, academicID int64, term string) ([]models.CourseOffering, error) {
	var query url.Values
	if term != "" {
		query = url.Values{"term": {term}}
	}
	courses := []models.CourseOffering{}
	err := c.fetch(ctx, http.MethodGet, "/course/academic-courses/"+id(academicID), query, nil, "courses", &courses)
	return courses, err
}

// EnrolledStudents lists the students of an offering
func (c *Client) EnrolledStudents(ctx context.Context, offeringID int64) ([]models.EnrolledStudent, error) {
	students := []models.EnrolledStudent{}
	err := c.fetch(ctx, http.MethodGet, "/course/enrolled-students/"+id(offeringID), nil, nil, "students", &students)
	return students, err
}

// GenerateSessions creates the weekly sessions of an offering and returns how
// many were created
func (c *Client) GenerateSessions(ctx context.Context, req dto.GenerateSessionsRequest) (int64, error) {
	var created int64
	err := c.fetch(ctx, http.MethodPost, "/course/generate-sessions", nil, req, "sessionsCreated", &created)
	return created, err
}
