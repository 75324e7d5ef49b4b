package client

import (
	"context"
	"net/http"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
)

// RegisterStudent creates a student and returns its id
func (c *Client) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*int64, error) {
	var studentID *int64
	err := c.fetch(ctx, http.MethodPost, "/student/register", nil, req, "studentId", &studentID)
	return studentID, err
}

// RegisterAcademic creates an academic and returns its id
func (c *Client) RegisterAcademic(ctx context.Context, req dto.RegisterAcademicRequest) (*int64, error) {
	var academicID *int64
	err := c.fetch(ctx, http.MethodPost, "/student/academic/register", nil, req, "academicId", &academicID)
	return academicID, err
}

// AssignAdvisor assigns an advisor to a student
func (c *Client) AssignAdvisor(ctx context.Context, studentID, advisorID int64) error {
	return c.fetch(ctx, http.MethodPut, "/student/advisor", nil, dto.AssignAdvisorRequest{
		StudentID: dto.NewParam(studentID),
		AdvisorID: dto.NewParam(advisorID),
	}, "", nil)
}

// StudentsByDepartment lists the students of a department
func (c *Client) StudentsByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error) {
	students := []models.Student{}
	err := c.fetch(ctx, http.MethodGet, "/student/by-department/"+id(departmentID), nil, nil, "students", &students)
	return students, err
}
