package controllers

import (
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StudentController handles student and academic registration
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent creates a student
// @Summary Register student
// @Description Creates the user account and student record with sp_RegisterStudent
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 200 {object} map[string]interface{} "{success, studentId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/register [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	studentID, err := c.studentService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "studentId", studentID)
}

// RegisterAcademic creates an academic
// @Summary Register academic
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.RegisterAcademicRequest true "Academic information"
// @Success 200 {object} map[string]interface{} "{success, academicId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/academic/register [post]
func (c *StudentController) RegisterAcademic(ctx *gin.Context) {
	var req dto.RegisterAcademicRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	academicID, err := c.studentService.RegisterAcademic(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "academicId", academicID)
}

// AssignAdvisor sets a student's advisor
// @Summary Assign advisor
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.AssignAdvisorRequest true "Student and advisor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/advisor [put]
func (c *StudentController) AssignAdvisor(ctx *gin.Context) {
	var req dto.AssignAdvisorRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.studentService.AssignAdvisor(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// ListByDepartment lists a department's students
// @Summary List students by department
// @Tags student
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} map[string]interface{} "{success, students}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/by-department/{departmentId} [get]
func (c *StudentController) ListByDepartment(ctx *gin.Context) {
	students, err := c.studentService.ListByDepartment(ctx.Request.Context(), pathID(ctx, "departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "students", students)
}
