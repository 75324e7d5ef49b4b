package controllers

import (
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/akademik/akademik/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// CourseController handles course, offering and enrollment endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse adds a course
// @Summary Create course
// @Tags course
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 200 {object} map[string]interface{} "{success, courseId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	courseID, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "courseId", courseID)
}

// UpdateCourse changes a course
// @Summary Update course
// @Tags course
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course fields"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/{courseId} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.courseService.Update(ctx.Request.Context(), pathID(ctx, "courseId"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// DeleteCourse removes a course
// @Summary Delete course
// @Tags course
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx.Request.Context(), pathID(ctx, "courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// OpenOffering opens a course section in a term
// @Summary Open course offering
// @Tags course
// @Accept json
// @Produce json
// @Param request body dto.OpenOfferingRequest true "Offering information"
// @Success 200 {object} map[string]interface{} "{success, offeringId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/offering [post]
func (c *CourseController) OpenOffering(ctx *gin.Context) {
	var req dto.OpenOfferingRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	offeringID, err := c.courseService.OpenOffering(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "offeringId", offeringID)
}

// Catalog lists offerings
// @Summary Course catalog
// @Tags course
// @Produce json
// @Param programId query int false "Program ID"
// @Param term query string false "Term" example(2025-FALL)
// @Success 200 {object} map[string]interface{} "{success, courses}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/catalog [get]
func (c *CourseController) Catalog(ctx *gin.Context) {
	courses, err := c.courseService.Catalog(ctx.Request.Context(),
		helpers.OptionalLeadingInt(ctx.Query("programId")), queryOrNull(ctx, "term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "courses", courses)
}

// Enroll enrolls a student
// @Summary Enroll student
// @Tags course
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Offering and student"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse "e.g. Kontenjan dolu"
// @Router /course/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.courseService.Enroll(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// Drop drops an enrollment
// @Summary Drop enrollment
// @Tags course
// @Accept json
// @Produce json
// @Param request body dto.DropRequest true "Enrollment and reason"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/drop [post]
func (c *CourseController) Drop(ctx *gin.Context) {
	var req dto.DropRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.courseService.Drop(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// StudentSchedule lists a student's courses in a term
// @Summary Student schedule
// @Tags course
// @Produce json
// @Param studentId path int true "Student ID"
// @Param term query string false "Term"
// @Success 200 {object} map[string]interface{} "{success, schedule}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/schedule/{studentId} [get]
func (c *CourseController) StudentSchedule(ctx *gin.Context) {
	schedule, err := c.courseService.StudentSchedule(ctx.Request.Context(),
		pathID(ctx, "studentId"), queryRaw(ctx, "term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "schedule", schedule)
}

// AcademicCourses lists an academic's offerings, or the term's catalog when
// that lookup fails
// @Summary Academic courses
// @Tags course
// @Produce json
// @Param academicId path int true "Academic ID"
// @Param term query string false "Term"
// @Success 200 {object} map[string]interface{} "{success, courses}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/academic-courses/{academicId} [get]
func (c *CourseController) AcademicCourses(ctx *gin.Context) {
	courses, err := c.courseService.AcademicCourses(ctx.Request.Context(),
		pathID(ctx, "academicId"), queryOrNull(ctx, "term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "courses", courses)
}

// EnrolledStudents lists an offering's students
// @Summary Enrolled students
// @Tags course
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, students}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/enrolled-students/{offeringId} [get]
func (c *CourseController) EnrolledStudents(ctx *gin.Context) {
	students, err := c.courseService.EnrolledStudents(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "students", students)
}

// GenerateSessions creates weekly class sessions
// @Summary Generate class sessions
// @Tags course
// @Accept json
// @Produce json
// @Param request body dto.GenerateSessionsRequest true "Session plan"
// @Success 200 {object} map[string]interface{} "{success, sessionsCreated}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /course/generate-sessions [post]
func (c *CourseController) GenerateSessions(ctx *gin.Context) {
	var req dto.GenerateSessionsRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	created, err := c.courseService.GenerateSessions(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "sessionsCreated", created)
}
