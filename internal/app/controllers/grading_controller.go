package controllers

import (
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GradingController handles grade components and grades
type GradingController struct {
	gradingService *services.GradingService
}

// NewGradingController creates a new GradingController
func NewGradingController(gradingService *services.GradingService) *GradingController {
	return &GradingController{
		gradingService: gradingService,
	}
}

// DefineComponent adds a grade component
// @Summary Define grade component
// @Description IsMandatory defaults to true unless false is sent
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.DefineComponentRequest true "Component"
// @Success 200 {object} map[string]interface{} "{success, componentId}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/component [post]
func (c *GradingController) DefineComponent(ctx *gin.Context) {
	var req dto.DefineComponentRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	componentID, err := c.gradingService.DefineComponent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "componentId", componentID)
}

// RecordGrade stores a score
// @Summary Record grade
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.RecordGradeRequest true "Grade"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/record [post]
func (c *GradingController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.gradingService.RecordGrade(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// GradeBook returns an offering's grade book
// @Summary Grade book
// @Tags grading
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, gradebook}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/gradebook/{offeringId} [get]
func (c *GradingController) GradeBook(ctx *gin.Context) {
	gradebook, err := c.gradingService.GradeBook(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "gradebook", gradebook)
}

// Transcript returns a student's transcript
// @Summary Student transcript
// @Tags grading
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} map[string]interface{} "{success, transcript}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/transcript/{studentId} [get]
func (c *GradingController) Transcript(ctx *gin.Context) {
	transcript, err := c.gradingService.Transcript(ctx.Request.Context(), pathID(ctx, "studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "transcript", transcript)
}

// ApproveFinalGrades finalizes an offering's grades
// @Summary Approve final grades
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.ApproveGradesRequest true "Offering and academic"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/approve [post]
func (c *GradingController) ApproveFinalGrades(ctx *gin.Context) {
	var req dto.ApproveGradesRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.gradingService.ApproveFinalGrades(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// Components lists an offering's grade components
// @Summary Grade components
// @Tags grading
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, components}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/components/{offeringId} [get]
func (c *GradingController) Components(ctx *gin.Context) {
	components, err := c.gradingService.Components(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "components", components)
}

// StudentGrades lists the component scores of an offering
// @Summary Student grades
// @Tags grading
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, grades}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /grading/student-grades/{offeringId} [get]
func (c *GradingController) StudentGrades(ctx *gin.Context) {
	grades, err := c.gradingService.StudentGrades(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "grades", grades)
}
