package controllers

import (
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// DefinePolicy sets an offering's attendance policy
// @Summary Define attendance policy
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.AttendancePolicyRequest true "Policy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/policy [post]
func (c *AttendanceController) DefinePolicy(ctx *gin.Context) {
	var req dto.AttendancePolicyRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.attendanceService.DefinePolicy(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// Record stores one attendance status
// @Summary Record attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.RecordAttendanceRequest true "Attendance"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/record [post]
func (c *AttendanceController) Record(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	if err := c.attendanceService.Record(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// Summary returns an offering's attendance summary
// @Summary Attendance summary
// @Tags attendance
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, summary}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/summary/{offeringId} [get]
func (c *AttendanceController) Summary(ctx *gin.Context) {
	summary, err := c.attendanceService.Summary(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "summary", summary)
}

// Detail returns a student's attendance in an offering
// @Summary Student attendance detail
// @Tags attendance
// @Produce json
// @Param studentId path int true "Student ID"
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, detail}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/detail/{studentId}/{offeringId} [get]
func (c *AttendanceController) Detail(ctx *gin.Context) {
	detail, err := c.attendanceService.Detail(ctx.Request.Context(),
		pathID(ctx, "studentId"), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "detail", detail)
}

// Sessions lists an offering's class sessions
// @Summary Class sessions
// @Tags attendance
// @Produce json
// @Param offeringId path int true "Offering ID"
// @Success 200 {object} map[string]interface{} "{success, sessions}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/sessions/{offeringId} [get]
func (c *AttendanceController) Sessions(ctx *gin.Context) {
	sessions, err := c.attendanceService.Sessions(ctx.Request.Context(), pathID(ctx, "offeringId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "sessions", sessions)
}

// SessionAttendance returns a session's roster
// @Summary Session attendance
// @Tags attendance
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {object} map[string]interface{} "{success, students}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/session/{sessionId} [get]
func (c *AttendanceController) SessionAttendance(ctx *gin.Context) {
	students, err := c.attendanceService.SessionAttendance(ctx.Request.Context(), pathID(ctx, "sessionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "students", students)
}

// BulkRecord stores a whole session's attendance
// @Summary Bulk record attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.BulkAttendanceRequest true "Session statuses"
// @Success 200 {object} map[string]interface{} "{success, recordedCount}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /attendance/bulk-record [post]
func (c *AttendanceController) BulkRecord(ctx *gin.Context) {
	var req dto.BulkAttendanceRequest
	if !middleware.BindBody(ctx, &req) {
		return
	}

	recorded, err := c.attendanceService.BulkRecord(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "recordedCount", recorded)
}
