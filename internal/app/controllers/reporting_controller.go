package controllers

import (
	"github.com/akademik/akademik/internal/app/repositories"
	"github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReportingController handles dashboard, notification and audit endpoints
type ReportingController struct {
	reportingService *services.ReportingService
}

// NewReportingController creates a new ReportingController
func NewReportingController(reportingService *services.ReportingService) *ReportingController {
	return &ReportingController{
		reportingService: reportingService,
	}
}

// DashboardStats returns a user's dashboard counters
// @Summary Dashboard statistics
// @Tags reporting
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "{success, stats}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /reporting/dashboard/{userId} [get]
func (c *ReportingController) DashboardStats(ctx *gin.Context) {
	stats, err := c.reportingService.DashboardStats(ctx.Request.Context(), pathID(ctx, "userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "stats", stats)
}

// Notifications lists a user's notifications
// @Summary List notifications
// @Tags reporting
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "{success, notifications}"
// @Failure 500 {object} dto.ErrorResponse
// @Router /reporting/notifications/{userId} [get]
func (c *ReportingController) Notifications(ctx *gin.Context) {
	notifications, err := c.reportingService.Notifications(ctx.Request.Context(), pathID(ctx, "userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "notifications", notifications)
}

// MarkNotificationRead marks a notification as read
// @Summary Mark notification read
// @Tags reporting
// @Produce json
// @Param notificationId path int true "Notification ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reporting/notifications/{notificationId}/read [put]
func (c *ReportingController) MarkNotificationRead(ctx *gin.Context) {
	if err := c.reportingService.MarkNotificationRead(ctx.Request.Context(), pathID(ctx, "notificationId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "", nil)
}

// SearchAuditLog searches the audit log
// @Summary Search audit log
// @Tags reporting
// @Produce json
// @Security BearerAuth
// @Param dateFrom query string false "From (inclusive)"
// @Param dateTo query string false "To"
// @Param actionType query string false "Action type"
// @Param tableName query string false "Table name"
// @Success 200 {object} map[string]interface{} "{success, logs}"
// @Failure 403 {object} dto.ErrorResponse "Role enforcement enabled and caller is not Admin"
// @Failure 500 {object} dto.ErrorResponse
// @Router /reporting/audit [get]
func (c *ReportingController) SearchAuditLog(ctx *gin.Context) {
	logs, err := c.reportingService.SearchAuditLog(ctx.Request.Context(), repositories.AuditFilter{
		DateFrom:   queryOrNull(ctx, "dateFrom"),
		DateTo:     queryOrNull(ctx, "dateTo"),
		ActionType: queryOrNull(ctx, "actionType"),
		TableName:  queryOrNull(ctx, "tableName"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, "logs", logs)
}
