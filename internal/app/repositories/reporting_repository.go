package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/procedures"
)

// AuditFilter narrows an audit log search. Nil fields are not filtered on.
type AuditFilter struct {
	DateFrom   any
	DateTo     any
	ActionType any
	TableName  any
}

// ReportingRepository calls the dashboard, notification and audit procedures
type ReportingRepository struct {
	exec Executor
}

// NewReportingRepository creates a new reporting repository
func NewReportingRepository(exec Executor) *ReportingRepository {
	return &ReportingRepository{exec: exec}
}

// DashboardStats returns the role specific dashboard counters of a user
func (r *ReportingRepository) DashboardStats(ctx context.Context, userID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetDashboardStats).
		In("UserID", procedures.Int, userID)
	return recordset(ctx, r.exec, call)
}

// Notifications lists a user's notifications
func (r *ReportingRepository) Notifications(ctx context.Context, userID any) ([]procedures.Row, error) {
	call := procedures.New(ProcListNotifications).
		In("UserID", procedures.Int, userID)
	return recordset(ctx, r.exec, call)
}

// MarkNotificationRead marks a notification as read
func (r *ReportingRepository) MarkNotificationRead(ctx context.Context, notificationID any) error {
	call := procedures.New(ProcMarkNotificationRead).
		In("NotificationID", procedures.Int, notificationID)
	return run(ctx, r.exec, call)
}

// SearchAuditLog searches the audit log
func (r *ReportingRepository) SearchAuditLog(ctx context.Context, filter AuditFilter) ([]procedures.Row, error) {
	call := procedures.New(ProcSearchAuditLog).
		In("DateFrom", procedures.DateTime2, filter.DateFrom).
		In("DateTo", procedures.DateTime2, filter.DateTo).
		In("ActionType", procedures.NVarChar(50), filter.ActionType).
		In("TableName", procedures.NVarChar(100), filter.TableName)
	return recordset(ctx, r.exec, call)
}
