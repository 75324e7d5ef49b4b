package services

import (
	"context"

	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
)

// ReportingService handles dashboard, notification and audit queries
type ReportingService struct {
	reportingRepo *repositories.ReportingRepository
}

// NewReportingService creates a new ReportingService
func NewReportingService(reportingRepo *repositories.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// DashboardStats returns a user's dashboard counters
func (s *ReportingService) DashboardStats(ctx context.Context, userID any) ([]procedures.Row, error) {
	return s.reportingRepo.DashboardStats(ctx, userID)
}

// Notifications lists a user's notifications
func (s *ReportingService) Notifications(ctx context.Context, userID any) ([]procedures.Row, error) {
	return s.reportingRepo.Notifications(ctx, userID)
}

// MarkNotificationRead marks a notification as read
func (s *ReportingService) MarkNotificationRead(ctx context.Context, notificationID any) error {
	return s.reportingRepo.MarkNotificationRead(ctx, notificationID)
}

// SearchAuditLog searches the audit log
func (s *ReportingService) SearchAuditLog(ctx context.Context, filter repositories.AuditFilter) ([]procedures.Row, error) {
	return s.reportingRepo.SearchAuditLog(ctx, filter)
}
