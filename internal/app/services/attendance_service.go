package services

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
	"github.com/akademik/akademik/internal/app/repositories"
)

// AttendanceService handles attendance policies and records
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// DefinePolicy sets an offering's absence thresholds
func (s *AttendanceService) DefinePolicy(ctx context.Context, req *dto.AttendancePolicyRequest) error {
	return s.attendanceRepo.DefinePolicy(ctx, req)
}

// Record stores one student's status in a session
func (s *AttendanceService) Record(ctx context.Context, req *dto.RecordAttendanceRequest) error {
	return s.attendanceRepo.Record(ctx, req)
}

// Summary returns an offering's attendance summary
func (s *AttendanceService) Summary(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.attendanceRepo.Summary(ctx, offeringID)
}

// Detail returns a student's attendance in an offering
func (s *AttendanceService) Detail(ctx context.Context, studentID, offeringID any) ([]procedures.Row, error) {
	return s.attendanceRepo.Detail(ctx, studentID, offeringID)
}

// Sessions lists an offering's class sessions
func (s *AttendanceService) Sessions(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	return s.attendanceRepo.Sessions(ctx, offeringID)
}

// SessionAttendance returns a session's roster
func (s *AttendanceService) SessionAttendance(ctx context.Context, sessionID any) ([]procedures.Row, error) {
	return s.attendanceRepo.SessionAttendance(ctx, sessionID)
}

// BulkRecord stores a whole session and returns the recorded count
func (s *AttendanceService) BulkRecord(ctx context.Context, req *dto.BulkAttendanceRequest) (int64, error) {
	return s.attendanceRepo.BulkRecord(ctx, req)
}
