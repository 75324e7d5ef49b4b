package repositories

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
)

// AttendanceRepository calls the attendance procedures
type AttendanceRepository struct {
	exec Executor
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(exec Executor) *AttendanceRepository {
	return &AttendanceRepository{exec: exec}
}

// DefinePolicy sets the absence thresholds of an offering
func (r *AttendanceRepository) DefinePolicy(ctx context.Context, req *dto.AttendancePolicyRequest) error {
	call := procedures.New(ProcDefineAttendancePolicy).
		In("OfferingID", procedures.Int, req.OfferingID).
		In("MaxAbsencePercent", procedures.Decimal(5, 2), req.MaxAbsencePercent).
		In("WarningThresholdPercent", procedures.Decimal(5, 2), req.WarningThresholdPercent.OrNull()).
		In("AutoFailPercent", procedures.Decimal(5, 2), req.AutoFailPercent.OrNull())
	return run(ctx, r.exec, call)
}

// Record stores one student's status in a session
func (r *AttendanceRepository) Record(ctx context.Context, req *dto.RecordAttendanceRequest) error {
	call := procedures.New(ProcRecordAttendance).
		In("SessionID", procedures.Int, req.SessionID).
		In("StudentID", procedures.Int, req.StudentID).
		In("Status", procedures.NVarChar(20), req.Status).
		In("RecordedBy", procedures.Int, req.RecordedBy)
	return run(ctx, r.exec, call)
}

// Summary returns the per-student attendance summary of an offering
func (r *AttendanceRepository) Summary(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetAttendanceSummary).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// Detail returns a student's session by session attendance in an offering
func (r *AttendanceRepository) Detail(ctx context.Context, studentID, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetStudentAttendanceDetail).
		In("StudentID", procedures.Int, studentID).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// Sessions lists the class sessions of an offering
func (r *AttendanceRepository) Sessions(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetClassSessions).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// SessionAttendance returns the roster of a session with recorded statuses
func (r *AttendanceRepository) SessionAttendance(ctx context.Context, sessionID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetSessionAttendance).
		In("SessionID", procedures.Int, sessionID)
	return recordset(ctx, r.exec, call)
}

// BulkRecord stores a whole session's statuses and returns how many were recorded
func (r *AttendanceRepository) BulkRecord(ctx context.Context, req *dto.BulkAttendanceRequest) (int64, error) {
	call := procedures.New(ProcBulkRecordAttendance).
		In("SessionID", procedures.Int, req.SessionID).
		In("AttendanceJSON", procedures.NVarChar(procedures.MaxLength), attendanceJSON(req.AttendanceData)).
		In("RecordedBy", procedures.Int, req.RecordedBy)

	result, err := r.exec.Execute(ctx, call)
	if err != nil {
		return 0, err
	}
	return result.FirstInt("RecordedCount"), nil
}

// attendanceJSON re-serializes the client's attendance array as compact JSON
// text. A missing field is sent as NULL.
func attendanceJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
