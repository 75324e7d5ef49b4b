package dto

import "encoding/json"

// AttendancePolicyRequest sets the absence thresholds of an offering
type AttendancePolicyRequest struct {
	OfferingID              Param `json:"offeringId" swaggertype:"integer"`
	MaxAbsencePercent       Param `json:"maxAbsencePercent" swaggertype:"number" example:"30"`
	WarningThresholdPercent Param `json:"warningThresholdPercent" swaggertype:"number" example:"20"`
	AutoFailPercent         Param `json:"autoFailPercent" swaggertype:"number" example:"30"`
}

// RecordAttendanceRequest stores one student's status in a session
type RecordAttendanceRequest struct {
	SessionID  Param `json:"sessionId" swaggertype:"integer"`
	StudentID  Param `json:"studentId" swaggertype:"integer"`
	Status     Param `json:"status" swaggertype:"string" example:"Present"`
	RecordedBy Param `json:"recordedBy" swaggertype:"integer"`
}

// BulkAttendanceRequest stores the statuses of a whole session. AttendanceData
// is forwarded to the database as JSON text without inspection.
type BulkAttendanceRequest struct {
	SessionID      Param           `json:"sessionId" swaggertype:"integer"`
	AttendanceData json.RawMessage `json:"attendanceData" swaggertype:"array,object"`
	RecordedBy     Param           `json:"recordedBy" swaggertype:"integer"`
}
