package models

// AttendanceStatus is the recorded presence of a student in a session
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceExcused AttendanceStatus = "Excused"
)

// AttendanceStatuses lists the statuses in display order
var AttendanceStatuses = []AttendanceStatus{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLate,
	AttendanceExcused,
}

// Label is the Turkish display text of the status
func (s AttendanceStatus) Label() string {
	switch s {
	case AttendancePresent:
		return "Var"
	case AttendanceAbsent:
		return "Yok"
	case AttendanceLate:
		return "Geç"
	case AttendanceExcused:
		return "İzinli"
	default:
		return string(s)
	}
}

// ClassSession is one scheduled meeting of an offering
type ClassSession struct {
	SessionID          int64     `json:"SessionID"`
	OfferingID         int64     `json:"OfferingID"`
	WeekNumber         int64     `json:"WeekNumber"`
	SessionDate        Timestamp `json:"SessionDate"`
	SessionType        *string   `json:"SessionType,omitempty"`
	StartTime          *string   `json:"StartTime,omitempty"`
	EndTime            *string   `json:"EndTime,omitempty"`
	Location           *string   `json:"Location,omitempty"`
	AttendanceRecorded Flag      `json:"AttendanceRecorded"`
}

// SessionAttendance is a roster row of one session
type SessionAttendance struct {
	StudentID     int64             `json:"StudentID"`
	StudentNumber string            `json:"StudentNumber"`
	FirstName     string            `json:"FirstName"`
	LastName      string            `json:"LastName"`
	FullName      *string           `json:"FullName,omitempty"`
	Status        *AttendanceStatus `json:"Status"`
}

// DisplayName is FullName, or first and last name joined
func (s SessionAttendance) DisplayName() string {
	return displayName(s.FullName, s.FirstName, s.LastName)
}

// AttendanceMark is one entry of a bulk attendance submission
type AttendanceMark struct {
	StudentID int64            `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceSummary aggregates a student's attendance in an offering
type AttendanceSummary struct {
	StudentID         int64        `json:"StudentID"`
	StudentNumber     string       `json:"StudentNumber"`
	FullName          string       `json:"FullName"`
	TotalSessions     int64        `json:"TotalSessions"`
	Presents          int64        `json:"Presents"`
	Absents           int64        `json:"Absents"`
	Lates             int64        `json:"Lates"`
	AttendancePercent *float64     `json:"AttendancePercent"`
	EnrollStatus      EnrollStatus `json:"EnrollStatus"`
}

// AttendanceDetail is a student's status in one session
type AttendanceDetail struct {
	SessionID   int64             `json:"SessionID"`
	WeekNumber  int64             `json:"WeekNumber"`
	SessionDate Timestamp         `json:"SessionDate"`
	Status      *AttendanceStatus `json:"Status"`
}
