package models

// EnrollStatus is the lifecycle state of an enrollment
type EnrollStatus string

const (
	EnrollActive                  EnrollStatus = "Active"
	EnrollAtRisk                  EnrollStatus = "AtRisk"
	EnrollCompleted               EnrollStatus = "Completed"
	EnrollDropped                 EnrollStatus = "Dropped"
	EnrollAutoFailDueToAttendance EnrollStatus = "AutoFailDueToAttendance"
)

// Label is the Turkish display text of the status
func (s EnrollStatus) Label() string {
	switch s {
	case EnrollActive:
		return "Aktif"
	case EnrollAtRisk:
		return "Risk Altında"
	case EnrollCompleted:
		return "Tamamlandı"
	case EnrollDropped:
		return "Bırakıldı"
	case EnrollAutoFailDueToAttendance:
		return "Devamsızlıktan Kaldı"
	default:
		return string(s)
	}
}

// EnrolledStudent is a student enrolled in an offering
type EnrolledStudent struct {
	EnrollmentID      int64        `json:"EnrollmentID"`
	StudentID         int64        `json:"StudentID"`
	StudentNumber     string       `json:"StudentNumber"`
	FirstName         string       `json:"FirstName"`
	LastName          string       `json:"LastName"`
	FullName          *string      `json:"FullName,omitempty"`
	EnrollStatus      EnrollStatus `json:"EnrollStatus"`
	CurrentAverage    *float64     `json:"CurrentAverage"`
	LetterGrade       *string      `json:"LetterGrade"`
	AttendancePercent *float64     `json:"AttendancePercent"`
}

// DisplayName is FullName, or first and last name joined
func (e EnrolledStudent) DisplayName() string {
	return displayName(e.FullName, e.FirstName, e.LastName)
}

// TranscriptEntry is one course on a student's transcript
type TranscriptEntry struct {
	CourseCode     string       `json:"CourseCode"`
	CourseName     string       `json:"CourseName"`
	Term           string       `json:"Term"`
	Credit         *float64     `json:"Credit"`
	ECTS           *float64     `json:"ECTS,omitempty"`
	CurrentAverage *float64     `json:"CurrentAverage"`
	LetterGrade    *string      `json:"LetterGrade"`
	EnrollStatus   EnrollStatus `json:"EnrollStatus"`
}
