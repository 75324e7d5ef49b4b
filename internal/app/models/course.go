package models

// CourseOffering is a course scheduled in a term and section. The catalog,
// student schedule and academic course lists all return this shape.
type CourseOffering struct {
	OfferingID    int64    `json:"OfferingID"`
	CourseID      *int64   `json:"CourseID,omitempty"`
	CourseCode    string   `json:"CourseCode"`
	CourseName    string   `json:"CourseName"`
	Credit        *float64 `json:"Credit,omitempty"`
	ECTS          *float64 `json:"ECTS,omitempty"`
	Term          string   `json:"Term"`
	Section       string   `json:"Section"`
	Capacity      *int64   `json:"Capacity,omitempty"`
	EnrolledCount *int64   `json:"EnrolledCount,omitempty"`
	SessionCount  *int64   `json:"SessionCount,omitempty"`
	AcademicName  *string  `json:"AcademicName,omitempty"`
	ScheduleJSON  *string  `json:"ScheduleJSON,omitempty"`
	EnrollmentID  *int64   `json:"EnrollmentID,omitempty"`
	EnrollStatus  *string  `json:"EnrollStatus,omitempty"`
}

// ScheduleSlot is one meeting slot encoded in ScheduleJSON
type ScheduleSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Room  string `json:"room"`
}
