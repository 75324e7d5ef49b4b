package models

// Student is a row of the department student list
type Student struct {
	StudentID     int64   `json:"StudentID"`
	StudentNumber string  `json:"StudentNumber"`
	FirstName     string  `json:"FirstName"`
	LastName      string  `json:"LastName"`
	FullName      *string `json:"FullName,omitempty"`
	Email         *string `json:"Email,omitempty"`
	DepartmentID  *int64  `json:"DepartmentID,omitempty"`
	ProgramID     *int64  `json:"ProgramID,omitempty"`
	AdvisorID     *int64  `json:"AdvisorID,omitempty"`
	AdvisorName   *string `json:"AdvisorName,omitempty"`
}

// DisplayName is FullName, or first and last name joined
func (s Student) DisplayName() string {
	return displayName(s.FullName, s.FirstName, s.LastName)
}

func displayName(full *string, first, last string) string {
	if full != nil && *full != "" {
		return *full
	}
	return first + " " + last
}
