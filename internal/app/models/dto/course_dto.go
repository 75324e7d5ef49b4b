package dto

// CreateCourseRequest adds a course to a program
type CreateCourseRequest struct {
	CourseCode      Param `json:"courseCode" swaggertype:"string" example:"BIL101"`
	CourseName      Param `json:"courseName" swaggertype:"string"`
	ProgramID       Param `json:"programId" swaggertype:"integer"`
	Credit          Param `json:"credit" swaggertype:"number" example:"3"`
	ECTS            Param `json:"ects" swaggertype:"number" example:"5"`
	SemesterOffered Param `json:"semesterOffered" swaggertype:"integer"`
}

// UpdateCourseRequest changes a course's descriptive fields
type UpdateCourseRequest struct {
	CourseName      Param `json:"courseName" swaggertype:"string"`
	Credit          Param `json:"credit" swaggertype:"number"`
	ECTS            Param `json:"ects" swaggertype:"number"`
	SemesterOffered Param `json:"semesterOffered" swaggertype:"integer"`
}

// OpenOfferingRequest opens a section of a course in a term
type OpenOfferingRequest struct {
	CourseID     Param `json:"courseId" swaggertype:"integer"`
	AcademicID   Param `json:"academicId" swaggertype:"integer"`
	Term         Param `json:"term" swaggertype:"string" example:"2025-FALL"`
	Section      Param `json:"section" swaggertype:"string" example:"01"`
	Capacity     Param `json:"capacity" swaggertype:"integer"`
	ScheduleJSON Param `json:"scheduleJSON" swaggertype:"string" example:"[{\"day\":\"Pazartesi\",\"start\":\"09:00\",\"end\":\"11:00\",\"room\":\"A101\"}]"`
}

// EnrollRequest enrolls a student in an offering
type EnrollRequest struct {
	OfferingID Param `json:"offeringId" swaggertype:"integer"`
	StudentID  Param `json:"studentId" swaggertype:"integer"`
}

// DropRequest drops an enrollment
type DropRequest struct {
	EnrollmentID Param `json:"enrollmentId" swaggertype:"integer"`
	Reason       Param `json:"reason" swaggertype:"string"`
}

// GenerateSessionsRequest creates the weekly sessions of an offering
type GenerateSessionsRequest struct {
	OfferingID  Param `json:"offeringId" swaggertype:"integer"`
	StartDate   Param `json:"startDate" swaggertype:"string" example:"2025-09-15"`
	DayOfWeek   Param `json:"dayOfWeek" swaggertype:"integer" example:"1"`
	StartTime   Param `json:"startTime" swaggertype:"string" example:"09:00"`
	EndTime     Param `json:"endTime" swaggertype:"string" example:"11:00"`
	SessionType Param `json:"sessionType" swaggertype:"string" example:"Lecture"`
	Location    Param `json:"location" swaggertype:"string"`
	WeekCount   Param `json:"weekCount" swaggertype:"integer" example:"14"`
}
