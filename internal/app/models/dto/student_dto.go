package dto

// RegisterStudentRequest creates a user and its student record
type RegisterStudentRequest struct {
	Username       Param `json:"username" swaggertype:"string"`
	Password       Param `json:"password" swaggertype:"string"`
	Email          Param `json:"email" swaggertype:"string"`
	Phone          Param `json:"phone" swaggertype:"string"`
	StudentNumber  Param `json:"studentNumber" swaggertype:"string"`
	NationalID     Param `json:"nationalId" swaggertype:"string"`
	FirstName      Param `json:"firstName" swaggertype:"string"`
	LastName       Param `json:"lastName" swaggertype:"string"`
	BirthDate      Param `json:"birthDate" swaggertype:"string" example:"2004-05-17"`
	Gender         Param `json:"gender" swaggertype:"string" example:"F"`
	DepartmentID   Param `json:"departmentId" swaggertype:"integer"`
	ProgramID      Param `json:"programId" swaggertype:"integer"`
	AdvisorID      Param `json:"advisorId" swaggertype:"integer"`
	EnrollmentYear Param `json:"enrollmentYear" swaggertype:"integer"`
}

// RegisterAcademicRequest creates a user and its academic record
type RegisterAcademicRequest struct {
	Username       Param `json:"username" swaggertype:"string"`
	Password       Param `json:"password" swaggertype:"string"`
	Email          Param `json:"email" swaggertype:"string"`
	Phone          Param `json:"phone" swaggertype:"string"`
	Title          Param `json:"title" swaggertype:"string" example:"Dr. Öğr. Üyesi"`
	DepartmentID   Param `json:"departmentId" swaggertype:"integer"`
	Office         Param `json:"office" swaggertype:"string"`
	PhoneExtension Param `json:"phoneExtension" swaggertype:"string"`
}

// AssignAdvisorRequest assigns an academic advisor to a student
type AssignAdvisorRequest struct {
	StudentID Param `json:"studentId" swaggertype:"integer"`
	AdvisorID Param `json:"advisorId" swaggertype:"integer"`
}
