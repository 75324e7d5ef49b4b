package dto

// DefineComponentRequest adds a weighted grade component to an offering
type DefineComponentRequest struct {
	OfferingID    Param `json:"offeringId" swaggertype:"integer"`
	ComponentName Param `json:"componentName" swaggertype:"string" example:"Vize"`
	WeightPercent Param `json:"weightPercent" swaggertype:"number" example:"40"`
	IsMandatory   Param `json:"isMandatory" swaggertype:"boolean" example:"true"`
}

// RecordGradeRequest stores a score for an enrollment and component
type RecordGradeRequest struct {
	EnrollmentID Param `json:"enrollmentId" swaggertype:"integer"`
	ComponentID  Param `json:"componentId" swaggertype:"integer"`
	Score        Param `json:"score" swaggertype:"number" example:"85"`
	GradedBy     Param `json:"gradedBy" swaggertype:"integer"`
}

// ApproveGradesRequest finalizes the grades of an offering
type ApproveGradesRequest struct {
	OfferingID Param `json:"offeringId" swaggertype:"integer"`
	AcademicID Param `json:"academicId" swaggertype:"integer"`
}
