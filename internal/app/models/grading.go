package models

import "github.com/shopspring/decimal"

// GradeComponent is a weighted grading item of an offering
type GradeComponent struct {
	ComponentID   int64           `json:"ComponentID"`
	OfferingID    int64           `json:"OfferingID"`
	ComponentName string          `json:"ComponentName"`
	WeightPercent decimal.Decimal `json:"WeightPercent"`
	IsMandatory   Flag            `json:"IsMandatory"`
	GradesEntered *int64          `json:"GradesEntered,omitempty"`
}

// StudentGrade is one (enrollment, component) cell of the gradebook. Rows of
// an enrollment without any grade carry a nil ComponentID.
type StudentGrade struct {
	EnrollmentID   int64    `json:"EnrollmentID"`
	StudentID      int64    `json:"StudentID"`
	StudentNumber  string   `json:"StudentNumber"`
	FullName       string   `json:"FullName"`
	CurrentAverage *float64 `json:"CurrentAverage"`
	LetterGrade    *string  `json:"LetterGrade"`
	ComponentID    *int64   `json:"ComponentID"`
	Score          *float64 `json:"Score"`
}
