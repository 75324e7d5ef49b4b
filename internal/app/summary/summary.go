// Package summary holds the display arithmetic of the client pages:
// attendance rates, colour thresholds, component weights and the gradebook
// pivot. Values computed by the server always take precedence.
package summary

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/shopspring/decimal"
)

// Color is the display colour class of a value
type Color string

const (
	Gray   Color = "gray"
	Green  Color = "green"
	Yellow Color = "yellow"
	Red    Color = "red"
	Blue   Color = "blue"
)

// Placeholder is rendered for undefined values
const Placeholder = "-"

// WeightWarningText is shown while component weights do not add up to 100
const WeightWarningText = "100 olmalı"

var hundred = decimal.NewFromInt(100)

// AttendanceRate is (present + late/2) / total * 100. ok is false when total
// is not positive; the rate is kept within [0, 100].
func AttendanceRate(present, late, total int64) (rate float64, ok bool) {
	if total <= 0 {
		return 0, false
	}
	rate = (float64(present) + float64(late)*0.5) / float64(total) * 100
	switch {
	case rate < 0:
		rate = 0
	case rate > 100:
		rate = 100
	}
	return rate, true
}

// SummaryRate computes the rate of an attendance summary row
func SummaryRate(s models.AttendanceSummary) (float64, bool) {
	return AttendanceRate(s.Presents, s.Lates, s.TotalSessions)
}

// AttendanceColor maps a percentage to green (>=80), yellow (>=60) or red.
// A nil percentage is gray.
func AttendanceColor(percent *float64) Color {
	if percent == nil {
		return Gray
	}
	switch {
	case *percent >= 80:
		return Green
	case *percent >= 60:
		return Yellow
	default:
		return Red
	}
}

// GradeColor maps an average to green (>=70), yellow (>=50) or red. A nil
// average is gray.
func GradeColor(average *float64) Color {
	if average == nil {
		return Gray
	}
	switch {
	case *average >= 70:
		return Green
	case *average >= 50:
		return Yellow
	default:
		return Red
	}
}

// LetterColor colours a letter grade on the transcript
func LetterColor(letter *string) Color {
	if letter == nil || *letter == "" {
		return Gray
	}
	switch *letter {
	case "AA", "BA":
		return Green
	case "BB", "CB", "CC":
		return Blue
	case "DC", "DD":
		return Yellow
	default:
		return Red
	}
}

// WeightTotal sums the WeightPercent of components exactly
func WeightTotal(components []models.GradeComponent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.WeightPercent)
	}
	return total
}

// WeightWarning returns WeightWarningText iff total is not 100
func WeightWarning(total decimal.Decimal) string {
	if total.Equal(hundred) {
		return ""
	}
	return WeightWarningText
}

// RemainingWeight is the weight still assignable to new components
func RemainingWeight(total decimal.Decimal) decimal.Decimal {
	return hundred.Sub(total)
}

// WeightedAverage is the weight-averaged score over the graded components of
// one enrollment. It is nil when no component with a positive weight has a
// score.
func WeightedAverage(components []models.GradeComponent, scores map[int64]float64) *float64 {
	sum := decimal.Zero
	weights := decimal.Zero
	for _, c := range components {
		score, ok := scores[c.ComponentID]
		if !ok || !c.WeightPercent.IsPositive() {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(score).Mul(c.WeightPercent))
		weights = weights.Add(c.WeightPercent)
	}
	if weights.IsZero() {
		return nil
	}
	avg := sum.Div(weights).InexactFloat64()
	return &avg
}

// ClassAverage averages the non-nil values. ok is false when there are none.
func ClassAverage(averages []*float64) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, a := range averages {
		if a == nil {
			continue
		}
		sum += *a
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// FormatAverage renders an average with two decimals
func FormatAverage(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatPercent renders a percentage without decimals
func FormatPercent(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%%%.0f", *v)
}

// FormatRate renders the result of AttendanceRate
func FormatRate(rate float64, ok bool) string {
	if !ok {
		return Placeholder
	}
	return FormatPercent(&rate)
}

// ParseSchedule decodes an offering's ScheduleJSON. Missing or malformed
// input yields no slots.
func ParseSchedule(raw *string) []models.ScheduleSlot {
	if raw == nil || *raw == "" {
		return nil
	}
	var slots []models.ScheduleSlot
	if err := json.Unmarshal([]byte(*raw), &slots); err != nil {
		return nil
	}
	return slots
}

// GradeKey addresses one gradebook cell
type GradeKey struct {
	EnrollmentID int64
	ComponentID  int64
}

// GradebookStudent is one row of the pivoted gradebook
type GradebookStudent struct {
	EnrollmentID   int64
	StudentID      int64
	StudentNumber  string
	FullName       string
	CurrentAverage *float64
	LetterGrade    *string
}

// Gradebook is the student-grade listing pivoted into rows and cells
type Gradebook struct {
	Students []GradebookStudent
	Scores   map[GradeKey]float64
}

// Score returns the recorded score of a cell
func (g Gradebook) Score(enrollmentID, componentID int64) (float64, bool) {
	s, ok := g.Scores[GradeKey{EnrollmentID: enrollmentID, ComponentID: componentID}]
	return s, ok
}

// Average is the server's CurrentAverage, or the weighted average of the
// recorded scores when the server sent none.
func (g Gradebook) Average(student GradebookStudent, components []models.GradeComponent) *float64 {
	if student.CurrentAverage != nil {
		return student.CurrentAverage
	}
	scores := make(map[int64]float64)
	for _, c := range components {
		if s, ok := g.Score(student.EnrollmentID, c.ComponentID); ok {
			scores[c.ComponentID] = s
		}
	}
	return WeightedAverage(components, scores)
}

// PivotGradebook groups student grade rows by student. The first row of a
// student provides its identity; students are ordered by StudentID.
func PivotGradebook(rows []models.StudentGrade) Gradebook {
	gb := Gradebook{Scores: make(map[GradeKey]float64)}
	seen := make(map[int64]struct{})

	for _, row := range rows {
		if _, ok := seen[row.StudentID]; !ok {
			seen[row.StudentID] = struct{}{}
			gb.Students = append(gb.Students, GradebookStudent{
				EnrollmentID:   row.EnrollmentID,
				StudentID:      row.StudentID,
				StudentNumber:  row.StudentNumber,
				FullName:       row.FullName,
				CurrentAverage: row.CurrentAverage,
				LetterGrade:    row.LetterGrade,
			})
		}
		if row.ComponentID != nil && row.Score != nil {
			gb.Scores[GradeKey{EnrollmentID: row.EnrollmentID, ComponentID: *row.ComponentID}] = *row.Score
		}
	}

	sort.SliceStable(gb.Students, func(i, j int) bool {
		return gb.Students[i].StudentID < gb.Students[j].StudentID
	})
	return gb
}
