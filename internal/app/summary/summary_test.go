package summary

import (
	"testing"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestAttendanceRate(t *testing.T) {
	rate, ok := AttendanceRate(7, 2, 10)
	require.True(t, ok)
	assert.InDelta(t, 80.0, rate, 1e-9)
	assert.Equal(t, Green, AttendanceColor(&rate))
	assert.Equal(t, "%80", FormatRate(rate, ok))

	rate, ok = AttendanceRate(0, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, "-", FormatRate(rate, ok))

	rate, ok = AttendanceRate(12, 4, 10)
	require.True(t, ok)
	assert.Equal(t, 100.0, rate)

	for total := int64(1); total <= 20; total++ {
		for present := int64(0); present <= total; present++ {
			for late := int64(0); present+late <= total; late++ {
				r, ok := AttendanceRate(present, late, total)
				require.True(t, ok)
				assert.GreaterOrEqual(t, r, 0.0)
				assert.LessOrEqual(t, r, 100.0)
			}
		}
	}
}

func TestColors(t *testing.T) {
	assert.Equal(t, Green, GradeColor(ptr(72.5)))
	assert.Equal(t, Yellow, GradeColor(ptr(55.0)))
	assert.Equal(t, Red, GradeColor(ptr(40.0)))
	assert.Equal(t, Gray, GradeColor(nil))
	assert.Equal(t, Green, GradeColor(ptr(70.0)))
	assert.Equal(t, Yellow, GradeColor(ptr(50.0)))

	assert.Equal(t, Yellow, AttendanceColor(ptr(60.0)))
	assert.Equal(t, Red, AttendanceColor(ptr(59.9)))
	assert.Equal(t, Gray, AttendanceColor(nil))

	assert.Equal(t, Green, LetterColor(ptr("BA")))
	assert.Equal(t, Blue, LetterColor(ptr("CC")))
	assert.Equal(t, Yellow, LetterColor(ptr("DD")))
	assert.Equal(t, Red, LetterColor(ptr("FF")))
	assert.Equal(t, Gray, LetterColor(nil))
}

func TestWeights(t *testing.T) {
	components := []models.GradeComponent{
		{ComponentID: 1, WeightPercent: decimal.RequireFromString("30")},
		{ComponentID: 2, WeightPercent: decimal.RequireFromString("40.5")},
	}
	total := WeightTotal(components)
	assert.Equal(t, "70.5", total.String())
	assert.Equal(t, WeightWarningText, WeightWarning(total))
	assert.Equal(t, "29.5", RemainingWeight(total).String())

	components = append(components, models.GradeComponent{ComponentID: 3, WeightPercent: decimal.RequireFromString("29.5")})
	total = WeightTotal(components)
	assert.Empty(t, WeightWarning(total))
	assert.True(t, RemainingWeight(total).IsZero())

	assert.Equal(t, WeightWarningText, WeightWarning(WeightTotal(nil)))
}

func TestWeightedAverage(t *testing.T) {
	components := []models.GradeComponent{
		{ComponentID: 1, WeightPercent: decimal.NewFromInt(40)},
		{ComponentID: 2, WeightPercent: decimal.NewFromInt(60)},
	}

	avg := WeightedAverage(components, map[int64]float64{1: 50, 2: 80})
	require.NotNil(t, avg)
	assert.InDelta(t, 68.0, *avg, 1e-9)

	avg = WeightedAverage(components, map[int64]float64{2: 80})
	require.NotNil(t, avg)
	assert.InDelta(t, 80.0, *avg, 1e-9)

	assert.Nil(t, WeightedAverage(components, nil))
}

func TestClassAverage(t *testing.T) {
	avg, ok := ClassAverage([]*float64{ptr(60.0), nil, ptr(80.0)})
	require.True(t, ok)
	assert.Equal(t, 70.0, avg)

	_, ok = ClassAverage([]*float64{nil})
	assert.False(t, ok)
}

func TestParseSchedule(t *testing.T) {
	slots := ParseSchedule(ptr(`[{"day":"Pazartesi","start":"09:00","end":"11:00","room":"A101"}]`))
	require.Len(t, slots, 1)
	assert.Equal(t, "A101", slots[0].Room)

	assert.Empty(t, ParseSchedule(ptr("not json")))
	assert.Empty(t, ParseSchedule(nil))
}

func TestPivotGradebook(t *testing.T) {
	rows := []models.StudentGrade{
		{EnrollmentID: 20, StudentID: 9, StudentNumber: "2024009", FullName: "Can", ComponentID: ptr(int64(1)), Score: ptr(90.0)},
		{EnrollmentID: 10, StudentID: 4, StudentNumber: "2024004", FullName: "Ada", CurrentAverage: ptr(72.5), ComponentID: ptr(int64(1)), Score: ptr(70.0)},
		{EnrollmentID: 10, StudentID: 4, StudentNumber: "2024004", FullName: "Ada", CurrentAverage: ptr(72.5), ComponentID: ptr(int64(2)), Score: ptr(75.0)},
		{EnrollmentID: 30, StudentID: 12, StudentNumber: "2024012", FullName: "Ece"},
	}

	gb := PivotGradebook(rows)
	require.Len(t, gb.Students, 3)
	assert.Equal(t, []int64{4, 9, 12}, []int64{gb.Students[0].StudentID, gb.Students[1].StudentID, gb.Students[2].StudentID})
	assert.Len(t, gb.Scores, 3)

	score, ok := gb.Score(10, 2)
	require.True(t, ok)
	assert.Equal(t, 75.0, score)
	_, ok = gb.Score(30, 1)
	assert.False(t, ok)

	components := []models.GradeComponent{
		{ComponentID: 1, WeightPercent: decimal.NewFromInt(50)},
		{ComponentID: 2, WeightPercent: decimal.NewFromInt(50)},
	}
	assert.Equal(t, "72.50", FormatAverage(gb.Average(gb.Students[0], components)))
	assert.Equal(t, "90.00", FormatAverage(gb.Average(gb.Students[1], components)))
	assert.Equal(t, "-", FormatAverage(gb.Average(gb.Students[2], components)))
}
