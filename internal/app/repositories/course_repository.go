package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
)

// Session generation defaults applied when the request leaves a field falsy
const (
	DefaultDayOfWeek   = 1
	DefaultStartTime   = "09:00"
	DefaultEndTime     = "11:00"
	DefaultSessionType = "Lecture"
	DefaultWeekCount   = 14
)

// CourseRepository calls the course, offering and enrollment procedures
type CourseRepository struct {
	exec Executor
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(exec Executor) *CourseRepository {
	return &CourseRepository{exec: exec}
}

// Create adds a course and returns NewCourseID
func (r *CourseRepository) Create(ctx context.Context, req *dto.CreateCourseRequest) (any, error) {
	call := procedures.New(ProcCreateCourse).
		In("CourseCode", procedures.NVarChar(20), req.CourseCode).
		In("CourseName", procedures.NVarChar(150), req.CourseName).
		In("ProgramID", procedures.Int, req.ProgramID).
		In("Credit", procedures.Decimal(4, 2), req.Credit).
		In("ECTS", procedures.Decimal(4, 1), req.ECTS).
		In("SemesterOffered", procedures.TinyInt, req.SemesterOffered.OrNull()).
		Out("NewCourseID", procedures.Int)
	return output(ctx, r.exec, call, "NewCourseID")
}

// Update changes a course's name, credits and semester
func (r *CourseRepository) Update(ctx context.Context, courseID any, req *dto.UpdateCourseRequest) error {
	call := procedures.New(ProcUpdateCourse).
		In("CourseID", procedures.Int, courseID).
		In("CourseName", procedures.NVarChar(150), req.CourseName).
		In("Credit", procedures.Decimal(4, 2), req.Credit).
		In("ECTS", procedures.Decimal(4, 1), req.ECTS).
		In("SemesterOffered", procedures.TinyInt, req.SemesterOffered.OrNull())
	return run(ctx, r.exec, call)
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, courseID any) error {
	call := procedures.New(ProcDeleteCourse).
		In("CourseID", procedures.Int, courseID)
	return run(ctx, r.exec, call)
}

// OpenOffering opens a section of a course and returns NewOfferingID
func (r *CourseRepository) OpenOffering(ctx context.Context, req *dto.OpenOfferingRequest) (any, error) {
	call := procedures.New(ProcOpenCourseOffering).
		In("CourseID", procedures.Int, req.CourseID).
		In("AcademicID", procedures.Int, req.AcademicID).
		In("Term", procedures.NVarChar(20), req.Term).
		In("Section", procedures.NVarChar(5), req.Section).
		In("Capacity", procedures.Int, req.Capacity).
		In("ScheduleJSON", procedures.NVarChar(procedures.MaxLength), req.ScheduleJSON.OrNull()).
		Out("NewOfferingID", procedures.Int)
	return output(ctx, r.exec, call, "NewOfferingID")
}

// Catalog lists offerings, optionally filtered by program and term
func (r *CourseRepository) Catalog(ctx context.Context, programID, term any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetCourseCatalog).
		In("ProgramID", procedures.Int, programID).
		In("Term", procedures.NVarChar(20), term)
	return recordset(ctx, r.exec, call)
}

// Enroll enrolls a student in an offering
func (r *CourseRepository) Enroll(ctx context.Context, req *dto.EnrollRequest) error {
	call := procedures.New(ProcEnrollStudent).
		In("OfferingID", procedures.Int, req.OfferingID).
		In("StudentID", procedures.Int, req.StudentID)
	return run(ctx, r.exec, call)
}

// Drop drops an enrollment
func (r *CourseRepository) Drop(ctx context.Context, req *dto.DropRequest) error {
	call := procedures.New(ProcDropEnrollment).
		In("EnrollmentID", procedures.Int, req.EnrollmentID).
		In("Reason", procedures.NVarChar(255), req.Reason.OrNull())
	return run(ctx, r.exec, call)
}

// StudentSchedule lists a student's courses in a term
func (r *CourseRepository) StudentSchedule(ctx context.Context, studentID, term any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetStudentSchedule).
		In("StudentID", procedures.Int, studentID).
		In("Term", procedures.NVarChar(20), term)
	return recordset(ctx, r.exec, call)
}

// AcademicCourses lists the offerings taught by an academic
func (r *CourseRepository) AcademicCourses(ctx context.Context, academicID, term any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetAcademicCourses).
		In("AcademicID", procedures.Int, academicID).
		In("Term", procedures.NVarChar(20), term)
	return recordset(ctx, r.exec, call)
}

// EnrolledStudents lists the students enrolled in an offering
func (r *CourseRepository) EnrolledStudents(ctx context.Context, offeringID any) ([]procedures.Row, error) {
	call := procedures.New(ProcGetEnrolledStudents).
		In("OfferingID", procedures.Int, offeringID)
	return recordset(ctx, r.exec, call)
}

// GenerateSessions creates weekly class sessions and returns how many were created
func (r *CourseRepository) GenerateSessions(ctx context.Context, req *dto.GenerateSessionsRequest) (int64, error) {
	call := procedures.New(ProcGenerateClassSessions).
		In("OfferingID", procedures.Int, req.OfferingID).
		In("StartDate", procedures.Date, req.StartDate).
		In("DayOfWeek", procedures.Int, req.DayOfWeek.Or(DefaultDayOfWeek)).
		In("StartTime", procedures.Time, req.StartTime.Or(DefaultStartTime)).
		In("EndTime", procedures.Time, req.EndTime.Or(DefaultEndTime)).
		In("SessionType", procedures.NVarChar(20), req.SessionType.Or(DefaultSessionType)).
		In("Location", procedures.NVarChar(50), req.Location.OrNull()).
		In("WeekCount", procedures.Int, req.WeekCount.Or(DefaultWeekCount))

	result, err := r.exec.Execute(ctx, call)
	if err != nil {
		return 0, err
	}
	return result.FirstInt("SessionsCreated"), nil
}
