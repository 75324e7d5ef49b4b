package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/procedures"
)

// Executor runs a single procedure call
type Executor interface {
	Execute(ctx context.Context, call *procedures.Call) (*procedures.Result, error)
}

// Procedure names
const (
	ProcLoginUser                  = "sp_LoginUser"
	ProcCreateUser                 = "sp_CreateUser"
	ProcUpdateUserContact          = "sp_UpdateUserContact"
	ProcDeactivateUser             = "sp_DeactivateUser"
	ProcRegisterStudent            = "sp_RegisterStudent"
	ProcRegisterAcademic           = "sp_RegisterAcademic"
	ProcAssignAdvisor              = "sp_AssignAdvisor"
	ProcListStudentsByDepartment   = "sp_ListStudentsByDepartment"
	ProcCreateCourse               = "sp_CreateCourse"
	ProcUpdateCourse               = "sp_UpdateCourse"
	ProcDeleteCourse               = "sp_DeleteCourse"
	ProcOpenCourseOffering         = "sp_OpenCourseOffering"
	ProcGetCourseCatalog           = "sp_GetCourseCatalog"
	ProcEnrollStudent              = "sp_EnrollStudent"
	ProcDropEnrollment             = "sp_DropEnrollment"
	ProcGetStudentSchedule         = "sp_GetStudentSchedule"
	ProcGetAcademicCourses         = "sp_GetAcademicCourses"
	ProcGetEnrolledStudents        = "sp_GetEnrolledStudents"
	ProcGenerateClassSessions      = "sp_GenerateClassSessions"
	ProcDefineGradeComponent       = "sp_DefineGradeComponent"
	ProcRecordGrade                = "sp_RecordGrade"
	ProcGetGradeBook               = "sp_GetGradeBook"
	ProcGetStudentTranscript       = "sp_GetStudentTranscript"
	ProcApproveFinalGrades         = "sp_ApproveFinalGrades"
	ProcGetGradeComponents         = "sp_GetGradeComponents"
	ProcGetStudentGrades           = "sp_GetStudentGrades"
	ProcDefineAttendancePolicy     = "sp_DefineAttendancePolicy"
	ProcRecordAttendance           = "sp_RecordAttendance"
	ProcGetAttendanceSummary       = "sp_GetAttendanceSummary"
	ProcGetStudentAttendanceDetail = "sp_GetStudentAttendanceDetail"
	ProcGetClassSessions           = "sp_GetClassSessions"
	ProcGetSessionAttendance       = "sp_GetSessionAttendance"
	ProcBulkRecordAttendance       = "sp_BulkRecordAttendance"
	ProcGetDashboardStats          = "sp_GetDashboardStats"
	ProcListNotifications          = "sp_ListNotifications"
	ProcMarkNotificationRead       = "sp_MarkNotificationRead"
	ProcSearchAuditLog             = "sp_SearchAuditLog"
)

// Catalogue lists every procedure the repositories call
var Catalogue = []string{
	ProcLoginUser, ProcCreateUser, ProcUpdateUserContact, ProcDeactivateUser,
	ProcRegisterStudent, ProcRegisterAcademic, ProcAssignAdvisor, ProcListStudentsByDepartment,
	ProcCreateCourse, ProcUpdateCourse, ProcDeleteCourse, ProcOpenCourseOffering,
	ProcGetCourseCatalog, ProcEnrollStudent, ProcDropEnrollment, ProcGetStudentSchedule,
	ProcGetAcademicCourses, ProcGetEnrolledStudents, ProcGenerateClassSessions,
	ProcDefineGradeComponent, ProcRecordGrade, ProcGetGradeBook, ProcGetStudentTranscript,
	ProcApproveFinalGrades, ProcGetGradeComponents, ProcGetStudentGrades,
	ProcDefineAttendancePolicy, ProcRecordAttendance, ProcGetAttendanceSummary,
	ProcGetStudentAttendanceDetail, ProcGetClassSessions, ProcGetSessionAttendance,
	ProcBulkRecordAttendance,
	ProcGetDashboardStats, ProcListNotifications, ProcMarkNotificationRead, ProcSearchAuditLog,
}

// Repositories holds all the repository instances
type Repositories struct {
	AuthRepository       *AuthRepository
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	GradingRepository    *GradingRepository
	AttendanceRepository *AttendanceRepository
	ReportingRepository  *ReportingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(exec Executor) *Repositories {
	return &Repositories{
		AuthRepository:       NewAuthRepository(exec),
		StudentRepository:    NewStudentRepository(exec),
		CourseRepository:     NewCourseRepository(exec),
		GradingRepository:    NewGradingRepository(exec),
		AttendanceRepository: NewAttendanceRepository(exec),
		ReportingRepository:  NewReportingRepository(exec),
	}
}

// recordset runs call and returns its first recordset
func recordset(ctx context.Context, exec Executor, call *procedures.Call) ([]procedures.Row, error) {
	result, err := exec.Execute(ctx, call)
	if err != nil {
		return nil, err
	}
	return result.Recordset, nil
}

// output runs call and returns the named output parameter
func output(ctx context.Context, exec Executor, call *procedures.Call, name string) (any, error) {
	result, err := exec.Execute(ctx, call)
	if err != nil {
		return nil, err
	}
	return result.OutputValue(name), nil
}

// run runs call and discards its result
func run(ctx context.Context, exec Executor, call *procedures.Call) error {
	_, err := exec.Execute(ctx, call)
	return err
}
