package repositories

import (
	"context"

	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/app/procedures"
)

// StudentRepository calls the student and academic registration procedures
type StudentRepository struct {
	exec Executor
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(exec Executor) *StudentRepository {
	return &StudentRepository{exec: exec}
}

// RegisterStudent creates a user with its student record and returns NewStudentID
func (r *StudentRepository) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (any, error) {
	call := procedures.New(ProcRegisterStudent).
		In("Username", procedures.NVarChar(50), req.Username).
		In("PasswordPlain", procedures.NVarChar(255), req.Password).
		In("Email", procedures.NVarChar(255), req.Email).
		In("Phone", procedures.NVarChar(20), req.Phone.OrNull()).
		In("StudentNumber", procedures.NVarChar(20), req.StudentNumber).
		In("NationalID", procedures.NVarChar(20), req.NationalID).
		In("FirstName", procedures.NVarChar(50), req.FirstName).
		In("LastName", procedures.NVarChar(50), req.LastName).
		In("BirthDate", procedures.Date, req.BirthDate).
		In("Gender", procedures.Char(1), req.Gender.OrNull()).
		In("DepartmentID", procedures.Int, req.DepartmentID).
		In("ProgramID", procedures.Int, req.ProgramID.OrNull()).
		In("AdvisorID", procedures.Int, req.AdvisorID.OrNull()).
		In("EnrollmentYear", procedures.SmallInt, req.EnrollmentYear.OrNull()).
		Out("NewStudentID", procedures.Int)
	return output(ctx, r.exec, call, "NewStudentID")
}

// RegisterAcademic creates a user with its academic record and returns NewAcademicID
func (r *StudentRepository) RegisterAcademic(ctx context.Context, req *dto.RegisterAcademicRequest) (any, error) {
	call := procedures.New(ProcRegisterAcademic).
		In("Username", procedures.NVarChar(50), req.Username).
		In("PasswordPlain", procedures.NVarChar(255), req.Password).
		In("Email", procedures.NVarChar(255), req.Email).
		In("Phone", procedures.NVarChar(20), req.Phone.OrNull()).
		In("Title", procedures.NVarChar(50), req.Title.OrNull()).
		In("DepartmentID", procedures.Int, req.DepartmentID).
		In("Office", procedures.NVarChar(50), req.Office.OrNull()).
		In("PhoneExtension", procedures.NVarChar(10), req.PhoneExtension.OrNull()).
		Out("NewAcademicID", procedures.Int)
	return output(ctx, r.exec, call, "NewAcademicID")
}

// AssignAdvisor sets a student's advisor
func (r *StudentRepository) AssignAdvisor(ctx context.Context, req *dto.AssignAdvisorRequest) error {
	call := procedures.New(ProcAssignAdvisor).
		In("StudentID", procedures.Int, req.StudentID).
		In("AdvisorID", procedures.Int, req.AdvisorID)
	return run(ctx, r.exec, call)
}

// ListByDepartment lists the students of a department
func (r *StudentRepository) ListByDepartment(ctx context.Context, departmentID any) ([]procedures.Row, error) {
	call := procedures.New(ProcListStudentsByDepartment).
		In("DepartmentID", procedures.Int, departmentID)
	return recordset(ctx, r.exec, call)
}
