// Package services sits between the controllers and the procedure
// repositories. Most operations are a single procedure call; the login
// outcome and the academic courses fallback are decided here.
package services

import (
	"github.com/akademik/akademik/internal/app/repositories"
	"github.com/akademik/akademik/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	CourseService     CourseService
	GradingService    *GradingService
	AttendanceService *AttendanceService
	ReportingService  *ReportingService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.AuthRepository, jwtService, logger),
		StudentService:    NewStudentService(repos.StudentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, logger),
		GradingService:    NewGradingService(repos.GradingRepository),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository),
		ReportingService:  NewReportingService(repos.ReportingRepository),
	}
}
