package routes

import (
	appauth "github.com/akademik/akademik/internal/app/auth"
	"github.com/akademik/akademik/internal/app/controllers"
	"github.com/akademik/akademik/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes under /api
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	gradingController *controllers.GradingController,
	attendanceController *controllers.AttendanceController,
	reportingController *controllers.ReportingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")
	api.Use(authMiddleware.Session())

	api.GET("/health", controllers.Health)

	// Role gates, active only when role enforcement is on
	staff := authMiddleware.RequireRoles(appauth.AcademicOrAdmin...)
	signedIn := authMiddleware.RequireRoles(appauth.StudentOrAbove...)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.PUT("/contact", authController.UpdateContact)
		auth.POST("/deactivate", authController.Deactivate)
	}

	student := api.Group("/student")
	{
		student.POST("/register", studentController.RegisterStudent)
		student.POST("/academic/register", studentController.RegisterAcademic)
		student.PUT("/advisor", studentController.AssignAdvisor)
		student.GET("/by-department/:departmentId", studentController.ListByDepartment)
	}

	course := api.Group("/course")
	{
		course.POST("", staff, courseController.CreateCourse)
		course.POST("/offering", staff, courseController.OpenOffering)
		course.GET("/catalog", courseController.Catalog)
		course.POST("/enroll", signedIn, courseController.Enroll)
		course.POST("/drop", signedIn, courseController.Drop)
		course.GET("/schedule/:studentId", courseController.StudentSchedule)
		course.GET("/academic-courses/:academicId", courseController.AcademicCourses)
		course.GET("/enrolled-students/:offeringId", courseController.EnrolledStudents)
		course.POST("/generate-sessions", staff, courseController.GenerateSessions)
		course.PUT("/:courseId", staff, courseController.UpdateCourse)
		course.DELETE("/:courseId", staff, courseController.DeleteCourse)
	}

	grading := api.Group("/grading")
	{
		grading.POST("/component", staff, gradingController.DefineComponent)
		grading.POST("/record", staff, gradingController.RecordGrade)
		grading.GET("/gradebook/:offeringId", gradingController.GradeBook)
		grading.GET("/transcript/:studentId", gradingController.Transcript)
		grading.POST("/approve", staff, gradingController.ApproveFinalGrades)
		grading.GET("/components/:offeringId", gradingController.Components)
		grading.GET("/student-grades/:offeringId", gradingController.StudentGrades)
	}

	attendance := api.Group("/attendance")
	{
		attendance.POST("/policy", staff, attendanceController.DefinePolicy)
		attendance.POST("/record", staff, attendanceController.Record)
		attendance.GET("/summary/:offeringId", attendanceController.Summary)
		attendance.GET("/detail/:studentId/:offeringId", attendanceController.Detail)
		attendance.GET("/sessions/:offeringId", attendanceController.Sessions)
		attendance.GET("/session/:sessionId", attendanceController.SessionAttendance)
		attendance.POST("/bulk-record", staff, attendanceController.BulkRecord)
	}

	reporting := api.Group("/reporting")
	{
		reporting.GET("/dashboard/:userId", reportingController.DashboardStats)
		reporting.GET("/notifications/:userId", reportingController.Notifications)
		reporting.PUT("/notifications/:notificationId/read", signedIn, reportingController.MarkNotificationRead)
		reporting.GET("/audit", authMiddleware.RequireRoles(appauth.AdminOnly...), reportingController.SearchAuditLog)
	}

	router.NoRoute(middleware.NotFound())
}
