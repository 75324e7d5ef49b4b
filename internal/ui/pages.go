// Package ui builds the client pages. Each loader performs the page's single
// fetch (two in parallel for the gradebook) and every mutation returns the
// re-fetched page.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/summary"
	"github.com/akademik/akademik/internal/client"
	"github.com/akademik/akademik/internal/pkg/helpers"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ErrPageNotAllowed is returned when the user's role does not show a page
var ErrPageNotAllowed = errors.New("bu sayfaya erişim yetkiniz yok")

// ErrNoOffering is returned by offering pages opened without a course
var ErrNoOffering = errors.New(`lütfen "Derslerim" sayfasından bir ders seçin`)

// API is the part of the gateway client the pages use
type API interface {
	DashboardStats(ctx context.Context, userID int64) ([]models.DashboardStat, error)
	Catalog(ctx context.Context, programID *int64, term string) ([]models.CourseOffering, error)
	Enroll(ctx context.Context, offeringID, studentID int64) error
	Drop(ctx context.Context, enrollmentID int64, reason string) error
	Schedule(ctx context.Context, studentID int64, term string) ([]models.CourseOffering, error)
	Transcript(ctx context.Context, studentID int64) ([]models.TranscriptEntry, error)
	AttendanceDetail(ctx context.Context, studentID, offeringID int64) ([]models.AttendanceDetail, error)
	AcademicCourses(ctx context.Context, academicID int64, term string) ([]models.CourseOffering, error)
	EnrolledStudents(ctx context.Context, offeringID int64) ([]models.EnrolledStudent, error)
	StudentsByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error)
	Components(ctx context.Context, offeringID int64) ([]models.GradeComponent, error)
	StudentGrades(ctx context.Context, offeringID int64) ([]models.StudentGrade, error)
	DefineComponent(ctx context.Context, offeringID int64, name string, weight decimal.Decimal, mandatory bool) (*int64, error)
	RecordGrade(ctx context.Context, enrollmentID, componentID int64, score float64, gradedBy int64) error
	Sessions(ctx context.Context, offeringID int64) ([]models.ClassSession, error)
	SessionAttendance(ctx context.Context, sessionID int64) ([]models.SessionAttendance, error)
	BulkRecord(ctx context.Context, sessionID int64, marks []models.AttendanceMark, recordedBy int64) (int64, error)
	AttendanceSummary(ctx context.Context, offeringID int64) ([]models.AttendanceSummary, error)
	Notifications(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
	SearchAuditLog(ctx context.Context, filter client.AuditFilter) ([]models.AuditLogEntry, error)
}

// Pages loads the pages of one logged in user
type Pages struct {
	api  API
	user models.User
}

// NewPages creates the page loaders for user
func NewPages(api API, user models.User) *Pages {
	return &Pages{api: api, user: user}
}

// User returns the logged in user
func (p *Pages) User() models.User {
	return p.user
}

func (p *Pages) allow(page Page) error {
	if !Allowed(p.user.RoleName, page) {
		return fmt.Errorf("%w: %s", ErrPageNotAllowed, page)
	}
	return nil
}

func termOrDefault(term string) string {
	return helpers.StringOr(strings.TrimSpace(term), models.DefaultTerm)
}

// DashboardPage greets the user with role dependent statistics
type DashboardPage struct {
	Greeting string
	Welcome  string
	Stats    []models.DashboardStat
}

// Dashboard loads the dashboard
func (p *Pages) Dashboard(ctx context.Context) (*DashboardPage, error) {
	stats, err := p.api.DashboardStats(ctx, p.user.UserID)
	if err != nil {
		return nil, err
	}

	page := &DashboardPage{
		Greeting: fmt.Sprintf("Hoş Geldiniz, %s!", p.user.Username),
		Stats:    stats,
	}
	switch p.user.RoleName {
	case models.RoleAdmin:
		page.Welcome = "Sistem yönetim paneline hoş geldiniz."
	case models.RoleAcademic:
		page.Welcome = "Akademik paneline hoş geldiniz."
	case models.RoleStudent:
		page.Welcome = "Öğrenci paneline hoş geldiniz."
	}
	return page, nil
}

// CoursesPage is a list of offerings in a term
type CoursesPage struct {
	Term    string
	Courses []models.CourseOffering
}

// Catalog loads the course catalog of a term
func (p *Pages) Catalog(ctx context.Context, term string) (*CoursesPage, error) {
	if err := p.allow(PageCatalog); err != nil {
		return nil, err
	}
	term = termOrDefault(term)
	courses, err := p.api.Catalog(ctx, nil, term)
	if err != nil {
		return nil, err
	}
	return &CoursesPage{Term: term, Courses: courses}, nil
}

// Enroll enrolls the user in an offering and reloads the catalog
func (p *Pages) Enroll(ctx context.Context, offeringID int64, term string) (*CoursesPage, error) {
	if err := p.allow(PageCatalog); err != nil {
		return nil, err
	}
	if err := p.api.Enroll(ctx, offeringID, p.user.UserID); err != nil {
		return nil, err
	}
	return p.Catalog(ctx, term)
}

// MyCourses loads the offerings taught by the user
func (p *Pages) MyCourses(ctx context.Context, term string) (*CoursesPage, error) {
	if err := p.allow(PageMyCourses); err != nil {
		return nil, err
	}
	term = termOrDefault(term)
	courses, err := p.api.AcademicCourses(ctx, p.user.UserID, term)
	if err != nil {
		return nil, err
	}
	return &CoursesPage{Term: term, Courses: courses}, nil
}

// ScheduleEntry is an enrolled offering with its decoded meeting slots
type ScheduleEntry struct {
	Course models.CourseOffering
	Slots  []models.ScheduleSlot
}

// SchedulePage is the user's weekly schedule
type SchedulePage struct {
	Term    string
	Entries []ScheduleEntry
}

// MySchedule loads the user's schedule of a term
func (p *Pages) MySchedule(ctx context.Context, term string) (*SchedulePage, error) {
	if err := p.allow(PageMySchedule); err != nil {
		return nil, err
	}
	term = termOrDefault(term)
	courses, err := p.api.Schedule(ctx, p.user.UserID, term)
	if err != nil {
		return nil, err
	}

	page := &SchedulePage{Term: term}
	for _, c := range courses {
		page.Entries = append(page.Entries, ScheduleEntry{Course: c, Slots: summary.ParseSchedule(c.ScheduleJSON)})
	}
	return page, nil
}

// Drop drops one of the user's enrollments and reloads the schedule
func (p *Pages) Drop(ctx context.Context, enrollmentID int64, reason, term string) (*SchedulePage, error) {
	if err := p.allow(PageMySchedule); err != nil {
		return nil, err
	}
	if err := p.api.Drop(ctx, enrollmentID, reason); err != nil {
		return nil, err
	}
	return p.MySchedule(ctx, term)
}

// Transcript loads the user's transcript
func (p *Pages) Transcript(ctx context.Context) ([]models.TranscriptEntry, error) {
	if err := p.allow(PageTranscript); err != nil {
		return nil, err
	}
	return p.api.Transcript(ctx, p.user.UserID)
}

// MyAttendancePage is the user's attendance in one offering
type MyAttendancePage struct {
	OfferingID int64
	Detail     []models.AttendanceDetail
	Rate       float64
	RateOK     bool
}

// MyAttendance loads the user's attendance detail of an offering. The rate
// is computed over sessions that have a recorded status.
func (p *Pages) MyAttendance(ctx context.Context, offeringID int64) (*MyAttendancePage, error) {
	if err := p.allow(PageMyAttendance); err != nil {
		return nil, err
	}
	if offeringID == 0 {
		return nil, ErrNoOffering
	}
	detail, err := p.api.AttendanceDetail(ctx, p.user.UserID, offeringID)
	if err != nil {
		return nil, err
	}

	var present, late, total int64
	for _, d := range detail {
		if d.Status == nil {
			continue
		}
		total++
		switch *d.Status {
		case models.AttendancePresent:
			present++
		case models.AttendanceLate:
			late++
		}
	}

	page := &MyAttendancePage{OfferingID: offeringID, Detail: detail}
	page.Rate, page.RateOK = summary.AttendanceRate(present, late, total)
	return page, nil
}

// StudentsPage lists the students of an offering with class statistics
type StudentsPage struct {
	OfferingID   int64
	Students     []models.EnrolledStudent
	Active       int
	AtRisk       int
	ClassAverage float64
	HasAverage   bool
}

// Students loads the enrolled students of an offering
func (p *Pages) Students(ctx context.Context, offeringID int64) (*StudentsPage, error) {
	if err := p.allow(PageStudents); err != nil {
		return nil, err
	}
	if offeringID == 0 {
		return nil, ErrNoOffering
	}
	students, err := p.api.EnrolledStudents(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	page := &StudentsPage{OfferingID: offeringID, Students: students}
	averages := make([]*float64, 0, len(students))
	for _, s := range students {
		switch s.EnrollStatus {
		case models.EnrollActive:
			page.Active++
		case models.EnrollAtRisk:
			page.AtRisk++
		}
		averages = append(averages, s.CurrentAverage)
	}
	page.ClassAverage, page.HasAverage = summary.ClassAverage(averages)
	return page, nil
}

// DepartmentStudents lists the students of a department
func (p *Pages) DepartmentStudents(ctx context.Context, departmentID int64) ([]models.Student, error) {
	if err := p.allow(PageDepartments); err != nil {
		return nil, err
	}
	return p.api.StudentsByDepartment(ctx, departmentID)
}

// GradebookPage is the grade entry grid of an offering
type GradebookPage struct {
	OfferingID  int64
	Components  []models.GradeComponent
	Book        summary.Gradebook
	TotalWeight decimal.Decimal
	Remaining   decimal.Decimal
	Warning     string
}

// Average is the displayed average of a gradebook row
func (g *GradebookPage) Average(s summary.GradebookStudent) *float64 {
	return g.Book.Average(s, g.Components)
}

// Gradebook loads the components and grades of an offering in parallel
func (p *Pages) Gradebook(ctx context.Context, offeringID int64) (*GradebookPage, error) {
	if err := p.allow(PageGradebook); err != nil {
		return nil, err
	}
	if offeringID == 0 {
		return nil, ErrNoOffering
	}

	var components []models.GradeComponent
	var grades []models.StudentGrade

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		components, err = p.api.Components(gctx, offeringID)
		return err
	})
	g.Go(func() error {
		var err error
		grades, err = p.api.StudentGrades(gctx, offeringID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := summary.WeightTotal(components)
	return &GradebookPage{
		OfferingID:  offeringID,
		Components:  components,
		Book:        summary.PivotGradebook(grades),
		TotalWeight: total,
		Remaining:   summary.RemainingWeight(total),
		Warning:     summary.WeightWarning(total),
	}, nil
}

// SaveGrade validates and records a score, then reloads the gradebook
func (p *Pages) SaveGrade(ctx context.Context, offeringID int64, form GradeForm) (*GradebookPage, error) {
	if err := p.allow(PageGradebook); err != nil {
		return nil, err
	}
	score, err := form.Parse()
	if err != nil {
		return nil, err
	}
	if err := p.api.RecordGrade(ctx, form.EnrollmentID, form.ComponentID, score, p.user.UserID); err != nil {
		return nil, err
	}
	return p.Gradebook(ctx, offeringID)
}

// AddComponent validates and defines a grade component, then reloads the
// gradebook
func (p *Pages) AddComponent(ctx context.Context, offeringID int64, form ComponentForm) (*GradebookPage, error) {
	if err := p.allow(PageGradebook); err != nil {
		return nil, err
	}
	weight, err := form.Parse()
	if err != nil {
		return nil, err
	}
	if _, err := p.api.DefineComponent(ctx, offeringID, strings.TrimSpace(form.Name), weight, !form.Optional); err != nil {
		return nil, err
	}
	return p.Gradebook(ctx, offeringID)
}

// RosterEntry is a student's status being edited for a session
type RosterEntry struct {
	StudentID     int64
	StudentNumber string
	Name          string
	Status        models.AttendanceStatus
}

// AttendancePage is the attendance entry screen of an offering
type AttendancePage struct {
	OfferingID int64
	Sessions   []models.ClassSession
	Selected   *models.ClassSession
	Roster     []RosterEntry
}

// SetStatus changes one student's status
func (a *AttendancePage) SetStatus(studentID int64, status models.AttendanceStatus) {
	for i := range a.Roster {
		if a.Roster[i].StudentID == studentID {
			a.Roster[i].Status = status
		}
	}
}

// SetAll changes every student's status
func (a *AttendancePage) SetAll(status models.AttendanceStatus) {
	for i := range a.Roster {
		a.Roster[i].Status = status
	}
}

// Marks returns the roster as a bulk submission
func (a *AttendancePage) Marks() []models.AttendanceMark {
	marks := make([]models.AttendanceMark, 0, len(a.Roster))
	for _, r := range a.Roster {
		marks = append(marks, models.AttendanceMark{StudentID: r.StudentID, Status: r.Status})
	}
	return marks
}

// selectSession picks sessionID when present, else the first session without
// recorded attendance, else the first session.
func selectSession(sessions []models.ClassSession, sessionID int64) *models.ClassSession {
	if sessionID != 0 {
		for i := range sessions {
			if sessions[i].SessionID == sessionID {
				return &sessions[i]
			}
		}
	}
	for i := range sessions {
		if !sessions[i].AttendanceRecorded {
			return &sessions[i]
		}
	}
	if len(sessions) > 0 {
		return &sessions[0]
	}
	return nil
}

// Attendance loads the sessions of an offering and the roster of the selected
// session. Students without a recorded status default to Present.
func (p *Pages) Attendance(ctx context.Context, offeringID, sessionID int64) (*AttendancePage, error) {
	if err := p.allow(PageAttendance); err != nil {
		return nil, err
	}
	if offeringID == 0 {
		return nil, ErrNoOffering
	}
	sessions, err := p.api.Sessions(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	page := &AttendancePage{OfferingID: offeringID, Sessions: sessions}
	page.Selected = selectSession(sessions, sessionID)
	if page.Selected == nil {
		return page, nil
	}

	students, err := p.api.SessionAttendance(ctx, page.Selected.SessionID)
	if err != nil {
		return nil, err
	}
	for _, s := range students {
		status := models.AttendancePresent
		if s.Status != nil && *s.Status != "" {
			status = *s.Status
		}
		page.Roster = append(page.Roster, RosterEntry{
			StudentID:     s.StudentID,
			StudentNumber: s.StudentNumber,
			Name:          s.DisplayName(),
			Status:        status,
		})
	}
	return page, nil
}

// SaveAttendance submits the roster of the selected session and reloads the
// page. It returns the number of recorded students.
func (p *Pages) SaveAttendance(ctx context.Context, page *AttendancePage) (int64, *AttendancePage, error) {
	if err := p.allow(PageAttendance); err != nil {
		return 0, nil, err
	}
	if page == nil || page.Selected == nil {
		return 0, nil, errors.New("yoklama için oturum seçilmedi")
	}
	recorded, err := p.api.BulkRecord(ctx, page.Selected.SessionID, page.Marks(), p.user.UserID)
	if err != nil {
		return 0, nil, err
	}
	reloaded, err := p.Attendance(ctx, page.OfferingID, 0)
	return recorded, reloaded, err
}

// SummaryRow is an attendance summary row with its display rate
type SummaryRow struct {
	models.AttendanceSummary
	Rate   float64
	RateOK bool
}

// AttendanceSummary loads the per-student attendance totals of an offering
func (p *Pages) AttendanceSummary(ctx context.Context, offeringID int64) ([]SummaryRow, error) {
	if err := p.allow(PageAttendance); err != nil {
		return nil, err
	}
	if offeringID == 0 {
		return nil, ErrNoOffering
	}
	rows, err := p.api.AttendanceSummary(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	out := make([]SummaryRow, 0, len(rows))
	for _, r := range rows {
		rate, ok := summary.SummaryRate(r)
		out = append(out, SummaryRow{AttendanceSummary: r, Rate: rate, RateOK: ok})
	}
	return out, nil
}

// Notifications loads the user's notifications
func (p *Pages) Notifications(ctx context.Context) ([]models.Notification, error) {
	return p.api.Notifications(ctx, p.user.UserID)
}

// MarkRead marks a notification as read and reloads the list
func (p *Pages) MarkRead(ctx context.Context, notificationID int64) ([]models.Notification, error) {
	if err := p.api.MarkNotificationRead(ctx, notificationID); err != nil {
		return nil, err
	}
	return p.Notifications(ctx)
}

// AuditLog searches the audit log
func (p *Pages) AuditLog(ctx context.Context, filter client.AuditFilter) ([]models.AuditLogEntry, error) {
	if err := p.allow(PageAudit); err != nil {
		return nil, err
	}
	return p.api.SearchAuditLog(ctx, filter)
}
