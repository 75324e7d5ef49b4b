package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/summary"
)

var ansi = map[summary.Color]string{
	summary.Green:  "\x1b[32m",
	summary.Yellow: "\x1b[33m",
	summary.Red:    "\x1b[31m",
	summary.Blue:   "\x1b[34m",
	summary.Gray:   "\x1b[90m",
}

// Renderer writes pages as aligned text tables
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer creates a renderer. With color set, values are wrapped in ANSI
// colour codes by their threshold colour.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) paint(c summary.Color, s string) string {
	if !r.color {
		return s
	}
	code, ok := ansi[c]
	if !ok {
		return s
	}
	return code + s + "\x1b[0m"
}

func (r *Renderer) table(header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (r *Renderer) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func str(s *string) string {
	if s == nil || *s == "" {
		return summary.Placeholder
	}
	return *s
}

func num(n *int64) string {
	if n == nil {
		return summary.Placeholder
	}
	return fmt.Sprintf("%d", *n)
}

// Navigation prints the menu of a user
func (r *Renderer) Navigation(user models.User) error {
	r.line("%s (%s)", user.Username, user.RoleName)
	rows := make([][]string, 0)
	for _, item := range Navigation(user.RoleName) {
		rows = append(rows, []string{string(item.Page), item.Label})
	}
	return r.table([]string{"SAYFA", "BAŞLIK"}, rows)
}

// Dashboard prints the dashboard
func (r *Renderer) Dashboard(page *DashboardPage) error {
	r.line("%s", page.Greeting)
	r.line("%s", page.Welcome)
	if len(page.Stats) == 0 {
		r.line("Henüz aktivite bulunmuyor.")
		return nil
	}
	for _, stat := range page.Stats {
		keys := make([]string, 0, len(stat))
		for k := range stat {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, fmt.Sprint(stat[k])})
		}
		if err := r.table([]string{"İSTATİSTİK", "DEĞER"}, rows); err != nil {
			return err
		}
	}
	return nil
}

// Courses prints a list of offerings
func (r *Renderer) Courses(page *CoursesPage) error {
	r.line("Dönem: %s", page.Term)
	if len(page.Courses) == 0 {
		r.line("Bu dönem için ders bulunamadı.")
		return nil
	}
	rows := make([][]string, 0, len(page.Courses))
	for _, c := range page.Courses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.OfferingID),
			c.CourseCode,
			c.CourseName,
			c.Section,
			fmt.Sprintf("%s/%s", num(c.EnrolledCount), num(c.Capacity)),
			str(c.AcademicName),
		})
	}
	return r.table([]string{"ID", "KOD", "DERS", "ŞUBE", "KONTENJAN", "ÖĞRETİM ÜYESİ"}, rows)
}

// Schedule prints the weekly schedule
func (r *Renderer) Schedule(page *SchedulePage) error {
	r.line("Dönem: %s", page.Term)
	if len(page.Entries) == 0 {
		r.line("Bu dönem için kayıtlı ders bulunamadı.")
		return nil
	}
	rows := make([][]string, 0)
	for _, e := range page.Entries {
		slots := make([]string, 0, len(e.Slots))
		for _, s := range e.Slots {
			slots = append(slots, fmt.Sprintf("%s %s-%s (%s)", s.Day, s.Start, s.End, s.Room))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s - %s", e.Course.CourseCode, e.Course.CourseName),
			e.Course.Section,
			num(e.Course.EnrollmentID),
			strings.Join(slots, ", "),
		})
	}
	return r.table([]string{"DERS", "ŞUBE", "KAYIT", "PROGRAM"}, rows)
}

// Transcript prints the transcript
func (r *Renderer) Transcript(entries []models.TranscriptEntry) error {
	if len(entries) == 0 {
		r.line("Transkript verisi bulunamadı.")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		credit := summary.Placeholder
		if e.Credit != nil {
			credit = fmt.Sprintf("%g", *e.Credit)
		}
		rows = append(rows, []string{
			e.CourseCode,
			e.CourseName,
			e.Term,
			credit,
			r.paint(summary.GradeColor(e.CurrentAverage), summary.FormatAverage(e.CurrentAverage)),
			r.paint(summary.LetterColor(e.LetterGrade), str(e.LetterGrade)),
			e.EnrollStatus.Label(),
		})
	}
	return r.table([]string{"KOD", "DERS", "DÖNEM", "KREDİ", "ORTALAMA", "HARF", "DURUM"}, rows)
}

// MyAttendance prints a student's attendance in one offering
func (r *Renderer) MyAttendance(page *MyAttendancePage) error {
	rate := summary.FormatRate(page.Rate, page.RateOK)
	if page.RateOK {
		rate = r.paint(summary.AttendanceColor(&page.Rate), rate)
	}
	r.line("Devam oranı: %s", rate)

	rows := make([][]string, 0, len(page.Detail))
	for _, d := range page.Detail {
		status := summary.Placeholder
		if d.Status != nil {
			status = d.Status.Label()
		}
		rows = append(rows, []string{fmt.Sprintf("%d", d.WeekNumber), d.SessionDate.Date(), status})
	}
	return r.table([]string{"HAFTA", "TARİH", "DURUM"}, rows)
}

// Students prints the enrolled students of an offering
func (r *Renderer) Students(page *StudentsPage) error {
	if len(page.Students) == 0 {
		r.line("Bu derse kayıtlı öğrenci bulunamadı.")
		return nil
	}
	avg := summary.Placeholder
	if page.HasAverage {
		avg = fmt.Sprintf("%.1f", page.ClassAverage)
	}
	r.line("Toplam: %d  Aktif: %d  Risk: %d  Sınıf ortalaması: %s", len(page.Students), page.Active, page.AtRisk, avg)

	rows := make([][]string, 0, len(page.Students))
	for _, s := range page.Students {
		rows = append(rows, []string{
			s.StudentNumber,
			s.DisplayName(),
			r.paint(summary.AttendanceColor(s.AttendancePercent), summary.FormatPercent(s.AttendancePercent)),
			r.paint(summary.GradeColor(s.CurrentAverage), summary.FormatAverage(s.CurrentAverage)),
			str(s.LetterGrade),
			s.EnrollStatus.Label(),
		})
	}
	return r.table([]string{"NO", "AD SOYAD", "DEVAM", "ORTALAMA", "HARF", "DURUM"}, rows)
}

// DepartmentStudents prints a department's students
func (r *Renderer) DepartmentStudents(students []models.Student) error {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.StudentNumber, s.DisplayName(), str(s.Email), str(s.AdvisorName)})
	}
	return r.table([]string{"NO", "AD SOYAD", "E-POSTA", "DANIŞMAN"}, rows)
}

// Gradebook prints the grade entry grid
func (r *Renderer) Gradebook(page *GradebookPage) error {
	total := "Toplam: %" + page.TotalWeight.String()
	if page.Warning != "" {
		total = r.paint(summary.Yellow, total+" ("+page.Warning+")")
	} else {
		total = r.paint(summary.Green, total)
	}
	r.line("%s", total)

	if len(page.Components) == 0 {
		r.line("Henüz not bileşeni tanımlanmamış.")
		return nil
	}
	if len(page.Book.Students) == 0 {
		r.line("Bu derse kayıtlı öğrenci bulunamadı.")
		return nil
	}

	header := []string{"NO", "AD SOYAD"}
	for _, c := range page.Components {
		header = append(header, fmt.Sprintf("%s (%%%s)", c.ComponentName, c.WeightPercent.String()))
	}
	header = append(header, "ORTALAMA", "HARF")

	rows := make([][]string, 0, len(page.Book.Students))
	for _, s := range page.Book.Students {
		row := []string{s.StudentNumber, s.FullName}
		for _, c := range page.Components {
			cell := summary.Placeholder
			if score, ok := page.Book.Score(s.EnrollmentID, c.ComponentID); ok {
				cell = fmt.Sprintf("%g", score)
			}
			row = append(row, cell)
		}
		avg := page.Average(s)
		row = append(row, r.paint(summary.GradeColor(avg), summary.FormatAverage(avg)), str(s.LetterGrade))
		rows = append(rows, row)
	}
	return r.table(header, rows)
}

// Attendance prints the sessions and the roster of the selected session
func (r *Renderer) Attendance(page *AttendancePage) error {
	if len(page.Sessions) == 0 {
		r.line("Bu ders için oturum bulunamadı.")
		return nil
	}
	rows := make([][]string, 0, len(page.Sessions))
	for _, s := range page.Sessions {
		mark := " "
		if page.Selected != nil && page.Selected.SessionID == s.SessionID {
			mark = ">"
		}
		recorded := "-"
		if s.AttendanceRecorded {
			recorded = "✓"
		}
		rows = append(rows, []string{mark, fmt.Sprintf("%d", s.SessionID), fmt.Sprintf("Hafta %d", s.WeekNumber), s.SessionDate.Date(), recorded})
	}
	if err := r.table([]string{"", "ID", "HAFTA", "TARİH", "YOKLAMA"}, rows); err != nil {
		return err
	}

	if page.Selected == nil {
		return nil
	}
	r.line("")
	r.line("Hafta %d - %s | %s", page.Selected.WeekNumber, page.Selected.SessionDate.Date(), strOr(page.Selected.Location, "Derslik belirtilmedi"))
	roster := make([][]string, 0, len(page.Roster))
	for _, e := range page.Roster {
		roster = append(roster, []string{e.StudentNumber, e.Name, e.Status.Label()})
	}
	return r.table([]string{"NO", "AD SOYAD", "DURUM"}, roster)
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// AttendanceSummary prints the attendance totals of an offering
func (r *Renderer) AttendanceSummary(rows []SummaryRow) error {
	if len(rows) == 0 {
		r.line("Bu ders için yoklama kaydı bulunamadı.")
		return nil
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		rate := summary.FormatRate(row.Rate, row.RateOK)
		if row.RateOK {
			rate = r.paint(summary.AttendanceColor(&row.Rate), rate)
		}
		out = append(out, []string{
			row.StudentNumber,
			row.FullName,
			fmt.Sprintf("%d", row.TotalSessions),
			fmt.Sprintf("%d", row.Presents),
			fmt.Sprintf("%d", row.Absents),
			fmt.Sprintf("%d", row.Lates),
			rate,
			row.EnrollStatus.Label(),
		})
	}
	return r.table([]string{"NO", "AD SOYAD", "OTURUM", "VAR", "YOK", "GEÇ", "ORAN", "DURUM"}, out)
}

// Notifications prints notifications, unread first marked with *
func (r *Renderer) Notifications(notifications []models.Notification) error {
	if len(notifications) == 0 {
		r.line("Bildirim bulunamadı.")
		return nil
	}
	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		unread := " "
		if !n.IsRead {
			unread = "*"
		}
		rows = append(rows, []string{unread, fmt.Sprintf("%d", n.NotificationID), n.Type, n.Title, n.Message, n.CreatedAt.Date()})
	}
	return r.table([]string{"", "ID", "TÜR", "BAŞLIK", "MESAJ", "TARİH"}, rows)
}

// AuditLog prints audit log entries
func (r *Renderer) AuditLog(logs []models.AuditLogEntry) error {
	if len(logs) == 0 {
		r.line("İşlem kaydı bulunamadı.")
		return nil
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		ts := summary.Placeholder
		if !l.ChangeTimestamp.IsZero() {
			ts = l.ChangeTimestamp.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{ts, l.TableName, l.ActionType, num(l.RecordID), str(l.ChangeDetails)})
	}
	return r.table([]string{"ZAMAN", "TABLO", "İŞLEM", "KAYIT", "DETAY"}, rows)
}
