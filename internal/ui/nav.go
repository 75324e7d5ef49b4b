package ui

import "github.com/akademik/akademik/internal/app/models"

// Page identifies a client page
type Page string

const (
	PageDashboard     Page = "dashboard"
	PageUsers         Page = "users"
	PageDepartments   Page = "departments"
	PageAudit         Page = "audit"
	PageMyCourses     Page = "my-courses"
	PageStudents      Page = "students"
	PageGradebook     Page = "gradebook"
	PageAttendance    Page = "attendance"
	PageCatalog       Page = "catalog"
	PageMySchedule    Page = "my-schedule"
	PageTranscript    Page = "transcript"
	PageMyAttendance  Page = "my-attendance"
	PageNotifications Page = "notifications"
)

// NavItem is an entry of the navigation menu
type NavItem struct {
	Page  Page
	Label string
}

// Navigation returns the menu of a role in display order
func Navigation(role models.RoleName) []NavItem {
	items := []NavItem{{PageDashboard, "Ana Sayfa"}}

	if role == models.RoleAdmin {
		items = append(items,
			NavItem{PageUsers, "Kullanıcılar"},
			NavItem{PageDepartments, "Bölümler"},
			NavItem{PageAudit, "İşlem Kayıtları"},
		)
	}

	if role == models.RoleAcademic || role == models.RoleAdmin {
		items = append(items,
			NavItem{PageMyCourses, "Derslerim"},
			NavItem{PageStudents, "Öğrenci Listesi"},
			NavItem{PageGradebook, "Not Girişi"},
			NavItem{PageAttendance, "Yoklama"},
		)
	}

	if role == models.RoleStudent {
		items = append(items,
			NavItem{PageCatalog, "Ders Kataloğu"},
			NavItem{PageMySchedule, "Ders Programım"},
			NavItem{PageTranscript, "Transkript"},
			NavItem{PageMyAttendance, "Devam Durumum"},
		)
	}

	return append(items, NavItem{PageNotifications, "Bildirimler"})
}

// Allowed reports whether role may open page
func Allowed(role models.RoleName, page Page) bool {
	for _, item := range Navigation(role) {
		if item.Page == page {
			return true
		}
	}
	return false
}

// Label returns the menu label of page
func Label(page Page) string {
	for _, role := range []models.RoleName{models.RoleAdmin, models.RoleStudent} {
		for _, item := range Navigation(role) {
			if item.Page == page {
				return item.Label
			}
		}
	}
	return string(page)
}
