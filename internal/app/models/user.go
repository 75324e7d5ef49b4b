package models

// User is the row returned by a successful login
type User struct {
	UserID   int64    `json:"UserID" example:"1"`
	Username string   `json:"Username" example:"ayse.yilmaz"`
	RoleName RoleName `json:"RoleName" example:"Student"`
	Email    *string  `json:"Email,omitempty" example:"ayse@uni.edu.tr"`
	Phone    *string  `json:"Phone,omitempty"`
	FullName *string  `json:"FullName,omitempty"`
}

// IsAdmin reports whether the user has the Admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.RoleName == RoleAdmin
}

// IsAcademic reports whether the user has the Academic role
func (u *User) IsAcademic() bool {
	return u != nil && u.RoleName == RoleAcademic
}

// IsStudent reports whether the user has the Student role
func (u *User) IsStudent() bool {
	return u != nil && u.RoleName == RoleStudent
}
