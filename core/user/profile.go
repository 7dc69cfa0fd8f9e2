package user

import "github.com/tutorlink/tutorlink-go/core"

// LecturerProfile is the role-specific profile owned by a LECTURER user.
type LecturerProfile struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Qualifications  string `json:"qualifications,omitempty"`
	Email           string `json:"email"`
	IsActive        bool   `json:"isActive"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// StudentProfile is the role-specific profile owned by a STUDENT user.
type StudentProfile struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone,omitempty"`
	University      string `json:"university,omitempty"`
	StudentID       string `json:"studentId,omitempty"`
	ProfileImage    string `json:"profileImage,omitempty"`
	Email           string `json:"email"`
	IsActive        bool   `json:"isActive"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// UpdateLecturerProfile defines what a lecturer may change on their profile.
// Nil fields are left untouched by the backend.
type UpdateLecturerProfile struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Qualifications *string `json:"qualifications,omitempty"`
}

func (u *UpdateLecturerProfile) Validate() error {
	cleanPtr(u.FirstName)
	cleanPtr(u.LastName)
	return core.TranslateError(core.Validate.Struct(u))
}

// UpdateStudentProfile defines what a student may change on their profile.
type UpdateStudentProfile struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	University *string `json:"university,omitempty"`
	StudentID  *string `json:"studentId,omitempty"`
}

func (u *UpdateStudentProfile) Validate() error {
	cleanPtr(u.FirstName)
	cleanPtr(u.LastName)
	return core.TranslateError(core.Validate.Struct(u))
}

func cleanPtr(s *string) {
	if s != nil {
		*s = core.CleanString(*s)
	}
}

// LecturerPublic is a lecturer's public profile with their course catalog.
type LecturerPublic struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Bio            string `json:"bio,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
	Courses        []struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Subject     string  `json:"subject"`
		Level       string  `json:"level,omitempty"`
		HourlyRate  float64 `json:"hourlyRate"`
		Duration    int     `json:"duration"`
	} `json:"courses"`
}

// LecturerListItem is one row of the public lecturer listing.
type LecturerListItem struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Bio            string `json:"bio,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
	CoursesCount   int    `json:"coursesCount"`
	ClassesCount   int    `json:"classesCount"`
	JoinedDate     string `json:"joinedDate"`
}
