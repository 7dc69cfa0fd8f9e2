package user

import (
	"github.com/tutorlink/tutorlink-go/core"
)

// Role is the closed set of account roles. A user holds exactly one role,
// fixed at registration.
type Role string

const (
	RoleLecturer Role = "LECTURER"
	RoleStudent  Role = "STUDENT"
	RoleAdmin    Role = "ADMIN"
)

var AllRoles = []Role{RoleLecturer, RoleStudent, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleLecturer, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// AuthResponse is returned by login, registration and refresh.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.TranslateError(core.Validate.Struct(c))
}

// RegisterLecturer contains information needed to register a lecturer account.
type RegisterLecturer struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
}

func (r *RegisterLecturer) Validate() error {
	r.Email = core.CleanString(r.Email, true /* lower */)
	r.FirstName = core.CleanString(r.FirstName)
	r.LastName = core.CleanString(r.LastName)
	return core.TranslateError(core.Validate.Struct(r))
}

// RegisterStudent contains information needed to register a student account.
type RegisterStudent struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Phone      string `json:"phone,omitempty"`
	University string `json:"university,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
}

func (r *RegisterStudent) Validate() error {
	r.Email = core.CleanString(r.Email, true /* lower */)
	r.FirstName = core.CleanString(r.FirstName)
	r.LastName = core.CleanString(r.LastName)
	return core.TranslateError(core.Validate.Struct(r))
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
