package course

import (
	"github.com/tutorlink/tutorlink-go/core"
)

// Course is a lecturer-owned course as returned by the backend.
type Course struct {
	ID               string   `json:"id"`
	LecturerID       string   `json:"lecturerId"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Subject          string   `json:"subject"`
	Level            string   `json:"level,omitempty"`
	Duration         int      `json:"duration"` // minutes
	HourlyRate       float64  `json:"hourlyRate"`
	IsActive         bool     `json:"isActive"`
	Flyer            string   `json:"flyer,omitempty"`
	Images           []string `json:"images,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
	EnrollmentsCount int      `json:"enrollmentsCount,omitempty"`
	ClassesCount     int      `json:"classesCount,omitempty"`
}

// CreateCourse contains information needed to create a new Course.
// Sessions must run at least 15 minutes.
type CreateCourse struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Subject     string  `json:"subject" validate:"required"`
	Level       string  `json:"level,omitempty"`
	Duration    int     `json:"duration" validate:"required,min=15"`
	HourlyRate  float64 `json:"hourlyRate" validate:"min=0"`
}

func (cc *CreateCourse) Validate() error {
	cc.Name = core.CleanString(cc.Name)
	cc.Subject = core.CleanString(cc.Subject)
	cc.Level = core.CleanString(cc.Level)
	return core.TranslateError(core.Validate.Struct(cc))
}

// UpdateCourse defines what may be modified on an existing Course.
// Nil fields are left untouched by the backend.
type UpdateCourse struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Subject     *string  `json:"subject,omitempty"`
	Level       *string  `json:"level,omitempty"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=15"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

func (uc *UpdateCourse) Validate() error {
	return core.TranslateError(core.Validate.Struct(uc))
}

// Upload bundles the optional binary payloads of a create/update request.
// When empty, the request goes out as plain JSON.
type Upload struct {
	Flyer  core.Attachment
	Images []core.Attachment
}

func (u Upload) HasFiles() bool {
	if !u.Flyer.IsZero() {
		return true
	}
	for _, img := range u.Images {
		if !img.IsZero() {
			return true
		}
	}
	return false
}

// SearchParams filters the public course search. Inactive courses are
// always excluded from results.
type SearchParams struct {
	Subject string
	Level   string
	Page    int
	Limit   int
}

// SearchResult is one row of the student-facing course search.
type SearchResult struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Subject     string  `json:"subject"`
	Level       string  `json:"level,omitempty"`
	Duration    int     `json:"duration"`
	HourlyRate  float64 `json:"hourlyRate"`
	Lecturer    struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"lecturer"`
	EnrollmentsCount int `json:"enrollmentsCount"`
}
