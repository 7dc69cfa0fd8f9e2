package enrollment

import (
	"github.com/tutorlink/tutorlink-go/core"
)

// Status is an Enrollment's lifecycle state. PENDING is initial; APPROVED
// and REJECTED are terminal, and only PENDING enrollments are actionable.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Enrollment links a course to exactly one of student or student group,
// never both. ApprovedAt is set only on the APPROVED transition.
type Enrollment struct {
	ID             string `json:"id"`
	CourseID       string `json:"courseId"`
	StudentID      string `json:"studentId,omitempty"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
	Status         Status `json:"status"`
	RequestedAt    string `json:"requestedAt"`
	ApprovedAt     string `json:"approvedAt,omitempty"`
	Course         struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Subject    string  `json:"subject"`
		Level      string  `json:"level,omitempty"`
		Duration   int     `json:"duration,omitempty"`
		HourlyRate float64 `json:"hourlyRate,omitempty"`
		Lecturer   struct {
			ID        string `json:"id"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"lecturer"`
	} `json:"course"`
}

// Details is the lecturer-facing enrollment view with the requester joined in.
type Details struct {
	ID             string `json:"id"`
	Status         Status `json:"status"`
	RequestedAt    string `json:"requestedAt"`
	ApprovedAt     string `json:"approvedAt,omitempty"`
	StudentID      string `json:"studentId,omitempty"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
	Course         struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Subject string `json:"subject"`
		Level   string `json:"level,omitempty"`
	} `json:"course"`
	Student *struct {
		ID         string `json:"id"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Phone      string `json:"phone,omitempty"`
		University string `json:"university,omitempty"`
		StudentID  string `json:"studentId,omitempty"`
		Email      string `json:"email"`
	} `json:"student,omitempty"`
	StudentGroup *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"studentGroup,omitempty"`
}

// StatusUpdate resolves a PENDING enrollment. Only the two terminal states
// are accepted.
type StatusUpdate struct {
	Status Status `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

func (su *StatusUpdate) Validate() error {
	return core.TranslateError(core.Validate.Struct(su))
}

// EnrollRequest is a student's request to enroll in a course, optionally on
// behalf of a study group they own.
type EnrollRequest struct {
	CourseID       string `json:"courseId" validate:"required"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
}

func (er *EnrollRequest) Validate() error {
	return core.TranslateError(core.Validate.Struct(er))
}

// DirectEnroll is a lecturer's direct-enrollment action; the enrollment is
// created already APPROVED. Exactly one of StudentID/StudentGroupID is set.
type DirectEnroll struct {
	CourseID       string `json:"courseId" validate:"required"`
	StudentID      string `json:"studentId,omitempty" validate:"required_without=StudentGroupID,excluded_with=StudentGroupID"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
}

func (de *DirectEnroll) Validate() error {
	return core.TranslateError(core.Validate.Struct(de))
}

// PendingCount is the lecturer's count of unresolved enrollment requests.
type PendingCount struct {
	Count int `json:"count"`
}
