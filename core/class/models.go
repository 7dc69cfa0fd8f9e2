package class

import (
	"github.com/go-playground/validator/v10"

	"github.com/tutorlink/tutorlink-go/core"
)

var (
	slotOrderTag  = "slot_order"
	slotOrderText = "endTime must be after startTime"
)

func init() {
	core.Validate.RegisterStructValidation(createStructValidation, CreateClass{})
	core.RegisterCustomTranslation(slotOrderTag, slotOrderText)
}

// Status is a Class's lifecycle state. SCHEDULED is initial; COMPLETED and
// CANCELLED are terminal.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Class is a scheduled session tied to one course, one lecturer and one of
// student or student group.
type Class struct {
	ID             string `json:"id"`
	CourseID       string `json:"courseId"`
	LecturerID     string `json:"lecturerId"`
	StudentID      string `json:"studentId,omitempty"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         Status `json:"status"`
	MeetingLink    string `json:"meetingLink,omitempty"`
	Location       string `json:"location,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CreateClass contains information needed to schedule a Class from an
// approved enrollment. Exactly one of StudentID/StudentGroupID is set.
type CreateClass struct {
	CourseID       string `json:"courseId" validate:"required"`
	StudentID      string `json:"studentId,omitempty" validate:"required_without=StudentGroupID,excluded_with=StudentGroupID"`
	StudentGroupID string `json:"studentGroupId,omitempty"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"startTime" validate:"required,timehhmm"`
	EndTime        string `json:"endTime" validate:"required,timehhmm"`
	MeetingLink    string `json:"meetingLink,omitempty" validate:"omitempty,url"`
	Location       string `json:"location,omitempty"`
}

func (cc *CreateClass) Validate() error {
	cc.Location = core.CleanString(cc.Location)
	return core.TranslateError(core.Validate.Struct(cc))
}

// createStructValidation enforces the slot ordering. Zero-padded HH:MM
// strings order lexicographically, so a plain compare is exact.
func createStructValidation(sl validator.StructLevel) {
	cc, ok := sl.Current().Interface().(CreateClass)
	if !ok {
		return
	}
	if cc.StartTime != "" && cc.EndTime != "" && cc.EndTime <= cc.StartTime {
		sl.ReportError(cc.EndTime, "endTime", "EndTime", slotOrderTag, "")
	}
}

// UpdateClass defines what may be modified on an existing Class.
// Concurrent updates to the same class are last-write-wins; the backend
// exposes no version token.
type UpdateClass struct {
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"startTime,omitempty" validate:"omitempty,timehhmm"`
	EndTime     *string `json:"endTime,omitempty" validate:"omitempty,timehhmm"`
	Status      *Status `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
	MeetingLink *string `json:"meetingLink,omitempty" validate:"omitempty,url"`
	Location    *string `json:"location,omitempty"`
}

func (uc *UpdateClass) Validate() error {
	return core.TranslateError(core.Validate.Struct(uc))
}

// WithDetails is a Class joined with its course, lecturer and attendee.
type WithDetails struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      Status `json:"status"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Location    string `json:"location,omitempty"`
	Course      struct {
		Name     string `json:"name"`
		Subject  string `json:"subject"`
		Level    string `json:"level,omitempty"`
		Duration int    `json:"duration,omitempty"`
	} `json:"course"`
	Lecturer *struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"lecturer,omitempty"`
	Student *struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"student,omitempty"`
	StudentGroup *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"studentGroup,omitempty"`
}

// StudentClass is a class row as seen from the student portal.
type StudentClass struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Location    string `json:"location,omitempty"`
	Course      struct {
		Name    string `json:"name"`
		Subject string `json:"subject"`
	} `json:"course"`
	Lecturer struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"lecturer"`
}
