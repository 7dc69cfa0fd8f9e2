package availability

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tutorlink/tutorlink-go/core"
)

var (
	daySlotTag  = "day_or_date"
	daySlotText = "exactly one of dayOfWeek (recurring) or specificDate (one-off) is required"

	slotOrderTag  = "slot_order"
	slotOrderText = "endTime must be after startTime"
)

func init() {
	core.Validate.RegisterStructValidation(createStructValidation, CreateAvailability{})
	core.RegisterCustomTranslation(daySlotTag, daySlotText)
	core.RegisterCustomTranslation(slotOrderTag, slotOrderText)
}

// Availability is a lecturer's open time slot, either recurring weekly
// (DayOfWeek) or one-off (SpecificDate). Scheduling reference data only;
// its lifecycle is independent from classes.
type Availability struct {
	ID           string `json:"id"`
	LecturerID   string `json:"lecturerId"`
	IsRecurring  bool   `json:"isRecurring"`
	DayOfWeek    *int   `json:"dayOfWeek,omitempty"` // 0 = Sunday
	DayName      string `json:"dayName,omitempty"`
	SpecificDate string `json:"specificDate,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CreateAvailability opens a new slot. DayOfWeek and SpecificDate are
// mutually exclusive and tied to IsRecurring.
type CreateAvailability struct {
	IsRecurring  bool   `json:"isRecurring"`
	DayOfWeek    *int   `json:"dayOfWeek,omitempty" validate:"omitempty,min=0,max=6"`
	SpecificDate string `json:"specificDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime    string `json:"startTime" validate:"required,timehhmm"`
	EndTime      string `json:"endTime" validate:"required,timehhmm"`
}

func (ca *CreateAvailability) Validate() error {
	ca.SpecificDate = strings.TrimSpace(ca.SpecificDate)
	return core.TranslateError(core.Validate.Struct(ca))
}

// UpdateAvailability only allows moving a slot's times.
type UpdateAvailability struct {
	StartTime *string `json:"startTime,omitempty" validate:"omitempty,timehhmm"`
	EndTime   *string `json:"endTime,omitempty" validate:"omitempty,timehhmm"`
}

func (ua *UpdateAvailability) Validate() error {
	return core.TranslateError(core.Validate.Struct(ua))
}

// createStructValidation enforces the dayOfWeek XOR specificDate invariant
// and the slot ordering. Zero-padded HH:MM strings order lexicographically,
// so a plain compare is exact.
func createStructValidation(sl validator.StructLevel) {
	ca, ok := sl.Current().Interface().(CreateAvailability)
	if !ok {
		return
	}
	hasDay := ca.DayOfWeek != nil
	hasDate := strings.TrimSpace(ca.SpecificDate) != ""
	if hasDay == hasDate || ca.IsRecurring != hasDay {
		sl.ReportError(ca.DayOfWeek, "dayOfWeek", "DayOfWeek", daySlotTag, "")
		sl.ReportError(ca.SpecificDate, "specificDate", "SpecificDate", daySlotTag, "")
	}
	if ca.StartTime != "" && ca.EndTime != "" && ca.EndTime <= ca.StartTime {
		sl.ReportError(ca.EndTime, "endTime", "EndTime", slotOrderTag, "")
	}
}
