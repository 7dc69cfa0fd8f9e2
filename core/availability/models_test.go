package availability

import (
	"testing"
)

func intPtr(i int) *int { return &i }

func TestCreateAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateAvailability
		wantErr bool
	}{
		{
			name: "recurring with dayOfWeek",
			in:   CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "11:00"},
		},
		{
			name: "one-off with specificDate",
			in:   CreateAvailability{SpecificDate: "2026-09-01", StartTime: "09:00", EndTime: "11:00"},
		},
		{
			name:    "both dayOfWeek and specificDate",
			in:      CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), SpecificDate: "2026-09-01", StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "neither dayOfWeek nor specificDate",
			in:      CreateAvailability{StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "recurring without dayOfWeek",
			in:      CreateAvailability{IsRecurring: true, SpecificDate: "2026-09-01", StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "dayOfWeek without recurring flag",
			in:      CreateAvailability{DayOfWeek: intPtr(3), StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "dayOfWeek out of range",
			in:      CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(7), StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name: "full working day",
			in:   CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "17:00"},
		},
		{
			name:    "end before start",
			in:      CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), StartTime: "11:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "end equals start",
			in:      CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), StartTime: "11:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "bad time format",
			in:      CreateAvailability{IsRecurring: true, DayOfWeek: intPtr(1), StartTime: "9am", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "bad date format",
			in:      CreateAvailability{SpecificDate: "01/09/2026", StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.in.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateAvailabilityValidate(t *testing.T) {
	good := "10:30"
	bad := "25:00"

	ua := UpdateAvailability{StartTime: &good}
	if err := ua.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	ua = UpdateAvailability{EndTime: &bad}
	if err := ua.Validate(); err == nil {
		t.Error("Validate() error = nil, want error")
	}
}
