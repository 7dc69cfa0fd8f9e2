package class

import (
	"testing"
)

func TestCreateClassValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateClass
		wantErr bool
	}{
		{
			name: "single student",
			in:   CreateClass{CourseID: "crs-1", StudentID: "stu-1", Date: "2026-09-01", StartTime: "09:00", EndTime: "17:00"},
		},
		{
			name: "student group",
			in:   CreateClass{CourseID: "crs-1", StudentGroupID: "grp-1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:30"},
		},
		{
			name:    "both student and group",
			in:      CreateClass{CourseID: "crs-1", StudentID: "stu-1", StudentGroupID: "grp-1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "neither student nor group",
			in:      CreateClass{CourseID: "crs-1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "end before start",
			in:      CreateClass{CourseID: "crs-1", StudentID: "stu-1", Date: "2026-09-01", StartTime: "11:00", EndTime: "09:00"},
			wantErr: true,
		},
		{
			name:    "end equals start",
			in:      CreateClass{CourseID: "crs-1", StudentID: "stu-1", Date: "2026-09-01", StartTime: "11:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "bad date",
			in:      CreateClass{CourseID: "crs-1", StudentID: "stu-1", Date: "01/09/2026", StartTime: "10:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name:    "bad meeting link",
			in:      CreateClass{CourseID: "crs-1", StudentID: "stu-1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", MeetingLink: "not a url"},
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
