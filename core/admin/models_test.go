package admin

import (
	"reflect"
	"testing"
)

func TestMapStudent(t *testing.T) {
	tests := []struct {
		name string
		in   AdminUser
		want StudentListItem
	}{
		{
			name: "full record",
			in: AdminUser{
				ID:       "usr-1",
				Email:    "jane@uni.test",
				Role:     "STUDENT",
				IsActive: true,
				Profile: &Profile{
					FirstName:  "Jane",
					LastName:   "Doe",
					Phone:      "0712345678",
					University: "State University",
					StudentID:  "S-42",
				},
			},
			want: StudentListItem{
				UserID:     "usr-1",
				Email:      "jane@uni.test",
				FirstName:  "Jane",
				LastName:   "Doe",
				Phone:      "0712345678",
				University: "State University",
				StudentID:  "S-42",
				IsActive:   true,
			},
		},
		{
			name: "no profile",
			in:   AdminUser{ID: "usr-2", Email: "ghost@uni.test", Role: "STUDENT"},
			want: StudentListItem{UserID: "usr-2", Email: "ghost@uni.test"},
		},
		{
			name: "partial profile",
			in: AdminUser{
				ID:       "usr-3",
				Email:    "sam@uni.test",
				IsActive: true,
				Profile:  &Profile{FirstName: "Sam"},
			},
			want: StudentListItem{UserID: "usr-3", Email: "sam@uni.test", FirstName: "Sam", IsActive: true},
		},
		{
			name: "zero value",
			in:   AdminUser{},
			want: StudentListItem{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapStudent(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapStudent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
