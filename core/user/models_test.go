package user

import (
	"errors"
	"testing"

	"github.com/tutorlink/tutorlink-go/core"
)

func TestCredentialsValidate(t *testing.T) {
	creds := Credentials{Email: "  Jane@Uni.TEST  ", Password: "pwd"}
	if err := creds.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if creds.Email != "jane@uni.test" {
		t.Errorf("Email = %q, want cleaned lowercase", creds.Email)
	}

	creds = Credentials{Email: "not-an-email", Password: "pwd"}
	err := creds.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	var valErr *core.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Validate() error type = %T, want *core.ValidationError", err)
	}
	if len(valErr.Fields) != 1 || valErr.Fields[0].Field != "email" {
		t.Errorf("Fields = %+v, want one error on %q", valErr.Fields, "email")
	}
}

func TestRegisterStudentValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      RegisterStudent
		wantErr bool
	}{
		{
			name: "valid",
			in:   RegisterStudent{Email: "s@uni.test", Password: "longenough", FirstName: "Sam", LastName: "Smith"},
		},
		{
			name:    "short password",
			in:      RegisterStudent{Email: "s@uni.test", Password: "short", FirstName: "Sam", LastName: "Smith"},
			wantErr: true,
		},
		{
			name:    "missing names",
			in:      RegisterStudent{Email: "s@uni.test", Password: "longenough"},
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

func TestRoleValid(t *testing.T) {
	for _, role := range AllRoles {
		if !role.Valid() {
			t.Errorf("%s.Valid() = false", role)
		}
	}
	if Role("GUEST").Valid() {
		t.Error(`Role("GUEST").Valid() = true`)
	}
}
