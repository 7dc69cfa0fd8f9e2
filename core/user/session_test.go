package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signToken() failed: %v", err)
	}
	return token
}

func TestSessionAccessTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return now }
	defer func() { NowFunc = time.Now }()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "empty token", want: true},
		{name: "garbage token", token: "not.a.jwt", want: true},
		{
			name:  "valid for another hour",
			token: func() string { return signToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}) }(),
		},
		{
			name:  "expired an hour ago",
			token: func() string { return signToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}) }(),
			want:  true,
		},
		{
			name:  "no exp claim",
			token: func() string { return signToken(t, jwt.MapClaims{"sub": "usr-1"}) }(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := Session{AccessToken: tt.token}
			if got := sess.AccessTokenExpired(); got != tt.want {
				t.Errorf("AccessTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionIsZero(t *testing.T) {
	if !(Session{}).IsZero() {
		t.Error("IsZero() = false for empty session")
	}
	if (Session{AccessToken: "at"}).IsZero() {
		t.Error("IsZero() = true for session with token")
	}
	if (Session{User: User{ID: "usr-1"}}).IsZero() {
		t.Error("IsZero() = true for session with user")
	}
}
