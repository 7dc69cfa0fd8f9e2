package nav

import (
	"testing"

	"github.com/tutorlink/tutorlink-go/core/user"
)

func sessionFor(role user.Role) user.Session {
	return user.Session{
		User:        user.User{ID: "usr-1", Role: role},
		AccessToken: "at-1",
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		sess user.Session
		path string
		want Decision
	}{
		// public paths render for everyone
		{name: "login logged out", path: PathLogin, want: Render},
		{name: "register logged out", path: PathRegister, want: Render},
		{name: "unauthorized logged out", path: PathUnauthorized, want: Render},
		{name: "login logged in", sess: sessionFor(user.RoleStudent), path: PathLogin, want: Render},

		// logged out gets sent to login
		{name: "lecturer area logged out", path: "/lecturer/dashboard", want: RedirectLogin},
		{name: "student area logged out", path: "/student/courses", want: RedirectLogin},
		{name: "unknown path logged out", path: "/nowhere", want: RedirectLogin},

		// own area renders
		{name: "lecturer own dashboard", sess: sessionFor(user.RoleLecturer), path: "/lecturer/dashboard", want: Render},
		{name: "lecturer nested route", sess: sessionFor(user.RoleLecturer), path: "/lecturer/courses/crs-1/edit", want: Render},
		{name: "lecturer bare prefix", sess: sessionFor(user.RoleLecturer), path: "/lecturer", want: Render},
		{name: "student own area", sess: sessionFor(user.RoleStudent), path: "/student/groups", want: Render},
		{name: "admin own area", sess: sessionFor(user.RoleAdmin), path: "/admin/users", want: Render},

		// crossing into another role's area is unauthorized
		{name: "lecturer in student area", sess: sessionFor(user.RoleLecturer), path: "/student/dashboard", want: RedirectUnauthorized},
		{name: "student in lecturer area", sess: sessionFor(user.RoleStudent), path: "/lecturer/enrollments", want: RedirectUnauthorized},
		{name: "student in admin area", sess: sessionFor(user.RoleStudent), path: "/admin/stats", want: RedirectUnauthorized},
		{name: "admin in lecturer area", sess: sessionFor(user.RoleAdmin), path: "/lecturer/dashboard", want: RedirectUnauthorized},

		// prefix matching is segment-wise, not string-wise
		{name: "lookalike prefix", sess: sessionFor(user.RoleLecturer), path: "/lecturers/dashboard", want: RedirectUnauthorized},

		// off-prefix paths while logged in
		{name: "unknown path logged in", sess: sessionFor(user.RoleStudent), path: "/nowhere", want: RedirectUnauthorized},
		{name: "unknown role", sess: user.Session{User: user.User{ID: "u", Role: "GHOST"}, AccessToken: "at"}, path: "/student/dashboard", want: RedirectUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.sess, tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestHome(t *testing.T) {
	tests := []struct {
		role user.Role
		want string
	}{
		{user.RoleLecturer, "/lecturer/dashboard"},
		{user.RoleStudent, "/student/dashboard"},
		{user.RoleAdmin, "/admin/dashboard"},
	}
	for _, tt := range tests {
		if got := Home(tt.role); got != tt.want {
			t.Errorf("Home(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestItems(t *testing.T) {
	for _, role := range user.AllRoles {
		items := Items(role)
		if len(items) == 0 {
			t.Fatalf("Items(%s) is empty", role)
		}
		prefix := rolePrefix[role]
		for _, item := range items {
			if Resolve(sessionFor(role), item.Path) != Render {
				t.Errorf("Items(%s): %q does not render for its own role", role, item.Path)
			}
			if !Active(item, item.Path) {
				t.Errorf("Active() = false for exact match on %q", item.Path)
			}
			if item.Path[:len(prefix)] != prefix {
				t.Errorf("Items(%s): %q is outside %q", role, item.Path, prefix)
			}
		}
	}
	if Items("GHOST") != nil {
		t.Error(`Items("GHOST") != nil`)
	}

	// callers get a copy
	items := Items(user.RoleStudent)
	items[0].Label = "mutated"
	if Items(user.RoleStudent)[0].Label == "mutated" {
		t.Error("Items() returned shared slice")
	}
}

func TestActive(t *testing.T) {
	item := Item{Label: "My Courses", Path: "/lecturer/courses"}
	if !Active(item, "/lecturer/courses/crs-1") {
		t.Error("Active() = false for nested route")
	}
	if Active(item, "/lecturer/courses-archive") {
		t.Error("Active() = true for lookalike path")
	}
}
