// Package nav decides what a session may see: which route prefixes a role
// owns, which paths are public, and where to send a visitor who is logged
// out or in the wrong area.
package nav

import (
	"strings"

	"github.com/tutorlink/tutorlink-go/core/user"
)

// Decision is the outcome of resolving a path for a session.
type Decision int

const (
	Render Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	}
	return "unknown"
}

const (
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathUnauthorized = "/unauthorized"
)

var publicPaths = map[string]bool{
	PathLogin:        true,
	PathRegister:     true,
	PathUnauthorized: true,
}

var rolePrefix = map[user.Role]string{
	user.RoleLecturer: "/lecturer",
	user.RoleStudent:  "/student",
	user.RoleAdmin:    "/admin",
}

// Home is the landing route for a role after login.
func Home(role user.Role) string {
	return rolePrefix[role] + "/dashboard"
}

// Resolve applies the route guard: public paths always render; everything
// else needs a session, and a session only renders paths under its own
// role prefix. Anything off the known prefixes is treated as unauthorized
// rather than rendered.
func Resolve(sess user.Session, path string) Decision {
	if publicPaths[path] {
		return Render
	}
	if sess.IsZero() {
		return RedirectLogin
	}

	prefix, ok := rolePrefix[sess.User.Role]
	if !ok {
		return RedirectUnauthorized
	}
	if path == prefix || strings.HasPrefix(path, prefix+"/") {
		return Render
	}
	return RedirectUnauthorized
}

// Item is one sidebar entry.
type Item struct {
	Label string
	Path  string
}

var lecturerItems = []Item{
	{"Dashboard", "/lecturer/dashboard"},
	{"My Courses", "/lecturer/courses"},
	{"Classes", "/lecturer/classes"},
	{"Enrollments", "/lecturer/enrollments"},
	{"Availability", "/lecturer/availability"},
	{"Register Student", "/lecturer/register-student"},
	{"Direct Enrollment", "/lecturer/direct-enrollment"},
	{"Profile", "/lecturer/profile"},
}

var studentItems = []Item{
	{"Dashboard", "/student/dashboard"},
	{"Browse Courses", "/student/courses"},
	{"My Enrollments", "/student/enrollments"},
	{"My Classes", "/student/classes"},
	{"Study Groups", "/student/groups"},
	{"Profile", "/student/profile"},
}

var adminItems = []Item{
	{"Dashboard", "/admin/dashboard"},
	{"Users", "/admin/users"},
	{"Courses", "/admin/courses"},
	{"Enrollments", "/admin/enrollments"},
	{"Settings", "/admin/settings"},
}

// Items returns the sidebar entries for a role. The slice is a copy;
// callers may reorder it.
func Items(role user.Role) []Item {
	var src []Item
	switch role {
	case user.RoleLecturer:
		src = lecturerItems
	case user.RoleStudent:
		src = studentItems
	case user.RoleAdmin:
		src = adminItems
	default:
		return nil
	}
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// Active reports whether an item should be highlighted for the current
// path: exact match or a nested route under the item's path.
func Active(item Item, path string) bool {
	return path == item.Path || strings.HasPrefix(path, item.Path+"/")
}
