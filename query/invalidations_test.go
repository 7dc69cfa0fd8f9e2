package query

import (
	"testing"

	"github.com/tutorlink/tutorlink-go/cache"
)

var allMutations = []mutation{
	mutCourseCreate, mutCourseUpdate, mutCourseDelete,
	mutClassSchedule, mutClassUpdate, mutClassCancel, mutClassDelete,
	mutEnroll, mutEnrollmentStatus, mutDirectEnroll,
	mutAvailabilityCreate, mutAvailabilityUpdate, mutAvailabilityDelete,
	mutGroupCreate, mutGroupUpdate, mutGroupDelete,
	mutGroupJoin, mutGroupApprove, mutGroupReject, mutGroupRemoveMember,
	mutLecturerProfileUpdate, mutStudentProfileUpdate,
	mutAdminUserStatus,
}

func TestInvalidationTableComplete(t *testing.T) {
	for _, m := range allMutations {
		prefixes, ok := invalidationTable[m]
		if !ok {
			t.Errorf("%s has no invalidation entry", m)
			continue
		}
		if len(prefixes) == 0 {
			t.Errorf("%s has an empty invalidation set", m)
		}
		for _, p := range prefixes {
			if len(p) == 0 {
				t.Errorf("%s declares an empty prefix, which would drop the whole cache", m)
			}
		}
		if m.failureMsg() == "" {
			t.Errorf("%s has no failure message", m)
		}
	}
	if len(invalidationTable) != len(allMutations) {
		t.Errorf("invalidationTable has %d entries, want %d; a mutation is missing from the test list",
			len(invalidationTable), len(allMutations))
	}
}

func TestInvalidationCoverage(t *testing.T) {
	// mutation -> a cached key that must be dropped by it
	tests := []struct {
		name string
		m    mutation
		key  cache.Key
	}{
		{name: "course create drops lecturer listing", m: mutCourseCreate, key: cache.NewKey("courses", "my-courses", "false")},
		{name: "course create drops catalog search", m: mutCourseCreate, key: cache.NewKey("courses", "search", "Math", "", "1", "20")},
		{name: "course update drops detail", m: mutCourseUpdate, key: cache.NewKey("courses", "detail", "crs-1")},
		{name: "course delete drops dashboard stats", m: mutCourseDelete, key: cache.NewKey("dashboard", "courses")},
		{name: "class cancel drops lecturer classes", m: mutClassCancel, key: cache.NewKey("classes", "my-classes", "", "")},
		{name: "class cancel drops student classes", m: mutClassCancel, key: cache.NewKey("student", "classes", "true")},
		{name: "enroll drops student enrollments", m: mutEnroll, key: cache.NewKey("student", "enrollments", "")},
		{name: "enroll drops student dashboard", m: mutEnroll, key: cache.NewKey("dashboard", "student")},
		{name: "status change drops pending count", m: mutEnrollmentStatus, key: cache.NewKey("enrollments", "pending-count")},
		{name: "status change drops course counts", m: mutEnrollmentStatus, key: cache.NewKey("courses", "my-courses", "false")},
		{name: "group join drops pending requests", m: mutGroupJoin, key: cache.NewKey("groups", "pending-requests")},
		{name: "group approve drops details", m: mutGroupApprove, key: cache.NewKey("groups", "details", "grp-1")},
		{name: "profile update drops lecturer profile", m: mutLecturerProfileUpdate, key: cache.NewKey("lecturer", "profile")},
		{name: "admin status drops admin users", m: mutAdminUserStatus, key: cache.NewKey("admin", "users", "1", "50", "", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covered := false
			for _, prefix := range invalidationTable[tt.m] {
				if tt.key.HasPrefix(prefix) {
					covered = true
					break
				}
			}
			if !covered {
				t.Errorf("%s does not invalidate %s", tt.m, tt.key)
			}
		})
	}
}

func TestInvalidationScope(t *testing.T) {
	// writes must not dirty unrelated subtrees
	tests := []struct {
		name string
		m    mutation
		key  cache.Key
	}{
		{name: "availability change keeps courses", m: mutAvailabilityCreate, key: cache.NewKey("courses", "my-courses", "false")},
		{name: "group join keeps enrollments", m: mutGroupJoin, key: cache.NewKey("enrollments", "pending-count")},
		{name: "profile update keeps groups", m: mutStudentProfileUpdate, key: cache.NewKey("groups", "mine")},
		{name: "course create keeps admin views", m: mutCourseCreate, key: cache.NewKey("admin", "stats")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, prefix := range invalidationTable[tt.m] {
				if tt.key.HasPrefix(prefix) {
					t.Errorf("%s needlessly invalidates %s", tt.m, tt.key)
				}
			}
		})
	}
}
