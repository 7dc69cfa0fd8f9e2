package query

import "github.com/tutorlink/tutorlink-go/cache"

// mutation identifies one write operation. Each entry in invalidationTable
// is that mutation's contract: the full set of query-key prefixes whose
// cached data the write could have changed. A missing prefix is a staleness
// bug, not a crash, so the table is kept explicit and tested exhaustively.
type mutation string

const (
	mutCourseCreate mutation = "course.create"
	mutCourseUpdate mutation = "course.update"
	mutCourseDelete mutation = "course.delete"

	mutClassSchedule mutation = "class.schedule"
	mutClassUpdate   mutation = "class.update"
	mutClassCancel   mutation = "class.cancel"
	mutClassDelete   mutation = "class.delete"

	mutEnroll           mutation = "enrollment.request"
	mutEnrollmentStatus mutation = "enrollment.status"
	mutDirectEnroll     mutation = "enrollment.direct"

	mutAvailabilityCreate mutation = "availability.create"
	mutAvailabilityUpdate mutation = "availability.update"
	mutAvailabilityDelete mutation = "availability.delete"

	mutGroupCreate       mutation = "group.create"
	mutGroupUpdate       mutation = "group.update"
	mutGroupDelete       mutation = "group.delete"
	mutGroupJoin         mutation = "group.join"
	mutGroupApprove      mutation = "group.approve"
	mutGroupReject       mutation = "group.reject"
	mutGroupRemoveMember mutation = "group.remove-member"

	mutLecturerProfileUpdate mutation = "lecturer.profile.update"
	mutStudentProfileUpdate  mutation = "student.profile.update"

	mutAdminUserStatus mutation = "admin.user.status"
)

func (m mutation) failureMsg() string { return string(m) + " failed" }

// invalidationTable declares, per mutation, every cached key prefix it
// dirties. Dashboards aggregate counts over courses, classes and
// enrollments, so writes to those resources dirty the dashboards too.
var invalidationTable = map[mutation][]cache.Key{
	mutCourseCreate: {{"courses"}, {"dashboard"}},
	mutCourseUpdate: {{"courses"}, {"dashboard"}},
	mutCourseDelete: {{"courses"}, {"dashboard"}},

	mutClassSchedule: {{"classes"}, {"student", "classes"}, {"dashboard"}},
	mutClassUpdate:   {{"classes"}, {"student", "classes"}, {"dashboard"}},
	mutClassCancel:   {{"classes"}, {"student", "classes"}, {"dashboard"}},
	mutClassDelete:   {{"classes"}, {"student", "classes"}, {"dashboard"}},

	mutEnroll: {{"student", "enrollments"}, {"student", "courses"}, {"dashboard", "student"}},
	mutEnrollmentStatus: {
		{"enrollments"}, // lecturer list + pending count
		{"courses"},     // enrollment counts on course rows
		{"dashboard"},
	},
	mutDirectEnroll: {{"enrollments"}, {"courses"}, {"dashboard"}},

	mutAvailabilityCreate: {{"lecturer", "availability"}},
	mutAvailabilityUpdate: {{"lecturer", "availability"}},
	mutAvailabilityDelete: {{"lecturer", "availability"}},

	// group mutations dirty the group lists, the detail views and the
	// pending-requests list; one prefix covers them all
	mutGroupCreate:       {{"groups"}},
	mutGroupUpdate:       {{"groups"}},
	mutGroupDelete:       {{"groups"}},
	mutGroupJoin:         {{"groups"}},
	mutGroupApprove:      {{"groups"}},
	mutGroupReject:       {{"groups"}},
	mutGroupRemoveMember: {{"groups"}},

	mutLecturerProfileUpdate: {{"lecturer", "profile"}},
	mutStudentProfileUpdate:  {{"student", "profile"}},

	mutAdminUserStatus: {{"admin"}},
}
