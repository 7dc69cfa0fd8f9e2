// Package query is the data-fetching and mutation layer between consumers
// (the CLI, any UI) and the API client: reads go through the key-addressed
// cache, writes invalidate their statically declared key set and emit a
// user-visible notification.
//
// Every query returns the typed result or a typed error; nothing panics
// across this boundary.
package query

import (
	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/client"
	notifysvc "github.com/tutorlink/tutorlink-go/services/notify"
)

// Queries bundles the per-feature query groups over one client, one cache
// and one notifier.
type Queries struct {
	api    *client.Client
	cache  *cache.Cache
	notify notifysvc.Notifier

	Auth         *AuthQueries
	Courses      *CourseQueries
	Classes      *ClassQueries
	Enrollments  *EnrollmentQueries
	Availability *AvailabilityQueries
	Groups       *GroupQueries
	Lecturers    *LecturerQueries
	Students     *StudentQueries
	Dashboard    *DashboardQueries
	Admin        *AdminQueries
}

func New(api *client.Client, c *cache.Cache, notifier notifysvc.Notifier) *Queries {
	q := &Queries{api: api, cache: c, notify: notifier}
	q.Auth = &AuthQueries{q}
	q.Courses = &CourseQueries{q}
	q.Classes = &ClassQueries{q}
	q.Enrollments = &EnrollmentQueries{q}
	q.Availability = &AvailabilityQueries{q}
	q.Groups = &GroupQueries{q}
	q.Lecturers = &LecturerQueries{q}
	q.Students = &StudentQueries{q}
	q.Dashboard = &DashboardQueries{q}
	q.Admin = &AdminQueries{q}
	return q
}

// Cache exposes the underlying cache, mainly to tests.
func (q *Queries) Cache() *cache.Cache { return q.cache }

// mutate runs a write, then invalidates the mutation's declared key set and
// notifies. The invalidation set lives in invalidations.go; run returns the
// success message so list/detail messages can carry entity names.
func (q *Queries) mutate(m mutation, run func() (string, error)) error {
	msg, err := run()
	if err != nil {
		q.notify.Error(m.failureMsg(), err)
		return err
	}
	q.cache.Invalidate(invalidationTable[m]...)
	q.notify.Success(msg)
	return nil
}
