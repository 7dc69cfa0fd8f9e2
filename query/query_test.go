package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/client"
	"github.com/tutorlink/tutorlink-go/client/clienttest"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
	"github.com/tutorlink/tutorlink-go/query"
	notifysvc "github.com/tutorlink/tutorlink-go/services/notify"
	sessionstore "github.com/tutorlink/tutorlink-go/storage/session"
)

// recorder is the mock notifier surface the tests assert on.
type recorder interface {
	notifysvc.Notifier
	Sent() []notifysvc.Notification
	Reset()
}

// newStack builds an independent logged-out query stack against srv. Each
// stack has its own session store, cache and notifier, like one browser tab.
func newStack(t *testing.T, srv *clienttest.Server) (*query.Queries, recorder) {
	t.Helper()
	notifier := notifysvc.NewConsoleNotifierMock()
	api := client.New(srv.Config(), sessionstore.NewMemStore())
	return query.New(api, cache.New(5*time.Minute), notifier), notifier
}

func login(t *testing.T, q *query.Queries, email, password string) {
	t.Helper()
	_, err := q.Auth.Login(context.Background(), user.Credentials{Email: email, Password: password})
	require.NoError(t, err)
}

func lastSent(t *testing.T, rec recorder) notifysvc.Notification {
	t.Helper()
	sent := rec.Sent()
	require.NotEmpty(t, sent)
	return sent[len(sent)-1]
}

func TestCourseCreateRefreshesListing(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	q, rec := newStack(t, srv)
	login(t, q, "jane@uni.test", "pass1234")
	ctx := context.Background()

	mine, err := q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, mine)

	created, err := q.Courses.Create(ctx, course.CreateCourse{
		Name:       "Linear Algebra",
		Subject:    "Mathematics",
		Duration:   60,
		HourlyRate: 35,
	}, course.Upload{})
	require.NoError(t, err)

	n := lastSent(t, rec)
	assert.Equal(t, notifysvc.KindSuccess, n.Kind)
	assert.Equal(t, "Course created successfully", n.Message)

	// the create dropped the cached listing, so this refetches
	mine, err = q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
	assert.True(t, mine[0].IsActive)
}

func TestCourseListingCachedUntilInvalidated(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	lec := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	q, _ := newStack(t, srv)
	login(t, q, "jane@uni.test", "pass1234")
	ctx := context.Background()

	mine, err := q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// the server gained a course, but the cached read must not see it
	srv.SeedCourse(lec.ID, "Physics", "Science")
	mine, err = q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, mine)

	q.Cache().Clear()
	mine, err = q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestEnrollmentApprovalFlow(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	lec := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	srv.SeedStudent("sam@uni.test", "pass1234", "Sam", "Lee")
	crs := srv.SeedCourse(lec.ID, "Linear Algebra", "Mathematics")

	studentQ, studentRec := newStack(t, srv)
	login(t, studentQ, "sam@uni.test", "pass1234")
	lecturerQ, lecturerRec := newStack(t, srv)
	login(t, lecturerQ, "jane@uni.test", "pass1234")
	ctx := context.Background()

	enr, err := studentQ.Students.Enroll(ctx, enrollment.EnrollRequest{CourseID: crs.ID})
	require.NoError(t, err)
	assert.Equal(t, enrollment.StatusPending, enr.Status)
	assert.Equal(t, "Enrollment request sent", lastSent(t, studentRec).Message)

	count, err := lecturerQ.Enrollments.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	pending, err := lecturerQ.Enrollments.List(ctx, enrollment.StatusPending, "")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	det, err := lecturerQ.Enrollments.UpdateStatus(ctx, pending[0].ID,
		enrollment.StatusUpdate{Status: enrollment.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, enrollment.StatusApproved, det.Status)
	assert.NotEmpty(t, det.ApprovedAt)
	assert.Equal(t, "Enrollment approved", lastSent(t, lecturerRec).Message)

	// the count was invalidated by the approval, not served stale
	count, err = lecturerQ.Enrollments.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// resolving twice must fail and surface an error notification
	lecturerRec.Reset()
	_, err = lecturerQ.Enrollments.UpdateStatus(ctx, pending[0].ID,
		enrollment.StatusUpdate{Status: enrollment.StatusRejected})
	require.Error(t, err)
	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)

	n := lastSent(t, lecturerRec)
	assert.Equal(t, notifysvc.KindError, n.Kind)
	assert.Equal(t, "enrollment.status failed", n.Message)
}

func TestGroupJoinApproveFlow(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	owner := srv.SeedStudent("ana@uni.test", "pass1234", "Ana", "Gomez")
	srv.SeedStudent("sam@uni.test", "pass1234", "Sam", "Lee")
	grp := srv.SeedGroup(owner.ID, "Study Crew")

	ownerQ, ownerRec := newStack(t, srv)
	login(t, ownerQ, "ana@uni.test", "pass1234")
	memberQ, memberRec := newStack(t, srv)
	login(t, memberQ, "sam@uni.test", "pass1234")
	ctx := context.Background()

	err := memberQ.Groups.JoinByCode(ctx, grp.GroupCode)
	require.NoError(t, err)
	assert.Equal(t, "Join request sent", lastSent(t, memberRec).Message)

	reqs, err := ownerQ.Groups.PendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, grp.ID, reqs[0].GroupID)
	assert.Equal(t, "Sam", reqs[0].Student.FirstName)

	err = ownerQ.Groups.ApproveRequest(ctx, reqs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Request approved", lastSent(t, ownerRec).Message)

	info, err := ownerQ.Groups.Details(ctx, grp.ID)
	require.NoError(t, err)
	require.Len(t, info.Members, 1)
	assert.Equal(t, enrollment.StatusApproved, info.Members[0].Status)
	assert.Equal(t, 1, info.Stats.TotalMembers)
	assert.Equal(t, 0, info.Stats.PendingRequests)

	joined, err := memberQ.Groups.Joined(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, grp.ID, joined[0].ID)
}

func TestInactiveCourseHiddenFromSearchNotFromEnrolled(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	lec := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	stu := srv.SeedStudent("sam@uni.test", "pass1234", "Sam", "Lee")
	crs := srv.SeedCourse(lec.ID, "Linear Algebra", "Mathematics")

	lecturerQ, _ := newStack(t, srv)
	login(t, lecturerQ, "jane@uni.test", "pass1234")
	studentQ, _ := newStack(t, srv)
	login(t, studentQ, "sam@uni.test", "pass1234")
	ctx := context.Background()

	_, err := lecturerQ.Enrollments.DirectEnroll(ctx, enrollment.DirectEnroll{CourseID: crs.ID, StudentID: stu.ID})
	require.NoError(t, err)

	inactive := false
	_, err = lecturerQ.Courses.Update(ctx, crs.ID, course.UpdateCourse{IsActive: &inactive}, course.Upload{})
	require.NoError(t, err)

	page, err := studentQ.Courses.Search(ctx, course.SearchParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	// the deactivated course stays visible through the existing enrollment
	enrolled, err := studentQ.Students.EnrolledCourses(ctx)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, crs.ID, enrolled[0].ID)
	assert.False(t, enrolled[0].IsActive)
}

func TestClassCancelIsFinal(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	lec := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	stu := srv.SeedStudent("sam@uni.test", "pass1234", "Sam", "Lee")
	crs := srv.SeedCourse(lec.ID, "Linear Algebra", "Mathematics")
	cls := srv.SeedClass(crs.ID, lec.ID, stu.ID)

	q, rec := newStack(t, srv)
	login(t, q, "jane@uni.test", "pass1234")
	ctx := context.Background()

	cancelled, err := q.Classes.Cancel(ctx, cls.ID)
	require.NoError(t, err)
	assert.Equal(t, class.StatusCancelled, cancelled.Status)
	assert.Equal(t, "Class cancelled", lastSent(t, rec).Message)

	rec.Reset()
	_, err = q.Classes.Cancel(ctx, cls.ID)
	require.Error(t, err)
	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, notifysvc.KindError, lastSent(t, rec).Kind)
}

func TestLogoutClearsCache(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	q, rec := newStack(t, srv)
	login(t, q, "jane@uni.test", "pass1234")
	ctx := context.Background()

	_, err := q.Courses.Mine(ctx, false)
	require.NoError(t, err)
	key := cache.NewKey("courses", "my-courses", "false")
	_, hit := q.Cache().Peek(key)
	require.True(t, hit)

	require.NoError(t, q.Auth.Logout())
	assert.Equal(t, "Logged out successfully", lastSent(t, rec).Message)

	_, hit = q.Cache().Peek(key)
	assert.False(t, hit)
	_, loggedIn := q.Auth.Current()
	assert.False(t, loggedIn)
}
