package client_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/tutorlink-go/client"
	"github.com/tutorlink/tutorlink-go/client/clienttest"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/user"
	sessionstore "github.com/tutorlink/tutorlink-go/storage/session"
)

func setup(t *testing.T) (*clienttest.Server, *client.Client, user.Store) {
	srv := clienttest.New()
	t.Cleanup(srv.Close)
	sessions := sessionstore.NewMemStore()
	api := client.New(srv.Config(), sessions)
	return srv, api, sessions
}

func TestLoginStoresSession(t *testing.T) {
	srv, api, sessions := setup(t)
	srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	auth, err := api.Auth.Login(context.Background(), user.Credentials{Email: "jane@uni.test", Password: "pass1234"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleLecturer, auth.User.Role)

	sess, ok := sessions.Get()
	require.True(t, ok)
	assert.Equal(t, auth.AccessToken, sess.AccessToken)
	assert.Equal(t, auth.RefreshToken, sess.RefreshToken)

	// the stored token authenticates subsequent calls
	_, err = api.Courses.Mine(context.Background(), false)
	assert.NoError(t, err)
}

func TestLoginBadCredentials(t *testing.T) {
	srv, api, sessions := setup(t)
	srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	_, err := api.Auth.Login(context.Background(), user.Credentials{Email: "jane@uni.test", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, core.IsAuthError(err))

	_, ok := sessions.Get()
	assert.False(t, ok, "failed login must not store a session")
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	srv.SeedCourse(lect.ID, "Algebra I", "Math")

	require.NoError(t, sessions.Set(srv.ExpiredSession(lect.ID)))

	const n = 6
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = api.Courses.Mine(context.Background(), false)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, 1, srv.RefreshCalls(), "concurrent 401s must coalesce into one refresh")

	// the rotated pair replaced the stored one
	sess, ok := sessions.Get()
	require.True(t, ok)
	assert.False(t, sess.AccessTokenExpired() && sess.AccessToken == "")
}

func TestConcurrentInvalidTokensGet401s(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	// tokens the server never issued: every request must come back as a
	// clean 401 envelope, never a dropped connection
	require.NoError(t, sessions.Set(user.Session{
		User:         lect,
		AccessToken:  "at-bogus",
		RefreshToken: "rt-bogus",
	}))

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = api.Courses.Mine(context.Background(), false)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.Error(t, err, "request %d", i)
		assert.True(t, core.IsAuthError(err), "request %d: got %v", i, err)
	}

	// the shared refresh attempt failed, so the session is gone
	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestFailedRefreshClearsSession(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")

	require.NoError(t, sessions.Set(srv.RevokedSession(lect.ID)))

	_, err := api.Courses.Mine(context.Background(), false)
	require.Error(t, err)
	assert.True(t, core.IsAuthError(err))

	_, ok := sessions.Get()
	assert.False(t, ok, "session must be cleared after a failed refresh")
}

func TestRefreshNotTriggeredOnLogin401(t *testing.T) {
	srv, api, _ := setup(t)

	_, err := api.Auth.Login(context.Background(), user.Credentials{Email: "ghost@uni.test", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, 0, srv.RefreshCalls(), "auth endpoints must never trigger a refresh")
}

func TestGetRetriedOnceOn5xx(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	srv.FailNext(1)
	_, err := api.Courses.Mine(context.Background(), false)
	assert.NoError(t, err, "a single 5xx on a GET is retried")

	srv.FailNext(2)
	_, err = api.Courses.Mine(context.Background(), false)
	require.Error(t, err)
	assert.True(t, core.IsServerError(err), "two 5xx in a row surface the error")
}

func TestMutationNeverRetried(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	srv.FailNext(1)
	_, err := api.Courses.Create(context.Background(), course.CreateCourse{
		Name: "Algebra I", Subject: "Math", Duration: 60,
	}, course.Upload{})
	require.Error(t, err)
	assert.True(t, core.IsServerError(err), "a 5xx on a mutation must not be retried")

	courses, err := api.Courses.Mine(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, courses, "the failed create must not have gone through twice")
}

func TestCreateCourseJSON(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	crs, err := api.Courses.Create(context.Background(), course.CreateCourse{
		Name:       "  Algebra I  ",
		Subject:    "Math",
		Level:      "Beginner",
		Duration:   60,
		HourlyRate: 25,
	}, course.Upload{})
	require.NoError(t, err)
	assert.Equal(t, "Algebra I", crs.Name, "input strings are cleaned before sending")
	assert.True(t, crs.IsActive, "new courses start active")
	assert.Empty(t, crs.Flyer)
}

func TestCreateCourseMultipart(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	up := course.Upload{
		Flyer: core.Attachment{Filename: "flyer.png", ContentType: "image/png", Content: []byte{0x89, 0x50}},
		Images: []core.Attachment{
			{Filename: "a.jpg", ContentType: "image/jpeg", Content: []byte{0xff}},
			{Filename: "b.jpg", ContentType: "image/jpeg", Content: []byte{0xd8}},
		},
	}
	crs, err := api.Courses.Create(context.Background(), course.CreateCourse{
		Name: "Algebra I", Subject: "Math", Duration: 60, HourlyRate: 25,
	}, up)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/flyer.png", crs.Flyer)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, crs.Images)
	assert.Equal(t, 60, crs.Duration, "scalar fields survive multipart string coercion")
}

func TestCreateCourseValidationFailsBeforeRequest(t *testing.T) {
	_, api, sessions := setup(t)
	// no session on purpose: a client-side rejection must not need one
	_ = sessions

	_, err := api.Courses.Create(context.Background(), course.CreateCourse{
		Name: "Algebra I", Subject: "Math", Duration: 10, // below the 15 minute floor
	}, course.Upload{})
	require.Error(t, err)

	var valErr *core.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.False(t, core.IsServerError(err))
}

func TestUpdateCourseSendsOnlySetFields(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	crs := srv.SeedCourse(lect.ID, "Algebra I", "Math")
	sessions.Set(srv.Session(lect.ID))

	inactive := false
	got, err := api.Courses.Update(context.Background(), crs.ID, course.UpdateCourse{IsActive: &inactive}, course.Upload{})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Algebra I", got.Name, "unset fields stay untouched")
	assert.Equal(t, "Math", got.Subject)
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	_, err := api.Courses.ByID(context.Background(), "crs-missing")
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "course not found", apiErr.Message)
}

func TestForbiddenKeepsSession(t *testing.T) {
	srv, api, sessions := setup(t)
	student := srv.SeedStudent("sam@uni.test", "pass1234", "Sam", "Smith")
	sessions.Set(srv.Session(student.ID))

	_, err := api.Lecturers.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsAuthorizationError(err))
	assert.Equal(t, 0, srv.RefreshCalls(), "403 must not trigger a refresh")

	_, ok := sessions.Get()
	assert.True(t, ok, "403 must not clear the session")
}

func TestLogoutClearsSession(t *testing.T) {
	srv, api, sessions := setup(t)
	lect := srv.SeedLecturer("jane@uni.test", "pass1234", "Jane", "Doe")
	sessions.Set(srv.Session(lect.ID))

	require.NoError(t, api.Auth.Logout())
	_, ok := sessions.Get()
	assert.False(t, ok)
}
