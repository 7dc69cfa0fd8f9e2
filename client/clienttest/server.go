// Package clienttest runs an in-memory TutorLink API double for client and
// query tests: real HTTP, seeded fixtures, token auth with countable
// refreshes, and the lifecycle rules the production backend enforces.
package clienttest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/availability"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/group"
	"github.com/tutorlink/tutorlink-go/core/user"
)

type account struct {
	user     user.User
	password string

	phone          string
	bio            string
	qualifications string
	university     string
	studentID      string
	isActive       bool
	createdAt      string
}

// Server is the fake API. All mutation of its state goes through mu; the
// echo handlers and the test goroutine share it.
type Server struct {
	mu  sync.Mutex
	srv *httptest.Server

	seq int

	users         map[string]*account // by user ID
	accessTokens  map[string]string   // token -> user ID
	refreshTokens map[string]string   // token -> user ID

	courses      map[string]*course.Course
	classes      map[string]*class.Class
	enrollments  map[string]*enrollment.Details
	availability map[string]*availability.Availability
	groups       map[string]*group.StudentGroup
	members      map[string]*memberRec // by membership (enrollment) ID

	refreshCalls int
	failRefresh  bool
	failNext     int
}

type memberRec struct {
	id        string
	groupID   string
	studentID string
	status    enrollment.Status
	createdAt string
}

// New starts the fake server. Callers own the Close.
func New() *Server {
	s := &Server{
		users:         map[string]*account{},
		accessTokens:  map[string]string{},
		refreshTokens: map[string]string{},
		courses:       map[string]*course.Course{},
		classes:       map[string]*class.Class{},
		enrollments:   map[string]*enrollment.Details{},
		availability:  map[string]*availability.Availability{},
		groups:        map[string]*group.StudentGroup{},
		members:       map[string]*memberRec{},
	}

	e := echo.New()
	e.HideBanner = true
	s.routes(e)
	s.srv = httptest.NewServer(e)
	return s
}

func (s *Server) Close() { s.srv.Close() }

func (s *Server) URL() string { return s.srv.URL }

// Config returns a client config pointed at this server.
func (s *Server) Config() *core.Config {
	conf := &core.Config{TestMode: true}
	conf.API.BaseURL = s.srv.URL
	conf.API.Timeout = 5 * time.Second
	conf.Cache.StaleTime = 5 * time.Minute
	return conf
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// SeedLecturer registers a lecturer account directly into server state.
func (s *Server) SeedLecturer(email, password, firstName, lastName string) user.User {
	return s.seedUser(email, password, firstName, lastName, user.RoleLecturer)
}

func (s *Server) SeedStudent(email, password, firstName, lastName string) user.User {
	return s.seedUser(email, password, firstName, lastName, user.RoleStudent)
}

func (s *Server) SeedAdmin(email, password, firstName, lastName string) user.User {
	return s.seedUser(email, password, firstName, lastName, user.RoleAdmin)
}

func (s *Server) seedUser(email, password, firstName, lastName string, role user.Role) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user.User{
		ID:        s.nextID("usr"),
		Email:     email,
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
	}
	s.users[u.ID] = &account{user: u, password: password, isActive: true, createdAt: now()}
	return u
}

// SeedCourse creates an active course owned by the lecturer.
func (s *Server) SeedCourse(lecturerID, name, subject string) course.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	crs := course.Course{
		ID:         s.nextID("crs"),
		LecturerID: lecturerID,
		Name:       name,
		Subject:    subject,
		Duration:   60,
		HourlyRate: 25,
		IsActive:   true,
		CreatedAt:  now(),
		UpdatedAt:  now(),
	}
	s.courses[crs.ID] = &crs
	return crs
}

// SeedPendingEnrollment files a PENDING request from the student for the course.
func (s *Server) SeedPendingEnrollment(courseID, studentID string) enrollment.Details {
	s.mu.Lock()
	defer s.mu.Unlock()
	det := s.newEnrollment(courseID, studentID, "", enrollment.StatusPending)
	return *det
}

// SeedClass schedules a class on the course for the student.
func (s *Server) SeedClass(courseID, lecturerID, studentID string) class.Class {
	s.mu.Lock()
	defer s.mu.Unlock()

	cls := class.Class{
		ID:         s.nextID("cls"),
		CourseID:   courseID,
		LecturerID: lecturerID,
		StudentID:  studentID,
		Date:       time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:  "10:00",
		EndTime:    "11:00",
		Status:     class.StatusScheduled,
		CreatedAt:  now(),
		UpdatedAt:  now(),
	}
	s.classes[cls.ID] = &cls
	return cls
}

// SeedGroup creates an active group owned by the student.
func (s *Server) SeedGroup(creatorID, name string) group.StudentGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	grp := group.StudentGroup{
		ID:        s.nextID("grp"),
		Name:      name,
		GroupCode: "GRP" + uuid.NewString()[:8],
		CreatedBy: creatorID,
		IsActive:  true,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	s.groups[grp.ID] = &grp
	return grp
}

// newEnrollment must be called with mu held.
func (s *Server) newEnrollment(courseID, studentID, groupID string, status enrollment.Status) *enrollment.Details {
	det := &enrollment.Details{
		ID:             s.nextID("enr"),
		Status:         status,
		RequestedAt:    now(),
		StudentID:      studentID,
		StudentGroupID: groupID,
	}
	if status == enrollment.StatusApproved {
		det.ApprovedAt = now()
	}
	if crs, ok := s.courses[courseID]; ok {
		det.Course.ID = crs.ID
		det.Course.Name = crs.Name
		det.Course.Subject = crs.Subject
		det.Course.Level = crs.Level
	} else {
		det.Course.ID = courseID
	}
	if acc, ok := s.users[studentID]; ok {
		st := &struct {
			ID         string `json:"id"`
			FirstName  string `json:"firstName"`
			LastName   string `json:"lastName"`
			Phone      string `json:"phone,omitempty"`
			University string `json:"university,omitempty"`
			StudentID  string `json:"studentId,omitempty"`
			Email      string `json:"email"`
		}{
			ID:        acc.user.ID,
			FirstName: acc.user.FirstName,
			LastName:  acc.user.LastName,
			Email:     acc.user.Email,
		}
		det.Student = st
	}
	if grp, ok := s.groups[groupID]; ok {
		sg := &struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}{ID: grp.ID, Name: grp.Name}
		det.StudentGroup = sg
	}
	s.enrollments[det.ID] = det
	return det
}

// Session issues a fresh token pair for the user and returns the session a
// client would hold after login.
func (s *Server) Session(userID string) user.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.users[userID]
	at, rt := s.issueTokens(userID)
	return user.Session{User: acc.user, AccessToken: at, RefreshToken: rt}
}

// ExpiredSession returns a session whose access token the server no longer
// accepts but whose refresh token is still good. The first authenticated
// request 401s and forces a refresh.
func (s *Server) ExpiredSession(userID string) user.Session {
	sess := s.Session(userID)

	s.mu.Lock()
	delete(s.accessTokens, sess.AccessToken)
	s.mu.Unlock()
	return sess
}

// RevokedSession returns a session with both tokens invalid; a refresh
// attempt against it fails.
func (s *Server) RevokedSession(userID string) user.Session {
	sess := s.ExpiredSession(userID)

	s.mu.Lock()
	delete(s.refreshTokens, sess.RefreshToken)
	s.mu.Unlock()
	return sess
}

// issueTokens must be called with mu held.
func (s *Server) issueTokens(userID string) (access, refresh string) {
	access = "at-" + uuid.NewString()
	refresh = "rt-" + uuid.NewString()
	s.accessTokens[access] = userID
	s.refreshTokens[refresh] = userID
	return access, refresh
}

// RefreshCalls reports how many times /auth/refresh was hit.
func (s *Server) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// SetFailRefresh makes /auth/refresh answer 401 regardless of the token.
func (s *Server) SetFailRefresh(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRefresh = fail
}

// FailNext makes the next n requests answer 500 before any routing.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// Course returns a snapshot of a stored course.
func (s *Server) Course(id string) (course.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[id]
	if !ok {
		return course.Course{}, false
	}
	return *crs, true
}

// Enrollment returns a snapshot of a stored enrollment.
func (s *Server) Enrollment(id string) (enrollment.Details, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	det, ok := s.enrollments[id]
	if !ok {
		return enrollment.Details{}, false
	}
	return *det, true
}

// apiError writes the backend's error envelope.
func apiError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"message": msg})
}

// errUnauthenticated aborts a handler after authed has already written the
// 401 envelope; the response is committed, so echo only logs it.
var errUnauthenticated = errors.New("unauthenticated")

// authed resolves the bearer token to a user. On failure the 401 envelope
// has been written and the returned error is always non-nil, so handlers
// can bail with `return err` without touching the account.
func (s *Server) authed(c echo.Context) (*account, error) {
	h := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || h[:len(prefix)] != prefix {
		if err := apiError(c, http.StatusUnauthorized, "missing token"); err != nil {
			return nil, err
		}
		return nil, errUnauthenticated
	}

	s.mu.Lock()
	userID, ok := s.accessTokens[h[len(prefix):]]
	acc := s.users[userID]
	s.mu.Unlock()
	if !ok || acc == nil {
		if err := apiError(c, http.StatusUnauthorized, "invalid or expired token"); err != nil {
			return nil, err
		}
		return nil, errUnauthenticated
	}
	return acc, nil
}
