package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

// StudentService maps the /student endpoints.
type StudentService struct {
	c *Client
}

func (s *StudentService) Profile(ctx context.Context) (*user.StudentProfile, error) {
	var prof user.StudentProfile
	if err := s.c.get(ctx, "/student/profile", nil, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// UpdateProfile updates the student's profile; with a profile image attached
// the request switches to multipart, otherwise plain JSON.
func (s *StudentService) UpdateProfile(ctx context.Context, up user.UpdateStudentProfile, image core.Attachment) (*user.StudentProfile, error) {
	if err := up.Validate(); err != nil {
		return nil, err
	}

	f := &form{jsonBody: up}
	f.addStringPtr("firstName", up.FirstName)
	f.addStringPtr("lastName", up.LastName)
	f.addStringPtr("phone", up.Phone)
	f.addStringPtr("university", up.University)
	f.addStringPtr("studentId", up.StudentID)
	f.addFile("profileImage", image)

	var prof user.StudentProfile
	err := s.c.do(ctx, request{method: http.MethodPut, path: "/student/profile", form: f}, &prof)
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

// Enroll files an enrollment request for a course, optionally on behalf of
// a study group.
func (s *StudentService) Enroll(ctx context.Context, er enrollment.EnrollRequest) (*enrollment.Enrollment, error) {
	if err := er.Validate(); err != nil {
		return nil, err
	}
	var enr enrollment.Enrollment
	if err := s.c.post(ctx, "/student/enroll", er, &enr); err != nil {
		return nil, err
	}
	return &enr, nil
}

func (s *StudentService) Enrollments(ctx context.Context, status enrollment.Status) ([]enrollment.Enrollment, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var enrollments []enrollment.Enrollment
	if err := s.c.get(ctx, "/student/enrollments", q, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// EnrolledCourses lists courses the student is approved into. Courses
// deactivated after enrollment remain visible here.
func (s *StudentService) EnrolledCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	if err := s.c.get(ctx, "/student/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *StudentService) Classes(ctx context.Context, upcoming bool) ([]class.StudentClass, error) {
	q := url.Values{"upcoming": {strconv.FormatBool(upcoming)}}
	var classes []class.StudentClass
	if err := s.c.get(ctx, "/student/classes", q, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}
