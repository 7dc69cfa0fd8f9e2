package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
)

func (s *StudentQueries) Enrollments(ctx context.Context, status enrollment.Status) ([]enrollment.Enrollment, error) {
	key := cache.NewKey("student", "enrollments", string(status))
	return cache.Fetch(ctx, s.q.cache, key, func(ctx context.Context) ([]enrollment.Enrollment, error) {
		return s.q.api.Students.Enrollments(ctx, status)
	})
}

func (s *StudentQueries) EnrolledCourses(ctx context.Context) ([]course.Course, error) {
	key := cache.NewKey("student", "courses")
	return cache.Fetch(ctx, s.q.cache, key, func(ctx context.Context) ([]course.Course, error) {
		return s.q.api.Students.EnrolledCourses(ctx)
	})
}

func (s *StudentQueries) Classes(ctx context.Context, upcoming bool) ([]class.StudentClass, error) {
	key := cache.NewKey("student", "classes", strconv.FormatBool(upcoming))
	return cache.Fetch(ctx, s.q.cache, key, func(ctx context.Context) ([]class.StudentClass, error) {
		return s.q.api.Students.Classes(ctx, upcoming)
	})
}

// Enroll requests enrollment into a course; it lands as PENDING until
// the lecturer acts on it.
func (s *StudentQueries) Enroll(ctx context.Context, req enrollment.EnrollRequest) (enr *enrollment.Enrollment, err error) {
	err = s.q.mutate(mutEnroll, func() (string, error) {
		enr, err = s.q.api.Students.Enroll(ctx, req)
		return "Enrollment request sent", err
	})
	return enr, err
}
