package query

import (
	"context"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
)

// EnrollmentQueries covers the lecturer side of enrollment management.
type EnrollmentQueries struct {
	q *Queries
}

func (e *EnrollmentQueries) List(ctx context.Context, status enrollment.Status, courseID string) ([]enrollment.Details, error) {
	key := cache.NewKey("enrollments", "list", string(status), courseID)
	return cache.Fetch(ctx, e.q.cache, key, func(ctx context.Context) ([]enrollment.Details, error) {
		return e.q.api.Enrollments.List(ctx, status, courseID)
	})
}

func (e *EnrollmentQueries) PendingCount(ctx context.Context) (int, error) {
	key := cache.NewKey("enrollments", "pending-count")
	return cache.Fetch(ctx, e.q.cache, key, func(ctx context.Context) (int, error) {
		return e.q.api.Enrollments.PendingCount(ctx)
	})
}

func (e *EnrollmentQueries) ByID(ctx context.Context, enrollmentID string) (*enrollment.Details, error) {
	key := cache.NewKey("enrollments", "detail", enrollmentID)
	return cache.Fetch(ctx, e.q.cache, key, func(ctx context.Context) (*enrollment.Details, error) {
		return e.q.api.Enrollments.ByID(ctx, enrollmentID)
	})
}

// UpdateStatus approves or rejects a pending request; the lecturer's
// enrollment list, pending count and course counters all refetch.
func (e *EnrollmentQueries) UpdateStatus(ctx context.Context, enrollmentID string, su enrollment.StatusUpdate) (det *enrollment.Details, err error) {
	err = e.q.mutate(mutEnrollmentStatus, func() (string, error) {
		det, err = e.q.api.Enrollments.UpdateStatus(ctx, enrollmentID, su)
		return "Enrollment " + statusWord(su.Status), err
	})
	return det, err
}

func (e *EnrollmentQueries) DirectEnroll(ctx context.Context, de enrollment.DirectEnroll) (det *enrollment.Details, err error) {
	err = e.q.mutate(mutDirectEnroll, func() (string, error) {
		det, err = e.q.api.Enrollments.DirectEnroll(ctx, de)
		return "Student enrolled successfully", err
	})
	return det, err
}

func statusWord(s enrollment.Status) string {
	if s == enrollment.StatusApproved {
		return "approved"
	}
	return "rejected"
}
