package client

import (
	"context"
	"net/url"

	"github.com/tutorlink/tutorlink-go/core/enrollment"
)

// EnrollmentService maps the lecturer-facing /enrollments endpoints.
type EnrollmentService struct {
	c *Client
}

// List returns the lecturer's enrollment requests, optionally filtered by
// status and course.
func (s *EnrollmentService) List(ctx context.Context, status enrollment.Status, courseID string) ([]enrollment.Details, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	if courseID != "" {
		q.Set("courseId", courseID)
	}
	var details []enrollment.Details
	if err := s.c.get(ctx, "/enrollments", q, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *EnrollmentService) PendingCount(ctx context.Context) (int, error) {
	var count enrollment.PendingCount
	if err := s.c.get(ctx, "/enrollments/pending/count", nil, &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

func (s *EnrollmentService) ByID(ctx context.Context, enrollmentID string) (*enrollment.Details, error) {
	var det enrollment.Details
	if err := s.c.get(ctx, "/enrollments/"+url.PathEscape(enrollmentID), nil, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

// UpdateStatus resolves a PENDING enrollment to APPROVED or REJECTED. The
// transition is terminal; approvedAt is set by the backend on approval.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, enrollmentID string, su enrollment.StatusUpdate) (*enrollment.Details, error) {
	if err := su.Validate(); err != nil {
		return nil, err
	}
	var det enrollment.Details
	if err := s.c.put(ctx, "/enrollments/"+url.PathEscape(enrollmentID)+"/status", su, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

// DirectEnroll lets a lecturer enroll a student or group into their course
// without the request/approve round trip.
func (s *EnrollmentService) DirectEnroll(ctx context.Context, de enrollment.DirectEnroll) (*enrollment.Details, error) {
	if err := de.Validate(); err != nil {
		return nil, err
	}
	var det enrollment.Details
	if err := s.c.post(ctx, "/enrollments/direct", de, &det); err != nil {
		return nil, err
	}
	return &det, nil
}
