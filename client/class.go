package client

import (
	"context"
	"net/url"

	"github.com/tutorlink/tutorlink-go/core/class"
)

// ClassService maps the /classes endpoints.
type ClassService struct {
	c *Client
}

// Schedule creates a class from an approved enrollment context.
func (s *ClassService) Schedule(ctx context.Context, cc class.CreateClass) (*class.Class, error) {
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	var cls class.Class
	if err := s.c.post(ctx, "/classes", cc, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

// Mine lists the caller's classes, optionally filtered by status and a
// from-date lower bound (YYYY-MM-DD).
func (s *ClassService) Mine(ctx context.Context, status class.Status, fromDate string) ([]class.WithDetails, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	if fromDate != "" {
		q.Set("fromDate", fromDate)
	}
	var classes []class.WithDetails
	if err := s.c.get(ctx, "/classes/my-classes", q, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) ByID(ctx context.Context, classID string) (*class.WithDetails, error) {
	var cls class.WithDetails
	if err := s.c.get(ctx, "/classes/"+url.PathEscape(classID), nil, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

func (s *ClassService) Update(ctx context.Context, classID string, uc class.UpdateClass) (*class.Class, error) {
	if err := uc.Validate(); err != nil {
		return nil, err
	}
	var cls class.Class
	if err := s.c.put(ctx, "/classes/"+url.PathEscape(classID), uc, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

// Cancel moves a SCHEDULED class to CANCELLED. Cancelling an already
// cancelled class is rejected by the backend as an invalid state; it never
// transitions backward.
func (s *ClassService) Cancel(ctx context.Context, classID string) (*class.Class, error) {
	var cls class.Class
	if err := s.c.patch(ctx, "/classes/"+url.PathEscape(classID)+"/cancel", nil, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

func (s *ClassService) Delete(ctx context.Context, classID string) error {
	return s.c.del(ctx, "/classes/"+url.PathEscape(classID))
}
