package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core/availability"
)

// AvailabilityService maps the /availability endpoints.
type AvailabilityService struct {
	c *Client
}

func (s *AvailabilityService) Create(ctx context.Context, ca availability.CreateAvailability) (*availability.Availability, error) {
	if err := ca.Validate(); err != nil {
		return nil, err
	}
	var av availability.Availability
	if err := s.c.post(ctx, "/availability", ca, &av); err != nil {
		return nil, err
	}
	return &av, nil
}

// Mine lists the authenticated lecturer's slots; expired one-off slots only
// when asked for.
func (s *AvailabilityService) Mine(ctx context.Context, includeExpired bool) ([]availability.Availability, error) {
	q := url.Values{"includeExpired": {strconv.FormatBool(includeExpired)}}
	var slots []availability.Availability
	if err := s.c.get(ctx, "/availability/my-availability", q, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ForLecturer lists a lecturer's open slots as scheduling reference data.
func (s *AvailabilityService) ForLecturer(ctx context.Context, lecturerID string) ([]availability.Availability, error) {
	var slots []availability.Availability
	if err := s.c.get(ctx, "/availability/lecturer/"+url.PathEscape(lecturerID), nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *AvailabilityService) Update(ctx context.Context, availabilityID string, ua availability.UpdateAvailability) (*availability.Availability, error) {
	if err := ua.Validate(); err != nil {
		return nil, err
	}
	var av availability.Availability
	if err := s.c.put(ctx, "/availability/"+url.PathEscape(availabilityID), ua, &av); err != nil {
		return nil, err
	}
	return &av, nil
}

func (s *AvailabilityService) Delete(ctx context.Context, availabilityID string) error {
	return s.c.del(ctx, "/availability/"+url.PathEscape(availabilityID))
}
