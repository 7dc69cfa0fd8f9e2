package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core/availability"
)

type AvailabilityQueries struct {
	q *Queries
}

func (a *AvailabilityQueries) Mine(ctx context.Context, includeExpired bool) ([]availability.Availability, error) {
	key := cache.NewKey("lecturer", "availability", "mine", strconv.FormatBool(includeExpired))
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) ([]availability.Availability, error) {
		return a.q.api.Availability.Mine(ctx, includeExpired)
	})
}

// ForLecturer is the student-facing view used when booking a class.
func (a *AvailabilityQueries) ForLecturer(ctx context.Context, lecturerID string) ([]availability.Availability, error) {
	key := cache.NewKey("lecturer", "availability", "of", lecturerID)
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) ([]availability.Availability, error) {
		return a.q.api.Availability.ForLecturer(ctx, lecturerID)
	})
}

func (a *AvailabilityQueries) Create(ctx context.Context, ca availability.CreateAvailability) (av *availability.Availability, err error) {
	err = a.q.mutate(mutAvailabilityCreate, func() (string, error) {
		av, err = a.q.api.Availability.Create(ctx, ca)
		return "Availability added successfully", err
	})
	return av, err
}

func (a *AvailabilityQueries) Update(ctx context.Context, availabilityID string, ua availability.UpdateAvailability) (av *availability.Availability, err error) {
	err = a.q.mutate(mutAvailabilityUpdate, func() (string, error) {
		av, err = a.q.api.Availability.Update(ctx, availabilityID, ua)
		return "Availability updated successfully", err
	})
	return av, err
}

func (a *AvailabilityQueries) Delete(ctx context.Context, availabilityID string) error {
	return a.q.mutate(mutAvailabilityDelete, func() (string, error) {
		return "Availability removed", a.q.api.Availability.Delete(ctx, availabilityID)
	})
}
