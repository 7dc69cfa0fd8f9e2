package query

import (
	"context"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core/class"
)

// ClassQueries covers scheduled sessions for both portals.
type ClassQueries struct {
	q *Queries
}

func (c *ClassQueries) Mine(ctx context.Context, status class.Status, fromDate string) ([]class.WithDetails, error) {
	key := cache.NewKey("classes", "my-classes", string(status), fromDate)
	return cache.Fetch(ctx, c.q.cache, key, func(ctx context.Context) ([]class.WithDetails, error) {
		return c.q.api.Classes.Mine(ctx, status, fromDate)
	})
}

func (c *ClassQueries) ByID(ctx context.Context, classID string) (*class.WithDetails, error) {
	key := cache.NewKey("classes", "detail", classID)
	return cache.Fetch(ctx, c.q.cache, key, func(ctx context.Context) (*class.WithDetails, error) {
		return c.q.api.Classes.ByID(ctx, classID)
	})
}

func (c *ClassQueries) Schedule(ctx context.Context, cc class.CreateClass) (cls *class.Class, err error) {
	err = c.q.mutate(mutClassSchedule, func() (string, error) {
		cls, err = c.q.api.Classes.Schedule(ctx, cc)
		return "Class scheduled successfully", err
	})
	return cls, err
}

func (c *ClassQueries) Update(ctx context.Context, classID string, uc class.UpdateClass) (cls *class.Class, err error) {
	err = c.q.mutate(mutClassUpdate, func() (string, error) {
		cls, err = c.q.api.Classes.Update(ctx, classID, uc)
		return "Class updated successfully", err
	})
	return cls, err
}

func (c *ClassQueries) Cancel(ctx context.Context, classID string) (cls *class.Class, err error) {
	err = c.q.mutate(mutClassCancel, func() (string, error) {
		cls, err = c.q.api.Classes.Cancel(ctx, classID)
		return "Class cancelled", err
	})
	return cls, err
}

func (c *ClassQueries) Delete(ctx context.Context, classID string) error {
	return c.q.mutate(mutClassDelete, func() (string, error) {
		return "Class deleted", c.q.api.Classes.Delete(ctx, classID)
	})
}
