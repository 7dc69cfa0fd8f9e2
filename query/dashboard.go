package query

import (
	"context"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core/dashboard"
)

type DashboardQueries struct {
	q *Queries
}

func (d *DashboardQueries) Lecturer(ctx context.Context) (*dashboard.LecturerDashboard, error) {
	key := cache.NewKey("dashboard", "lecturer")
	return cache.Fetch(ctx, d.q.cache, key, func(ctx context.Context) (*dashboard.LecturerDashboard, error) {
		return d.q.api.Dashboard.Lecturer(ctx)
	})
}

func (d *DashboardQueries) Student(ctx context.Context) (*dashboard.StudentDashboard, error) {
	key := cache.NewKey("dashboard", "student")
	return cache.Fetch(ctx, d.q.cache, key, func(ctx context.Context) (*dashboard.StudentDashboard, error) {
		return d.q.api.Dashboard.Student(ctx)
	})
}

func (d *DashboardQueries) CourseStats(ctx context.Context) ([]dashboard.CourseStats, error) {
	key := cache.NewKey("dashboard", "courses")
	return cache.Fetch(ctx, d.q.cache, key, func(ctx context.Context) ([]dashboard.CourseStats, error) {
		return d.q.api.Dashboard.CourseStats(ctx)
	})
}
