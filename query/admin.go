package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/admin"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

type AdminQueries struct {
	q *Queries
}

func (a *AdminQueries) Users(ctx context.Context, page, limit int, role user.Role, isActive *bool) (*core.Paginated[admin.AdminUser], error) {
	active := ""
	if isActive != nil {
		active = strconv.FormatBool(*isActive)
	}
	key := cache.NewKey("admin", "users", strconv.Itoa(page), strconv.Itoa(limit), string(role), active)
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*core.Paginated[admin.AdminUser], error) {
		return a.q.api.Admin.Users(ctx, page, limit, role, isActive)
	})
}

func (a *AdminQueries) UserByID(ctx context.Context, userID string) (*admin.AdminUser, error) {
	key := cache.NewKey("admin", "users", "detail", userID)
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*admin.AdminUser, error) {
		return a.q.api.Admin.UserByID(ctx, userID)
	})
}

func (a *AdminQueries) Students(ctx context.Context, page, limit int) (*core.Paginated[admin.StudentListItem], error) {
	key := cache.NewKey("admin", "students", strconv.Itoa(page), strconv.Itoa(limit))
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*core.Paginated[admin.StudentListItem], error) {
		return a.q.api.Admin.Students(ctx, page, limit)
	})
}

func (a *AdminQueries) Stats(ctx context.Context) (*admin.SystemStats, error) {
	key := cache.NewKey("admin", "stats")
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*admin.SystemStats, error) {
		return a.q.api.Admin.Stats(ctx)
	})
}

func (a *AdminQueries) Courses(ctx context.Context, page, limit int) (*core.Paginated[admin.AdminCourse], error) {
	key := cache.NewKey("admin", "courses", strconv.Itoa(page), strconv.Itoa(limit))
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*core.Paginated[admin.AdminCourse], error) {
		return a.q.api.Admin.Courses(ctx, page, limit)
	})
}

func (a *AdminQueries) Enrollments(ctx context.Context, page, limit int, status enrollment.Status) (*core.Paginated[admin.AdminEnrollment], error) {
	key := cache.NewKey("admin", "enrollments", strconv.Itoa(page), strconv.Itoa(limit), string(status))
	return cache.Fetch(ctx, a.q.cache, key, func(ctx context.Context) (*core.Paginated[admin.AdminEnrollment], error) {
		return a.q.api.Admin.Enrollments(ctx, page, limit, status)
	})
}

// UpdateUserStatus toggles an account's active flag and drops every
// cached admin view so lists and stats refetch.
func (a *AdminQueries) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	msg := "User deactivated"
	if isActive {
		msg = "User activated"
	}
	return a.q.mutate(mutAdminUserStatus, func() (string, error) {
		return msg, a.q.api.Admin.UpdateUserStatus(ctx, userID, isActive)
	})
}
