package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/admin"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

// AdminService maps the /admin endpoints.
type AdminService struct {
	c *Client
}

// Users lists accounts, optionally filtered by role and active flag.
func (s *AdminService) Users(ctx context.Context, page, limit int, role user.Role, isActive *bool) (*core.Paginated[admin.AdminUser], error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	if role != "" {
		q.Set("role", string(role))
	}
	if isActive != nil {
		q.Set("isActive", strconv.FormatBool(*isActive))
	}

	var users core.Paginated[admin.AdminUser]
	if err := s.c.get(ctx, "/admin/users", q, &users); err != nil {
		return nil, err
	}
	return &users, nil
}

func (s *AdminService) UserByID(ctx context.Context, userID string) (*admin.AdminUser, error) {
	var usr admin.AdminUser
	if err := s.c.get(ctx, "/admin/users/"+url.PathEscape(userID), nil, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *AdminService) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	body := admin.UserStatusUpdate{IsActive: isActive}
	return s.c.put(ctx, "/admin/users/"+url.PathEscape(userID)+"/status", body, nil)
}

func (s *AdminService) Stats(ctx context.Context) (*admin.SystemStats, error) {
	var stats admin.SystemStats
	if err := s.c.get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) Courses(ctx context.Context, page, limit int) (*core.Paginated[admin.AdminCourse], error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var courses core.Paginated[admin.AdminCourse]
	if err := s.c.get(ctx, "/admin/courses", q, &courses); err != nil {
		return nil, err
	}
	return &courses, nil
}

func (s *AdminService) Enrollments(ctx context.Context, page, limit int, status enrollment.Status) (*core.Paginated[admin.AdminEnrollment], error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	if status != "" {
		q.Set("status", string(status))
	}
	var enrollments core.Paginated[admin.AdminEnrollment]
	if err := s.c.get(ctx, "/admin/enrollments", q, &enrollments); err != nil {
		return nil, err
	}
	return &enrollments, nil
}

// Students synthesizes a flat student listing from the admin user list
// filtered by role. The per-record mapping is total; records with missing
// profile data map to empty strings.
func (s *AdminService) Students(ctx context.Context, page, limit int) (*core.Paginated[admin.StudentListItem], error) {
	users, err := s.Users(ctx, page, limit, user.RoleStudent, nil)
	if err != nil {
		return nil, err
	}

	students := core.Paginated[admin.StudentListItem]{
		Data: make([]admin.StudentListItem, 0, len(users.Data)),
		Meta: users.Meta,
	}
	for _, u := range users.Data {
		students.Data = append(students.Data, admin.MapStudent(u))
	}
	return &students, nil
}
