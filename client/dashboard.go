package client

import (
	"context"

	"github.com/tutorlink/tutorlink-go/core/dashboard"
)

// DashboardService maps the /dashboard endpoints.
type DashboardService struct {
	c *Client
}

func (s *DashboardService) Lecturer(ctx context.Context) (*dashboard.LecturerDashboard, error) {
	var dash dashboard.LecturerDashboard
	if err := s.c.get(ctx, "/dashboard/lecturer", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (s *DashboardService) Student(ctx context.Context) (*dashboard.StudentDashboard, error) {
	var dash dashboard.StudentDashboard
	if err := s.c.get(ctx, "/dashboard/student", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// CourseStats returns the lecturer's per-course aggregates.
func (s *DashboardService) CourseStats(ctx context.Context) ([]dashboard.CourseStats, error) {
	var stats []dashboard.CourseStats
	if err := s.c.get(ctx, "/dashboard/courses", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
