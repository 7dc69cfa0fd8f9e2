package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/course"
)

// CourseService maps the /courses endpoints.
type CourseService struct {
	c *Client
}

// Create creates a course, multipart-encoded when a flyer or gallery images
// are attached, plain JSON otherwise.
func (s *CourseService) Create(ctx context.Context, cc course.CreateCourse, up course.Upload) (*course.Course, error) {
	if err := cc.Validate(); err != nil {
		return nil, err
	}

	f := &form{jsonBody: cc}
	f.addString("name", cc.Name)
	if cc.Description != "" {
		f.addString("description", cc.Description)
	}
	f.addString("subject", cc.Subject)
	if cc.Level != "" {
		f.addString("level", cc.Level)
	}
	f.addInt("duration", cc.Duration)
	f.addFloat("hourlyRate", cc.HourlyRate)
	f.addFile("flyer", up.Flyer)
	for _, img := range up.Images {
		f.addFile("images", img)
	}

	var crs course.Course
	err := s.c.do(ctx, request{method: http.MethodPost, path: "/courses", form: f}, &crs)
	if err != nil {
		return nil, err
	}
	return &crs, nil
}

// Mine lists the authenticated lecturer's courses; inactive ones only when
// asked for.
func (s *CourseService) Mine(ctx context.Context, includeInactive bool) ([]course.Course, error) {
	q := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var courses []course.Course
	if err := s.c.get(ctx, "/courses/my-courses", q, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Search runs the public course search. Inactive courses never appear here.
func (s *CourseService) Search(ctx context.Context, params course.SearchParams) (*core.Paginated[course.SearchResult], error) {
	q := url.Values{}
	if params.Subject != "" {
		q.Set("subject", params.Subject)
	}
	if params.Level != "" {
		q.Set("level", params.Level)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var page core.Paginated[course.SearchResult]
	if err := s.c.get(ctx, "/courses/search", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CourseService) ByID(ctx context.Context, courseID string) (*course.Course, error) {
	var crs course.Course
	if err := s.c.get(ctx, "/courses/"+url.PathEscape(courseID), nil, &crs); err != nil {
		return nil, err
	}
	return &crs, nil
}

// Update modifies a course. Only set (non-nil) fields are sent; with no
// files attached the payload is plain JSON, never an empty multipart body.
func (s *CourseService) Update(ctx context.Context, courseID string, uc course.UpdateCourse, up course.Upload) (*course.Course, error) {
	if err := uc.Validate(); err != nil {
		return nil, err
	}

	f := &form{jsonBody: uc}
	f.addStringPtr("name", uc.Name)
	f.addStringPtr("description", uc.Description)
	f.addStringPtr("subject", uc.Subject)
	f.addStringPtr("level", uc.Level)
	f.addIntPtr("duration", uc.Duration)
	f.addFloatPtr("hourlyRate", uc.HourlyRate)
	f.addBoolPtr("isActive", uc.IsActive)
	f.addFile("flyer", up.Flyer)
	for _, img := range up.Images {
		f.addFile("images", img)
	}

	var crs course.Course
	err := s.c.do(ctx, request{method: http.MethodPut, path: "/courses/" + url.PathEscape(courseID), form: f}, &crs)
	if err != nil {
		return nil, err
	}
	return &crs, nil
}

func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	return s.c.del(ctx, "/courses/"+url.PathEscape(courseID))
}
