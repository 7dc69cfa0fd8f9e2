package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/course"
)

// CourseQueries covers the lecturer's catalog and the public search.
type CourseQueries struct {
	q *Queries
}

// Mine returns the lecturer's courses, cached under ["courses","my-courses"].
func (c *CourseQueries) Mine(ctx context.Context, includeInactive bool) ([]course.Course, error) {
	key := cache.NewKey("courses", "my-courses", strconv.FormatBool(includeInactive))
	return cache.Fetch(ctx, c.q.cache, key, func(ctx context.Context) ([]course.Course, error) {
		return c.q.api.Courses.Mine(ctx, includeInactive)
	})
}

// Search runs the public course search, cached per filter/page combination.
func (c *CourseQueries) Search(ctx context.Context, params course.SearchParams) (*core.Paginated[course.SearchResult], error) {
	key := cache.NewKey("courses", "search",
		params.Subject, params.Level, strconv.Itoa(params.Page), strconv.Itoa(params.Limit))
	return cache.Fetch(ctx, c.q.cache, key, func(ctx context.Context) (*core.Paginated[course.SearchResult], error) {
		return c.q.api.Courses.Search(ctx, params)
	})
}

func (c *CourseQueries) ByID(ctx context.Context, courseID string) (*course.Course, error) {
	key := cache.NewKey("courses", "detail", courseID)
	return cache.Fetch(ctx, c.q.cache, key, func(ctx context.Context) (*course.Course, error) {
		return c.q.api.Courses.ByID(ctx, courseID)
	})
}

func (c *CourseQueries) Create(ctx context.Context, cc course.CreateCourse, up course.Upload) (crs *course.Course, err error) {
	err = c.q.mutate(mutCourseCreate, func() (string, error) {
		crs, err = c.q.api.Courses.Create(ctx, cc, up)
		return "Course created successfully", err
	})
	return crs, err
}

func (c *CourseQueries) Update(ctx context.Context, courseID string, uc course.UpdateCourse, up course.Upload) (crs *course.Course, err error) {
	err = c.q.mutate(mutCourseUpdate, func() (string, error) {
		crs, err = c.q.api.Courses.Update(ctx, courseID, uc, up)
		return "Course updated successfully", err
	})
	return crs, err
}

func (c *CourseQueries) Delete(ctx context.Context, courseID string) error {
	return c.q.mutate(mutCourseDelete, func() (string, error) {
		return "Course deleted successfully", c.q.api.Courses.Delete(ctx, courseID)
	})
}
