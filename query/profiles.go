package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/user"
)

type LecturerQueries struct {
	q *Queries
}

func (l *LecturerQueries) Profile(ctx context.Context) (*user.LecturerProfile, error) {
	key := cache.NewKey("lecturer", "profile")
	return cache.Fetch(ctx, l.q.cache, key, func(ctx context.Context) (*user.LecturerProfile, error) {
		return l.q.api.Lecturers.Profile(ctx)
	})
}

func (l *LecturerQueries) PublicProfile(ctx context.Context, lecturerID string) (*user.LecturerPublic, error) {
	key := cache.NewKey("lecturer", "public", lecturerID)
	return cache.Fetch(ctx, l.q.cache, key, func(ctx context.Context) (*user.LecturerPublic, error) {
		return l.q.api.Lecturers.PublicProfile(ctx, lecturerID)
	})
}

func (l *LecturerQueries) List(ctx context.Context, page, limit int) (*core.Paginated[user.LecturerListItem], error) {
	key := cache.NewKey("lecturer", "list", strconv.Itoa(page), strconv.Itoa(limit))
	return cache.Fetch(ctx, l.q.cache, key, func(ctx context.Context) (*core.Paginated[user.LecturerListItem], error) {
		return l.q.api.Lecturers.List(ctx, page, limit)
	})
}

func (l *LecturerQueries) UpdateProfile(ctx context.Context, up user.UpdateLecturerProfile) (p *user.LecturerProfile, err error) {
	err = l.q.mutate(mutLecturerProfileUpdate, func() (string, error) {
		p, err = l.q.api.Lecturers.UpdateProfile(ctx, up)
		return "Profile updated successfully", err
	})
	return p, err
}

type StudentQueries struct {
	q *Queries
}

func (s *StudentQueries) Profile(ctx context.Context) (*user.StudentProfile, error) {
	key := cache.NewKey("student", "profile")
	return cache.Fetch(ctx, s.q.cache, key, func(ctx context.Context) (*user.StudentProfile, error) {
		return s.q.api.Students.Profile(ctx)
	})
}

func (s *StudentQueries) UpdateProfile(ctx context.Context, up user.UpdateStudentProfile, image core.Attachment) (p *user.StudentProfile, err error) {
	err = s.q.mutate(mutStudentProfileUpdate, func() (string, error) {
		p, err = s.q.api.Students.UpdateProfile(ctx, up, image)
		return "Profile updated successfully", err
	})
	return p, err
}
