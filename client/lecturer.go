package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/user"
)

// LecturerService maps the /lecturer endpoints.
type LecturerService struct {
	c *Client
}

func (s *LecturerService) Profile(ctx context.Context) (*user.LecturerProfile, error) {
	var prof user.LecturerProfile
	if err := s.c.get(ctx, "/lecturer/profile", nil, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

func (s *LecturerService) UpdateProfile(ctx context.Context, up user.UpdateLecturerProfile) (*user.LecturerProfile, error) {
	if err := up.Validate(); err != nil {
		return nil, err
	}
	var prof user.LecturerProfile
	if err := s.c.put(ctx, "/lecturer/profile", up, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// PublicProfile returns a lecturer's public page with their course catalog.
func (s *LecturerService) PublicProfile(ctx context.Context, lecturerID string) (*user.LecturerPublic, error) {
	var pub user.LecturerPublic
	if err := s.c.get(ctx, "/lecturer/public/"+url.PathEscape(lecturerID), nil, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (s *LecturerService) List(ctx context.Context, page, limit int) (*core.Paginated[user.LecturerListItem], error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var lecturers core.Paginated[user.LecturerListItem]
	if err := s.c.get(ctx, "/lecturer/list", q, &lecturers); err != nil {
		return nil, err
	}
	return &lecturers, nil
}
