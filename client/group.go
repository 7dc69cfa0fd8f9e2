package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/group"
)

// GroupService maps the /groups endpoints.
type GroupService struct {
	c *Client
}

func (s *GroupService) Create(ctx context.Context, cg group.CreateGroup) (*group.StudentGroup, error) {
	if err := cg.Validate(); err != nil {
		return nil, err
	}
	var grp group.StudentGroup
	if err := s.c.post(ctx, "/groups", cg, &grp); err != nil {
		return nil, err
	}
	return &grp, nil
}

func (s *GroupService) All(ctx context.Context, page, limit int) (*core.Paginated[group.StudentGroup], error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var groups core.Paginated[group.StudentGroup]
	if err := s.c.get(ctx, "/groups", q, &groups); err != nil {
		return nil, err
	}
	return &groups, nil
}

// Mine lists groups the authenticated student owns.
func (s *GroupService) Mine(ctx context.Context) ([]group.StudentGroup, error) {
	var groups []group.StudentGroup
	if err := s.c.get(ctx, "/groups/my-groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Joined lists groups the authenticated student is an approved member of.
func (s *GroupService) Joined(ctx context.Context) ([]group.StudentGroup, error) {
	var groups []group.StudentGroup
	if err := s.c.get(ctx, "/groups/joined", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *GroupService) ByID(ctx context.Context, groupID string) (*group.Details, error) {
	var det group.Details
	if err := s.c.get(ctx, "/groups/"+url.PathEscape(groupID), nil, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

// Details returns the full group view: members, pending requests and stats.
func (s *GroupService) Details(ctx context.Context, groupID string) (*group.DetailedInfo, error) {
	var info group.DetailedInfo
	if err := s.c.get(ctx, "/groups/"+url.PathEscape(groupID)+"/details", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SearchByCode looks a group up by its join code.
func (s *GroupService) SearchByCode(ctx context.Context, groupCode string) (*group.StudentGroup, error) {
	var grp group.StudentGroup
	if err := s.c.get(ctx, "/groups/search/"+url.PathEscape(groupCode), nil, &grp); err != nil {
		return nil, err
	}
	return &grp, nil
}

// JoinByCode files a join request; the owner sees it under pending requests
// until approved or rejected.
func (s *GroupService) JoinByCode(ctx context.Context, groupCode string) error {
	return s.c.post(ctx, "/groups/join/"+url.PathEscape(groupCode), nil, nil)
}

// PendingRequests lists unresolved join requests across the caller's groups.
func (s *GroupService) PendingRequests(ctx context.Context) ([]group.PendingRequest, error) {
	var reqs []group.PendingRequest
	if err := s.c.get(ctx, "/groups/pending-requests", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *GroupService) ApproveRequest(ctx context.Context, enrollmentID string) error {
	return s.c.post(ctx, "/groups/requests/"+url.PathEscape(enrollmentID)+"/approve", nil, nil)
}

func (s *GroupService) RejectRequest(ctx context.Context, enrollmentID string) error {
	return s.c.post(ctx, "/groups/requests/"+url.PathEscape(enrollmentID)+"/reject", nil, nil)
}

// RemoveMember drops an approved member; group owner only.
func (s *GroupService) RemoveMember(ctx context.Context, enrollmentID string) error {
	return s.c.del(ctx, "/groups/members/"+url.PathEscape(enrollmentID))
}

func (s *GroupService) Join(ctx context.Context, groupID string) error {
	return s.c.post(ctx, "/groups/"+url.PathEscape(groupID)+"/join", nil, nil)
}

func (s *GroupService) Update(ctx context.Context, groupID string, ug group.UpdateGroup) (*group.StudentGroup, error) {
	if err := ug.Validate(); err != nil {
		return nil, err
	}
	var grp group.StudentGroup
	if err := s.c.put(ctx, "/groups/"+url.PathEscape(groupID), ug, &grp); err != nil {
		return nil, err
	}
	return &grp, nil
}

func (s *GroupService) Delete(ctx context.Context, groupID string) error {
	return s.c.del(ctx, "/groups/"+url.PathEscape(groupID))
}
