package query

import (
	"context"
	"strconv"

	"github.com/tutorlink/tutorlink-go/cache"
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/group"
)

type GroupQueries struct {
	q *Queries
}

func (g *GroupQueries) All(ctx context.Context, page, limit int) (*core.Paginated[group.StudentGroup], error) {
	key := cache.NewKey("groups", "all", strconv.Itoa(page), strconv.Itoa(limit))
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) (*core.Paginated[group.StudentGroup], error) {
		return g.q.api.Groups.All(ctx, page, limit)
	})
}

func (g *GroupQueries) Mine(ctx context.Context) ([]group.StudentGroup, error) {
	key := cache.NewKey("groups", "mine")
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) ([]group.StudentGroup, error) {
		return g.q.api.Groups.Mine(ctx)
	})
}

func (g *GroupQueries) Joined(ctx context.Context) ([]group.StudentGroup, error) {
	key := cache.NewKey("groups", "joined")
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) ([]group.StudentGroup, error) {
		return g.q.api.Groups.Joined(ctx)
	})
}

func (g *GroupQueries) ByID(ctx context.Context, groupID string) (*group.Details, error) {
	key := cache.NewKey("groups", "detail", groupID)
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) (*group.Details, error) {
		return g.q.api.Groups.ByID(ctx, groupID)
	})
}

func (g *GroupQueries) Details(ctx context.Context, groupID string) (*group.DetailedInfo, error) {
	key := cache.NewKey("groups", "details", groupID)
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) (*group.DetailedInfo, error) {
		return g.q.api.Groups.Details(ctx, groupID)
	})
}

func (g *GroupQueries) SearchByCode(ctx context.Context, code string) (*group.StudentGroup, error) {
	key := cache.NewKey("groups", "search", code)
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) (*group.StudentGroup, error) {
		return g.q.api.Groups.SearchByCode(ctx, code)
	})
}

func (g *GroupQueries) PendingRequests(ctx context.Context) ([]group.PendingRequest, error) {
	key := cache.NewKey("groups", "pending-requests")
	return cache.Fetch(ctx, g.q.cache, key, func(ctx context.Context) ([]group.PendingRequest, error) {
		return g.q.api.Groups.PendingRequests(ctx)
	})
}

func (g *GroupQueries) Create(ctx context.Context, cg group.CreateGroup) (sg *group.StudentGroup, err error) {
	err = g.q.mutate(mutGroupCreate, func() (string, error) {
		sg, err = g.q.api.Groups.Create(ctx, cg)
		return "Group created successfully", err
	})
	return sg, err
}

func (g *GroupQueries) Update(ctx context.Context, groupID string, ug group.UpdateGroup) (sg *group.StudentGroup, err error) {
	err = g.q.mutate(mutGroupUpdate, func() (string, error) {
		sg, err = g.q.api.Groups.Update(ctx, groupID, ug)
		return "Group updated successfully", err
	})
	return sg, err
}

func (g *GroupQueries) Delete(ctx context.Context, groupID string) error {
	return g.q.mutate(mutGroupDelete, func() (string, error) {
		return "Group deleted", g.q.api.Groups.Delete(ctx, groupID)
	})
}

// JoinByCode files a membership request; it stays PENDING until the
// group creator approves it.
func (g *GroupQueries) JoinByCode(ctx context.Context, code string) error {
	return g.q.mutate(mutGroupJoin, func() (string, error) {
		return "Join request sent", g.q.api.Groups.JoinByCode(ctx, code)
	})
}

func (g *GroupQueries) Join(ctx context.Context, groupID string) error {
	return g.q.mutate(mutGroupJoin, func() (string, error) {
		return "Join request sent", g.q.api.Groups.Join(ctx, groupID)
	})
}

func (g *GroupQueries) ApproveRequest(ctx context.Context, enrollmentID string) error {
	return g.q.mutate(mutGroupApprove, func() (string, error) {
		return "Request approved", g.q.api.Groups.ApproveRequest(ctx, enrollmentID)
	})
}

func (g *GroupQueries) RejectRequest(ctx context.Context, enrollmentID string) error {
	return g.q.mutate(mutGroupReject, func() (string, error) {
		return "Request rejected", g.q.api.Groups.RejectRequest(ctx, enrollmentID)
	})
}

func (g *GroupQueries) RemoveMember(ctx context.Context, enrollmentID string) error {
	return g.q.mutate(mutGroupRemoveMember, func() (string, error) {
		return "Member removed", g.q.api.Groups.RemoveMember(ctx, enrollmentID)
	})
}
