package clienttest

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/group"
	"github.com/tutorlink/tutorlink-go/core/user"
)

func (s *Server) createGroup(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleStudent {
		return apiError(c, http.StatusForbidden, "student role required")
	}
	var cg group.CreateGroup
	if err := c.Bind(&cg); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if cg.Name == "" {
		return apiError(c, http.StatusBadRequest, "name is required")
	}

	s.mu.Lock()
	grp := group.StudentGroup{
		ID:          s.nextID("grp"),
		Name:        cg.Name,
		Description: cg.Description,
		GroupCode:   "GRP-" + s.nextID("code"),
		CreatedBy:   acc.user.ID,
		IsActive:    true,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	s.groups[grp.ID] = &grp
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, grp)
}

func (s *Server) listGroups(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[group.StudentGroup]{Data: []group.StudentGroup{}}
	for _, grp := range s.groups {
		if grp.IsActive {
			page.Data = append(page.Data, *grp)
		}
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) myGroups(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []group.StudentGroup{}
	for _, grp := range s.groups {
		if grp.CreatedBy == acc.user.ID {
			out = append(out, *grp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) joinedGroups(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []group.StudentGroup{}
	for _, m := range s.members {
		if m.studentID != acc.user.ID || m.status != enrollment.StatusApproved {
			continue
		}
		if grp, ok := s.groups[m.groupID]; ok {
			out = append(out, *grp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) groupByID(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	grp, ok := s.groups[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "group not found")
	}
	det := group.Details{StudentGroup: *grp, Enrollments: s.groupMembers(grp.ID, "")}
	return c.JSON(http.StatusOK, det)
}

func (s *Server) groupDetails(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	grp, ok := s.groups[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "group not found")
	}
	info := group.DetailedInfo{
		StudentGroup:    *grp,
		Members:         s.groupMembers(grp.ID, enrollment.StatusApproved),
		PendingRequests: s.groupMembers(grp.ID, enrollment.StatusPending),
	}
	info.Stats.TotalMembers = len(info.Members)
	info.Stats.PendingRequests = len(info.PendingRequests)
	return c.JSON(http.StatusOK, info)
}

// groupMembers must be called with mu held; an empty status means all.
func (s *Server) groupMembers(groupID string, status enrollment.Status) []group.Member {
	out := []group.Member{}
	for _, m := range s.members {
		if m.groupID != groupID {
			continue
		}
		if status != "" && m.status != status {
			continue
		}
		mem := group.Member{ID: m.id, StudentID: m.studentID, GroupID: m.groupID, Status: m.status}
		if acc, ok := s.users[m.studentID]; ok {
			mem.Student.FirstName = acc.user.FirstName
			mem.Student.LastName = acc.user.LastName
			mem.Student.ProfileImage = acc.user.ProfileImage
		}
		out = append(out, mem)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) groupByCode(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, grp := range s.groups {
		if strings.EqualFold(grp.GroupCode, code) {
			return c.JSON(http.StatusOK, *grp)
		}
	}
	return apiError(c, http.StatusNotFound, "group not found")
}

func (s *Server) joinGroupByCode(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	code := c.Param("code")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, grp := range s.groups {
		if strings.EqualFold(grp.GroupCode, code) {
			return s.addJoinRequest(c, acc, grp.ID)
		}
	}
	return apiError(c, http.StatusNotFound, "group not found")
}

func (s *Server) joinGroup(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	grp, ok := s.groups[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "group not found")
	}
	return s.addJoinRequest(c, acc, grp.ID)
}

// addJoinRequest must be called with mu held.
func (s *Server) addJoinRequest(c echo.Context, acc *account, groupID string) error {
	for _, m := range s.members {
		if m.groupID == groupID && m.studentID == acc.user.ID && m.status != enrollment.StatusRejected {
			return apiError(c, http.StatusBadRequest, "already a member or pending")
		}
	}
	m := &memberRec{
		id:        s.nextID("mem"),
		groupID:   groupID,
		studentID: acc.user.ID,
		status:    enrollment.StatusPending,
		createdAt: now(),
	}
	s.members[m.id] = m
	return c.JSON(http.StatusCreated, map[string]string{"id": m.id, "status": string(m.status)})
}

func (s *Server) groupPendingRequests(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []group.PendingRequest{}
	for _, m := range s.members {
		if m.status != enrollment.StatusPending {
			continue
		}
		grp, ok := s.groups[m.groupID]
		if !ok || grp.CreatedBy != acc.user.ID {
			continue
		}
		req := group.PendingRequest{ID: m.id, GroupID: grp.ID, GroupName: grp.Name, RequestedAt: m.createdAt}
		if student, ok := s.users[m.studentID]; ok {
			req.Student.ID = student.user.ID
			req.Student.FirstName = student.user.FirstName
			req.Student.LastName = student.user.LastName
			req.Student.Email = student.user.Email
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) approveGroupRequest(c echo.Context) error {
	return s.resolveGroupRequest(c, enrollment.StatusApproved)
}

func (s *Server) rejectGroupRequest(c echo.Context) error {
	return s.resolveGroupRequest(c, enrollment.StatusRejected)
}

func (s *Server) resolveGroupRequest(c echo.Context, status enrollment.Status) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "request not found")
	}
	grp := s.groups[m.groupID]
	if grp == nil || grp.CreatedBy != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your group")
	}
	if m.status != enrollment.StatusPending {
		return apiError(c, http.StatusBadRequest, "request already resolved")
	}
	m.status = status
	return c.JSON(http.StatusOK, map[string]string{"id": m.id, "status": string(m.status)})
}

func (s *Server) removeGroupMember(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "member not found")
	}
	grp := s.groups[m.groupID]
	if grp == nil || (grp.CreatedBy != acc.user.ID && m.studentID != acc.user.ID) {
		return apiError(c, http.StatusForbidden, "not allowed")
	}
	delete(s.members, m.id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) updateGroup(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var ug group.UpdateGroup
	if err := c.Bind(&ug); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	grp, ok := s.groups[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "group not found")
	}
	if grp.CreatedBy != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your group")
	}
	if ug.Name != nil {
		grp.Name = *ug.Name
	}
	if ug.Description != nil {
		grp.Description = *ug.Description
	}
	if ug.IsActive != nil {
		grp.IsActive = *ug.IsActive
	}
	grp.UpdatedAt = now()
	return c.JSON(http.StatusOK, *grp)
}

func (s *Server) deleteGroup(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	grp, ok := s.groups[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "group not found")
	}
	if grp.CreatedBy != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your group")
	}
	delete(s.groups, grp.ID)
	for id, m := range s.members {
		if m.groupID == grp.ID {
			delete(s.members, id)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
