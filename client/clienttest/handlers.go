package clienttest

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/availability"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

func (s *Server) routes(e *echo.Echo) {
	e.Use(s.failureMiddleware)

	e.POST("/auth/login", s.login)
	e.POST("/auth/register/lecturer", s.registerLecturer)
	e.POST("/auth/register/student", s.registerStudent)
	e.POST("/auth/refresh", s.refreshToken)

	e.POST("/courses", s.createCourse)
	e.GET("/courses/my-courses", s.myCourses)
	e.GET("/courses/search", s.searchCourses)
	e.GET("/courses/:id", s.courseByID)
	e.PUT("/courses/:id", s.updateCourse)
	e.DELETE("/courses/:id", s.deleteCourse)

	e.POST("/classes", s.scheduleClass)
	e.GET("/classes/my-classes", s.myClasses)
	e.GET("/classes/:id", s.classByID)
	e.PUT("/classes/:id", s.updateClass)
	e.PATCH("/classes/:id/cancel", s.cancelClass)
	e.DELETE("/classes/:id", s.deleteClass)

	e.GET("/enrollments", s.listEnrollments)
	e.GET("/enrollments/pending/count", s.pendingCount)
	e.GET("/enrollments/:id", s.enrollmentByID)
	e.PUT("/enrollments/:id/status", s.updateEnrollmentStatus)
	e.POST("/enrollments/direct", s.directEnroll)

	e.POST("/availability", s.createAvailability)
	e.GET("/availability/my-availability", s.myAvailability)
	e.GET("/availability/lecturer/:id", s.lecturerAvailability)
	e.PUT("/availability/:id", s.updateAvailability)
	e.DELETE("/availability/:id", s.deleteAvailability)

	e.POST("/groups", s.createGroup)
	e.GET("/groups", s.listGroups)
	e.GET("/groups/my-groups", s.myGroups)
	e.GET("/groups/joined", s.joinedGroups)
	e.GET("/groups/pending-requests", s.groupPendingRequests)
	e.GET("/groups/search/:code", s.groupByCode)
	e.POST("/groups/join/:code", s.joinGroupByCode)
	e.POST("/groups/requests/:id/approve", s.approveGroupRequest)
	e.POST("/groups/requests/:id/reject", s.rejectGroupRequest)
	e.DELETE("/groups/members/:id", s.removeGroupMember)
	e.GET("/groups/:id", s.groupByID)
	e.GET("/groups/:id/details", s.groupDetails)
	e.POST("/groups/:id/join", s.joinGroup)
	e.PUT("/groups/:id", s.updateGroup)
	e.DELETE("/groups/:id", s.deleteGroup)

	e.GET("/lecturer/profile", s.lecturerProfile)
	e.PUT("/lecturer/profile", s.updateLecturerProfile)
	e.GET("/lecturer/public/:id", s.lecturerPublic)
	e.GET("/lecturer/list", s.lecturerList)

	e.GET("/student/profile", s.studentProfile)
	e.PUT("/student/profile", s.updateStudentProfile)
	e.POST("/student/enroll", s.studentEnroll)
	e.GET("/student/enrollments", s.studentEnrollments)
	e.GET("/student/courses", s.studentCourses)
	e.GET("/student/classes", s.studentClasses)

	e.GET("/admin/users", s.adminUsers)
	e.GET("/admin/users/:id", s.adminUserByID)
	e.PUT("/admin/users/:id/status", s.adminUserStatus)
	e.GET("/admin/stats", s.adminStats)
	e.GET("/admin/courses", s.adminCourses)
	e.GET("/admin/enrollments", s.adminEnrollments)

	e.GET("/dashboard/lecturer", s.lecturerDashboard)
	e.GET("/dashboard/student", s.studentDashboard)
	e.GET("/dashboard/courses", s.dashboardCourses)
}

func (s *Server) failureMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		fail := s.failNext > 0
		if fail {
			s.failNext--
		}
		s.mu.Unlock()
		if fail {
			return apiError(c, http.StatusInternalServerError, "internal server error")
		}
		return next(c)
	}
}

// auth

func (s *Server) login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.users {
		if strings.EqualFold(acc.user.Email, creds.Email) && acc.password == creds.Password {
			if !acc.isActive {
				return apiError(c, http.StatusForbidden, "account is deactivated")
			}
			at, rt := s.issueTokens(acc.user.ID)
			return c.JSON(http.StatusOK, user.AuthResponse{AccessToken: at, RefreshToken: rt, User: acc.user})
		}
	}
	return apiError(c, http.StatusUnauthorized, "invalid credentials")
}

func (s *Server) registerLecturer(c echo.Context) error {
	var reg user.RegisterLecturer
	if err := c.Bind(&reg); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	return s.register(c, reg.Email, reg.Password, reg.FirstName, reg.LastName, user.RoleLecturer)
}

func (s *Server) registerStudent(c echo.Context) error {
	var reg user.RegisterStudent
	if err := c.Bind(&reg); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	return s.register(c, reg.Email, reg.Password, reg.FirstName, reg.LastName, user.RoleStudent)
}

func (s *Server) register(c echo.Context, email, password, firstName, lastName string, role user.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.users {
		if strings.EqualFold(acc.user.Email, email) {
			return apiError(c, http.StatusConflict, "email already registered")
		}
	}
	u := user.User{ID: s.nextID("usr"), Email: email, Role: role, FirstName: firstName, LastName: lastName}
	s.users[u.ID] = &account{user: u, password: password, isActive: true, createdAt: now()}
	at, rt := s.issueTokens(u.ID)
	return c.JSON(http.StatusCreated, user.AuthResponse{AccessToken: at, RefreshToken: rt, User: u})
}

func (s *Server) refreshToken(c echo.Context) error {
	var req user.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCalls++

	if s.failRefresh {
		return apiError(c, http.StatusUnauthorized, "refresh token revoked")
	}
	userID, ok := s.refreshTokens[req.RefreshToken]
	if !ok {
		return apiError(c, http.StatusUnauthorized, "invalid refresh token")
	}
	delete(s.refreshTokens, req.RefreshToken)
	at, rt := s.issueTokens(userID)
	return c.JSON(http.StatusOK, user.AuthResponse{AccessToken: at, RefreshToken: rt, User: s.users[userID].user})
}

// courses

func (s *Server) createCourse(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleLecturer {
		return apiError(c, http.StatusForbidden, "lecturer role required")
	}

	crs := course.Course{LecturerID: acc.user.ID, IsActive: true, CreatedAt: now(), UpdatedAt: now()}
	if isMultipart(c) {
		crs.Name = c.FormValue("name")
		crs.Description = c.FormValue("description")
		crs.Subject = c.FormValue("subject")
		crs.Level = c.FormValue("level")
		crs.Duration, _ = strconv.Atoi(c.FormValue("duration"))
		crs.HourlyRate, _ = strconv.ParseFloat(c.FormValue("hourlyRate"), 64)
		if f, err := c.FormFile("flyer"); err == nil {
			crs.Flyer = "/uploads/" + f.Filename
		}
		if mf, err := c.MultipartForm(); err == nil {
			for _, f := range mf.File["images"] {
				crs.Images = append(crs.Images, "/uploads/"+f.Filename)
			}
		}
	} else {
		var cc course.CreateCourse
		if err := c.Bind(&cc); err != nil {
			return apiError(c, http.StatusBadRequest, "invalid request body")
		}
		crs.Name = cc.Name
		crs.Description = cc.Description
		crs.Subject = cc.Subject
		crs.Level = cc.Level
		crs.Duration = cc.Duration
		crs.HourlyRate = cc.HourlyRate
	}
	if crs.Name == "" || crs.Subject == "" {
		return apiError(c, http.StatusBadRequest, "name and subject are required")
	}

	s.mu.Lock()
	crs.ID = s.nextID("crs")
	s.courses[crs.ID] = &crs
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, crs)
}

func (s *Server) myCourses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	includeInactive := c.QueryParam("includeInactive") == "true"

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []course.Course{}
	for _, crs := range s.courses {
		if crs.LecturerID != acc.user.ID {
			continue
		}
		if !crs.IsActive && !includeInactive {
			continue
		}
		out = append(out, *crs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) searchCourses(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	subject := c.QueryParam("subject")
	level := c.QueryParam("level")

	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[course.SearchResult]{Data: []course.SearchResult{}}
	for _, crs := range s.courses {
		if !crs.IsActive {
			continue
		}
		if subject != "" && !strings.EqualFold(crs.Subject, subject) {
			continue
		}
		if level != "" && !strings.EqualFold(crs.Level, level) {
			continue
		}
		res := course.SearchResult{
			ID:          crs.ID,
			Name:        crs.Name,
			Description: crs.Description,
			Subject:     crs.Subject,
			Level:       crs.Level,
			Duration:    crs.Duration,
			HourlyRate:  crs.HourlyRate,
		}
		if lect, ok := s.users[crs.LecturerID]; ok {
			res.Lecturer.ID = lect.user.ID
			res.Lecturer.FirstName = lect.user.FirstName
			res.Lecturer.LastName = lect.user.LastName
		}
		page.Data = append(page.Data, res)
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) courseByID(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	return c.JSON(http.StatusOK, *crs)
}

func (s *Server) updateCourse(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	if crs.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your course")
	}

	if isMultipart(c) {
		if v := c.FormValue("name"); v != "" {
			crs.Name = v
		}
		if v := c.FormValue("description"); v != "" {
			crs.Description = v
		}
		if v := c.FormValue("isActive"); v != "" {
			crs.IsActive = v == "true"
		}
		if f, err := c.FormFile("flyer"); err == nil {
			crs.Flyer = "/uploads/" + f.Filename
		}
	} else {
		var uc course.UpdateCourse
		if err := c.Bind(&uc); err != nil {
			return apiError(c, http.StatusBadRequest, "invalid request body")
		}
		if uc.Name != nil {
			crs.Name = *uc.Name
		}
		if uc.Description != nil {
			crs.Description = *uc.Description
		}
		if uc.Subject != nil {
			crs.Subject = *uc.Subject
		}
		if uc.Level != nil {
			crs.Level = *uc.Level
		}
		if uc.Duration != nil {
			crs.Duration = *uc.Duration
		}
		if uc.HourlyRate != nil {
			crs.HourlyRate = *uc.HourlyRate
		}
		if uc.IsActive != nil {
			crs.IsActive = *uc.IsActive
		}
	}
	crs.UpdatedAt = now()
	return c.JSON(http.StatusOK, *crs)
}

func (s *Server) deleteCourse(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	if crs.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your course")
	}
	delete(s.courses, crs.ID)
	return c.NoContent(http.StatusNoContent)
}

// classes

func (s *Server) scheduleClass(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var cc class.CreateClass
	if err := c.Bind(&cc); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[cc.CourseID]; !ok {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	cls := class.Class{
		ID:             s.nextID("cls"),
		CourseID:       cc.CourseID,
		LecturerID:     acc.user.ID,
		StudentID:      cc.StudentID,
		StudentGroupID: cc.StudentGroupID,
		Date:           cc.Date,
		StartTime:      cc.StartTime,
		EndTime:        cc.EndTime,
		Status:         class.StatusScheduled,
		MeetingLink:    cc.MeetingLink,
		Location:       cc.Location,
		CreatedAt:      now(),
		UpdatedAt:      now(),
	}
	s.classes[cls.ID] = &cls
	return c.JSON(http.StatusCreated, cls)
}

func (s *Server) myClasses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	status := class.Status(c.QueryParam("status"))
	fromDate := c.QueryParam("fromDate")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []class.WithDetails{}
	for _, cls := range s.classes {
		if cls.LecturerID != acc.user.ID {
			continue
		}
		if status != "" && cls.Status != status {
			continue
		}
		if fromDate != "" && cls.Date < fromDate {
			continue
		}
		out = append(out, s.classDetails(cls))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

// classDetails must be called with mu held.
func (s *Server) classDetails(cls *class.Class) class.WithDetails {
	det := class.WithDetails{
		ID:          cls.ID,
		CourseID:    cls.CourseID,
		Date:        cls.Date,
		StartTime:   cls.StartTime,
		EndTime:     cls.EndTime,
		Status:      cls.Status,
		MeetingLink: cls.MeetingLink,
		Location:    cls.Location,
	}
	if crs, ok := s.courses[cls.CourseID]; ok {
		det.Course.Name = crs.Name
		det.Course.Subject = crs.Subject
		det.Course.Level = crs.Level
		det.Course.Duration = crs.Duration
	}
	if acc, ok := s.users[cls.StudentID]; ok {
		st := &struct {
			ID        string `json:"id"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}{ID: acc.user.ID, FirstName: acc.user.FirstName, LastName: acc.user.LastName}
		det.Student = st
	}
	if grp, ok := s.groups[cls.StudentGroupID]; ok {
		sg := &struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}{ID: grp.ID, Name: grp.Name}
		det.StudentGroup = sg
	}
	return det
}

func (s *Server) classByID(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cls, ok := s.classes[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "class not found")
	}
	return c.JSON(http.StatusOK, s.classDetails(cls))
}

func (s *Server) updateClass(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var uc class.UpdateClass
	if err := c.Bind(&uc); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cls, ok := s.classes[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "class not found")
	}
	if cls.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your class")
	}
	if uc.Date != nil {
		cls.Date = *uc.Date
	}
	if uc.StartTime != nil {
		cls.StartTime = *uc.StartTime
	}
	if uc.EndTime != nil {
		cls.EndTime = *uc.EndTime
	}
	if uc.Status != nil {
		cls.Status = *uc.Status
	}
	if uc.MeetingLink != nil {
		cls.MeetingLink = *uc.MeetingLink
	}
	if uc.Location != nil {
		cls.Location = *uc.Location
	}
	cls.UpdatedAt = now()
	return c.JSON(http.StatusOK, *cls)
}

func (s *Server) cancelClass(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cls, ok := s.classes[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "class not found")
	}
	if cls.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your class")
	}
	if cls.Status != class.StatusScheduled {
		return apiError(c, http.StatusBadRequest, "only scheduled classes can be cancelled")
	}
	cls.Status = class.StatusCancelled
	cls.UpdatedAt = now()
	return c.JSON(http.StatusOK, *cls)
}

func (s *Server) deleteClass(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cls, ok := s.classes[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "class not found")
	}
	if cls.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your class")
	}
	delete(s.classes, cls.ID)
	return c.NoContent(http.StatusNoContent)
}

// enrollments (lecturer side)

func (s *Server) listEnrollments(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	status := enrollment.Status(c.QueryParam("status"))
	courseID := c.QueryParam("courseId")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []enrollment.Details{}
	for _, det := range s.enrollments {
		crs, ok := s.courses[det.Course.ID]
		if !ok || crs.LecturerID != acc.user.ID {
			continue
		}
		if status != "" && det.Status != status {
			continue
		}
		if courseID != "" && det.Course.ID != courseID {
			continue
		}
		out = append(out, *det)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) pendingCount(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, det := range s.enrollments {
		crs, ok := s.courses[det.Course.ID]
		if ok && crs.LecturerID == acc.user.ID && det.Status == enrollment.StatusPending {
			count++
		}
	}
	return c.JSON(http.StatusOK, enrollment.PendingCount{Count: count})
}

func (s *Server) enrollmentByID(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	det, ok := s.enrollments[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "enrollment not found")
	}
	return c.JSON(http.StatusOK, *det)
}

func (s *Server) updateEnrollmentStatus(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var su enrollment.StatusUpdate
	if err := c.Bind(&su); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if su.Status != enrollment.StatusApproved && su.Status != enrollment.StatusRejected {
		return apiError(c, http.StatusBadRequest, "status must be APPROVED or REJECTED")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	det, ok := s.enrollments[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "enrollment not found")
	}
	if crs, ok := s.courses[det.Course.ID]; ok && crs.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your course")
	}
	if det.Status != enrollment.StatusPending {
		return apiError(c, http.StatusBadRequest, "enrollment already resolved")
	}
	det.Status = su.Status
	if su.Status == enrollment.StatusApproved {
		det.ApprovedAt = now()
	}
	return c.JSON(http.StatusOK, *det)
}

func (s *Server) directEnroll(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleLecturer {
		return apiError(c, http.StatusForbidden, "lecturer role required")
	}
	var de enrollment.DirectEnroll
	if err := c.Bind(&de); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[de.CourseID]
	if !ok {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	if crs.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your course")
	}
	det := s.newEnrollment(de.CourseID, de.StudentID, de.StudentGroupID, enrollment.StatusApproved)
	return c.JSON(http.StatusCreated, *det)
}

// availability

func (s *Server) createAvailability(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var ca availability.CreateAvailability
	if err := c.Bind(&ca); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	av := availability.Availability{
		ID:           s.nextID("avl"),
		LecturerID:   acc.user.ID,
		IsRecurring:  ca.IsRecurring,
		DayOfWeek:    ca.DayOfWeek,
		SpecificDate: ca.SpecificDate,
		StartTime:    ca.StartTime,
		EndTime:      ca.EndTime,
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}
	if ca.DayOfWeek != nil {
		av.DayName = time.Weekday(*ca.DayOfWeek).String()
	}
	s.availability[av.ID] = &av
	return c.JSON(http.StatusCreated, av)
}

func (s *Server) myAvailability(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	return s.availabilityOf(c, acc.user.ID, c.QueryParam("includeExpired") == "true")
}

func (s *Server) lecturerAvailability(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	return s.availabilityOf(c, c.Param("id"), false)
}

func (s *Server) availabilityOf(c echo.Context, lecturerID string, includeExpired bool) error {
	today := time.Now().Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []availability.Availability{}
	for _, av := range s.availability {
		if av.LecturerID != lecturerID {
			continue
		}
		if !includeExpired && av.SpecificDate != "" && av.SpecificDate < today {
			continue
		}
		out = append(out, *av)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) updateAvailability(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var ua availability.UpdateAvailability
	if err := c.Bind(&ua); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	av, ok := s.availability[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "availability not found")
	}
	if av.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your slot")
	}
	if ua.StartTime != nil {
		av.StartTime = *ua.StartTime
	}
	if ua.EndTime != nil {
		av.EndTime = *ua.EndTime
	}
	av.UpdatedAt = now()
	return c.JSON(http.StatusOK, *av)
}

func (s *Server) deleteAvailability(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	av, ok := s.availability[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "availability not found")
	}
	if av.LecturerID != acc.user.ID {
		return apiError(c, http.StatusForbidden, "not your slot")
	}
	delete(s.availability, av.ID)
	return c.NoContent(http.StatusNoContent)
}
