package clienttest

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/admin"
	"github.com/tutorlink/tutorlink-go/core/class"
	"github.com/tutorlink/tutorlink-go/core/course"
	"github.com/tutorlink/tutorlink-go/core/dashboard"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
	"github.com/tutorlink/tutorlink-go/core/user"
)

// lecturer portal

func (s *Server) lecturerProfile(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleLecturer {
		return apiError(c, http.StatusForbidden, "lecturer role required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.lecturerProfileOf(acc))
}

// lecturerProfileOf must be called with mu held.
func (s *Server) lecturerProfileOf(acc *account) user.LecturerProfile {
	return user.LecturerProfile{
		ID:             "lp-" + acc.user.ID,
		UserID:         acc.user.ID,
		FirstName:      acc.user.FirstName,
		LastName:       acc.user.LastName,
		Phone:          acc.phone,
		Bio:            acc.bio,
		Qualifications: acc.qualifications,
		Email:          acc.user.Email,
		IsActive:       acc.isActive,
		CreatedAt:      acc.createdAt,
		UpdatedAt:      now(),
	}
}

func (s *Server) updateLecturerProfile(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	var up user.UpdateLecturerProfile
	if err := c.Bind(&up); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if up.FirstName != nil {
		acc.user.FirstName = *up.FirstName
	}
	if up.LastName != nil {
		acc.user.LastName = *up.LastName
	}
	if up.Phone != nil {
		acc.phone = *up.Phone
	}
	if up.Bio != nil {
		acc.bio = *up.Bio
	}
	if up.Qualifications != nil {
		acc.qualifications = *up.Qualifications
	}
	return c.JSON(http.StatusOK, s.lecturerProfileOf(acc))
}

func (s *Server) lecturerPublic(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.users[c.Param("id")]
	if !ok || acc.user.Role != user.RoleLecturer {
		return apiError(c, http.StatusNotFound, "lecturer not found")
	}

	pub := user.LecturerPublic{
		ID:             acc.user.ID,
		FirstName:      acc.user.FirstName,
		LastName:       acc.user.LastName,
		Bio:            acc.bio,
		Qualifications: acc.qualifications,
	}
	for _, crs := range s.courses {
		if crs.LecturerID != acc.user.ID || !crs.IsActive {
			continue
		}
		pub.Courses = append(pub.Courses, struct {
			ID          string  `json:"id"`
			Name        string  `json:"name"`
			Description string  `json:"description,omitempty"`
			Subject     string  `json:"subject"`
			Level       string  `json:"level,omitempty"`
			HourlyRate  float64 `json:"hourlyRate"`
			Duration    int     `json:"duration"`
		}{
			ID:          crs.ID,
			Name:        crs.Name,
			Description: crs.Description,
			Subject:     crs.Subject,
			Level:       crs.Level,
			HourlyRate:  crs.HourlyRate,
			Duration:    crs.Duration,
		})
	}
	return c.JSON(http.StatusOK, pub)
}

func (s *Server) lecturerList(c echo.Context) error {
	if _, err := s.authed(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[user.LecturerListItem]{Data: []user.LecturerListItem{}}
	for _, acc := range s.users {
		if acc.user.Role != user.RoleLecturer {
			continue
		}
		item := user.LecturerListItem{
			ID:             acc.user.ID,
			FirstName:      acc.user.FirstName,
			LastName:       acc.user.LastName,
			Email:          acc.user.Email,
			Bio:            acc.bio,
			Qualifications: acc.qualifications,
			JoinedDate:     acc.createdAt,
		}
		for _, crs := range s.courses {
			if crs.LecturerID == acc.user.ID {
				item.CoursesCount++
			}
		}
		for _, cls := range s.classes {
			if cls.LecturerID == acc.user.ID {
				item.ClassesCount++
			}
		}
		page.Data = append(page.Data, item)
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

// student portal

func (s *Server) studentProfile(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleStudent {
		return apiError(c, http.StatusForbidden, "student role required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.studentProfileOf(acc))
}

// studentProfileOf must be called with mu held.
func (s *Server) studentProfileOf(acc *account) user.StudentProfile {
	return user.StudentProfile{
		ID:           "sp-" + acc.user.ID,
		UserID:       acc.user.ID,
		FirstName:    acc.user.FirstName,
		LastName:     acc.user.LastName,
		Phone:        acc.phone,
		University:   acc.university,
		StudentID:    acc.studentID,
		ProfileImage: acc.user.ProfileImage,
		Email:        acc.user.Email,
		IsActive:     acc.isActive,
		CreatedAt:    acc.createdAt,
		UpdatedAt:    now(),
	}
}

func (s *Server) updateStudentProfile(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if isMultipart(c) {
		if v := c.FormValue("firstName"); v != "" {
			acc.user.FirstName = v
		}
		if v := c.FormValue("lastName"); v != "" {
			acc.user.LastName = v
		}
		if v := c.FormValue("phone"); v != "" {
			acc.phone = v
		}
		if v := c.FormValue("university"); v != "" {
			acc.university = v
		}
		if v := c.FormValue("studentId"); v != "" {
			acc.studentID = v
		}
		if f, err := c.FormFile("profileImage"); err == nil {
			acc.user.ProfileImage = "/uploads/" + f.Filename
		}
	} else {
		var up user.UpdateStudentProfile
		if err := c.Bind(&up); err != nil {
			return apiError(c, http.StatusBadRequest, "invalid request body")
		}
		if up.FirstName != nil {
			acc.user.FirstName = *up.FirstName
		}
		if up.LastName != nil {
			acc.user.LastName = *up.LastName
		}
		if up.Phone != nil {
			acc.phone = *up.Phone
		}
		if up.University != nil {
			acc.university = *up.University
		}
		if up.StudentID != nil {
			acc.studentID = *up.StudentID
		}
	}
	return c.JSON(http.StatusOK, s.studentProfileOf(acc))
}

func (s *Server) studentEnroll(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleStudent {
		return apiError(c, http.StatusForbidden, "student role required")
	}
	var er enrollment.EnrollRequest
	if err := c.Bind(&er); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	crs, ok := s.courses[er.CourseID]
	if !ok || !crs.IsActive {
		return apiError(c, http.StatusNotFound, "course not found")
	}
	for _, det := range s.enrollments {
		if det.Course.ID == er.CourseID && det.StudentID == acc.user.ID && det.Status != enrollment.StatusRejected {
			return apiError(c, http.StatusBadRequest, "already enrolled or pending")
		}
	}
	studentID := acc.user.ID
	if er.StudentGroupID != "" {
		studentID = ""
	}
	det := s.newEnrollment(er.CourseID, studentID, er.StudentGroupID, enrollment.StatusPending)
	return c.JSON(http.StatusCreated, s.studentView(det))
}

// studentView must be called with mu held.
func (s *Server) studentView(det *enrollment.Details) enrollment.Enrollment {
	enr := enrollment.Enrollment{
		ID:             det.ID,
		CourseID:       det.Course.ID,
		StudentID:      det.StudentID,
		StudentGroupID: det.StudentGroupID,
		Status:         det.Status,
		RequestedAt:    det.RequestedAt,
		ApprovedAt:     det.ApprovedAt,
	}
	if crs, ok := s.courses[det.Course.ID]; ok {
		enr.Course.ID = crs.ID
		enr.Course.Name = crs.Name
		enr.Course.Subject = crs.Subject
		enr.Course.Level = crs.Level
		enr.Course.Duration = crs.Duration
		enr.Course.HourlyRate = crs.HourlyRate
		if lect, ok := s.users[crs.LecturerID]; ok {
			enr.Course.Lecturer.ID = lect.user.ID
			enr.Course.Lecturer.FirstName = lect.user.FirstName
			enr.Course.Lecturer.LastName = lect.user.LastName
		}
	}
	return enr
}

func (s *Server) studentEnrollments(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	status := enrollment.Status(c.QueryParam("status"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []enrollment.Enrollment{}
	for _, det := range s.enrollments {
		if det.StudentID != acc.user.ID {
			continue
		}
		if status != "" && det.Status != status {
			continue
		}
		out = append(out, s.studentView(det))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) studentCourses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []course.Course{}
	for _, det := range s.enrollments {
		if det.StudentID != acc.user.ID || det.Status != enrollment.StatusApproved {
			continue
		}
		if crs, ok := s.courses[det.Course.ID]; ok {
			out = append(out, *crs)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) studentClasses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	upcoming := c.QueryParam("upcoming") == "true"
	today := time.Now().Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []class.StudentClass{}
	for _, cls := range s.classes {
		if cls.StudentID != acc.user.ID {
			continue
		}
		if upcoming && (cls.Date < today || cls.Status != class.StatusScheduled) {
			continue
		}
		sc := class.StudentClass{
			ID:          cls.ID,
			CourseID:    cls.CourseID,
			Date:        cls.Date,
			StartTime:   cls.StartTime,
			EndTime:     cls.EndTime,
			Status:      string(cls.Status),
			MeetingLink: cls.MeetingLink,
			Location:    cls.Location,
		}
		if crs, ok := s.courses[cls.CourseID]; ok {
			sc.Course.Name = crs.Name
			sc.Course.Subject = crs.Subject
		}
		if lect, ok := s.users[cls.LecturerID]; ok {
			sc.Lecturer.FirstName = lect.user.FirstName
			sc.Lecturer.LastName = lect.user.LastName
		}
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

// admin portal

func (s *Server) adminUsers(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}
	role := c.QueryParam("role")
	isActive := c.QueryParam("isActive")

	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[admin.AdminUser]{Data: []admin.AdminUser{}}
	for _, a := range s.users {
		if role != "" && string(a.user.Role) != role {
			continue
		}
		if isActive != "" && strconv.FormatBool(a.isActive) != isActive {
			continue
		}
		page.Data = append(page.Data, s.adminUserOf(a))
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

// adminUserOf must be called with mu held.
func (s *Server) adminUserOf(a *account) admin.AdminUser {
	au := admin.AdminUser{
		ID:        a.user.ID,
		Email:     a.user.Email,
		Role:      string(a.user.Role),
		IsActive:  a.isActive,
		CreatedAt: a.createdAt,
	}
	if a.user.FirstName != "" || a.user.LastName != "" {
		au.Profile = &admin.Profile{
			FirstName:  a.user.FirstName,
			LastName:   a.user.LastName,
			Phone:      a.phone,
			University: a.university,
			StudentID:  a.studentID,
		}
	}
	return au
}

func (s *Server) adminUserByID(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.users[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, s.adminUserOf(a))
}

func (s *Server) adminUserStatus(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}
	var su admin.UserStatusUpdate
	if err := c.Bind(&su); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.users[c.Param("id")]
	if !ok {
		return apiError(c, http.StatusNotFound, "user not found")
	}
	a.isActive = su.IsActive
	return c.JSON(http.StatusOK, s.adminUserOf(a))
}

func (s *Server) adminStats(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var stats admin.SystemStats
	stats.RecentUsers = []struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		CreatedAt string `json:"createdAt"`
	}{}
	for _, a := range s.users {
		stats.Overview.TotalUsers++
		switch a.user.Role {
		case user.RoleLecturer:
			stats.Overview.TotalLecturers++
		case user.RoleStudent:
			stats.Overview.TotalStudents++
		}
	}
	for _, crs := range s.courses {
		stats.Overview.TotalCourses++
		if crs.IsActive {
			stats.Overview.ActiveCourses++
		}
	}
	stats.Overview.TotalClasses = len(s.classes)
	for _, det := range s.enrollments {
		stats.Overview.TotalEnrollments++
		if det.Status == enrollment.StatusPending {
			stats.Overview.PendingEnrollments++
		}
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) adminCourses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[admin.AdminCourse]{Data: []admin.AdminCourse{}}
	for _, crs := range s.courses {
		ac := admin.AdminCourse{
			ID:         crs.ID,
			Name:       crs.Name,
			Subject:    crs.Subject,
			Level:      crs.Level,
			Duration:   crs.Duration,
			HourlyRate: crs.HourlyRate,
			IsActive:   crs.IsActive,
			CreatedAt:  crs.CreatedAt,
		}
		if lect, ok := s.users[crs.LecturerID]; ok {
			ac.Lecturer.FirstName = lect.user.FirstName
			ac.Lecturer.LastName = lect.user.LastName
			ac.Lecturer.User.Email = lect.user.Email
		}
		page.Data = append(page.Data, ac)
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) adminEnrollments(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	if acc.user.Role != user.RoleAdmin {
		return apiError(c, http.StatusForbidden, "admin role required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page := core.Paginated[admin.AdminEnrollment]{Data: []admin.AdminEnrollment{}}
	for _, det := range s.enrollments {
		ae := admin.AdminEnrollment{
			ID:          det.ID,
			Status:      string(det.Status),
			RequestedAt: det.RequestedAt,
			ApprovedAt:  det.ApprovedAt,
		}
		ae.Course.Name = det.Course.Name
		ae.Course.Subject = det.Course.Subject
		if a, ok := s.users[det.StudentID]; ok {
			ae.Student.FirstName = a.user.FirstName
			ae.Student.LastName = a.user.LastName
			ae.Student.User.Email = a.user.Email
		}
		page.Data = append(page.Data, ae)
	}
	sort.Slice(page.Data, func(i, j int) bool { return page.Data[i].ID < page.Data[j].ID })
	page.Meta = core.Meta{Total: len(page.Data), Page: 1, Limit: len(page.Data), TotalPages: 1}
	return c.JSON(http.StatusOK, page)
}

// dashboards

func (s *Server) lecturerDashboard(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var dash dashboard.LecturerDashboard
	for _, crs := range s.courses {
		if crs.LecturerID != acc.user.ID {
			continue
		}
		dash.Overview.TotalCourses++
		if crs.IsActive {
			dash.Overview.ActiveCourses++
		}
	}
	for _, cls := range s.classes {
		if cls.LecturerID != acc.user.ID {
			continue
		}
		dash.Overview.TotalClasses++
		switch cls.Status {
		case class.StatusScheduled:
			dash.Classes.Upcoming++
		case class.StatusCompleted:
			dash.Classes.Completed++
		case class.StatusCancelled:
			dash.Classes.Cancelled++
		}
	}
	dash.Overview.TotalEarnings = "0"
	dash.Overview.ThisMonthEarnings = "0"
	dash.UpcomingSchedule = []dashboard.ScheduleEntry{}
	return c.JSON(http.StatusOK, dash)
}

func (s *Server) studentDashboard(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var dash dashboard.StudentDashboard
	for _, det := range s.enrollments {
		if det.StudentID != acc.user.ID {
			continue
		}
		dash.Overview.TotalEnrollments++
		switch det.Status {
		case enrollment.StatusApproved:
			dash.Overview.ApprovedEnrollments++
		case enrollment.StatusPending:
			dash.Overview.PendingEnrollments++
		}
	}
	for _, cls := range s.classes {
		if cls.StudentID != acc.user.ID {
			continue
		}
		dash.Overview.TotalClasses++
		switch cls.Status {
		case class.StatusScheduled:
			dash.Classes.Upcoming++
		case class.StatusCompleted:
			dash.Classes.Completed++
		}
	}
	dash.UpcomingSchedule = []dashboard.ScheduleEntry{}
	return c.JSON(http.StatusOK, dash)
}

func (s *Server) dashboardCourses(c echo.Context) error {
	acc, err := s.authed(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []dashboard.CourseStats{}
	for _, crs := range s.courses {
		if crs.LecturerID != acc.user.ID {
			continue
		}
		stats := dashboard.CourseStats{CourseID: crs.ID, Name: crs.Name, Subject: crs.Subject}
		for _, det := range s.enrollments {
			if det.Course.ID == crs.ID {
				stats.Enrollments++
			}
		}
		for _, cls := range s.classes {
			if cls.CourseID == crs.ID {
				stats.Classes++
			}
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return c.JSON(http.StatusOK, out)
}

func isMultipart(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEMultipartForm)
}
