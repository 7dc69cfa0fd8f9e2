package dashboard

// LecturerDashboard aggregates a lecturer's courses, classes, earnings and
// recent enrollment activity.
type LecturerDashboard struct {
	Overview struct {
		TotalCourses      int    `json:"totalCourses"`
		ActiveCourses     int    `json:"activeCourses"`
		TotalClasses      int    `json:"totalClasses"`
		TotalStudents     int    `json:"totalStudents"`
		TotalEarnings     string `json:"totalEarnings"`
		ThisMonthEarnings string `json:"thisMonthEarnings"`
	} `json:"overview"`
	Classes struct {
		Upcoming  int `json:"upcoming"`
		Completed int `json:"completed"`
		Cancelled int `json:"cancelled"`
		ThisMonth int `json:"thisMonth"`
		ThisWeek  int `json:"thisWeek"`
	} `json:"classes"`
	RecentActivity struct {
		Enrollments []struct {
			CourseName  string `json:"courseName"`
			StudentName string `json:"studentName,omitempty"`
			GroupName   string `json:"groupName,omitempty"`
			Status      string `json:"status"`
			EnrolledAt  string `json:"enrolledAt"`
		} `json:"enrollments"`
	} `json:"recentActivity"`
	UpcomingSchedule []ScheduleEntry `json:"upcomingSchedule"`
}

// StudentDashboard aggregates a student's enrollments and upcoming classes.
type StudentDashboard struct {
	Overview struct {
		TotalEnrollments    int `json:"totalEnrollments"`
		ApprovedEnrollments int `json:"approvedEnrollments"`
		PendingEnrollments  int `json:"pendingEnrollments"`
		TotalClasses        int `json:"totalClasses"`
	} `json:"overview"`
	Classes struct {
		Upcoming  int `json:"upcoming"`
		Completed int `json:"completed"`
	} `json:"classes"`
	EnrolledCourses []struct {
		CourseName string `json:"courseName"`
		Subject    string `json:"subject"`
		Level      string `json:"level,omitempty"`
		Lecturer   string `json:"lecturer"`
		EnrolledAt string `json:"enrolledAt,omitempty"`
	} `json:"enrolledCourses"`
	UpcomingSchedule []ScheduleEntry `json:"upcomingSchedule"`
}

// ScheduleEntry is one upcoming class row on either dashboard.
type ScheduleEntry struct {
	ID          string `json:"id"`
	CourseName  string `json:"courseName"`
	Subject     string `json:"subject"`
	StudentName string `json:"studentName,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	Lecturer    string `json:"lecturer,omitempty"`
	ClassDate   string `json:"classDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Location    string `json:"location,omitempty"`
}

// CourseStats is one row of the lecturer's per-course statistics.
type CourseStats struct {
	CourseID    string `json:"courseId"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Enrollments int    `json:"enrollments"`
	Classes     int    `json:"classes"`
}
