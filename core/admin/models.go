package admin

// SystemStats is the platform-wide aggregate view.
type SystemStats struct {
	Overview struct {
		TotalUsers         int `json:"totalUsers"`
		TotalLecturers     int `json:"totalLecturers"`
		TotalStudents      int `json:"totalStudents"`
		TotalCourses       int `json:"totalCourses"`
		ActiveCourses      int `json:"activeCourses"`
		TotalClasses       int `json:"totalClasses"`
		TotalEnrollments   int `json:"totalEnrollments"`
		PendingEnrollments int `json:"pendingEnrollments"`
	} `json:"overview"`
	RecentUsers []struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		CreatedAt string `json:"createdAt"`
	} `json:"recentUsers"`
}

// Counts is the `_count` aggregate the backend nests in profile payloads.
type Counts struct {
	Courses int `json:"courses"`
	Classes int `json:"classes"`
}

// Profile is the optional role-specific profile nested in an AdminUser.
type Profile struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Phone      string  `json:"phone,omitempty"`
	University string  `json:"university,omitempty"`
	StudentID  string  `json:"studentId,omitempty"`
	Count      *Counts `json:"_count,omitempty"`
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	IsActive        bool     `json:"isActive"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	CreatedAt       string   `json:"createdAt"`
	Profile         *Profile `json:"profile,omitempty"`
}

// AdminCourse is one row of the admin course listing.
type AdminCourse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Subject    string  `json:"subject"`
	Level      string  `json:"level,omitempty"`
	Duration   int     `json:"duration"`
	HourlyRate float64 `json:"hourlyRate"`
	IsActive   bool    `json:"isActive"`
	CreatedAt  string  `json:"createdAt"`
	Lecturer   struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		User      struct {
			Email string `json:"email"`
		} `json:"user"`
	} `json:"lecturer"`
	Count Counts `json:"_count"`
}

// AdminEnrollment is one row of the admin enrollment listing.
type AdminEnrollment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt"`
	ApprovedAt  string `json:"approvedAt,omitempty"`
	Course      struct {
		Name    string `json:"name"`
		Subject string `json:"subject"`
	} `json:"course"`
	Student struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		User      struct {
			Email string `json:"email"`
		} `json:"user"`
	} `json:"student"`
}

// UserStatusUpdate toggles an account's active flag.
type UserStatusUpdate struct {
	IsActive bool `json:"isActive"`
}

// StudentListItem is the flattened student row synthesized from the admin
// user listing; see MapStudent.
type StudentListItem struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	University string `json:"university"`
	StudentID  string `json:"studentId"`
	IsActive   bool   `json:"isActive"`
}

// MapStudent flattens an admin user record into a StudentListItem. The
// mapping is total: every missing nested field becomes an empty string,
// never a panic. Minimal records (no profile at all) are valid input.
func MapStudent(u AdminUser) StudentListItem {
	item := StudentListItem{
		UserID:   u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
	if u.Profile != nil {
		item.FirstName = u.Profile.FirstName
		item.LastName = u.Profile.LastName
		item.Phone = u.Profile.Phone
		item.University = u.Profile.University
		item.StudentID = u.Profile.StudentID
	}
	return item
}
