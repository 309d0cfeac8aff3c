package domain

// Resource names exposed by the backend.
const (
	ResourceDepartments = "departments"
	ResourceSubjects    = "subjects"
	ResourceClasses     = "classes"
	ResourceUsers       = "users"
	ResourceEnrollments = "enrollments"
)

// Roles carried on user records.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// The DTOs below mirror the backend's wire shapes. They exist for typed
// consumers (CLI, dev server); the adapter itself moves generic records.

type Department struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Subject struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Description  string `json:"description,omitempty"`
	DepartmentID int    `json:"departmentId"`
	Department   string `json:"department,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type Schedule struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Class struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	SubjectID      int        `json:"subjectId"`
	TeacherID      string     `json:"teacherId"`
	Capacity       int        `json:"capacity"`
	Status         string     `json:"status"`
	BannerURL      string     `json:"bannerUrl,omitempty"`
	BannerCldPubID string     `json:"bannerCldPubId,omitempty"`
	InviteCode     string     `json:"inviteCode,omitempty"`
	Schedules      []Schedule `json:"schedules,omitempty"`
	CreatedAt      string     `json:"createdAt,omitempty"`
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Image          string `json:"image,omitempty"`
	ImageCldPubID  string `json:"imageCldPubId,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
	EmailVerified  bool   `json:"emailVerified,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

type Enrollment struct {
	ID         int    `json:"id"`
	ClassID    int    `json:"classId"`
	StudentID  string `json:"studentId"`
	EnrolledAt string `json:"enrolledAt,omitempty"`
}

type Organization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Logo         string `json:"logo,omitempty"`
	LogoCldPubID string `json:"logoCldPubId,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
