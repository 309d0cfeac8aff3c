package domain

// Stats is the headline counter block shown on the dashboard home.
type Stats struct {
	Users       int `json:"users"`
	Classes     int `json:"classes"`
	Enrollments int `json:"enrollments"`
	Subjects    int `json:"subjects"`
}

// Chart keys served by the backend's /dashboard/charts/* endpoints.
const (
	ChartEnrollmentTrends = "enrollment-trends"
	ChartClassesByDept    = "classes-by-dept"
	ChartUserDistribution = "user-distribution"
	ChartCapacityStatus   = "capacity-status"
)

type TrendPoint struct {
	Month       string `json:"month"`
	Enrollments int    `json:"enrollments"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Classes    int    `json:"classes"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type CapacityPoint struct {
	Class    string `json:"class"`
	Capacity int    `json:"capacity"`
	Enrolled int    `json:"enrolled"`
}
