package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"campusAdmin/internal/modules/catalog/domain"
)

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"data": map[string]any{
		"users":       s.store.Count(domain.ResourceUsers),
		"classes":     s.store.Count(domain.ResourceClasses),
		"enrollments": s.store.Count(domain.ResourceEnrollments),
		"subjects":    s.store.Count(domain.ResourceSubjects),
	}})
}

// handleEnrollmentTrends buckets enrollments by calendar month of their
// enrolledAt timestamp.
func (s *Server) handleEnrollmentTrends(c echo.Context) error {
	counts := make(map[string]int)
	for _, row := range s.store.All(domain.ResourceEnrollments) {
		enrolledAt, _ := row["enrolledAt"].(string)
		parsed, err := time.Parse(time.RFC3339, enrolledAt)
		if err != nil {
			continue
		}
		counts[parsed.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]map[string]any, 0, len(months))
	for _, month := range months {
		points = append(points, map[string]any{"month": month, "enrollments": counts[month]})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": points})
}

// handleClassesByDept joins classes through subjects to their department.
func (s *Server) handleClassesByDept(c echo.Context) error {
	subjectDept := make(map[string]string)
	for _, subject := range s.store.All(domain.ResourceSubjects) {
		subjectDept[asString(subject["id"])] = asString(subject["departmentId"])
	}
	deptNames := make(map[string]string)
	for _, dept := range s.store.All(domain.ResourceDepartments) {
		deptNames[asString(dept["id"])] = asString(dept["name"])
	}

	counts := make(map[string]int)
	for _, class := range s.store.All(domain.ResourceClasses) {
		deptID := subjectDept[asString(class["subjectId"])]
		if name, ok := deptNames[deptID]; ok {
			counts[name]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	points := make([]map[string]any, 0, len(names))
	for _, name := range names {
		points = append(points, map[string]any{"department": name, "classes": counts[name]})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": points})
}

func (s *Server) handleUserDistribution(c echo.Context) error {
	counts := make(map[string]int)
	for _, user := range s.store.All(domain.ResourceUsers) {
		counts[asString(user["role"])]++
	}

	roles := make([]string, 0, len(counts))
	for role := range counts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	points := make([]map[string]any, 0, len(roles))
	for _, role := range roles {
		points = append(points, map[string]any{"role": role, "count": counts[role]})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": points})
}

// handleCapacityStatus pairs each class capacity with its live enrollment
// count.
func (s *Server) handleCapacityStatus(c echo.Context) error {
	enrolled := make(map[string]int)
	for _, enrollment := range s.store.All(domain.ResourceEnrollments) {
		enrolled[asString(enrollment["classId"])]++
	}

	points := make([]map[string]any, 0)
	for _, class := range s.store.All(domain.ResourceClasses) {
		capacity, _ := toFloat(class["capacity"])
		points = append(points, map[string]any{
			"class":    asString(class["name"]),
			"capacity": int(capacity),
			"enrolled": enrolled[asString(class["id"])],
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": points})
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
