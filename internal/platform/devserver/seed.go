package devserver

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campusAdmin/internal/modules/catalog/domain"
)

// SeedPassword is the password every seeded account accepts.
const SeedPassword = "password123"

// Seed loads a small campus into the store: one organization, a handful of
// accounts, and enough catalog rows to make listings, filters and the
// dashboard charts interesting.
func Seed(store *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed password hash: %w", err)
	}
	passwordHash := string(hash)

	org := store.Insert("organizations", map[string]any{
		"name":    "Springfield High",
		"type":    "high-school",
		"email":   "office@springfield.test",
		"phone":   "555-0134",
		"address": "742 Evergreen Terrace",
	})
	orgID := org["id"]

	users := []map[string]any{
		{"name": "Ada Principal", "email": "admin@campus.test", "role": domain.RoleAdmin},
		{"name": "Tom Rivera", "email": "tom.rivera@campus.test", "role": domain.RoleTeacher},
		{"name": "Mei Tanaka", "email": "mei.tanaka@campus.test", "role": domain.RoleTeacher},
		{"name": "Lena Okafor", "email": "lena.okafor@campus.test", "role": domain.RoleStudent},
		{"name": "Raj Mehta", "email": "raj.mehta@campus.test", "role": domain.RoleStudent},
		{"name": "Sofia Alvarez", "email": "sofia.alvarez@campus.test", "role": domain.RoleStudent},
	}
	userIDs := make(map[string]string, len(users))
	for _, user := range users {
		user["organizationId"] = orgID
		user["emailVerified"] = true
		user["passwordHash"] = passwordHash
		inserted := store.Insert(domain.ResourceUsers, user)
		userIDs[user["email"].(string)] = inserted["id"].(string)
	}

	departments := []map[string]any{
		{"code": "CS", "name": "Computer Science"},
		{"code": "MATH", "name": "Mathematics"},
		{"code": "ENG", "name": "English"},
	}
	deptIDs := make(map[string]any, len(departments))
	for _, dept := range departments {
		inserted := store.Insert(domain.ResourceDepartments, dept)
		deptIDs[dept["code"].(string)] = inserted["id"]
	}

	subjects := []map[string]any{
		{"name": "Intro to Programming", "code": "CS101", "departmentId": deptIDs["CS"]},
		{"name": "Data Structures", "code": "CS201", "departmentId": deptIDs["CS"]},
		{"name": "Calculus I", "code": "MATH101", "departmentId": deptIDs["MATH"]},
		{"name": "World Literature", "code": "ENG101", "departmentId": deptIDs["ENG"]},
	}
	subjectIDs := make(map[string]any, len(subjects))
	for _, subject := range subjects {
		inserted := store.Insert(domain.ResourceSubjects, subject)
		subjectIDs[subject["code"].(string)] = inserted["id"]
	}

	classes := []map[string]any{
		{"name": "CS101 Morning", "subjectId": subjectIDs["CS101"], "teacherId": userIDs["tom.rivera@campus.test"], "capacity": 3, "status": "active"},
		{"name": "CS201 Afternoon", "subjectId": subjectIDs["CS201"], "teacherId": userIDs["tom.rivera@campus.test"], "capacity": 25, "status": "active"},
		{"name": "Calculus Section A", "subjectId": subjectIDs["MATH101"], "teacherId": userIDs["mei.tanaka@campus.test"], "capacity": 30, "status": "active"},
		{"name": "World Lit Seminar", "subjectId": subjectIDs["ENG101"], "teacherId": userIDs["mei.tanaka@campus.test"], "capacity": 20, "status": "draft"},
	}
	classIDs := make([]any, 0, len(classes))
	for _, class := range classes {
		inserted := store.Insert(domain.ResourceClasses, class)
		classIDs = append(classIDs, inserted["id"])
	}

	now := time.Now().UTC()
	enrollments := []struct {
		class    any
		student  string
		monthAgo int
	}{
		{classIDs[0], "lena.okafor@campus.test", 2},
		{classIDs[0], "raj.mehta@campus.test", 1},
		{classIDs[0], "sofia.alvarez@campus.test", 0},
		{classIDs[1], "lena.okafor@campus.test", 1},
		{classIDs[2], "raj.mehta@campus.test", 0},
		{classIDs[2], "sofia.alvarez@campus.test", 2},
	}
	for _, e := range enrollments {
		enrolledAt := now.AddDate(0, -e.monthAgo, 0).Format(time.RFC3339)
		store.Insert(domain.ResourceEnrollments, map[string]any{
			"classId":    e.class,
			"studentId":  userIDs[e.student],
			"enrolledAt": enrolledAt,
		})
	}

	return nil
}
