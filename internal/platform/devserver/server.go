package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"campusAdmin/internal/modules/catalog/domain"
	livedomain "campusAdmin/internal/modules/live/domain"
	liveinfra "campusAdmin/internal/modules/live/infrastructure"
)

// wireFilters maps each resource's query parameters to the row field they
// constrain. Parameters outside this table (and outside the paging and sort
// keys) are ignored.
var wireFilters = map[string]map[string]string{
	domain.ResourceSubjects: {"department": "departmentId"},
	domain.ResourceClasses:  {"subject": "subjectId", "teacher": "teacherId"},
	domain.ResourceUsers:    {"role": "role"},
}

var catalogResources = []string{
	domain.ResourceDepartments,
	domain.ResourceSubjects,
	domain.ResourceClasses,
	domain.ResourceUsers,
	domain.ResourceEnrollments,
}

// Server is the development backend: the catalog REST API, the auth
// endpoints, the dashboard aggregates and the live change feed, all served
// from an in-memory store.
type Server struct {
	store *Store
	hub   *liveinfra.Hub
	auth  *authService
}

func New(store *Store, hub *liveinfra.Hub, jwtSecret string, sessionTTL time.Duration) *Server {
	return &Server{
		store: store,
		hub:   hub,
		auth:  newAuthService(store, jwtSecret, sessionTTL),
	}
}

// Register mounts every route on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/sign-in/email", s.auth.handleSignIn)
	api.POST("/auth/sign-out", s.auth.handleSignOut)
	api.GET("/auth/get-session", s.auth.handleGetSession)
	api.POST("/auth/sign-up/email", s.auth.handleSignUp)
	api.GET("/auth/verify-email", s.auth.handleVerifyEmail)

	data := api.Group("", s.auth.requireSession)
	for _, resource := range catalogResources {
		resource := resource
		data.GET("/"+resource, s.handleList(resource))
		data.GET("/"+resource+"/:id", s.handleGet(resource))
		data.POST("/"+resource, s.handleCreate(resource))
		data.PUT("/"+resource+"/:id", s.handleUpdate(resource))
		data.DELETE("/"+resource+"/:id", s.handleDelete(resource))
	}
	data.GET("/organization/:id", s.handleGetOrganization)

	data.GET("/dashboard/stats", s.handleStats)
	data.GET("/dashboard/charts/enrollment-trends", s.handleEnrollmentTrends)
	data.GET("/dashboard/charts/classes-by-dept", s.handleClassesByDept)
	data.GET("/dashboard/charts/user-distribution", s.handleUserDistribution)
	data.GET("/dashboard/charts/capacity-status", s.handleCapacityStatus)

	e.GET("/ws/live", func(c echo.Context) error {
		return s.hub.ServeWS(c.Response(), c.Request())
	})
}

func (s *Server) handleList(resource string) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := Query{
			Page:      intParam(c, "page", 1),
			Limit:     intParam(c, "limit", 10),
			SortField: c.QueryParam("sortField"),
			SortOrder: c.QueryParam("sortOrder"),
			Search:    c.QueryParam("search"),
			Filters:   map[string]string{},
		}
		for param, field := range wireFilters[resource] {
			if value := strings.TrimSpace(c.QueryParam(param)); value != "" {
				q.Filters[field] = value
			}
		}

		rows, total := s.store.List(resource, q)
		if resource == domain.ResourceUsers {
			for i, row := range rows {
				rows[i] = sanitizeUser(row)
			}
		}
		return c.JSON(http.StatusOK, map[string]any{
			"data":       rows,
			"pagination": map[string]any{"total": total},
		})
	}
}

func (s *Server) handleGet(resource string) echo.HandlerFunc {
	return func(c echo.Context) error {
		row, ok := s.store.Get(resource, c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, messageBody(notFoundMessage(resource)))
		}
		if resource == domain.ResourceUsers {
			row = sanitizeUser(row)
		}
		return c.JSON(http.StatusOK, map[string]any{"data": row})
	}
}

func (s *Server) handleCreate(resource string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload map[string]any
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, messageBody("Malformed payload"))
		}
		payload["createdAt"] = time.Now().UTC().Format(time.RFC3339)

		row := s.store.Insert(resource, payload)
		s.broadcast(livedomain.EventCreated, resource, row)
		if resource == domain.ResourceUsers {
			row = sanitizeUser(row)
		}
		return c.JSON(http.StatusCreated, map[string]any{"data": row})
	}
}

func (s *Server) handleUpdate(resource string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var patch map[string]any
		if err := c.Bind(&patch); err != nil {
			return c.JSON(http.StatusBadRequest, messageBody("Malformed payload"))
		}

		row, ok := s.store.Update(resource, c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, messageBody(notFoundMessage(resource)))
		}
		s.broadcast(livedomain.EventUpdated, resource, row)
		if resource == domain.ResourceUsers {
			row = sanitizeUser(row)
		}
		return c.JSON(http.StatusOK, map[string]any{"data": row})
	}
}

func (s *Server) handleDelete(resource string) echo.HandlerFunc {
	return func(c echo.Context) error {
		row, ok := s.store.Delete(resource, c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, messageBody(notFoundMessage(resource)))
		}
		s.broadcast(livedomain.EventDeleted, resource, row)
		return c.NoContent(http.StatusNoContent)
	}
}

func (s *Server) handleGetOrganization(c echo.Context) error {
	row, ok := s.store.Get("organizations", c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, messageBody("Organization not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": row})
}

func (s *Server) broadcast(eventType livedomain.EventType, resource string, row map[string]any) {
	s.hub.Broadcast(livedomain.Event{
		Type:     eventType,
		Resource: resource,
		ID:       strings.TrimSpace(asString(row["id"])),
		At:       time.Now().UTC(),
	})
}

func intParam(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

var singularNames = map[string]string{
	domain.ResourceDepartments: "Department",
	domain.ResourceSubjects:    "Subject",
	domain.ResourceClasses:     "Class",
	domain.ResourceUsers:       "User",
	domain.ResourceEnrollments: "Enrollment",
}

func notFoundMessage(resource string) string {
	if name, ok := singularNames[resource]; ok {
		return name + " not found"
	}
	return "Record not found"
}
