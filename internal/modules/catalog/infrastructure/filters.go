package infrastructure

import (
	"net/url"
	"strconv"
	"strings"

	"campusAdmin/internal/modules/catalog/domain"
)

// resourceFilterMap whitelists, per resource, the abstract filter fields the
// backend understands and the query parameter each one maps to. Fields not
// listed for a resource are silently dropped, as are filters for resources
// with no entry at all.
var resourceFilterMap = map[string]map[string]string{
	domain.ResourceSubjects: {
		"departmentId": "department",
		"department":   "department",
		"name":         "search",
		"code":         "search",
		"q":            "search",
	},
	domain.ResourceClasses: {
		"name":      "search",
		"q":         "search",
		"subjectId": "subject",
		"subject":   "subject",
		"teacherId": "teacher",
		"teacher":   "teacher",
	},
	domain.ResourceUsers: {
		"role":  "role",
		"name":  "search",
		"email": "search",
		"q":     "search",
	},
	domain.ResourceDepartments: {
		"name": "search",
		"code": "search",
		"q":    "search",
	},
}

func mapFilterField(resource, field string) string {
	aliases := resourceFilterMap[resource]
	if aliases == nil {
		return ""
	}
	return aliases[strings.TrimSpace(field)]
}

// buildListValues constructs the outgoing query parameters for a list call:
// always page and limit, the first sorter when present, then the mapped
// resource filters. Filters with empty values never reach the wire.
func buildListValues(resource string, query domain.ListQuery) url.Values {
	normalized := query.Normalize()
	values := url.Values{}
	values.Set("page", strconv.Itoa(normalized.Page))
	values.Set("limit", strconv.Itoa(normalized.PageSize))

	if len(normalized.Sort) > 0 {
		values.Set("sortField", normalized.Sort[0].Field)
		values.Set("sortOrder", normalized.Sort[0].Order)
	}

	for _, filter := range normalized.Filters {
		value := filter.ValueString()
		if value == "" {
			continue
		}
		param := mapFilterField(resource, filter.Field)
		if param == "" {
			continue
		}
		values.Set(param, value)
	}
	return values
}
