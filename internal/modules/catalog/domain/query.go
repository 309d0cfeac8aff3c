package domain

import (
	"fmt"
	"strings"
)

// Sort orders accepted on the wire.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sorter names a field and direction for list ordering. The backend accepts
// a single sort key; only the first sorter of a query is transmitted.
type Sorter struct {
	Field string
	Order string
}

// Filter is one abstract filter entry. Operator is carried for callers that
// need it but the REST mapping only consults Field and Value.
type Filter struct {
	Field    string
	Operator string
	Value    any
}

// ValueString renders the filter value for the wire, or "" when the filter
// must be dropped (nil or empty value).
func (f Filter) ValueString() string {
	if f.Value == nil {
		return ""
	}
	if s, ok := f.Value.(string); ok {
		return s
	}
	return fmt.Sprint(f.Value)
}

// ListQuery captures pagination, sorting and filtering for a list request.
type ListQuery struct {
	Page     int
	PageSize int
	Sort     []Sorter
	Filters  []Filter
}

// Normalize applies the pagination defaults (page 1, size 10) and sanitizes
// the sort direction of the first sorter.
func (q ListQuery) Normalize() ListQuery {
	normalized := q
	if normalized.Page <= 0 {
		normalized.Page = 1
	}
	if normalized.PageSize <= 0 {
		normalized.PageSize = 10
	}
	if len(normalized.Sort) > 0 {
		first := normalized.Sort[0]
		first.Field = strings.TrimSpace(first.Field)
		if !strings.EqualFold(first.Order, SortDesc) {
			first.Order = SortAsc
		} else {
			first.Order = SortDesc
		}
		normalized.Sort = append([]Sorter{first}, normalized.Sort[1:]...)
	}
	return normalized
}
