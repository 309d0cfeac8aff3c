package devserver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"campusAdmin/internal/modules/catalog/domain"
)

// searchFields lists which row fields the search query parameter matches,
// per resource.
var searchFields = map[string][]string{
	domain.ResourceDepartments: {"name", "code"},
	domain.ResourceSubjects:    {"name", "code"},
	domain.ResourceClasses:     {"name"},
	domain.ResourceUsers:       {"name", "email"},
}

// uuidKeyed resources get uuid identifiers; everything else gets sequential
// numeric ids, matching the ids the production backend hands out.
var uuidKeyed = map[string]bool{
	domain.ResourceUsers: true,
	"organizations":      true,
}

// Query narrows and orders a listing.
type Query struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
	Search    string
	Filters   map[string]string
}

// Store is the devserver's in-memory database. Rows are loose maps so the
// handlers can serve them straight back as JSON.
type Store struct {
	mu     sync.RWMutex
	seq    int
	tables map[string]*table
}

type table struct {
	order []string
	rows  map[string]map[string]any
}

func NewStore() *Store {
	return &Store{tables: make(map[string]*table)}
}

func (s *Store) table(resource string) *table {
	t, ok := s.tables[resource]
	if !ok {
		t = &table{rows: make(map[string]map[string]any)}
		s.tables[resource] = t
	}
	return t
}

// Insert stores the row and assigns an id when the row has none.
func (s *Store) Insert(resource string, row map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprint(row["id"])
	if row["id"] == nil || id == "" {
		if uuidKeyed[resource] {
			id = uuid.NewString()
		} else {
			s.seq++
			id = strconv.Itoa(s.seq)
		}
		row["id"] = id
	}

	t := s.table(resource)
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
	return cloneRow(row)
}

func (s *Store) Get(resource, id string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[resource]
	if !ok {
		return nil, false
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return cloneRow(row), true
}

// Update merges the patch into the stored row.
func (s *Store) Update(resource, id string, patch map[string]any) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[resource]
	if !ok {
		return nil, false
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	for key, value := range patch {
		if key == "id" {
			continue
		}
		row[key] = value
	}
	return cloneRow(row), true
}

func (s *Store) Delete(resource, id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[resource]
	if !ok {
		return nil, false
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return row, true
}

// List applies the query's filters, search, ordering and pagination, and
// reports the filtered total alongside the requested page.
func (s *Store) List(resource string, q Query) ([]map[string]any, int) {
	s.mu.RLock()
	matched := make([]map[string]any, 0)
	if t, ok := s.tables[resource]; ok {
		for _, id := range t.order {
			row := t.rows[id]
			if matchesFilters(row, q.Filters) && matchesSearch(resource, row, q.Search) {
				matched = append(matched, cloneRow(row))
			}
		}
	}
	s.mu.RUnlock()

	if q.SortField != "" {
		sortRows(matched, q.SortField, q.SortOrder)
	}

	total := len(matched)
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []map[string]any{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// Count reports the unfiltered row count for a resource.
func (s *Store) Count(resource string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tables[resource]; ok {
		return len(t.rows)
	}
	return 0
}

// All returns every row of a resource in insertion order.
func (s *Store) All(resource string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[resource]
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, cloneRow(t.rows[id]))
	}
	return rows
}

// FindBy returns the first row whose field equals value.
func (s *Store) FindBy(resource, field, value string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[resource]
	if !ok {
		return nil, false
	}
	for _, id := range t.order {
		row := t.rows[id]
		if fmt.Sprint(row[field]) == value {
			return cloneRow(row), true
		}
	}
	return nil, false
}

func matchesFilters(row map[string]any, filters map[string]string) bool {
	for field, want := range filters {
		if fmt.Sprint(row[field]) != want {
			return false
		}
	}
	return true
}

func matchesSearch(resource string, row map[string]any, search string) bool {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return true
	}
	for _, field := range searchFields[resource] {
		value, ok := row[field].(string)
		if ok && strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

func sortRows(rows []map[string]any, field, order string) {
	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(rows, func(i, j int) bool {
		less := compareValues(rows[i][field], rows[j][field])
		if desc {
			return !less
		}
		return less
	})
}

func compareValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		f, err := strconv.ParseFloat(value, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func cloneRow(row map[string]any) map[string]any {
	clone := make(map[string]any, len(row))
	for key, value := range row {
		clone[key] = value
	}
	return clone
}
