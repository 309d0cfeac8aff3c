package devserver

import (
	"testing"

	"campusAdmin/internal/modules/catalog/domain"
)

func TestStore_InsertAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first := store.Insert(domain.ResourceDepartments, map[string]any{"name": "Science"})
	second := store.Insert(domain.ResourceDepartments, map[string]any{"name": "Arts"})

	if first["id"] != "1" || second["id"] != "2" {
		t.Fatalf("unexpected ids: %v, %v", first["id"], second["id"])
	}
}

func TestStore_InsertUsesUUIDForUsers(t *testing.T) {
	store := NewStore()

	user := store.Insert(domain.ResourceUsers, map[string]any{"name": "Ada"})

	id, _ := user["id"].(string)
	if len(id) != 36 {
		t.Fatalf("expected uuid id, got %q", id)
	}
}

func TestStore_UpdateMergesPatch(t *testing.T) {
	store := NewStore()
	row := store.Insert(domain.ResourceSubjects, map[string]any{"name": "Calculus", "code": "MATH101"})

	updated, ok := store.Update(domain.ResourceSubjects, row["id"].(string), map[string]any{"name": "Calculus I"})
	if !ok {
		t.Fatalf("expected row to exist")
	}
	if updated["name"] != "Calculus I" || updated["code"] != "MATH101" {
		t.Fatalf("unexpected row after patch: %+v", updated)
	}
}

func TestStore_DeleteRemovesRow(t *testing.T) {
	store := NewStore()
	row := store.Insert(domain.ResourceClasses, map[string]any{"name": "Section A"})

	if _, ok := store.Delete(domain.ResourceClasses, row["id"].(string)); !ok {
		t.Fatalf("expected delete to succeed")
	}
	if _, ok := store.Get(domain.ResourceClasses, row["id"].(string)); ok {
		t.Fatalf("expected row to be gone")
	}
	if _, ok := store.Delete(domain.ResourceClasses, row["id"].(string)); ok {
		t.Fatalf("expected second delete to fail")
	}
}

func TestStore_ListFiltersAndPaginates(t *testing.T) {
	store := NewStore()
	for i := 0; i < 5; i++ {
		store.Insert(domain.ResourceUsers, map[string]any{"name": "Teacher", "role": "teacher"})
	}
	store.Insert(domain.ResourceUsers, map[string]any{"name": "Student", "role": "student"})

	rows, total := store.List(domain.ResourceUsers, Query{
		Page:    2,
		Limit:   3,
		Filters: map[string]string{"role": "teacher"},
	})
	if total != 5 {
		t.Fatalf("unexpected total: %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected page size: %d", len(rows))
	}
}

func TestStore_ListSearchMatchesNameAndCode(t *testing.T) {
	store := NewStore()
	store.Insert(domain.ResourceSubjects, map[string]any{"name": "Intro to Programming", "code": "CS101"})
	store.Insert(domain.ResourceSubjects, map[string]any{"name": "World Literature", "code": "ENG101"})

	rows, total := store.List(domain.ResourceSubjects, Query{Search: "cs1"})
	if total != 1 || rows[0]["code"] != "CS101" {
		t.Fatalf("unexpected search result: total=%d rows=%+v", total, rows)
	}
}

func TestStore_ListSortsNumerically(t *testing.T) {
	store := NewStore()
	store.Insert(domain.ResourceClasses, map[string]any{"name": "A", "capacity": 30})
	store.Insert(domain.ResourceClasses, map[string]any{"name": "B", "capacity": 5})
	store.Insert(domain.ResourceClasses, map[string]any{"name": "C", "capacity": 20})

	rows, _ := store.List(domain.ResourceClasses, Query{SortField: "capacity", SortOrder: "asc"})
	if rows[0]["name"] != "B" || rows[2]["name"] != "A" {
		t.Fatalf("unexpected order: %+v", rows)
	}
}

func TestStore_FindBy(t *testing.T) {
	store := NewStore()
	store.Insert(domain.ResourceUsers, map[string]any{"name": "Ada", "email": "ada@campus.test"})

	row, ok := store.FindBy(domain.ResourceUsers, "email", "ada@campus.test")
	if !ok || row["name"] != "Ada" {
		t.Fatalf("unexpected lookup result: ok=%v row=%+v", ok, row)
	}
	if _, ok := store.FindBy(domain.ResourceUsers, "email", "nobody@campus.test"); ok {
		t.Fatalf("expected miss")
	}
}
