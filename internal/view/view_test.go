package view

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func makeDevices(n int) []models.Device {
	out := make([]models.Device, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Device{
			ID:   i,
			Name: fmt.Sprintf("device-%02d", i),
		})
	}
	return out
}

func TestPaginateScenario(t *testing.T) {
	// 25 devices, pageSize 9: pages are 9, 9, 7.
	items := makeDevices(25)

	page1, total := Paginate(items, 1, 9)
	if total != 3 {
		t.Fatalf("expected 3 total pages, got %d", total)
	}
	if len(page1) != 9 || page1[0].ID != 1 || page1[8].ID != 9 {
		t.Fatalf("page 1 should hold items 1-9, got %d items starting at %d", len(page1), page1[0].ID)
	}

	page3, _ := Paginate(items, 3, 9)
	if len(page3) != 7 || page3[0].ID != 19 || page3[6].ID != 25 {
		t.Fatalf("page 3 should hold items 19-25, got %d items", len(page3))
	}
}

func TestPaginateBounds(t *testing.T) {
	items := makeDevices(25)

	for page := -1; page <= 10; page++ {
		got, total := Paginate(items, page, 9)
		if len(got) > 9 {
			t.Fatalf("page %d longer than pageSize: %d", page, len(got))
		}
		if total != 3 {
			t.Fatalf("total pages changed with page input: %d", total)
		}
		// Every page is a contiguous window of the input.
		for i := 1; i < len(got); i++ {
			if got[i].ID != got[i-1].ID+1 {
				t.Fatalf("page %d is not contiguous", page)
			}
		}
	}

	// Out-of-range pages clamp rather than return empty slices.
	last, _ := Paginate(items, 99, 9)
	if len(last) != 7 {
		t.Fatalf("expected clamp to last page (7 items), got %d", len(last))
	}
	first, _ := Paginate(items, 0, 9)
	if len(first) != 9 || first[0].ID != 1 {
		t.Fatalf("expected clamp to first page")
	}
}

func TestPaginateEmpty(t *testing.T) {
	got, total := Paginate([]models.Device{}, 1, 9)
	if total != 1 {
		t.Fatalf("empty list must still have 1 page, got %d", total)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %d items", len(got))
	}
}

func TestPaginateIdempotent(t *testing.T) {
	items := makeDevices(13)
	a, at := Paginate(items, 2, 9)
	b, bt := Paginate(items, 2, 9)
	if at != bt || !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different outputs")
	}
}

func TestSelectionHierarchicalReset(t *testing.T) {
	var s Selection
	s.SetCategory(3)
	s.TypeID = 7
	s.SubcategoryID = 4
	s.Types = []models.DeviceType{{ID: 7, CategoryID: 3}}
	s.Subcategories = []models.Subcategory{{ID: 4, CategoryID: 3}}

	// Changing the category unsets both dependents and clears their
	// option lists before any new fetch resolves.
	s.SetCategory(5)
	if s.TypeID != 0 || s.SubcategoryID != 0 {
		t.Fatalf("dependent selections not reset: type=%d sub=%d", s.TypeID, s.SubcategoryID)
	}
	if s.Types != nil || s.Subcategories != nil {
		t.Fatalf("dependent option lists not cleared")
	}

	// Clearing behaves the same.
	s.TypeID = 2
	s.ClearCategory()
	if s.CategoryID != 0 || s.TypeID != 0 {
		t.Fatalf("clear did not reset category chain")
	}

	// Re-setting the same category is not a change.
	s.SetCategory(5)
	s.TypeID = 9
	s.SetCategory(5)
	if s.TypeID != 9 {
		t.Fatalf("same-category set must not reset dependents")
	}
}

func TestValidateDependents(t *testing.T) {
	var s Selection
	s.SetCategory(3)
	s.Types = []models.DeviceType{{ID: 7, Name: "Laser", CategoryID: 3}}
	s.Subcategories = []models.Subcategory{{ID: 4, Name: "Color", CategoryID: 3}}

	s.TypeID = 7
	s.SubcategoryID = 4
	if err := s.ValidateDependents(); err != nil {
		t.Fatalf("in-category selections must validate: %v", err)
	}

	// A type from another category is rejected before any device fetch.
	s.TypeID = 99
	if err := s.ValidateDependents(); err == nil {
		t.Fatalf("foreign type must be rejected")
	}
	s.TypeID = 7
	s.SubcategoryID = 99
	if err := s.ValidateDependents(); err == nil {
		t.Fatalf("foreign subcategory must be rejected")
	}

	// Unset dependents need no options at all.
	if err := (Selection{}).ValidateDependents(); err != nil {
		t.Fatalf("empty selection must validate: %v", err)
	}
}

func TestDependentNameLookup(t *testing.T) {
	s := Selection{
		Types:         []models.DeviceType{{ID: 7, Name: "Laser"}},
		Subcategories: []models.Subcategory{{ID: 4, Name: "Color"}},
	}
	if got := s.TypeName(7); got != "Laser" {
		t.Fatalf("TypeName(7) = %q", got)
	}
	if got := s.SubcategoryName(4); got != "Color" {
		t.Fatalf("SubcategoryName(4) = %q", got)
	}
	// Unknown ids fall back to the number, unset to a dash.
	if got := s.TypeName(12); got != "12" {
		t.Fatalf("unknown type id = %q", got)
	}
	if got := s.SubcategoryName(0); got != "-" {
		t.Fatalf("unset subcategory = %q", got)
	}
}

func TestFilterDevices(t *testing.T) {
	items := []models.Device{
		{ID: 1, Name: "HP LaserJet", Status: "available", CategoryID: 1, OfficeID: 2},
		{ID: 2, Name: "Canon Printer", Status: "in_use", CategoryID: 1, OfficeID: 2},
		{ID: 3, Name: "Dell Monitor", Status: "available", CategoryID: 2, OfficeID: 2},
		{ID: 4, Name: "Epson printer", Description: "lobby", Status: "available", CategoryID: 1, OfficeID: 3},
	}

	var s Selection
	s.SetCategory(1)
	s.Status = "available"
	got := FilterDevices(items, s)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("conjunctive filter wrong: %+v", got)
	}

	// Search is case-insensitive and matches name or description.
	s = Selection{Search: "PRINT"}
	got = FilterDevices(items, s)
	if len(got) != 2 {
		t.Fatalf("expected 2 printer matches, got %d", len(got))
	}
	s = Selection{Search: "lobby"}
	got = FilterDevices(items, s)
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("description search failed")
	}

	// Unset dimensions contribute no predicate.
	got = FilterDevices(items, Selection{})
	if len(got) != len(items) {
		t.Fatalf("empty selection must keep all items")
	}
}

func TestSortReports(t *testing.T) {
	items := []models.Report{
		{ID: 1, CreatedAt: "2025-03-01T10:00:00Z"},
		{ID: 2, CreatedAt: "2025-03-03T10:00:00Z"},
		{ID: 3, CreatedAt: "2025-03-02T10:00:00Z"},
		{ID: 4, CreatedAt: "2025-03-03T10:00:00Z"}, // tie with #2
	}

	latest := SortReports(items, "latest")
	wantLatest := []int{2, 4, 3, 1}
	for i, id := range wantLatest {
		if latest[i].ID != id {
			t.Fatalf("latest order wrong at %d: got %d want %d", i, latest[i].ID, id)
		}
	}

	earliest := SortReports(items, "earliest")
	wantEarliest := []int{1, 3, 2, 4}
	for i, id := range wantEarliest {
		if earliest[i].ID != id {
			t.Fatalf("earliest order wrong at %d: got %d want %d", i, earliest[i].ID, id)
		}
	}

	// Unknown order leaves input untouched; input itself is never mutated.
	same := SortReports(items, "")
	if !reflect.DeepEqual(same, items) {
		t.Fatalf("no-op sort changed the list")
	}
	if items[0].ID != 1 {
		t.Fatalf("input mutated by sort")
	}
}

func TestFilterReports(t *testing.T) {
	items := []models.Report{
		{ID: 1, Status: "pending"},
		{ID: 2, Status: "resolved"},
		{ID: 3, Status: "pending"},
	}
	got := FilterReports(items, "pending")
	if len(got) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(got))
	}
	if len(FilterReports(items, "")) != 3 {
		t.Fatalf("empty status must keep all")
	}
}

func TestPagerClampsWhenCountShrinks(t *testing.T) {
	p := NewPager(9)
	p.SetCount(25)
	p.SetPage(3)
	if p.Current() != 3 {
		t.Fatalf("expected page 3, got %d", p.Current())
	}

	// A filter removes rows; the page clamps down as a side effect.
	p.SetCount(5)
	if p.Current() != 1 || p.Total() != 1 {
		t.Fatalf("expected clamp to page 1 of 1, got %d of %d", p.Current(), p.Total())
	}

	p.SetCount(0)
	if p.Current() != 1 || p.Total() != 1 {
		t.Fatalf("zero count must keep one page")
	}

	p.SetCount(25)
	p.Next()
	p.Next()
	p.Next() // would be page 4, clamps at 3
	if p.Current() != 3 {
		t.Fatalf("Next past end must clamp, got %d", p.Current())
	}
	p.SetPage(-2)
	if p.Current() != 1 {
		t.Fatalf("negative page must clamp to 1")
	}
}

func TestLatestDiscardsStale(t *testing.T) {
	var l Latest

	first := l.Next()
	second := l.Next()

	// The slower first fetch resolves after the second was issued.
	if l.Keep(first) {
		t.Fatalf("stale sequence must be discarded")
	}
	if !l.Keep(second) {
		t.Fatalf("newest sequence must be kept")
	}
}
