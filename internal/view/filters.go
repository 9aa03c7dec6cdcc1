package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// Selection is the set of active filter dimensions for the device list.
// Zero values mean "unset". Type and subcategory hang off the category:
// changing the category resets both, and their option lists are cleared
// until the dependent fetches resolve.
type Selection struct {
	CategoryID    int
	TypeID        int
	SubcategoryID int
	OfficeID      int
	Status        string
	Search        string

	// Option lists for the dependent dimensions, discarded on any
	// category change.
	Types         []models.DeviceType
	Subcategories []models.Subcategory
}

// SetCategory selects a category. Any change, including clearing,
// unsets the dependent type/subcategory selections and empties their
// option lists.
func (s *Selection) SetCategory(id int) {
	if id == s.CategoryID {
		return
	}
	s.CategoryID = id
	s.TypeID = 0
	s.SubcategoryID = 0
	s.Types = nil
	s.Subcategories = nil
}

// ClearCategory unsets the category and, with it, both dependents.
func (s *Selection) ClearCategory() { s.SetCategory(0) }

// ValidateDependents checks the selected type and subcategory against
// the fetched option lists. A selection pointing outside its category
// is a form error, caught before any device fetch.
func (s Selection) ValidateDependents() error {
	if s.TypeID != 0 {
		found := false
		for _, t := range s.Types {
			if t.ID == s.TypeID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("type %d does not belong to category %d", s.TypeID, s.CategoryID)
		}
	}
	if s.SubcategoryID != 0 {
		found := false
		for _, sub := range s.Subcategories {
			if sub.ID == s.SubcategoryID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("subcategory %d does not belong to category %d", s.SubcategoryID, s.CategoryID)
		}
	}
	return nil
}

// TypeName resolves a type id against the fetched options; unknown ids
// fall back to the bare number.
func (s Selection) TypeName(id int) string {
	for _, t := range s.Types {
		if t.ID == id {
			return t.Name
		}
	}
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

// SubcategoryName mirrors TypeName for the subcategory axis.
func (s Selection) SubcategoryName(id int) string {
	for _, sub := range s.Subcategories {
		if sub.ID == id {
			return sub.Name
		}
	}
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

// ServerFilter is the portion of the selection that is sent to the
// backend. Search stays local.
func (s Selection) ServerFilter() (categoryID, typeID, subcategoryID, officeID int, status string) {
	return s.CategoryID, s.TypeID, s.SubcategoryID, s.OfficeID, s.Status
}

// FilterDevices applies every active dimension as an AND predicate,
// plus the case-insensitive substring search over name and description.
// The server already filtered on the structured dimensions when asked
// to, but re-applying them keeps cached lists consistent.
func FilterDevices(items []models.Device, s Selection) []models.Device {
	search := strings.ToLower(strings.TrimSpace(s.Search))

	out := make([]models.Device, 0, len(items))
	for _, d := range items {
		if s.CategoryID != 0 && d.CategoryID != s.CategoryID {
			continue
		}
		if s.TypeID != 0 && d.TypeID != s.TypeID {
			continue
		}
		if s.SubcategoryID != 0 && d.SubcategoryID != s.SubcategoryID {
			continue
		}
		if s.OfficeID != 0 && d.OfficeID != s.OfficeID {
			continue
		}
		if s.Status != "" && !strings.EqualFold(d.Status, s.Status) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Description), search) {
			continue
		}
		out = append(out, d)
	}
	return out
}
