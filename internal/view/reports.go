package view

import (
	"sort"
	"time"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// FilterReports keeps reports matching status; empty status keeps all.
func FilterReports(items []models.Report, status string) []models.Report {
	if status == "" {
		return items
	}
	out := make([]models.Report, 0, len(items))
	for _, r := range items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// SortReports stable-sorts by creation timestamp. order is "latest"
// (newest first) or "earliest"; anything else leaves the input order.
// Ties and unparsable timestamps preserve their original order.
func SortReports(items []models.Report, order string) []models.Report {
	if order != "latest" && order != "earliest" {
		return items
	}
	out := make([]models.Report, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		ti := parseCreated(out[i].CreatedAt)
		tj := parseCreated(out[j].CreatedAt)
		if order == "latest" {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
	return out
}

func parseCreated(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
