package parts

import (
	"sort"
	"strings"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
)

// Filter returns the parts whose part number, supplier, or description
// contains the query, case-insensitively. An empty query matches all.
func Filter(parts []model.Part, query string) []model.Part {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return parts
	}

	out := make([]model.Part, 0, len(parts))
	for _, p := range parts {
		if strings.Contains(strings.ToLower(p.PartNumber), query) ||
			strings.Contains(strings.ToLower(p.Supplier), query) ||
			strings.Contains(strings.ToLower(p.PartDescription), query) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders parts in place by the given field using its kind's natural
// ordering. The sort is stable so equal records keep their newest-first
// collection order.
func Sort(parts []model.Part, id field.ID, desc bool) {
	sort.SliceStable(parts, func(i, j int) bool {
		c := field.Compare(parts[i], parts[j], id)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// Summary aggregates the collection for the dashboard cards.
type Summary struct {
	Total         int `json:"total"`
	SAPPlaced     int `json:"sapPlaced"`
	SAPReleased   int `json:"sapReleased"`
	QualityIssues int `json:"qualityIssues"`
}

// Stats counts totals, SAP workflow progress, and quality issues
// (records failing or on hold).
func Stats(parts []model.Part) Summary {
	var s Summary
	s.Total = len(parts)
	for _, p := range parts {
		if p.SAPPlaced {
			s.SAPPlaced++
		}
		if p.SAPReleased {
			s.SAPReleased++
		}
		if p.QualityStatus == model.StatusFail || p.QualityStatus == model.StatusHold {
			s.QualityIssues++
		}
	}
	return s
}
