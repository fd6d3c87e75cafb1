package domain

import (
	"sort"
	"strings"
)

// ServiceType classifies a service visit.
type ServiceType string

const (
	ServiceOrdinary      ServiceType = "ordinary"
	ServiceExtraordinary ServiceType = "extraordinary"
)

// ServiceEntry records one service visit.
type ServiceEntry struct {
	ID          string      `json:"id"`
	Date        Date        `json:"date" validate:"required"`
	Type        ServiceType `json:"type" validate:"required,oneof=ordinary extraordinary"`
	Odometer    int         `json:"odometer" validate:"required,min=1"`
	Description string      `json:"description" validate:"max=500"`
	Cost        float64     `json:"cost" validate:"min=0"`
}

// Normalize uppercases the free-text description.
func (s *ServiceEntry) Normalize() {
	s.Description = strings.ToUpper(strings.TrimSpace(s.Description))
}

// SortServiceEntriesDesc returns a copy sorted by date descending.
func SortServiceEntriesDesc(entries []ServiceEntry) []ServiceEntry {
	sorted := make([]ServiceEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
