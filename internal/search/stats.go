package search

import (
	"math"
	"strings"
)

// Stats summarizes how much of a collection a query kept.
type Stats struct {
	Total      int    `json:"total"`
	Filtered   int    `json:"filtered"`
	HasQuery   bool   `json:"hasQuery"`
	Query      string `json:"query"`
	Percentage int    `json:"percentage"`
}

// ComputeStats reports filtered against all. Percentage is rounded and zero
// for an empty collection.
func ComputeStats[T any](all, filtered []T, query string) Stats {
	s := Stats{
		Total:    len(all),
		Filtered: len(filtered),
		HasQuery: strings.TrimSpace(query) != "",
		Query:    query,
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Filtered) / float64(s.Total) * 100))
	}
	return s
}
