// Package query resolves a client-issued job query against a job collection.
package query

import (
	"strings"

	"github.com/justsurfingit/Campus-Job-Board/internal/models"
)

// TypeAll is the sentinel a client sends to skip type filtering.
const TypeAll = "all"

type PageInfo struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalJobs   int  `json:"totalJobs"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type Result struct {
	Jobs       []models.Job `json:"jobs"`
	Pagination PageInfo     `json:"pagination"`
}

// Resolve filters jobs by a case-insensitive free-text search across title,
// company, location and description, AND-composed with an exact type match.
// Empty filters match everything; insertion order is preserved. Pagination is
// a single page: the UI consumes the envelope but real paging is not
// implemented.
func Resolve(jobs []models.Job, search, jobType string) Result {
	filtered := make([]models.Job, 0, len(jobs))

	searchLower := strings.ToLower(search)
	for _, job := range jobs {
		if searchLower != "" && !matchesSearch(job, searchLower) {
			continue
		}
		if jobType != "" && jobType != TypeAll && job.Type != jobType {
			continue
		}
		filtered = append(filtered, job)
	}

	return Result{
		Jobs: filtered,
		Pagination: PageInfo{
			CurrentPage: 1,
			TotalPages:  1,
			TotalJobs:   len(filtered),
			HasNext:     false,
			HasPrev:     false,
		},
	}
}

func matchesSearch(job models.Job, searchLower string) bool {
	return strings.Contains(strings.ToLower(job.Title), searchLower) ||
		strings.Contains(strings.ToLower(job.Company), searchLower) ||
		strings.Contains(strings.ToLower(job.Location), searchLower) ||
		strings.Contains(strings.ToLower(job.Description), searchLower)
}
