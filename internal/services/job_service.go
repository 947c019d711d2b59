package services

import (
	"time"

	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
	"github.com/justsurfingit/Campus-Job-Board/internal/query"
	"github.com/justsurfingit/Campus-Job-Board/internal/store"
	"github.com/justsurfingit/Campus-Job-Board/internal/validation"
)

type JobService struct {
	Store store.JobStore
}

func NewJobService(s store.JobStore) *JobService {
	return &JobService{Store: s}
}

// List resolves the search/type query against the job store.
func (s *JobService) List(search, jobType string) (query.Result, error) {
	jobs, err := s.Store.All()
	if err != nil {
		return query.Result{}, err
	}
	return query.Resolve(jobs, search, jobType), nil
}

func (s *JobService) Get(id int64) (*models.Job, error) {
	return s.Store.FindByID(id)
}

// Create validates the posting, accumulating every violated field, then
// appends it to the store and returns the created job so the caller can
// render it immediately.
func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.Job, error) {
	rules := []validation.Rule{
		{Field: "title", Message: "Title is required", Valid: validation.NotEmpty(req.Title)},
		{Field: "description", Message: "Description is required", Valid: validation.NotEmpty(req.Description)},
		{Field: "location", Message: "Location is required", Valid: validation.NotEmpty(req.Location)},
		{Field: "type", Message: "Type must be internship, full-time, or part-time", Valid: validation.OneOf(req.Type, models.TypeInternship, models.TypeFullTime, models.TypePartTime)},
	}
	if err := validation.Apply(rules); err != nil {
		return nil, err
	}

	requirements := req.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	job := models.Job{
		ID:           nextID(),
		Title:        req.Title,
		Company:      "Your Company",
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: requirements,
		PostedDate:   time.Now().Format("2006-01-02"),
		Deadline:     req.ApplicationDeadline,
		Applications: 0,
	}
	if err := s.Store.Append(job); err != nil {
		return nil, err
	}
	return &job, nil
}
