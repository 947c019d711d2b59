package services

import (
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
	"github.com/justsurfingit/Campus-Job-Board/internal/storage"
	"github.com/justsurfingit/Campus-Job-Board/internal/store"
	"github.com/justsurfingit/Campus-Job-Board/internal/validation"
)

type ApplicationService struct {
	Store  store.ApplicationStore
	Files  storage.CVStorage
	Policy storage.Policy
}

func NewApplicationService(s store.ApplicationStore, files storage.CVStorage, policy storage.Policy) *ApplicationService {
	return &ApplicationService{Store: s, Files: files, Policy: policy}
}

// Submit accepts one application. Type and size violations on a bound file
// are rejected before anything else, matching the upload middleware running
// ahead of the handler; field validation accumulates every problem; a
// missing file is reported only once the fields check out. Note the jobId is
// deliberately not checked against the job store.
func (s *ApplicationService) Submit(req *dtos.ApplicationSubmission, cv *multipart.FileHeader) (*dtos.AcceptanceRecord, error) {
	if cv != nil {
		if err := s.Policy.Check(cv); err != nil {
			return nil, err
		}
	}

	rules := []validation.Rule{
		{Field: "jobId", Message: "Job ID is required", Valid: validation.NotEmpty(req.JobID)},
		{Field: "fullName", Message: "Full name is required", Valid: validation.NotEmpty(req.FullName)},
		{Field: "email", Message: "Please include a valid email", Valid: validation.IsEmail(req.Email)},
		{Field: "university", Message: "University is required", Valid: validation.NotEmpty(req.University)},
		{Field: "major", Message: "Major is required", Valid: validation.NotEmpty(req.Major)},
		{Field: "year", Message: "Year of study is required", Valid: validation.NotEmpty(req.Year)},
	}
	if err := validation.Apply(rules); err != nil {
		return nil, err
	}

	if cv == nil {
		return nil, apperr.New(apperr.CodeMissingFile, "CV file is required", nil)
	}

	filename, err := s.Files.Save(cv)
	if err != nil {
		return nil, err
	}

	coverLetter := req.CoverLetter
	if coverLetter == "" {
		coverLetter = "No cover letter provided"
	}

	app := models.Application{
		ID:          nextID(),
		JobID:       req.JobID,
		FullName:    req.FullName,
		Email:       req.Email,
		University:  req.University,
		Major:       req.Major,
		Year:        req.Year,
		CoverLetter: coverLetter,
		CVFile:      filename,
		Status:      models.StatusPending,
		AppliedAt:   time.Now().Format("2006-01-02"),
	}
	if err := s.Store.Append(app); err != nil {
		return nil, err
	}

	log.Printf("Application received: id=%d job=%s applicant=%s cv=%s", app.ID, app.JobID, app.Email, filename)

	return &dtos.AcceptanceRecord{
		Message:       "Application submitted successfully",
		ApplicationID: app.ID,
	}, nil
}

// List filters stored applications. The jobId filter is a case-insensitive
// substring match against the stored job title, and status matches exactly.
func (s *ApplicationService) List(jobID, status string) ([]models.Application, error) {
	apps, err := s.Store.All()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Application, 0, len(apps))
	jobIDLower := strings.ToLower(jobID)
	for _, app := range apps {
		if jobID != "" && !strings.Contains(strings.ToLower(app.JobTitle), jobIDLower) {
			continue
		}
		if status != "" && app.Status != status {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered, nil
}
