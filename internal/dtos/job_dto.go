package dtos

import "github.com/justsurfingit/Campus-Job-Board/internal/models"

type JobCreationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`

	// Optional Fields
	Requirements        []string `json:"requirements"`
	Salary              string   `json:"salary"`
	ApplicationDeadline string   `json:"application_deadline"`
}

type JobCreatedResponse struct {
	Message string     `json:"message"`
	Job     models.Job `json:"job"`
}
