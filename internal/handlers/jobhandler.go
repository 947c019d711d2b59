package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
	"github.com/justsurfingit/Campus-Job-Board/internal/services"
)

// Dependency injection
type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is the GET /jobs endpoint
func (h *JobHandler) ListJobs(c *gin.Context) {
	result, err := h.JobService.List(c.Query("search"), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetJob is the GET /jobs/:id endpoint
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// a non-numeric id can never match a job
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}
	job, err := h.JobService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.JobCreatedResponse{
		Message: "Job posted successfully",
		Job:     *job,
	})
}
