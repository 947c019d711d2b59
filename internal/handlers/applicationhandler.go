package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
	"github.com/justsurfingit/Campus-Job-Board/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// SubmitApplication is the POST /applications endpoint. The body is
// multipart: the personal fields plus the bound "cv" file.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dtos.ApplicationSubmission
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	var cv *multipart.FileHeader
	if file, err := c.FormFile("cv"); err == nil {
		cv = file
	}

	record, err := h.ApplicationService.Submit(&req, cv)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListApplications is the GET /applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.ApplicationService.List(c.Query("jobId"), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
