package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
)

// writeError maps the error taxonomy onto HTTP responses. Validation
// failures return the accumulated field list; file-policy and credential
// problems return a single message; anything unexpected is logged and
// surfaced as a generic 500 without internal detail.
func writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	switch appErr.Code {
	case apperr.CodeValidation:
		c.JSON(http.StatusBadRequest, gin.H{"errors": appErr.Fields})
	case apperr.CodeMissingFile, apperr.CodeFileType, apperr.CodeFileSize, apperr.CodeConflict:
		c.JSON(http.StatusBadRequest, gin.H{"message": appErr.Message})
	case apperr.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": appErr.Message})
	case apperr.CodeUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"message": appErr.Message})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
