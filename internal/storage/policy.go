package storage

import (
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
)

// MaxCVBytes is the default CV size cap (5 MiB).
const MaxCVBytes = 5 * 1024 * 1024

var allowedMIMETypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Policy rejects oversize files and anything that is not a PDF or Word
// document. It runs before any application record is constructed.
type Policy struct {
	MaxBytes int64
}

func NewPolicy(maxBytes int64) Policy {
	if maxBytes <= 0 {
		maxBytes = MaxCVBytes
	}
	return Policy{MaxBytes: maxBytes}
}

// Check validates the bound file. A nil header means no file was bound at
// all, which is reported separately from type and size violations. The
// declared Content-Type is checked first; when it is not on the allow list
// the content itself is sniffed, so a correctly typed file with a sloppy
// client header still passes.
func (p Policy) Check(cv *multipart.FileHeader) error {
	if cv == nil {
		return apperr.New(apperr.CodeMissingFile, "CV file is required", nil)
	}
	if cv.Size > p.MaxBytes {
		return apperr.New(apperr.CodeFileSize, fmt.Sprintf("CV file exceeds the %d byte limit", p.MaxBytes), nil)
	}
	if allowedMIME(cv.Header.Get("Content-Type")) {
		return nil
	}

	file, err := cv.Open()
	if err != nil {
		return apperr.New(apperr.CodeInternal, "failed to read CV file", err)
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return apperr.New(apperr.CodeInternal, "failed to inspect CV file", err)
	}
	for _, allowed := range allowedMIMETypes {
		if detected.Is(allowed) {
			return nil
		}
	}
	return apperr.New(apperr.CodeFileType, "Only PDF and Word documents are allowed", nil)
}

func allowedMIME(contentType string) bool {
	for _, allowed := range allowedMIMETypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
