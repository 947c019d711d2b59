package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeMissingFile  Code = "missing_file"
	CodeFileType     Code = "file_type"
	CodeFileSize     Code = "file_size"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
)

// FieldError is one entry of an accumulated validation failure. The json
// shape matches what form clients render next to each input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NewValidation wraps every violated field into a single error so callers
// can show all problems at once instead of just the first.
func NewValidation(fields []FieldError) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Fields: fields}
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// FieldsOf returns the accumulated field errors, or nil when err is not a
// validation error.
func FieldsOf(err error) []FieldError {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code == CodeValidation {
		return appErr.Fields
	}
	return nil
}
