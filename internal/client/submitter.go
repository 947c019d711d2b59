// Package client is the submission-side counterpart of the application
// intake: it holds the entered form state, mirrors the server's required
// field check before calling out, and guarantees at most one in-flight
// submission. Entered values survive a failed attempt so the user can retry.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/justsurfingit/Campus-Job-Board/internal/dtos"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission is still outstanding. The call is a no-op, not
	// queued.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	ErrMissingFields = errors.New("please fill in all required fields")
	ErrMissingCV     = errors.New("please upload your CV/Resume")
)

// FormState mirrors the apply form. CV holds the file bytes read from the
// picker.
type FormState struct {
	JobID       string
	FullName    string
	Email       string
	University  string
	Major       string
	Year        string
	CoverLetter string
	CVName      string
	CV          []byte
}

type state int

const (
	stateIdle state = iota
	stateSubmitting
)

type Submitter struct {
	mu    sync.Mutex
	state state
	form  FormState

	baseURL string
	http    *http.Client
}

func New(baseURL string) *Submitter {
	return &Submitter{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Submitter) SetForm(form FormState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Submitter) Form() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit sends the current form as a multipart request. The pre-check is a
// UX shortcut only; the server re-validates everything independently. On
// success the form is reset; on any failure it is preserved and the caller
// decides whether to retry. Submit never retries on its own.
func (s *Submitter) Submit() (*dtos.AcceptanceRecord, error) {
	s.mu.Lock()
	if s.state == stateSubmitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	form := s.form
	if err := precheck(form); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = stateSubmitting
	s.mu.Unlock()

	record, err := s.post(form)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = stateIdle
	if err != nil {
		// keep the entered values for a manual retry
		return nil, err
	}
	s.form = FormState{}
	return record, nil
}

func precheck(form FormState) error {
	if len(form.CV) == 0 {
		return ErrMissingCV
	}
	if form.FullName == "" || form.Email == "" || form.University == "" ||
		form.Major == "" || form.Year == "" {
		return ErrMissingFields
	}
	return nil
}

func (s *Submitter) post(form FormState) (*dtos.AcceptanceRecord, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"jobId":       form.JobID,
		"fullName":    form.FullName,
		"email":       form.Email,
		"university":  form.University,
		"major":       form.Major,
		"year":        form.Year,
		"coverLetter": form.CoverLetter,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	part, err := createCVPart(writer, form)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(form.CV); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/applications", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeFailure(resp)
	}

	var record dtos.AcceptanceRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// createCVPart writes the cv part with the real content type of the picked
// file instead of multipart's octet-stream default.
func createCVPart(writer *multipart.Writer, form FormState) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename=%q`, form.CVName))
	header.Set("Content-Type", mimetype.Detect(form.CV).String())
	return writer.CreatePart(header)
}

func decodeFailure(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"msg"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("submission failed with status %d", resp.StatusCode)
	}
	if payload.Message != "" {
		return fmt.Errorf("submission rejected: %s", payload.Message)
	}
	if len(payload.Errors) > 0 {
		problems := make([]string, 0, len(payload.Errors))
		for _, fieldErr := range payload.Errors {
			problems = append(problems, fieldErr.Field+": "+fieldErr.Message)
		}
		return fmt.Errorf("submission rejected: %v", problems)
	}
	return fmt.Errorf("submission failed with status %d", resp.StatusCode)
}
