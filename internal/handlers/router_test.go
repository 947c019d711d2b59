package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Campus-Job-Board/internal/auth"
	"github.com/justsurfingit/Campus-Job-Board/internal/models"
	"github.com/justsurfingit/Campus-Job-Board/internal/query"
	"github.com/justsurfingit/Campus-Job-Board/internal/services"
	"github.com/justsurfingit/Campus-Job-Board/internal/storage"
	"github.com/justsurfingit/Campus-Job-Board/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerOptions struct {
	seedJobs bool
	seedApps bool
}

func newTestRouter(t *testing.T, opts routerOptions) *gin.Engine {
	t.Helper()

	var jobSeed []models.Job
	if opts.seedJobs {
		jobSeed = store.SeedJobs()
	}
	var appSeed []models.Application
	if opts.seedApps {
		appSeed = store.SeedApplications()
	}

	files, err := storage.NewDiskStorage(t.TempDir())
	if err != nil {
		t.Fatalf("disk storage: %v", err)
	}
	tokens := auth.NewTokenProvider("test_secret")

	return NewRouter(RouterDeps{
		Jobs:         NewJobHandler(services.NewJobService(store.NewMemoryJobStore(jobSeed))),
		Applications: NewApplicationHandler(services.NewApplicationService(store.NewMemoryApplicationStore(appSeed), files, storage.NewPolicy(0))),
		Auth:         NewAuthHandler(services.NewAuthService(store.NewMemoryUserStore(store.SeedUsers()), tokens)),
		Analytics:    NewAnalyticsHandler(),
		Tokens:       tokens,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestJobLifecycleEndToEnd(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]any{
		"title":       "QA Tester",
		"description": "d",
		"location":    "Remote",
		"type":        "part-time",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Message string     `json:"message"`
		Job     models.Job `json:"job"`
	}
	decode(t, rec, &created)
	if created.Message != "Job posted successfully" || created.Job.ID == 0 {
		t.Fatalf("unexpected create response: %+v", created)
	}

	// the posted job is found by a case-insensitive search
	rec = doJSON(t, router, http.MethodGet, "/jobs?search=qa", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var listed query.Result
	decode(t, rec, &listed)
	if len(listed.Jobs) != 1 || listed.Jobs[0].Title != "QA Tester" {
		t.Fatalf("search did not return the posted job: %+v", listed.Jobs)
	}

	// a type filter that does not match excludes it
	rec = doJSON(t, router, http.MethodGet, "/jobs?type=internship", nil)
	decode(t, rec, &listed)
	if len(listed.Jobs) != 0 {
		t.Fatalf("type filter should exclude the job: %+v", listed.Jobs)
	}

	// and it is fetchable by id
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/jobs/%d", created.Job.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get by id returned %d", rec.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	router := newTestRouter(t, routerOptions{seedJobs: true})

	for _, path := range []string{"/jobs/999999", "/jobs/not-a-number"} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s returned %d, want 404", path, rec.Code)
		}
	}
}

func TestCreateJobReturnsEveryViolation(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	rec := doJSON(t, router, http.MethodPost, "/jobs", map[string]any{"salary": "$1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	var resp struct {
		Errors []struct {
			Field string `json:"field"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	decode(t, rec, &resp)
	if len(resp.Errors) != 4 {
		t.Fatalf("expected 4 field errors, got %+v", resp.Errors)
	}
}

func multipartSubmission(t *testing.T, fields map[string]string, cvName string, cv []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if cv != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename=%q`, cvName))
		header.Set("Content-Type", "application/pdf")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(cv); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func applicationFields() map[string]string {
	return map[string]string{
		"jobId":      "1",
		"fullName":   "John Doe",
		"email":      "john@example.com",
		"university": "Tech University",
		"major":      "Computer Science",
		"year":       "3",
	}
}

func TestSubmitApplicationEndToEnd(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	body, contentType := multipartSubmission(t, applicationFields(), "resume.pdf", []byte("%PDF-1.4 resume"))
	req := httptest.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message       string `json:"message"`
		ApplicationID int64  `json:"applicationId"`
	}
	decode(t, rec, &resp)
	if resp.ApplicationID == 0 || resp.Message == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSubmitApplicationWithoutCV(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	body, contentType := multipartSubmission(t, applicationFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	decode(t, rec, &resp)
	if resp.Message != "CV file is required" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestListApplicationsFilters(t *testing.T) {
	router := newTestRouter(t, routerOptions{seedApps: true})

	rec := doJSON(t, router, http.MethodGet, "/applications?status=reviewed", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var resp struct {
		Applications []models.Application `json:"applications"`
	}
	decode(t, rec, &resp)
	if len(resp.Applications) != 1 || resp.Applications[0].FullName != "Jane Smith" {
		t.Fatalf("unexpected result: %+v", resp.Applications)
	}
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]any{
		"email":     "alice@example.com",
		"password":  "secret123",
		"firstName": "Alice",
		"lastName":  "Lee",
		"userType":  "student",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	var registered struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, rec, &registered)
	if registered.Token == "" {
		t.Fatal("no token issued")
	}

	// the token unlocks the profile endpoint
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	profileRec := httptest.NewRecorder()
	router.ServeHTTP(profileRec, req)
	if profileRec.Code != http.StatusOK {
		t.Fatalf("profile returned %d: %s", profileRec.Code, profileRec.Body.String())
	}
	if !strings.Contains(profileRec.Body.String(), "alice@example.com") {
		t.Fatalf("profile body %q", profileRec.Body.String())
	}

	// without a token the profile is rejected
	req = httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	anonRec := httptest.NewRecorder()
	router.ServeHTTP(anonRec, req)
	if anonRec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous profile returned %d", anonRec.Code)
	}

	// registering the same email again fails
	rec = doJSON(t, router, http.MethodPost, "/auth/register", map[string]any{
		"email":     "alice@example.com",
		"password":  "secret123",
		"firstName": "Alice",
		"lastName":  "Lee",
		"userType":  "student",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register returned %d", rec.Code)
	}
}

func TestAnalyticsDashboard(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	rec := doJSON(t, router, http.MethodGet, "/analytics/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var resp struct {
		TotalUsers        int `json:"totalUsers"`
		ApplicationTrends []struct {
			Month string `json:"month"`
		} `json:"applicationTrends"`
	}
	decode(t, rec, &resp)
	if resp.TotalUsers != 1234 || len(resp.ApplicationTrends) != 6 {
		t.Fatalf("unexpected dashboard payload: %+v", resp)
	}
}

func TestAnalyticsJobStats(t *testing.T) {
	router := newTestRouter(t, routerOptions{})

	rec := doJSON(t, router, http.MethodGet, "/analytics/job-stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var resp struct {
		TotalJobs      int `json:"totalJobs"`
		InternshipJobs int `json:"internshipJobs"`
	}
	decode(t, rec, &resp)
	if resp.TotalJobs != 89 || resp.InternshipJobs != 53 {
		t.Fatalf("unexpected job stats payload: %+v", resp)
	}
}
