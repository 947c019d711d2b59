package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["cv"][0]
}

var storedNamePattern = regexp.MustCompile(`^cv-\d+-\d{9}\.pdf$`)

func TestDiskStorageNamingConvention(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	if err != nil {
		t.Fatalf("new disk storage: %v", err)
	}

	content := []byte("%PDF-1.4 resume")
	name, err := s.Save(fileHeader(t, "My Résumé (final).pdf", "application/pdf", content))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !storedNamePattern.MatchString(name) {
		t.Fatalf("stored name %q does not match cv-<epoch-ms>-<random-9-digit>.pdf", name)
	}

	written, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Fatal("stored content differs from the upload")
	}
}

func TestDiskStorageConcurrentSavesNeverCollide(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir)
	if err != nil {
		t.Fatalf("new disk storage: %v", err)
	}

	const n = 32
	headers := make([]*multipart.FileHeader, n)
	for i := range headers {
		headers[i] = fileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	}

	names := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name, err := s.Save(headers[i])
			if err != nil {
				t.Errorf("save %d failed: %v", i, err)
				return
			}
			names[i] = name
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Fatalf("filename collision: %q", name)
		}
		seen[name] = true
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != n {
		t.Fatalf("stored %d files, want %d", len(entries), n)
	}
}
