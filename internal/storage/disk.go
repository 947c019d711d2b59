package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
)

// CVStorage persists a bound CV under a generated name. The original
// filename is never trusted for storage; only its extension is kept.
type CVStorage interface {
	Save(cv *multipart.FileHeader) (string, error)
}

type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.New(apperr.CodeInternal, "failed to create upload directory", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save writes the file as cv-<epoch-ms>-<random-9-digit><ext>. O_EXCL plus a
// fresh suffix on retry guarantees concurrent submissions never share a
// stored name. Nothing partially written survives a failed copy.
func (s *DiskStorage) Save(cv *multipart.FileHeader) (string, error) {
	src, err := cv.Open()
	if err != nil {
		return "", apperr.New(apperr.CodeInternal, "failed to open CV file", err)
	}
	defer src.Close()

	ext := filepath.Ext(cv.Filename)
	for attempt := 0; attempt < 5; attempt++ {
		name := fmt.Sprintf("cv-%d-%09d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
		dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", apperr.New(apperr.CodeInternal, "failed to create CV file", err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(dst.Name())
			return "", apperr.New(apperr.CodeInternal, "failed to write CV file", err)
		}
		if err := dst.Close(); err != nil {
			os.Remove(dst.Name())
			return "", apperr.New(apperr.CodeInternal, "failed to write CV file", err)
		}
		return name, nil
	}
	return "", apperr.New(apperr.CodeInternal, "failed to allocate a unique CV filename", nil)
}
