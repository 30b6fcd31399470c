package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
)

// DiskStore writes uploads under baseDir/<purpose>/<uuid>.<ext>. Generated
// names mean concurrent uploads never collide.
type DiskStore struct {
	baseDir string
	maxSize int64
	allowed map[string]bool
}

func NewDiskStore(baseDir string, maxSize int64, extCSV string) *DiskStore {
	allowed := make(map[string]bool)
	for _, e := range strings.Split(extCSV, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = true
		}
	}
	return &DiskStore{baseDir: baseDir, maxSize: maxSize, allowed: allowed}
}

// Ext returns the lowercased extension of a declared filename, without the
// dot, or "" if there is none.
func Ext(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

func (s *DiskStore) check(filename string, size int64) error {
	ext := Ext(filename)
	if ext == "" {
		return apperr.ValidationField("file", "invalid filename")
	}
	if !s.allowed[ext] {
		return apperr.ValidationField("file", fmt.Sprintf("file type .%s not allowed", ext))
	}
	if size > s.maxSize {
		return apperr.ValidationField("file",
			fmt.Sprintf("file exceeds maximum size of %.1fMB", float64(s.maxSize)/(1024*1024)))
	}
	return nil
}

func (s *DiskStore) Save(purpose, filename string, b []byte) (string, error) {
	if err := s.check(filename, int64(len(b))); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, purpose)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), Ext(filename))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *DiskStore) SaveAs(purpose, name string, b []byte) (string, error) {
	if err := s.check(name, int64(len(b))); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, purpose)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Path reports where a fixed-name file would live, whether or not it
// exists yet.
func (s *DiskStore) Path(purpose, name string) string {
	return filepath.Join(s.baseDir, purpose, name)
}

func (s *DiskStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("file not found on server")
		}
		return nil, err
	}
	return f, nil
}

func (s *DiskStore) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
