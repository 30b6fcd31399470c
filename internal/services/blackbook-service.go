package services

import (
	"io"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/interfaces"
	"github.com/tyforge/launchpad-backend/pkg/storage"
)

const (
	blackbookPurpose = "blackbook"
	blackbookName    = "blackbook.pdf"
)

// BlackbookService manages the shared reference handbook: a single PDF at
// a fixed path, replaced wholesale on every admin upload.
type BlackbookService struct {
	Files interfaces.FileStore
}

func NewBlackbookService(files interfaces.FileStore) BlackbookService {
	return BlackbookService{Files: files}
}

func (s BlackbookService) Upload(filename string, data []byte) (string, error) {
	if storage.Ext(filename) != "pdf" {
		return "", apperr.ValidationField("file", "blackbook must be a PDF document")
	}
	return s.Files.SaveAs(blackbookPurpose, blackbookName, data)
}

func (s BlackbookService) Download() (io.ReadCloser, string, error) {
	path := s.Files.Path(blackbookPurpose, blackbookName)
	if !s.Files.Exists(path) {
		return nil, "", apperr.NotFound("blackbook is not available")
	}
	rc, err := s.Files.Open(path)
	if err != nil {
		return nil, "", err
	}
	return rc, "BlackBook.pdf", nil
}
