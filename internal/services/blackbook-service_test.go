package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/pkg/storage"
)

func TestBlackbookUploadAndDownload(t *testing.T) {
	files := storage.NewDiskStore(t.TempDir(), 10*1024*1024, "pdf,zip,jpg,jpeg,png")
	svc := NewBlackbookService(files)

	// nothing uploaded yet
	_, _, err := svc.Download()
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Upload("handbook.docx", []byte("not a pdf"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Upload("handbook-v1.pdf", []byte("%PDF-1.4 v1"))
	require.NoError(t, err)

	rc, name, err := svc.Download()
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "BlackBook.pdf", name)

	// re-upload replaces the single fixed file
	_, err = svc.Upload("handbook-v2.pdf", []byte("%PDF-1.4 v2"))
	require.NoError(t, err)

	rc2, _, err := svc.Download()
	require.NoError(t, err)
	defer rc2.Close()
	data, err := io.ReadAll(rc2)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 v2", string(data))
}
