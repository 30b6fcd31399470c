package storage

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
)

func TestSaveAndOpen(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 1024, "pdf,zip")

	path, err := s.Save("synopses", "My Synopsis.PDF", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	assert.Equal(t, "synopses", filepath.Base(filepath.Dir(path)))
	assert.True(t, s.Exists(path))

	rc, err := s.Open(path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	// generated names never collide across uploads of the same filename
	path2, err := s.Save("synopses", "My Synopsis.PDF", []byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, path, path2)
}

func TestSaveAsOverwrites(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 1024, "zip")

	path1, err := s.SaveAs("deliverables", "proj-1.zip", []byte("v1"))
	require.NoError(t, err)
	path2, err := s.SaveAs("deliverables", "proj-1.zip", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, path1, path2)

	rc, err := s.Open(path2)
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "v2", string(data))

	// Path points at the same fixed location SaveAs wrote to
	assert.Equal(t, path2, s.Path("deliverables", "proj-1.zip"))
}

func TestSaveRejections(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 4, "pdf")

	_, err := s.Save("x", "noext", []byte("a"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.Save("x", "evil.exe", []byte("a"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.Save("x", "big.pdf", []byte("12345"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOpenMissing(t *testing.T) {
	s := NewDiskStore(t.TempDir(), 1024, "pdf")

	_, err := s.Open(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.False(t, s.Exists(""))
}

func TestExt(t *testing.T) {
	assert.Equal(t, "pdf", Ext("a.PDF"))
	assert.Equal(t, "jpg", Ext("photo.final.jpg"))
	assert.Equal(t, "", Ext("noext"))
}
