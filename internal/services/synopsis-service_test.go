package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"github.com/tyforge/launchpad-backend/pkg/storage"
	"gorm.io/gorm"
)

func newSynopsisService(t *testing.T, db *gorm.DB) SynopsisService {
	files := storage.NewDiskStore(t.TempDir(), 10*1024*1024, "pdf,zip,jpg,jpeg,png")
	return NewSynopsisService(
		repository.NewSynopsisRepository(db),
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		files,
	)
}

func TestSynopsisUploadRequiresPDF(t *testing.T) {
	db := newTestDB(t)
	svc := newSynopsisService(t, db)
	user := seedTestUser(t, db, "syn@example.com")

	_, err := svc.Upload(user.ID, "synopsis.docx", []byte("doc"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSynopsisUploadAdvancesOnboarding(t *testing.T) {
	db := newTestDB(t)
	svc := newSynopsisService(t, db)
	user := seedTestUser(t, db, "adv@example.com")
	user.SignupStep = domain.StepSynopsis
	require.NoError(t, db.Save(user).Error)

	first, err := svc.Upload(user.ID, "synopsis.pdf", []byte("%PDF-1.4 one"))
	require.NoError(t, err)
	assert.Equal(t, domain.SynopsisPending, first.Status)

	var refreshed domain.User
	require.NoError(t, db.First(&refreshed, "id = ?", user.ID).Error)
	assert.True(t, refreshed.HasSynopsis)
	assert.Equal(t, domain.StepIdeaGeneration, refreshed.SignupStep)

	// a second upload is an independent row, not a replacement
	second, err := svc.Upload(user.ID, "synopsis-v2.pdf", []byte("%PDF-1.4 two"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	mine, err := svc.ListMine(user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestSynopsisReview(t *testing.T) {
	db := newTestDB(t)
	svc := newSynopsisService(t, db)
	user := seedTestUser(t, db, "rev@example.com")

	synopsis, err := svc.Upload(user.ID, "synopsis.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	approved := string(domain.SynopsisApproved)
	notes := "solid scope"
	reviewed, err := svc.Review(synopsis.ID, dto.SynopsisReviewRequest{
		Status: &approved, AdminNotes: &notes, Version: synopsis.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SynopsisApproved, reviewed.Status)
	assert.Equal(t, "solid scope", reviewed.AdminNotes)

	// replaying the same version is now stale
	rejected := string(domain.SynopsisRejected)
	_, err = svc.Review(synopsis.ID, dto.SynopsisReviewRequest{
		Status: &rejected, Version: synopsis.Version,
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	bad := "Maybe"
	_, err = svc.Review(synopsis.ID, dto.SynopsisReviewRequest{
		Status: &bad, Version: reviewed.Version,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSynopsisDownloadScope(t *testing.T) {
	db := newTestDB(t)
	svc := newSynopsisService(t, db)
	owner := seedTestUser(t, db, "own@example.com")
	stranger := seedTestUser(t, db, "str@example.com")

	synopsis, err := svc.Upload(owner.ID, "synopsis.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	_, _, err = svc.Download(synopsis.ID, dto.AuthClaims{UserID: stranger.ID})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	rc, name, err := svc.Download(synopsis.ID, dto.AuthClaims{UserID: stranger.ID, IsAdmin: true})
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "synopsis.pdf", name)
}

func TestSynopsisGetMineScope(t *testing.T) {
	db := newTestDB(t)
	svc := newSynopsisService(t, db)
	owner := seedTestUser(t, db, "mine@example.com")
	stranger := seedTestUser(t, db, "else@example.com")

	synopsis, err := svc.Upload(owner.ID, "synopsis.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	got, err := svc.GetMine(synopsis.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, synopsis.ID, got.ID)

	_, err = svc.GetMine(synopsis.ID, stranger.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
