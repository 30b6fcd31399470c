package services

import (
	"io"
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

func newProjectService(t *testing.T, db *gorm.DB) ProjectService {
	files := storage.NewDiskStore(t.TempDir(), 10*1024*1024, "pdf,zip,jpg,jpeg,png")
	return NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		files,
	)
}

func completeOrder(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Order{
		UserID:   userID,
		PlanName: "Standard",
		Amount:   12000,
		Status:   domain.OrderCompleted,
	}).Error)
}

// The download gate reports the earliest unmet condition: payment, then
// the file, then approval.
func TestDownloadGatePrecedence(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "dl@example.com")

	_, _, err := svc.DownloadDeliverable(user.ID, false)
	assert.Equal(t, apperr.KindPaymentRequired, apperr.KindOf(err))

	completeOrder(t, db, user.ID)

	// paid but nothing uploaded: no project row yet
	_, _, err = svc.DownloadDeliverable(user.ID, false)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	project, err := svc.UploadDeliverable(user.ID, "final.zip", []byte("zip-bytes"))
	require.NoError(t, err)
	require.NotNil(t, project.ProjectFilePath)

	// file exists but the admin has not approved
	_, _, err = svc.DownloadDeliverable(user.ID, false)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.ShareDownloadURL(dto.ShareProjectURLRequest{
		UserID: user.ID, ProjectURL: "https://files.example.com/final.zip", Approved: true,
	})
	require.NoError(t, err)

	rc, name, err := svc.DownloadDeliverable(user.ID, false)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "final.zip", name)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(data))
}

// Admins can fetch any student's deliverable without the payment or
// approval gates; a missing file still reads as not found.
func TestAdminDownloadSkipsGates(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "nogates@example.com")

	_, _, err := svc.DownloadDeliverable(user.ID, true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.UploadDeliverable(user.ID, "final.zip", []byte("zip-bytes"))
	require.NoError(t, err)

	// no completed order, no approval: student is still blocked
	_, _, err = svc.DownloadDeliverable(user.ID, false)
	assert.Equal(t, apperr.KindPaymentRequired, apperr.KindOf(err))

	rc, name, err := svc.DownloadDeliverable(user.ID, true)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "final.zip", name)
}

func TestShareURLApprovalRequiresCompletedOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "share@example.com")

	_, err := svc.UploadDeliverable(user.ID, "final.zip", []byte("zip"))
	require.NoError(t, err)

	_, err = svc.ShareDownloadURL(dto.ShareProjectURLRequest{
		UserID: user.ID, Approved: true,
	})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// revoking never needs payment
	project, err := svc.ShareDownloadURL(dto.ShareProjectURLRequest{
		UserID: user.ID, Approved: false,
	})
	require.NoError(t, err)
	assert.False(t, project.URLApproved)
}

// Approving a download url for a student with no project yet creates the
// row instead of erroring.
func TestShareURLCreatesProjectWhenMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "noproject@example.com")
	completeOrder(t, db, user.ID)

	project, err := svc.ShareDownloadURL(dto.ShareProjectURLRequest{
		UserID: user.ID, ProjectURL: "https://files.example.com/final.zip", Approved: true,
	})
	require.NoError(t, err)
	assert.True(t, project.URLApproved)
	assert.Equal(t, domain.ProjectCompleted, project.Status)
	require.NotNil(t, project.ProjectURL)
	assert.Contains(t, project.Title, "Test Student")
}

func TestUploadDeliverableCreatesPlaceholderProject(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "fresh@example.com")

	project, err := svc.UploadDeliverable(user.ID, "final.zip", []byte("v1"))
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, project.Status)
	assert.Contains(t, project.Title, "Test Student")

	// re-upload replaces the file on the same project
	again, err := svc.UploadDeliverable(user.ID, "final.zip", []byte("v2"))
	require.NoError(t, err)
	assert.Equal(t, project.ID, again.ID)
	assert.Equal(t, domain.ProjectCompleted, again.Status)

	var n int64
	require.NoError(t, db.Model(&domain.Project{}).Where("user_id = ?", user.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAdminUpdateProjectVersioned(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(t, db)
	user := seedTestUser(t, db, "ver@example.com")
	completeOrder(t, db, user.ID)

	project, err := svc.Create(user.ID, dto.ProjectCreateRequest{Title: "Smart Irrigation"})
	require.NoError(t, err)

	notes := "looks good"
	updated, err := svc.AdminUpdate(project.ID, dto.AdminProjectUpdateRequest{
		AdminNotes: &notes, Version: project.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, "looks good", updated.AdminNotes)

	stale := "stale write"
	_, err = svc.AdminUpdate(project.ID, dto.AdminProjectUpdateRequest{
		AdminNotes: &stale, Version: project.Version,
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
