package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"gorm.io/gorm"
)

func newAdminService(db *gorm.DB) AdminService {
	return NewAdminService(
		repository.NewAdminRequestRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProjectRepository(db),
		repository.NewSynopsisRepository(db),
	)
}

func TestSupportRequestFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	user := seedTestUser(t, db, "help@example.com")
	admin := seedTestUser(t, db, "ops@example.com")

	_, err := svc.CreateRequest(user.ID, dto.AdminRequestCreate{Subject: "stuck"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	req, err := svc.CreateRequest(user.ID, dto.AdminRequestCreate{
		RequestType: "help", Subject: "stuck on synopsis", Description: "upload keeps failing",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, req.Status)

	response := "fixed, try again"
	resolved := string(domain.RequestResolved)
	updated, err := svc.UpdateRequest(req.ID, admin.ID, dto.AdminRequestUpdate{
		Status: &resolved, AdminResponse: &response,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestResolved, updated.Status)
	require.NotNil(t, updated.AdminID)
	assert.Equal(t, admin.ID, *updated.AdminID)

	mine, err := svc.ListMyRequests(user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	user := seedTestUser(t, db, "stats@example.com")

	require.NoError(t, db.Create(&domain.Order{
		UserID: user.ID, PlanName: "Standard", Amount: 12000, Status: domain.OrderCompleted,
	}).Error)
	require.NoError(t, db.Create(&domain.Order{
		UserID: user.ID, PlanName: "Basic", Amount: 5000, Status: domain.OrderPending,
	}).Error)
	require.NoError(t, db.Create(&domain.Synopsis{
		UserID: user.ID, FilePath: "x", OriginalName: "x.pdf", Status: domain.SynopsisPending,
	}).Error)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.PendingOrders)
	assert.EqualValues(t, 1, stats.PendingSynopsis)
	assert.EqualValues(t, 12000, stats.Revenue)
}

func TestUserOverview(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService(db)
	user := seedTestUser(t, db, "ov@example.com")

	require.NoError(t, db.Create(&domain.Order{
		UserID: user.ID, PlanName: "Premium", Amount: 25000, Status: domain.OrderPaid,
	}).Error)

	rows, err := svc.UserOverview(10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "paid", rows[0].LatestOrderStatus)
	assert.Equal(t, "Premium", rows[0].LatestOrderPlan)
	assert.False(t, rows[0].DeliverableReady)
}
