package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
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

func newOrderService(t *testing.T, db *gorm.DB) OrderService {
	files := storage.NewDiskStore(t.TempDir(), 10*1024*1024, "pdf,zip,jpg,jpeg,png")
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewPlanRepository(db),
		files,
	)
}

func testJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploadProofRejectsNonImage(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	plan := seedTestPlan(t, db)
	user := seedTestUser(t, db, "buyer@example.com")

	order, err := svc.Create(user.ID, dto.OrderCreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	_, err = svc.UploadPaymentProof(order.ID, user.ID, "receipt.pdf", []byte("%PDF-1.4"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUploadProofWrongOwnerReadsAsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	plan := seedTestPlan(t, db)
	owner := seedTestUser(t, db, "owner@example.com")
	other := seedTestUser(t, db, "other@example.com")

	order, err := svc.Create(owner.ID, dto.OrderCreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	_, err = svc.UploadPaymentProof(order.ID, other.ID, "proof.jpg", testJPEG(t))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestApprovePaymentWithoutProof(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	plan := seedTestPlan(t, db)
	user := seedTestUser(t, db, "noproof@example.com")
	admin := seedTestUser(t, db, "admin@example.com")

	order, err := svc.Create(user.ID, dto.OrderCreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	_, err = svc.ApprovePayment(order.ID, admin.ID)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOrderLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	plan := seedTestPlan(t, db)
	user := seedTestUser(t, db, "life@example.com")
	admin := seedTestUser(t, db, "admin2@example.com")

	order, err := svc.Create(user.ID, dto.OrderCreateRequest{PlanID: plan.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 1, order.Version)

	// proof upload stores a normalized jpeg, stamps the order and marks it paid
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	up, err := svc.UploadPaymentProof(order.ID, user.ID, "slip.png", pngBuf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "slip.png", up.OriginalName)
	assert.Equal(t, string(domain.OrderPaid), up.Status)

	paid, err := svc.GetMine(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, paid.Status)

	rc, name, err := svc.GetProof(order.ID, user.ID)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "slip.png", name)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	approved, err := svc.ApprovePayment(order.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, approved.Status)
	require.NotNil(t, approved.PaymentVerifiedBy)
	assert.Equal(t, admin.ID, *approved.PaymentVerifiedBy)
	assert.NotNil(t, approved.PaymentVerifiedAt)

	// re-approval rewrites the verifier but never regresses the status
	verifier2 := seedTestUser(t, db, "admin3@example.com")
	again, err := svc.ApprovePayment(order.ID, verifier2.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, again.Status)
	require.NotNil(t, again.PaymentVerifiedBy)
	assert.Equal(t, verifier2.ID, *again.PaymentVerifiedBy)

	// completed is terminal
	pending := string(domain.OrderPending)
	_, err = svc.AdminUpdate(order.ID, dto.OrderUpdateRequest{
		Status: &pending, Version: again.Version,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdminUpdateStaleVersionConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	plan := seedTestPlan(t, db)
	user := seedTestUser(t, db, "race@example.com")

	order, err := svc.Create(user.ID, dto.OrderCreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	notes := "first admin"
	_, err = svc.AdminUpdate(order.ID, dto.OrderUpdateRequest{Notes: &notes, Version: order.Version})
	require.NoError(t, err)

	// second admin still holds the old version
	notes2 := "second admin"
	_, err = svc.AdminUpdate(order.ID, dto.OrderUpdateRequest{Notes: &notes2, Version: order.Version})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var saved domain.Order
	require.NoError(t, db.First(&saved, "id = ?", order.ID).Error)
	assert.Equal(t, "first admin", saved.Notes)
	assert.Equal(t, 2, saved.Version)
}
