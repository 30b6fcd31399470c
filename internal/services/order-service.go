package services

import (
	"fmt"
	"io"
	"time"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/interfaces"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"github.com/tyforge/launchpad-backend/pkg/imaging"
	"github.com/tyforge/launchpad-backend/pkg/storage"
)

const (
	proofPurpose  = "payment_proofs"
	proofMaxWidth = 1600
	proofQuality  = 85
)

type OrderService struct {
	Repo     repository.OrderRepository
	PlanRepo repository.PlanRepository
	Files    interfaces.FileStore
}

func NewOrderService(repo repository.OrderRepository, planRepo repository.PlanRepository,
	files interfaces.FileStore) OrderService {
	return OrderService{Repo: repo, PlanRepo: planRepo, Files: files}
}

// Create opens a pending order against a catalog plan, snapshotting its
// name and price. Later catalog changes never touch the order.
func (s OrderService) Create(userID string, input dto.OrderCreateRequest) (*domain.Order, error) {
	if input.PlanID == "" {
		return nil, apperr.ValidationField("plan_id", "plan_id is required")
	}

	plan, err := s.PlanRepo.FindPlanByID(input.PlanID)
	if err != nil {
		return nil, err
	}

	return s.Repo.CreateOrder(&domain.Order{
		UserID:        userID,
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		Amount:        plan.Price,
		Status:        domain.OrderPending,
		ServiceType:   input.ServiceType,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	})
}

func (s OrderService) ListMine(userID string) ([]domain.Order, error) {
	return s.Repo.ListOrdersByUser(userID)
}

func (s OrderService) GetMine(orderID, userID string) (*domain.Order, error) {
	return s.Repo.FindOrderForUser(orderID, userID)
}

func (s OrderService) AdminList(limit, offset int) ([]domain.Order, error) {
	return s.Repo.ListOrders(utils.ClampLimit(limit, 50, 200), offset)
}

func (s OrderService) AdminGet(orderID string) (*domain.Order, error) {
	return s.Repo.FindOrderByID(orderID)
}

// AdminUpdate applies a partial update guarded by the version the admin
// read. A status change must be a legal transition.
func (s OrderService) AdminUpdate(orderID string, input dto.OrderUpdateRequest) (*domain.Order, error) {
	order, err := s.Repo.FindOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if input.Version != order.Version {
		return nil, apperr.Conflict("order was modified by someone else, reload and retry")
	}

	if input.Status != nil {
		next, err := domain.ParseOrderStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		if !order.Status.CanTransition(next) {
			return nil, apperr.Validation(
				fmt.Sprintf("cannot change order status from %s to %s", order.Status, next))
		}
		order.Status = next
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.TransactionID != nil {
		order.TransactionID = *input.TransactionID
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if err := s.Repo.SaveOrderVersioned(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UploadPaymentProof accepts a jpg/jpeg/png proof image for the caller's
// own order, normalizes it (EXIF rotation, width cap, JPEG re-encode) and
// stores it under a per-order name so a re-upload replaces the previous
// proof. Someone else's order id reads as not found.
func (s OrderService) UploadPaymentProof(orderID, userID, filename string, data []byte) (dto.ProofUploadResponse, error) {
	order, err := s.Repo.FindOrderForUser(orderID, userID)
	if err != nil {
		return dto.ProofUploadResponse{}, err
	}

	switch storage.Ext(filename) {
	case "jpg", "jpeg", "png":
	default:
		return dto.ProofUploadResponse{},
			apperr.ValidationField("file", "payment proof must be a jpg, jpeg or png image")
	}

	normalized, err := imaging.NormalizeToJPEG(data, proofMaxWidth, proofQuality)
	if err != nil {
		return dto.ProofUploadResponse{}, apperr.ValidationField("file", "could not process image")
	}

	path, err := s.Files.SaveAs(proofPurpose, order.ID+".jpg", normalized)
	if err != nil {
		return dto.ProofUploadResponse{}, err
	}

	now := time.Now()
	original := filename
	order.PaymentProofPath = &path
	order.PaymentProofOriginalName = &original
	order.PaymentProofUploadedAt = &now
	if order.Status.CanTransition(domain.OrderPaid) {
		order.Status = domain.OrderPaid
	}

	if err := s.Repo.SaveOrderVersioned(order); err != nil {
		return dto.ProofUploadResponse{}, err
	}

	return dto.ProofUploadResponse{
		OrderID:      order.ID,
		Status:       string(order.Status),
		OriginalName: original,
		UploadedAt:   now.Format(time.RFC3339),
	}, nil
}

func (s OrderService) GetProof(orderID, userID string) (io.ReadCloser, string, error) {
	order, err := s.Repo.FindOrderForUser(orderID, userID)
	if err != nil {
		return nil, "", err
	}
	return s.openProof(order)
}

func (s OrderService) AdminGetProof(orderID string) (io.ReadCloser, string, error) {
	order, err := s.Repo.FindOrderByID(orderID)
	if err != nil {
		return nil, "", err
	}
	return s.openProof(order)
}

func (s OrderService) openProof(order *domain.Order) (io.ReadCloser, string, error) {
	if order.PaymentProofPath == nil {
		return nil, "", apperr.NotFound("no payment proof uploaded for this order")
	}
	rc, err := s.Files.Open(*order.PaymentProofPath)
	if err != nil {
		return nil, "", err
	}
	name := order.ID + ".jpg"
	if order.PaymentProofOriginalName != nil {
		name = *order.PaymentProofOriginalName
	}
	return rc, name, nil
}

// ApprovePayment completes a paid order and records who verified it. An
// order with no uploaded proof cannot be approved. Re-approving rewrites
// the verifier and timestamp but never regresses the status.
func (s OrderService) ApprovePayment(orderID, adminID string) (*domain.Order, error) {
	order, err := s.Repo.FindOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentProofPath == nil {
		return nil, apperr.Validation("order has no payment proof to approve")
	}
	if order.Status == domain.OrderCancelled {
		return nil, apperr.Validation("cannot approve payment for a cancelled order")
	}

	now := time.Now()
	order.Status = domain.OrderCompleted
	order.PaymentVerifiedAt = &now
	order.PaymentVerifiedBy = &adminID

	if err := s.Repo.SaveOrderVersioned(order); err != nil {
		return nil, err
	}
	return order, nil
}
