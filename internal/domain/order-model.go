package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderCompleted, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", apperr.ValidationField("status", "unknown order status")
}

// CanTransition reports whether an admin status update is legal.
// pending -> paid|cancelled, paid -> completed|cancelled; completed and
// cancelled are terminal. Same-status writes are allowed (idempotent).
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case OrderPending:
		return to == OrderPaid || to == OrderCancelled
	case OrderPaid:
		return to == OrderCompleted || to == OrderCancelled
	}
	return false
}

// Order is a single purchase attempt against a Plan. PlanID/PlanName/Amount
// snapshot the plan at purchase time and are never recomputed from the live
// catalog. PaymentVerifiedBy is a weak back-reference (admin user id only,
// no ownership, may dangle after the admin account is removed).
type Order struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	PlanID   string `gorm:"index" json:"plan_id"`
	PlanName string `gorm:"not null" json:"plan_name"`
	Amount   int    `gorm:"not null" json:"amount"`

	Status        OrderStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	ServiceType   string      `json:"service_type,omitempty"` // web-app, iot
	PaymentMethod string      `json:"payment_method,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Notes         string      `gorm:"type:text" json:"notes,omitempty"`

	PaymentProofPath         *string    `json:"payment_proof_path,omitempty"`
	PaymentProofOriginalName *string    `json:"payment_proof_original_name,omitempty"`
	PaymentProofUploadedAt   *time.Time `json:"payment_proof_uploaded_at,omitempty"`
	PaymentVerifiedAt        *time.Time `json:"payment_verified_at,omitempty"`
	PaymentVerifiedBy        *string    `json:"payment_verified_by,omitempty"`

	// Bumped on every conditional update; stale writers get a conflict
	// instead of silently losing the other admin's write.
	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
