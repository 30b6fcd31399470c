package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestResolved   RequestStatus = "resolved"
	RequestClosed     RequestStatus = "closed"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case RequestPending, RequestInProgress, RequestResolved, RequestClosed:
		return RequestStatus(s), nil
	}
	return "", apperr.ValidationField("status", "unknown request status")
}

// AdminRequest is a support ticket. AdminID is a weak back-reference to the
// responding admin (id only, may dangle).
type AdminRequest struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	RequestType string        `gorm:"not null" json:"request_type"` // help, bug, feature, general
	Subject     string        `gorm:"not null" json:"subject"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	AdminResponse string  `gorm:"type:text" json:"admin_response,omitempty"`
	AdminID       *string `json:"admin_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *AdminRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
