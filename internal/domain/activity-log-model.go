package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only audit trail. Writes are best-effort: a
// failed log write is itself logged and never fails the request it came
// from.
type ActivityLog struct {
	ID     string  `gorm:"primaryKey;size:36" json:"id"`
	UserID *string `gorm:"index" json:"user_id,omitempty"`

	Action     string `gorm:"not null;index" json:"action"` // login, upload_synopsis, approve_payment, ...
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`

	Details string `gorm:"type:text" json:"details,omitempty"` // JSON blob

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	Status       string `gorm:"default:success" json:"status"` // success, failed
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
