package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type MeetingStatus string

const (
	MeetingRequested MeetingStatus = "requested"
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

func ParseMeetingStatus(s string) (MeetingStatus, error) {
	switch MeetingStatus(s) {
	case MeetingRequested, MeetingScheduled, MeetingCompleted, MeetingCancelled:
		return MeetingStatus(s), nil
	}
	return "", apperr.ValidationField("status", "unknown meeting status")
}

type Meeting struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	MeetingDate *time.Time    `json:"meeting_date,omitempty"`
	MeetingLink string        `json:"meeting_link,omitempty"`
	Status      MeetingStatus `gorm:"type:varchar(20);not null;default:requested" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
