package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type SynopsisStatus string

const (
	SynopsisPending  SynopsisStatus = "Pending"
	SynopsisApproved SynopsisStatus = "Approved"
	SynopsisRejected SynopsisStatus = "Rejected"
)

func ParseSynopsisStatus(s string) (SynopsisStatus, error) {
	switch SynopsisStatus(s) {
	case SynopsisPending, SynopsisApproved, SynopsisRejected:
		return SynopsisStatus(s), nil
	}
	return "", apperr.ValidationField("status", "unknown synopsis status")
}

// Synopsis is one submitted review document. Repeated uploads produce
// independent rows; there is no "latest wins" supersession. ProjectID is a
// weak back-reference: id only, no ownership, may dangle — lookups that
// miss are simply ignored.
type Synopsis struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	UserID    string  `gorm:"not null;index" json:"user_id"`
	ProjectID *string `json:"project_id,omitempty"`

	FilePath     string `gorm:"not null" json:"file_path"`
	OriginalName string `gorm:"not null" json:"original_name"`
	FileSize     int64  `json:"file_size"`

	Status     SynopsisStatus `gorm:"type:varchar(20);not null;default:Pending;index" json:"status"`
	AdminNotes string         `gorm:"type:text" json:"admin_notes,omitempty"`

	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Synopsis) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
