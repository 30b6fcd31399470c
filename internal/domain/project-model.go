package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectIdeaPending     ProjectStatus = "idea_pending"
	ProjectSynopsisPending ProjectStatus = "synopsis_pending"
	ProjectInProgress      ProjectStatus = "in_progress"
	ProjectCompleted       ProjectStatus = "completed"
	ProjectCancelled       ProjectStatus = "cancelled"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectIdeaPending, ProjectSynopsisPending, ProjectInProgress,
		ProjectCompleted, ProjectCancelled:
		return ProjectStatus(s), nil
	}
	return "", apperr.ValidationField("status", "unknown project status")
}

// Project tracks a student's assigned work: idea generation, synopsis
// submission and the admin-controlled deliverable/download gate.
// ProjectURL and URLApproved are independent of the deliverable file
// fields; the admin sets them via the sharing endpoint.
type Project struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"index" json:"category,omitempty"` // software, hardware, iot, ml
	TechStack   string `gorm:"type:text" json:"tech_stack,omitempty"`

	Status            ProjectStatus `gorm:"type:varchar(20);not null;default:idea_pending;index" json:"status"`
	IdeaGenerated     bool          `gorm:"default:false" json:"idea_generated"`
	SynopsisSubmitted bool          `gorm:"default:false" json:"synopsis_submitted"`

	SynopsisFilePath        *string `json:"synopsis_file_path,omitempty"`
	SynopsisOriginalName    *string `json:"synopsis_original_name,omitempty"`
	ProjectFilePath         *string `json:"project_file_path,omitempty"`
	ProjectFileOriginalName *string `json:"project_file_original_name,omitempty"`

	ProjectURL  *string `json:"project_url,omitempty"`
	URLApproved bool    `gorm:"default:false" json:"url_approved"`
	AdminNotes  string  `gorm:"type:text" json:"admin_notes,omitempty"`

	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
