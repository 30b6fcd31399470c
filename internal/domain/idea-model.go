package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdeaSubmission is an append-only record of one accepted idea generation.
// UserID is set for authenticated users; guests are tracked by phone.
// GenerationCount is the submitter's running total at the time of the row.
type IdeaSubmission struct {
	ID     string  `gorm:"primaryKey;size:36" json:"id"`
	UserID *string `gorm:"index" json:"user_id,omitempty"`
	Name   string  `gorm:"not null" json:"name"`
	Phone  string  `gorm:"not null;index" json:"phone"`

	Interests     string `gorm:"type:text;not null" json:"interests"`
	GeneratedIdea string `gorm:"type:text;not null" json:"generated_idea"`

	GenerationCount int `gorm:"default:1" json:"generation_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (s *IdeaSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ApprovedIdeaSubmission is a public submission from someone who already
// has their own project idea; no login required. Visible to admins only.
type ApprovedIdeaSubmission struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Phone        string `gorm:"not null;index" json:"phone"`
	ApprovedIdea string `gorm:"type:text;not null" json:"approved_idea"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (s *ApprovedIdeaSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IdeaGenerationHistory keeps one row per successful generation for an
// authenticated user. ProjectID is a weak back-reference set when the idea
// later becomes a real project.
type IdeaGenerationHistory struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	Prompt          string  `gorm:"type:text" json:"prompt"`
	GeneratedIdea   string  `gorm:"type:text;not null" json:"generated_idea"`
	GenerationModel string  `json:"generation_model,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (h *IdeaGenerationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// ChatbotHistory stores one chat exchange. SessionID groups the messages
// of a conversation.
type ChatbotHistory struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	UserID    string `gorm:"not null;index" json:"user_id"`
	SessionID string `gorm:"index" json:"session_id"`

	Message  string `gorm:"type:text;not null" json:"message"`
	Response string `gorm:"type:text" json:"response,omitempty"`

	Intent         string  `json:"intent,omitempty"`
	ResponseTimeMs int     `json:"response_time_ms,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (h *ChatbotHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
