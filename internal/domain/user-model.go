package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"gorm.io/gorm"
)

type SignupStep string

const (
	StepBasicInfo      SignupStep = "basic_info"
	StepPlanSelection  SignupStep = "plan_selection"
	StepSynopsis       SignupStep = "synopsis"
	StepIdeaGeneration SignupStep = "idea_generation"
	StepCompleted      SignupStep = "completed"
)

func ParseSignupStep(s string) (SignupStep, error) {
	switch SignupStep(s) {
	case StepBasicInfo, StepPlanSelection, StepSynopsis, StepIdeaGeneration, StepCompleted:
		return SignupStep(s), nil
	}
	return "", apperr.ValidationField("signup_step", "unknown signup step")
}

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Name         string `gorm:"not null" json:"name"`
	Phone        string `gorm:"default:''" json:"phone"`
	IsAdmin      bool   `gorm:"default:false;index" json:"is_admin"`

	// Onboarding workflow
	SignupStep          SignupStep `gorm:"type:varchar(20);not null;default:basic_info" json:"signup_step"`
	SelectedPlanID      *string    `json:"selected_plan_id,omitempty"`
	HasSynopsis         bool       `gorm:"default:false" json:"has_synopsis"`
	NeedsIdeaGeneration bool       `gorm:"default:false" json:"needs_idea_generation"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboarding_completed"`

	// Owned rows, removed with the user
	Orders        []Order        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"-"`
	Projects      []Project      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"-"`
	Synopses      []Synopsis     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"-"`
	Meetings      []Meeting      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"-"`
	AdminRequests []AdminRequest `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
