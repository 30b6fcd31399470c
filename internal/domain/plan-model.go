package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is immutable catalog data, seeded once at boot. Orders snapshot the
// name and price at purchase time, so later catalog edits never reprice
// past purchases.
type Plan struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Price        int    `gorm:"not null" json:"price"` // smallest currency unit
	Features     string `gorm:"type:text;not null" json:"features"`
	BlogIncluded bool   `gorm:"default:false" json:"blog_included"`
	MaxProjects  int    `gorm:"default:1" json:"max_projects"` // -1 = unlimited
	SupportLevel string `gorm:"default:Basic" json:"support_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
