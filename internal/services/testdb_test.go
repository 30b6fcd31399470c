package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Plan{},
		&domain.Order{},
		&domain.Project{},
		&domain.Synopsis{},
		&domain.Meeting{},
		&domain.AdminRequest{},
		&domain.IdeaSubmission{},
		&domain.ApprovedIdeaSubmission{},
		&domain.IdeaGenerationHistory{},
		&domain.ChatbotHistory{},
		&domain.ActivityLog{},
	))

	return db
}

func newTestAuth() helper.Auth {
	return helper.SetupAuth("test-secret", time.Hour)
}

func seedTestPlan(t *testing.T, db *gorm.DB) *domain.Plan {
	t.Helper()

	plan := &domain.Plan{
		ID:       "standard_plan",
		Name:     "Standard",
		Price:    12000,
		Features: "Idea generation,Synopsis review,Complete project",
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func seedTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test Student",
		SignupStep:   domain.StepPlanSelection,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
