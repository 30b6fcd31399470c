package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/domain"
	"gorm.io/gorm"
)

type IdeaRepository interface {
	CreateSubmission(sub *domain.IdeaSubmission) (*domain.IdeaSubmission, error)
	CountSubmissionsByUser(userID string) (int64, error)
	CountSubmissionsByPhone(phone string) (int64, error)
	ListSubmissions(limit, offset int) ([]domain.IdeaSubmission, error)

	CreateApprovedSubmission(sub *domain.ApprovedIdeaSubmission) (*domain.ApprovedIdeaSubmission, error)
	ListApprovedSubmissions(limit, offset int) ([]domain.ApprovedIdeaSubmission, error)

	CreateGenerationHistory(h *domain.IdeaGenerationHistory) error
	ListGenerationHistoryByUser(userID string, limit int) ([]domain.IdeaGenerationHistory, error)

	CreateChatbotHistory(h *domain.ChatbotHistory) error
	ListChatbotHistoryBySession(userID, sessionID string, limit int) ([]domain.ChatbotHistory, error)
}

type ideaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) CreateSubmission(sub *domain.IdeaSubmission) (*domain.IdeaSubmission, error) {
	if sub == nil {
		return nil, errors.New("nil submission")
	}
	if err := r.db.Create(sub).Error; err != nil {
		log.Printf("create idea submission error: %v", err)
		return nil, err
	}
	return sub, nil
}

func (r *ideaRepository) CountSubmissionsByUser(userID string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.IdeaSubmission{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *ideaRepository) CountSubmissionsByPhone(phone string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.IdeaSubmission{}).Where("phone = ?", phone).Count(&n).Error
	return n, err
}

func (r *ideaRepository) ListSubmissions(limit, offset int) ([]domain.IdeaSubmission, error) {
	var subs []domain.IdeaSubmission
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *ideaRepository) CreateApprovedSubmission(sub *domain.ApprovedIdeaSubmission) (*domain.ApprovedIdeaSubmission, error) {
	if sub == nil {
		return nil, errors.New("nil submission")
	}
	if err := r.db.Create(sub).Error; err != nil {
		log.Printf("create approved idea submission error: %v", err)
		return nil, err
	}
	return sub, nil
}

func (r *ideaRepository) ListApprovedSubmissions(limit, offset int) ([]domain.ApprovedIdeaSubmission, error) {
	var subs []domain.ApprovedIdeaSubmission
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *ideaRepository) CreateGenerationHistory(h *domain.IdeaGenerationHistory) error {
	if h == nil {
		return errors.New("nil history")
	}
	return r.db.Create(h).Error
}

func (r *ideaRepository) ListGenerationHistoryByUser(userID string, limit int) ([]domain.IdeaGenerationHistory, error) {
	var history []domain.IdeaGenerationHistory
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *ideaRepository) CreateChatbotHistory(h *domain.ChatbotHistory) error {
	if h == nil {
		return errors.New("nil history")
	}
	return r.db.Create(h).Error
}

// ListChatbotHistoryBySession returns the session's exchanges oldest first so
// they can be replayed straight into the model context.
func (r *ideaRepository) ListChatbotHistoryBySession(userID, sessionID string, limit int) ([]domain.ChatbotHistory, error) {
	var history []domain.ChatbotHistory
	err := r.db.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
