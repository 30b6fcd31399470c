package repository

import (
	"errors"

	"github.com/tyforge/launchpad-backend/internal/domain"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	CreateLog(entry *domain.ActivityLog) error
	ListLogs(limit, offset int) ([]domain.ActivityLog, error)
	ListLogsByUser(userID string, limit, offset int) ([]domain.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateLog(entry *domain.ActivityLog) error {
	if entry == nil {
		return errors.New("nil log entry")
	}
	return r.db.Create(entry).Error
}

func (r *activityRepository) ListLogs(limit, offset int) ([]domain.ActivityLog, error) {
	var logs []domain.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *activityRepository) ListLogsByUser(userID string, limit, offset int) ([]domain.ActivityLog, error) {
	var logs []domain.ActivityLog
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
