package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type MeetingRepository interface {
	CreateMeeting(meeting *domain.Meeting) (*domain.Meeting, error)
	FindMeetingByID(meetingID string) (*domain.Meeting, error)
	ListMeetingsByUser(userID string) ([]domain.Meeting, error)
	ListMeetings(limit, offset int) ([]domain.Meeting, error)
	SaveMeeting(meeting *domain.Meeting) error
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) CreateMeeting(meeting *domain.Meeting) (*domain.Meeting, error) {
	if meeting == nil {
		return nil, errors.New("nil meeting")
	}
	if err := r.db.Create(meeting).Error; err != nil {
		log.Printf("create meeting error: %v", err)
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepository) FindMeetingByID(meetingID string) (*domain.Meeting, error) {
	meeting := &domain.Meeting{}
	if err := r.db.First(meeting, "id = ?", meetingID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("meeting not found")
		}
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepository) ListMeetingsByUser(userID string) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) ListMeetings(limit, offset int) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) SaveMeeting(meeting *domain.Meeting) error {
	if meeting == nil {
		return errors.New("nil meeting")
	}
	if err := r.db.Save(meeting).Error; err != nil {
		log.Printf("save meeting error: %v", err)
		return err
	}
	return nil
}
