package services

import (
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type MeetingService struct {
	Repo repository.MeetingRepository
}

func NewMeetingService(repo repository.MeetingRepository) MeetingService {
	return MeetingService{Repo: repo}
}

func (s MeetingService) Request(userID string, input dto.MeetingCreateRequest) (*domain.Meeting, error) {
	if input.Title == "" {
		return nil, apperr.ValidationField("title", "title is required")
	}
	return s.Repo.CreateMeeting(&domain.Meeting{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		MeetingDate: input.MeetingDate,
		Status:      domain.MeetingRequested,
	})
}

func (s MeetingService) ListMine(userID string) ([]domain.Meeting, error) {
	return s.Repo.ListMeetingsByUser(userID)
}

func (s MeetingService) AdminList(limit, offset int) ([]domain.Meeting, error) {
	return s.Repo.ListMeetings(utils.ClampLimit(limit, 50, 200), offset)
}

// AdminUpdate schedules, reschedules or closes a meeting.
func (s MeetingService) AdminUpdate(meetingID string, input dto.MeetingUpdateRequest) (*domain.Meeting, error) {
	meeting, err := s.Repo.FindMeetingByID(meetingID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		meeting.Title = *input.Title
	}
	if input.Description != nil {
		meeting.Description = *input.Description
	}
	if input.MeetingDate != nil {
		meeting.MeetingDate = input.MeetingDate
	}
	if input.MeetingLink != nil {
		meeting.MeetingLink = *input.MeetingLink
	}
	if input.Status != nil {
		status, err := domain.ParseMeetingStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		meeting.Status = status
	}

	if err := s.Repo.SaveMeeting(meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Cancel lets a student withdraw their own meeting request.
func (s MeetingService) Cancel(meetingID, userID string) (*domain.Meeting, error) {
	meeting, err := s.Repo.FindMeetingByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.UserID != userID {
		return nil, apperr.NotFound("meeting not found")
	}
	if meeting.Status == domain.MeetingCompleted {
		return nil, apperr.Validation("a completed meeting cannot be cancelled")
	}

	meeting.Status = domain.MeetingCancelled
	if err := s.Repo.SaveMeeting(meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}
