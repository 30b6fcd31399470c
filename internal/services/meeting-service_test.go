package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

func TestMeetingFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(repository.NewMeetingRepository(db))
	user := seedTestUser(t, db, "meet@example.com")

	_, err := svc.Request(user.ID, dto.MeetingCreateRequest{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	meeting, err := svc.Request(user.ID, dto.MeetingCreateRequest{Title: "Synopsis doubts"})
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingRequested, meeting.Status)

	when := time.Now().Add(48 * time.Hour)
	link := "https://meet.example.com/abc"
	scheduled := string(domain.MeetingScheduled)
	updated, err := svc.AdminUpdate(meeting.ID, dto.MeetingUpdateRequest{
		MeetingDate: &when, MeetingLink: &link, Status: &scheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingScheduled, updated.Status)
	assert.Equal(t, link, updated.MeetingLink)

	cancelled, err := svc.Cancel(meeting.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingCancelled, cancelled.Status)
}

func TestMeetingCancelScope(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(repository.NewMeetingRepository(db))
	owner := seedTestUser(t, db, "mo@example.com")
	other := seedTestUser(t, db, "mx@example.com")

	meeting, err := svc.Request(owner.ID, dto.MeetingCreateRequest{Title: "Review call"})
	require.NoError(t, err)

	_, err = svc.Cancel(meeting.ID, other.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	done := string(domain.MeetingCompleted)
	_, err = svc.AdminUpdate(meeting.ID, dto.MeetingUpdateRequest{Status: &done})
	require.NoError(t, err)

	_, err = svc.Cancel(meeting.ID, owner.ID)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
