package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type recordingProducer struct {
	keys []string
}

func (p *recordingProducer) PublishMessage(key, _ []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

func TestRecordWritesRowAndPublishes(t *testing.T) {
	db := newTestDB(t)
	producer := &recordingProducer{}
	svc := NewActivityService(repository.NewActivityRepository(db), producer)
	user := seedTestUser(t, db, "act@example.com")

	svc.Record(dto.ActivityEntry{
		UserID:     user.ID,
		Action:     "approve_payment",
		EntityType: "order",
		EntityID:   "order-1",
		Details:    map[string]any{"amount": 12000},
		IPAddress:  "10.0.0.1",
	})

	var row domain.ActivityLog
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "approve_payment", row.Action)
	assert.Equal(t, "success", row.Status)
	assert.Contains(t, row.Details, "12000")
	require.NotNil(t, row.UserID)
	assert.Equal(t, user.ID, *row.UserID)

	assert.Equal(t, []string{"approve_payment"}, producer.keys)
}

func TestRecordAnonymousAndListing(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(repository.NewActivityRepository(db), nil)

	svc.Record(dto.ActivityEntry{Action: "generate_idea"})
	svc.Record(dto.ActivityEntry{Action: "generate_idea", Status: "failed", ErrorMsg: "quota"})

	logs, err := svc.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	for _, l := range logs {
		assert.Nil(t, l.UserID)
	}
}
