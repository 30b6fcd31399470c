package services

import (
	"encoding/json"
	"log"

	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/interfaces"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

// ActivityService records the audit trail. Record is best-effort: log
// failures are logged and swallowed so they never fail the request that
// produced them. When a broker is configured each entry is also mirrored
// to Kafka for downstream consumers.
type ActivityService struct {
	Repo     repository.ActivityRepository
	Producer interfaces.ProducerHandler
}

func NewActivityService(repo repository.ActivityRepository, producer interfaces.ProducerHandler) ActivityService {
	return ActivityService{Repo: repo, Producer: producer}
}

func (s ActivityService) Record(entry dto.ActivityEntry) {
	status := entry.Status
	if status == "" {
		status = "success"
	}

	var details string
	if len(entry.Details) > 0 {
		b, err := json.Marshal(entry.Details)
		if err != nil {
			log.Printf("activity details marshal error: %v", err)
		} else {
			details = string(b)
		}
	}

	row := &domain.ActivityLog{
		Action:       entry.Action,
		EntityType:   entry.EntityType,
		EntityID:     entry.EntityID,
		Details:      details,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
		Status:       status,
		ErrorMessage: entry.ErrorMsg,
	}
	if entry.UserID != "" {
		uid := entry.UserID
		row.UserID = &uid
	}

	if err := s.Repo.CreateLog(row); err != nil {
		log.Printf("activity log write failed (action=%s): %v", entry.Action, err)
		return
	}

	if s.Producer != nil {
		payload, err := json.Marshal(row)
		if err == nil {
			if err := s.Producer.PublishMessage([]byte(row.Action), payload); err != nil {
				log.Printf("activity log publish failed: %v", err)
			}
		}
	}
}

func (s ActivityService) List(limit, offset int) ([]domain.ActivityLog, error) {
	return s.Repo.ListLogs(utils.ClampLimit(limit, 50, 200), offset)
}

func (s ActivityService) ListByUser(userID string, limit, offset int) ([]domain.ActivityLog, error) {
	return s.Repo.ListLogsByUser(userID, utils.ClampLimit(limit, 50, 200), offset)
}
