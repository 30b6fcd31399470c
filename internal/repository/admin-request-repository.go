package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type AdminRequestRepository interface {
	CreateRequest(req *domain.AdminRequest) (*domain.AdminRequest, error)
	FindRequestByID(requestID string) (*domain.AdminRequest, error)
	ListRequestsByUser(userID string) ([]domain.AdminRequest, error)
	ListRequests(limit, offset int) ([]domain.AdminRequest, error)
	SaveRequest(req *domain.AdminRequest) error
	CountRequestsByStatus(status domain.RequestStatus) (int64, error)
}

type adminRequestRepository struct {
	db *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) AdminRequestRepository {
	return &adminRequestRepository{db: db}
}

func (r *adminRequestRepository) CreateRequest(req *domain.AdminRequest) (*domain.AdminRequest, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if err := r.db.Create(req).Error; err != nil {
		log.Printf("create admin request error: %v", err)
		return nil, err
	}
	return req, nil
}

func (r *adminRequestRepository) FindRequestByID(requestID string) (*domain.AdminRequest, error) {
	req := &domain.AdminRequest{}
	if err := r.db.First(req, "id = ?", requestID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("request not found")
		}
		return nil, err
	}
	return req, nil
}

func (r *adminRequestRepository) ListRequestsByUser(userID string) ([]domain.AdminRequest, error) {
	var reqs []domain.AdminRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *adminRequestRepository) ListRequests(limit, offset int) ([]domain.AdminRequest, error) {
	var reqs []domain.AdminRequest
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *adminRequestRepository) SaveRequest(req *domain.AdminRequest) error {
	if req == nil {
		return errors.New("nil request")
	}
	if err := r.db.Save(req).Error; err != nil {
		log.Printf("save admin request error: %v", err)
		return err
	}
	return nil
}

func (r *adminRequestRepository) CountRequestsByStatus(status domain.RequestStatus) (int64, error) {
	var n int64
	err := r.db.Model(&domain.AdminRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
