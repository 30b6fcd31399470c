package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type SynopsisRepository interface {
	CreateSynopsis(synopsis *domain.Synopsis) (*domain.Synopsis, error)
	FindSynopsisByID(synopsisID string) (*domain.Synopsis, error)
	ListSynopsesByUser(userID string) ([]domain.Synopsis, error)
	ListSynopses(limit, offset int) ([]domain.Synopsis, error)
	ListSynopsesByStatus(status domain.SynopsisStatus, limit, offset int) ([]domain.Synopsis, error)
	SaveSynopsisVersioned(synopsis *domain.Synopsis) error
	CountSynopsesByStatus(status domain.SynopsisStatus) (int64, error)
}

type synopsisRepository struct {
	db *gorm.DB
}

func NewSynopsisRepository(db *gorm.DB) SynopsisRepository {
	return &synopsisRepository{db: db}
}

func (r *synopsisRepository) CreateSynopsis(synopsis *domain.Synopsis) (*domain.Synopsis, error) {
	if synopsis == nil {
		return nil, errors.New("nil synopsis")
	}
	if err := r.db.Create(synopsis).Error; err != nil {
		log.Printf("create synopsis error: %v", err)
		return nil, err
	}
	return synopsis, nil
}

func (r *synopsisRepository) FindSynopsisByID(synopsisID string) (*domain.Synopsis, error) {
	synopsis := &domain.Synopsis{}
	if err := r.db.First(synopsis, "id = ?", synopsisID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("synopsis not found")
		}
		return nil, err
	}
	return synopsis, nil
}

func (r *synopsisRepository) ListSynopsesByUser(userID string) ([]domain.Synopsis, error) {
	var synopses []domain.Synopsis
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&synopses).Error
	if err != nil {
		return nil, err
	}
	return synopses, nil
}

func (r *synopsisRepository) ListSynopses(limit, offset int) ([]domain.Synopsis, error) {
	var synopses []domain.Synopsis
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&synopses).Error
	if err != nil {
		return nil, err
	}
	return synopses, nil
}

func (r *synopsisRepository) ListSynopsesByStatus(status domain.SynopsisStatus, limit, offset int) ([]domain.Synopsis, error) {
	var synopses []domain.Synopsis
	err := r.db.Where("status = ?", status).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&synopses).Error
	if err != nil {
		return nil, err
	}
	return synopses, nil
}

func (r *synopsisRepository) SaveSynopsisVersioned(synopsis *domain.Synopsis) error {
	if synopsis == nil {
		return errors.New("nil synopsis")
	}
	readVersion := synopsis.Version
	synopsis.Version = readVersion + 1

	res := r.db.Model(&domain.Synopsis{}).
		Where("id = ? AND version = ?", synopsis.ID, readVersion).
		Select("*").Omit("id", "created_at").
		Updates(synopsis)
	if res.Error != nil {
		synopsis.Version = readVersion
		log.Printf("save synopsis error: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		synopsis.Version = readVersion
		return apperr.Conflict("synopsis was modified by someone else, reload and retry")
	}
	return nil
}

func (r *synopsisRepository) CountSynopsesByStatus(status domain.SynopsisStatus) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Synopsis{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
