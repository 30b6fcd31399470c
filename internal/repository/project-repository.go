package repository

import (
	"errors"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	CreateProject(project *domain.Project) (*domain.Project, error)
	FindProjectByID(projectID string) (*domain.Project, error)
	FindProjectForUser(projectID, userID string) (*domain.Project, error)
	ListProjectsByUser(userID string) ([]domain.Project, error)
	ListProjects(limit, offset int) ([]domain.Project, error)
	SaveProjectVersioned(project *domain.Project) error
	LatestProjectByUser(userID string) (*domain.Project, error)
	CountProjectsByStatus(status domain.ProjectStatus) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) CreateProject(project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, errors.New("nil project")
	}
	if err := r.db.Create(project).Error; err != nil {
		log.Printf("create project error: %v", err)
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) FindProjectByID(projectID string) (*domain.Project, error) {
	project := &domain.Project{}
	if err := r.db.First(project, "id = ?", projectID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) FindProjectForUser(projectID, userID string) (*domain.Project, error) {
	project := &domain.Project{}
	err := r.db.First(project, "id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) ListProjectsByUser(userID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListProjects(limit, offset int) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SaveProjectVersioned guards the write with the version the caller read;
// a zero rows-affected result means a concurrent writer won.
func (r *projectRepository) SaveProjectVersioned(project *domain.Project) error {
	if project == nil {
		return errors.New("nil project")
	}
	readVersion := project.Version
	project.Version = readVersion + 1

	res := r.db.Model(&domain.Project{}).
		Where("id = ? AND version = ?", project.ID, readVersion).
		Select("*").Omit("id", "created_at").
		Updates(project)
	if res.Error != nil {
		project.Version = readVersion
		log.Printf("save project error: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		project.Version = readVersion
		return apperr.Conflict("project was modified by someone else, reload and retry")
	}
	return nil
}

func (r *projectRepository) LatestProjectByUser(userID string) (*domain.Project, error) {
	project := &domain.Project{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(project).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) CountProjectsByStatus(status domain.ProjectStatus) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Project{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
