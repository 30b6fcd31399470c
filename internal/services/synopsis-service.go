package services

import (
	"io"
	"log"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/interfaces"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"github.com/tyforge/launchpad-backend/pkg/storage"
)

const synopsisPurpose = "synopses"

type SynopsisService struct {
	Repo        repository.SynopsisRepository
	UserRepo    repository.UserRepository
	ProjectRepo repository.ProjectRepository
	Files       interfaces.FileStore
}

func NewSynopsisService(repo repository.SynopsisRepository, userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository, files interfaces.FileStore) SynopsisService {
	return SynopsisService{Repo: repo, UserRepo: userRepo, ProjectRepo: projectRepo, Files: files}
}

// Upload stores a PDF synopsis as a fresh review row; repeated uploads
// stack up as independent submissions, none supersedes another. The first
// upload moves the student's onboarding forward. If the student already
// has a project the row carries its id as a weak back-reference.
func (s SynopsisService) Upload(userID, filename string, data []byte) (*domain.Synopsis, error) {
	if storage.Ext(filename) != "pdf" {
		return nil, apperr.ValidationField("file", "synopsis must be a PDF document")
	}

	user, err := s.UserRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	path, err := s.Files.Save(synopsisPurpose, filename, data)
	if err != nil {
		return nil, err
	}

	synopsis := &domain.Synopsis{
		UserID:       userID,
		FilePath:     path,
		OriginalName: filename,
		FileSize:     int64(len(data)),
		Status:       domain.SynopsisPending,
	}

	if project, err := s.ProjectRepo.LatestProjectByUser(userID); err == nil {
		pid := project.ID
		synopsis.ProjectID = &pid

		project.SynopsisSubmitted = true
		project.SynopsisFilePath = &path
		original := filename
		project.SynopsisOriginalName = &original
		if project.Status == domain.ProjectSynopsisPending {
			project.Status = domain.ProjectInProgress
		}
		if err := s.ProjectRepo.SaveProjectVersioned(project); err != nil {
			log.Printf("project synopsis link skipped: %v", err)
		}
	}

	synopsis, err = s.Repo.CreateSynopsis(synopsis)
	if err != nil {
		return nil, err
	}

	if !user.HasSynopsis {
		user.HasSynopsis = true
		if user.SignupStep == domain.StepSynopsis {
			user.SignupStep = domain.StepIdeaGeneration
		}
		if err := s.UserRepo.SaveUser(user); err != nil {
			log.Printf("user synopsis flag update failed: %v", err)
		}
	}

	return synopsis, nil
}

func (s SynopsisService) ListMine(userID string) ([]domain.Synopsis, error) {
	return s.Repo.ListSynopsesByUser(userID)
}

// GetMine fetches one synopsis for its owner. Someone else's synopsis id
// reads as not found.
func (s SynopsisService) GetMine(synopsisID, userID string) (*domain.Synopsis, error) {
	synopsis, err := s.Repo.FindSynopsisByID(synopsisID)
	if err != nil {
		return nil, err
	}
	if synopsis.UserID != userID {
		return nil, apperr.NotFound("synopsis not found")
	}
	return synopsis, nil
}

// AdminList returns all synopses, or only those in a given status when the
// filter is set.
func (s SynopsisService) AdminList(statusFilter string, limit, offset int) ([]domain.Synopsis, error) {
	limit = utils.ClampLimit(limit, 50, 200)
	if statusFilter == "" {
		return s.Repo.ListSynopses(limit, offset)
	}
	status, err := domain.ParseSynopsisStatus(statusFilter)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListSynopsesByStatus(status, limit, offset)
}

// Review applies the admin's decision, guarded by the version the admin
// read.
func (s SynopsisService) Review(synopsisID string, input dto.SynopsisReviewRequest) (*domain.Synopsis, error) {
	synopsis, err := s.Repo.FindSynopsisByID(synopsisID)
	if err != nil {
		return nil, err
	}
	if input.Version != synopsis.Version {
		return nil, apperr.Conflict("synopsis was modified by someone else, reload and retry")
	}

	if input.Status != nil {
		status, err := domain.ParseSynopsisStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		synopsis.Status = status
	}
	if input.AdminNotes != nil {
		synopsis.AdminNotes = *input.AdminNotes
	}

	if err := s.Repo.SaveSynopsisVersioned(synopsis); err != nil {
		return nil, err
	}
	return synopsis, nil
}

// Download streams the stored file to the owner, or to an admin.
func (s SynopsisService) Download(synopsisID string, claims dto.AuthClaims) (io.ReadCloser, string, error) {
	synopsis, err := s.Repo.FindSynopsisByID(synopsisID)
	if err != nil {
		return nil, "", err
	}
	if synopsis.UserID != claims.UserID && !claims.IsAdmin {
		return nil, "", apperr.NotFound("synopsis not found")
	}

	rc, err := s.Files.Open(synopsis.FilePath)
	if err != nil {
		return nil, "", err
	}
	return rc, synopsis.OriginalName, nil
}
