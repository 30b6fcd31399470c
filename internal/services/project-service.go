package services

import (
	"io"

	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/interfaces"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"github.com/tyforge/launchpad-backend/pkg/storage"
)

const deliverablePurpose = "deliverables"

type ProjectService struct {
	Repo      repository.ProjectRepository
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Files     interfaces.FileStore
}

func NewProjectService(repo repository.ProjectRepository, userRepo repository.UserRepository,
	orderRepo repository.OrderRepository, files interfaces.FileStore) ProjectService {
	return ProjectService{Repo: repo, UserRepo: userRepo, OrderRepo: orderRepo, Files: files}
}

func (s ProjectService) Create(userID string, input dto.ProjectCreateRequest) (*domain.Project, error) {
	if input.Title == "" {
		return nil, apperr.ValidationField("title", "title is required")
	}
	return s.Repo.CreateProject(&domain.Project{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TechStack:   input.TechStack,
		Status:      domain.ProjectIdeaPending,
	})
}

func (s ProjectService) ListMine(userID string) ([]domain.Project, error) {
	return s.Repo.ListProjectsByUser(userID)
}

func (s ProjectService) GetMine(projectID, userID string) (*domain.Project, error) {
	return s.Repo.FindProjectForUser(projectID, userID)
}

// Update is the student's own partial update; the admin-controlled fields
// (url, approval, notes) are not reachable from here.
func (s ProjectService) Update(projectID, userID string, input dto.ProjectUpdateRequest) (*domain.Project, error) {
	project, err := s.Repo.FindProjectForUser(projectID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperr.ValidationField("title", "title cannot be empty")
		}
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.TechStack != nil {
		project.TechStack = *input.TechStack
	}
	if input.Status != nil {
		status, err := domain.ParseProjectStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		project.Status = status
	}

	if err := s.Repo.SaveProjectVersioned(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s ProjectService) AdminList(limit, offset int) ([]domain.Project, error) {
	return s.Repo.ListProjects(utils.ClampLimit(limit, 50, 200), offset)
}

func (s ProjectService) AdminGet(projectID string) (*domain.Project, error) {
	return s.Repo.FindProjectByID(projectID)
}

// AdminUpdate applies the admin's partial update guarded by the version
// the admin read.
func (s ProjectService) AdminUpdate(projectID string, input dto.AdminProjectUpdateRequest) (*domain.Project, error) {
	project, err := s.Repo.FindProjectByID(projectID)
	if err != nil {
		return nil, err
	}
	if input.Version != project.Version {
		return nil, apperr.Conflict("project was modified by someone else, reload and retry")
	}

	if input.Status != nil {
		status, err := domain.ParseProjectStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		project.Status = status
	}
	if input.AdminNotes != nil {
		project.AdminNotes = *input.AdminNotes
	}
	if input.ProjectURL != nil {
		project.ProjectURL = input.ProjectURL
	}
	if input.URLApproved != nil {
		if *input.URLApproved {
			if err := s.requirePaidApproval(project.UserID); err != nil {
				return nil, err
			}
		}
		project.URLApproved = *input.URLApproved
	}

	if err := s.Repo.SaveProjectVersioned(project); err != nil {
		return nil, err
	}
	return project, nil
}

// UploadDeliverable stores the finished work for a student's latest
// project. The file is kept under a per-project name, so a re-upload
// replaces the previous deliverable. A student with no project yet gets a
// placeholder one so the file has somewhere to live.
func (s ProjectService) UploadDeliverable(targetUserID, filename string, data []byte) (*domain.Project, error) {
	user, err := s.UserRepo.FindUserByID(targetUserID)
	if err != nil {
		return nil, err
	}

	project, err := s.Repo.LatestProjectByUser(user.ID)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			return nil, err
		}
		project, err = s.Repo.CreateProject(&domain.Project{
			UserID: user.ID,
			Title:  "Project for " + user.Name,
			Status: domain.ProjectInProgress,
		})
		if err != nil {
			return nil, err
		}
	}

	path, err := s.Files.SaveAs(deliverablePurpose, project.ID+"."+storage.Ext(filename), data)
	if err != nil {
		return nil, err
	}

	original := filename
	project.ProjectFilePath = &path
	project.ProjectFileOriginalName = &original
	project.Status = domain.ProjectCompleted

	if err := s.Repo.SaveProjectVersioned(project); err != nil {
		return nil, err
	}
	return project, nil
}

// ShareDownloadURL sets or clears the project url and its approval on the
// student's latest project, creating one if the student has none yet.
// Approving requires the student to have a completed order; revoking
// never does.
func (s ProjectService) ShareDownloadURL(input dto.ShareProjectURLRequest) (*domain.Project, error) {
	if input.UserID == "" {
		return nil, apperr.ValidationField("user_id", "user_id is required")
	}

	user, err := s.UserRepo.FindUserByID(input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Approved {
		if err := s.requirePaidApproval(user.ID); err != nil {
			return nil, err
		}
	}

	project, err := s.Repo.LatestProjectByUser(user.ID)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			return nil, err
		}
		project, err = s.Repo.CreateProject(&domain.Project{
			UserID: user.ID,
			Title:  "Project for " + user.Name,
			Status: domain.ProjectCompleted,
		})
		if err != nil {
			return nil, err
		}
	}

	if input.ProjectURL != "" {
		url := input.ProjectURL
		project.ProjectURL = &url
	}
	project.URLApproved = input.Approved

	if err := s.Repo.SaveProjectVersioned(project); err != nil {
		return nil, err
	}
	return project, nil
}

// DownloadDeliverable streams the finished work for ownerID. For students
// the gate checks run in a fixed order: payment first, then the file
// itself, then the admin's approval, so the caller always learns the
// earliest unmet condition. Admins skip the payment and approval gates
// entirely; the file still has to exist.
func (s ProjectService) DownloadDeliverable(ownerID string, asAdmin bool) (io.ReadCloser, string, error) {
	if !asAdmin {
		if err := s.requireCompletedOrder(ownerID); err != nil {
			return nil, "", err
		}
	}

	project, err := s.Repo.LatestProjectByUser(ownerID)
	if err != nil {
		return nil, "", err
	}

	if project.ProjectFilePath == nil || !s.Files.Exists(*project.ProjectFilePath) {
		return nil, "", apperr.NotFound("no deliverable available for download")
	}

	if !asAdmin && !project.URLApproved {
		return nil, "", apperr.Forbidden("download has not been approved yet")
	}

	rc, err := s.Files.Open(*project.ProjectFilePath)
	if err != nil {
		return nil, "", err
	}
	name := "project.zip"
	if project.ProjectFileOriginalName != nil {
		name = *project.ProjectFileOriginalName
	}
	return rc, name, nil
}

func (s ProjectService) requireCompletedOrder(userID string) error {
	ok, err := s.OrderRepo.HasCompletedOrder(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.PaymentRequired("payment must be completed before downloads are available")
	}
	return nil
}

// requirePaidApproval guards the admin's approval action rather than the
// student's download, so an unmet gate is a refusal, not a payment prompt.
func (s ProjectService) requirePaidApproval(userID string) error {
	ok, err := s.OrderRepo.HasCompletedOrder(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("cannot approve download before the student's payment is completed")
	}
	return nil
}
