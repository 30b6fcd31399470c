package services

import (
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type AdminService struct {
	RequestRepo  repository.AdminRequestRepository
	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	ProjectRepo  repository.ProjectRepository
	SynopsisRepo repository.SynopsisRepository
}

func NewAdminService(requestRepo repository.AdminRequestRepository, userRepo repository.UserRepository,
	orderRepo repository.OrderRepository, projectRepo repository.ProjectRepository,
	synopsisRepo repository.SynopsisRepository) AdminService {
	return AdminService{
		RequestRepo:  requestRepo,
		UserRepo:     userRepo,
		OrderRepo:    orderRepo,
		ProjectRepo:  projectRepo,
		SynopsisRepo: synopsisRepo,
	}
}

var knownRequestTypes = map[string]bool{
	"help": true, "bug": true, "feature": true, "general": true,
}

func (s AdminService) CreateRequest(userID string, input dto.AdminRequestCreate) (*domain.AdminRequest, error) {
	if input.Subject == "" {
		return nil, apperr.ValidationField("subject", "subject is required")
	}
	if input.Description == "" {
		return nil, apperr.ValidationField("description", "description is required")
	}
	reqType := input.RequestType
	if reqType == "" {
		reqType = "general"
	}
	if !knownRequestTypes[reqType] {
		return nil, apperr.ValidationField("request_type", "unknown request type")
	}

	return s.RequestRepo.CreateRequest(&domain.AdminRequest{
		UserID:      userID,
		RequestType: reqType,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      domain.RequestPending,
	})
}

func (s AdminService) ListMyRequests(userID string) ([]domain.AdminRequest, error) {
	return s.RequestRepo.ListRequestsByUser(userID)
}

func (s AdminService) ListRequests(limit, offset int) ([]domain.AdminRequest, error) {
	return s.RequestRepo.ListRequests(utils.ClampLimit(limit, 50, 200), offset)
}

// UpdateRequest records the admin's response and who gave it. AdminID on
// the row is a weak back-reference, it is not validated against a live
// account afterwards.
func (s AdminService) UpdateRequest(requestID, adminID string, input dto.AdminRequestUpdate) (*domain.AdminRequest, error) {
	req, err := s.RequestRepo.FindRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		status, err := domain.ParseRequestStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		req.Status = status
	}
	if input.AdminResponse != nil {
		req.AdminResponse = *input.AdminResponse
		req.AdminID = &adminID
	}

	if err := s.RequestRepo.SaveRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Stats aggregates the dashboard counters. Revenue covers paid and
// completed orders.
func (s AdminService) Stats() (dto.AdminStatsResponse, error) {
	var stats dto.AdminStatsResponse
	var err error

	if stats.TotalUsers, err = s.UserRepo.CountUsers(); err != nil {
		return stats, err
	}

	var pending, paid, completed, cancelled int64
	if pending, err = s.OrderRepo.CountOrdersByStatus(domain.OrderPending); err != nil {
		return stats, err
	}
	if paid, err = s.OrderRepo.CountOrdersByStatus(domain.OrderPaid); err != nil {
		return stats, err
	}
	if completed, err = s.OrderRepo.CountOrdersByStatus(domain.OrderCompleted); err != nil {
		return stats, err
	}
	if cancelled, err = s.OrderRepo.CountOrdersByStatus(domain.OrderCancelled); err != nil {
		return stats, err
	}
	stats.TotalOrders = pending + paid + completed + cancelled
	stats.PendingOrders = pending

	var projTotal int64
	for _, st := range []domain.ProjectStatus{
		domain.ProjectIdeaPending, domain.ProjectSynopsisPending,
		domain.ProjectInProgress, domain.ProjectCompleted, domain.ProjectCancelled,
	} {
		n, err := s.ProjectRepo.CountProjectsByStatus(st)
		if err != nil {
			return stats, err
		}
		projTotal += n
	}
	stats.TotalProjects = projTotal

	if stats.PendingSynopsis, err = s.SynopsisRepo.CountSynopsesByStatus(domain.SynopsisPending); err != nil {
		return stats, err
	}
	if stats.PendingRequests, err = s.RequestRepo.CountRequestsByStatus(domain.RequestPending); err != nil {
		return stats, err
	}
	if stats.Revenue, err = s.OrderRepo.SumRevenue(); err != nil {
		return stats, err
	}

	return stats, nil
}

// UserOverview builds the admin console's per-user pipeline rows: account,
// latest order, latest project. Missing orders or projects just leave the
// columns empty.
func (s AdminService) UserOverview(limit, offset int) ([]dto.AdminUserOverview, error) {
	users, err := s.UserRepo.ListUsers(utils.ClampLimit(limit, 50, 200), offset)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminUserOverview, 0, len(users))
	for _, u := range users {
		row := dto.AdminUserOverview{
			UserID:              u.ID,
			Name:                u.Name,
			Email:               u.Email,
			Phone:               u.Phone,
			SignupStep:          string(u.SignupStep),
			OnboardingCompleted: u.OnboardingCompleted,
			HasSynopsis:         u.HasSynopsis,
		}

		if order, err := s.OrderRepo.LatestOrderByUser(u.ID); err == nil {
			row.LatestOrderStatus = string(order.Status)
			row.LatestOrderPlan = order.PlanName
		}
		if project, err := s.ProjectRepo.LatestProjectByUser(u.ID); err == nil {
			row.ProjectStatus = string(project.Status)
			row.DeliverableReady = project.ProjectFilePath != nil && project.URLApproved
		}

		rows = append(rows, row)
	}
	return rows, nil
}
