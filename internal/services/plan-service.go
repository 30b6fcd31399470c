package services

import (
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type PlanService struct {
	Repo repository.PlanRepository
}

func NewPlanService(repo repository.PlanRepository) PlanService {
	return PlanService{Repo: repo}
}

func (s PlanService) List() ([]domain.Plan, error) {
	return s.Repo.ListPlans()
}

func (s PlanService) Get(planID string) (*domain.Plan, error) {
	return s.Repo.FindPlanByID(planID)
}
