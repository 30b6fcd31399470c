package services

import (
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type UserService struct {
	Repo      repository.UserRepository
	PlanRepo  repository.PlanRepository
	OrderRepo repository.OrderRepository
	Auth      helper.Auth
}

func NewUserService(repo repository.UserRepository, planRepo repository.PlanRepository,
	orderRepo repository.OrderRepository, auth helper.Auth) UserService {
	return UserService{Repo: repo, PlanRepo: planRepo, OrderRepo: orderRepo, Auth: auth}
}

// Register creates an account and logs it in. The new user starts the
// onboarding sequence at the basic_info step.
func (s UserService) Register(input dto.SignupRequest) (dto.TokenResponse, error) {
	email, err := utils.ValidateEmail(input.Email)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	password, err := utils.ValidatePassword(input.Password)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	name, err := utils.ValidateName(input.Name)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	phone, err := utils.ValidatePhone(input.Phone)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	hashed, err := s.Auth.HashPassword(password)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	user, err := s.Repo.CreateUser(&domain.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Phone:        phone,
		SignupStep:   domain.StepBasicInfo,
	})
	if err != nil {
		return dto.TokenResponse{}, err
	}

	return s.issueToken(user)
}

// Login deliberately reports the same error for unknown email and wrong
// password.
func (s UserService) Login(input dto.LoginRequest) (dto.TokenResponse, error) {
	email, err := utils.ValidateEmail(input.Email)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	user, err := s.Repo.FindUserByEmail(email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return dto.TokenResponse{}, apperr.Auth("incorrect email or password")
		}
		return dto.TokenResponse{}, err
	}

	if err := s.Auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return dto.TokenResponse{}, err
	}

	return s.issueToken(user)
}

func (s UserService) issueToken(user *domain.User) (dto.TokenResponse, error) {
	token, err := s.Auth.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func (s UserService) GetProfile(userID string) (*domain.User, error) {
	return s.Repo.FindUserByID(userID)
}

func (s UserService) UpdateProfile(userID string, input dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := utils.ValidateName(*input.Name)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}
	if input.Phone != nil {
		phone, err := utils.ValidatePhone(*input.Phone)
		if err != nil {
			return nil, err
		}
		user.Phone = phone
	}
	if input.SignupStep != nil {
		step, err := domain.ParseSignupStep(*input.SignupStep)
		if err != nil {
			return nil, err
		}
		user.SignupStep = step
	}
	if input.NeedsIdeaGeneration != nil {
		user.NeedsIdeaGeneration = *input.NeedsIdeaGeneration
	}
	if input.OnboardingCompleted != nil {
		user.OnboardingCompleted = *input.OnboardingCompleted
		if *input.OnboardingCompleted {
			user.SignupStep = domain.StepCompleted
		}
	}

	if err := s.Repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SelectPlan pins the user to a catalog plan and opens a pending order that
// snapshots the plan's name and price. An unknown plan id creates nothing.
func (s UserService) SelectPlan(userID string, input dto.SelectPlanRequest) (dto.SelectPlanResponse, error) {
	if input.PlanID == "" {
		return dto.SelectPlanResponse{}, apperr.ValidationField("plan_id", "plan_id is required")
	}

	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		return dto.SelectPlanResponse{}, err
	}

	plan, err := s.PlanRepo.FindPlanByID(input.PlanID)
	if err != nil {
		return dto.SelectPlanResponse{}, err
	}

	order, err := s.OrderRepo.CreateOrder(&domain.Order{
		UserID:      user.ID,
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		Amount:      plan.Price,
		Status:      domain.OrderPending,
		ServiceType: input.ServiceType,
	})
	if err != nil {
		return dto.SelectPlanResponse{}, err
	}

	planID := plan.ID
	user.SelectedPlanID = &planID
	user.SignupStep = domain.StepSynopsis
	if err := s.Repo.SaveUser(user); err != nil {
		return dto.SelectPlanResponse{}, err
	}

	return dto.SelectPlanResponse{
		Message:     "plan selected, order created",
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		ServiceType: input.ServiceType,
		OrderID:     order.ID,
		NextStep:    string(domain.StepSynopsis),
	}, nil
}

func (s UserService) IsAdmin(userID string) bool {
	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

func (s UserService) ListUsers(limit, offset int) ([]domain.User, error) {
	return s.Repo.ListUsers(utils.ClampLimit(limit, 50, 200), offset)
}

func (s UserService) GetUser(userID string) (*domain.User, error) {
	return s.Repo.FindUserByID(userID)
}

// DeleteUser removes a student account and everything it owns. Admin
// accounts cannot be deleted through this path.
func (s UserService) DeleteUser(userID string) error {
	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return apperr.Forbidden("admin accounts cannot be deleted")
	}
	return s.Repo.DeleteUser(user)
}
