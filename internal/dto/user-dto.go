package dto

// UpdateUserRequest is a PATCH-style payload: only non-nil fields change.
type UpdateUserRequest struct {
	Name                *string `json:"name,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	SignupStep          *string `json:"signup_step,omitempty"`
	NeedsIdeaGeneration *bool   `json:"needs_idea_generation,omitempty"`
	OnboardingCompleted *bool   `json:"onboarding_completed,omitempty"`
}

type SelectPlanRequest struct {
	PlanID      string `json:"plan_id"`
	ServiceType string `json:"service_type,omitempty"` // web-app, iot
}

type SelectPlanResponse struct {
	Message     string `json:"message"`
	PlanID      string `json:"plan_id"`
	PlanName    string `json:"plan_name"`
	ServiceType string `json:"service_type,omitempty"`
	OrderID     string `json:"order_id"`
	NextStep    string `json:"next_step"`
}
