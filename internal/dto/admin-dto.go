package dto

type AdminRequestCreate struct {
	RequestType string `json:"request_type"` // help, bug, feature, general
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type AdminRequestUpdate struct {
	Status        *string `json:"status,omitempty"`
	AdminResponse *string `json:"admin_response,omitempty"`
}

// AdminUserOverview is one row of the admin console's user table: the
// account plus where it stands in the pipeline.
type AdminUserOverview struct {
	UserID              string `json:"user_id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	SignupStep          string `json:"signup_step"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	HasSynopsis         bool   `json:"has_synopsis"`
	LatestOrderStatus   string `json:"latest_order_status,omitempty"`
	LatestOrderPlan     string `json:"latest_order_plan,omitempty"`
	ProjectStatus       string `json:"project_status,omitempty"`
	DeliverableReady    bool   `json:"deliverable_ready"`
}

type AdminStatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalOrders     int64 `json:"total_orders"`
	TotalProjects   int64 `json:"total_projects"`
	PendingSynopsis int64 `json:"pending_synopsis"`
	PendingRequests int64 `json:"pending_requests"`
	PendingOrders   int64 `json:"pending_orders"`
	Revenue         int64 `json:"revenue"`
}
