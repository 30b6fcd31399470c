package dto

// OrderCreateRequest creates an order directly against a plan, outside the
// select-plan onboarding flow. The plan is snapshotted server-side.
type OrderCreateRequest struct {
	PlanID        string `json:"plan_id"`
	ServiceType   string `json:"service_type,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// OrderUpdateRequest is the admin's partial update. Version must match the
// order's current version or the update is rejected with a conflict.
type OrderUpdateRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Version       int     `json:"version"`
}

type ProofUploadResponse struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	OriginalName string `json:"payment_proof_original_name"`
	UploadedAt   string `json:"payment_proof_uploaded_at"`
}
