package dto

// SynopsisReviewRequest is the admin's partial review update: only set
// fields change. Status must parse to a known synopsis status.
type SynopsisReviewRequest struct {
	Status     *string `json:"status,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	Version    int     `json:"version"`
}
