package dto

type ProjectCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	TechStack   string `json:"tech_stack,omitempty"`
}

type ProjectUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	TechStack   *string `json:"tech_stack,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AdminProjectUpdateRequest updates the student-visible fields an admin
// controls. Version guards against concurrent admin sessions.
type AdminProjectUpdateRequest struct {
	Status      *string `json:"status,omitempty"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
	ProjectURL  *string `json:"project_url,omitempty"`
	URLApproved *bool   `json:"url_approved,omitempty"`
	Version     int     `json:"version"`
}

type ShareProjectURLRequest struct {
	UserID     string `json:"user_id"`
	ProjectURL string `json:"project_url"`
	Approved   bool   `json:"approved"`
}
