package dto

type IdeaGenerateRequest struct {
	FieldOfInterest string `json:"field_of_interest"`
}

type IdeaGenerateResponse struct {
	Idea    string `json:"idea"`
	Field   string `json:"field"`
	Success bool   `json:"success"`
}

type IdeaCountResponse struct {
	Count       int  `json:"count"`
	Max         int  `json:"max"`
	Remaining   int  `json:"remaining"`
	CanGenerate bool `json:"can_generate"`
}

type IdeaSubmitRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Interests     string `json:"interests"`
	GeneratedIdea string `json:"generated_idea"`
}

type IdeaSubmitResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	SubmissionID    string `json:"submission_id,omitempty"`
	GenerationCount int    `json:"generation_count,omitempty"`
	Remaining       int    `json:"remaining,omitempty"`
	LimitReached    bool   `json:"limit_reached,omitempty"`
}

type ApprovedIdeaSubmitRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ApprovedIdea string `json:"approved_idea"`
}

type ChatMessage struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages  []ChatMessage `json:"messages"`
	PlanName  string        `json:"plan_name"`
	SessionID string        `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Message        string `json:"message"`
	SessionID      string `json:"session_id"`
	ShouldFinalize bool   `json:"should_finalize"`
}
