package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/clients/aigen"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

// finalizeMarker is what the chatbot emits when the conversation has
// settled on a concrete project idea; it is stripped before the reply
// reaches the client.
const finalizeMarker = "[FINALIZE]"

const chatContextWindow = 20

var techKeywords = []string{
	"ai", "ml", "machine learning", "deep learning", "iot", "blockchain",
	"web", "mobile", "app", "api", "cloud", "database", "arduino",
	"raspberry", "sensor", "drone", "robot", "automation", "chatbot",
	"vision", "nlp", "security", "network", "embedded", "android", "react",
}

var actionKeywords = []string{
	"build", "create", "develop", "make", "design", "implement", "detect",
	"track", "monitor", "predict", "classify", "recommend", "manage",
}

// IdeaService drives both one-shot idea generation and the guided chat.
// The two paths prefer opposite providers, so each carries its own
// generator.
type IdeaService struct {
	Repo          repository.IdeaRepository
	Generator     aigen.Generator
	ChatGenerator aigen.Generator
	Quota         int
}

func NewIdeaService(repo repository.IdeaRepository, generator, chatGenerator aigen.Generator, quota int) IdeaService {
	return IdeaService{Repo: repo, Generator: generator, ChatGenerator: chatGenerator, Quota: quota}
}

// isSpecificIdea decides whether the input already describes a concrete
// project (refine it) or just names a field (invent one). Long inputs and
// inputs mentioning a technology or an action verb count as specific.
func isSpecificIdea(input string) bool {
	lower := strings.ToLower(input)
	if len(strings.Fields(lower)) > 3 {
		return true
	}
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range actionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Generate produces one project idea for the given field or rough idea.
// Authenticated callers get a history row; guests do not.
func (s IdeaService) Generate(ctx context.Context, userID string, input dto.IdeaGenerateRequest) (dto.IdeaGenerateResponse, error) {
	field := strings.TrimSpace(input.FieldOfInterest)
	if field == "" {
		return dto.IdeaGenerateResponse{}, apperr.ValidationField("field_of_interest", "field of interest is required")
	}
	if len(field) > 500 {
		return dto.IdeaGenerateResponse{}, apperr.ValidationField("field_of_interest", "input is too long")
	}

	var userPrompt string
	if isSpecificIdea(field) {
		userPrompt = fmt.Sprintf(
			"A student has this rough project idea: %q. Refine it into one concrete, "+
				"buildable final-year project: a title, a 2-3 sentence description, the "+
				"suggested tech stack, and three key features.", field)
	} else {
		userPrompt = fmt.Sprintf(
			"Generate one concrete, buildable final-year student project idea in the field "+
				"of %q: a title, a 2-3 sentence description, the suggested tech stack, and "+
				"three key features.", field)
	}

	messages := []aigen.Message{
		{Role: "system", Content: "You are a project mentor for engineering students. " +
			"Suggest practical projects a small student team can finish in one semester. " +
			"Be specific and concise."},
		{Role: "user", Content: userPrompt},
	}

	text, provider, err := s.Generator.Complete(ctx, messages, aigen.Options{Temperature: 0.8, MaxTokens: 600})
	if err != nil {
		return dto.IdeaGenerateResponse{}, err
	}

	if userID != "" {
		err := s.Repo.CreateGenerationHistory(&domain.IdeaGenerationHistory{
			UserID:          userID,
			Prompt:          field,
			GeneratedIdea:   text,
			GenerationModel: provider,
		})
		if err != nil {
			log.Printf("idea history write failed: %v", err)
		}
	}

	return dto.IdeaGenerateResponse{Idea: text, Field: field, Success: true}, nil
}

// Count reports quota usage. Authenticated users are counted by account,
// guests by phone number.
func (s IdeaService) Count(userID, phone string) (dto.IdeaCountResponse, error) {
	n, err := s.countFor(userID, phone)
	if err != nil {
		return dto.IdeaCountResponse{}, err
	}

	remaining := s.Quota - int(n)
	if remaining < 0 {
		remaining = 0
	}
	return dto.IdeaCountResponse{
		Count:       int(n),
		Max:         s.Quota,
		Remaining:   remaining,
		CanGenerate: int(n) < s.Quota,
	}, nil
}

func (s IdeaService) countFor(userID, phone string) (int64, error) {
	if userID != "" {
		return s.Repo.CountSubmissionsByUser(userID)
	}
	if phone == "" {
		return 0, apperr.ValidationField("phone", "phone is required")
	}
	return s.Repo.CountSubmissionsByPhone(phone)
}

// SubmitIdea records an accepted generation against the caller's quota.
// Hitting the ceiling is not an error: the response says the limit was
// reached and nothing is stored.
func (s IdeaService) SubmitIdea(userID string, input dto.IdeaSubmitRequest) (dto.IdeaSubmitResponse, error) {
	if input.Name == "" {
		return dto.IdeaSubmitResponse{}, apperr.ValidationField("name", "name is required")
	}
	phone, err := utils.ValidatePhone(input.Phone)
	if err != nil {
		return dto.IdeaSubmitResponse{}, err
	}
	if phone == "" {
		return dto.IdeaSubmitResponse{}, apperr.ValidationField("phone", "phone is required")
	}
	if input.GeneratedIdea == "" {
		return dto.IdeaSubmitResponse{}, apperr.ValidationField("generated_idea", "generated_idea is required")
	}

	n, err := s.countFor(userID, phone)
	if err != nil {
		return dto.IdeaSubmitResponse{}, err
	}
	if int(n) >= s.Quota {
		return dto.IdeaSubmitResponse{
			Success:      false,
			Message:      fmt.Sprintf("generation limit of %d reached", s.Quota),
			LimitReached: true,
		}, nil
	}

	sub := &domain.IdeaSubmission{
		Name:            input.Name,
		Phone:           phone,
		Interests:       input.Interests,
		GeneratedIdea:   input.GeneratedIdea,
		GenerationCount: int(n) + 1,
	}
	if userID != "" {
		uid := userID
		sub.UserID = &uid
	}

	sub, err = s.Repo.CreateSubmission(sub)
	if err != nil {
		return dto.IdeaSubmitResponse{}, err
	}

	return dto.IdeaSubmitResponse{
		Success:         true,
		Message:         "idea submitted",
		SubmissionID:    sub.ID,
		GenerationCount: sub.GenerationCount,
		Remaining:       s.Quota - sub.GenerationCount,
	}, nil
}

func (s IdeaService) ListSubmissions(limit, offset int) ([]domain.IdeaSubmission, error) {
	return s.Repo.ListSubmissions(utils.ClampLimit(limit, 50, 200), offset)
}

// SubmitApprovedIdea records a public submission from someone who already
// has their own idea. No login, no quota.
func (s IdeaService) SubmitApprovedIdea(input dto.ApprovedIdeaSubmitRequest) (*domain.ApprovedIdeaSubmission, error) {
	if input.Name == "" {
		return nil, apperr.ValidationField("name", "name is required")
	}
	phone, err := utils.ValidatePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	if phone == "" {
		return nil, apperr.ValidationField("phone", "phone is required")
	}
	if input.ApprovedIdea == "" {
		return nil, apperr.ValidationField("approved_idea", "approved_idea is required")
	}

	return s.Repo.CreateApprovedSubmission(&domain.ApprovedIdeaSubmission{
		Name:         input.Name,
		Phone:        phone,
		ApprovedIdea: input.ApprovedIdea,
	})
}

func (s IdeaService) ListApprovedIdeas(limit, offset int) ([]domain.ApprovedIdeaSubmission, error) {
	return s.Repo.ListApprovedSubmissions(utils.ClampLimit(limit, 50, 200), offset)
}

func (s IdeaService) ListMyHistory(userID string, limit int) ([]domain.IdeaGenerationHistory, error) {
	return s.Repo.ListGenerationHistoryByUser(userID, utils.ClampLimit(limit, 20, 100))
}

// Chat runs one turn of the guided idea-refinement conversation. The model
// appends a finalize marker once the idea is concrete enough; the marker is
// stripped and surfaced as a flag.
func (s IdeaService) Chat(ctx context.Context, userID string, input dto.ChatRequest) (dto.ChatResponse, error) {
	if len(input.Messages) == 0 {
		return dto.ChatResponse{}, apperr.ValidationField("messages", "at least one message is required")
	}
	last := input.Messages[len(input.Messages)-1]
	if strings.TrimSpace(last.Content) == "" {
		return dto.ChatResponse{}, apperr.ValidationField("messages", "message content is empty")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	plan := input.PlanName
	if plan == "" {
		plan = "standard"
	}

	system := fmt.Sprintf(
		"You are a project mentor helping a student on the %s plan settle on a final-year "+
			"project idea. Ask short clarifying questions about their interests and skills, "+
			"then converge on one concrete project. When the student agrees on a specific "+
			"idea, restate it fully and append %s at the very end of your reply.",
		plan, finalizeMarker)

	messages := make([]aigen.Message, 0, len(input.Messages)+1)
	messages = append(messages, aigen.Message{Role: "system", Content: system})
	start := 0
	if len(input.Messages) > chatContextWindow {
		start = len(input.Messages) - chatContextWindow
	}
	for _, m := range input.Messages[start:] {
		role := m.Role
		if role != "assistant" {
			role = "user"
		}
		messages = append(messages, aigen.Message{Role: role, Content: m.Content})
	}

	began := time.Now()
	text, _, err := s.ChatGenerator.Complete(ctx, messages, aigen.Options{Temperature: 0.7, MaxTokens: 500})
	if err != nil {
		return dto.ChatResponse{}, err
	}

	shouldFinalize := strings.Contains(text, finalizeMarker)
	reply := strings.TrimSpace(strings.ReplaceAll(text, finalizeMarker, ""))

	err = s.Repo.CreateChatbotHistory(&domain.ChatbotHistory{
		UserID:         userID,
		SessionID:      sessionID,
		Message:        last.Content,
		Response:       reply,
		ResponseTimeMs: int(time.Since(began).Milliseconds()),
	})
	if err != nil {
		log.Printf("chat history write failed: %v", err)
	}

	return dto.ChatResponse{
		Message:        reply,
		SessionID:      sessionID,
		ShouldFinalize: shouldFinalize,
	}, nil
}
