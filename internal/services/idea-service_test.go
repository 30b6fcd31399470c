package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/clients/aigen"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/repository"
)

type stubGenerator struct {
	reply string
	err   error
	calls []([]aigen.Message)
}

func (s *stubGenerator) Complete(_ context.Context, messages []aigen.Message, _ aigen.Options) (string, string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", "", s.err
	}
	return s.reply, "stub", nil
}

func TestIsSpecificIdea(t *testing.T) {
	assert.False(t, isSpecificIdea("agriculture"))
	assert.False(t, isSpecificIdea("civil works"))
	assert.True(t, isSpecificIdea("iot"))
	assert.True(t, isSpecificIdea("build a crop monitor"))
	assert.True(t, isSpecificIdea("something about helping farmers with water"))
}

func TestGenerateRecordsHistoryForUsers(t *testing.T) {
	db := newTestDB(t)
	gen := &stubGenerator{reply: "Smart Irrigation Controller"}
	svc := NewIdeaService(repository.NewIdeaRepository(db), gen, gen, 50)
	user := seedTestUser(t, db, "gen@example.com")

	resp, err := svc.Generate(context.Background(), user.ID, dto.IdeaGenerateRequest{FieldOfInterest: "agriculture"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Smart Irrigation Controller", resp.Idea)

	history, err := svc.ListMyHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "agriculture", history[0].Prompt)
	assert.Equal(t, "stub", history[0].GenerationModel)

	// guests get no history row
	_, err = svc.Generate(context.Background(), "", dto.IdeaGenerateRequest{FieldOfInterest: "robotics"})
	require.NoError(t, err)
	var n int64
	require.NoError(t, db.Model(&domain.IdeaGenerationHistory{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	db := newTestDB(t)
	gen := &stubGenerator{err: apperr.Upstream("failed to generate text from AI services", errors.New("down"))}
	svc := NewIdeaService(repository.NewIdeaRepository(db), gen, gen, 50)

	_, err := svc.Generate(context.Background(), "", dto.IdeaGenerateRequest{FieldOfInterest: "ml"})
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestSubmitIdeaQuota(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdeaService(repository.NewIdeaRepository(db), &stubGenerator{reply: "x"}, &stubGenerator{reply: "x"}, 2)

	req := dto.IdeaSubmitRequest{
		Name: "Guest", Phone: "+919812345678",
		Interests: "iot", GeneratedIdea: "Smart Irrigation",
	}

	first, err := svc.SubmitIdea("", req)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, 1, first.GenerationCount)
	assert.Equal(t, 1, first.Remaining)

	second, err := svc.SubmitIdea("", req)
	require.NoError(t, err)
	assert.Equal(t, 2, second.GenerationCount)
	assert.Zero(t, second.Remaining)

	// hitting the ceiling is a soft stop, not an error
	third, err := svc.SubmitIdea("", req)
	require.NoError(t, err)
	assert.False(t, third.Success)
	assert.True(t, third.LimitReached)

	var n int64
	require.NoError(t, db.Model(&domain.IdeaSubmission{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	count, err := svc.Count("", "+919812345678")
	require.NoError(t, err)
	assert.Equal(t, 2, count.Count)
	assert.False(t, count.CanGenerate)
}

func TestSubmitIdeaQuotaByAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdeaService(repository.NewIdeaRepository(db), &stubGenerator{reply: "x"}, &stubGenerator{reply: "x"}, 1)
	user := seedTestUser(t, db, "quota@example.com")

	req := dto.IdeaSubmitRequest{
		Name: "Student", Phone: "+919812340000",
		GeneratedIdea: "Crop Doctor",
	}

	_, err := svc.SubmitIdea(user.ID, req)
	require.NoError(t, err)

	// changing the phone does not reset an authenticated quota
	req.Phone = "+919812349999"
	resp, err := svc.SubmitIdea(user.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.LimitReached)
}

func TestChatFinalizeMarker(t *testing.T) {
	db := newTestDB(t)
	gen := &stubGenerator{reply: "Great, let's build the Smart Irrigation Controller. [FINALIZE]"}
	svc := NewIdeaService(repository.NewIdeaRepository(db), gen, gen, 50)
	user := seedTestUser(t, db, "chat@example.com")

	resp, err := svc.Chat(context.Background(), user.ID, dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: "I like irrigation, let's do it"}},
		PlanName: "Premium",
	})
	require.NoError(t, err)
	assert.True(t, resp.ShouldFinalize)
	assert.NotContains(t, resp.Message, "[FINALIZE]")
	assert.NotEmpty(t, resp.SessionID)

	var n int64
	require.NoError(t, db.Model(&domain.ChatbotHistory{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// the system prompt mentions the plan it was given
	require.NotEmpty(t, gen.calls)
	assert.Contains(t, gen.calls[0][0].Content, "Premium")
}

// Chat and one-shot generation carry separate generators so they can
// prefer different providers.
func TestChatUsesItsOwnGenerator(t *testing.T) {
	db := newTestDB(t)
	ideaGen := &stubGenerator{reply: "idea"}
	chatGen := &stubGenerator{reply: "chat reply"}
	svc := NewIdeaService(repository.NewIdeaRepository(db), ideaGen, chatGen, 50)
	user := seedTestUser(t, db, "split@example.com")

	_, err := svc.Chat(context.Background(), user.ID, dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: "user", Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Len(t, chatGen.calls, 1)
	assert.Empty(t, ideaGen.calls)

	_, err = svc.Generate(context.Background(), user.ID, dto.IdeaGenerateRequest{FieldOfInterest: "robotics"})
	require.NoError(t, err)
	assert.Len(t, ideaGen.calls, 1)
	assert.Len(t, chatGen.calls, 1)
}

func TestSubmitApprovedIdea(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdeaService(repository.NewIdeaRepository(db), &stubGenerator{}, &stubGenerator{}, 50)

	_, err := svc.SubmitApprovedIdea(dto.ApprovedIdeaSubmitRequest{Name: "P", Phone: "+911111111111"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	sub, err := svc.SubmitApprovedIdea(dto.ApprovedIdeaSubmitRequest{
		Name: "P", Phone: "+911111111111", ApprovedIdea: "My own drone idea",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	list, err := svc.ListApprovedIdeas(10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
