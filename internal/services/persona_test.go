package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/data/repos"
	"github.com/yungbote/hermes-backend/internal/data/repos/testutil"
	"github.com/yungbote/hermes-backend/internal/domain/chat"
	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/modules/hermes"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/guidance"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/apierr"
	"github.com/yungbote/hermes-backend/internal/platform/ctxutil"
	"github.com/yungbote/hermes-backend/internal/platform/locale"
	"github.com/yungbote/hermes-backend/internal/platform/openai"
)

const studentMessage = "I'm anxious about my career and I've been studying mentalism."

type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	system  string
	input   []openai.Message
	err     error
	replyFn func(n int) string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, system string, messages []openai.Message) (openai.TextResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = system
	f.input = append([]openai.Message(nil), messages...)
	if f.err != nil {
		return openai.TextResult{}, f.err
	}
	text := "Be still, seeker."
	if f.replyFn != nil {
		text = f.replyFn(f.calls)
	}
	return openai.TextResult{Text: text, Model: "fake-model", InputTokens: 42, OutputTokens: 7}, nil
}

type personaFixture struct {
	db      *gorm.DB
	svc     PersonaService
	gen     *fakeGenerator
	userID  uuid.UUID
	ctx     context.Context
	threads repos.ChatThreadRepo
}

func newPersonaFixture(t *testing.T, gen *fakeGenerator) *personaFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	locales := locale.New(nil)
	engine, err := hermes.NewEngine(locales, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	cache, err := guidance.NewCache(0)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	threads := repos.NewChatThreadRepo(db, log)
	var generator TextGenerator
	if gen != nil {
		generator = gen
	}
	svc := NewPersonaService(
		db, log, engine, cache, generator, locales,
		repos.NewSpiritualProfileRepo(db, log),
		repos.NewMilestoneRepo(db, log),
		repos.NewActivityRepo(db, log),
		threads,
		repos.NewChatMessageRepo(db, log),
		PersonaConfig{HistoryLimit: 10},
	)
	userID := uuid.New()
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID})
	return &personaFixture{db: db, svc: svc, gen: gen, userID: userID, ctx: ctx, threads: threads}
}

func (f *personaFixture) dbc() dbctx.Context { return dbctx.Context{Ctx: f.ctx} }

func milestoneIDs(views []MilestoneView) map[string]bool {
	out := make(map[string]bool, len(views))
	for _, v := range views {
		out[v.ID] = true
	}
	return out
}

func TestPersonaRespondPersistsTurn(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{})

	res, err := f.svc.Respond(f.dbc(), RespondInput{Message: studentMessage})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.ThreadID == uuid.Nil {
		t.Fatalf("expected a new thread id")
	}
	if res.Reply != "Be still, seeker." {
		t.Fatalf("reply: got=%q", res.Reply)
	}
	if res.UserMessage == nil || res.UserMessage.Seq != 1 {
		t.Fatalf("user message seq: got=%+v", res.UserMessage)
	}
	if res.AssistantMessage == nil || res.AssistantMessage.Seq != 2 {
		t.Fatalf("assistant message seq: got=%+v", res.AssistantMessage)
	}
	if res.AssistantMessage.Model != "fake-model" || res.Usage.PromptTokens != 42 || res.Usage.CompletionTokens != 7 {
		t.Fatalf("usage: got model=%q usage=%+v", res.AssistantMessage.Model, res.Usage)
	}

	meta := res.UserMessage.Metadata.Data()
	if meta.Kind != chat.MetadataAnalysis || meta.Emotional == nil {
		t.Fatalf("user metadata: got=%+v", meta)
	}
	if meta.Emotional.EmotionalState == nil || meta.Emotional.EmotionalState.Primary != hermetic.EmotionAnxious {
		t.Fatalf("emotion: got=%+v", meta.Emotional.EmotionalState)
	}
	if !strings.Contains(meta.Emotional.Insight, string(hermetic.ChallengeCareer)) {
		t.Fatalf("insight: got=%q", meta.Emotional.Insight)
	}
	if reply := res.AssistantMessage.Metadata.Data(); reply.Kind != chat.MetadataReply || reply.Usage == nil || reply.Story == nil {
		t.Fatalf("reply metadata: got=%+v", reply)
	}

	if res.Advancement.Profile.Level != hermetic.LevelStudent {
		t.Fatalf("level: want=%s got=%s", hermetic.LevelStudent, res.Advancement.Profile.Level)
	}
	if !res.Advancement.Profile.Progression.HasStudied(hermetic.Mentalism) {
		t.Fatalf("expected mentalism studied: got=%v", res.Advancement.Profile.Progression.PrinciplesStudied)
	}
	got := milestoneIDs(res.NewMilestones)
	if !got["first_conversation"] || !got["first_principle"] {
		t.Fatalf("milestones: got=%v", got)
	}
	if res.Streak.Current != 1 || res.Streak.Longest != 1 {
		t.Fatalf("streak: got=%+v", res.Streak)
	}

	if f.gen.system != res.Bundle.Response.SystemPrompt {
		t.Fatalf("generator should receive the composed system prompt")
	}
	if len(f.gen.input) != 1 || f.gen.input[0].Content != studentMessage {
		t.Fatalf("generator input: got=%+v", f.gen.input)
	}

	th, err := f.threads.GetForUser(f.dbc(), res.ThreadID, f.userID)
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if th.NextSeq != 2 {
		t.Fatalf("next_seq: want=2 got=%d", th.NextSeq)
	}
}

func TestPersonaRespondContinuesThread(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{replyFn: func(n int) string {
		if n == 1 {
			return "first reply"
		}
		return "second reply"
	}})

	first, err := f.svc.Respond(f.dbc(), RespondInput{Message: studentMessage})
	if err != nil {
		t.Fatalf("Respond #1: %v", err)
	}
	second, err := f.svc.Respond(f.dbc(), RespondInput{ThreadID: first.ThreadID, Message: "Thank you, I feel grateful."})
	if err != nil {
		t.Fatalf("Respond #2: %v", err)
	}
	if second.ThreadID != first.ThreadID {
		t.Fatalf("thread: want=%s got=%s", first.ThreadID, second.ThreadID)
	}
	if second.UserMessage.Seq != 3 || second.AssistantMessage.Seq != 4 {
		t.Fatalf("seqs: got user=%d assistant=%d", second.UserMessage.Seq, second.AssistantMessage.Seq)
	}
	ids := milestoneIDs(second.NewMilestones)
	if ids["first_conversation"] || ids["first_principle"] {
		t.Fatalf("milestones must not be awarded twice: got=%v", ids)
	}
	if second.Advancement.Profile.Score < first.Advancement.Profile.Score {
		t.Fatalf("score decreased: %d -> %d", first.Advancement.Profile.Score, second.Advancement.Profile.Score)
	}

	in := f.gen.input
	if len(in) != 3 {
		t.Fatalf("generator input: want=3 got=%d", len(in))
	}
	if in[0].Role != openai.RoleUser || in[1].Role != openai.RoleAssistant || in[1].Content != "first reply" {
		t.Fatalf("history order: got=%+v", in)
	}
}

func TestPersonaRespondForeignThread(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{})
	other := testutil.SeedThread(t, f.ctx, f.db, uuid.New(), "not yours")

	_, err := f.svc.Respond(f.dbc(), RespondInput{ThreadID: other.ID, Message: "hello"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if f.gen.calls != 0 {
		t.Fatalf("generator should not run: calls=%d", f.gen.calls)
	}
}

func TestPersonaRespondGeneratorFailure(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{err: errors.New("upstream down")})

	_, err := f.svc.Respond(f.dbc(), RespondInput{Message: studentMessage})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "respond_failed" {
		t.Fatalf("want respond_failed api error, got %v", err)
	}

	// The user turn and its progress survive a failed generation.
	var msgs []chat.ChatMessage
	if err := f.db.Where("user_id = ?", f.userID).Find(&msgs).Error; err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Role != chat.RoleUser {
		t.Fatalf("messages: got=%+v", msgs)
	}
	var row profile.SpiritualProfile
	if err := f.db.Where("user_id = ?", f.userID).First(&row).Error; err != nil {
		t.Fatalf("profile: %v", err)
	}
	if row.Level != string(hermetic.LevelStudent) {
		t.Fatalf("level: want=%s got=%s", hermetic.LevelStudent, row.Level)
	}
}

func TestPersonaRespondRejects(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{})

	if _, err := f.svc.Respond(dbctx.Context{Ctx: context.Background()}, RespondInput{Message: "hi"}); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("anonymous: want ErrUnauthorized, got %v", err)
	}
	if _, err := f.svc.Respond(f.dbc(), RespondInput{Message: "   "}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("blank: want ErrInvalidArgument, got %v", err)
	}
	long := strings.Repeat("a", MaxMessageRunes+1)
	if _, err := f.svc.Respond(f.dbc(), RespondInput{Message: long}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("long: want ErrInvalidArgument, got %v", err)
	}
	bad := RespondInput{Message: "hi"}
	bad.Preferences.Formality = "shouty"
	if _, err := f.svc.Respond(f.dbc(), bad); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("preferences: want ErrInvalidArgument, got %v", err)
	}

	noGen := newPersonaFixture(t, nil)
	if _, err := noGen.svc.Respond(noGen.dbc(), RespondInput{Message: "hi"}); !errors.Is(err, apperrors.ErrUnavailable) {
		t.Fatalf("no generator: want ErrUnavailable, got %v", err)
	}
}

func TestPersonaPreviewDoesNotPersist(t *testing.T) {
	f := newPersonaFixture(t, nil)

	bundle, err := f.svc.Preview(f.dbc(), RespondInput{Message: studentMessage, Locale: "es-MX"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if strings.TrimSpace(bundle.Response.SystemPrompt) == "" {
		t.Fatalf("expected a system prompt")
	}
	var count int64
	if err := f.db.Model(&profile.SpiritualProfile{}).Where("user_id = ?", f.userID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("preview must not persist a profile: count=%d", count)
	}
}

func TestPersonaGuidance(t *testing.T) {
	f := newPersonaFixture(t, nil)

	g, err := f.svc.Guidance(f.dbc(), GuidanceInput{Type: "career"})
	if err != nil {
		t.Fatalf("Guidance: %v", err)
	}
	if g.Challenge.Type != hermetic.ChallengeCareer || g.Challenge.Severity != hermetic.SeverityModerate {
		t.Fatalf("challenge: got=%+v", g.Challenge)
	}
	if len(g.Practices) == 0 {
		t.Fatalf("expected practices")
	}

	if _, err := f.svc.Guidance(f.dbc(), GuidanceInput{Type: "astrology"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("unknown type: want ErrInvalidArgument, got %v", err)
	}
	if _, err := f.svc.Guidance(f.dbc(), GuidanceInput{Type: "career", Severity: "apocalyptic"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("unknown severity: want ErrInvalidArgument, got %v", err)
	}
}

func TestPersonaProgress(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{})

	empty, err := f.svc.Progress(f.dbc())
	if err != nil {
		t.Fatalf("Progress (empty): %v", err)
	}
	if empty.SpiritualLevel.Level != hermetic.LevelSeeker || empty.NextLevel != hermetic.LevelStudent {
		t.Fatalf("empty report: got=%+v", empty)
	}
	if empty.JourneyStartedAt != nil || len(empty.Milestones) != 0 {
		t.Fatalf("empty report should have no journey or milestones: got=%+v", empty)
	}

	if _, err := f.svc.Respond(f.dbc(), RespondInput{Message: studentMessage}); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	report, err := f.svc.Progress(f.dbc())
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if report.SpiritualLevel.Level != hermetic.LevelStudent || report.NextLevel != hermetic.LevelAdept {
		t.Fatalf("report levels: got=%+v", report)
	}
	if report.Requirement == nil || report.Requirement.Score != hermetic.AdeptThreshold {
		t.Fatalf("requirement: got=%+v", report.Requirement)
	}
	if report.ProgressToNextLevel <= 0 || report.ProgressToNextLevel > 1 {
		t.Fatalf("progress ratio: got=%v", report.ProgressToNextLevel)
	}
	if report.JourneyStartedAt == nil || time.Since(*report.JourneyStartedAt) > time.Hour {
		t.Fatalf("journey start: got=%v", report.JourneyStartedAt)
	}
	if !milestoneIDs(report.Milestones)["first_conversation"] {
		t.Fatalf("milestones: got=%+v", report.Milestones)
	}
	if report.Streak.Current != 1 {
		t.Fatalf("streak: got=%+v", report.Streak)
	}
}

func TestPersonaErase(t *testing.T) {
	f := newPersonaFixture(t, &fakeGenerator{})

	res, err := f.svc.Respond(f.dbc(), RespondInput{Message: studentMessage})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if err := f.svc.Erase(f.dbc()); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if _, err := f.threads.GetForUser(f.dbc(), res.ThreadID, f.userID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("thread after erase: want ErrNotFound, got %v", err)
	}
	report, err := f.svc.Progress(f.dbc())
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if report.SpiritualLevel.Level != hermetic.LevelSeeker || len(report.Milestones) != 0 || report.Streak.Current != 0 {
		t.Fatalf("report after erase: got=%+v", report)
	}
}
