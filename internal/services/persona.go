package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/data/repos"
	"github.com/yungbote/hermes-backend/internal/domain/chat"
	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/modules/hermes"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/composer"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/guidance"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/progress"
	"github.com/yungbote/hermes-backend/internal/observability"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/apierr"
	"github.com/yungbote/hermes-backend/internal/platform/ctxutil"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
	"github.com/yungbote/hermes-backend/internal/platform/openai"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
	MaxMessageRunes     = 4000
	threadTitleRunes    = 60
)

var errFailedToRespond = errors.New("failed to respond")

var tracer = observability.Tracer("github.com/yungbote/hermes-backend/internal/services")

// TextGenerator turns the composed system prompt and the conversation into
// the persona's reply.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, messages []openai.Message) (openai.TextResult, error)
}

// LocaleResolver maps a requested locale to a supported one.
type LocaleResolver interface {
	Resolve(code string) (string, bool)
}

type PersonaService interface {
	// Respond analyzes the message, advances the caller's profile, persists the
	// turn and returns the generated reply.
	Respond(dbc dbctx.Context, in RespondInput) (*RespondResult, error)
	// Preview runs the analysis and prompt composition without persisting or
	// generating anything.
	Preview(dbc dbctx.Context, in RespondInput) (*hermes.Bundle, error)
	Guidance(dbc dbctx.Context, in GuidanceInput) (hermetic.TransformationGuidance, error)
	Progress(dbc dbctx.Context) (*ProgressReport, error)
	// Erase removes every profile, milestone, activity and chat row of the caller.
	Erase(dbc dbctx.Context) error
}

type PersonaConfig struct {
	HistoryLimit  int
	DefaultLocale string
}

type RespondInput struct {
	// ThreadID continues an existing thread; uuid.Nil starts a new one.
	ThreadID    uuid.UUID
	Message     string
	Locale      string
	Preferences composer.Preferences
}

type GuidanceInput struct {
	Type        string
	Severity    string
	Description string
}

type MilestoneView struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AchievedAt  time.Time `json:"achieved_at"`
}

type StreakView struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type RespondResult struct {
	ThreadID         uuid.UUID            `json:"thread_id"`
	Reply            string               `json:"reply"`
	UserMessage      *chat.ChatMessage    `json:"user_message"`
	AssistantMessage *chat.ChatMessage    `json:"assistant_message"`
	Bundle           hermes.Bundle        `json:"bundle"`
	Advancement      progress.Advancement `json:"advancement"`
	NewMilestones    []MilestoneView      `json:"new_milestones"`
	Streak           StreakView           `json:"streak"`
	Usage            chat.Usage           `json:"usage"`
}

type ProgressReport struct {
	SpiritualLevel      hermetic.SpiritualLevel `json:"spiritual_level"`
	ProgressToNextLevel float64                 `json:"progress_to_next_level"`
	NextLevel           hermetic.Level          `json:"next_level,omitempty"`
	Requirement         *progress.Requirement   `json:"requirement,omitempty"`
	Streak              StreakView              `json:"streak"`
	Milestones          []MilestoneView         `json:"milestones"`
	JourneyStartedAt    *time.Time              `json:"journey_started_at,omitempty"`
}

type personaService struct {
	db         *gorm.DB
	log        *logger.Logger
	engine     *hermes.Engine
	guidance   *guidance.Cache
	generator  TextGenerator
	locales    LocaleResolver
	profiles   repos.SpiritualProfileRepo
	milestones repos.MilestoneRepo
	activities repos.ActivityRepo
	threads    repos.ChatThreadRepo
	messages   repos.ChatMessageRepo
	cfg        PersonaConfig
	now        func() time.Time
}

// NewPersonaService wires the service. generator may be nil, in which case
// Respond fails with ErrUnavailable and every other operation still works.
func NewPersonaService(
	db *gorm.DB,
	baseLog *logger.Logger,
	engine *hermes.Engine,
	guidanceCache *guidance.Cache,
	generator TextGenerator,
	locales LocaleResolver,
	profileRepo repos.SpiritualProfileRepo,
	milestoneRepo repos.MilestoneRepo,
	activityRepo repos.ActivityRepo,
	threadRepo repos.ChatThreadRepo,
	messageRepo repos.ChatMessageRepo,
	cfg PersonaConfig,
) PersonaService {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.HistoryLimit > MaxHistoryLimit {
		cfg.HistoryLimit = MaxHistoryLimit
	}
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		cfg.DefaultLocale = "en"
	}
	return &personaService{
		db:         db,
		log:        baseLog.With("service", "PersonaService"),
		engine:     engine,
		guidance:   guidanceCache,
		generator:  generator,
		locales:    locales,
		profiles:   profileRepo,
		milestones: milestoneRepo,
		activities: activityRepo,
		threads:    threadRepo,
		messages:   messageRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("not authenticated: %w", apperrors.ErrUnauthorized)
	}
	return userID, nil
}

func normalizeMessage(raw string) (string, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", fmt.Errorf("message is empty: %w", apperrors.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(msg) > MaxMessageRunes {
		return "", fmt.Errorf("message exceeds %d characters: %w", MaxMessageRunes, apperrors.ErrInvalidArgument)
	}
	return msg, nil
}

func validatePreferences(p composer.Preferences) error {
	if p.Formality != "" && !p.Formality.Valid() {
		return fmt.Errorf("formality %q: %w", p.Formality, apperrors.ErrInvalidArgument)
	}
	if p.TeachingApproach != "" && !p.TeachingApproach.Valid() {
		return fmt.Errorf("teaching approach %q: %w", p.TeachingApproach, apperrors.ErrInvalidArgument)
	}
	return nil
}

// turnState is what one turn reads before analysis.
type turnState struct {
	profile *profile.SpiritualProfile
	history []*chat.ChatMessage
}

func (s *personaService) loadState(ctx context.Context, userID, threadID uuid.UUID) (turnState, error) {
	var st turnState
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := s.profiles.GetByUserID(dbctx.Context{Ctx: gctx}, userID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		st.profile = row
		return nil
	})
	if threadID != uuid.Nil {
		g.Go(func() error {
			msgs, err := s.messages.ListRecent(dbctx.Context{Ctx: gctx}, threadID, s.cfg.HistoryLimit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			st.history = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return turnState{}, err
	}
	return st, nil
}

func (s *personaService) resolveLocale(requested, stored, threadLocale string) string {
	for _, code := range []string{requested, stored, threadLocale, s.cfg.DefaultLocale} {
		if strings.TrimSpace(code) == "" {
			continue
		}
		if s.locales == nil {
			return code
		}
		if resolved, ok := s.locales.Resolve(code); ok {
			return resolved
		}
	}
	return "en"
}

func (s *personaService) buildRequest(st turnState, in RespondInput, message, threadLocale string) hermes.Request {
	prefs := in.Preferences
	storedLocale := ""
	if st.profile != nil {
		if prefs.Formality == "" {
			prefs.Formality = hermetic.Formality(st.profile.PreferredFormality)
		}
		if prefs.TeachingApproach == "" {
			prefs.TeachingApproach = hermetic.TeachingApproach(st.profile.PreferredTeaching)
		}
		storedLocale = st.profile.Locale
	}
	return hermes.Request{
		Message:     message,
		History:     historyTurns(st.history),
		Profile:     st.profile.SpiritualLevel(),
		Locale:      s.resolveLocale(in.Locale, storedLocale, threadLocale),
		Preferences: prefs,
	}
}

func (s *personaService) analyze(ctx context.Context, req hermes.Request) (hermes.Bundle, error) {
	ctx, span := tracer.Start(ctx, "PersonaService.analyze")
	start := time.Now()
	bundle, err := s.engine.Analyze(ctx, req)
	endSpan(span, err)
	if err != nil {
		return hermes.Bundle{}, err
	}
	emotion := ""
	if st := bundle.Analysis.EmotionalState; st != nil {
		emotion = string(st.Primary)
	}
	observability.Current().ObserveAnalysis(string(bundle.Advancement.Profile.Level), emotion, time.Since(start))
	return bundle, nil
}

func (s *personaService) Respond(dbc dbctx.Context, in RespondInput) (res *RespondResult, err error) {
	ctx, span := tracer.Start(ctxutil.Default(dbc.Ctx), "PersonaService.Respond")
	defer func() { endSpan(span, err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	message, err := normalizeMessage(in.Message)
	if err != nil {
		return nil, err
	}
	if err := validatePreferences(in.Preferences); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, fmt.Errorf("text generation not configured: %w", apperrors.ErrUnavailable)
	}

	thread, err := s.resolveThread(ctx, userID, in.ThreadID, message, in.Locale)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("thread_id", thread.ID.String()))

	st, err := s.loadState(ctx, userID, thread.ID)
	if err != nil {
		return nil, err
	}
	req := s.buildRequest(st, in, message, thread.Locale)
	bundle, err := s.analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	out := &RespondResult{ThreadID: thread.ID, Bundle: bundle, NewMilestones: []MilestoneView{}}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		adv, err := s.advanceProfile(txc, userID, bundle.Assessment, in, req.Locale, now)
		if err != nil {
			return err
		}
		out.Advancement = adv
		streak, awarded, err := s.recordActivity(txc, userID, adv, bundle.Assessment, now)
		if err != nil {
			return err
		}
		out.Streak = streak
		out.NewMilestones = awarded
		out.UserMessage, err = s.appendMessage(txc, thread.ID, &chat.ChatMessage{
			UserID:   userID,
			Role:     chat.RoleUser,
			Content:  message,
			Metadata: datatypes.NewJSONType(analysisMetadata(bundle)),
		}, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("persist turn: %w", err)
	}

	metrics := observability.Current()
	if out.Advancement.LevelAdvanced {
		metrics.IncLevelAdvance(string(out.Advancement.Profile.Level))
	}
	for _, m := range out.NewMilestones {
		metrics.IncMilestoneAwarded(m.ID)
	}

	gen, err := s.generate(ctx, bundle.Response.SystemPrompt, st.history, message)
	if err != nil {
		s.log.Error("persona generation failed", "user_id", userID, "thread_id", thread.ID, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "respond_failed", errFailedToRespond)
	}
	out.Reply = gen.Text
	out.Usage = chat.Usage{PromptTokens: gen.InputTokens, CompletionTokens: gen.OutputTokens}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		var err error
		out.AssistantMessage, err = s.appendMessage(txc, thread.ID, &chat.ChatMessage{
			UserID:           userID,
			Role:             chat.RoleAssistant,
			Content:          gen.Text,
			Model:            gen.Model,
			PromptTokens:     gen.InputTokens,
			CompletionTokens: gen.OutputTokens,
			Metadata:         datatypes.NewJSONType(replyMetadata(bundle, out.Usage)),
		}, s.now().UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("persist reply: %w", err)
	}

	s.log.Info("persona reply",
		"user_id", userID,
		"thread_id", thread.ID,
		"level", out.Advancement.Profile.Level,
		"level_advanced", out.Advancement.LevelAdvanced,
		"milestones", len(out.NewMilestones),
		"prompt_tokens", gen.InputTokens,
		"completion_tokens", gen.OutputTokens,
	)
	return out, nil
}

func (s *personaService) resolveThread(ctx context.Context, userID, threadID uuid.UUID, message, locale string) (*chat.ChatThread, error) {
	rc := dbctx.Context{Ctx: ctx}
	if threadID != uuid.Nil {
		return s.threads.GetForUser(rc, threadID, userID)
	}
	title := message
	if utf8.RuneCountInString(title) > threadTitleRunes {
		title = string([]rune(title)[:threadTitleRunes]) + "..."
	}
	rows, err := s.threads.Create(rc, []*chat.ChatThread{{
		UserID: userID,
		Title:  title,
		Locale: s.resolveLocale(locale, "", ""),
	}})
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	return rows[0], nil
}

// advanceProfile re-applies the assessment to the locked row so concurrent
// turns of the same user never lose counters.
func (s *personaService) advanceProfile(txc dbctx.Context, userID uuid.UUID, assessed hermetic.SpiritualLevel, in RespondInput, locale string, now time.Time) (progress.Advancement, error) {
	row, err := s.profiles.LockByUserID(txc, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		row = &profile.SpiritualProfile{UserID: userID, JourneyStartedAt: now}
		row.Apply(hermetic.DefaultSpiritualLevel())
	} else if err != nil {
		return progress.Advancement{}, fmt.Errorf("lock profile: %w", err)
	}

	adv, err := progress.Advance(row.SpiritualLevel(), assessed)
	if err != nil {
		return progress.Advancement{}, err
	}
	row.Apply(adv.Profile)
	row.LastActiveAt = now
	if strings.TrimSpace(in.Locale) != "" {
		row.Locale = locale
	}
	if in.Preferences.Formality != "" {
		row.PreferredFormality = string(in.Preferences.Formality)
	}
	if in.Preferences.TeachingApproach != "" {
		row.PreferredTeaching = string(in.Preferences.TeachingApproach)
	}
	if err := s.profiles.Upsert(txc, row); err != nil {
		return progress.Advancement{}, fmt.Errorf("save profile: %w", err)
	}
	return adv, nil
}

func (s *personaService) recordActivity(txc dbctx.Context, userID uuid.UUID, adv progress.Advancement, assessed hermetic.SpiritualLevel, now time.Time) (StreakView, []MilestoneView, error) {
	if err := s.activities.Record(txc, &profile.UserActivity{UserID: userID, Kind: profile.ActivityMessage, OccurredAt: now}); err != nil {
		return StreakView{}, nil, fmt.Errorf("record activity: %w", err)
	}
	if assessed.Progression.PracticesCompleted > 0 {
		if err := s.activities.Record(txc, &profile.UserActivity{UserID: userID, Kind: profile.ActivityPractice, OccurredAt: now}); err != nil {
			return StreakView{}, nil, fmt.Errorf("record practice: %w", err)
		}
	}

	streak, err := s.streaks(txc, userID, now)
	if err != nil {
		return StreakView{}, nil, err
	}
	conversations, err := s.threads.CountByUser(txc, userID)
	if err != nil {
		return StreakView{}, nil, fmt.Errorf("count threads: %w", err)
	}
	achievedRows, err := s.milestones.ListByUser(txc, userID)
	if err != nil {
		return StreakView{}, nil, fmt.Errorf("list milestones: %w", err)
	}
	achieved := make(map[string]bool, len(achievedRows))
	for _, r := range achievedRows {
		achieved[r.MilestoneID] = true
	}

	candidates := progress.EvaluateMilestones(progress.MilestoneMetrics{
		ConversationCount:   int(conversations),
		CurrentStreak:       streak.Current,
		LongestStreak:       streak.Longest,
		PrinciplesStudied:   len(adv.Profile.Progression.PrinciplesStudied),
		TransformationScore: adv.Profile.Progression.TransformationScore,
	}, achieved)
	if len(candidates) == 0 {
		return streak, []MilestoneView{}, nil
	}
	ids := make([]string, 0, len(candidates))
	for _, m := range candidates {
		ids = append(ids, m.ID)
	}
	awarded, err := s.milestones.Award(txc, userID, ids, now)
	if err != nil {
		return StreakView{}, nil, err
	}
	views := make([]MilestoneView, 0, len(awarded))
	for _, id := range awarded {
		if m, ok := progress.MilestoneByID(id); ok {
			views = append(views, milestoneView(m, now))
		}
	}
	return streak, views, nil
}

func (s *personaService) streaks(dbc dbctx.Context, userID uuid.UUID, now time.Time) (StreakView, error) {
	ts, err := s.activities.ListTimestamps(dbc, userID, time.Time{})
	if err != nil {
		return StreakView{}, fmt.Errorf("list activity: %w", err)
	}
	return StreakView{
		Current: progress.CalculateStreak(ts, now, progress.DefaultStreakWindowDays),
		Longest: progress.CalculateLongestStreak(ts, now.Location()),
	}, nil
}

// appendMessage assigns the next per-thread sequence number under the thread lock.
func (s *personaService) appendMessage(txc dbctx.Context, threadID uuid.UUID, msg *chat.ChatMessage, at time.Time) (*chat.ChatMessage, error) {
	th, err := s.threads.LockByID(txc, threadID)
	if err != nil {
		return nil, fmt.Errorf("lock thread: %w", err)
	}
	msg.ThreadID = threadID
	msg.Seq = th.NextSeq + 1
	if _, err := s.messages.Create(txc, []*chat.ChatMessage{msg}); err != nil {
		return nil, fmt.Errorf("create %s message: %w", msg.Role, err)
	}
	if err := s.threads.UpdateFields(txc, threadID, map[string]interface{}{
		"next_seq":        msg.Seq,
		"last_message_at": at,
	}); err != nil {
		return nil, fmt.Errorf("bump thread: %w", err)
	}
	return msg, nil
}

func (s *personaService) generate(ctx context.Context, system string, history []*chat.ChatMessage, message string) (openai.TextResult, error) {
	ctx, span := tracer.Start(ctx, "PersonaService.generate")
	msgs := make([]openai.Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, openai.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, openai.Message{Role: openai.RoleUser, Content: message})
	res, err := s.generator.GenerateText(ctx, system, msgs)
	if err == nil {
		span.SetAttributes(
			attribute.String("model", res.Model),
			attribute.Int("prompt_tokens", res.InputTokens),
			attribute.Int("completion_tokens", res.OutputTokens),
		)
	}
	endSpan(span, err)
	return res, err
}

func (s *personaService) Preview(dbc dbctx.Context, in RespondInput) (_ *hermes.Bundle, err error) {
	ctx, span := tracer.Start(ctxutil.Default(dbc.Ctx), "PersonaService.Preview")
	defer func() { endSpan(span, err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	message, err := normalizeMessage(in.Message)
	if err != nil {
		return nil, err
	}
	if err := validatePreferences(in.Preferences); err != nil {
		return nil, err
	}
	threadLocale := ""
	if in.ThreadID != uuid.Nil {
		th, err := s.threads.GetForUser(dbctx.Context{Ctx: ctx}, in.ThreadID, userID)
		if err != nil {
			return nil, err
		}
		threadLocale = th.Locale
	}
	st, err := s.loadState(ctx, userID, in.ThreadID)
	if err != nil {
		return nil, err
	}
	bundle, err := s.analyze(ctx, s.buildRequest(st, in, message, threadLocale))
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (s *personaService) Guidance(dbc dbctx.Context, in GuidanceInput) (_ hermetic.TransformationGuidance, err error) {
	ctx, span := tracer.Start(ctxutil.Default(dbc.Ctx), "PersonaService.Guidance")
	defer func() { endSpan(span, err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return hermetic.TransformationGuidance{}, err
	}
	challengeType, err := hermetic.ParseChallengeType(in.Type)
	if err != nil {
		return hermetic.TransformationGuidance{}, err
	}
	severity, err := hermetic.ParseSeverity(in.Severity)
	if err != nil {
		return hermetic.TransformationGuidance{}, err
	}
	row, err := s.profiles.GetByUserID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return hermetic.TransformationGuidance{}, fmt.Errorf("load profile: %w", err)
	}
	level := row.SpiritualLevel().Level
	span.SetAttributes(
		attribute.String("challenge_type", string(challengeType)),
		attribute.String("severity", string(severity)),
		attribute.String("level", string(level)),
	)
	return s.guidance.Get(ctx, hermetic.LifeChallenge{
		Type:        challengeType,
		Severity:    severity,
		Description: strings.TrimSpace(in.Description),
	}, level)
}

func (s *personaService) Progress(dbc dbctx.Context) (_ *ProgressReport, err error) {
	ctx, span := tracer.Start(ctxutil.Default(dbc.Ctx), "PersonaService.Progress")
	defer func() { endSpan(span, err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	var (
		row    *profile.SpiritualProfile
		rows   []*profile.MilestoneAchievement
		streak StreakView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.profiles.GetByUserID(dbctx.Context{Ctx: gctx}, userID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("load profile: %w", err)
		}
		row = r
		return nil
	})
	g.Go(func() error {
		var err error
		rows, err = s.milestones.ListByUser(dbctx.Context{Ctx: gctx}, userID)
		return err
	})
	g.Go(func() error {
		var err error
		streak, err = s.streaks(dbctx.Context{Ctx: gctx}, userID, s.now().UTC())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	level := row.SpiritualLevel()
	ratio, err := progress.ProgressToNextLevel(progress.Metrics{
		Score:              level.Score,
		PracticesCompleted: level.Progression.PracticesCompleted,
		PrinciplesStudied:  level.Progression.PrinciplesStudied,
	}, level.Level)
	if err != nil {
		return nil, err
	}
	report := &ProgressReport{
		SpiritualLevel:      level,
		ProgressToNextLevel: ratio,
		Streak:              streak,
		Milestones:          make([]MilestoneView, 0, len(rows)),
	}
	if next, ok := level.Level.Next(); ok {
		report.NextLevel = next
		if req, ok := progress.RequirementFor(level.Level); ok {
			report.Requirement = &req
		}
	}
	if row != nil {
		started := row.JourneyStartedAt
		report.JourneyStartedAt = &started
	}
	for _, r := range rows {
		if m, ok := progress.MilestoneByID(r.MilestoneID); ok {
			report.Milestones = append(report.Milestones, milestoneView(m, r.AchievedAt))
		}
	}
	return report, nil
}

func (s *personaService) Erase(dbc dbctx.Context) (err error) {
	ctx, span := tracer.Start(ctxutil.Default(dbc.Ctx), "PersonaService.Erase")
	defer func() { endSpan(span, err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txc := dbctx.Context{Ctx: ctx, Tx: tx}
		steps := []struct {
			name string
			fn   func(dbctx.Context, uuid.UUID) error
		}{
			{"messages", s.messages.DeleteByUserID},
			{"threads", s.threads.DeleteByUserID},
			{"milestones", s.milestones.DeleteByUserID},
			{"activities", s.activities.DeleteByUserID},
			{"profile", s.profiles.DeleteByUserID},
		}
		for _, step := range steps {
			if err := step.fn(txc, userID); err != nil {
				return fmt.Errorf("erase %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("persona data erased", "user_id", userID)
	return nil
}

func milestoneView(m progress.Milestone, at time.Time) MilestoneView {
	return MilestoneView{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Title:       m.Title,
		Description: m.Description,
		AchievedAt:  at,
	}
}

func challengeInsight(challenges []hermetic.LifeChallenge) string {
	if len(challenges) == 0 {
		return ""
	}
	c := challenges[0]
	return fmt.Sprintf("the seeker spoke of a %s %s challenge", c.Severity, c.Type)
}

func analysisMetadata(b hermes.Bundle) chat.MessageMetadata {
	return chat.MessageMetadata{
		Kind: chat.MetadataAnalysis,
		Emotional: &chat.EmotionalContext{
			EmotionalState: b.Analysis.EmotionalState,
			Principles:     append([]hermetic.PrincipleID{}, b.Principles...),
			Challenges:     append([]hermetic.LifeChallenge{}, b.Analysis.Challenges...),
			Insight:        challengeInsight(b.Analysis.Challenges),
		},
	}
}

func replyMetadata(b hermes.Bundle, usage chat.Usage) chat.MessageMetadata {
	story := b.Response.StorytellingElements
	v := b.Voice
	return chat.MessageMetadata{
		Kind:       chat.MetadataReply,
		Principles: append([]hermetic.PrincipleID{}, b.Principles...),
		Story:      &story,
		Voice:      &v,
		Usage:      &usage,
	}
}

// historyTurns maps stored messages to engine history, oldest first.
func historyTurns(msgs []*chat.ChatMessage) []hermetic.HistoryTurn {
	out := make([]hermetic.HistoryTurn, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		turn := hermetic.HistoryTurn{Role: m.Role, Content: m.Content}
		meta := m.Metadata.Data()
		switch meta.Kind {
		case chat.MetadataAnalysis:
			if e := meta.Emotional; e != nil {
				if e.EmotionalState != nil {
					turn.Emotion = e.EmotionalState.Primary
				}
				turn.Principles = e.Principles
				turn.Insight = e.Insight
			}
		case chat.MetadataReply:
			turn.Principles = meta.Principles
		}
		out = append(out, turn)
	}
	return out
}
