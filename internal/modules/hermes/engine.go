package hermes

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/classifier"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/composer"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/guidance"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/narrative"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/progress"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/voice"
)

// Request is everything the engine needs for one turn, already loaded by the
// caller. Profile may be zero for a user without a stored profile.
type Request struct {
	Message     string
	History     []hermetic.HistoryTurn
	Profile     hermetic.SpiritualLevel
	Locale      string
	Preferences composer.Preferences
}

type Bundle struct {
	Analysis    classifier.Analysis      `json:"analysis"`
	// Assessment is what this message alone contributes. Callers holding a
	// fresher profile re-apply it with progress.Advance.
	Assessment  hermetic.SpiritualLevel  `json:"assessment"`
	Advancement progress.Advancement     `json:"advancement"`
	Principles  []hermetic.PrincipleID   `json:"principles"`
	Response    hermetic.PersonaResponse `json:"response"`
	Voice       hermetic.VoiceContext    `json:"voice"`
}

type Engine struct {
	composer *composer.Composer
}

// NewEngine checks the static tables once and fails on any gap.
func NewEngine(locales composer.Locales, rnd composer.Rand) (*Engine, error) {
	if err := knowledge.Validate(); err != nil {
		return nil, err
	}
	if err := guidance.Validate(); err != nil {
		return nil, err
	}
	return &Engine{composer: composer.New(locales, rnd)}, nil
}

// Analyze runs classify, resolve, then compose and narrate concurrently.
func (e *Engine) Analyze(ctx context.Context, req Request) (Bundle, error) {
	if err := ctx.Err(); err != nil {
		return Bundle{}, err
	}

	analysis := classifier.Analyze(req.Message, userTurns(req.History)...)

	// The score sees the whole history but counters only grow by what this
	// message adds, so earlier turns are not counted twice.
	assessed := analysis.SpiritualLevel
	assessed.Progression = classifier.AssessSpiritualLevel(req.Message).Progression
	adv, err := progress.Advance(req.Profile, assessed)
	if err != nil {
		return Bundle{}, fmt.Errorf("advance profile: %w", err)
	}
	level := adv.Profile

	descriptions := make([]string, 0, len(analysis.Challenges))
	for _, ch := range analysis.Challenges {
		descriptions = append(descriptions, ch.Description)
	}
	principles := knowledge.Top(knowledge.FindRelevantPrinciples(req.Message, descriptions...), composer.MaxPrinciples)

	var (
		resp  hermetic.PersonaResponse
		story hermetic.StoryElements
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp, err = e.composer.Compose(composer.Input{
			EmotionalState:     analysis.EmotionalState,
			SpiritualLevel:     level,
			Challenges:         analysis.Challenges,
			RelevantPrinciples: principles,
			History:            req.History,
			Locale:             req.Locale,
			Preferences:        req.Preferences,
			Approach:           analysis.Insights.Approach,
		})
		return err
	})
	g.Go(func() error {
		story = narrative.Generate(level, analysis.EmotionalState, principles)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Bundle{}, fmt.Errorf("compose: %w", err)
	}

	resp.StorytellingElements = story
	resp.SystemPrompt = resp.SystemPrompt + "\n\n" + narrative.Render(story)

	return Bundle{
		Analysis:    analysis,
		Assessment:  assessed,
		Advancement: adv,
		Principles:  principles,
		Response:    resp,
		Voice:       voice.Derive(analysis.EmotionalState, level.Level, principles),
	}, nil
}

func userTurns(history []hermetic.HistoryTurn) []string {
	out := make([]string, 0, len(history))
	for _, t := range history {
		if strings.EqualFold(t.Role, "user") && strings.TrimSpace(t.Content) != "" {
			out = append(out, t.Content)
		}
	}
	return out
}
