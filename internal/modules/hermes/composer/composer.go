package composer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

const (
	MaxPrinciples   = 3
	MaxHistoryTurns = 5
)

// Rand is satisfied by *math/rand/v2.Rand.
type Rand interface {
	IntN(n int) int
}

// Locales supplies the cultural-adaptation block. Implementations fall back
// to English for unsupported codes.
type Locales interface {
	CulturalAdaptation(code string) string
	LanguageName(code string) string
}

type Input struct {
	EmotionalState     *hermetic.EmotionalState
	SpiritualLevel     hermetic.SpiritualLevel
	Challenges         []hermetic.LifeChallenge
	RelevantPrinciples []hermetic.PrincipleID
	History            []hermetic.HistoryTurn
	Locale             string
	Preferences        Preferences
	Approach           hermetic.ResponseApproach
}

type Composer struct {
	locales Locales

	mu  sync.Mutex
	rnd Rand
}

// New accepts nil for either collaborator: nil locales means English only,
// nil rnd always picks the first greeting.
func New(locales Locales, rnd Rand) *Composer {
	return &Composer{locales: locales, rnd: rnd}
}

func (c *Composer) greeting() string {
	if c.rnd == nil {
		return greetings[0]
	}
	c.mu.Lock()
	i := c.rnd.IntN(len(greetings))
	c.mu.Unlock()
	if i < 0 || i >= len(greetings) {
		i = 0
	}
	return greetings[i]
}

func validateInput(in Input) error {
	if err := in.EmotionalState.Validate(); err != nil {
		return err
	}
	if err := in.SpiritualLevel.Validate(); err != nil {
		return err
	}
	for _, ch := range in.Challenges {
		if err := ch.Validate(); err != nil {
			return err
		}
	}
	if in.Preferences.Formality != "" && !in.Preferences.Formality.Valid() {
		return fmt.Errorf("formality preference %q: %w", in.Preferences.Formality, apperrors.ErrInvalidArgument)
	}
	if in.Preferences.TeachingApproach != "" && !in.Preferences.TeachingApproach.Valid() {
		return fmt.Errorf("teaching preference %q: %w", in.Preferences.TeachingApproach, apperrors.ErrInvalidArgument)
	}
	if in.Approach != "" && !in.Approach.Valid() {
		return fmt.Errorf("response approach %q: %w", in.Approach, apperrors.ErrInvalidArgument)
	}
	return nil
}

// Compose assembles the system prompt. Missing optional inputs fall back to
// generic text; only invalid enum values or out-of-range numbers are errors.
func (c *Composer) Compose(in Input) (hermetic.PersonaResponse, error) {
	if in.SpiritualLevel.Level == "" {
		in.SpiritualLevel = hermetic.DefaultSpiritualLevel()
	}
	if err := validateInput(in); err != nil {
		return hermetic.PersonaResponse{}, err
	}

	principles := resolvePrinciples(in.RelevantPrinciples)
	tone := SelectTone(in.Preferences, in.SpiritualLevel.Level, in.EmotionalState, in.Challenges)
	summary := SummarizeHistory(in.History)

	blocks := []string{
		fmt.Sprintf(identityBlock, c.greeting()),
		levelBlock(in.SpiritualLevel, tone, in.Approach),
		emotionBlock(in.EmotionalState),
		challengeBlock(in.Challenges),
		principleBlock(principles, in.SpiritualLevel.Level),
		historyBlock(summary),
		c.localeBlock(in.Locale),
	}

	challenges := in.Challenges
	if challenges == nil {
		challenges = []hermetic.LifeChallenge{}
	}
	return hermetic.PersonaResponse{
		SystemPrompt: strings.Join(blocks, "\n\n"),
		Context: hermetic.ResponseContext{
			EmotionalState:              in.EmotionalState,
			SpiritualLevel:              in.SpiritualLevel,
			Challenges:                  challenges,
			RelevantPrinciples:          principles,
			PreviousInteractionsSummary: summary,
		},
		Tone: tone,
	}, nil
}

// resolvePrinciples drops unknown ids and keeps the first three; an empty
// result becomes the default trio.
func resolvePrinciples(ids []hermetic.PrincipleID) []hermetic.PrincipleID {
	out := make([]hermetic.PrincipleID, 0, MaxPrinciples)
	seen := map[hermetic.PrincipleID]bool{}
	for _, id := range ids {
		if len(out) == MaxPrinciples {
			break
		}
		if _, ok := knowledge.Lookup(id); !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		return append(out, hermetic.DefaultPrinciples...)
	}
	return out
}

func levelBlock(level hermetic.SpiritualLevel, tone hermetic.Tone, approach hermetic.ResponseApproach) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Seeker's Level\nLevel: %s (score %d/%d).\n", level.Level, level.Score, hermetic.MaxScore)
	b.WriteString(levelAdaptation[level.Level])
	fmt.Fprintf(&b, "\nTone: %s formality, %s warmth. %s", tone.Formality, tone.Warmth, toneGuidance[tone.TeachingApproach])
	if text, ok := approachGuidance[approach]; ok {
		fmt.Fprintf(&b, "\nApproach: %s", text)
	}
	return b.String()
}

func emotionBlock(state *hermetic.EmotionalState) string {
	g, ok := emotionGuidance{}, false
	if state != nil {
		g, ok = emotionBlocks[state.Primary]
	}
	if !ok {
		return "# Emotional Guidance\n" + genericEmotionGuidance
	}
	text := g.Low
	if state.IsHigh() {
		text = g.High
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Emotional Guidance\nThe seeker appears %s (intensity %.2f).", state.Primary, state.Intensity)
	if len(state.Secondary) > 0 {
		names := make([]string, 0, len(state.Secondary))
		for _, e := range state.Secondary {
			names = append(names, string(e))
		}
		fmt.Fprintf(&b, " Undertones of %s are also present.", strings.Join(names, " and "))
	}
	b.WriteString("\n")
	b.WriteString(text)
	return b.String()
}

func challengeBlock(challenges []hermetic.LifeChallenge) string {
	if len(challenges) == 0 {
		return "# Life Challenges\n" + noChallengeGuidance
	}
	paras := make([]string, 0, len(challenges))
	for _, ch := range challenges {
		var b strings.Builder
		fmt.Fprintf(&b, "A %s %s challenge: %q", ch.Severity, ch.Type, ch.Description)
		if len(ch.HermeticApproach) > 0 {
			b.WriteString("\nHermetic approach:")
			for _, step := range ch.HermeticApproach {
				b.WriteString("\n- ")
				b.WriteString(step)
			}
		}
		paras = append(paras, b.String())
	}
	return "# Life Challenges\n" + strings.Join(paras, "\n\n")
}

func principleBlock(ids []hermetic.PrincipleID, level hermetic.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Principles To Weave In (%s depth)", hermetic.TierForLevel(level))
	for _, id := range ids {
		p, _ := knowledge.Lookup(id)
		text, _ := knowledge.PrincipleByLevel(id, level)
		fmt.Fprintf(&b, "\n\n## %s\n\"%s\"\n%s", p.ShortName(), p.Axiom, text)
	}
	return b.String()
}

// SummarizeHistory condenses the last five turns into one line. Turns that
// carry no insight, principle or emotion are skipped.
func SummarizeHistory(history []hermetic.HistoryTurn) string {
	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}
	parts := make([]string, 0, len(history))
	for _, turn := range history {
		if s := summarizeTurn(turn); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

func summarizeTurn(turn hermetic.HistoryTurn) string {
	if insight := strings.TrimSpace(turn.Insight); insight != "" {
		return insight
	}
	var names []string
	for _, id := range turn.Principles {
		if p, ok := knowledge.Lookup(id); ok {
			names = append(names, p.ShortName())
		}
	}
	who := "the seeker"
	if strings.EqualFold(turn.Role, "assistant") {
		who = "you"
	}
	switch {
	case len(names) > 0:
		return fmt.Sprintf("%s explored %s", who, strings.Join(names, ", "))
	case turn.Emotion.Valid():
		return fmt.Sprintf("%s felt %s", who, turn.Emotion)
	default:
		return ""
	}
}

func historyBlock(summary string) string {
	if summary == "" {
		return "# Previous Interactions\n" + noHistorySummary
	}
	return "# Previous Interactions\nEarlier in this conversation " + summary + ". Build on this rather than repeating it."
}

func (c *Composer) localeBlock(code string) string {
	name, adaptation := fallbackLanguageName, fallbackAdaptation
	if c.locales != nil {
		if n := c.locales.LanguageName(code); n != "" {
			name = n
		}
		if a := c.locales.CulturalAdaptation(code); a != "" {
			adaptation = a
		}
	}
	return fmt.Sprintf("# Cultural Adaptation\nRespond in %s.\n%s", name, adaptation)
}
