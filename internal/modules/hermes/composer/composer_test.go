package composer

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/platform/locale"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func anxiousInput() Input {
	return Input{
		EmotionalState: &hermetic.EmotionalState{Primary: hermetic.EmotionAnxious, Intensity: 0.9},
		SpiritualLevel: hermetic.SpiritualLevel{Level: hermetic.LevelStudent, Score: 42},
		Challenges: []hermetic.LifeChallenge{{
			Type:             hermetic.ChallengeCareer,
			Description:      "I feel so anxious and overwhelmed about my job",
			Severity:         hermetic.SeverityModerate,
			HermeticApproach: []string{"Apply Cause and Effect to your work habits"},
		}},
		RelevantPrinciples: []hermetic.PrincipleID{hermetic.Mentalism, hermetic.Rhythm},
		Locale:             "en",
	}
}

func TestComposeBlockOrder(t *testing.T) {
	c := New(locale.New(nil), nil)
	resp, err := c.Compose(anxiousInput())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	headers := []string{
		"# Identity",
		"# Seeker's Level",
		"# Emotional Guidance",
		"# Life Challenges",
		"# Principles To Weave In",
		"# Previous Interactions",
		"# Cultural Adaptation",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(resp.SystemPrompt, h)
		if idx < 0 {
			t.Fatalf("missing block %q", h)
		}
		if idx <= last {
			t.Fatalf("block %q out of order", h)
		}
		last = idx
	}
	if !strings.Contains(resp.SystemPrompt, emotionBlocks[hermetic.EmotionAnxious].High) {
		t.Fatalf("expected high-intensity anxious guidance")
	}
	if !strings.Contains(resp.SystemPrompt, "- Apply Cause and Effect to your work habits") {
		t.Fatalf("expected challenge approach bullet")
	}
	if !strings.Contains(resp.SystemPrompt, "## Mentalism") || !strings.Contains(resp.SystemPrompt, "## Rhythm") {
		t.Fatalf("expected principle sections")
	}
	if !strings.Contains(resp.SystemPrompt, "(intermediate depth)") {
		t.Fatalf("student should receive intermediate explanations")
	}
}

func TestComposeEmotionThreshold(t *testing.T) {
	c := New(nil, nil)
	in := anxiousInput()
	in.EmotionalState.Intensity = 0.69
	resp, err := c.Compose(in)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(resp.SystemPrompt, emotionBlocks[hermetic.EmotionAnxious].Low) {
		t.Fatalf("0.69 should use the low-intensity guidance")
	}
	in.EmotionalState.Intensity = 0.7
	resp, _ = c.Compose(in)
	if !strings.Contains(resp.SystemPrompt, emotionBlocks[hermetic.EmotionAnxious].High) {
		t.Fatalf("0.7 should use the high-intensity guidance")
	}
}

func TestComposeDegradesGracefully(t *testing.T) {
	c := New(nil, nil)
	resp, err := c.Compose(Input{})
	if err != nil {
		t.Fatalf("Compose(empty): %v", err)
	}
	for _, want := range []string{genericEmotionGuidance, noChallengeGuidance, noHistorySummary, fallbackAdaptation} {
		if !strings.Contains(resp.SystemPrompt, want) {
			t.Fatalf("expected generic text %q", want)
		}
	}
	if resp.Context.SpiritualLevel.Level != hermetic.LevelSeeker || resp.Context.SpiritualLevel.Score != hermetic.BaseScore {
		t.Fatalf("expected fresh seeker defaults, got=%+v", resp.Context.SpiritualLevel)
	}
	if diff := cmp.Diff(hermetic.DefaultPrinciples, resp.Context.RelevantPrinciples); diff != "" {
		t.Fatalf("default principles (-want +got):\n%s", diff)
	}
	if resp.Context.Challenges == nil {
		t.Fatalf("challenges should be an empty slice, not nil")
	}
	if resp.Context.PreviousInteractionsSummary != "" {
		t.Fatalf("summary: want empty got=%q", resp.Context.PreviousInteractionsSummary)
	}
}

func TestComposeUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	locales := locale.New(nil)
	c := New(locales, nil)
	in := anxiousInput()
	in.Locale = "xx"
	resp, err := c.Compose(in)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want := "# Cultural Adaptation\nRespond in English.\n" + locales.CulturalAdaptation("en")
	if !strings.HasSuffix(resp.SystemPrompt, want) {
		t.Fatalf("locale block: want suffix %q", want)
	}
}

func TestComposeLocalizedBlock(t *testing.T) {
	locales := locale.New(nil)
	in := anxiousInput()
	in.Locale = "es-MX"
	resp, err := New(locales, nil).Compose(in)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(resp.SystemPrompt, "Respond in Spanish.\n"+locales.CulturalAdaptation("es")) {
		t.Fatalf("expected Spanish adaptation")
	}
}

func TestComposeDeterministicWithSeededRand(t *testing.T) {
	in := anxiousInput()
	a, err := New(nil, rand.New(rand.NewPCG(7, 7))).Compose(in)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, _ := New(nil, rand.New(rand.NewPCG(7, 7))).Compose(in)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed should compose identically (-a +b):\n%s", diff)
	}

	for i := range greetings {
		resp, _ := New(nil, fixedRand(i)).Compose(in)
		if !strings.Contains(resp.SystemPrompt, greetings[i]) {
			t.Fatalf("greeting %d not selected", i)
		}
	}
}

func TestComposeRejectsInvalidInput(t *testing.T) {
	c := New(nil, nil)
	cases := map[string]func(*Input){
		"emotion":   func(in *Input) { in.EmotionalState.Primary = "bored" },
		"intensity": func(in *Input) { in.EmotionalState.Intensity = 1.5 },
		"level":     func(in *Input) { in.SpiritualLevel.Level = "GURU" },
		"score":     func(in *Input) { in.SpiritualLevel.Score = -1 },
		"challenge": func(in *Input) { in.Challenges[0].Type = "weather" },
		"formality": func(in *Input) { in.Preferences.Formality = "stiff" },
		"teaching":  func(in *Input) { in.Preferences.TeachingApproach = "lecture" },
		"approach":  func(in *Input) { in.Approach = "loud" },
	}
	for name, mutate := range cases {
		in := anxiousInput()
		mutate(&in)
		if _, err := c.Compose(in); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("%s: want ErrInvalidArgument got=%v", name, err)
		}
	}
}

func TestComposePrinciplesCappedAndFiltered(t *testing.T) {
	in := anxiousInput()
	in.RelevantPrinciples = []hermetic.PrincipleID{"alchemy", hermetic.Gender, hermetic.Gender, hermetic.Polarity, hermetic.Rhythm, hermetic.Causation}
	resp, err := New(nil, nil).Compose(in)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want := []hermetic.PrincipleID{hermetic.Gender, hermetic.Polarity, hermetic.Rhythm}
	if diff := cmp.Diff(want, resp.Context.RelevantPrinciples); diff != "" {
		t.Fatalf("principles (-want +got):\n%s", diff)
	}
	if strings.Contains(resp.SystemPrompt, "## Cause and Effect") {
		t.Fatalf("only three principles may be explained")
	}
}

func TestSelectTone(t *testing.T) {
	high := &hermetic.EmotionalState{Primary: hermetic.EmotionSad, Intensity: 0.8}
	mid := &hermetic.EmotionalState{Primary: hermetic.EmotionSad, Intensity: 0.5}
	major := []hermetic.LifeChallenge{{Type: hermetic.ChallengeHealth, Severity: hermetic.SeverityMajor}}
	minor := []hermetic.LifeChallenge{{Type: hermetic.ChallengeHealth, Severity: hermetic.SeverityMinor}}

	cases := []struct {
		name       string
		pref       Preferences
		level      hermetic.Level
		state      *hermetic.EmotionalState
		challenges []hermetic.LifeChallenge
		want       hermetic.Tone
	}{
		{"seeker defaults", Preferences{}, hermetic.LevelSeeker, nil, nil,
			hermetic.Tone{Formality: hermetic.FormalityBalanced, Warmth: hermetic.WarmthGentle, TeachingApproach: hermetic.TeachingStorytelling}},
		{"master defaults", Preferences{}, hermetic.LevelMaster, nil, nil,
			hermetic.Tone{Formality: hermetic.FormalityFormal, Warmth: hermetic.WarmthGentle, TeachingApproach: hermetic.TeachingContemplative}},
		{"casual adept", Preferences{Formality: hermetic.FormalityCasual}, hermetic.LevelAdept, mid, nil,
			hermetic.Tone{Formality: hermetic.FormalityBalanced, Warmth: hermetic.WarmthWarm, TeachingApproach: hermetic.TeachingExperiential}},
		{"casual student", Preferences{Formality: hermetic.FormalityCasual}, hermetic.LevelStudent, high, nil,
			hermetic.Tone{Formality: hermetic.FormalityCasual, Warmth: hermetic.WarmthNurturing, TeachingApproach: hermetic.TeachingSocratic}},
		{"major challenge", Preferences{TeachingApproach: hermetic.TeachingSocratic}, hermetic.LevelSeeker, nil, major,
			hermetic.Tone{Formality: hermetic.FormalityBalanced, Warmth: hermetic.WarmthNurturing, TeachingApproach: hermetic.TeachingSocratic}},
		{"minor challenge", Preferences{Formality: hermetic.FormalityFormal}, hermetic.LevelSeeker, nil, minor,
			hermetic.Tone{Formality: hermetic.FormalityFormal, Warmth: hermetic.WarmthWarm, TeachingApproach: hermetic.TeachingStorytelling}},
	}
	for _, tc := range cases {
		got := SelectTone(tc.pref, tc.level, tc.state, tc.challenges)
		if got != tc.want {
			t.Fatalf("%s: want=%+v got=%+v", tc.name, tc.want, got)
		}
	}
}

func TestSummarizeHistory(t *testing.T) {
	history := []hermetic.HistoryTurn{
		{Role: "user", Insight: "too old to matter"},
		{Role: "user", Content: "hello"},
		{Role: "user", Emotion: hermetic.EmotionLost},
		{Role: "assistant", Principles: []hermetic.PrincipleID{hermetic.Polarity, hermetic.Rhythm}},
		{Role: "user", Insight: "realised the anger protects a fear of failure"},
		{Role: "assistant", Principles: []hermetic.PrincipleID{"unknown"}},
	}
	got := SummarizeHistory(history)
	want := "the seeker felt lost; you explored Polarity, Rhythm; realised the anger protects a fear of failure"
	if got != want {
		t.Fatalf("SummarizeHistory:\nwant=%q\ngot =%q", want, got)
	}

	resp, err := New(nil, nil).Compose(Input{History: history})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if resp.Context.PreviousInteractionsSummary != want {
		t.Fatalf("context summary: got=%q", resp.Context.PreviousInteractionsSummary)
	}
	if !strings.Contains(resp.SystemPrompt, "Earlier in this conversation "+want) {
		t.Fatalf("summary missing from prompt")
	}
}
