package narrative

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
)

func TestSettingIndex(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 14: 0, 15: 1, 20: 1, 44: 2, 45: 3, 74: 4, 75: 5, 89: 5, 90: 5, 100: 5}
	for score, want := range cases {
		if got := SettingIndex(score); got != want {
			t.Fatalf("SettingIndex(%d): want=%d got=%d", score, want, got)
		}
	}
}

func TestGenerate(t *testing.T) {
	level := hermetic.SpiritualLevel{Level: hermetic.LevelAdept, Score: 65}
	state := &hermetic.EmotionalState{Primary: hermetic.EmotionAnxious, Intensity: 0.8}
	ids := []hermetic.PrincipleID{hermetic.Vibration, "unknown", hermetic.Rhythm, hermetic.Gender}

	got := Generate(level, state, ids)

	if got.Setting != settings[4] {
		t.Fatalf("setting: want=%q got=%q", settings[4], got.Setting)
	}
	wantProps := append(append([]string(nil), baseProps...), levelProps[hermetic.LevelAdept]...)
	if diff := cmp.Diff(wantProps, got.Props); diff != "" {
		t.Fatalf("props (-want +got):\n%s", diff)
	}
	if got.Atmosphere != atmospheres[hermetic.MoodCalming] {
		t.Fatalf("atmosphere: got=%q", got.Atmosphere)
	}
	vib, _ := knowledge.Lookup(hermetic.Vibration)
	rhy, _ := knowledge.Lookup(hermetic.Rhythm)
	if diff := cmp.Diff([]string{baseSymbol, vib.Symbol, rhy.Symbol}, got.Symbolism); diff != "" {
		t.Fatalf("symbolism (-want +got):\n%s", diff)
	}
}

func TestGenerateDefaults(t *testing.T) {
	got := Generate(hermetic.SpiritualLevel{}, nil, nil)
	if got.Setting != settings[0] {
		t.Fatalf("setting: got=%q", got.Setting)
	}
	if len(got.Props) != len(baseProps)+maxLevelProps {
		t.Fatalf("props: want=%d got=%d", len(baseProps)+maxLevelProps, len(got.Props))
	}
	if got.Atmosphere != atmospheres[hermetic.MoodSerene] {
		t.Fatalf("atmosphere: got=%q", got.Atmosphere)
	}
	if diff := cmp.Diff([]string{baseSymbol}, got.Symbolism); diff != "" {
		t.Fatalf("symbolism (-want +got):\n%s", diff)
	}
}

func TestAtmospherePriority(t *testing.T) {
	cases := map[hermetic.EmotionLabel]hermetic.Mood{
		hermetic.EmotionAnxious:  hermetic.MoodCalming,
		hermetic.EmotionSad:      hermetic.MoodCompassionate,
		hermetic.EmotionExcited:  hermetic.MoodGrounding,
		hermetic.EmotionAngry:    hermetic.MoodSerene,
		hermetic.EmotionGrateful: hermetic.MoodSerene,
	}
	for e, mood := range cases {
		got := Generate(hermetic.DefaultSpiritualLevel(), &hermetic.EmotionalState{Primary: e, Intensity: 0.3}, nil)
		if got.Atmosphere != atmospheres[mood] {
			t.Fatalf("%s: want mood %s", e, mood)
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(Generate(hermetic.DefaultSpiritualLevel(), nil, []hermetic.PrincipleID{hermetic.Mentalism}))
	if !strings.HasPrefix(out, "# Storytelling\nSetting: ") {
		t.Fatalf("unexpected render prefix: %q", out)
	}
	if !strings.Contains(out, "the Emerald Tablet") || strings.HasSuffix(out, "\n") {
		t.Fatalf("unexpected render: %q", out)
	}
}
