package classifier

import (
	"math"
	"sort"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

const (
	maxSecondary = 2
	// An emotion carried over from the previous turn counts for half.
	lingeringFactor = 0.5
)

type emotionCandidate struct {
	label     hermetic.EmotionLabel
	order     int
	matched   []string
	intensity float64
	score     float64
}

func scoreEmotions(norm string) []emotionCandidate {
	var out []emotionCandidate
	for i, row := range emotionTable {
		c := emotionCandidate{label: row.label, order: i}
		tiers := []struct {
			words  []string
			weight float64
		}{
			{row.positive, weightPositive},
			{row.negative, weightNegative},
			{row.intensity, weightIntensity},
		}
		for _, tier := range tiers {
			for _, kw := range tier.words {
				if containsWord(norm, kw) {
					c.matched = append(c.matched, kw)
					c.intensity += tier.weight
				}
			}
		}
		if len(c.matched) == 0 {
			continue
		}
		c.intensity = round2(math.Min(c.intensity, 1.0))
		confidence := math.Min(float64(len(c.matched))/3.0, 1.0)
		c.score = confidence * c.intensity
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].order < out[j].order
	})
	return out
}

// ClassifyEmotion returns nil when no emotion category matches. Empty text
// never yields an emotion. When the current text is non-empty but neutral,
// the most recent history turn is consulted at half intensity.
func ClassifyEmotion(text string, history ...string) *hermetic.EmotionalState {
	if isBlank(text) {
		return nil
	}
	if state := classifyOne(text); state != nil {
		return state
	}
	for i := len(history) - 1; i >= 0; i-- {
		if isBlank(history[i]) {
			continue
		}
		state := classifyOne(history[i])
		if state == nil {
			return nil
		}
		state.Intensity = round2(state.Intensity * lingeringFactor)
		return state
	}
	return nil
}

func classifyOne(text string) *hermetic.EmotionalState {
	candidates := scoreEmotions(normalize(text))
	if len(candidates) == 0 {
		return nil
	}
	top := candidates[0]
	state := &hermetic.EmotionalState{
		Primary:   top.label,
		Intensity: top.intensity,
		Context: firstSentenceWith(text, func(norm string) bool {
			for _, kw := range top.matched {
				if containsWord(norm, kw) {
					return true
				}
			}
			return false
		}),
	}
	for _, c := range candidates[1:] {
		if len(state.Secondary) == maxSecondary {
			break
		}
		state.Secondary = append(state.Secondary, c.label)
	}
	return state
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
