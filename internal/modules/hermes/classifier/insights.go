package classifier

import "github.com/yungbote/hermes-backend/internal/domain/hermetic"

const compassionIntensity = 0.5

type Insights struct {
	NeedsCompassion              bool                      `json:"needs_compassion"`
	NeedsGuidance                bool                      `json:"needs_guidance"`
	NeedsEncouragement           bool                      `json:"needs_encouragement"`
	NeedsGrounding               bool                      `json:"needs_grounding"`
	ReadinessForAdvancedTeaching bool                      `json:"readiness_for_advanced_teaching"`
	Approach                     hermetic.ResponseApproach `json:"approach"`
}

// Analysis bundles every classifier output for one message.
type Analysis struct {
	EmotionalState *hermetic.EmotionalState `json:"emotional_state,omitempty"`
	SpiritualLevel hermetic.SpiritualLevel  `json:"spiritual_level"`
	Challenges     []hermetic.LifeChallenge `json:"challenges"`
	Insights       Insights                 `json:"insights"`
}

// Analyze runs every classifier stage over one message.
func Analyze(text string, history ...string) Analysis {
	state := ClassifyEmotion(text, history...)
	level := AssessSpiritualLevel(text, history...)
	challenges := DetectChallenges(text, EstimateSeverity(text, state))
	return Analysis{
		EmotionalState: state,
		SpiritualLevel: level,
		Challenges:     challenges,
		Insights:       DeriveInsights(state, level, challenges),
	}
}

// GetContextualInsights classifies the text and derives insights from the result.
func GetContextualInsights(text string, history ...string) Insights {
	return Analyze(text, history...).Insights
}

func DeriveInsights(state *hermetic.EmotionalState, level hermetic.SpiritualLevel, challenges []hermetic.LifeChallenge) Insights {
	var in Insights
	primary := hermetic.EmotionLabel("")
	intensity := 0.0
	if state != nil {
		primary = state.Primary
		intensity = state.Intensity
	}

	switch primary {
	case hermetic.EmotionSad, hermetic.EmotionAnxious, hermetic.EmotionAngry, hermetic.EmotionLost:
		in.NeedsCompassion = intensity >= compassionIntensity
	}
	for _, c := range challenges {
		if c.Severity.Rank() >= hermetic.SeverityMajor.Rank() {
			in.NeedsCompassion = true
		}
	}

	in.NeedsGuidance = len(challenges) > 0 || primary == hermetic.EmotionConfused || primary == hermetic.EmotionLost

	if level.Level == hermetic.LevelSeeker {
		switch primary {
		case hermetic.EmotionSad, hermetic.EmotionLost, hermetic.EmotionConfused:
			in.NeedsEncouragement = true
		}
		if len(challenges) > 0 {
			in.NeedsEncouragement = true
		}
	}

	if primary == hermetic.EmotionAnxious || primary == hermetic.EmotionExcited {
		in.NeedsGrounding = intensity >= hermetic.HighIntensity
	}

	in.ReadinessForAdvancedTeaching = level.Level.Rank() >= hermetic.LevelAdept.Rank() && !state.IsHigh()

	switch {
	case in.NeedsCompassion || in.NeedsEncouragement:
		in.Approach = hermetic.ApproachGentle
	case in.ReadinessForAdvancedTeaching && !in.NeedsGuidance:
		in.Approach = hermetic.ApproachChallenging
	case in.NeedsGuidance || len(challenges) > 0:
		in.Approach = hermetic.ApproachSupportive
	default:
		in.Approach = hermetic.ApproachDirect
	}
	return in
}
