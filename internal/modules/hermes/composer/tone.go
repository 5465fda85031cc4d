package composer

import "github.com/yungbote/hermes-backend/internal/domain/hermetic"

// Preferences are the user's saved tone choices; empty fields mean "auto".
type Preferences struct {
	Formality        hermetic.Formality        `json:"formality,omitempty"`
	TeachingApproach hermetic.TeachingApproach `json:"teaching_approach,omitempty"`
}

const warmIntensity = 0.4

func selectFormality(pref hermetic.Formality, level hermetic.Level) hermetic.Formality {
	early := level.Rank() <= hermetic.LevelStudent.Rank()
	switch pref {
	case hermetic.FormalityFormal:
		return hermetic.FormalityFormal
	case hermetic.FormalityBalanced:
		return hermetic.FormalityBalanced
	case hermetic.FormalityCasual:
		if early {
			return hermetic.FormalityCasual
		}
		return hermetic.FormalityBalanced
	}
	if early {
		return hermetic.FormalityBalanced
	}
	return hermetic.FormalityFormal
}

func selectWarmth(state *hermetic.EmotionalState, challenges []hermetic.LifeChallenge) hermetic.Warmth {
	maxSeverity := -1
	for _, c := range challenges {
		if r := c.Severity.Rank(); r > maxSeverity {
			maxSeverity = r
		}
	}
	intensity := 0.0
	if state != nil {
		intensity = state.Intensity
	}
	switch {
	case intensity >= hermetic.HighIntensity || maxSeverity >= hermetic.SeverityMajor.Rank():
		return hermetic.WarmthNurturing
	case intensity >= warmIntensity || len(challenges) > 0:
		return hermetic.WarmthWarm
	default:
		return hermetic.WarmthGentle
	}
}

func selectTeaching(pref hermetic.TeachingApproach, level hermetic.Level) hermetic.TeachingApproach {
	if pref.Valid() {
		return pref
	}
	switch level {
	case hermetic.LevelStudent:
		return hermetic.TeachingSocratic
	case hermetic.LevelAdept:
		return hermetic.TeachingExperiential
	case hermetic.LevelMaster:
		return hermetic.TeachingContemplative
	default:
		return hermetic.TeachingStorytelling
	}
}

// SelectTone applies the three independent tone tables.
func SelectTone(pref Preferences, level hermetic.Level, state *hermetic.EmotionalState, challenges []hermetic.LifeChallenge) hermetic.Tone {
	return hermetic.Tone{
		Formality:        selectFormality(pref.Formality, level),
		Warmth:           selectWarmth(state, challenges),
		TeachingApproach: selectTeaching(pref.TeachingApproach, level),
	}
}
