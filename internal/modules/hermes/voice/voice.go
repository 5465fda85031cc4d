package voice

import (
	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
)

const maxAccents = 3

var spiritualTones = map[hermetic.Level]string{
	hermetic.LevelSeeker:  "warm-guide",
	hermetic.LevelStudent: "patient-teacher",
	hermetic.LevelAdept:   "mystic-mentor",
	hermetic.LevelMaster:  "ancient-sage",
}

var moodAccent = map[hermetic.Mood]string{
	hermetic.MoodCalming:       "breathe",
	hermetic.MoodCompassionate: "you are not alone",
	hermetic.MoodGrounding:     "steady",
}

// Derive builds the tuple handed to the speech provider. Mood uses the same
// rule as the narrative atmosphere.
func Derive(state *hermetic.EmotionalState, level hermetic.Level, principles []hermetic.PrincipleID) hermetic.VoiceContext {
	mood := hermetic.MoodFor(state)
	vc := hermetic.VoiceContext{
		Mood:          mood,
		SpiritualTone: spiritualTones[hermetic.LevelSeeker],
		Accentuation:  []string{},
	}
	if t, ok := spiritualTones[level]; ok {
		vc.SpiritualTone = t
	}
	if state != nil {
		vc.Intensity = state.Intensity
		vc.BreathingPauses = state.IsHigh() || state.Primary == hermetic.EmotionAnxious
	}
	if level == hermetic.LevelMaster {
		vc.BreathingPauses = true
	}

	if accent, ok := moodAccent[mood]; ok {
		vc.Accentuation = append(vc.Accentuation, accent)
	}
	n := 0
	for _, id := range principles {
		if n == maxAccents {
			break
		}
		if p, ok := knowledge.Lookup(id); ok {
			vc.Accentuation = append(vc.Accentuation, p.ShortName())
			n++
		}
	}
	return vc
}
