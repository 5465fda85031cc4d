package hermetic

import (
	"fmt"

	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

type EmotionLabel string

const (
	EmotionAnxious  EmotionLabel = "anxious"
	EmotionSad      EmotionLabel = "sad"
	EmotionAngry    EmotionLabel = "angry"
	EmotionConfused EmotionLabel = "confused"
	EmotionLost     EmotionLabel = "lost"
	EmotionExcited  EmotionLabel = "excited"
	EmotionGrateful EmotionLabel = "grateful"
	EmotionPeaceful EmotionLabel = "peaceful"
)

// Emotions in declaration order; classifier ties resolve to the earlier entry.
var Emotions = []EmotionLabel{
	EmotionAnxious,
	EmotionSad,
	EmotionAngry,
	EmotionConfused,
	EmotionLost,
	EmotionExcited,
	EmotionGrateful,
	EmotionPeaceful,
}

// HighIntensity splits emotional guidance and voice pacing into high/low bands.
const HighIntensity = 0.7

func (e EmotionLabel) Valid() bool {
	for _, l := range Emotions {
		if l == e {
			return true
		}
	}
	return false
}

type EmotionalState struct {
	Primary   EmotionLabel   `json:"primary"`
	Secondary []EmotionLabel `json:"secondary,omitempty"`
	Intensity float64        `json:"intensity"`
	Context   string         `json:"context,omitempty"`
}

func (s *EmotionalState) IsHigh() bool {
	return s != nil && s.Intensity >= HighIntensity
}

// Validate accepts a nil state ("no emotion detected").
func (s *EmotionalState) Validate() error {
	if s == nil {
		return nil
	}
	if !s.Primary.Valid() {
		return fmt.Errorf("emotion %q: %w", s.Primary, apperrors.ErrInvalidArgument)
	}
	for _, e := range s.Secondary {
		if !e.Valid() {
			return fmt.Errorf("secondary emotion %q: %w", e, apperrors.ErrInvalidArgument)
		}
	}
	if s.Intensity < 0 || s.Intensity > 1 {
		return fmt.Errorf("emotion intensity %v out of [0,1]: %w", s.Intensity, apperrors.ErrInvalidArgument)
	}
	return nil
}

type Mood string

const (
	MoodCalming       Mood = "calming"
	MoodCompassionate Mood = "compassionate"
	MoodGrounding     Mood = "grounding"
	MoodSerene        Mood = "serene"
)

// MoodFor is shared by the narrative atmosphere and the voice context so the
// spoken and written register never disagree.
func MoodFor(state *EmotionalState) Mood {
	if state == nil {
		return MoodSerene
	}
	switch state.Primary {
	case EmotionAnxious:
		return MoodCalming
	case EmotionSad:
		return MoodCompassionate
	case EmotionExcited:
		return MoodGrounding
	default:
		return MoodSerene
	}
}
