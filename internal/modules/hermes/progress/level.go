package progress

import (
	"fmt"
	"math"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

// Requirement is what a level needs to reach the next one.
type Requirement struct {
	Score      int
	Practices  int
	Principles int
}

var requirements = map[hermetic.Level]Requirement{
	hermetic.LevelSeeker:  {Score: hermetic.StudentThreshold, Practices: 3, Principles: 2},
	hermetic.LevelStudent: {Score: hermetic.AdeptThreshold, Practices: 10, Principles: 4},
	hermetic.LevelAdept:   {Score: hermetic.MasterThreshold, Practices: 25, Principles: 7},
}

func RequirementFor(level hermetic.Level) (Requirement, bool) {
	r, ok := requirements[level]
	return r, ok
}

type Metrics struct {
	Score              int
	PracticesCompleted int
	PrinciplesStudied  []hermetic.PrincipleID
}

// ProgressToNextLevel averages the score, practice and principle ratios
// toward the next level, each clamped to 1. MASTER is terminal and returns 1.
func ProgressToNextLevel(m Metrics, current hermetic.Level) (float64, error) {
	if !current.Valid() {
		return 0, fmt.Errorf("progress: level %q: %w", current, apperrors.ErrInvalidArgument)
	}
	if m.Score < 0 || m.PracticesCompleted < 0 {
		return 0, fmt.Errorf("progress: negative metrics: %w", apperrors.ErrInvalidArgument)
	}
	if current == hermetic.LevelMaster {
		return 1, nil
	}
	req := requirements[current]
	principles := len(hermetic.SortPrinciples(m.PrinciplesStudied))
	sum := ratio(m.Score, req.Score) + ratio(m.PracticesCompleted, req.Practices) + ratio(principles, req.Principles)
	return sum / 3, nil
}

func ratio(have, need int) float64 {
	if need <= 0 {
		return 1
	}
	return math.Min(float64(have)/float64(need), 1)
}

// CounterScore converts persisted counters into a score so long-term study
// counts even when a single message carries no signal.
func CounterScore(p hermetic.Progression) int {
	practices := p.PracticesCompleted
	if practices > 10 {
		practices = 10
	}
	transformations := int(p.TransformationScore)
	if transformations > 10 {
		transformations = 10
	}
	score := hermetic.BaseScore +
		5*len(hermetic.SortPrinciples(p.PrinciplesStudied)) +
		3*practices +
		2*transformations
	return hermetic.ClampScore(score)
}

type Advancement struct {
	Profile       hermetic.SpiritualLevel `json:"profile"`
	PreviousLevel hermetic.Level          `json:"previous_level"`
	LevelAdvanced bool                    `json:"level_advanced"`
	NewPrinciples []hermetic.PrincipleID  `json:"new_principles,omitempty"`
}

// Advance folds one message assessment into the persisted profile. The score
// never decreases, so the level only moves upward.
func Advance(current, assessed hermetic.SpiritualLevel) (Advancement, error) {
	if current.Level == "" && current.Score == 0 {
		current = hermetic.DefaultSpiritualLevel()
	}
	if err := current.Validate(); err != nil {
		return Advancement{}, fmt.Errorf("progress: current profile: %w", err)
	}
	if err := assessed.Validate(); err != nil {
		return Advancement{}, fmt.Errorf("progress: assessment: %w", err)
	}

	var fresh []hermetic.PrincipleID
	for _, id := range assessed.Progression.PrinciplesStudied {
		if !current.Progression.HasStudied(id) {
			fresh = append(fresh, id)
		}
	}

	next := hermetic.Progression{
		PrinciplesStudied:   hermetic.SortPrinciples(append(append([]hermetic.PrincipleID(nil), current.Progression.PrinciplesStudied...), fresh...)),
		PracticesCompleted:  current.Progression.PracticesCompleted + assessed.Progression.PracticesCompleted,
		TransformationScore: current.Progression.TransformationScore + assessed.Progression.TransformationScore,
	}

	score := current.Score
	if assessed.Score > score {
		score = assessed.Score
	}
	if cs := CounterScore(next); cs > score {
		score = cs
	}
	score = hermetic.ClampScore(score)

	level := hermetic.LevelForScore(score)
	if level.Rank() < current.Level.Rank() {
		level = current.Level
	}

	return Advancement{
		Profile: hermetic.SpiritualLevel{
			Level:       level,
			Score:       score,
			Progression: next,
		},
		PreviousLevel: current.Level,
		LevelAdvanced: level != current.Level,
		NewPrinciples: hermetic.SortPrinciples(fresh),
	}, nil
}
