package hermetic

import (
	"fmt"
	"strings"

	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

type Level string

const (
	LevelSeeker  Level = "SEEKER"
	LevelStudent Level = "STUDENT"
	LevelAdept   Level = "ADEPT"
	LevelMaster  Level = "MASTER"
)

// Levels in progression order.
var Levels = []Level{LevelSeeker, LevelStudent, LevelAdept, LevelMaster}

const (
	BaseScore = 20
	MaxScore  = 100

	StudentThreshold = 35
	AdeptThreshold   = 60
	MasterThreshold  = 80
)

func (l Level) Valid() bool {
	switch l {
	case LevelSeeker, LevelStudent, LevelAdept, LevelMaster:
		return true
	default:
		return false
	}
}

// Rank orders levels from 0 (SEEKER) to 3 (MASTER); unknown levels rank -1.
func (l Level) Rank() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

func (l Level) Next() (Level, bool) {
	r := l.Rank()
	if r < 0 || r >= len(Levels)-1 {
		return "", false
	}
	return Levels[r+1], true
}

func ParseLevel(raw string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown spiritual level %q: %w", raw, apperrors.ErrInvalidArgument)
	}
	return l, nil
}

// LevelForScore is the step function from score to level.
func LevelForScore(score int) Level {
	switch {
	case score >= MasterThreshold:
		return LevelMaster
	case score >= AdeptThreshold:
		return LevelAdept
	case score >= StudentThreshold:
		return LevelStudent
	default:
		return LevelSeeker
	}
}

func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

type DepthTier string

const (
	TierSimple       DepthTier = "simple"
	TierIntermediate DepthTier = "intermediate"
	TierAdvanced     DepthTier = "advanced"
)

var DepthTiers = []DepthTier{TierSimple, TierIntermediate, TierAdvanced}

func (t DepthTier) Valid() bool {
	return t == TierSimple || t == TierIntermediate || t == TierAdvanced
}

func TierForLevel(l Level) DepthTier {
	switch l {
	case LevelStudent:
		return TierIntermediate
	case LevelAdept, LevelMaster:
		return TierAdvanced
	default:
		return TierSimple
	}
}

// Progression counters accumulated on a spiritual profile.
type Progression struct {
	PrinciplesStudied   []PrincipleID `json:"principles_studied"`
	PracticesCompleted  int           `json:"practices_completed"`
	TransformationScore float64       `json:"transformation_score"`
}

func (p Progression) HasStudied(id PrincipleID) bool {
	for _, s := range p.PrinciplesStudied {
		if s == id {
			return true
		}
	}
	return false
}

type SpiritualLevel struct {
	Level       Level       `json:"level"`
	Score       int         `json:"score"`
	Progression Progression `json:"progression"`
}

// DefaultSpiritualLevel is the fresh-seeker profile used when nothing is known.
func DefaultSpiritualLevel() SpiritualLevel {
	return SpiritualLevel{Level: LevelSeeker, Score: BaseScore}
}

func (s SpiritualLevel) Validate() error {
	if !s.Level.Valid() {
		return fmt.Errorf("spiritual level %q: %w", s.Level, apperrors.ErrInvalidArgument)
	}
	if s.Score < 0 || s.Score > MaxScore {
		return fmt.Errorf("spiritual score %d out of range: %w", s.Score, apperrors.ErrInvalidArgument)
	}
	if s.Progression.PracticesCompleted < 0 || s.Progression.TransformationScore < 0 {
		return fmt.Errorf("negative progression counters: %w", apperrors.ErrInvalidArgument)
	}
	for _, id := range s.Progression.PrinciplesStudied {
		if !id.Valid() {
			return fmt.Errorf("principle %q: %w", id, apperrors.ErrInvalidArgument)
		}
	}
	return nil
}
