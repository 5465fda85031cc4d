package guidance

import (
	"fmt"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
)

const (
	listSize              = 4
	maxTypeMilestones     = 5
	genericMilestoneCount = 6
	maxBasePractices      = 2
)

// Validate checks every challenge type has a complete row in each table and
// that every severity can be served.
func Validate() error {
	if len(genericMilestones) != genericMilestoneCount {
		return fmt.Errorf("guidance: want %d generic milestones, have %d", genericMilestoneCount, len(genericMilestones))
	}
	for _, lv := range hermetic.Levels {
		if _, ok := difficultyForLevel[lv]; !ok {
			return fmt.Errorf("guidance: no difficulty for level %s", lv)
		}
	}
	for _, d := range []hermetic.Difficulty{hermetic.DifficultyBeginner, hermetic.DifficultyIntermediate, hermetic.DifficultyAdvanced} {
		if _, ok := durationForDifficulty[d]; !ok {
			return fmt.Errorf("guidance: no duration for difficulty %s", d)
		}
	}
	for _, t := range hermetic.ChallengeTypes {
		if closings[t] == "" {
			return fmt.Errorf("guidance: %s has no closing paragraph", t)
		}
		if len(relevanceKeywords[t]) == 0 {
			return fmt.Errorf("guidance: %s has no relevance keywords", t)
		}
		if n := len(basePractices[t]); n < 1 || n > maxBasePractices {
			return fmt.Errorf("guidance: %s needs 1-%d base practices, has %d", t, maxBasePractices, n)
		}
		for _, p := range basePractices[t] {
			if p.ID == "" || len(p.Steps) == 0 || !p.Principle.Valid() {
				return fmt.Errorf("guidance: %s base practice %q is incomplete", t, p.ID)
			}
		}
		if len(mantras[t]) != listSize || len(affirmations[t]) != listSize {
			return fmt.Errorf("guidance: %s needs %d mantras and %d affirmations", t, listSize, listSize)
		}
		if n := len(typeMilestones[t]); n == 0 || n > maxTypeMilestones {
			return fmt.Errorf("guidance: %s needs 1-%d milestones, has %d", t, maxTypeMilestones, n)
		}
		ids := knowledge.PrinciplesForChallenge(t)
		available := len(basePractices[t]) + len(ids) + 1
		for _, s := range hermetic.Severities {
			want, ok := practiceCount[s]
			if !ok {
				return fmt.Errorf("guidance: no practice count for severity %s", s)
			}
			if want > available {
				return fmt.Errorf("guidance: %s/%s wants %d practices, only %d available", t, s, want, available)
			}
		}
	}
	return nil
}
