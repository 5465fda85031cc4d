package knowledge

import (
	"fmt"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

// Validate checks the static tables are complete. Called once at start-up.
func Validate() error {
	for _, id := range hermetic.PrincipleIDs {
		p, ok := principles[id]
		if !ok {
			return fmt.Errorf("knowledge: missing principle %q", id)
		}
		if p.Name == "" || p.Description == "" || p.Symbol == "" {
			return fmt.Errorf("knowledge: principle %q has empty name, description or symbol", id)
		}
		for _, tier := range hermetic.DepthTiers {
			if p.Explanations[tier] == "" {
				return fmt.Errorf("knowledge: principle %q missing %s explanation", id, tier)
			}
		}
		if len(p.Practices) == 0 || len(p.Applications) == 0 {
			return fmt.Errorf("knowledge: principle %q missing practices or applications", id)
		}
		if len(triggers[id]) == 0 {
			return fmt.Errorf("knowledge: principle %q has no triggers", id)
		}
	}
	for _, t := range hermetic.ChallengeTypes {
		ids := challengePrinciples[t]
		if len(ids) < 3 {
			return fmt.Errorf("knowledge: challenge %q needs at least 3 principles", t)
		}
		for _, id := range ids {
			if !id.Valid() {
				return fmt.Errorf("knowledge: challenge %q references unknown principle %q", t, id)
			}
		}
	}
	for _, e := range hermetic.Emotions {
		if len(emotionPrinciples[e]) == 0 {
			return fmt.Errorf("knowledge: emotion %q has no principles", e)
		}
	}
	return nil
}
