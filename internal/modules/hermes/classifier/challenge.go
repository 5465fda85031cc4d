package classifier

import (
	"fmt"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

// DetectChallenges emits one challenge per category with a matching
// indicator, in category declaration order. An empty severity means moderate.
func DetectChallenges(text string, severity hermetic.Severity) []hermetic.LifeChallenge {
	out := []hermetic.LifeChallenge{}
	if isBlank(text) {
		return out
	}
	if severity == "" {
		severity = hermetic.SeverityModerate
	}
	norm := normalize(text)
	for _, row := range challengeTable {
		hit := false
		for _, ind := range row.indicators {
			if containsSubstring(norm, ind) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		desc := firstSentenceWith(text, func(s string) bool {
			for _, ind := range row.indicators {
				if containsSubstring(s, ind) {
					return true
				}
			}
			return false
		})
		if desc == "" {
			desc = fmt.Sprintf("Challenge related to %s", row.kind)
		}
		out = append(out, hermetic.LifeChallenge{
			Type:             row.kind,
			Description:      desc,
			Severity:         severity,
			HermeticApproach: append([]string(nil), row.approach...),
		})
	}
	return out
}

// HermeticApproachFor returns the static approach bullets for a challenge type.
func HermeticApproachFor(t hermetic.ChallengeType) []string {
	for _, row := range challengeTable {
		if row.kind == t {
			return append([]string(nil), row.approach...)
		}
	}
	return nil
}

// EstimateSeverity grades how heavy the message is. Crisis phrasing is
// critical, a high-intensity emotion is major, anything else moderate.
func EstimateSeverity(text string, state *hermetic.EmotionalState) hermetic.Severity {
	norm := normalize(text)
	for _, p := range criticalPhrases {
		if containsSubstring(norm, p) {
			return hermetic.SeverityCritical
		}
	}
	if state.IsHigh() {
		return hermetic.SeverityMajor
	}
	return hermetic.SeverityModerate
}
