package classifier

import (
	"strings"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

// AssessSpiritualLevel scores the text together with prior turns. The tier
// phrases set a floor, then distinct domain, practice and transformation
// terms add points on top. The result is capped at 100.
func AssessSpiritualLevel(text string, history ...string) hermetic.SpiritualLevel {
	all := append([]string{text}, history...)
	norm := normalize(strings.Join(all, "\n"))

	score := hermetic.BaseScore
	for _, tier := range levelTiers {
		for _, p := range tier.phrases {
			if containsSubstring(norm, p) && tier.floor > score {
				score = tier.floor
				break
			}
		}
	}

	var studied []hermetic.PrincipleID
	for _, dt := range domainTerms {
		if !containsSubstring(norm, dt.term) {
			continue
		}
		score += domainTermPoints
		if dt.principle != "" {
			studied = append(studied, dt.principle)
		}
	}

	practices := 0
	for _, t := range practiceTerms {
		if containsSubstring(norm, t) {
			score += practiceTermPoints
			practices++
		}
	}

	transformations := 0
	for _, t := range transformationTerms {
		if containsSubstring(norm, t) {
			score += transformationTermPoints
			transformations++
		}
	}

	score = hermetic.ClampScore(score)
	return hermetic.SpiritualLevel{
		Level: hermetic.LevelForScore(score),
		Score: score,
		Progression: hermetic.Progression{
			PrinciplesStudied:   hermetic.SortPrinciples(studied),
			PracticesCompleted:  practices,
			TransformationScore: float64(transformations),
		},
	}
}
