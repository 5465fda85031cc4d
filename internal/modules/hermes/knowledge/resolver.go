package knowledge

import (
	"strings"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

var triggers = map[hermetic.PrincipleID][]string{
	hermetic.Mentalism:      {"thought", "think", "mind", "belief", "believe", "mindset", "perception", "attitude"},
	hermetic.Correspondence: {"pattern", "mirror", "reflect", "as above", "inner and outer", "repeat", "same thing keeps"},
	hermetic.Vibration:      {"energy", "vibration", "frequency", "mood", "feeling", "vibe"},
	hermetic.Polarity:       {"opposite", "extreme", "balance", "conflict", "polarity", "duality", "love and hate"},
	hermetic.Rhythm:         {"cycle", "rhythm", "ups and downs", "season", "phase", "again and again", "swing"},
	hermetic.Causation:      {"cause", "effect", "consequence", "karma", "result", "why did", "why does"},
	hermetic.Gender:         {"create", "creative", "masculine", "feminine", "receptive", "nurtur", "action"},
}

// Per-challenge relevance is ranked, not declaration ordered.
var challengePrinciples = map[hermetic.ChallengeType][]hermetic.PrincipleID{
	hermetic.ChallengeRelationship: {hermetic.Correspondence, hermetic.Polarity, hermetic.Gender, hermetic.Vibration},
	hermetic.ChallengeCareer:       {hermetic.Causation, hermetic.Mentalism, hermetic.Rhythm, hermetic.Gender},
	hermetic.ChallengeHealth:       {hermetic.Vibration, hermetic.Mentalism, hermetic.Rhythm, hermetic.Correspondence},
	hermetic.ChallengeSpiritual:    {hermetic.Mentalism, hermetic.Correspondence, hermetic.Vibration, hermetic.Rhythm},
	hermetic.ChallengeFinancial:    {hermetic.Causation, hermetic.Mentalism, hermetic.Polarity, hermetic.Rhythm},
	hermetic.ChallengeFamily:       {hermetic.Correspondence, hermetic.Causation, hermetic.Polarity, hermetic.Gender},
	hermetic.ChallengePurpose:      {hermetic.Mentalism, hermetic.Causation, hermetic.Correspondence, hermetic.Gender},
}

var emotionPrinciples = map[hermetic.EmotionLabel][]hermetic.PrincipleID{
	hermetic.EmotionAnxious:  {hermetic.Mentalism, hermetic.Rhythm, hermetic.Vibration},
	hermetic.EmotionSad:      {hermetic.Rhythm, hermetic.Polarity, hermetic.Vibration},
	hermetic.EmotionAngry:    {hermetic.Polarity, hermetic.Causation, hermetic.Vibration},
	hermetic.EmotionConfused: {hermetic.Mentalism, hermetic.Correspondence, hermetic.Causation},
	hermetic.EmotionLost:     {hermetic.Correspondence, hermetic.Causation, hermetic.Rhythm},
	hermetic.EmotionExcited:  {hermetic.Rhythm, hermetic.Polarity, hermetic.Gender},
	hermetic.EmotionGrateful: {hermetic.Vibration, hermetic.Correspondence, hermetic.Causation},
	hermetic.EmotionPeaceful: {hermetic.Mentalism, hermetic.Vibration, hermetic.Gender},
}

// FindRelevantPrinciples matches trigger phrases against the lowercased
// topic and optional challenge description. Matches come back in declaration
// order; with no match the default trio is returned.
func FindRelevantPrinciples(topic string, challengeDescription ...string) []hermetic.PrincipleID {
	parts := append([]string{topic}, challengeDescription...)
	text := strings.ToLower(strings.Join(parts, " "))

	var out []hermetic.PrincipleID
	if strings.TrimSpace(text) != "" {
		for _, id := range hermetic.PrincipleIDs {
			for _, trig := range triggers[id] {
				if strings.Contains(text, trig) {
					out = append(out, id)
					break
				}
			}
		}
	}
	if len(out) == 0 {
		return append([]hermetic.PrincipleID(nil), hermetic.DefaultPrinciples...)
	}
	return out
}

// PrinciplesForChallenge is the ranked lookup used by guidance generation.
func PrinciplesForChallenge(t hermetic.ChallengeType) []hermetic.PrincipleID {
	ids, ok := challengePrinciples[t]
	if !ok {
		return append([]hermetic.PrincipleID(nil), hermetic.DefaultPrinciples...)
	}
	return append([]hermetic.PrincipleID(nil), ids...)
}

func PrinciplesForEmotion(e hermetic.EmotionLabel) []hermetic.PrincipleID {
	ids, ok := emotionPrinciples[e]
	if !ok {
		return append([]hermetic.PrincipleID(nil), hermetic.DefaultPrinciples...)
	}
	return append([]hermetic.PrincipleID(nil), ids...)
}

// Top returns at most n ids.
func Top(ids []hermetic.PrincipleID, n int) []hermetic.PrincipleID {
	if n < 0 {
		n = 0
	}
	if len(ids) > n {
		ids = ids[:n]
	}
	return append([]hermetic.PrincipleID(nil), ids...)
}
