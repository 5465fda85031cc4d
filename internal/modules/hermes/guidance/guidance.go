package guidance

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/modules/hermes/knowledge"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

const maxApplications = 2

// Key identifies a guidance bundle. Generation depends on nothing else.
type Key struct {
	Type     hermetic.ChallengeType
	Severity hermetic.Severity
	Level    hermetic.Level
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Type, k.Severity, k.Level)
}

// KeyFor normalizes the lookup key: an empty severity is moderate and an
// empty level is SEEKER.
func KeyFor(challenge hermetic.LifeChallenge, level hermetic.Level) (Key, error) {
	if challenge.Severity == "" {
		challenge.Severity = hermetic.SeverityModerate
	}
	if err := challenge.Validate(); err != nil {
		return Key{}, err
	}
	if level == "" {
		level = hermetic.LevelSeeker
	}
	if !level.Valid() {
		return Key{}, fmt.Errorf("spiritual level %q: %w", level, apperrors.ErrInvalidArgument)
	}
	return Key{Type: challenge.Type, Severity: challenge.Severity, Level: level}, nil
}

// Generate builds the guidance bundle for a challenge. Output is a pure
// function of (type, severity, level); the description only travels along
// in the Challenge field.
func Generate(challenge hermetic.LifeChallenge, level hermetic.Level) (hermetic.TransformationGuidance, error) {
	key, err := KeyFor(challenge, level)
	if err != nil {
		return hermetic.TransformationGuidance{}, err
	}
	g := generate(key)
	challenge.Severity = key.Severity
	g.Challenge = challenge
	return g, nil
}

func generate(k Key) hermetic.TransformationGuidance {
	ids := knowledge.PrinciplesForChallenge(k.Type)
	return hermetic.TransformationGuidance{
		HermeticApproach: approachText(k, ids),
		Practices:        selectPractices(k, ids),
		Mantras:          append([]string(nil), mantras[k.Type]...),
		Affirmations:     append([]string(nil), affirmations[k.Type]...),
		Timeline:         timelineFor(k.Severity, k.Type),
		Milestones:       milestonesFor(k.Type),
	}
}

func approachText(k Key, ids []hermetic.PrincipleID) string {
	tier := hermetic.TierForLevel(k.Level)
	paras := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		p, ok := knowledge.Lookup(id)
		if !ok {
			continue
		}
		explanation, _ := knowledge.ExplanationFor(id, tier)
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", p.ShortName(), explanation)
		if apps := relevantApplications(p, k.Type); len(apps) > 0 {
			fmt.Fprintf(&b, " In practice: %s.", strings.Join(apps, "; "))
		}
		paras = append(paras, b.String())
	}
	paras = append(paras, closings[k.Type])
	return strings.Join(paras, "\n\n")
}

func relevantApplications(p knowledge.Principle, t hermetic.ChallengeType) []string {
	var out []string
	for _, app := range p.Applications {
		lower := strings.ToLower(app)
		for _, kw := range relevanceKeywords[t] {
			if strings.Contains(lower, kw) {
				out = append(out, app)
				break
			}
		}
		if len(out) == maxApplications {
			break
		}
	}
	return out
}

func selectPractices(k Key, ids []hermetic.PrincipleID) []hermetic.DailyPractice {
	all := make([]hermetic.DailyPractice, 0, len(basePractices[k.Type])+len(ids)+1)
	for _, p := range basePractices[k.Type] {
		all = append(all, clonePractice(p))
	}
	for _, id := range ids {
		if p, ok := principlePractice(k, id); ok {
			all = append(all, p)
		}
	}
	all = append(all, integrationPractice(k, ids))

	n := practiceCount[k.Severity]
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func principlePractice(k Key, id hermetic.PrincipleID) (hermetic.DailyPractice, bool) {
	p, ok := knowledge.Lookup(id)
	if !ok || len(p.Practices) == 0 {
		return hermetic.DailyPractice{}, false
	}
	difficulty := difficultyForLevel[k.Level]
	core := p.Practices[k.Level.Rank()%len(p.Practices)]
	return hermetic.DailyPractice{
		ID:              fmt.Sprintf("%s-%s-%s", k.Type, id, difficulty),
		Name:            fmt.Sprintf("%s for %s", p.ShortName(), cases.Title(language.English).String(string(k.Type))),
		Description:     fmt.Sprintf("Work with %s on your %s challenge: %s.", p.Name, k.Type, strings.ToLower(core[:1])+core[1:]),
		Difficulty:      difficulty,
		DurationMinutes: durationForDifficulty[difficulty],
		Principle:       id,
		Steps: []string{
			fmt.Sprintf("Settle your breath and recall the axiom: %q", p.Axiom),
			fmt.Sprintf("Bring your %s situation to mind and look at it through %s", k.Type, p.ShortName()),
			core,
			"Write down one insight and one action you will take today",
		},
		Benefits: []string{
			p.Description,
			fmt.Sprintf("Applies %s directly to %s", p.ShortName(), k.Type),
		},
	}, true
}

func integrationPractice(k Key, ids []hermetic.PrincipleID) hermetic.DailyPractice {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := knowledge.Lookup(id); ok {
			names = append(names, p.ShortName())
		}
	}
	difficulty := difficultyForLevel[k.Level]
	return hermetic.DailyPractice{
		ID:              fmt.Sprintf("%s-integration-%s", k.Type, difficulty),
		Name:            "Integration of the Principles",
		Description:     fmt.Sprintf("An evening review weaving %s into one view of your %s challenge.", strings.Join(names, ", "), k.Type),
		Difficulty:      difficulty,
		DurationMinutes: durationForDifficulty[difficulty],
		Principle:       hermetic.IntegrationPractice,
		Steps: []string{
			"Review the day from evening back to morning",
			"Note where each principle appeared in what happened",
			"Choose the principle that asks for the most attention tomorrow",
			"Close with one of your mantras",
		},
		Benefits: []string{"Unifies separate practices", "Builds a daily habit of reflection"},
	}
}

func timelineFor(s hermetic.Severity, t hermetic.ChallengeType) string {
	if row, ok := timelines[s]; ok {
		if text, ok := row[t]; ok {
			return text + spiralCaveat
		}
	}
	return genericTimeline + spiralCaveat
}

func milestonesFor(t hermetic.ChallengeType) []string {
	out := make([]string, 0, len(genericMilestones)+len(typeMilestones[t]))
	out = append(out, genericMilestones...)
	return append(out, typeMilestones[t]...)
}

func clonePractice(p hermetic.DailyPractice) hermetic.DailyPractice {
	p.Steps = append([]string(nil), p.Steps...)
	p.Benefits = append([]string(nil), p.Benefits...)
	return p
}

func cloneGuidance(g hermetic.TransformationGuidance) hermetic.TransformationGuidance {
	practices := make([]hermetic.DailyPractice, len(g.Practices))
	for i, p := range g.Practices {
		practices[i] = clonePractice(p)
	}
	g.Practices = practices
	g.Mantras = append([]string(nil), g.Mantras...)
	g.Affirmations = append([]string(nil), g.Affirmations...)
	g.Milestones = append([]string(nil), g.Milestones...)
	g.Challenge.HermeticApproach = append([]string(nil), g.Challenge.HermeticApproach...)
	return g
}
