package progress

import "github.com/yungbote/hermes-backend/internal/domain/hermetic"

type MilestoneKind string

const (
	KindConversation   MilestoneKind = "conversation"
	KindStreak         MilestoneKind = "streak"
	KindPrinciples     MilestoneKind = "principles"
	KindTransformation MilestoneKind = "transformation"
)

// MilestoneMetrics is the snapshot milestones are evaluated against.
type MilestoneMetrics struct {
	ConversationCount   int
	CurrentStreak       int
	LongestStreak       int
	PrinciplesStudied   int
	TransformationScore float64
}

type Milestone struct {
	ID          string
	Kind        MilestoneKind
	Title       string
	Description string
	Achieved    func(m MilestoneMetrics) bool
}

var milestoneCatalog = []Milestone{
	{
		ID: "first_conversation", Kind: KindConversation,
		Title:       "The First Question",
		Description: "Began a dialogue with Hermes.",
		Achieved:    func(m MilestoneMetrics) bool { return m.ConversationCount >= 1 },
	},
	{
		ID: "ten_conversations", Kind: KindConversation,
		Title:       "Devoted Seeker",
		Description: "Returned to the temple for ten conversations.",
		Achieved:    func(m MilestoneMetrics) bool { return m.ConversationCount >= 10 },
	},
	{
		ID: "fifty_conversations", Kind: KindConversation,
		Title:       "Keeper of the Dialogue",
		Description: "Held fifty conversations.",
		Achieved:    func(m MilestoneMetrics) bool { return m.ConversationCount >= 50 },
	},
	{
		ID: "streak_3", Kind: KindStreak,
		Title:       "Kindled Flame",
		Description: "Practised three days in a row.",
		Achieved:    func(m MilestoneMetrics) bool { return maxInt(m.CurrentStreak, m.LongestStreak) >= 3 },
	},
	{
		ID: "streak_7", Kind: KindStreak,
		Title:       "A Week of Rhythm",
		Description: "Practised seven days in a row.",
		Achieved:    func(m MilestoneMetrics) bool { return maxInt(m.CurrentStreak, m.LongestStreak) >= 7 },
	},
	{
		ID: "streak_30", Kind: KindStreak,
		Title:       "The Lunar Cycle",
		Description: "Practised thirty days in a row.",
		Achieved:    func(m MilestoneMetrics) bool { return maxInt(m.CurrentStreak, m.LongestStreak) >= 30 },
	},
	{
		ID: "first_principle", Kind: KindPrinciples,
		Title:       "First Key",
		Description: "Studied a first Hermetic principle.",
		Achieved:    func(m MilestoneMetrics) bool { return m.PrinciplesStudied >= 1 },
	},
	{
		ID: "three_principles", Kind: KindPrinciples,
		Title:       "Three Keys",
		Description: "Studied three of the seven principles.",
		Achieved:    func(m MilestoneMetrics) bool { return m.PrinciplesStudied >= 3 },
	},
	{
		ID: "all_principles", Kind: KindPrinciples,
		Title:       "The Seven Keys",
		Description: "Studied all seven Hermetic principles.",
		Achieved:    func(m MilestoneMetrics) bool { return m.PrinciplesStudied >= len(hermetic.PrincipleIDs) },
	},
	{
		ID: "transformation_10", Kind: KindTransformation,
		Title:       "The Alchemist Awakens",
		Description: "Reached a transformation score of 10.",
		Achieved:    func(m MilestoneMetrics) bool { return m.TransformationScore >= 10 },
	},
	{
		ID: "transformation_25", Kind: KindTransformation,
		Title:       "Lead into Gold",
		Description: "Reached a transformation score of 25.",
		Achieved:    func(m MilestoneMetrics) bool { return m.TransformationScore >= 25 },
	},
}

// Milestones returns the catalog in evaluation order.
func Milestones() []Milestone {
	return append([]Milestone(nil), milestoneCatalog...)
}

func MilestoneByID(id string) (Milestone, bool) {
	for _, m := range milestoneCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

// EvaluateMilestones returns catalog entries whose predicate holds and that
// are not already in achieved. Persisting them still needs a unique write,
// since two requests can both see the milestone as new.
func EvaluateMilestones(m MilestoneMetrics, achieved map[string]bool) []Milestone {
	var out []Milestone
	for _, ms := range milestoneCatalog {
		if achieved[ms.ID] {
			continue
		}
		if ms.Achieved(m) {
			out = append(out, ms)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
