package hermetic

type PrincipleID string

const (
	Mentalism      PrincipleID = "mentalism"
	Correspondence PrincipleID = "correspondence"
	Vibration      PrincipleID = "vibration"
	Polarity       PrincipleID = "polarity"
	Rhythm         PrincipleID = "rhythm"
	Causation      PrincipleID = "causation"
	Gender         PrincipleID = "gender"
)

// PrincipleIDs in declaration order. Relevance results and tie-breaks follow it.
var PrincipleIDs = []PrincipleID{Mentalism, Correspondence, Vibration, Polarity, Rhythm, Causation, Gender}

// DefaultPrinciples is returned when nothing more specific matches.
var DefaultPrinciples = []PrincipleID{Mentalism, Correspondence, Vibration}

// IntegrationPractice marks practices that span every principle.
const IntegrationPractice PrincipleID = "integration"

func (p PrincipleID) Valid() bool {
	for _, id := range PrincipleIDs {
		if id == p {
			return true
		}
	}
	return false
}

func (p PrincipleID) Index() int {
	for i, id := range PrincipleIDs {
		if id == p {
			return i
		}
	}
	return -1
}

// SortPrinciples returns the distinct valid ids in declaration order.
func SortPrinciples(ids []PrincipleID) []PrincipleID {
	seen := make(map[PrincipleID]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	out := make([]PrincipleID, 0, len(seen))
	for _, id := range PrincipleIDs {
		if seen[id] {
			out = append(out, id)
		}
	}
	return out
}
