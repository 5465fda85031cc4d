package knowledge

import (
	"strings"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

type Principle struct {
	ID           hermetic.PrincipleID
	Name         string
	Axiom        string
	Description  string
	Explanations map[hermetic.DepthTier]string
	Practices    []string
	Applications []string
	Symbol       string
}

var principles = map[hermetic.PrincipleID]Principle{
	hermetic.Mentalism: {
		ID:          hermetic.Mentalism,
		Name:        "The Principle of Mentalism",
		Axiom:       "The All is Mind; the Universe is Mental.",
		Description: "Reality is rooted in mind; thought shapes experience.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "Your thoughts are like seeds. What you hold in mind tends to grow into how you feel and what you do, so tending your thoughts is the first step to changing your life.",
			hermetic.TierIntermediate: "Everything you experience passes through the lens of mind. Beliefs filter perception, perception steers emotion, and emotion steers action. By observing and deliberately choosing your mental states you begin to shape the conditions you meet.",
			hermetic.TierAdvanced:     "The All is Mind, and the universe is held within that Mind as a mental creation. Individual consciousness is a point of that greater Mind; mastery comes from polarizing your own mental states with will, so that inner causes become outer effects rather than the reverse.",
		},
		Practices: []string{
			"Observe thoughts for ten minutes without judging them",
			"Replace one limiting belief with a deliberate counter-thought each day",
			"Hold a clear mental image of the outcome you intend",
		},
		Applications: []string{
			"Reframe a career setback as information rather than a verdict on your worth",
			"Notice the story you tell about a relationship before reacting to it",
			"Treat anxious forecasts about health as thoughts, not facts",
			"Examine beliefs about money inherited from family",
			"Choose the meaning you give to the search for purpose",
		},
		Symbol: "the all-seeing eye of mind",
	},
	hermetic.Correspondence: {
		ID:          hermetic.Correspondence,
		Name:        "The Principle of Correspondence",
		Axiom:       "As above, so below; as below, so above.",
		Description: "Patterns repeat across every plane; inner and outer mirror each other.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "What happens inside you is often mirrored around you. A calm heart tends to meet calmer days, and a tangled mind often finds tangled situations.",
			hermetic.TierIntermediate: "The same laws operate on the physical, mental and spiritual planes. By studying a pattern where it is visible you can understand it where it is hidden, and by changing an inner pattern you see its echo shift in your outer life.",
			hermetic.TierAdvanced:     "Correspondence is the master key of analogy: each plane reflects every other, so the microcosm of the self contains the map of the macrocosm. Work consciously on the plane you can reach and the corresponding planes realign of themselves.",
		},
		Practices: []string{
			"Journal one outer situation and the inner state it mirrors",
			"Tidy one physical space as a symbol of ordering the mind",
			"Contemplate a natural cycle and find its echo in your life",
		},
		Applications: []string{
			"See how conflict with a partner mirrors an inner conflict",
			"Recognize how workplace patterns repeat family patterns",
			"Let the state of the body reflect back the state of the mind",
			"Notice how scarcity in thought corresponds to scarcity in finances",
			"Find your purpose by looking at what the world keeps reflecting back to you",
		},
		Symbol: "the mirrored triangles of heaven and earth",
	},
	hermetic.Vibration: {
		ID:          hermetic.Vibration,
		Name:        "The Principle of Vibration",
		Axiom:       "Nothing rests; everything moves; everything vibrates.",
		Description: "All things are in motion; mood and energy are frequencies that can be raised.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "Everything is always moving, including your feelings. A heavy mood is not permanent; small acts like breathing slowly, music or kindness can lift your energy.",
			hermetic.TierIntermediate: "Matter, energy and mind differ only in their rate of vibration. Emotions are vibrational states, and you can learn to shift them deliberately through attention, breath, sound and the company you keep.",
			hermetic.TierAdvanced:     "He who understands vibration holds the sceptre of power. By mastering the rate of your own mental vibration you transmute lower states into higher ones and attune to the frequencies you wish to embody.",
		},
		Practices: []string{
			"Chant or hum a single tone for five minutes",
			"Notice the energy of each room you enter",
			"Shift a low mood through breath and movement",
		},
		Applications: []string{
			"Raise your energy before a difficult conversation with someone you love",
			"Attune your working environment to focus rather than stress",
			"Support healing by tending the energy of the body",
			"Shift the emotional frequency around money from fear to trust",
			"Follow what makes you feel most alive to uncover purpose",
		},
		Symbol: "the resonating tuning fork",
	},
	hermetic.Polarity: {
		ID:          hermetic.Polarity,
		Name:        "The Principle of Polarity",
		Axiom:       "Everything is dual; opposites are identical in nature, differing only in degree.",
		Description: "Opposites are two poles of one thing; one can move along the scale.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "Hot and cold are the same thing at different degrees. Fear and courage are too, which means you can slowly move from one toward the other.",
			hermetic.TierIntermediate: "Every quality has its opposite on the same scale. Hate and love, doubt and faith, are degrees of one thing. Rather than fighting a state, you can move your attention toward its opposite pole and change its degree.",
			hermetic.TierAdvanced:     "Polarity reveals that contradictions are half-truths. The adept practises mental transmutation by polarizing deliberately, changing the degree of a state instead of its nature, and thereby reconciling what appears irreconcilable.",
		},
		Practices: []string{
			"Name a difficult feeling and write its opposite pole",
			"Spend a day consciously choosing the higher pole in small moments",
			"Balance an extreme by practising its gentle counterpart",
		},
		Applications: []string{
			"Transform resentment toward a partner into understanding by degrees",
			"Move from dread toward curiosity about a career change",
			"Balance effort and rest in recovering health",
			"Shift from scarcity to sufficiency in financial decisions",
			"Hold both doubt and faith while searching for purpose",
		},
		Symbol: "the yin-yang of balanced opposites",
	},
	hermetic.Rhythm: {
		ID:          hermetic.Rhythm,
		Name:        "The Principle of Rhythm",
		Axiom:       "Everything flows, out and in; the pendulum swing manifests in everything.",
		Description: "Life moves in cycles; the wise rise above the backward swing.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "Life has seasons. Hard times swing back toward easier ones, just as night turns into day. Knowing this makes it easier to wait through the low points.",
			hermetic.TierIntermediate: "Every rise is followed by a fall and every fall by a rise. By recognizing your own cycles you stop being surprised by them, and you learn to ride the swing rather than be thrown by it.",
			hermetic.TierAdvanced:     "Rhythm cannot be annulled but it can be neutralized. Through the law of neutralization the master polarizes at the desired pole and lets the backward swing pass beneath awareness, remaining centred while the pendulum moves.",
		},
		Practices: []string{
			"Track your energy through the day for one week",
			"Honour a natural rest phase without guilt",
			"Observe a recurring emotional cycle and anticipate it",
		},
		Applications: []string{
			"Accept that relationships move through seasons of closeness and distance",
			"Ride the ups and downs of a career without losing your centre",
			"Respect the cycles of energy and rest in the body",
			"Plan finances for lean seasons while in abundant ones",
			"Trust that periods without direction are part of the cycle of purpose",
		},
		Symbol: "the swinging pendulum",
	},
	hermetic.Causation: {
		ID:          hermetic.Causation,
		Name:        "The Principle of Cause and Effect",
		Axiom:       "Every cause has its effect; every effect has its cause.",
		Description: "Nothing happens by chance; choices set causes in motion.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "What you do today shapes what you meet tomorrow. Small, steady choices add up, so even a tiny good action matters.",
			hermetic.TierIntermediate: "Chance is merely a name for a law not recognized. By tracing effects back to their causes you find where your choices have power, and by choosing causes consciously you become less a pawn of circumstance.",
			hermetic.TierAdvanced:     "There are many planes of causation. The master rises to a higher plane of cause and thereby becomes a mover rather than one who is moved, using the laws of the lower planes rather than being ruled by them.",
		},
		Practices: []string{
			"Trace one current situation back to three of its causes",
			"Set one deliberate cause in motion each morning",
			"Review the day's actions and their effects each evening",
		},
		Applications: []string{
			"Notice how small habits cause the climate of a relationship",
			"Choose career actions that set the causes of the future you want",
			"Connect daily habits to their effects on health",
			"See how spending patterns cause financial outcomes",
			"Act on purpose before feeling certain of it",
		},
		Symbol: "the ouroboros of cause returning as effect",
	},
	hermetic.Gender: {
		ID:          hermetic.Gender,
		Name:        "The Principle of Gender",
		Axiom:       "Gender is in everything; everything has its masculine and feminine principles.",
		Description: "Creation needs both active projection and receptive gestation.",
		Explanations: map[hermetic.DepthTier]string{
			hermetic.TierSimple:       "Everyone has a doing side and a receiving side. Sometimes life asks you to act, and sometimes to rest and listen. Both are needed to create anything new.",
			hermetic.TierIntermediate: "The masculine principle projects and directs; the feminine principle receives and gestates. Creative work and healthy relationships require both, and imbalance shows up as either burnout or stagnation.",
			hermetic.TierAdvanced:     "Mental gender operates as the conscious will impressing the subconscious mind, which then generates new mental creations. The master harmonizes both aspects so that will and receptivity co-create without domination.",
		},
		Practices: []string{
			"Alternate an hour of focused action with an hour of receptive rest",
			"Plant an intention and consciously let it gestate without forcing",
			"Notice whether you over-give or over-receive in one relationship",
		},
		Applications: []string{
			"Balance giving and receiving in a relationship",
			"Pair bold career action with patient listening",
			"Balance striving and surrender in the healing process",
			"Combine decisive financial action with receptive planning",
			"Let purpose be both pursued and received",
		},
		Symbol: "the caduceus of intertwined serpents",
	},
}

// Lookup returns the static entry for a principle id.
// ShortName drops the "The Principle of" prefix.
func (p Principle) ShortName() string {
	return strings.TrimPrefix(p.Name, "The Principle of ")
}

func Lookup(id hermetic.PrincipleID) (Principle, bool) {
	p, ok := principles[id]
	return p, ok
}

// All returns the principles in declaration order.
func All() []Principle {
	out := make([]Principle, 0, len(hermetic.PrincipleIDs))
	for _, id := range hermetic.PrincipleIDs {
		out = append(out, principles[id])
	}
	return out
}

// ExplanationFor is the depth-tiered lookup.
func ExplanationFor(id hermetic.PrincipleID, tier hermetic.DepthTier) (string, bool) {
	p, ok := principles[id]
	if !ok {
		return "", false
	}
	text, ok := p.Explanations[tier]
	return text, ok
}

// PrincipleByLevel resolves the explanation depth from a spiritual level.
func PrincipleByLevel(id hermetic.PrincipleID, level hermetic.Level) (string, bool) {
	return ExplanationFor(id, hermetic.TierForLevel(level))
}
