package classifier

import "github.com/yungbote/hermes-backend/internal/domain/hermetic"

const (
	weightPositive  = 0.3
	weightNegative  = 0.6
	weightIntensity = 1.0
)

type emotionKeywords struct {
	label     hermetic.EmotionLabel
	positive  []string
	negative  []string
	intensity []string
}

// Declaration order is the tie-break order.
var emotionTable = []emotionKeywords{
	{
		label:     hermetic.EmotionAnxious,
		positive:  []string{"anxious", "nervous", "worried", "uneasy", "restless", "on edge"},
		negative:  []string{"overwhelmed", "stressed", "panic", "dread", "afraid", "scared"},
		intensity: []string{"panic attack", "terrified", "can't breathe", "paralyzed", "freaking out"},
	},
	{
		label:     hermetic.EmotionSad,
		positive:  []string{"sad", "down", "unhappy", "disappointed", "blue"},
		negative:  []string{"depressed", "heartbroken", "grief", "grieving", "lonely", "hopeless", "miserable", "crying"},
		intensity: []string{"devastated", "can't go on", "unbearable", "despair", "shattered"},
	},
	{
		label:     hermetic.EmotionAngry,
		positive:  []string{"annoyed", "irritated", "frustrated", "bothered"},
		negative:  []string{"angry", "mad", "furious", "resentful", "bitter", "betrayed"},
		intensity: []string{"rage", "enraged", "livid", "fuming", "hate everything"},
	},
	{
		label:     hermetic.EmotionConfused,
		positive:  []string{"confused", "unsure", "uncertain", "puzzled", "unclear"},
		negative:  []string{"conflicted", "torn", "don't understand", "doubt", "doubting"},
		intensity: []string{"totally confused", "makes no sense", "no idea what to do", "bewildered"},
	},
	{
		label:     hermetic.EmotionLost,
		positive:  []string{"lost", "stuck", "aimless", "adrift"},
		negative:  []string{"empty", "meaningless", "directionless", "purposeless", "disconnected"},
		intensity: []string{"completely lost", "utterly lost", "nothing matters"},
	},
	{
		label:     hermetic.EmotionExcited,
		positive:  []string{"excited", "eager", "happy", "looking forward"},
		negative:  []string{"thrilled", "can't wait", "pumped", "ecstatic"},
		intensity: []string{"overjoyed", "euphoric", "over the moon", "best day"},
	},
	{
		label:     hermetic.EmotionGrateful,
		positive:  []string{"thankful", "thanks", "appreciate", "blessed"},
		negative:  []string{"grateful", "gratitude"},
		intensity: []string{"eternally grateful", "deeply grateful", "overflowing with gratitude"},
	},
	{
		label:     hermetic.EmotionPeaceful,
		positive:  []string{"calm", "relaxed", "content", "okay"},
		negative:  []string{"peaceful", "serene", "at peace", "centered", "tranquil"},
		intensity: []string{"deep peace", "complete peace", "bliss", "stillness"},
	},
}

type challengeIndicators struct {
	kind       hermetic.ChallengeType
	indicators []string
	approach   []string
}

var challengeTable = []challengeIndicators{
	{
		kind:       hermetic.ChallengeRelationship,
		indicators: []string{"relationship", "partner", "boyfriend", "girlfriend", "husband", "wife", "marriage", "divorce", "breakup", "broke up", "dating", "my ex"},
		approach: []string{
			"Correspondence: the relationship mirrors your inner relationship with yourself",
			"Polarity: move resentment toward understanding by degrees",
			"Gender: balance giving and receiving",
		},
	},
	{
		kind:       hermetic.ChallengeCareer,
		indicators: []string{"job", "career", "boss", "work", "coworker", "promotion", "fired", "laid off", "unemployed", "interview", "profession"},
		approach: []string{
			"Cause and Effect: set deliberate causes for the career you intend",
			"Mentalism: examine the beliefs you hold about your worth and ability",
			"Rhythm: every career has seasons of growth and rest",
		},
	},
	{
		kind:       hermetic.ChallengeHealth,
		indicators: []string{"health", "sick", "illness", "pain", "diagnosis", "disease", "doctor", "injury", "insomnia", "can't sleep"},
		approach: []string{
			"Vibration: tend the energy of the body through breath and rest",
			"Mentalism: the mind's attention supports the body's healing",
			"Rhythm: honour the natural cycles of recovery",
		},
	},
	{
		kind:       hermetic.ChallengeSpiritual,
		indicators: []string{"spiritual", "faith", "god", "soul", "awakening", "dark night", "enlightenment", "disconnected from spirit"},
		approach: []string{
			"Mentalism: the All is Mind and you are never outside it",
			"Correspondence: the inner path is reflected in outer signs",
			"Rhythm: dryness and illumination alternate on every path",
		},
	},
	{
		kind:       hermetic.ChallengeFinancial,
		indicators: []string{"money", "debt", "bills", "financial", "afford", "i'm broke", "am broke", "savings", "loan", "mortgage", "income", "salary", "pay rent", "my rent"},
		approach: []string{
			"Cause and Effect: trace present finances to their causes and set new ones",
			"Mentalism: transmute scarcity thinking into sufficiency",
			"Polarity: move from fear toward trust by degrees",
		},
	},
	{
		kind:       hermetic.ChallengeFamily,
		indicators: []string{"family", "mother", "father", "my mom", "my dad", "parent", "sibling", "brother", "sister", "my son", "daughter", "children", "kids"},
		approach: []string{
			"Correspondence: family patterns echo through generations until seen",
			"Cause and Effect: you can become a new cause within the family",
			"Polarity: hold love and frustration as degrees of one bond",
		},
	},
	{
		kind:       hermetic.ChallengePurpose,
		indicators: []string{"purpose", "meaning", "calling", "direction", "what to do with my life", "passion", "mission", "destiny", "why am i here"},
		approach: []string{
			"Mentalism: purpose is first conceived in mind",
			"Cause and Effect: act on purpose before certainty arrives",
			"Gender: let purpose be both pursued and received",
		},
	},
}

type levelTier struct {
	floor   int
	phrases []string
}

// Floors are not additive; the highest matched tier wins.
var levelTiers = []levelTier{
	{floor: 20, phrases: []string{"what is", "i'm new", "beginner", "just starting", "curious about", "never tried", "how do i start"}},
	{floor: 40, phrases: []string{"i've been studying", "i practice", "my practice", "learning about", "i read", "kybalion", "principle"}},
	{floor: 70, phrases: []string{"i teach", "years of practice", "i've mastered", "mental alchemy", "integrating the principles", "daily practice for years"}},
	{floor: 90, phrases: []string{"i am one with", "beyond duality", "the all is mind", "non-dual", "i have transcended", "neutralize the pendulum"}},
}

type domainTerm struct {
	term      string
	principle hermetic.PrincipleID
}

const (
	domainTermPoints         = 5
	practiceTermPoints       = 3
	transformationTermPoints = 2
)

var domainTerms = []domainTerm{
	{"mentalism", hermetic.Mentalism},
	{"correspondence", hermetic.Correspondence},
	{"vibration", hermetic.Vibration},
	{"polarity", hermetic.Polarity},
	{"rhythm", hermetic.Rhythm},
	{"causation", hermetic.Causation},
	{"principle of gender", hermetic.Gender},
	{"as above so below", hermetic.Correspondence},
	{"hermetic", ""},
	{"trismegistus", ""},
}

var practiceTerms = []string{
	"meditation", "meditate", "visualization", "breathwork", "journaling",
	"chakra", "mantra", "contemplation", "affirmation", "ritual",
}

var transformationTerms = []string{
	"transformation", "transmutation", "awakening", "breakthrough",
	"healing", "alchemy", "rebirth", "growth",
}

var criticalPhrases = []string{
	"can't go on", "want to die", "end it all", "no reason to live", "emergency", "hurt myself",
}
