package guidance

import "github.com/yungbote/hermes-backend/internal/domain/hermetic"

var relevanceKeywords = map[hermetic.ChallengeType][]string{
	hermetic.ChallengeRelationship: {"relationship", "partner", "love"},
	hermetic.ChallengeCareer:       {"career", "work"},
	hermetic.ChallengeHealth:       {"health", "body", "heal"},
	hermetic.ChallengeSpiritual:    {"mind", "energy", "faith", "purpose"},
	hermetic.ChallengeFinancial:    {"money", "financ", "spending", "scarcity"},
	hermetic.ChallengeFamily:       {"family", "relationship", "love"},
	hermetic.ChallengePurpose:      {"purpose", "alive", "direction"},
}

var closings = map[hermetic.ChallengeType]string{
	hermetic.ChallengeRelationship: "Every relationship is a mirror held up to the soul. As you transform the way you relate to yourself, the bonds around you transform in correspondence. Love is the highest vibration, and it begins within.",
	hermetic.ChallengeCareer:       "Your work is the outer expression of an inner calling. Set your causes with intention, honour the seasons of effort and rest, and the effects will follow as surely as the Nile floods in its season.",
	hermetic.ChallengeHealth:       "The body is the temple in which the mind dwells. Tend it as a sacred vessel; what you hold in mind and the energy you cultivate are part of your healing, alongside the care of those trained to help you.",
	hermetic.ChallengeSpiritual:    "Dry seasons on the path are not signs of failure but of deepening. The All is Mind, and you have never for a moment been outside it. Keep walking; the light returns in its rhythm.",
	hermetic.ChallengeFinancial:    "Abundance and scarcity are two poles of one line, and your thoughts and actions move you along it. Set wise causes today, and let your relationship with money become an exercise in mastery rather than fear.",
	hermetic.ChallengeFamily:       "The patterns of your lineage flow through you, but you are also a new cause within it. As you heal and transmute what you carry, you become the turning point for generations before and after you.",
	hermetic.ChallengePurpose:      "Purpose is not found as a stone on the road; it is conceived in mind and born through action. Follow what awakens you, act before you are certain, and let purpose reveal itself through the walking.",
}

var basePractices = map[hermetic.ChallengeType][]hermetic.DailyPractice{
	hermetic.ChallengeRelationship: {
		{
			ID:              "relationship-mirror-journal",
			Name:            "Mirror Journal",
			Description:     "Record one reaction to another person each day and the inner pattern it reflects.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 15},
			Principle:       hermetic.Correspondence,
			Steps:           []string{"Recall one moment of friction or closeness today", "Write what you felt and what you believed about the other person", "Ask where that same pattern lives within you", "Write one sentence of compassion for both of you"},
			Benefits:        []string{"Reveals projections", "Softens reactivity", "Deepens self-knowledge"},
		},
		{
			ID:              "relationship-polarity-shift",
			Name:            "Polarity Shift",
			Description:     "Move a resentment one degree toward understanding through deliberate attention.",
			Difficulty:      hermetic.DifficultyIntermediate,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 20},
			Principle:       hermetic.Polarity,
			Steps:           []string{"Name the resentment plainly", "Find the opposite pole: what would understanding look like", "Recall one moment that sits a little closer to that pole", "Dwell on it for five breaths"},
			Benefits:        []string{"Transmutes resentment", "Restores balance"},
		},
	},
	hermetic.ChallengeCareer: {
		{
			ID:              "career-cause-ledger",
			Name:            "Cause Ledger",
			Description:     "Each evening, list the causes you set today and the effects you intend them to bring.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 5, Max: 10},
			Principle:       hermetic.Causation,
			Steps:           []string{"List three actions you took at work today", "Beside each, name the effect you hope it causes", "Mark one action to repeat and one to change", "Set tomorrow's single most important cause"},
			Benefits:        []string{"Builds agency", "Clarifies priorities"},
		},
	},
	hermetic.ChallengeHealth: {
		{
			ID:              "health-vibrational-breath",
			Name:            "Vibrational Breath",
			Description:     "Slow rhythmic breathing that calms the nervous system and raises your energy.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 5, Max: 15},
			Principle:       hermetic.Vibration,
			Steps:           []string{"Sit or lie comfortably", "Inhale for four counts and exhale for six", "Imagine each breath as light moving through the body", "Close by thanking the body for its work"},
			Benefits:        []string{"Calms the body", "Supports rest and recovery"},
		},
		{
			ID:              "health-rhythm-log",
			Name:            "Rhythm Log",
			Description:     "Track daily energy to honour the natural cycles of effort and rest.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 5, Max: 5},
			Principle:       hermetic.Rhythm,
			Steps:           []string{"Rate your energy morning, afternoon and evening", "Note sleep, food and movement", "After a week, look for the pattern"},
			Benefits:        []string{"Reveals personal cycles", "Prevents overexertion"},
		},
	},
	hermetic.ChallengeSpiritual: {
		{
			ID:              "spiritual-silent-sitting",
			Name:            "Silent Sitting",
			Description:     "Sit in silence with the axiom \"The All is Mind\" and return to it whenever the mind wanders.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 30},
			Principle:       hermetic.Mentalism,
			Steps:           []string{"Sit upright in a quiet place", "Repeat the axiom silently three times", "Rest in the silence that follows", "When thoughts arise, return gently to the axiom"},
			Benefits:        []string{"Restores connection", "Quiets spiritual dryness"},
		},
	},
	hermetic.ChallengeFinancial: {
		{
			ID:              "financial-sufficiency-inventory",
			Name:            "Sufficiency Inventory",
			Description:     "Shift attention from lack to what is already sufficient, then set one wise financial cause.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 15},
			Principle:       hermetic.Polarity,
			Steps:           []string{"List five things you already have enough of", "Write your current fear about money in one sentence", "Write its opposite pole as a calm statement", "Choose one small financial action for tomorrow"},
			Benefits:        []string{"Reduces fear", "Encourages wise action"},
		},
		{
			ID:              "financial-cause-tracking",
			Name:            "Cause Tracking",
			Description:     "Trace each expense of the day to the need or emotion that caused it.",
			Difficulty:      hermetic.DifficultyIntermediate,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 10},
			Principle:       hermetic.Causation,
			Steps:           []string{"List the day's expenses", "Beside each, name the cause behind it", "Circle the ones set by fear or habit", "Decide which cause to change first"},
			Benefits:        []string{"Builds awareness", "Breaks unconscious patterns"},
		},
	},
	hermetic.ChallengeFamily: {
		{
			ID:              "family-lineage-map",
			Name:            "Lineage Map",
			Description:     "Map a recurring family pattern across generations and name where it can end.",
			Difficulty:      hermetic.DifficultyIntermediate,
			DurationMinutes: hermetic.DurationRange{Min: 15, Max: 30},
			Principle:       hermetic.Correspondence,
			Steps:           []string{"Name one pattern you see in your family", "Trace it back through parents and grandparents", "Notice where it lives in you", "Write the new cause you choose to set"},
			Benefits:        []string{"Breaks inherited cycles", "Builds compassion for ancestors"},
		},
	},
	hermetic.ChallengePurpose: {
		{
			ID:              "purpose-aliveness-inventory",
			Name:            "Aliveness Inventory",
			Description:     "Notice each day which moments made you feel most alive and what they share.",
			Difficulty:      hermetic.DifficultyBeginner,
			DurationMinutes: hermetic.DurationRange{Min: 10, Max: 15},
			Principle:       hermetic.Mentalism,
			Steps:           []string{"Recall three moments of aliveness from the past week", "Write what you were doing and who you were with", "Look for the common thread", "Choose one small act that follows that thread"},
			Benefits:        []string{"Reveals calling", "Turns reflection into action"},
		},
	},
}

var mantras = map[hermetic.ChallengeType][]string{
	hermetic.ChallengeRelationship: {"As within, so without; I heal my bonds by healing myself.", "I give and receive in balance.", "Love is the highest vibration I can hold.", "Every person is a mirror of the One."},
	hermetic.ChallengeCareer:       {"I am the cause of my own becoming.", "My work expresses my inner calling.", "Every season of effort has its harvest.", "I set causes with intention and patience."},
	hermetic.ChallengeHealth:       {"My body is a sacred temple.", "I breathe in healing and breathe out tension.", "Every cell vibrates with life.", "Rest and effort flow in rhythm within me."},
	hermetic.ChallengeSpiritual:    {"The All is Mind, and I am within the All.", "As above, so below; the path is here.", "Light returns in its season.", "I am never separate from the Source."},
	hermetic.ChallengeFinancial:    {"I set wise causes and trust the effects.", "Sufficiency is a state of mind I choose.", "I move from fear to trust by degrees.", "Abundance flows through wise action."},
	hermetic.ChallengeFamily:       {"I honour my lineage and choose my own path.", "I am a new cause within my family.", "Love and boundaries live together in me.", "The pattern ends with awareness."},
	hermetic.ChallengePurpose:      {"My purpose unfolds with each step.", "I follow what makes me feel alive.", "Purpose is conceived in mind and born through action.", "I am exactly where the path begins."},
}

var affirmations = map[hermetic.ChallengeType][]string{
	hermetic.ChallengeRelationship: {"I am worthy of love and respect.", "I choose understanding over resentment.", "My relationships reflect my growing inner harmony.", "I communicate with honesty and kindness."},
	hermetic.ChallengeCareer:       {"I have skills and gifts the world needs.", "Setbacks are information, not verdicts.", "I create opportunities through deliberate action.", "I am growing into the work I am meant for."},
	hermetic.ChallengeHealth:       {"I listen to my body with compassion.", "I support my healing every day.", "My mind and body work together.", "I accept help as part of my healing."},
	hermetic.ChallengeSpiritual:    {"My path is unfolding perfectly.", "Doubt is part of deepening faith.", "I trust the rhythm of my spiritual life.", "I am connected to something greater than myself."},
	hermetic.ChallengeFinancial:    {"I make wise and calm decisions about money.", "I am capable of creating stability.", "My worth is not measured by my bank balance.", "Each small step builds my security."},
	hermetic.ChallengeFamily:       {"I can love my family and protect my peace.", "I release patterns that no longer serve us.", "I forgive at my own pace.", "My healing heals my family."},
	hermetic.ChallengePurpose:      {"My life has meaning.", "I trust my inner guidance.", "Clarity comes as I act.", "I am allowed to change direction."},
}

var timelines = map[hermetic.Severity]map[hermetic.ChallengeType]string{
	hermetic.SeverityCritical: {
		hermetic.ChallengeRelationship: "6 months to 2 years of dedicated practice, with professional support, before the bond (or its ending) finds a new balance.",
		hermetic.ChallengeCareer:       "6 to 18 months to rebuild stability and direction, beginning with immediate practical steps.",
		hermetic.ChallengeHealth:       "An ongoing journey measured in months to years, always alongside qualified medical care.",
		hermetic.ChallengeSpiritual:    "6 months to 2 years for a dark night of the soul to give way to renewed light.",
		hermetic.ChallengeFinancial:    "6 months to 2 years to restore stability, starting with urgent practical help this week.",
		hermetic.ChallengeFamily:       "1 to 3 years to transmute deep family wounds, ideally with the help of a counsellor.",
		hermetic.ChallengePurpose:      "6 months to 2 years of patient exploration before a new direction takes firm shape.",
	},
	hermetic.SeverityMajor: {
		hermetic.ChallengeRelationship: "3 to 12 months of consistent practice to shift the pattern.",
		hermetic.ChallengeCareer:       "3 to 9 months to see meaningful change in your working life.",
		hermetic.ChallengeHealth:       "3 to 12 months of steady care for body and mind.",
		hermetic.ChallengeSpiritual:    "3 to 9 months of daily practice to restore a sense of connection.",
		hermetic.ChallengeFinancial:    "3 to 12 months to rebalance your finances.",
		hermetic.ChallengeFamily:       "6 to 18 months to establish healthier family dynamics.",
		hermetic.ChallengePurpose:      "3 to 12 months of exploration to clarify your direction.",
	},
	hermetic.SeverityModerate: {
		hermetic.ChallengeRelationship: "1 to 3 months of mindful attention to see the dynamic soften.",
		hermetic.ChallengeCareer:       "1 to 3 months to find renewed clarity and momentum.",
		hermetic.ChallengeFinancial:    "1 to 3 months to establish healthier financial habits.",
		hermetic.ChallengePurpose:      "2 to 4 months of reflection and small experiments.",
	},
}

const genericTimeline = "A few weeks to a few months, depending on the consistency of your practice."

const spiralCaveat = " Remember that transformation moves in a spiral rather than a straight line; returning to old ground is part of the ascent."

var genericMilestones = []string{
	"You notice the pattern as it arises rather than afterwards",
	"You complete your chosen practice for seven consecutive days",
	"You respond to a familiar trigger with a new choice",
	"You can explain the relevant principle in your own words",
	"You feel a measurable shift in the intensity of the difficulty",
	"You offer what you have learned to someone else",
}

var typeMilestones = map[hermetic.ChallengeType][]string{
	hermetic.ChallengeRelationship: {"You express a need calmly and directly", "You recognise a projection before acting on it", "You set a boundary without guilt", "You feel compassion for the other person's struggle", "The relationship finds a new, healthier balance"},
	hermetic.ChallengeCareer:       {"You define what meaningful work means to you", "You take one deliberate career action each week", "You receive feedback without collapsing into it", "You negotiate for what you need", "Your work reflects your values"},
	hermetic.ChallengeHealth:       {"You establish a daily rhythm of rest and movement", "You follow your care plan consistently", "You meet symptoms with curiosity rather than panic", "You notice the link between thought and body"},
	hermetic.ChallengeSpiritual:    {"You sit in practice even on days of dryness", "You experience a moment of felt connection", "Doubt and faith coexist without distress", "Your practice becomes a source of joy rather than duty"},
	hermetic.ChallengeFinancial:    {"You know exactly where your money goes each month", "You make a financial decision from calm rather than fear", "You build a small reserve", "You feel sufficient with what you have", "You set a long-term financial cause"},
	hermetic.ChallengeFamily:       {"You name the pattern you inherited", "You hold a boundary with a family member", "You respond rather than react at a family gathering", "You forgive one old wound"},
	hermetic.ChallengePurpose:      {"You identify three moments of aliveness", "You run one small experiment toward a calling", "You describe your purpose in a single sentence", "You act on purpose without waiting for certainty", "Others recognise your purpose in your actions"},
}

var difficultyForLevel = map[hermetic.Level]hermetic.Difficulty{
	hermetic.LevelSeeker:  hermetic.DifficultyBeginner,
	hermetic.LevelStudent: hermetic.DifficultyIntermediate,
	hermetic.LevelAdept:   hermetic.DifficultyAdvanced,
	hermetic.LevelMaster:  hermetic.DifficultyAdvanced,
}

var durationForDifficulty = map[hermetic.Difficulty]hermetic.DurationRange{
	hermetic.DifficultyBeginner:     {Min: 5, Max: 10},
	hermetic.DifficultyIntermediate: {Min: 10, Max: 20},
	hermetic.DifficultyAdvanced:     {Min: 20, Max: 40},
}

var practiceCount = map[hermetic.Severity]int{
	hermetic.SeverityCritical: 5,
	hermetic.SeverityMajor:    4,
	hermetic.SeverityModerate: 3,
	hermetic.SeverityMinor:    3,
}
