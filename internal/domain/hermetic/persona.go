package hermetic

type Formality string

const (
	FormalityCasual   Formality = "casual"
	FormalityBalanced Formality = "balanced"
	FormalityFormal   Formality = "formal"
)

func (f Formality) Valid() bool {
	return f == FormalityCasual || f == FormalityBalanced || f == FormalityFormal
}

type Warmth string

const (
	WarmthGentle    Warmth = "gentle"
	WarmthWarm      Warmth = "warm"
	WarmthNurturing Warmth = "nurturing"
)

func (w Warmth) Valid() bool {
	return w == WarmthGentle || w == WarmthWarm || w == WarmthNurturing
}

type TeachingApproach string

const (
	TeachingStorytelling  TeachingApproach = "storytelling"
	TeachingSocratic      TeachingApproach = "socratic"
	TeachingExperiential  TeachingApproach = "experiential"
	TeachingContemplative TeachingApproach = "contemplative"
)

func (t TeachingApproach) Valid() bool {
	switch t {
	case TeachingStorytelling, TeachingSocratic, TeachingExperiential, TeachingContemplative:
		return true
	default:
		return false
	}
}

// ResponseApproach is the overall stance picked from contextual insights.
type ResponseApproach string

const (
	ApproachGentle      ResponseApproach = "gentle"
	ApproachDirect      ResponseApproach = "direct"
	ApproachChallenging ResponseApproach = "challenging"
	ApproachSupportive  ResponseApproach = "supportive"
)

func (a ResponseApproach) Valid() bool {
	switch a {
	case ApproachGentle, ApproachDirect, ApproachChallenging, ApproachSupportive:
		return true
	default:
		return false
	}
}

type Tone struct {
	Formality        Formality        `json:"formality"`
	Warmth           Warmth           `json:"warmth"`
	TeachingApproach TeachingApproach `json:"teaching_approach"`
}

type StoryElements struct {
	Setting    string   `json:"setting"`
	Props      []string `json:"props"`
	Atmosphere string   `json:"atmosphere"`
	Symbolism  []string `json:"symbolism"`
}

type ResponseContext struct {
	EmotionalState              *EmotionalState `json:"emotional_state,omitempty"`
	SpiritualLevel              SpiritualLevel  `json:"spiritual_level"`
	Challenges                  []LifeChallenge `json:"challenges"`
	RelevantPrinciples          []PrincipleID   `json:"relevant_principles"`
	PreviousInteractionsSummary string          `json:"previous_interactions_summary"`
}

type PersonaResponse struct {
	SystemPrompt         string          `json:"system_prompt"`
	Context              ResponseContext `json:"context"`
	Tone                 Tone            `json:"tone"`
	StorytellingElements StoryElements   `json:"storytelling_elements"`
}

// HistoryTurn is one prior conversation turn, most recent last.
type HistoryTurn struct {
	Role       string        `json:"role"`
	Content    string        `json:"content"`
	Emotion    EmotionLabel  `json:"emotion,omitempty"`
	Principles []PrincipleID `json:"principles,omitempty"`
	Insight    string        `json:"insight,omitempty"`
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type DailyPractice struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Difficulty      Difficulty    `json:"difficulty"`
	DurationMinutes DurationRange `json:"duration_minutes"`
	Principle       PrincipleID   `json:"principle"`
	Steps           []string      `json:"steps"`
	Benefits        []string      `json:"benefits"`
}

type TransformationGuidance struct {
	Challenge        LifeChallenge   `json:"challenge"`
	HermeticApproach string          `json:"hermetic_approach"`
	Practices        []DailyPractice `json:"practices"`
	Mantras          []string        `json:"mantras"`
	Affirmations     []string        `json:"affirmations"`
	Timeline         string          `json:"timeline"`
	Milestones       []string        `json:"milestones"`
}

// VoiceContext is handed to the speech provider alongside assistant text.
type VoiceContext struct {
	Mood            Mood     `json:"mood"`
	Intensity       float64  `json:"intensity"`
	SpiritualTone   string   `json:"spiritual_tone"`
	BreathingPauses bool     `json:"breathing_pauses"`
	Accentuation    []string `json:"accentuation"`
}
