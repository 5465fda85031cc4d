package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
)

// SpiritualProfile is the persisted progression record, one row per user.
type SpiritualProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Level string `gorm:"column:level;not null;default:'SEEKER'" json:"level"`
	Score int    `gorm:"column:score;not null;default:20" json:"score"`

	PrinciplesStudied   datatypes.JSONSlice[hermetic.PrincipleID] `gorm:"column:principles_studied" json:"principles_studied"`
	PracticesCompleted  int                                       `gorm:"column:practices_completed;not null;default:0" json:"practices_completed"`
	TransformationScore float64                                   `gorm:"column:transformation_score;not null;default:0" json:"transformation_score"`

	// Tone preferences; empty means auto.
	PreferredFormality string `gorm:"column:preferred_formality;not null;default:''" json:"preferred_formality,omitempty"`
	PreferredTeaching  string `gorm:"column:preferred_teaching;not null;default:''" json:"preferred_teaching,omitempty"`
	Locale             string `gorm:"column:locale;not null;default:''" json:"locale,omitempty"`

	JourneyStartedAt time.Time `gorm:"column:journey_started_at;not null" json:"journey_started_at"`
	LastActiveAt     time.Time `gorm:"column:last_active_at;index" json:"last_active_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SpiritualProfile) TableName() string { return "spiritual_profile" }

func (p *SpiritualProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.JourneyStartedAt.IsZero() {
		p.JourneyStartedAt = time.Now().UTC()
	}
	return nil
}

// SpiritualLevel converts the row to the core value type.
func (p *SpiritualProfile) SpiritualLevel() hermetic.SpiritualLevel {
	if p == nil {
		return hermetic.DefaultSpiritualLevel()
	}
	return hermetic.SpiritualLevel{
		Level: hermetic.Level(p.Level),
		Score: p.Score,
		Progression: hermetic.Progression{
			PrinciplesStudied:   append([]hermetic.PrincipleID(nil), p.PrinciplesStudied...),
			PracticesCompleted:  p.PracticesCompleted,
			TransformationScore: p.TransformationScore,
		},
	}
}

// Apply copies an advanced level back onto the row.
func (p *SpiritualProfile) Apply(l hermetic.SpiritualLevel) {
	p.Level = string(l.Level)
	p.Score = l.Score
	p.PrinciplesStudied = append(datatypes.JSONSlice[hermetic.PrincipleID]{}, l.Progression.PrinciplesStudied...)
	p.PracticesCompleted = l.Progression.PracticesCompleted
	p.TransformationScore = l.Progression.TransformationScore
}

// MilestoneAchievement is unique per (user, milestone); the index is what
// makes awarding idempotent under concurrent requests.
type MilestoneAchievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_milestone_user_milestone,priority:1" json:"user_id"`
	MilestoneID string    `gorm:"column:milestone_id;not null;uniqueIndex:idx_milestone_user_milestone,priority:2" json:"milestone_id"`
	AchievedAt  time.Time `gorm:"column:achieved_at;not null" json:"achieved_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (MilestoneAchievement) TableName() string { return "milestone_achievement" }

func (m *MilestoneAchievement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

const (
	ActivityMessage  = "message"
	ActivityPractice = "practice"
)

// UserActivity is one timestamped event feeding streak calculation.
type UserActivity struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_activity_user_time,priority:1" json:"user_id"`
	Kind       string    `gorm:"column:kind;not null;default:'message'" json:"kind"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index:idx_user_activity_user_time,priority:2" json:"occurred_at"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (UserActivity) TableName() string { return "user_activity" }

func (a *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}
	return nil
}
