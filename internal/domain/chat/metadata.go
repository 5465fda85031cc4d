package chat

import (
	"fmt"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

type MetadataKind string

const (
	// MetadataAnalysis is attached to user messages.
	MetadataAnalysis MetadataKind = "analysis"
	// MetadataReply is attached to assistant messages.
	MetadataReply MetadataKind = "reply"
)

// EmotionalContext is what the classifier found in a user message.
type EmotionalContext struct {
	EmotionalState *hermetic.EmotionalState `json:"emotional_state,omitempty"`
	Principles     []hermetic.PrincipleID   `json:"hermetic_principles"`
	Challenges     []hermetic.LifeChallenge `json:"challenges"`
	Insight        string                   `json:"insight,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// MessageMetadata is a tagged union keyed by Kind: analysis messages carry
// Emotional, reply messages carry Principles, Story, Voice and Usage.
type MessageMetadata struct {
	Kind       MetadataKind            `json:"kind"`
	Emotional  *EmotionalContext       `json:"emotional,omitempty"`
	Principles []hermetic.PrincipleID  `json:"principles,omitempty"`
	Story      *hermetic.StoryElements `json:"story,omitempty"`
	Voice      *hermetic.VoiceContext  `json:"voice,omitempty"`
	Usage      *Usage                  `json:"usage,omitempty"`
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("message metadata: "+format+": %w", append(args, apperrors.ErrInvalidArgument)...)
}

func (m MessageMetadata) Validate(role string) error {
	switch m.Kind {
	case MetadataAnalysis:
		if role != RoleUser {
			return invalid("analysis metadata on %q message", role)
		}
		if m.Emotional == nil {
			return invalid("analysis metadata without emotional context")
		}
		if len(m.Principles) > 0 || m.Story != nil || m.Voice != nil || m.Usage != nil {
			return invalid("analysis metadata carries reply fields")
		}
		if err := m.Emotional.EmotionalState.Validate(); err != nil {
			return err
		}
		for _, id := range m.Emotional.Principles {
			if !id.Valid() {
				return invalid("principle %q", id)
			}
		}
		for _, c := range m.Emotional.Challenges {
			if err := c.Validate(); err != nil {
				return err
			}
		}
	case MetadataReply:
		if role != RoleAssistant {
			return invalid("reply metadata on %q message", role)
		}
		if m.Emotional != nil {
			return invalid("reply metadata carries emotional context")
		}
		if m.Usage != nil && (m.Usage.PromptTokens < 0 || m.Usage.CompletionTokens < 0) {
			return invalid("negative token usage")
		}
		for _, id := range m.Principles {
			if !id.Valid() {
				return invalid("principle %q", id)
			}
		}
	default:
		return invalid("unknown kind %q", m.Kind)
	}
	return nil
}
