package hermetic

import (
	"fmt"
	"strings"

	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

type ChallengeType string

const (
	ChallengeRelationship ChallengeType = "relationship"
	ChallengeCareer       ChallengeType = "career"
	ChallengeHealth       ChallengeType = "health"
	ChallengeSpiritual    ChallengeType = "spiritual"
	ChallengeFinancial    ChallengeType = "financial"
	ChallengeFamily       ChallengeType = "family"
	ChallengePurpose      ChallengeType = "purpose"
)

var ChallengeTypes = []ChallengeType{
	ChallengeRelationship,
	ChallengeCareer,
	ChallengeHealth,
	ChallengeSpiritual,
	ChallengeFinancial,
	ChallengeFamily,
	ChallengePurpose,
}

func (c ChallengeType) Valid() bool {
	for _, t := range ChallengeTypes {
		if t == c {
			return true
		}
	}
	return false
}

func ParseChallengeType(raw string) (ChallengeType, error) {
	t := ChallengeType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown challenge type %q: %w", raw, apperrors.ErrInvalidArgument)
	}
	return t, nil
}

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

var Severities = []Severity{SeverityMinor, SeverityModerate, SeverityMajor, SeverityCritical}

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor, SeverityCritical:
		return true
	default:
		return false
	}
}

func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return SeverityModerate, nil
	}
	if !s.Valid() {
		return "", fmt.Errorf("unknown severity %q: %w", raw, apperrors.ErrInvalidArgument)
	}
	return s, nil
}

type LifeChallenge struct {
	Type             ChallengeType `json:"type"`
	Description      string        `json:"description"`
	Severity         Severity      `json:"severity"`
	HermeticApproach []string      `json:"hermetic_approach"`
}

func (c LifeChallenge) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("challenge type %q: %w", c.Type, apperrors.ErrInvalidArgument)
	}
	if !c.Severity.Valid() {
		return fmt.Errorf("challenge severity %q: %w", c.Severity, apperrors.ErrInvalidArgument)
	}
	return nil
}
