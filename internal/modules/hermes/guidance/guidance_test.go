package guidance

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGenerateCriticalRelationshipAdept(t *testing.T) {
	ch := hermetic.LifeChallenge{
		Type:        hermetic.ChallengeRelationship,
		Description: "My marriage is falling apart",
		Severity:    hermetic.SeverityCritical,
	}
	g, err := Generate(ch, hermetic.LevelAdept)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(g.Practices) != 5 {
		t.Fatalf("practices: want=5 got=%d", len(g.Practices))
	}
	if !strings.HasPrefix(g.Timeline, "6 months to 2 years") || !strings.HasSuffix(g.Timeline, spiralCaveat) {
		t.Fatalf("timeline: got=%q", g.Timeline)
	}
	if g.Practices[0].ID != "relationship-mirror-journal" || g.Practices[1].ID != "relationship-polarity-shift" {
		t.Fatalf("base practices should lead, got=%s,%s", g.Practices[0].ID, g.Practices[1].ID)
	}
	p := g.Practices[2]
	if p.ID != "relationship-correspondence-advanced" || p.Principle != hermetic.Correspondence || p.Difficulty != hermetic.DifficultyAdvanced {
		t.Fatalf("generated practice: got=%+v", p)
	}
	if p.Name != "Correspondence for Relationship" {
		t.Fatalf("generated name: got=%q", p.Name)
	}
	if len(g.Mantras) != 4 || len(g.Affirmations) != 4 {
		t.Fatalf("mantras/affirmations: got=%d/%d", len(g.Mantras), len(g.Affirmations))
	}
	if len(g.Milestones) != 6+len(typeMilestones[hermetic.ChallengeRelationship]) {
		t.Fatalf("milestones: got=%d", len(g.Milestones))
	}
	if !strings.HasSuffix(g.HermeticApproach, closings[hermetic.ChallengeRelationship]) {
		t.Fatalf("approach should end with the closing paragraph")
	}
	if !strings.Contains(g.HermeticApproach, "conflict with a partner") {
		t.Fatalf("approach should include relationship applications: %q", g.HermeticApproach)
	}
	if g.Challenge.Description != ch.Description {
		t.Fatalf("challenge should be carried through")
	}
}

func TestPracticeCountBySeverity(t *testing.T) {
	want := map[hermetic.Severity]int{
		hermetic.SeverityCritical: 5,
		hermetic.SeverityMajor:    4,
		hermetic.SeverityModerate: 3,
		hermetic.SeverityMinor:    3,
	}
	for _, ct := range hermetic.ChallengeTypes {
		for sev, n := range want {
			g, err := Generate(hermetic.LifeChallenge{Type: ct, Severity: sev}, hermetic.LevelSeeker)
			if err != nil {
				t.Fatalf("%s/%s: %v", ct, sev, err)
			}
			if len(g.Practices) != n {
				t.Fatalf("%s/%s practices: want=%d got=%d", ct, sev, n, len(g.Practices))
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, ct := range hermetic.ChallengeTypes {
		for _, lv := range hermetic.Levels {
			ch := hermetic.LifeChallenge{Type: ct, Severity: hermetic.SeverityMajor, Description: "x"}
			a, err := Generate(ch, lv)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			b, _ := Generate(ch, lv)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Fatalf("%s/%s not deterministic (-a +b):\n%s", ct, lv, diff)
			}
		}
	}
}

func TestGenerateIgnoresDescription(t *testing.T) {
	a, _ := Generate(hermetic.LifeChallenge{Type: hermetic.ChallengeCareer, Description: "lost my job"}, hermetic.LevelStudent)
	b, _ := Generate(hermetic.LifeChallenge{Type: hermetic.ChallengeCareer, Description: "boss is awful"}, hermetic.LevelStudent)
	a.Challenge, b.Challenge = hermetic.LifeChallenge{}, hermetic.LifeChallenge{}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("description leaked into guidance (-a +b):\n%s", diff)
	}
}

func TestGenerateDefaultsAndErrors(t *testing.T) {
	g, err := Generate(hermetic.LifeChallenge{Type: hermetic.ChallengeHealth}, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if g.Challenge.Severity != hermetic.SeverityModerate || len(g.Practices) != 3 {
		t.Fatalf("defaults: severity=%s practices=%d", g.Challenge.Severity, len(g.Practices))
	}
	if g.Practices[len(g.Practices)-1].Difficulty != hermetic.DifficultyBeginner {
		t.Fatalf("empty level should be treated as SEEKER")
	}
	if g.Timeline != genericTimeline+spiralCaveat {
		t.Fatalf("moderate health should use the generic timeline, got=%q", g.Timeline)
	}

	bad := []struct {
		ch    hermetic.LifeChallenge
		level hermetic.Level
	}{
		{hermetic.LifeChallenge{Type: "weather"}, hermetic.LevelSeeker},
		{hermetic.LifeChallenge{Type: hermetic.ChallengeCareer, Severity: "apocalyptic"}, hermetic.LevelSeeker},
		{hermetic.LifeChallenge{Type: hermetic.ChallengeCareer}, "GURU"},
	}
	for _, tc := range bad {
		if _, err := Generate(tc.ch, tc.level); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("Generate(%+v, %s): want ErrInvalidArgument got=%v", tc.ch, tc.level, err)
		}
	}
}

func TestGenerateDoesNotShareTables(t *testing.T) {
	ch := hermetic.LifeChallenge{Type: hermetic.ChallengeFamily, Severity: hermetic.SeverityCritical}
	g, _ := Generate(ch, hermetic.LevelSeeker)
	g.Mantras[0] = "mutated"
	g.Practices[0].Steps[0] = "mutated"
	g.Milestones[0] = "mutated"

	again, _ := Generate(ch, hermetic.LevelSeeker)
	if again.Mantras[0] == "mutated" || again.Practices[0].Steps[0] == "mutated" || again.Milestones[0] == "mutated" {
		t.Fatalf("static tables were mutated through a returned bundle")
	}
}

type memRemote struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
	sets int
}

func newMemRemote() *memRemote { return &memRemote{data: map[string][]byte{}} }

func (m *memRemote) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memRemote) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sets++
	m.data[key] = val
	return nil
}

func TestCacheTiers(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote()
	var sources []string
	observe := func(s string) { sources = append(sources, s) }

	c1, err := NewCache(8, WithRemote(remote, time.Minute), WithObserver(observe))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	ch := hermetic.LifeChallenge{Type: hermetic.ChallengePurpose, Severity: hermetic.SeverityMajor, Description: "what am I for"}
	first, err := c1.Get(ctx, ch, hermetic.LevelStudent)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, _ := c1.Get(ctx, ch, hermetic.LevelStudent)

	c2, _ := NewCache(8, WithRemote(remote, time.Minute), WithObserver(observe))
	third, _ := c2.Get(ctx, ch, hermetic.LevelStudent)

	want := []string{SourceGenerated, SourceMemory, SourceRemote}
	if diff := cmp.Diff(want, sources); diff != "" {
		t.Fatalf("sources (-want +got):\n%s", diff)
	}
	if remote.sets != 1 {
		t.Fatalf("remote sets: want=1 got=%d", remote.sets)
	}
	direct, _ := Generate(ch, hermetic.LevelStudent)
	for i, g := range []hermetic.TransformationGuidance{first, second, third} {
		if diff := cmp.Diff(direct, g); diff != "" {
			t.Fatalf("lookup %d differs from Generate (-want +got):\n%s", i, diff)
		}
	}
}

func TestCacheRemoteFailureFallsThrough(t *testing.T) {
	remote := newMemRemote()
	remote.err = errors.New("connection refused")
	c, _ := NewCache(0, WithRemote(remote, 0))
	g, err := c.Get(context.Background(), hermetic.LifeChallenge{Type: hermetic.ChallengeSpiritual}, hermetic.LevelMaster)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(g.Practices) != 3 || c.Len() != 1 {
		t.Fatalf("expected generated bundle cached locally, practices=%d len=%d", len(g.Practices), c.Len())
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	c, _ := NewCache(4)
	ch := hermetic.LifeChallenge{Type: hermetic.ChallengeCareer}
	g, _ := c.Get(context.Background(), ch, hermetic.LevelSeeker)
	g.Affirmations[0] = "mutated"
	again, _ := c.Get(context.Background(), ch, hermetic.LevelSeeker)
	if again.Affirmations[0] == "mutated" {
		t.Fatalf("cached entry was mutated by a caller")
	}
}
