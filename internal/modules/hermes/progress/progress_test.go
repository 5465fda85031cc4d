package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

func at(loc *time.Location, y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, loc)
}

func TestCalculateStreak(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := at(loc, 2026, time.March, 10, 9)

	cases := []struct {
		name string
		ts   []time.Time
		want int
	}{
		{"empty", nil, 0},
		{"today only", []time.Time{at(loc, 2026, time.March, 10, 8)}, 1},
		{"today and two before", []time.Time{
			at(loc, 2026, time.March, 10, 8),
			at(loc, 2026, time.March, 9, 23),
			at(loc, 2026, time.March, 8, 1),
			at(loc, 2026, time.March, 8, 2),
		}, 3},
		{"today missing, yesterday tolerated", []time.Time{
			at(loc, 2026, time.March, 9, 12),
			at(loc, 2026, time.March, 8, 12),
		}, 2},
		{"gap of two days breaks", []time.Time{
			at(loc, 2026, time.March, 8, 12),
			at(loc, 2026, time.March, 7, 12),
		}, 0},
		{"gap inside run", []time.Time{
			at(loc, 2026, time.March, 10, 7),
			at(loc, 2026, time.March, 9, 7),
			at(loc, 2026, time.March, 7, 7),
		}, 2},
	}
	for _, tc := range cases {
		if got := CalculateStreak(tc.ts, now, 30); got != tc.want {
			t.Fatalf("%s: want=%d got=%d", tc.name, tc.want, got)
		}
	}
}

func TestCalculateStreakUsesLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	now := at(loc, 2026, time.March, 10, 6)
	// 22:00 UTC on the 8th is 07:00 on the 9th in UTC+9.
	ts := []time.Time{
		time.Date(2026, time.March, 8, 22, 0, 0, 0, time.UTC),
		now.Add(-time.Hour),
	}
	if got := CalculateStreak(ts, now, 30); got != 2 {
		t.Fatalf("streak: want=2 got=%d", got)
	}
}

func TestCalculateStreakWindow(t *testing.T) {
	now := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
	var ts []time.Time
	for i := 0; i < 40; i++ {
		ts = append(ts, now.AddDate(0, 0, -i))
	}
	if got := CalculateStreak(ts, now, 30); got != 30 {
		t.Fatalf("window 30: got=%d", got)
	}
	if got := CalculateStreak(ts, now, 7); got != 7 {
		t.Fatalf("window 7: got=%d", got)
	}
}

func TestCalculateLongestStreak(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2026, time.May, day, 10, 0, 0, 0, time.UTC) }
	ts := []time.Time{d(20), d(1), d(2), d(2), d(3), d(10), d(11), d(12), d(13), d(21)}
	if got := CalculateLongestStreak(ts, time.UTC); got != 4 {
		t.Fatalf("longest: want=4 got=%d", got)
	}
	if got := CalculateLongestStreak(nil, time.UTC); got != 0 {
		t.Fatalf("empty: want=0 got=%d", got)
	}
	if got := CalculateLongestStreak([]time.Time{d(5)}, nil); got != 1 {
		t.Fatalf("single: want=1 got=%d", got)
	}
}

func TestProgressToNextLevelBoundsAndMonotonic(t *testing.T) {
	for _, level := range []hermetic.Level{hermetic.LevelSeeker, hermetic.LevelStudent, hermetic.LevelAdept} {
		prev := -1.0
		for score := 0; score <= 100; score += 5 {
			got, err := ProgressToNextLevel(Metrics{Score: score, PracticesCompleted: 2}, level)
			if err != nil {
				t.Fatalf("ProgressToNextLevel: %v", err)
			}
			if got < 0 || got > 1 {
				t.Fatalf("%s score=%d: out of range %v", level, score, got)
			}
			if got < prev {
				t.Fatalf("%s score=%d: decreased %v -> %v", level, score, prev, got)
			}
			prev = got
		}
		prev = -1.0
		for practices := 0; practices <= 40; practices++ {
			got, _ := ProgressToNextLevel(Metrics{Score: 30, PracticesCompleted: practices}, level)
			if got < prev {
				t.Fatalf("%s practices=%d: decreased", level, practices)
			}
			prev = got
		}
		prev = -1.0
		for n := 0; n <= len(hermetic.PrincipleIDs); n++ {
			got, _ := ProgressToNextLevel(Metrics{Score: 30, PrinciplesStudied: hermetic.PrincipleIDs[:n]}, level)
			if got < prev {
				t.Fatalf("%s principles=%d: decreased", level, n)
			}
			prev = got
		}
	}
}

func TestProgressToNextLevelValues(t *testing.T) {
	got, err := ProgressToNextLevel(Metrics{
		Score:              35,
		PracticesCompleted: 3,
		PrinciplesStudied:  []hermetic.PrincipleID{hermetic.Mentalism, hermetic.Mentalism, hermetic.Rhythm},
	}, hermetic.LevelSeeker)
	if err != nil || got != 1 {
		t.Fatalf("seeker complete: got=%v err=%v", got, err)
	}
	got, _ = ProgressToNextLevel(Metrics{}, hermetic.LevelMaster)
	if got != 1 {
		t.Fatalf("master: want=1 got=%v", got)
	}
	if _, err := ProgressToNextLevel(Metrics{}, hermetic.Level("GURU")); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("invalid level: want ErrInvalidArgument got=%v", err)
	}
	if _, err := ProgressToNextLevel(Metrics{Score: -1}, hermetic.LevelSeeker); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("negative score: want ErrInvalidArgument got=%v", err)
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := map[int]hermetic.Level{
		0: hermetic.LevelSeeker, 34: hermetic.LevelSeeker, 35: hermetic.LevelStudent,
		59: hermetic.LevelStudent, 60: hermetic.LevelAdept, 79: hermetic.LevelAdept,
		80: hermetic.LevelMaster, 100: hermetic.LevelMaster,
	}
	for score, want := range cases {
		if got := hermetic.LevelForScore(score); got != want {
			t.Fatalf("LevelForScore(%d): want=%s got=%s", score, want, got)
		}
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	current := hermetic.SpiritualLevel{
		Level: hermetic.LevelStudent,
		Score: 50,
		Progression: hermetic.Progression{
			PrinciplesStudied:  []hermetic.PrincipleID{hermetic.Rhythm},
			PracticesCompleted: 4,
		},
	}
	assessed := hermetic.SpiritualLevel{
		Level: hermetic.LevelSeeker,
		Score: 25,
		Progression: hermetic.Progression{
			PrinciplesStudied:   []hermetic.PrincipleID{hermetic.Mentalism, hermetic.Rhythm},
			PracticesCompleted:  1,
			TransformationScore: 1,
		},
	}
	adv, err := Advance(current, assessed)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if adv.Profile.Score != 50 || adv.Profile.Level != hermetic.LevelStudent || adv.LevelAdvanced {
		t.Fatalf("score must not drop: got=%+v", adv)
	}
	wantPrinciples := []hermetic.PrincipleID{hermetic.Mentalism, hermetic.Rhythm}
	if diff := cmp.Diff(wantPrinciples, adv.Profile.Progression.PrinciplesStudied); diff != "" {
		t.Fatalf("principles (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]hermetic.PrincipleID{hermetic.Mentalism}, adv.NewPrinciples); diff != "" {
		t.Fatalf("new principles (-want +got):\n%s", diff)
	}
	if adv.Profile.Progression.PracticesCompleted != 5 || adv.Profile.Progression.TransformationScore != 1 {
		t.Fatalf("counters: got=%+v", adv.Profile.Progression)
	}
}

func TestAdvanceCrossesThreshold(t *testing.T) {
	adv, err := Advance(hermetic.SpiritualLevel{}, hermetic.SpiritualLevel{Level: hermetic.LevelAdept, Score: 70})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !adv.LevelAdvanced || adv.PreviousLevel != hermetic.LevelSeeker || adv.Profile.Level != hermetic.LevelAdept {
		t.Fatalf("advancement: got=%+v", adv)
	}
}

func TestAdvanceCounterScore(t *testing.T) {
	current := hermetic.SpiritualLevel{
		Level: hermetic.LevelSeeker,
		Score: 20,
		Progression: hermetic.Progression{
			PrinciplesStudied:  []hermetic.PrincipleID{hermetic.Mentalism, hermetic.Polarity},
			PracticesCompleted: 2,
		},
	}
	adv, err := Advance(current, hermetic.SpiritualLevel{Level: hermetic.LevelSeeker, Score: 20, Progression: hermetic.Progression{PracticesCompleted: 1}})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	// 20 + 5*2 + 3*3
	if adv.Profile.Score != 39 || adv.Profile.Level != hermetic.LevelStudent {
		t.Fatalf("counter score: got=%+v", adv.Profile)
	}
}

func TestAdvanceRejectsInvalid(t *testing.T) {
	_, err := Advance(hermetic.SpiritualLevel{Level: hermetic.LevelSeeker, Score: -3}, hermetic.DefaultSpiritualLevel())
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("negative score: want ErrInvalidArgument got=%v", err)
	}
	_, err = Advance(hermetic.DefaultSpiritualLevel(), hermetic.SpiritualLevel{Level: "SAGE", Score: 30})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("invalid level: want ErrInvalidArgument got=%v", err)
	}
}

func TestEvaluateMilestonesIdempotent(t *testing.T) {
	m := MilestoneMetrics{ConversationCount: 12, CurrentStreak: 3, LongestStreak: 8, PrinciplesStudied: 3, TransformationScore: 4}
	first := EvaluateMilestones(m, nil)
	var ids []string
	achieved := map[string]bool{}
	for _, ms := range first {
		ids = append(ids, ms.ID)
		achieved[ms.ID] = true
	}
	want := []string{"first_conversation", "ten_conversations", "streak_3", "streak_7", "first_principle", "three_principles"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("milestones (-want +got):\n%s", diff)
	}
	if again := EvaluateMilestones(m, achieved); len(again) != 0 {
		t.Fatalf("re-evaluation awarded again: %+v", again)
	}
	if _, ok := MilestoneByID("streak_30"); !ok {
		t.Fatalf("MilestoneByID: missing streak_30")
	}
}
