package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/hermes-backend/internal/data/repos/testutil"
	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
)

func TestSpiritualProfileRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewSpiritualProfileRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	userID := uuid.New()

	if _, err := repo.GetByUserID(dbc, userID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetByUserID missing: want=ErrNotFound got=%v", err)
	}
	if _, err := repo.GetByUserID(dbc, uuid.Nil); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("GetByUserID nil: want=ErrInvalidArgument got=%v", err)
	}

	row := &profile.SpiritualProfile{UserID: userID, LastActiveAt: time.Now().UTC()}
	row.Apply(hermetic.DefaultSpiritualLevel())
	if err := repo.Upsert(dbc, row); err != nil {
		t.Fatalf("Upsert create: %v", err)
	}

	advanced := &profile.SpiritualProfile{UserID: userID, LastActiveAt: time.Now().UTC(), Locale: "es"}
	advanced.Apply(hermetic.SpiritualLevel{
		Level: hermetic.LevelStudent,
		Score: 34,
		Progression: hermetic.Progression{
			PrinciplesStudied:  []hermetic.PrincipleID{hermetic.Mentalism},
			PracticesCompleted: 2,
		},
	})
	if err := repo.Upsert(dbc, advanced); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.LockByUserID(dbc, userID)
	if err != nil {
		t.Fatalf("LockByUserID: %v", err)
	}
	lvl := got.SpiritualLevel()
	if lvl.Level != hermetic.LevelStudent || lvl.Score != 34 {
		t.Fatalf("level: want=STUDENT/34 got=%s/%d", lvl.Level, lvl.Score)
	}
	if len(lvl.Progression.PrinciplesStudied) != 1 || lvl.Progression.PrinciplesStudied[0] != hermetic.Mentalism {
		t.Fatalf("principles studied: got=%v", lvl.Progression.PrinciplesStudied)
	}
	if got.Locale != "es" {
		t.Fatalf("locale: want=es got=%q", got.Locale)
	}

	if _, err := repo.LockByUserID(dbctx.Context{Ctx: context.Background()}, userID); err == nil {
		t.Fatalf("LockByUserID without tx: want error")
	}

	if err := repo.DeleteByUserID(dbc, userID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if _, err := repo.GetByUserID(dbc, userID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("after delete: want=ErrNotFound got=%v", err)
	}
}

func TestMilestoneRepoAwardIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewMilestoneRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	userID := uuid.New()
	now := time.Now().UTC()

	awarded, err := repo.Award(dbc, userID, []string{"first-step", "student-rank"}, now)
	if err != nil {
		t.Fatalf("Award: %v", err)
	}
	if len(awarded) != 2 {
		t.Fatalf("first award: want=2 got=%v", awarded)
	}

	awarded, err = repo.Award(dbc, userID, []string{"student-rank", "week-streak"}, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Award again: %v", err)
	}
	if len(awarded) != 1 || awarded[0] != "week-streak" {
		t.Fatalf("second award: want=[week-streak] got=%v", awarded)
	}

	rows, err := repo.ListByUser(dbc, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByUser: want=3 got=%d", len(rows))
	}

	if err := repo.DeleteByUserID(dbc, userID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	rows, err = repo.ListByUser(dbc, userID)
	if err != nil || len(rows) != 0 {
		t.Fatalf("after delete: want=0 rows got=%d err=%v", len(rows), err)
	}
}

func TestActivityRepoListTimestamps(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewActivityRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, d := range []int{2, 0, 1} {
		row := &profile.UserActivity{UserID: userID, Kind: profile.ActivityMessage, OccurredAt: base.AddDate(0, 0, d)}
		if err := repo.Record(dbc, row); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	all, err := repo.ListTimestamps(dbc, userID, time.Time{})
	if err != nil {
		t.Fatalf("ListTimestamps: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListTimestamps: want=3 got=%d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Before(all[i-1]) {
			t.Fatalf("timestamps not ascending: %v", all)
		}
	}

	recent, err := repo.ListTimestamps(dbc, userID, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListTimestamps since: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("ListTimestamps since: want=2 got=%d", len(recent))
	}
}
