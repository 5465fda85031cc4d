package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/domain/chat"
	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/domain/profile"
)

func SeedThread(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string) *chat.ChatThread {
	tb.Helper()
	th := &chat.ChatThread{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Locale: "en",
	}
	if err := tx.WithContext(ctx).Create(th).Error; err != nil {
		tb.Fatalf("seed thread: %v", err)
	}
	return th
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, level hermetic.SpiritualLevel) *profile.SpiritualProfile {
	tb.Helper()
	row := &profile.SpiritualProfile{
		UserID:           userID,
		JourneyStartedAt: time.Now().UTC().Add(-72 * time.Hour),
	}
	row.Apply(level)
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return row
}
