package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/domain/chat"
	"github.com/yungbote/hermes-backend/internal/domain/profile"
)

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&profile.SpiritualProfile{},
		&profile.MilestoneAchievement{},
		&profile.UserActivity{},

		&chat.ChatThread{},
		&chat.ChatMessage{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
