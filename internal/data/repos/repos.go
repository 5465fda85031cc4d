package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/data/repos/chat"
	"github.com/yungbote/hermes-backend/internal/data/repos/profile"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type SpiritualProfileRepo = profile.SpiritualProfileRepo
type MilestoneRepo = profile.MilestoneRepo
type ActivityRepo = profile.ActivityRepo

type ChatThreadRepo = chat.ChatThreadRepo
type ChatMessageRepo = chat.ChatMessageRepo

func NewSpiritualProfileRepo(db *gorm.DB, log *logger.Logger) SpiritualProfileRepo {
	return profile.NewSpiritualProfileRepo(db, log)
}

func NewMilestoneRepo(db *gorm.DB, log *logger.Logger) MilestoneRepo {
	return profile.NewMilestoneRepo(db, log)
}

func NewActivityRepo(db *gorm.DB, log *logger.Logger) ActivityRepo {
	return profile.NewActivityRepo(db, log)
}

func NewChatThreadRepo(db *gorm.DB, log *logger.Logger) ChatThreadRepo {
	return chat.NewChatThreadRepo(db, log)
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return chat.NewChatMessageRepo(db, log)
}
