package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/data/repos"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type Repos struct {
	Profile    repos.SpiritualProfileRepo
	Milestone  repos.MilestoneRepo
	Activity   repos.ActivityRepo
	ChatThread repos.ChatThreadRepo
	ChatMsg    repos.ChatMessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:    repos.NewSpiritualProfileRepo(db, log),
		Milestone:  repos.NewMilestoneRepo(db, log),
		Activity:   repos.NewActivityRepo(db, log),
		ChatThread: repos.NewChatThreadRepo(db, log),
		ChatMsg:    repos.NewChatMessageRepo(db, log),
	}
}
