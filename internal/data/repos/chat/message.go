package chat

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/domain/chat"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type ChatMessageRepo interface {
	Create(dbc dbctx.Context, rows []*chat.ChatMessage) ([]*chat.ChatMessage, error)
	// ListRecent returns the last limit messages of a thread in seq order.
	ListRecent(dbc dbctx.Context, threadID uuid.UUID, limit int) ([]*chat.ChatMessage, error)
	DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: log.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) Create(dbc dbctx.Context, rows []*chat.ChatMessage) ([]*chat.ChatMessage, error) {
	if len(rows) == 0 {
		return []*chat.ChatMessage{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *chatMessageRepo) ListRecent(dbc dbctx.Context, threadID uuid.UUID, limit int) ([]*chat.ChatMessage, error) {
	if threadID == uuid.Nil {
		return nil, fmt.Errorf("missing thread_id")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*chat.ChatMessage
	if err := txx.WithContext(dbc.Ctx).
		Model(&chat.ChatMessage{}).
		Where("thread_id = ?", threadID).
		Order("seq DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *chatMessageRepo) DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("missing user_id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Unscoped().Where("user_id = ?", userID).Delete(&chat.ChatMessage{}).Error
}
