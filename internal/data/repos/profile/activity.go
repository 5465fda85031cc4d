package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type ActivityRepo interface {
	Record(dbc dbctx.Context, row *profile.UserActivity) error
	// ListTimestamps returns activity times at or after since, oldest first.
	// A zero since returns the full history.
	ListTimestamps(dbc dbctx.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error
}

type activityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityRepo(db *gorm.DB, log *logger.Logger) ActivityRepo {
	return &activityRepo{db: db, log: log.With("repo", "ActivityRepo")}
}

func (r *activityRepo) Record(dbc dbctx.Context, row *profile.UserActivity) error {
	if row == nil || row.UserID == uuid.Nil {
		return fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Create(row).Error
}

func (r *activityRepo) ListTimestamps(dbc dbctx.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).Model(&profile.UserActivity{}).Where("user_id = ?", userID)
	if !since.IsZero() {
		q = q.Where("occurred_at >= ?", since)
	}
	var rows []profile.UserActivity
	if err := q.Select("occurred_at").Order("occurred_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.OccurredAt)
	}
	return out, nil
}

func (r *activityRepo) DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Where("user_id = ?", userID).Delete(&profile.UserActivity{}).Error
}
