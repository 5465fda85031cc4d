package profile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type MilestoneRepo interface {
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*profile.MilestoneAchievement, error)
	// Award inserts each milestone unless already present and returns only
	// the ids that were newly written.
	Award(dbc dbctx.Context, userID uuid.UUID, milestoneIDs []string, at time.Time) ([]string, error)
	DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error
}

type milestoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMilestoneRepo(db *gorm.DB, log *logger.Logger) MilestoneRepo {
	return &milestoneRepo{db: db, log: log.With("repo", "MilestoneRepo")}
}

func (r *milestoneRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*profile.MilestoneAchievement, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*profile.MilestoneAchievement
	if err := txx.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("achieved_at ASC, milestone_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *milestoneRepo) Award(dbc dbctx.Context, userID uuid.UUID, milestoneIDs []string, at time.Time) ([]string, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	if len(milestoneIDs) == 0 {
		return []string{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	awarded := make([]string, 0, len(milestoneIDs))
	for _, id := range milestoneIDs {
		row := &profile.MilestoneAchievement{UserID: userID, MilestoneID: id, AchievedAt: at}
		res := txx.WithContext(dbc.Ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "milestone_id"}},
				DoNothing: true,
			}).
			Create(row)
		if res.Error != nil {
			return nil, fmt.Errorf("award milestone %s: %w", id, res.Error)
		}
		if res.RowsAffected == 1 {
			awarded = append(awarded, id)
		}
	}
	return awarded, nil
}

func (r *milestoneRepo) DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Where("user_id = ?", userID).Delete(&profile.MilestoneAchievement{}).Error
}
