package profile

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/hermes-backend/internal/domain/profile"
	"github.com/yungbote/hermes-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/hermes-backend/internal/pkg/errors"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

type SpiritualProfileRepo interface {
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*profile.SpiritualProfile, error)
	// LockByUserID reads the row FOR UPDATE; callers must pass a transaction.
	LockByUserID(dbc dbctx.Context, userID uuid.UUID) (*profile.SpiritualProfile, error)
	Upsert(dbc dbctx.Context, row *profile.SpiritualProfile) error
	DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error
}

type spiritualProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpiritualProfileRepo(db *gorm.DB, log *logger.Logger) SpiritualProfileRepo {
	return &spiritualProfileRepo{db: db, log: log.With("repo", "SpiritualProfileRepo")}
}

func (r *spiritualProfileRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*profile.SpiritualProfile, error) {
	return r.get(dbc, userID, false)
}

func (r *spiritualProfileRepo) LockByUserID(dbc dbctx.Context, userID uuid.UUID) (*profile.SpiritualProfile, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByUserID requires a transaction")
	}
	return r.get(dbc, userID, true)
}

func (r *spiritualProfileRepo) get(dbc dbctx.Context, userID uuid.UUID, lock bool) (*profile.SpiritualProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	q := txx.WithContext(dbc.Ctx).Where("user_id = ?", userID)
	if lock && txx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var row profile.SpiritualProfile
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Upsert inserts the row or overwrites the progression columns of the
// existing row for the same user.
func (r *spiritualProfileRepo) Upsert(dbc dbctx.Context, row *profile.SpiritualProfile) error {
	if row == nil || row.UserID == uuid.Nil {
		return fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"level",
			"score",
			"principles_studied",
			"practices_completed",
			"transformation_score",
			"preferred_formality",
			"preferred_teaching",
			"locale",
			"last_active_at",
			"updated_at",
		}),
	}).Create(row).Error
}

func (r *spiritualProfileRepo) DeleteByUserID(dbc dbctx.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("missing user_id: %w", apperrors.ErrInvalidArgument)
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx).Where("user_id = ?", userID).Delete(&profile.SpiritualProfile{}).Error
}
