package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodlytics/foodlytics/internal/models"
	"github.com/foodlytics/foodlytics/pkg/config"
	"github.com/foodlytics/foodlytics/pkg/logctx"
	"github.com/foodlytics/foodlytics/pkg/tool"
	"github.com/foodlytics/foodlytics/pkg/types"
)

const (
	// retentionDays is the sliding window for daily buckets, evaluated at
	// write time.
	retentionDays = 30
	// maxRecordRetries bounds the retry budget for create races and
	// transient persistence failures inside RecordScan.
	maxRecordRetries = 3
)

// Service owns the per-user analytics records. All mutation goes through
// RecordScan; reads are computed on demand from the persisted record.
type Service struct {
	cfg *config.Config
	log *zap.SugaredLogger
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, db *gorm.DB) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Analytics.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics timezone %q: %w", cfg.Analytics.Timezone, err)
	}
	return &Service{cfg: cfg, log: log, db: db, loc: loc, now: time.Now}, nil
}

// RecordScan applies one scan event to the user's record as a single atomic
// unit. Concurrent calls for the same user serialize on a row lock;
// concurrent first scans of a new user race on the unique user_id index and
// the loser retries against the winner's row.
func (s *Service) RecordScan(ctx context.Context, userID string, product *types.ProductRecord, isNewProduct bool) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidProduct)
	}
	if err := validateProduct(product); err != nil {
		return err
	}

	op := func() error {
		return classifyTxError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			rec, err := s.lockOrCreate(ctx, tx, userID)
			if err != nil {
				return err
			}
			s.applyScan(rec, product, isNewProduct, s.now().In(s.loc))
			if err := tx.Save(rec).Error; err != nil {
				return fmt.Errorf("failed to persist analytics record: %w", err)
			}
			return nil
		}))
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRecordRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("record scan failed", "user_id", userID, "barcode", product.Barcode, "err", err)
		return err
	}
	return nil
}

// classifyTxError decides whether a failed scan transaction may retry.
// Only duplicate-key errors retry: they mean a concurrent first scan won the
// creation race and the next attempt will lock the winner's row.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return backoff.Permanent(err)
}

// lockOrCreate loads the user's record under FOR UPDATE, creating a zeroed
// one when absent. A duplicate-key error from a concurrent creation bubbles
// up so the caller can retry the whole transaction.
func (s *Service) lockOrCreate(ctx context.Context, tx *gorm.DB, userID string) (*models.UserAnalytics, error) {
	var rec models.UserAnalytics
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ?", userID).
		First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load analytics record: %w", err)
	}

	rec = newRecord(userID)
	if err := tx.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create analytics record: %w", err)
	}
	return &rec, nil
}

// GetRecord returns the user's analytics record, creating an empty one when
// the user has never scanned anything.
func (s *Service) GetRecord(ctx context.Context, userID string) (*models.UserAnalytics, error) {
	var rec models.UserAnalytics
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load analytics record: %w", err)
	}

	rec = newRecord(userID)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the creation race; the winner's row is authoritative
			if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error; err != nil {
				return nil, fmt.Errorf("failed to reload analytics record: %w", err)
			}
			return &rec, nil
		}
		return nil, fmt.Errorf("failed to create analytics record: %w", err)
	}
	return &rec, nil
}

// Reset deletes the user's record entirely. The next scan re-creates it
// fresh with a new CreatedAt.
func (s *Service) Reset(ctx context.Context, userID string) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserAnalytics{})
	if res.Error != nil {
		return fmt.Errorf("failed to reset analytics: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	logctx.FromCtx(ctx, s.log).Infow("analytics reset", "user_id", userID)
	return nil
}

func newRecord(userID string) models.UserAnalytics {
	return models.UserAnalytics{
		ID:                      tool.GenerateUUIDV7(),
		UserID:                  userID,
		DailyStats:              datatypes.NewJSONType([]models.DailyStat{}),
		NutritionTotals:         datatypes.NewJSONType(models.NutritionTotals{}),
		HealthScoreDistribution: datatypes.NewJSONType(models.HealthScoreDistribution{}),
		ScanningPatterns:        datatypes.NewJSONType(models.ScanningPatterns{}),
		AllergenExposure:        datatypes.NewJSONType(map[string]int64{}),
	}
}
