package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodlytics/foodlytics/internal/models"
	"github.com/foodlytics/foodlytics/pkg/logctx"
	"github.com/foodlytics/foodlytics/pkg/tool"
	"github.com/foodlytics/foodlytics/pkg/types"
)

// ErrItemNotFound is returned when deleting a barcode the user never scanned.
var ErrItemNotFound = errors.New("history item not found")

// Service keeps one scan-history row per (user, barcode) with the latest
// product snapshot.
type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

// RecordScan stores or refreshes the history entry for a scan and reports
// whether this was the user's first sighting of the barcode.
func (s *Service) RecordScan(ctx context.Context, userID string, product *types.ProductRecord) (bool, error) {
	if userID == "" || product == nil || product.Barcode == "" {
		return false, fmt.Errorf("invalid scan: user id and barcode required")
	}

	var existing models.ScanHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND barcode = ?", userID, product.Barcode).
		First(&existing).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up scan history: %w", err)
	}

	now := time.Now()

	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry := models.ScanHistory{
			ID:          tool.GenerateUUIDV7(),
			UserID:      userID,
			Barcode:     product.Barcode,
			ProductData: datatypes.NewJSONType(product),
			ScannedAt:   now,
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// lost a same-barcode race; treat as a repeat scan
				return false, s.touch(ctx, userID, product, now)
			}
			return false, fmt.Errorf("failed to create scan history: %w", err)
		}
		return true, nil
	}

	return false, s.touch(ctx, userID, product, now)
}

// touch refreshes the snapshot and scan time of an existing entry.
func (s *Service) touch(ctx context.Context, userID string, product *types.ProductRecord, now time.Time) error {
	err := s.db.WithContext(ctx).Model(&models.ScanHistory{}).
		Where("user_id = ? AND barcode = ?", userID, product.Barcode).
		Updates(map[string]interface{}{
			"product_data": datatypes.NewJSONType(product),
			"scanned_at":   now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to refresh scan history: %w", err)
	}
	return nil
}

type ListRequest struct {
	UserID    string                `json:"user_id"`
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

// Normalize applies listing defaults in place.
func (r *ListRequest) Normalize() {
	if r.Size <= 0 {
		r.Size = 50
	}
	if r.From < 0 {
		r.From = 0
	}
	if r.SortBy == "" {
		r.SortBy = "scanned_at"
	}
	if r.SortOrder != "asc" && r.SortOrder != "desc" {
		r.SortOrder = "desc"
	}
}

type ListResponse struct {
	Items []*models.ScanHistory `json:"items"`
	Total int64                 `json:"total"`
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// List returns the user's scan history, newest first by default.
func (s *Service) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, fmt.Errorf("nil request or missing user id")
	}
	req.Normalize()

	tx := s.db.WithContext(ctx).Model(&models.ScanHistory{}).Where("user_id = ?", req.UserID)
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count scan history: %w", err)
	}

	var rows []*models.ScanHistory
	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list scan history: %w", err)
	}

	return &ListResponse{Items: rows, Total: total}, nil
}

// Clear removes the user's entire history.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ScanHistory{}).Error; err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("scan history cleared", "user_id", userID)
	return nil
}

// Delete removes a single barcode from the user's history.
func (s *Service) Delete(ctx context.Context, userID, barcode string) error {
	res := s.db.WithContext(ctx).Where("user_id = ? AND barcode = ?", userID, barcode).Delete(&models.ScanHistory{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete scan history item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
