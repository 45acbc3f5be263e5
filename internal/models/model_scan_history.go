package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/foodlytics/foodlytics/pkg/types"
)

// ScanHistory keeps one row per (user, barcode) with the latest product
// snapshot. A re-scan of a known barcode bumps ScannedAt instead of
// inserting a new row.
type ScanHistory struct {
	ID          string                                   `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID      string                                   `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:unique_user_barcode,priority:1;index:idx_user_scanned_at,priority:1" json:"user_id"`
	Barcode     string                                   `gorm:"column:barcode;type:varchar(64);not null;uniqueIndex:unique_user_barcode,priority:2" json:"barcode"`
	ProductData datatypes.JSONType[*types.ProductRecord] `gorm:"column:product_data;type:jsonb;default:'{}'" json:"product_data"`
	ScannedAt   time.Time                                `gorm:"column:scanned_at;not null;index:idx_user_scanned_at,priority:2,sort:desc" json:"scanned_at"`
	CreatedAt   time.Time                                `json:"created_at"`
	UpdatedAt   time.Time                                `json:"updated_at"`
}

func (ScanHistory) TableName() string {
	return "scan_history"
}
