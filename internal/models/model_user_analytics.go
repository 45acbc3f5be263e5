package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScannedProduct is one entry in a daily bucket's product list.
type ScannedProduct struct {
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Calories    float64   `json:"calories"`
	HealthScore float64   `json:"health_score"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// DailyStat aggregates the scans of one calendar day. Date is formatted as
// time.DateOnly in the service timezone and is unique within a record.
type DailyStat struct {
	Date     string           `json:"date"`
	Scans    int64            `json:"scans"`
	Calories float64          `json:"calories"`
	Products []ScannedProduct `json:"products"`
}

// NutritionTotals are cumulative nutrient sums over every scan ever
// recorded. They are never windowed and never decremented.
type NutritionTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
	Sodium  float64 `json:"sodium"`
}

// HealthScoreDistribution counts scans per score band:
// excellent >=80, good >=60, fair >=40, poor below.
type HealthScoreDistribution struct {
	Excellent int64 `json:"excellent"`
	Good      int64 `json:"good"`
	Fair      int64 `json:"fair"`
	Poor      int64 `json:"poor"`
}

// Total is the number of classified scans across all bands.
func (d HealthScoreDistribution) Total() int64 {
	return d.Excellent + d.Good + d.Fair + d.Poor
}

// ScanningPatterns tracks coarse usage heuristics. MostActiveHour and
// MostActiveDay reflect the most recent scan only, not a mode.
type ScanningPatterns struct {
	MostActiveHour     int     `json:"most_active_hour"`
	MostActiveDay      string  `json:"most_active_day"`
	AverageScansPerDay float64 `json:"average_scans_per_day"`
}

// UserAnalytics is the per-user aggregate root. It is created lazily on the
// first scan and mutated only through the analytics service.
type UserAnalytics struct {
	ID                      string                                         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID                  string                                         `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex" json:"user_id"`
	TotalScans              int64                                          `gorm:"column:total_scans;not null;default:0" json:"total_scans"`
	UniqueProductsScanned   int64                                          `gorm:"column:unique_products_scanned;not null;default:0" json:"unique_products_scanned"`
	TotalCaloriesTracked    float64                                        `gorm:"column:total_calories_tracked;not null;default:0" json:"total_calories_tracked"`
	AverageHealthScore      float64                                        `gorm:"column:average_health_score;not null;default:0" json:"average_health_score"`
	DailyStats              datatypes.JSONType[[]DailyStat]                `gorm:"column:daily_stats;type:jsonb;default:'[]'" json:"daily_stats"`
	NutritionTotals         datatypes.JSONType[NutritionTotals]            `gorm:"column:nutrition_totals;type:jsonb;default:'{}'" json:"nutrition_totals"`
	HealthScoreDistribution datatypes.JSONType[HealthScoreDistribution]    `gorm:"column:health_score_distribution;type:jsonb;default:'{}'" json:"health_score_distribution"`
	ScanningPatterns        datatypes.JSONType[ScanningPatterns]           `gorm:"column:scanning_patterns;type:jsonb;default:'{}'" json:"scanning_patterns"`
	AllergenExposure        datatypes.JSONType[map[string]int64]           `gorm:"column:allergen_exposure;type:jsonb;default:'{}'" json:"allergen_exposure"`
	LastUpdated             time.Time                                      `gorm:"column:last_updated" json:"last_updated"`
	// CreatedAt is set once at record creation and is the basis for
	// average scans per day.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserAnalytics) TableName() string {
	return "user_analytics"
}

// FindDailyStat returns the bucket for the given date, or nil.
func (a *UserAnalytics) FindDailyStat(date string) *DailyStat {
	stats := a.DailyStats.Data()
	for i := range stats {
		if stats[i].Date == date {
			return &stats[i]
		}
	}
	return nil
}
