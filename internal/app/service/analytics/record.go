package analytics

import (
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"

	"github.com/foodlytics/foodlytics/internal/models"
	"github.com/foodlytics/foodlytics/pkg/types"
)

// validateProduct rejects input that would corrupt cumulative sums.
// Negative nutrients are rejected rather than clamped.
func validateProduct(p *types.ProductRecord) error {
	if p == nil {
		return fmt.Errorf("%w: nil product", ErrInvalidProduct)
	}
	if p.Barcode == "" {
		return fmt.Errorf("%w: missing barcode", ErrInvalidProduct)
	}
	if p.HealthScore < 0 || p.HealthScore > 100 || math.IsNaN(p.HealthScore) || math.IsInf(p.HealthScore, 0) {
		return fmt.Errorf("%w: health score %v out of range", ErrInvalidProduct, p.HealthScore)
	}
	n := p.NutritionInfo
	nutrients := []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
		{"sugar", n.Sugar},
		{"sodium", n.Sodium},
	}
	for _, nu := range nutrients {
		if nu.value < 0 || math.IsNaN(nu.value) || math.IsInf(nu.value, 0) {
			return fmt.Errorf("%w: %s value %v", ErrInvalidProduct, nu.name, nu.value)
		}
	}
	return nil
}

// applyScan mutates rec in memory following the update algorithm. It is
// unconditional once inputs are valid; persistence is the caller's job.
func (s *Service) applyScan(rec *models.UserAnalytics, product *types.ProductRecord, isNewProduct bool, now time.Time) {
	rec.TotalScans++
	if isNewProduct {
		rec.UniqueProductsScanned++
	}

	calories := product.NutritionInfo.Calories
	rec.TotalCaloriesTracked += calories

	// Exact incremental mean over all scans ever recorded.
	rec.AverageHealthScore = (rec.AverageHealthScore*float64(rec.TotalScans-1) + product.HealthScore) / float64(rec.TotalScans)

	s.applyDailyStats(rec, product, calories, now)
	s.applyNutritionTotals(rec, product.NutritionInfo)
	s.applyDistribution(rec, product.HealthScore)
	s.applyAllergens(rec, product.Allergens)
	s.applyPatterns(rec, now)

	rec.LastUpdated = now
}

func (s *Service) applyDailyStats(rec *models.UserAnalytics, product *types.ProductRecord, calories float64, now time.Time) {
	today := now.Format(time.DateOnly)
	stats := rec.DailyStats.Data()

	idx := -1
	for i := range stats {
		if stats[i].Date == today {
			idx = i
			break
		}
	}
	if idx < 0 {
		stats = append(stats, models.DailyStat{Date: today})
		idx = len(stats) - 1
	}
	stats[idx].Scans++
	stats[idx].Calories += calories
	stats[idx].Products = append(stats[idx].Products, models.ScannedProduct{
		Barcode:     product.Barcode,
		Name:        product.Name,
		Calories:    calories,
		HealthScore: product.HealthScore,
		ScannedAt:   now,
	})

	// Retention sweep: drop buckets whose midnight is before now-30d.
	cutoff := now.AddDate(0, 0, -retentionDays)
	kept := stats[:0]
	for _, stat := range stats {
		if !s.dayStart(stat.Date).Before(cutoff) {
			kept = append(kept, stat)
		}
	}
	rec.DailyStats = datatypes.NewJSONType(kept)
}

func (s *Service) applyNutritionTotals(rec *models.UserAnalytics, n types.NutritionInfo) {
	totals := rec.NutritionTotals.Data()
	totals.Protein += n.Protein
	totals.Carbs += n.Carbs
	totals.Fat += n.Fat
	totals.Fiber += n.Fiber
	totals.Sugar += n.Sugar
	totals.Sodium += n.Sodium
	rec.NutritionTotals = datatypes.NewJSONType(totals)
}

func (s *Service) applyDistribution(rec *models.UserAnalytics, score float64) {
	dist := rec.HealthScoreDistribution.Data()
	switch {
	case score >= 80:
		dist.Excellent++
	case score >= 60:
		dist.Good++
	case score >= 40:
		dist.Fair++
	default:
		dist.Poor++
	}
	rec.HealthScoreDistribution = datatypes.NewJSONType(dist)
}

func (s *Service) applyAllergens(rec *models.UserAnalytics, allergens []string) {
	if len(allergens) == 0 {
		return
	}
	exposure := rec.AllergenExposure.Data()
	if exposure == nil {
		exposure = map[string]int64{}
	}
	for _, allergen := range allergens {
		exposure[allergen]++
	}
	rec.AllergenExposure = datatypes.NewJSONType(exposure)
}

func (s *Service) applyPatterns(rec *models.UserAnalytics, now time.Time) {
	patterns := rec.ScanningPatterns.Data()
	// Last-write-wins: reflects the most recent scan only.
	patterns.MostActiveHour = now.Hour()
	patterns.MostActiveDay = now.Weekday().String()

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	days := int64(math.Ceil(now.Sub(createdAt).Hours() / 24))
	if days < 1 {
		days = 1
	}
	patterns.AverageScansPerDay = float64(rec.TotalScans) / float64(days)
	rec.ScanningPatterns = datatypes.NewJSONType(patterns)
}

// dayStart returns local midnight of a DateOnly-formatted date.
func (s *Service) dayStart(date string) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, date, s.loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
