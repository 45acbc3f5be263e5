package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/foodlytics/foodlytics/internal/models"
)

const topAllergenLimit = 5

// DefaultDays is the day window used by daily views when the caller does
// not supply one.
const DefaultDays = 30

type DashboardOverview struct {
	TotalScans         int64 `json:"total_scans"`
	UniqueProducts     int64 `json:"unique_products"`
	TotalCalories      int64 `json:"total_calories"`
	AverageHealthScore int64 `json:"average_health_score"`
}

type DashboardToday struct {
	Scans    int64                   `json:"scans"`
	Calories int64                   `json:"calories"`
	Products []models.ScannedProduct `json:"products"`
}

type DashboardWeekly struct {
	Scans              int64   `json:"scans"`
	Calories           int64   `json:"calories"`
	AverageScansPerDay float64 `json:"average_scans_per_day"`
}

type NutritionTotalsView struct {
	Protein int64 `json:"protein"`
	Carbs   int64 `json:"carbs"`
	Fat     int64 `json:"fat"`
	Fiber   int64 `json:"fiber"`
	Sugar   int64 `json:"sugar"`
	Sodium  int64 `json:"sodium"`
}

type AllergenCount struct {
	Allergen string `json:"allergen"`
	Count    int64  `json:"count"`
}

type Dashboard struct {
	Overview                DashboardOverview              `json:"overview"`
	Today                   DashboardToday                 `json:"today"`
	Weekly                  DashboardWeekly                `json:"weekly"`
	NutritionTotals         NutritionTotalsView            `json:"nutrition_totals"`
	HealthScoreDistribution models.HealthScoreDistribution `json:"health_score_distribution"`
	ScanningPatterns        models.ScanningPatterns        `json:"scanning_patterns"`
	TopAllergens            []AllergenCount                `json:"top_allergens"`
}

// GetDashboard computes the dashboard summary from the persisted record.
func (s *Service) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	rec, err := s.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildDashboard(rec, s.now().In(s.loc)), nil
}

func (s *Service) buildDashboard(rec *models.UserAnalytics, now time.Time) *Dashboard {
	stats := rec.DailyStats.Data()

	today := DashboardToday{Products: []models.ScannedProduct{}}
	if stat := rec.FindDailyStat(now.Format(time.DateOnly)); stat != nil {
		today.Scans = stat.Scans
		today.Calories = int64(math.Round(stat.Calories))
		today.Products = stat.Products
	}

	weekAgo := now.AddDate(0, 0, -7)
	var weekly DashboardWeekly
	var weekCalories float64
	for _, stat := range stats {
		if s.dayStart(stat.Date).Before(weekAgo) {
			continue
		}
		weekly.Scans += stat.Scans
		weekCalories += stat.Calories
	}
	weekly.Calories = int64(math.Round(weekCalories))
	patterns := rec.ScanningPatterns.Data()
	weekly.AverageScansPerDay = math.Round(patterns.AverageScansPerDay*10) / 10

	totals := rec.NutritionTotals.Data()

	return &Dashboard{
		Overview: DashboardOverview{
			TotalScans:         rec.TotalScans,
			UniqueProducts:     rec.UniqueProductsScanned,
			TotalCalories:      int64(math.Round(rec.TotalCaloriesTracked)),
			AverageHealthScore: int64(math.Round(rec.AverageHealthScore)),
		},
		Today:  today,
		Weekly: weekly,
		NutritionTotals: NutritionTotalsView{
			Protein: int64(math.Round(totals.Protein)),
			Carbs:   int64(math.Round(totals.Carbs)),
			Fat:     int64(math.Round(totals.Fat)),
			Fiber:   int64(math.Round(totals.Fiber)),
			Sugar:   int64(math.Round(totals.Sugar)),
			Sodium:  int64(math.Round(totals.Sodium)),
		},
		HealthScoreDistribution: rec.HealthScoreDistribution.Data(),
		ScanningPatterns:        patterns,
		TopAllergens:            topAllergens(rec.AllergenExposure.Data()),
	}
}

// topAllergens returns the five highest exposure counts. Ties break by
// allergen name ascending so output is deterministic.
func topAllergens(exposure map[string]int64) []AllergenCount {
	entries := lo.Entries(exposure)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
	if len(entries) > topAllergenLimit {
		entries = entries[:topAllergenLimit]
	}
	return lo.Map(entries, func(e lo.Entry[string, int64], _ int) AllergenCount {
		return AllergenCount{Allergen: e.Key, Count: e.Value}
	})
}

type DailySeriesItem struct {
	Date         string `json:"date"`
	Scans        int64  `json:"scans"`
	Calories     int64  `json:"calories"`
	ProductCount int    `json:"product_count"`
}

// GetDailyStats returns the per-day series for the last days days in
// ascending date order.
func (s *Service) GetDailyStats(ctx context.Context, userID string, days int) ([]DailySeriesItem, error) {
	if days <= 0 {
		days = DefaultDays
	}
	rec, err := s.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildDailySeries(rec, s.now().In(s.loc), days), nil
}

func (s *Service) buildDailySeries(rec *models.UserAnalytics, now time.Time, days int) []DailySeriesItem {
	start := s.dayStart(now.AddDate(0, 0, -days).Format(time.DateOnly))

	items := make([]DailySeriesItem, 0, len(rec.DailyStats.Data()))
	for _, stat := range rec.DailyStats.Data() {
		if s.dayStart(stat.Date).Before(start) {
			continue
		}
		items = append(items, DailySeriesItem{
			Date:         stat.Date,
			Scans:        stat.Scans,
			Calories:     int64(math.Round(stat.Calories)),
			ProductCount: len(stat.Products),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date < items[j].Date })
	return items
}

type NutritionAverages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
	Sodium  float64 `json:"sodium"`
}

// MacroDistribution is the calorie share of each macronutrient in percent.
// The three values may sum to 99-101 due to rounding; that is accepted.
type MacroDistribution struct {
	Protein int64 `json:"protein"`
	Carbs   int64 `json:"carbs"`
	Fat     int64 `json:"fat"`
}

type NutritionBreakdown struct {
	Totals            NutritionTotalsView `json:"totals"`
	AveragePerScan    NutritionAverages   `json:"average_per_scan"`
	MacroDistribution MacroDistribution   `json:"macro_distribution"`
}

// GetNutritionBreakdown computes totals, per-scan averages and the macro
// calorie split (4 kcal/g protein and carbs, 9 kcal/g fat).
func (s *Service) GetNutritionBreakdown(ctx context.Context, userID string) (*NutritionBreakdown, error) {
	rec, err := s.GetRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildNutritionBreakdown(rec), nil
}

func buildNutritionBreakdown(rec *models.UserAnalytics) *NutritionBreakdown {
	totals := rec.NutritionTotals.Data()

	out := &NutritionBreakdown{
		Totals: NutritionTotalsView{
			Protein: int64(math.Round(totals.Protein)),
			Carbs:   int64(math.Round(totals.Carbs)),
			Fat:     int64(math.Round(totals.Fat)),
			Fiber:   int64(math.Round(totals.Fiber)),
			Sugar:   int64(math.Round(totals.Sugar)),
			Sodium:  int64(math.Round(totals.Sodium)),
		},
	}

	if rec.TotalScans > 0 {
		n := float64(rec.TotalScans)
		round1 := func(v float64) float64 { return math.Round(v/n*10) / 10 }
		out.AveragePerScan = NutritionAverages{
			Protein: round1(totals.Protein),
			Carbs:   round1(totals.Carbs),
			Fat:     round1(totals.Fat),
			Fiber:   round1(totals.Fiber),
			Sugar:   round1(totals.Sugar),
			Sodium:  round1(totals.Sodium),
		}
	}

	macroCalories := totals.Protein*4 + totals.Carbs*4 + totals.Fat*9
	if macroCalories > 0 {
		out.MacroDistribution = MacroDistribution{
			Protein: int64(math.Round(totals.Protein * 4 / macroCalories * 100)),
			Carbs:   int64(math.Round(totals.Carbs * 4 / macroCalories * 100)),
			Fat:     int64(math.Round(totals.Fat * 9 / macroCalories * 100)),
		}
	}
	return out
}
