package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/foodlytics/foodlytics/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	rec := newTestRecord(now.AddDate(0, 0, -20))

	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.DateOnly)
	}
	rec.TotalScans = 12
	rec.UniqueProductsScanned = 9
	rec.TotalCaloriesTracked = 2480.6
	rec.AverageHealthScore = 71.49
	rec.DailyStats = datatypes.NewJSONType([]models.DailyStat{
		{Date: day(10), Scans: 4, Calories: 800},
		{Date: day(6), Scans: 3, Calories: 600.4, Products: []models.ScannedProduct{{Barcode: "a"}}},
		{Date: day(2), Scans: 2, Calories: 480.2},
		{Date: day(0), Scans: 3, Calories: 600, Products: []models.ScannedProduct{{Barcode: "b"}, {Barcode: "c"}}},
	})
	rec.NutritionTotals = datatypes.NewJSONType(models.NutritionTotals{Protein: 90.4, Carbs: 210.5, Fat: 60.6})
	rec.ScanningPatterns = datatypes.NewJSONType(models.ScanningPatterns{
		MostActiveHour: 9, MostActiveDay: "Friday", AverageScansPerDay: 0.5714,
	})

	d := svc.buildDashboard(rec, now)

	assert.EqualValues(t, 12, d.Overview.TotalScans)
	assert.EqualValues(t, 9, d.Overview.UniqueProducts)
	assert.EqualValues(t, 2481, d.Overview.TotalCalories)
	assert.EqualValues(t, 71, d.Overview.AverageHealthScore)

	assert.EqualValues(t, 3, d.Today.Scans)
	assert.EqualValues(t, 600, d.Today.Calories)
	assert.Len(t, d.Today.Products, 2)

	// buckets at day(10) fall outside the 7-day window; calories sum raw
	// and round once: 600.4+480.2+600 -> 1681
	assert.EqualValues(t, 8, d.Weekly.Scans)
	assert.EqualValues(t, 1681, d.Weekly.Calories)
	assert.InDelta(t, 0.6, d.Weekly.AverageScansPerDay, 1e-9)

	assert.EqualValues(t, 90, d.NutritionTotals.Protein)
	assert.EqualValues(t, 211, d.NutritionTotals.Carbs)
	assert.EqualValues(t, 61, d.NutritionTotals.Fat)
	assert.Equal(t, "Friday", d.ScanningPatterns.MostActiveDay)
}

func TestBuildDashboard_EmptyRecord(t *testing.T) {
	svc := newTestService()
	now := time.Now().UTC()
	rec := newTestRecord(now)

	d := svc.buildDashboard(rec, now)

	assert.EqualValues(t, 0, d.Overview.TotalScans)
	assert.NotNil(t, d.Today.Products)
	assert.Empty(t, d.Today.Products)
	assert.Empty(t, d.TopAllergens)
}

func TestTopAllergens(t *testing.T) {
	exposure := map[string]int64{
		"nuts": 7, "milk": 7, "soy": 3, "gluten": 12, "eggs": 1, "fish": 3, "sesame": 2,
	}

	got := topAllergens(exposure)

	require.Len(t, got, topAllergenLimit)
	assert.Equal(t, []AllergenCount{
		{Allergen: "gluten", Count: 12},
		{Allergen: "milk", Count: 7},
		{Allergen: "nuts", Count: 7},
		{Allergen: "fish", Count: 3},
		{Allergen: "soy", Count: 3},
	}, got)
}

func TestBuildDailySeries(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)
	rec := newTestRecord(now.AddDate(0, -1, 0))

	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.DateOnly)
	}
	// stored unordered to prove the series sorts ascending
	rec.DailyStats = datatypes.NewJSONType([]models.DailyStat{
		{Date: day(1), Scans: 2, Calories: 410.7},
		{Date: day(9), Scans: 1, Calories: 150},
		{Date: day(4), Scans: 5, Calories: 900, Products: []models.ScannedProduct{{Barcode: "x"}, {Barcode: "y"}}},
	})

	items := svc.buildDailySeries(rec, now, 7)

	require.Len(t, items, 2)
	assert.Equal(t, day(4), items[0].Date)
	assert.EqualValues(t, 5, items[0].Scans)
	assert.Equal(t, 2, items[0].ProductCount)
	assert.Equal(t, day(1), items[1].Date)
	assert.EqualValues(t, 411, items[1].Calories)

	all := svc.buildDailySeries(rec, now, DefaultDays)
	require.Len(t, all, 3)
	assert.Equal(t, day(9), all[0].Date)
}

func TestBuildNutritionBreakdown(t *testing.T) {
	rec := newTestRecord(time.Now())
	rec.TotalScans = 4
	rec.NutritionTotals = datatypes.NewJSONType(models.NutritionTotals{
		Protein: 82, Carbs: 241, Fat: 93, Fiber: 14, Sugar: 66, Sodium: 1850,
	})

	out := buildNutritionBreakdown(rec)

	assert.EqualValues(t, 82, out.Totals.Protein)
	assert.EqualValues(t, 1850, out.Totals.Sodium)

	assert.InDelta(t, 20.5, out.AveragePerScan.Protein, 1e-9)
	assert.InDelta(t, 60.3, out.AveragePerScan.Carbs, 1e-9)
	assert.InDelta(t, 23.3, out.AveragePerScan.Fat, 1e-9)
	assert.InDelta(t, 462.5, out.AveragePerScan.Sodium, 1e-9)

	sum := out.MacroDistribution.Protein + out.MacroDistribution.Carbs + out.MacroDistribution.Fat
	assert.GreaterOrEqual(t, sum, int64(99))
	assert.LessOrEqual(t, sum, int64(101))
	// protein: 328 of 2129 macro kcal
	assert.EqualValues(t, 15, out.MacroDistribution.Protein)
	assert.EqualValues(t, 45, out.MacroDistribution.Carbs)
	assert.EqualValues(t, 39, out.MacroDistribution.Fat)
}

func TestBuildNutritionBreakdown_NoScans(t *testing.T) {
	rec := newTestRecord(time.Now())

	out := buildNutritionBreakdown(rec)

	assert.Equal(t, NutritionAverages{}, out.AveragePerScan)
	assert.Equal(t, MacroDistribution{}, out.MacroDistribution)
}

func TestMacroPercentagesSumNearHundred(t *testing.T) {
	for i, totals := range []models.NutritionTotals{
		{Protein: 1, Carbs: 1, Fat: 1},
		{Protein: 33.3, Carbs: 33.3, Fat: 33.3},
		{Protein: 0, Carbs: 100, Fat: 0},
		{Protein: 57, Carbs: 13, Fat: 29},
	} {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			rec := newTestRecord(time.Now())
			rec.TotalScans = 1
			rec.NutritionTotals = datatypes.NewJSONType(totals)

			m := buildNutritionBreakdown(rec).MacroDistribution
			sum := m.Protein + m.Carbs + m.Fat
			assert.GreaterOrEqual(t, sum, int64(99))
			assert.LessOrEqual(t, sum, int64(101))
		})
	}
}
