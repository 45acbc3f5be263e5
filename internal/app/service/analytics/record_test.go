package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/foodlytics/foodlytics/internal/models"
	"github.com/foodlytics/foodlytics/pkg/types"
)

func newTestService() *Service {
	return &Service{log: zap.NewNop().Sugar(), loc: time.UTC, now: time.Now}
}

func newTestRecord(createdAt time.Time) *models.UserAnalytics {
	rec := newRecord("user-1")
	rec.CreatedAt = createdAt
	return &rec
}

func testProduct(score float64) *types.ProductRecord {
	return &types.ProductRecord{
		Barcode:     "3017620422003",
		Name:        "Test Spread",
		HealthScore: score,
		NutritionInfo: types.NutritionInfo{
			Calories: 200, Protein: 10, Carbs: 30, Fat: 12, Fiber: 2, Sugar: 18, Sodium: 120,
		},
		Allergens: []string{"nuts", "milk"},
	}
}

func TestApplyScan_FirstScan(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	rec := newTestRecord(now)

	svc.applyScan(rec, testProduct(85), true, now)

	require.EqualValues(t, 1, rec.TotalScans)
	require.EqualValues(t, 1, rec.UniqueProductsScanned)
	require.InDelta(t, 200, rec.TotalCaloriesTracked, 1e-9)
	require.InDelta(t, 85, rec.AverageHealthScore, 1e-9)

	stats := rec.DailyStats.Data()
	require.Len(t, stats, 1)
	assert.Equal(t, "2026-03-10", stats[0].Date)
	assert.EqualValues(t, 1, stats[0].Scans)
	assert.InDelta(t, 200, stats[0].Calories, 1e-9)
	require.Len(t, stats[0].Products, 1)
	assert.Equal(t, "3017620422003", stats[0].Products[0].Barcode)
	assert.Equal(t, now, stats[0].Products[0].ScannedAt)

	totals := rec.NutritionTotals.Data()
	assert.InDelta(t, 10, totals.Protein, 1e-9)
	assert.InDelta(t, 30, totals.Carbs, 1e-9)
	assert.InDelta(t, 12, totals.Fat, 1e-9)
	assert.InDelta(t, 2, totals.Fiber, 1e-9)
	assert.InDelta(t, 18, totals.Sugar, 1e-9)
	assert.InDelta(t, 120, totals.Sodium, 1e-9)

	dist := rec.HealthScoreDistribution.Data()
	assert.EqualValues(t, 1, dist.Excellent)
	assert.EqualValues(t, 1, dist.Total())

	exposure := rec.AllergenExposure.Data()
	assert.EqualValues(t, 1, exposure["nuts"])
	assert.EqualValues(t, 1, exposure["milk"])

	patterns := rec.ScanningPatterns.Data()
	assert.Equal(t, 14, patterns.MostActiveHour)
	assert.Equal(t, "Tuesday", patterns.MostActiveDay)
	assert.InDelta(t, 1, patterns.AverageScansPerDay, 1e-9)

	assert.Equal(t, now, rec.LastUpdated)
}

func TestApplyScan_SameDayRepeatScan(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := newTestRecord(now)

	product := testProduct(85)
	product.NutritionInfo = types.NutritionInfo{Calories: 200, Protein: 10}
	product.Allergens = nil

	svc.applyScan(rec, product, true, now)
	svc.applyScan(rec, product, false, now.Add(2*time.Hour))

	require.EqualValues(t, 2, rec.TotalScans)
	require.EqualValues(t, 1, rec.UniqueProductsScanned)
	require.InDelta(t, 85, rec.AverageHealthScore, 1e-9)

	stats := rec.DailyStats.Data()
	require.Len(t, stats, 1)
	assert.EqualValues(t, 2, stats[0].Scans)
	assert.InDelta(t, 400, stats[0].Calories, 1e-9)
	assert.Len(t, stats[0].Products, 2)

	assert.EqualValues(t, 2, rec.HealthScoreDistribution.Data().Excellent)
}

func TestApplyScan_RunningMeanMatchesArithmeticMean(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := newTestRecord(now)
	rng := rand.New(rand.NewSource(42))

	var sum float64
	const n = 500
	for i := 0; i < n; i++ {
		score := rng.Float64() * 100
		sum += score
		product := testProduct(score)
		product.Barcode = fmt.Sprintf("barcode-%d", i)
		svc.applyScan(rec, product, true, now.Add(time.Duration(i)*time.Minute))
	}

	require.EqualValues(t, n, rec.TotalScans)
	require.EqualValues(t, n, rec.UniqueProductsScanned)
	require.InDelta(t, sum/n, rec.AverageHealthScore, 1e-9)
	require.EqualValues(t, n, rec.HealthScoreDistribution.Data().Total())
}

func TestApplyScan_DistributionBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "excellent"},
		{80, "excellent"},
		{79.99, "good"},
		{60, "good"},
		{59.99, "fair"},
		{40, "fair"},
		{39.99, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %v", tt.score), func(t *testing.T) {
			svc := newTestService()
			now := time.Now().UTC()
			rec := newTestRecord(now)
			svc.applyScan(rec, testProduct(tt.score), true, now)

			dist := rec.HealthScoreDistribution.Data()
			got := map[string]int64{
				"excellent": dist.Excellent,
				"good":      dist.Good,
				"fair":      dist.Fair,
				"poor":      dist.Poor,
			}
			require.EqualValues(t, 1, got[tt.want])
			require.EqualValues(t, 1, dist.Total())
		})
	}
}

func TestApplyScan_RetentionSweep(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	rec := newTestRecord(now.AddDate(0, -2, 0))

	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format(time.DateOnly)
	}
	rec.DailyStats = datatypes.NewJSONType([]models.DailyStat{
		{Date: day(45), Scans: 3},
		{Date: day(31), Scans: 2},
		{Date: day(30), Scans: 2},
		{Date: day(29), Scans: 1},
		{Date: day(7), Scans: 5},
	})

	svc.applyScan(rec, testProduct(70), false, now)

	stats := rec.DailyStats.Data()
	dates := make([]string, 0, len(stats))
	for _, stat := range stats {
		dates = append(dates, stat.Date)
	}
	// midnight of day(30) is before now-30d at noon, so it goes too
	require.Equal(t, []string{day(29), day(7), day(0)}, dates)

	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, stat := range stats {
		require.False(t, svc.dayStart(stat.Date).Before(cutoff))
	}
}

func TestApplyScan_AllergenAccumulation(t *testing.T) {
	svc := newTestService()
	now := time.Now().UTC()
	rec := newTestRecord(now)

	first := testProduct(50)
	first.Allergens = []string{"gluten", "soy"}
	second := testProduct(50)
	second.Allergens = []string{"gluten"}
	third := testProduct(50)
	third.Allergens = nil

	svc.applyScan(rec, first, true, now)
	svc.applyScan(rec, second, false, now)
	svc.applyScan(rec, third, false, now)

	exposure := rec.AllergenExposure.Data()
	require.EqualValues(t, 2, exposure["gluten"])
	require.EqualValues(t, 1, exposure["soy"])
	require.Len(t, exposure, 2)
}

func TestApplyScan_PatternsLastWriteWins(t *testing.T) {
	svc := newTestService()
	createdAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := newTestRecord(createdAt)

	morning := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)  // Monday
	evening := time.Date(2026, 3, 11, 21, 0, 0, 0, time.UTC) // Wednesday

	svc.applyScan(rec, testProduct(70), true, morning)
	patterns := rec.ScanningPatterns.Data()
	require.Equal(t, 8, patterns.MostActiveHour)
	require.Equal(t, "Monday", patterns.MostActiveDay)

	svc.applyScan(rec, testProduct(70), false, evening)
	patterns = rec.ScanningPatterns.Data()
	require.Equal(t, 21, patterns.MostActiveHour)
	require.Equal(t, "Wednesday", patterns.MostActiveDay)

	// 2 scans over ceil(10.875) = 11 days since creation
	require.InDelta(t, 2.0/11.0, patterns.AverageScansPerDay, 1e-9)
}

func TestValidateProduct_AllCases(t *testing.T) {
	base := func() *types.ProductRecord { return testProduct(50) }

	tests := []struct {
		name    string
		mutate  func(*types.ProductRecord)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *types.ProductRecord) {}},
		{name: "zero nutrients valid", mutate: func(p *types.ProductRecord) { p.NutritionInfo = types.NutritionInfo{} }},
		{name: "missing barcode", mutate: func(p *types.ProductRecord) { p.Barcode = "" }, wantErr: true},
		{name: "negative calories", mutate: func(p *types.ProductRecord) { p.NutritionInfo.Calories = -1 }, wantErr: true},
		{name: "negative sodium", mutate: func(p *types.ProductRecord) { p.NutritionInfo.Sodium = -0.5 }, wantErr: true},
		{name: "score below range", mutate: func(p *types.ProductRecord) { p.HealthScore = -1 }, wantErr: true},
		{name: "score above range", mutate: func(p *types.ProductRecord) { p.HealthScore = 101 }, wantErr: true},
		{name: "score NaN", mutate: func(p *types.ProductRecord) { p.HealthScore = math.NaN() }, wantErr: true},
		{name: "score Inf", mutate: func(p *types.ProductRecord) { p.HealthScore = math.Inf(1) }, wantErr: true},
		{name: "NaN nutrient", mutate: func(p *types.ProductRecord) { p.NutritionInfo.Sugar = math.NaN() }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			err := validateProduct(p)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidProduct)
			} else {
				require.NoError(t, err)
			}
		})
	}

	require.ErrorIs(t, validateProduct(nil), ErrInvalidProduct)
}
