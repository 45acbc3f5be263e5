package healthscore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foodlytics/foodlytics/pkg/types"
)

func TestScore_AllCases(t *testing.T) {
	tests := []struct {
		name string
		n    types.NutritionInfo
		want float64
	}{
		{name: "empty profile", n: types.NutritionInfo{}, want: 100},
		{name: "calorie bomb only", n: types.NutritionInfo{Calories: 500}, want: 60},
		{name: "calories exactly 400 take the lower band", n: types.NutritionInfo{Calories: 400}, want: 70},
		{name: "calories exactly 100 unpenalized", n: types.NutritionInfo{Calories: 100}, want: 100},
		{name: "high protein bonus", n: types.NutritionInfo{Protein: 25}, want: 100},
		{name: "protein bonus offsets calories", n: types.NutritionInfo{Calories: 150, Protein: 25}, want: 100},
		{name: "moderate protein", n: types.NutritionInfo{Calories: 250, Protein: 16}, want: 85},
		{name: "carb heavy", n: types.NutritionInfo{Carbs: 60}, want: 85},
		{name: "carbs exactly 50", n: types.NutritionInfo{Carbs: 50}, want: 90},
		{name: "fat heavy", n: types.NutritionInfo{Fat: 25}, want: 85},
		{name: "fiber rich", n: types.NutritionInfo{Fiber: 6}, want: 100},
		{name: "moderate fiber with sugar", n: types.NutritionInfo{Fiber: 4, Sugar: 15}, want: 95},
		{name: "sugar heavy", n: types.NutritionInfo{Sugar: 30}, want: 80},
		{name: "sodium heavy", n: types.NutritionInfo{Sodium: 600}, want: 85},
		{name: "sodium exactly 300 unpenalized", n: types.NutritionInfo{Sodium: 300}, want: 100},
		{
			name: "candy bar",
			n:    types.NutritionInfo{Calories: 520, Carbs: 60, Fat: 26, Sugar: 48, Sodium: 140},
			want: 10,
		},
		{
			name: "clamped at zero",
			n:    types.NutritionInfo{Calories: 600, Carbs: 80, Fat: 40, Sugar: 50, Sodium: 900},
			want: 0,
		},
		{
			name: "clamped at one hundred",
			n:    types.NutritionInfo{Calories: 80, Protein: 30, Fiber: 9},
			want: 100,
		},
		{
			name: "lentils",
			n:    types.NutritionInfo{Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 7.9, Sugar: 1.8, Sodium: 2},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Score(tt.n), 1e-9)
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	n := types.NutritionInfo{Calories: 350, Protein: 12, Carbs: 45, Fat: 18, Fiber: 2, Sugar: 22, Sodium: 450}
	first := Score(n)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Score(n))
	}
}
