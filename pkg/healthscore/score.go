package healthscore

import "github.com/foodlytics/foodlytics/pkg/types"

// Score rates a nutrient profile on a 0-100 scale. It starts at 100 and
// applies an independent adjustment per nutrient band; thresholds are
// strict greater-than, highest band wins. The result is clamped to [0,100].
func Score(n types.NutritionInfo) float64 {
	score := 100.0

	switch {
	case n.Calories > 400:
		score -= 40
	case n.Calories > 300:
		score -= 30
	case n.Calories > 200:
		score -= 20
	case n.Calories > 100:
		score -= 10
	}

	switch {
	case n.Protein > 20:
		score += 10
	case n.Protein > 15:
		score += 5
	}

	switch {
	case n.Carbs > 50:
		score -= 15
	case n.Carbs > 30:
		score -= 10
	}

	switch {
	case n.Fat > 20:
		score -= 15
	case n.Fat > 10:
		score -= 10
	}

	switch {
	case n.Fiber > 5:
		score += 10
	case n.Fiber > 3:
		score += 5
	}

	switch {
	case n.Sugar > 20:
		score -= 20
	case n.Sugar > 10:
		score -= 10
	}

	switch {
	case n.Sodium > 500:
		score -= 15
	case n.Sodium > 300:
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
