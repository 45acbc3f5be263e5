package types

// NutritionInfo holds per-100g/ml nutrient values. Unknown values are zero.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// ProductRecord is a resolved product as delivered by the catalog lookup
// layer. The scan pipeline treats it as immutable input.
type ProductRecord struct {
	Barcode       string        `json:"barcode"`
	Name          string        `json:"name"`
	Brand         string        `json:"brand,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	HealthScore   float64       `json:"health_score"`
	NutritionInfo NutritionInfo `json:"nutrition_info"`
	Ingredients   []string      `json:"ingredients,omitempty"`
	Allergens     []string      `json:"allergens,omitempty"`
	ServingSize   string        `json:"serving_size,omitempty"`
	ServingUnit   string        `json:"serving_unit,omitempty"`
}
