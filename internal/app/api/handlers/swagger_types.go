package handlers

import (
	"github.com/foodlytics/foodlytics/internal/app/service/analytics"
	"github.com/foodlytics/foodlytics/internal/app/service/history"
	"github.com/foodlytics/foodlytics/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespDashboard wraps the analytics dashboard in the standard envelope.
type RespDashboard struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    analytics.Dashboard      `json:"data"`
}

// RespDailyStats wraps the daily series in the standard envelope.
type RespDailyStats struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    []analytics.DailySeriesItem `json:"data"`
}

// RespNutritionBreakdown wraps the nutrition breakdown in the standard envelope.
type RespNutritionBreakdown struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    analytics.NutritionBreakdown `json:"data"`
}

// RespScanHistory wraps a scan-history page in the standard envelope.
type RespScanHistory struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    history.ListResponse     `json:"data"`
}
