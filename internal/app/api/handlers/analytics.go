package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodlytics/foodlytics/internal/app/service/analytics"
	"github.com/foodlytics/foodlytics/pkg/response"
)

// @Summary      Analytics dashboard
// @Description  Returns overview totals, today's and weekly activity, nutrition totals, score distribution and top allergens.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  handlers.RespDashboard
// @Router       /api/v1/analytics/dashboard [get]
func ApiGetDashboard(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := svc.GetDashboard(c.Request.Context(), userIDFrom(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(data))
	}
}

// @Summary      Daily scan statistics
// @Description  Returns the per-day scan series in ascending date order.
// @Tags         Analytics
// @Produce      json
// @Param        days  query  int  false  "Day window (default 30)"
// @Success      200  {object}  handlers.RespDailyStats
// @Router       /api/v1/analytics/daily [get]
func ApiGetDailyStats(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := analytics.DefaultDays
		if v := c.Query("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid days"))
				return
			}
			days = n
		}
		items, err := svc.GetDailyStats(c.Request.Context(), userIDFrom(c), days)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Nutrition breakdown
// @Description  Returns cumulative nutrition totals, per-scan averages and macro calorie split.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  handlers.RespNutritionBreakdown
// @Router       /api/v1/analytics/nutrition [get]
func ApiGetNutritionBreakdown(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := svc.GetNutritionBreakdown(c.Request.Context(), userIDFrom(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(data))
	}
}

// @Summary      Reset analytics
// @Description  Deletes the user's analytics record; the next scan starts a fresh one.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/analytics/reset [delete]
func ApiResetAnalytics(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Reset(c.Request.Context(), userIDFrom(c)); err != nil {
			if errors.Is(err, analytics.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"message": "analytics reset successfully"}))
	}
}

// @Summary      Export daily statistics
// @Description  Streams the daily scan series as an xlsx workbook.
// @Tags         Analytics
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        days  query  int  false  "Day window (default 30)"
// @Success      200
// @Router       /api/v1/analytics/export [get]
func ApiExportDaily(svc *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := analytics.DefaultDays
		if v := c.Query("days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				days = n
			}
		}
		f, err := svc.ExportDaily(c.Request.Context(), userIDFrom(c), days)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("daily-scans-%s.xlsx", time.Now().Format(time.DateOnly))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := f.Write(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}

func RegisterAnalyticsRoutes(r gin.IRouter, svc *analytics.Service) {
	r.GET("/dashboard", ApiGetDashboard(svc))
	r.GET("/daily", ApiGetDailyStats(svc))
	r.GET("/nutrition", ApiGetNutritionBreakdown(svc))
	r.GET("/export", ApiExportDaily(svc))
	r.DELETE("/reset", ApiResetAnalytics(svc))
}
