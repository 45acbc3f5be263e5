package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodlytics/foodlytics/internal/app/service/analytics"
	"github.com/foodlytics/foodlytics/internal/app/service/history"
	"github.com/foodlytics/foodlytics/pkg/healthscore"
	"github.com/foodlytics/foodlytics/pkg/logctx"
	"github.com/foodlytics/foodlytics/pkg/response"
	"github.com/foodlytics/foodlytics/pkg/types"
)

// userIDFrom returns the authenticated user id set by the auth middleware.
func userIDFrom(c *gin.Context) string {
	return c.GetString("user_id")
}

type scanRequest struct {
	Barcode  string `json:"barcode" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Brand    string `json:"brand"`
	ImageURL string `json:"image_url"`
	// HealthScore is optional; when omitted it is derived from the
	// nutrition profile.
	HealthScore   *float64            `json:"health_score"`
	NutritionInfo types.NutritionInfo `json:"nutrition_info"`
	Ingredients   []string            `json:"ingredients"`
	Allergens     []string            `json:"allergens"`
	ServingSize   string              `json:"serving_size"`
	ServingUnit   string              `json:"serving_unit"`
}

type scanResponse struct {
	types.ProductRecord
	IsNewProduct bool `json:"is_new_product"`
}

// @Summary      Record a product scan
// @Description  Stores the scan in history and folds it into the user's analytics. Analytics failures do not fail the scan.
// @Tags         Scan
// @Accept       json
// @Produce      json
// @Param        request body handlers.scanRequest true "Resolved product payload"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/scan [post]
func ApiRecordScan(log *zap.SugaredLogger, hist *history.Service, stats *analytics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := userIDFrom(c)
		if userID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing user"))
			return
		}

		var req scanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		product := types.ProductRecord{
			Barcode:       req.Barcode,
			Name:          req.Name,
			Brand:         req.Brand,
			ImageURL:      req.ImageURL,
			NutritionInfo: req.NutritionInfo,
			Ingredients:   req.Ingredients,
			Allergens:     req.Allergens,
			ServingSize:   req.ServingSize,
			ServingUnit:   req.ServingUnit,
		}
		if req.HealthScore != nil {
			product.HealthScore = *req.HealthScore
		} else {
			product.HealthScore = healthscore.Score(req.NutritionInfo)
		}

		ctx := c.Request.Context()
		reqLog := logctx.FromGin(c, log)

		isNew, err := hist.RecordScan(ctx, userID, &product)
		if err != nil {
			// History failure is non-fatal to the scan itself; analytics
			// is skipped because isNewProduct is unknown.
			reqLog.Errorw("failed to save scan history", "barcode", product.Barcode, "err", err)
		} else if err := stats.RecordScan(ctx, userID, &product, isNew); err != nil {
			reqLog.Errorw("failed to update analytics", "barcode", product.Barcode, "err", err)
		}

		c.JSON(http.StatusOK, response.OKT(scanResponse{ProductRecord: product, IsNewProduct: isNew}))
	}
}

func RegisterScanRoutes(r gin.IRouter, log *zap.SugaredLogger, hist *history.Service, stats *analytics.Service) {
	r.POST("/scan", ApiRecordScan(log, hist, stats))
}
