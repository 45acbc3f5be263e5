package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodlytics/foodlytics/internal/app/service/history"
	"github.com/foodlytics/foodlytics/pkg/response"
	"github.com/foodlytics/foodlytics/pkg/types"
)

// @Summary      List scan history
// @Description  Returns the user's scan history, newest first, with limit/offset paging.
// @Tags         History
// @Produce      json
// @Param        limit    query  int     false  "Page size (default 50)"
// @Param        offset   query  int     false  "Offset"
// @Param        barcode  query  string  false  "Filter by barcode"
// @Success      200  {object}  handlers.RespScanHistory
// @Router       /api/v1/history [get]
func ApiListHistory(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &history.ListRequest{UserID: userIDFrom(c)}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid limit"))
				return
			}
			req.Size = n
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				req.From = n
			}
		}
		if barcode := c.Query("barcode"); barcode != "" {
			req.Filters = append(req.Filters, &types.CommonFilter{
				Field:    "barcode",
				Operator: types.CommonFilterOperatorEq,
				Values:   []any{barcode},
			})
		}

		res, err := svc.List(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Clear scan history
// @Tags         History
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/history [delete]
func ApiClearHistory(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), userIDFrom(c)); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"message": "history cleared successfully"}))
	}
}

// @Summary      Delete one history item
// @Tags         History
// @Produce      json
// @Param        barcode  path  string  true  "Barcode to remove"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/history/{barcode} [delete]
func ApiDeleteHistoryItem(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		barcode := c.Param("barcode")
		if err := svc.Delete(c.Request.Context(), userIDFrom(c), barcode); err != nil {
			if errors.Is(err, history.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"message": "history item deleted successfully"}))
	}
}

func RegisterHistoryRoutes(r gin.IRouter, svc *history.Service) {
	r.GET("", ApiListHistory(svc))
	r.DELETE("", ApiClearHistory(svc))
	r.DELETE("/:barcode", ApiDeleteHistoryItem(svc))
}
