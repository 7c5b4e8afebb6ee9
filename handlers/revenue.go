package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonhq/services/revenue"
	"salonhq/utils"
)

// RevenueStatsHandler returns the revenue dashboard figures.
func RevenueStatsHandler(svc revenue.RevenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context(), time.Now())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute revenue", err.Error())
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
