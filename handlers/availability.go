package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"salonhq/services/booking"
	"salonhq/utils"
)

// AvailabilityHandler answers the public slot query. Services come either as
// a comma-separated ?services= value or repeated ?service= parameters, which
// is what the old booking form sent.
func AvailabilityHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		services := splitServices(c)

		slots, err := svc.Availability(c.Request.Context(), date, services, time.Now())
		if err != nil {
			if errors.Is(err, booking.ErrInvalidInput) || errors.Is(err, booking.ErrNoServices) {
				utils.JSONError(c, http.StatusBadRequest, "invalid availability query", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
	}
}

func splitServices(c *gin.Context) []string {
	var services []string
	for _, raw := range c.QueryArray("service") {
		if s := strings.TrimSpace(raw); s != "" {
			services = append(services, s)
		}
	}
	if joined := c.Query("services"); joined != "" {
		for _, raw := range strings.Split(joined, ",") {
			if s := strings.TrimSpace(raw); s != "" {
				services = append(services, s)
			}
		}
	}
	return services
}
