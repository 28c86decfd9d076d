package handlers

import (
	"net/http"

	"aircnc/utils"

	"github.com/gin-gonic/gin"
)

const livenessText = "AirCnC server is running"

// RootHandler handles GET / with plain liveness text.
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, livenessText)
}

// HealthHandler reports the last dependency health snapshot.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"healthy": true})
			return
		}
		status := monitor.Status()
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
