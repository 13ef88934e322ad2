package handlers

import (
	"net/http"

	"aptiva/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the status of the backing services.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := status.Mongo
	for _, ok := range status.Redis {
		healthy = healthy && ok
	}
	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"healthy": healthy, "detail": status})
}
