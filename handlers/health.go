package handlers

import (
	"net/http"

	"nestcare/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot of external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
