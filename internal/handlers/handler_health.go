package handlers

import (
	"net/http"

	"github.com/SscSPs/user_profile_aggregator/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness probe. Reports the port the server listens on.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func getHealth(port int) gin.HandlerFunc {
	body := dto.HealthResponse{Status: "OK", Port: port}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}

func registerHealthRoutes(group *gin.RouterGroup, port int) {
	group.GET("/health", getHealth(port))
}
