package handlers

import (
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler upgrades the connection and joins the admin live feed.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")
		if err := hub.ServeWS(c.Writer, c.Request, email); err != nil {
			c.JSON(500, gin.H{"error": "Failed to upgrade connection"})
		}
	}
}
