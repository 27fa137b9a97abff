package handlers

import (
	"strings"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
)

// RecommendPlanners returns AI-generated planner recommendations for the
// user's criteria. Backend failures surface as a fallback message, never
// as an error status.
func RecommendPlanners(svc *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request map[string]string
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		criteria := strings.TrimSpace(request["criteria"])
		if criteria == "" {
			c.String(400, "Criteria cannot be empty.")
			return
		}

		c.String(200, svc.Recommend(c.Request.Context(), criteria))
	}
}

// PredictBudget returns an AI-generated budget estimate for an event.
func PredictBudget(svc *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventDetails map[string]string
		if err := c.ShouldBindJSON(&eventDetails); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.String(200, svc.PredictBudget(c.Request.Context(), eventDetails))
	}
}
