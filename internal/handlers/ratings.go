package handlers

import (
	"strconv"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
)

type RatingInput struct {
	PlannerID uint   `json:"plannerId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
	UserName  string `json:"userName" binding:"required"`
	Score     int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// AddRating submits one user's rating for a planner. Duplicate submissions
// for the same planner are rejected.
func AddRating(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RatingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		rating := models.Rating{
			PlannerID: input.PlannerID,
			UserEmail: input.UserEmail,
			UserName:  input.UserName,
			Score:     input.Score,
			Comment:   input.Comment,
		}

		saved, err := svc.Add(&rating)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, saved)
	}
}

// GetRatingsByPlanner lists every rating one planner has received.
func GetRatingsByPlanner(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plannerID, err := strconv.ParseUint(c.Param("plannerId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid planner id"})
			return
		}

		ratings, err := svc.GetByPlanner(uint(plannerID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, ratings)
	}
}

// GetAverageRating returns the planner's rating aggregate. A planner with
// no ratings yields 0.0, not an error.
func GetAverageRating(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plannerID, err := strconv.ParseUint(c.Param("plannerId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid planner id"})
			return
		}

		avg, total, err := svc.Aggregate(c.Request.Context(), uint(plannerID))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"averageRating": avg,
			"totalRatings":  total,
		})
	}
}

// GetRatingsByUser lists every rating one user has submitted.
func GetRatingsByUser(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := svc.GetByUser(c.Param("userEmail"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, ratings)
	}
}

// GetAllRatings lists every rating in the system.
func GetAllRatings(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ratings, err := svc.GetAll()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, ratings)
	}
}
