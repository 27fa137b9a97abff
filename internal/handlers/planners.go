package handlers

import (
	"strconv"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePlanner registers a new planner.
func CreatePlanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var planner models.Planner
		if err := c.ShouldBindJSON(&planner); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&planner).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create planner"})
			return
		}
		c.JSON(200, planner)
	}
}

// GetPlanners lists every planner.
func GetPlanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var planners []models.Planner
		if err := db.Find(&planners).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch planners"})
			return
		}
		c.JSON(200, planners)
	}
}

// UpdatePlanner replaces a planner record by id.
func UpdatePlanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid planner id"})
			return
		}

		var planner models.Planner
		if err := c.ShouldBindJSON(&planner); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		planner.ID = uint(id)
		if err := db.Save(&planner).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update planner"})
			return
		}
		c.JSON(200, planner)
	}
}

// DeletePlanner removes a planner by id.
func DeletePlanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Planner{}, c.Param("id")).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete planner"})
			return
		}
		c.Status(200)
	}
}

// UploadPlannerPhoto stores a planner's profile photo and saves its URL.
func UploadPlannerPhoto(db *gorm.DB, storage *services.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var planner models.Planner
		if err := db.First(&planner, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Planner not found"})
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			c.JSON(400, gin.H{"error": "photo file is required"})
			return
		}

		url, err := storage.UploadImage(file, "planners")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload photo"})
			return
		}

		planner.ProfilePhoto = url
		if err := db.Save(&planner).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update planner"})
			return
		}

		c.JSON(200, planner)
	}
}
