package handlers

import (
	"strconv"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateEvent adds a planner's event package.
func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&event).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create event"})
			return
		}
		c.JSON(200, event)
	}
}

// GetEvents lists every event package.
func GetEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		if err := db.Find(&events).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch events"})
			return
		}
		c.JSON(200, events)
	}
}

// UpdateEvent replaces an event record by id.
func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid event id"})
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		event.ID = uint(id)
		if err := db.Save(&event).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update event"})
			return
		}
		c.JSON(200, event)
	}
}

// DeleteEvent removes an event by id.
func DeleteEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Event{}, c.Param("id")).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete event"})
			return
		}
		c.Status(200)
	}
}

// GetEventsByPlanner lists the event packages offered by one planner.
func GetEventsByPlanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event
		if err := db.Where("planner_id = ?", c.Param("plannerId")).Find(&events).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch events"})
			return
		}
		c.JSON(200, events)
	}
}

// UploadEventImage stores an event's promo image and saves its URL.
func UploadEventImage(db *gorm.DB, storage *services.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := db.First(&event, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Event not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(400, gin.H{"error": "image file is required"})
			return
		}

		url, err := storage.UploadImage(file, "events")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload image"})
			return
		}

		event.Image = url
		if err := db.Save(&event).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update event"})
			return
		}

		c.JSON(200, event)
	}
}
