package handlers

import (
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateEnquiry records a customer's question in its Pending state.
func CreateEnquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name           string `form:"name" binding:"required"`
			Email          string `form:"email" binding:"required,email"`
			EnquiryDetails string `form:"enquiryDetails" binding:"required"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		enquiry := models.Enquiry{
			Name:           input.Name,
			Email:          input.Email,
			EnquiryDetails: input.EnquiryDetails,
			Status:         models.EnquiryStatusPending,
		}

		if err := db.Create(&enquiry).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create enquiry"})
			return
		}

		c.JSON(200, enquiry)
	}
}

// GetUserEnquiries lists one user's enquiries.
func GetUserEnquiries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var enquiries []models.Enquiry
		if err := db.Where("email = ?", c.Param("email")).Find(&enquiries).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch enquiries"})
			return
		}
		c.JSON(200, enquiries)
	}
}

// GetAllEnquiries lists every enquiry, for the admin inbox.
func GetAllEnquiries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var enquiries []models.Enquiry
		if err := db.Find(&enquiries).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch enquiries"})
			return
		}
		c.JSON(200, enquiries)
	}
}

// ReplyToEnquiry records the admin's reply and marks the enquiry Replied.
func ReplyToEnquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reply string `json:"reply" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var enquiry models.Enquiry
		if err := db.First(&enquiry, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Enquiry not found"})
			return
		}

		enquiry.Reply = &input.Reply
		enquiry.Status = models.EnquiryStatusReplied
		if err := db.Save(&enquiry).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update enquiry"})
			return
		}

		c.JSON(200, enquiry)
	}
}
