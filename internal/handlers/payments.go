package handlers

import (
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPaymentsForUser lists a user's ledger entries, newest first.
func GetPaymentsForUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.PaymentHistory
		if err := db.Where("user_email = ?", c.Param("email")).
			Order("payment_date DESC").
			Find(&payments).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch payment history"})
			return
		}
		c.JSON(200, payments)
	}
}
