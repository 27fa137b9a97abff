package handlers

import (
	"strconv"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
)

// SendAllReminders triggers a batch reminder run over every eligible
// upcoming booking. Per-item failures are counted, not fatal.
func SendAllReminders(svc *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.SendAll()
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"message":       "Reminder emails sent",
			"totalBookings": result.Total,
			"successCount":  result.Success,
			"failCount":     result.Fail,
		})
	}
}

// SendReminderByID dispatches the reminder for a single booking.
func SendReminderByID(svc *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		booking, err := svc.SendForID(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"message":   "Reminder sent successfully",
			"bookingId": strconv.FormatUint(id, 10),
			"email":     booking.Email,
		})
	}
}

// ResetReminderStatus clears a booking's reminder flag so it becomes
// eligible again. Used for testing the dispatch path.
func ResetReminderStatus(svc *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		if err := svc.ResetReminder(uint(id)); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"message":   "Reminder status reset successfully",
			"bookingId": strconv.FormatUint(id, 10),
		})
	}
}
