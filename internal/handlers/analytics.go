package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAnalyticsOverview summarizes bookings and revenue for the admin
// dashboard.
func GetAnalyticsOverview(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetAll()
		if err != nil {
			respondError(c, err)
			return
		}

		var completed, pending int
		var totalRevenue float64
		for _, b := range bookings {
			switch {
			case strings.EqualFold(b.Status, models.BookingStatusCompleted):
				completed++
			case strings.EqualFold(b.Status, models.BookingStatusPending):
				pending++
			}
			totalRevenue += b.PaidAmount
		}

		c.JSON(200, gin.H{
			"totalBookings":     len(bookings),
			"completedBookings": completed,
			"pendingBookings":   pending,
			"totalRevenue":      totalRevenue,
		})
	}
}

// SendBookingReminderNow emails a one-off reminder for a booking without
// touching the reminder flag.
func SendBookingReminderNow(db *gorm.DB, mailer *utils.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.String(400, "Booking not found")
			return
		}

		_ = mailer.SendBookingReminder(
			booking.Email,
			booking.Name,
			booking.EventName,
			booking.EventType,
			booking.EventDate.Format("2006-01-02"),
			booking.Venue,
		)

		c.String(200, "Reminder sent to "+booking.Email)
	}
}

// SendBookingToPlanner forwards a booking summary to a planner's email.
func SendBookingToPlanner(db *gorm.DB, mailer *utils.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("bookingId"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		var payload map[string]string
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.String(400, "Booking not found")
			return
		}

		plannerEmail := payload["plannerEmail"]
		if plannerEmail == "" && booking.PlannerID != nil {
			var planner models.Planner
			if err := db.First(&planner, *booking.PlannerID).Error; err == nil {
				plannerEmail = planner.Email
			}
		}
		if plannerEmail == "" {
			c.String(400, "Planner email not available")
			return
		}

		details := fmt.Sprintf("Event: %s\nDate: %s\nVenue: %s\nClient: %s (%s)",
			booking.EventName, booking.EventDate.Format("2006-01-02"), booking.Venue,
			booking.Name, booking.Email)

		_ = mailer.SendBookingDetailsToPlanner(plannerEmail, details)

		c.String(200, "Details sent to planner at "+plannerEmail)
	}
}

// GenerateEventDescription asks the AI backend for a short past-event
// write-up.
func GenerateEventDescription(svc *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]string
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.String(200, svc.GenerateEventDescription(c.Request.Context(), payload["eventDetails"]))
	}
}
