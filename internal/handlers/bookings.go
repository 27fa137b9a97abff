package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateBookingInput struct {
	Name      string `form:"name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	EventType string `form:"eventType" binding:"required"`
	EventName string `form:"eventName" binding:"required"`
	EventDate string `form:"eventDate" binding:"required"`
	Venue     string `form:"venue" binding:"required"`
	PlannerID *uint  `form:"plannerId"`
}

// CreateBooking handles a customer's booking request.
func CreateBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateBookingInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		eventDate, err := time.Parse("2006-01-02", input.EventDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "eventDate must be in YYYY-MM-DD format"})
			return
		}

		booking, err := svc.Create(services.CreateBookingInput{
			Name:      input.Name,
			Email:     input.Email,
			EventType: input.EventType,
			EventName: input.EventName,
			EventDate: eventDate,
			Venue:     input.Venue,
			PlannerID: input.PlannerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}

// GetMyBookings lists the bookings created by one customer.
func GetMyBookings(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetByEmail(c.Param("email"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, bookings)
	}
}

// GetAllBookings lists every booking, for the admin dashboard.
func GetAllBookings(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetAll()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, bookings)
	}
}

// UpdateBookingStatus transitions a booking to a new status.
func UpdateBookingStatus(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		status := c.Query("status")
		if status == "" {
			status = c.PostForm("status")
		}
		if status == "" {
			c.JSON(400, gin.H{"error": "status is required"})
			return
		}

		booking, err := svc.UpdateStatus(uint(id), status)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}

// MarkPaid posts a payment against a booking. Method and transaction id
// default when not supplied by the gateway callback.
func MarkPaid(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking id"})
			return
		}

		amountParam := c.Query("amount")
		if amountParam == "" {
			amountParam = c.PostForm("amount")
		}
		amount, err := strconv.ParseFloat(amountParam, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "amount is required"})
			return
		}

		method := c.Query("method")
		if method == "" {
			method = "CARD"
		}
		txID := c.Query("txId")
		if txID == "" {
			txID = fmt.Sprintf("txn_%s", uuid.NewString())
		}

		booking, err := svc.MarkAsPaid(uint(id), amount, method, txID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, booking)
	}
}
