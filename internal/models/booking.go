package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. The mixed casing mirrors what clients already store
// and display, so it is kept as-is.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusRejected  = "REJECTED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "Cancelled"
)

const (
	PaymentStatusPending       = "PENDING"
	PaymentStatusPartiallyPaid = "PARTIALLY_PAID"
	PaymentStatusPaid          = "PAID"
)

// Booking is a customer's reservation of a planner/event slot. It carries
// its own status and payment sub-lifecycle; rows are never deleted by the
// normal flows.
type Booking struct {
	gorm.Model
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"not null"`
	EventType     string    `json:"eventType" gorm:"not null"`
	EventName     string    `json:"eventName" gorm:"not null"`
	EventDate     time.Time `json:"eventDate" gorm:"type:date;not null"`
	Venue         string    `json:"venue" gorm:"not null"`
	Status        string    `json:"status" gorm:"not null;default:'Pending'"`
	PaymentStatus string    `json:"paymentStatus" gorm:"not null;default:'PENDING'"`
	PlannerID     *uint     `json:"plannerId"`
	TotalAmount   float64   `json:"totalAmount" gorm:"default:0"`
	PaidAmount    float64   `json:"paidAmount" gorm:"default:0"`
	ReminderSent  bool      `json:"reminderSent" gorm:"default:false"`
}

func (Booking) TableName() string {
	return "bookings"
}
