package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentHistory is the append-only ledger of individual payment postings
// against a booking. Rows are written once per successful payment call and
// never updated.
type PaymentHistory struct {
	gorm.Model
	BookingID     uint      `json:"bookingId" gorm:"not null"`
	UserEmail     string    `json:"userEmail" gorm:"index"`
	PlannerID     *uint     `json:"plannerId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	PaymentDate   time.Time `json:"paymentDate"`
}

func (PaymentHistory) TableName() string {
	return "payment_histories"
}
