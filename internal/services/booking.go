package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
)

// BookingService owns the booking lifecycle and the payment ledger.
type BookingService struct {
	db  *gorm.DB
	hub *Hub
}

func NewBookingService(db *gorm.DB, hub *Hub) *BookingService {
	return &BookingService{db: db, hub: hub}
}

// CreateBookingInput carries the customer's booking request.
type CreateBookingInput struct {
	Name      string
	Email     string
	EventType string
	EventName string
	EventDate time.Time
	Venue     string
	PlannerID *uint
}

// Create persists a new booking in its initial state. The total amount is
// seeded from the price of the first event found for the chosen planner,
// or 0 when the planner has none. The planner id itself is not checked for
// existence.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	booking := models.Booking{
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(input.Email),
		EventType:     input.EventType,
		EventName:     input.EventName,
		EventDate:     input.EventDate,
		Venue:         input.Venue,
		PlannerID:     input.PlannerID,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaidAmount:    0,
	}

	if input.PlannerID != nil {
		var events []models.Event
		if err := s.db.Where("planner_id = ?", *input.PlannerID).Find(&events).Error; err != nil {
			return nil, err
		}
		if len(events) > 0 {
			booking.TotalAmount = events[0].Price
		}
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// NormalizeStatus maps a client-supplied status string, case-insensitively,
// to its canonical stored form. Unrecognized input is an invalid argument.
func NormalizeStatus(status string) (string, error) {
	switch strings.ToUpper(status) {
	case "CONFIRMED":
		return models.BookingStatusConfirmed, nil
	case "REJECTED":
		return models.BookingStatusRejected, nil
	case "COMPLETED":
		return models.BookingStatusCompleted, nil
	case "PENDING":
		return models.BookingStatusPending, nil
	case "CANCELLED":
		return models.BookingStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: invalid status: %s", ErrInvalidArgument, status)
	}
}

// UpdateStatus transitions a booking to the given status. There is no
// transition graph: any status may follow any other, including moving a
// completed booking back to Pending.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}

	canonical, err := NormalizeStatus(status)
	if err != nil {
		return nil, err
	}

	booking.Status = canonical
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	s.broadcast("booking_status", &booking)
	return &booking, nil
}

// DerivePaymentStatus computes the payment status from the amounts. When no
// total is set the booking is considered fully paid after any payment, even
// a zero one; the amount is never validated against the total.
func DerivePaymentStatus(totalAmount, paidAmount float64) string {
	if totalAmount > 0 {
		if paidAmount >= totalAmount {
			return models.PaymentStatusPaid
		}
		return models.PaymentStatusPartiallyPaid
	}
	return models.PaymentStatusPaid
}

// MarkAsPaid posts a payment against a booking and appends one immutable
// ledger row. The ledger row's status is always PAID, independent of the
// booking's derived payment status. Both writes happen in one transaction.
func (s *BookingService) MarkAsPaid(id uint, amount float64, method, transactionID string) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, id)
			}
			return err
		}

		booking.PaidAmount += amount
		booking.PaymentStatus = DerivePaymentStatus(booking.TotalAmount, booking.PaidAmount)

		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		entry := models.PaymentHistory{
			BookingID:     booking.ID,
			UserEmail:     booking.Email,
			PlannerID:     booking.PlannerID,
			Amount:        amount,
			PaymentMethod: method,
			TransactionID: transactionID,
			Status:        models.PaymentStatusPaid,
			PaymentDate:   time.Now(),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment recorded",
		zap.Uint("bookingId", booking.ID),
		zap.Float64("amount", amount),
		zap.String("paymentStatus", booking.PaymentStatus),
	)

	s.broadcast("booking_payment", &booking)
	return &booking, nil
}

// GetByEmail returns all bookings created by one customer.
func (s *BookingService) GetByEmail(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("email = ?", email).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetAll returns every booking, for the admin dashboard.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) broadcast(event string, booking *models.Booking) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastEvent(event, booking)
}
