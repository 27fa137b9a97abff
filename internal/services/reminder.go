package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
)

// ReminderMailer is the slice of the mailer the reminder dispatch needs.
type ReminderMailer interface {
	SendBookingReminder(to, name, eventName, eventType, date, venue string) error
}

// ReminderStore abstracts the booking queries the dispatcher runs.
type ReminderStore interface {
	UpcomingWithoutReminder(start, end time.Time) ([]models.Booking, error)
	FindBooking(id uint) (*models.Booking, error)
	SetReminderSent(id uint, sent bool) error
}

// DispatchResult summarizes one batch reminder run.
type DispatchResult struct {
	Total   int `json:"totalBookings"`
	Success int `json:"successCount"`
	Fail    int `json:"failCount"`
}

// ReminderService emails reminders for upcoming bookings and marks them
// sent. It is triggered manually through the admin API; there is no
// automatic time-driven schedule.
type ReminderService struct {
	store  ReminderStore
	mailer ReminderMailer
	days   int
}

func NewReminderService(db *gorm.DB, mailer ReminderMailer, daysInAdvance int) *ReminderService {
	if daysInAdvance <= 0 {
		daysInAdvance = 7
	}
	return &ReminderService{
		store:  &gormReminderStore{db: db},
		mailer: mailer,
		days:   daysInAdvance,
	}
}

// NewReminderServiceWithStore wires an explicit store, used by tests.
func NewReminderServiceWithStore(store ReminderStore, mailer ReminderMailer, daysInAdvance int) *ReminderService {
	if daysInAdvance <= 0 {
		daysInAdvance = 7
	}
	return &ReminderService{store: store, mailer: mailer, days: daysInAdvance}
}

// Window returns the [today, today+N] eligibility bounds, at day granularity.
func (s *ReminderService) Window(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, s.days)
	return start, end
}

// SendForBooking dispatches the reminder email for one booking and, only
// after the send returns without error, flips the reminder flag. A failed
// send leaves the booking eligible for the next run.
func (s *ReminderService) SendForBooking(booking *models.Booking) error {
	err := s.mailer.SendBookingReminder(
		booking.Email,
		booking.Name,
		booking.EventName,
		booking.EventType,
		booking.EventDate.Format("2006-01-02"),
		booking.Venue,
	)
	if err != nil {
		return err
	}

	if err := s.store.SetReminderSent(booking.ID, true); err != nil {
		return err
	}
	booking.ReminderSent = true

	utils.GetLogger().Info("sent booking reminder",
		zap.Uint("bookingId", booking.ID), zap.String("email", booking.Email))
	return nil
}

// SendAll dispatches reminders for every eligible booking. A failure on one
// booking does not abort the rest of the batch; the result carries the
// per-item counts.
func (s *ReminderService) SendAll() (DispatchResult, error) {
	start, end := s.Window(time.Now())

	bookings, err := s.store.UpcomingWithoutReminder(start, end)
	if err != nil {
		return DispatchResult{}, err
	}

	return s.dispatch(bookings), nil
}

func (s *ReminderService) dispatch(bookings []models.Booking) DispatchResult {
	result := DispatchResult{Total: len(bookings)}
	for i := range bookings {
		if err := s.SendForBooking(&bookings[i]); err != nil {
			result.Fail++
			utils.GetLogger().Error("failed to send reminder",
				zap.Uint("bookingId", bookings[i].ID), zap.Error(err))
			continue
		}
		result.Success++
	}
	return result
}

// SendForID dispatches a reminder for a single booking by id.
func (s *ReminderService) SendForID(id uint) (*models.Booking, error) {
	booking, err := s.store.FindBooking(id)
	if err != nil {
		return nil, err
	}
	if err := s.SendForBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ResetReminder clears the reminder flag so a booking becomes eligible
// again. Exists for testing the dispatch path end to end.
func (s *ReminderService) ResetReminder(id uint) error {
	if _, err := s.store.FindBooking(id); err != nil {
		return err
	}
	return s.store.SetReminderSent(id, false)
}

type gormReminderStore struct {
	db *gorm.DB
}

func (g *gormReminderStore) UpcomingWithoutReminder(start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := g.db.
		Where("event_date BETWEEN ? AND ? AND reminder_sent = ?", start, end, false).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (g *gormReminderStore) FindBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := g.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &booking, nil
}

func (g *gormReminderStore) SetReminderSent(id uint, sent bool) error {
	return g.db.Model(&models.Booking{}).Where("id = ?", id).Update("reminder_sent", sent).Error
}
