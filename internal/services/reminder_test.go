package services

import (
	"errors"
	"testing"
	"time"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderStore struct {
	bookings map[uint]*models.Booking
	markErr  error
}

func newFakeReminderStore(bookings ...*models.Booking) *fakeReminderStore {
	store := &fakeReminderStore{bookings: make(map[uint]*models.Booking)}
	for _, b := range bookings {
		store.bookings[b.ID] = b
	}
	return store
}

func (f *fakeReminderStore) UpcomingWithoutReminder(start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ReminderSent {
			continue
		}
		if b.EventDate.Before(start) || b.EventDate.After(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeReminderStore) FindBooking(id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeReminderStore) SetReminderSent(id uint, sent bool) error {
	if f.markErr != nil {
		return f.markErr
	}
	if b, ok := f.bookings[id]; ok {
		b.ReminderSent = sent
	}
	return nil
}

type fakeMailer struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeMailer) SendBookingReminder(to, name, eventName, eventType, date, venue string) error {
	if f.failFor[to] {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func upcomingBooking(id uint, email string, daysAhead int) *models.Booking {
	b := &models.Booking{
		Name:      "Customer",
		Email:     email,
		EventType: "Wedding",
		EventName: "Spring Wedding",
		EventDate: time.Now().AddDate(0, 0, daysAhead),
		Venue:     "Grand Hall",
	}
	b.ID = id
	return b
}

func TestReminderWindow(t *testing.T) {
	svc := NewReminderServiceWithStore(newFakeReminderStore(), &fakeMailer{}, 7)

	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	start, end := svc.Window(now)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC), end)
}

func TestReminderWindowDefaultsDays(t *testing.T) {
	svc := NewReminderServiceWithStore(newFakeReminderStore(), &fakeMailer{}, 0)

	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	_, end := svc.Window(now)
	assert.Equal(t, time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC), end)
}

func TestSendForBookingMarksSentAfterDispatch(t *testing.T) {
	booking := upcomingBooking(1, "alice@example.com", 3)
	store := newFakeReminderStore(booking)
	mailer := &fakeMailer{}
	svc := NewReminderServiceWithStore(store, mailer, 7)

	require.NoError(t, svc.SendForBooking(booking))

	assert.Equal(t, []string{"alice@example.com"}, mailer.sent)
	assert.True(t, booking.ReminderSent)
	assert.True(t, store.bookings[1].ReminderSent)
}

func TestSendForBookingFailureLeavesFlagUnset(t *testing.T) {
	booking := upcomingBooking(1, "alice@example.com", 3)
	store := newFakeReminderStore(booking)
	mailer := &fakeMailer{failFor: map[string]bool{"alice@example.com": true}}
	svc := NewReminderServiceWithStore(store, mailer, 7)

	require.Error(t, svc.SendForBooking(booking))

	// A transient send failure must leave the booking eligible for the
	// next run
	assert.False(t, store.bookings[1].ReminderSent)
	assert.Empty(t, mailer.sent)
}

func TestDispatchIsolatesPerItemFailures(t *testing.T) {
	store := newFakeReminderStore(
		upcomingBooking(1, "ok1@example.com", 2),
		upcomingBooking(2, "broken@example.com", 3),
		upcomingBooking(3, "ok2@example.com", 5),
	)
	mailer := &fakeMailer{failFor: map[string]bool{"broken@example.com": true}}
	svc := NewReminderServiceWithStore(store, mailer, 7)

	result, err := svc.SendAll()
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Fail)

	assert.False(t, store.bookings[2].ReminderSent)
	assert.True(t, store.bookings[1].ReminderSent)
	assert.True(t, store.bookings[3].ReminderSent)
}

func TestSendAllSkipsAlreadyRemindedAndOutOfWindow(t *testing.T) {
	reminded := upcomingBooking(1, "done@example.com", 2)
	reminded.ReminderSent = true

	store := newFakeReminderStore(
		reminded,
		upcomingBooking(2, "later@example.com", 30),
		upcomingBooking(3, "due@example.com", 4),
	)
	mailer := &fakeMailer{}
	svc := NewReminderServiceWithStore(store, mailer, 7)

	result, err := svc.SendAll()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, []string{"due@example.com"}, mailer.sent)
}

func TestSendForIDNotFound(t *testing.T) {
	svc := NewReminderServiceWithStore(newFakeReminderStore(), &fakeMailer{}, 7)

	_, err := svc.SendForID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetReminder(t *testing.T) {
	booking := upcomingBooking(1, "alice@example.com", 3)
	booking.ReminderSent = true
	store := newFakeReminderStore(booking)
	svc := NewReminderServiceWithStore(store, &fakeMailer{}, 7)

	require.NoError(t, svc.ResetReminder(1))
	assert.False(t, store.bookings[1].ReminderSent)

	assert.ErrorIs(t, svc.ResetReminder(99), ErrNotFound)
}
