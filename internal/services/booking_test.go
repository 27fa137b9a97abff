package services

import (
	"testing"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"confirmed", models.BookingStatusConfirmed},
		{"CONFIRMED", models.BookingStatusConfirmed},
		{"Confirmed", models.BookingStatusConfirmed},
		{"rejected", models.BookingStatusRejected},
		{"completed", models.BookingStatusCompleted},
		{"pending", models.BookingStatusPending},
		{"PENDING", models.BookingStatusPending},
		{"cancelled", models.BookingStatusCancelled},
	}

	for _, tc := range cases {
		got, err := NormalizeStatus(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestNormalizeStatusCanonicalCasing(t *testing.T) {
	// Pending and Cancelled keep their historical mixed casing
	got, err := NormalizeStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, "Pending", got)

	got, err = NormalizeStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", got)
}

func TestNormalizeStatusInvalid(t *testing.T) {
	_, err := NormalizeStatus("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NormalizeStatus("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDerivePaymentStatusPartial(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPartiallyPaid, DerivePaymentStatus(500, 200))
}

func TestDerivePaymentStatusPaidOnFullAmount(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(500, 500))
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(500, 700))
}

func TestDerivePaymentStatusZeroTotalAlwaysPaid(t *testing.T) {
	// A booking without a priced event is considered fully paid after any
	// payment call, including a zero one
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(0, 0))
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(0, 100))
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(-1, 0))
}

func TestPaymentAccumulationScenario(t *testing.T) {
	// Booking against a planner whose only event costs 500:
	// pay 200 -> PARTIALLY_PAID, then 300 more -> PAID
	total := 500.0
	paid := 0.0

	paid += 200
	assert.Equal(t, models.PaymentStatusPartiallyPaid, DerivePaymentStatus(total, paid))
	assert.Equal(t, 200.0, paid)

	paid += 300
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(total, paid))
	assert.Equal(t, 500.0, paid)
}

func TestCreateBookingDefaults(t *testing.T) {
	t.Skip("Integration test - requires database")

	// Against a live database: Create must always set status=Pending,
	// paymentStatus=PENDING and paidAmount=0 regardless of input, and
	// MarkAsPaid must append exactly one PaymentHistory row per call with
	// status PAID.
}
