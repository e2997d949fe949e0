package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker records how often the event store was read.
type fakeChecker struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeChecker) EventExists(ctx context.Context, eventID string) (bool, error) {
	f.calls++
	return f.exists, f.err
}

func TestPrepareValidBooking(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		EventID: "ev12345678901234",
		Email:   "jordan@example.com",
	}
	require.NoError(t, Prepare(booking, now))
	assert.Equal(t, now, booking.CreatedAt)
	assert.Equal(t, now, booking.UpdatedAt)
}

func TestPrepareRejectsBadInput(t *testing.T) {
	cases := []models.Booking{
		{EventID: "", Email: "jordan@example.com"},
		{EventID: "   ", Email: "jordan@example.com"},
		{EventID: "ev1", Email: "not-an-email"},
		{EventID: "ev1", Email: "missing-tld@domain"},
		{EventID: "ev1", Email: "spaces in@local.part"},
		{EventID: "ev1", Email: "no-local.part"},
		{EventID: "ev1", Email: ""},
	}
	for _, c := range cases {
		booking := c
		err := Prepare(&booking, time.Now().UTC())
		assert.ErrorIs(t, err, models.ErrValidation, "booking %+v", c)
	}
}

// Field validation must fail before the event store is ever consulted.
func TestValidationFailsBeforeStoreRead(t *testing.T) {
	checker := &fakeChecker{exists: true}
	booking := &models.Booking{EventID: "ev1", Email: "not-an-email"}

	err := Prepare(booking, time.Now().UTC())
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, 0, checker.calls)
}

func TestCheckEvent(t *testing.T) {
	ctx := context.Background()

	checker := &fakeChecker{exists: true}
	require.NoError(t, CheckEvent(ctx, checker, "ev1"))
	assert.Equal(t, 1, checker.calls)

	checker = &fakeChecker{exists: false}
	err := CheckEvent(ctx, checker, "ghost")
	assert.ErrorIs(t, err, models.ErrDanglingReference)
	assert.Equal(t, 1, checker.calls)

	checker = &fakeChecker{err: errors.New("connection refused")}
	err = CheckEvent(ctx, checker, "ev1")
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
