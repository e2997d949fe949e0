package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gatherly/models"
)

// EventChecker is the one view of the event store a booking save needs.
type EventChecker interface {
	EventExists(ctx context.Context, eventID string) (bool, error)
}

// local-part@domain.tld: no whitespace around the @, at least one dot in
// the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Prepare validates a candidate booking before any store access. Field
// errors here mean the event store is never consulted.
func Prepare(booking *models.Booking, now time.Time) error {
	booking.Email = strings.TrimSpace(booking.Email)
	if strings.TrimSpace(booking.EventID) == "" {
		return fmt.Errorf("%w: missing eventid", models.ErrValidation)
	}
	if !emailPattern.MatchString(booking.Email) {
		return fmt.Errorf("%w: malformed email", models.ErrValidation)
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return nil
}

// CheckEvent performs the single referential read per save attempt. A read
// failure aborts without retry; a missing event means the reference dangles
// and nothing is persisted.
func CheckEvent(ctx context.Context, store EventChecker, eventID string) error {
	exists, err := store.EventExists(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if !exists {
		return fmt.Errorf("%w: event %s", models.ErrDanglingReference, eventID)
	}
	return nil
}
